package ledger

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/unicode/norm"

	"github.com/qlkp/reciclaje-api/internal/domain"
	"github.com/qlkp/reciclaje-api/internal/domain/entity"
	"github.com/qlkp/reciclaje-api/internal/domain/production"
	"github.com/qlkp/reciclaje-api/internal/domain/repository"
)

// LedgerUseCase registra movimientos del libro (IMPORT, EXPORT, PRODUCTION, EXPENSE)
// de forma transaccional con bloqueo de fila (SELECT FOR UPDATE) y Commit/Rollback.
// El stock, los acumulados del socio y la fila de transacción cambian juntos o no cambian.
type LedgerUseCase struct {
	txRunner TxRunner
	txRepo   repository.TransactionRepository
}

// NewLedgerUseCase construye el caso de uso.
func NewLedgerUseCase(txRunner TxRunner, txRepo repository.TransactionRepository) *LedgerUseCase {
	return &LedgerUseCase{
		txRunner: txRunner,
		txRepo:   txRepo,
	}
}

// MovementInputDTO entrada para registrar un import o export.
// PricePerKg es el precio pactado en la operación, no el precio de lista del
// material: TotalValue = Weight × PricePerKg queda congelado al crear.
type MovementInputDTO struct {
	MaterialCode string
	PartnerName  string
	Weight       decimal.Decimal
	PricePerKg   decimal.Decimal
	Note         string
	UserID       string
}

// ExpenseInputDTO entrada para registrar un gasto operativo.
type ExpenseInputDTO struct {
	TotalValue decimal.Decimal
	Category   string
	Note       string
	Date       *time.Time
	UserID     string
}

// ExpenseUpdateDTO campos editables de un gasto. Los punteros nil no se tocan.
type ExpenseUpdateDTO struct {
	TotalValue *decimal.Decimal
	Category   *string
	Note       *string
	Date       *time.Time
}

// normalizePartnerName aplica NFC y recorta espacios. Los nombres vietnamitas
// llegan a veces en forma descompuesta (NFD) desde teclados móviles y sin esto
// "Công ty Tân Phát" se duplicaría como socio nuevo.
func normalizePartnerName(name string) string {
	return strings.TrimSpace(norm.NFC.String(name))
}

func validExpenseCategory(category string) bool {
	switch category {
	case entity.ExpenseCategoryMaterial, entity.ExpenseCategoryLabor,
		entity.ExpenseCategoryMachinery, entity.ExpenseCategoryOther:
		return true
	}
	return false
}

// RecordImport registra una compra de material: bloquea la fila del material,
// busca o crea el socio como SUPPLIER, suma stock y acumulados e inserta la
// fila IMPORT. Devuelve la transacción creada.
func (uc *LedgerUseCase) RecordImport(ctx context.Context, input MovementInputDTO) (*entity.Transaction, error) {
	return uc.recordMovement(ctx, entity.TransactionTypeImport, input)
}

// RecordExport registra una venta: igual que el import pero resta stock
// (verificando bajo lock que alcance) y crea el socio como CUSTOMER.
func (uc *LedgerUseCase) RecordExport(ctx context.Context, input MovementInputDTO) (*entity.Transaction, error) {
	return uc.recordMovement(ctx, entity.TransactionTypeExport, input)
}

func (uc *LedgerUseCase) recordMovement(ctx context.Context, txType string, input MovementInputDTO) (*entity.Transaction, error) {
	// Validar entrada antes de abrir la transacción
	partnerName := normalizePartnerName(input.PartnerName)
	if input.MaterialCode == "" || partnerName == "" {
		return nil, domain.ErrInvalidInput
	}
	if !input.Weight.GreaterThan(decimal.Zero) || input.PricePerKg.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	totalValue := input.Weight.Mul(input.PricePerKg)

	var created *entity.Transaction
	err := uc.txRunner.Run(ctx, func(
		materialRepo repository.MaterialRepository,
		partnerRepo repository.PartnerRepository,
		txRepo repository.TransactionRepository,
	) error {
		// Bloquea la fila del material (SELECT FOR UPDATE) para evitar condiciones de carrera
		material, err := materialRepo.GetByCodeForUpdate(input.MaterialCode)
		if err != nil {
			return err
		}

		var newStock decimal.Decimal
		if txType == entity.TransactionTypeImport {
			newStock = material.Stock.Add(input.Weight)
		} else {
			if material.Stock.LessThan(input.Weight) {
				return domain.ErrInsufficientStock
			}
			newStock = material.Stock.Sub(input.Weight)
		}
		if err := materialRepo.UpdateStock(material.ID, newStock); err != nil {
			return err
		}

		partner, err := uc.findOrCreatePartner(partnerRepo, partnerName, txType, now)
		if err != nil {
			return err
		}
		if err := partnerRepo.AddTotals(partner.ID, input.Weight, totalValue); err != nil {
			return err
		}

		tx := &entity.Transaction{
			ID:         uuid.New().String(),
			Date:       now,
			Type:       txType,
			MaterialID: material.ID,
			PartnerID:  partner.ID,
			Weight:     input.Weight,
			TotalValue: totalValue,
			Note:       input.Note,
			CreatedBy:  input.UserID,
			CreatedAt:  now,
		}
		if err := txRepo.Create(tx); err != nil {
			return err
		}
		tx.MaterialName = material.Name
		tx.PartnerName = partner.Name
		created = tx
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// findOrCreatePartner busca el socio por nombre (sin distinguir mayúsculas,
// con lock de fila) y lo crea si no existe: SUPPLIER para imports, CUSTOMER
// para exports. El índice único sobre LOWER(name) resuelve la carrera entre
// dos creaciones simultáneas.
func (uc *LedgerUseCase) findOrCreatePartner(
	partnerRepo repository.PartnerRepository,
	name, txType string,
	now time.Time,
) (*entity.Partner, error) {
	partner, err := partnerRepo.GetByNameForUpdate(name)
	if err != nil {
		return nil, err
	}
	if partner != nil {
		return partner, nil
	}

	partnerType := entity.PartnerTypeSupplier
	if txType == entity.TransactionTypeExport {
		partnerType = entity.PartnerTypeCustomer
	}
	partner = &entity.Partner{
		ID:          uuid.New().String(),
		Name:        name,
		Type:        partnerType,
		TotalVolume: decimal.Zero,
		TotalValue:  decimal.Zero,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := partnerRepo.Create(partner); err != nil {
		return nil, err
	}
	return partner, nil
}

// RecordProduction convierte chatarra en polvo: bloquea SCRAP y luego POWDER
// (orden fijo para evitar deadlocks), verifica que alcance la chatarra y aplica
// scrap -= entrada, powder += entrada × 0.95. La merma del 5% no se registra.
func (uc *LedgerUseCase) RecordProduction(ctx context.Context, scrapWeight decimal.Decimal, note, userID string) (*entity.Transaction, error) {
	if !scrapWeight.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	powderOut := production.PowderOutput(scrapWeight)

	var created *entity.Transaction
	err := uc.txRunner.Run(ctx, func(
		materialRepo repository.MaterialRepository,
		_ repository.PartnerRepository,
		txRepo repository.TransactionRepository,
	) error {
		scrap, err := materialRepo.GetByTypeForUpdate(entity.MaterialTypeScrap)
		if err != nil {
			return err
		}
		powder, err := materialRepo.GetByTypeForUpdate(entity.MaterialTypePowder)
		if err != nil {
			return err
		}
		if scrap.Stock.LessThan(scrapWeight) {
			return domain.ErrInsufficientStock
		}

		if err := materialRepo.UpdateStock(scrap.ID, scrap.Stock.Sub(scrapWeight)); err != nil {
			return err
		}
		if err := materialRepo.UpdateStock(powder.ID, powder.Stock.Add(powderOut)); err != nil {
			return err
		}

		autoNote := fmt.Sprintf("Sản xuất: %s kg phế liệu -> %s kg bột", scrapWeight.String(), powderOut.String())
		if note != "" {
			autoNote = autoNote + " | " + note
		}
		tx := &entity.Transaction{
			ID:         uuid.New().String(),
			Date:       now,
			Type:       entity.TransactionTypeProduction,
			MaterialID: scrap.ID,
			Weight:     scrapWeight,
			TotalValue: decimal.Zero,
			Note:       autoNote,
			CreatedBy:  userID,
			CreatedAt:  now,
		}
		if err := txRepo.Create(tx); err != nil {
			return err
		}
		tx.MaterialName = scrap.Name
		created = tx
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// RecordExpense registra un gasto operativo. No toca stock ni socios, así que
// es el único camino que no necesita la transacción de BD.
func (uc *LedgerUseCase) RecordExpense(ctx context.Context, input ExpenseInputDTO) (*entity.Transaction, error) {
	if !input.TotalValue.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if !validExpenseCategory(input.Category) {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	date := now
	if input.Date != nil {
		date = *input.Date
	}

	tx := &entity.Transaction{
		ID:         uuid.New().String(),
		Date:       date,
		Type:       entity.TransactionTypeExpense,
		Weight:     decimal.Zero,
		TotalValue: input.TotalValue,
		Category:   input.Category,
		Note:       input.Note,
		CreatedBy:  input.UserID,
		CreatedAt:  now,
	}
	if err := uc.txRepo.Create(tx); err != nil {
		return nil, err
	}
	return tx, nil
}

// UpdateExpense edita un gasto. Solo las filas EXPENSE son editables: las
// transacciones con efecto de stock son inmutables, por eso la reversión del
// borrado siempre puede confiar en los valores originales de la fila.
func (uc *LedgerUseCase) UpdateExpense(ctx context.Context, id string, update ExpenseUpdateDTO) (*entity.Transaction, error) {
	tx, err := uc.txRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if !tx.IsExpense() {
		return nil, domain.ErrImmutable
	}

	if update.TotalValue != nil {
		if !update.TotalValue.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		tx.TotalValue = *update.TotalValue
	}
	if update.Category != nil {
		if !validExpenseCategory(*update.Category) {
			return nil, domain.ErrInvalidInput
		}
		tx.Category = *update.Category
	}
	if update.Note != nil {
		tx.Note = *update.Note
	}
	if update.Date != nil {
		tx.Date = *update.Date
	}

	if err := uc.txRepo.Update(tx); err != nil {
		return nil, err
	}
	return tx, nil
}

// DeleteTransaction borra una transacción revirtiendo primero sus efectos,
// todo en una sola transacción de BD. Si la reversión dejaría un stock
// negativo (p. ej. borrar un IMPORT cuyo material ya se exportó) la operación
// falla con stock insuficiente y nada cambia.
func (uc *LedgerUseCase) DeleteTransaction(ctx context.Context, id string) error {
	return uc.txRunner.Run(ctx, func(
		materialRepo repository.MaterialRepository,
		partnerRepo repository.PartnerRepository,
		txRepo repository.TransactionRepository,
	) error {
		tx, err := txRepo.GetByID(id)
		if err != nil {
			return err
		}

		switch tx.Type {
		case entity.TransactionTypeImport:
			if err := uc.reverseStock(materialRepo, tx.MaterialID, tx.Weight.Neg()); err != nil {
				return err
			}
			if err := uc.reversePartner(partnerRepo, tx); err != nil {
				return err
			}
		case entity.TransactionTypeExport:
			if err := uc.reverseStock(materialRepo, tx.MaterialID, tx.Weight); err != nil {
				return err
			}
			if err := uc.reversePartner(partnerRepo, tx); err != nil {
				return err
			}
		case entity.TransactionTypeProduction:
			// mismo orden de bloqueo que el registro: SCRAP y luego POWDER
			if err := uc.reverseStock(materialRepo, tx.MaterialID, tx.Weight); err != nil {
				return err
			}
			powder, err := materialRepo.GetByTypeForUpdate(entity.MaterialTypePowder)
			if err != nil {
				return err
			}
			powderOut := production.PowderOutput(tx.Weight)
			if powder.Stock.LessThan(powderOut) {
				return domain.ErrInsufficientStock
			}
			if err := materialRepo.UpdateStock(powder.ID, powder.Stock.Sub(powderOut)); err != nil {
				return err
			}
		case entity.TransactionTypeExpense:
			// sin efectos que revertir
		}

		return txRepo.Delete(id)
	})
}

// reverseStock aplica un delta al stock del material bajo lock, validando que
// no quede negativo.
func (uc *LedgerUseCase) reverseStock(materialRepo repository.MaterialRepository, materialID string, delta decimal.Decimal) error {
	if materialID == "" {
		return domain.ErrNotFound
	}
	material, err := materialRepo.GetByID(materialID)
	if err != nil {
		return err
	}
	// relock por código para serializar con los registros concurrentes
	material, err = materialRepo.GetByCodeForUpdate(material.Code)
	if err != nil {
		return err
	}
	newStock := material.Stock.Add(delta)
	if newStock.IsNegative() {
		return domain.ErrInsufficientStock
	}
	return materialRepo.UpdateStock(material.ID, newStock)
}

// reversePartner resta del socio el volumen y el valor que la transacción
// había sumado. Usa los valores guardados en la fila: al ser inmutable, son
// exactamente los que se aplicaron al crear.
func (uc *LedgerUseCase) reversePartner(partnerRepo repository.PartnerRepository, tx *entity.Transaction) error {
	if tx.PartnerID == "" {
		return nil
	}
	return partnerRepo.AddTotals(tx.PartnerID, tx.Weight.Neg(), tx.TotalValue.Neg())
}

// GetTransaction devuelve una transacción por ID con nombres resueltos.
func (uc *LedgerUseCase) GetTransaction(ctx context.Context, id string) (*entity.Transaction, error) {
	return uc.txRepo.GetByID(id)
}

// ListTransactions devuelve el libro filtrado y paginado, más reciente primero.
func (uc *LedgerUseCase) ListTransactions(ctx context.Context, filter repository.TransactionFilter) ([]*entity.Transaction, error) {
	if filter.Limit <= 0 {
		filter.Limit = 50
	}
	if filter.Limit > 200 {
		filter.Limit = 200
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	return uc.txRepo.List(filter)
}
