package usecase

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/qlkp/reciclaje-api/internal/application/dto"
	"github.com/qlkp/reciclaje-api/internal/domain"
	"github.com/qlkp/reciclaje-api/internal/domain/entity"
	"github.com/qlkp/reciclaje-api/internal/domain/repository"
)

// MaterialUseCase casos de uso CRUD para materiales. Stock se maneja vía
// transacciones del libro, fuera de la corrección manual de admin.
type MaterialUseCase struct {
	repo   repository.MaterialRepository
	txRepo repository.TransactionRepository
}

// NewMaterialUseCase construye el caso de uso.
func NewMaterialUseCase(repo repository.MaterialRepository, txRepo repository.TransactionRepository) *MaterialUseCase {
	return &MaterialUseCase{repo: repo, txRepo: txRepo}
}

// Create crea un nuevo material. Stock inicia en 0.
func (uc *MaterialUseCase) Create(in dto.CreateMaterialRequest) (*dto.MaterialResponse, error) {
	if in.Code == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Type != entity.MaterialTypeScrap && in.Type != entity.MaterialTypePowder {
		return nil, domain.ErrInvalidInput
	}
	if in.PricePerKg.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByCode(in.Code)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	if in.Unit == "" {
		in.Unit = "kg"
	}
	now := time.Now()
	material := &entity.Material{
		ID:         uuid.New().String(),
		Code:       in.Code,
		Name:       in.Name,
		Type:       in.Type,
		Stock:      decimal.Zero,
		Unit:       in.Unit,
		PricePerKg: in.PricePerKg,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(material); err != nil {
		return nil, err
	}
	return toMaterialResponse(material), nil
}

// GetByID obtiene un material por ID.
func (uc *MaterialUseCase) GetByID(id string) (*dto.MaterialResponse, error) {
	material, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return toMaterialResponse(material), nil
}

// List devuelve todos los materiales, materia prima primero.
func (uc *MaterialUseCase) List() ([]dto.MaterialResponse, error) {
	materials, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.MaterialResponse, 0, len(materials))
	for _, m := range materials {
		out = append(out, *toMaterialResponse(m))
	}
	return out, nil
}

// Update actualiza un material. No permite modificar Stock (se maneja vía
// transacciones o la corrección de admin).
func (uc *MaterialUseCase) Update(id string, in dto.UpdateMaterialRequest) (*dto.MaterialResponse, error) {
	material, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if in.Code != nil && *in.Code != material.Code {
		existing, err := uc.repo.GetByCode(*in.Code)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrDuplicate
		}
		material.Code = *in.Code
	}
	if in.Name != nil {
		material.Name = *in.Name
	}
	if in.Type != nil {
		if *in.Type != entity.MaterialTypeScrap && *in.Type != entity.MaterialTypePowder {
			return nil, domain.ErrInvalidInput
		}
		material.Type = *in.Type
	}
	if in.Unit != nil {
		material.Unit = *in.Unit
	}
	if in.PricePerKg != nil {
		if in.PricePerKg.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		material.PricePerKg = *in.PricePerKg
	}
	material.UpdatedAt = time.Now()
	if err := uc.repo.Update(material); err != nil {
		return nil, err
	}
	return toMaterialResponse(material), nil
}

// Delete elimina un material solo si ninguna transacción lo referencia.
func (uc *MaterialUseCase) Delete(id string) error {
	if _, err := uc.repo.GetByID(id); err != nil {
		return err
	}
	count, err := uc.txRepo.CountByMaterial(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrMaterialInUse
	}
	return uc.repo.Delete(id)
}

// CorrectStock fija el stock absoluto de un material (ajuste de inventario
// físico, solo admin). El valor no puede ser negativo.
func (uc *MaterialUseCase) CorrectStock(id string, in dto.CorrectStockRequest) (*dto.MaterialResponse, error) {
	if in.Stock.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	material, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.UpdateStock(material.ID, in.Stock); err != nil {
		return nil, err
	}
	material.Stock = in.Stock
	return toMaterialResponse(material), nil
}

func toMaterialResponse(m *entity.Material) *dto.MaterialResponse {
	if m == nil {
		return nil
	}
	return &dto.MaterialResponse{
		ID:         m.ID,
		Code:       m.Code,
		Name:       m.Name,
		Type:       m.Type,
		Stock:      m.Stock,
		Unit:       m.Unit,
		PricePerKg: m.PricePerKg,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}
