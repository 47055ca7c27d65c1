package ledger_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qlkp/reciclaje-api/internal/application/ledger"
	"github.com/qlkp/reciclaje-api/internal/domain"
	"github.com/qlkp/reciclaje-api/internal/domain/entity"
	"github.com/qlkp/reciclaje-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

// memStore guarda materiales, socios y transacciones en mapas. El fakeTxRunner
// toma un snapshot antes de cada callback y lo restaura si falla, emulando el
// Rollback de PostgreSQL.
type memStore struct {
	materials    map[string]*entity.Material
	partners     map[string]*entity.Partner
	transactions map[string]*entity.Transaction
}

func newMemStore() *memStore {
	return &memStore{
		materials:    map[string]*entity.Material{},
		partners:     map[string]*entity.Partner{},
		transactions: map[string]*entity.Transaction{},
	}
}

func (s *memStore) snapshot() *memStore {
	c := newMemStore()
	for k, v := range s.materials {
		m := *v
		c.materials[k] = &m
	}
	for k, v := range s.partners {
		p := *v
		c.partners[k] = &p
	}
	for k, v := range s.transactions {
		tx := *v
		c.transactions[k] = &tx
	}
	return c
}

func (s *memStore) restore(from *memStore) {
	s.materials = from.materials
	s.partners = from.partners
	s.transactions = from.transactions
}

// ── Repos fake ────────────────────────────────────────────────────────────────

type fakeMaterialRepo struct{ s *memStore }

func (r *fakeMaterialRepo) Create(m *entity.Material) error {
	r.s.materials[m.ID] = m
	return nil
}

func (r *fakeMaterialRepo) GetByID(id string) (*entity.Material, error) {
	m, ok := r.s.materials[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copia := *m
	return &copia, nil
}

func (r *fakeMaterialRepo) GetByCode(code string) (*entity.Material, error) {
	for _, m := range r.s.materials {
		if m.Code == code {
			copia := *m
			return &copia, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *fakeMaterialRepo) GetByCodeForUpdate(code string) (*entity.Material, error) {
	return r.GetByCode(code)
}

func (r *fakeMaterialRepo) GetByTypeForUpdate(materialType string) (*entity.Material, error) {
	var found *entity.Material
	for _, m := range r.s.materials {
		if m.Type != materialType {
			continue
		}
		if found == nil || m.Code < found.Code {
			found = m
		}
	}
	if found == nil {
		return nil, domain.ErrNotFound
	}
	copia := *found
	return &copia, nil
}

func (r *fakeMaterialRepo) Update(m *entity.Material) error {
	r.s.materials[m.ID] = m
	return nil
}

func (r *fakeMaterialRepo) UpdateStock(materialID string, stock decimal.Decimal) error {
	m, ok := r.s.materials[materialID]
	if !ok {
		return domain.ErrNotFound
	}
	if stock.IsNegative() {
		// mismo comportamiento que el CHECK stock >= 0 de la tabla
		return domain.ErrInsufficientStock
	}
	m.Stock = stock
	return nil
}

func (r *fakeMaterialRepo) List() ([]*entity.Material, error) {
	out := make([]*entity.Material, 0, len(r.s.materials))
	for _, m := range r.s.materials {
		out = append(out, m)
	}
	return out, nil
}

func (r *fakeMaterialRepo) Delete(id string) error {
	delete(r.s.materials, id)
	return nil
}

type fakePartnerRepo struct{ s *memStore }

func (r *fakePartnerRepo) Create(p *entity.Partner) error {
	r.s.partners[p.ID] = p
	return nil
}

func (r *fakePartnerRepo) GetByID(id string) (*entity.Partner, error) {
	p, ok := r.s.partners[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copia := *p
	return &copia, nil
}

func (r *fakePartnerRepo) GetByNameForUpdate(name string) (*entity.Partner, error) {
	for _, p := range r.s.partners {
		if equalsFold(p.Name, name) {
			copia := *p
			return &copia, nil
		}
	}
	return nil, nil
}

func (r *fakePartnerRepo) Update(p *entity.Partner) error {
	r.s.partners[p.ID] = p
	return nil
}

func (r *fakePartnerRepo) AddTotals(partnerID string, deltaVolume, deltaValue decimal.Decimal) error {
	p, ok := r.s.partners[partnerID]
	if !ok {
		return domain.ErrNotFound
	}
	p.TotalVolume = p.TotalVolume.Add(deltaVolume)
	p.TotalValue = p.TotalValue.Add(deltaValue)
	return nil
}

func (r *fakePartnerRepo) List() ([]*entity.Partner, error) {
	out := make([]*entity.Partner, 0, len(r.s.partners))
	for _, p := range r.s.partners {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakePartnerRepo) Delete(id string) error {
	delete(r.s.partners, id)
	return nil
}

type fakeTransactionRepo struct{ s *memStore }

func (r *fakeTransactionRepo) Create(tx *entity.Transaction) error {
	r.s.transactions[tx.ID] = tx
	return nil
}

func (r *fakeTransactionRepo) GetByID(id string) (*entity.Transaction, error) {
	tx, ok := r.s.transactions[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copia := *tx
	return &copia, nil
}

func (r *fakeTransactionRepo) Update(tx *entity.Transaction) error {
	if _, ok := r.s.transactions[tx.ID]; !ok {
		return domain.ErrNotFound
	}
	r.s.transactions[tx.ID] = tx
	return nil
}

func (r *fakeTransactionRepo) Delete(id string) error {
	if _, ok := r.s.transactions[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.transactions, id)
	return nil
}

func (r *fakeTransactionRepo) List(filter repository.TransactionFilter) ([]*entity.Transaction, error) {
	out := make([]*entity.Transaction, 0, len(r.s.transactions))
	for _, tx := range r.s.transactions {
		if filter.Type != "" && tx.Type != filter.Type {
			continue
		}
		out = append(out, tx)
	}
	return out, nil
}

func (r *fakeTransactionRepo) ListBetween(from, to time.Time) ([]*entity.Transaction, error) {
	out := make([]*entity.Transaction, 0)
	for _, tx := range r.s.transactions {
		if !tx.Date.Before(from) && tx.Date.Before(to) {
			out = append(out, tx)
		}
	}
	return out, nil
}

func (r *fakeTransactionRepo) CountByMaterial(materialID string) (int, error) {
	n := 0
	for _, tx := range r.s.transactions {
		if tx.MaterialID == materialID {
			n++
		}
	}
	return n, nil
}

// fakeTxRunner emula la atomicidad: snapshot antes, restore si el callback falla.
type fakeTxRunner struct{ s *memStore }

func (r *fakeTxRunner) Run(_ context.Context, fn func(
	materialRepo repository.MaterialRepository,
	partnerRepo repository.PartnerRepository,
	txRepo repository.TransactionRepository,
) error) error {
	snap := r.s.snapshot()
	err := fn(&fakeMaterialRepo{r.s}, &fakePartnerRepo{r.s}, &fakeTransactionRepo{r.s})
	if err != nil {
		r.s.restore(snap)
		return err
	}
	return nil
}

// equalsFold compara ignorando mayúsculas ASCII. Los nombres ya llegan
// normalizados NFC, así que alcanza para el fake.
func equalsFold(a, b string) bool {
	ra, rb := []rune(a), []rune(b)
	if len(ra) != len(rb) {
		return false
	}
	for i := range ra {
		ca, cb := ra[i], rb[i]
		if 'A' <= ca && ca <= 'Z' {
			ca += 'a' - 'A'
		}
		if 'A' <= cb && cb <= 'Z' {
			cb += 'a' - 'A'
		}
		if ca != cb {
			return false
		}
	}
	return true
}

// ──────────────────────────────────────────────────────────────────────────────
// Setup
// ──────────────────────────────────────────────────────────────────────────────

const (
	scrapCode  = "PHE-LIEU"
	powderCode = "BOT-NHUA"
	testUserID = "00000000-0000-0000-0000-0000000000aa"
)

func kg(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }
func vnd(v int64) decimal.Decimal  { return decimal.NewFromInt(v) }

// newTestLedger crea el caso de uso con los dos materiales de la planta.
func newTestLedger(t *testing.T, scrapStock, powderStock decimal.Decimal) (*ledger.LedgerUseCase, *memStore) {
	t.Helper()
	s := newMemStore()
	now := time.Now()
	s.materials["mat-scrap"] = &entity.Material{
		ID: "mat-scrap", Code: scrapCode, Name: "Nhựa Phế Liệu",
		Type: entity.MaterialTypeScrap, Stock: scrapStock, Unit: "kg",
		PricePerKg: vnd(8000), CreatedAt: now, UpdatedAt: now,
	}
	s.materials["mat-powder"] = &entity.Material{
		ID: "mat-powder", Code: powderCode, Name: "Bột Nhựa Thành Phẩm",
		Type: entity.MaterialTypePowder, Stock: powderStock, Unit: "kg",
		PricePerKg: vnd(22000), CreatedAt: now, UpdatedAt: now,
	}
	uc := ledger.NewLedgerUseCase(&fakeTxRunner{s}, &fakeTransactionRepo{s})
	return uc, s
}

func findPartner(s *memStore, name string) *entity.Partner {
	for _, p := range s.partners {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Imports
// ──────────────────────────────────────────────────────────────────────────────

// Dos compras al mismo proveedor: el stock y los acumulados deben sumar ambas.
func TestRecordImport_AcumulaStockYTotalesDelProveedor(t *testing.T) {
	uc, s := newTestLedger(t, decimal.Zero, decimal.Zero)
	ctx := context.Background()

	_, err := uc.RecordImport(ctx, ledger.MovementInputDTO{
		MaterialCode: scrapCode, PartnerName: "Vựa Tân Phát",
		Weight: kg(5400), PricePerKg: vnd(8000), UserID: testUserID,
	})
	require.NoError(t, err)

	_, err = uc.RecordImport(ctx, ledger.MovementInputDTO{
		MaterialCode: scrapCode, PartnerName: "Vựa Tân Phát",
		Weight: kg(2500), PricePerKg: vnd(8000), UserID: testUserID,
	})
	require.NoError(t, err)

	assert.True(t, s.materials["mat-scrap"].Stock.Equal(kg(7900)),
		"stock = 5400 + 2500 = 7900 kg, obtuvo %s", s.materials["mat-scrap"].Stock)

	p := findPartner(s, "Vựa Tân Phát")
	require.NotNil(t, p, "el proveedor debe crearse automáticamente")
	assert.Equal(t, entity.PartnerTypeSupplier, p.Type)
	assert.True(t, p.TotalVolume.Equal(kg(7900)))
	assert.True(t, p.TotalValue.Equal(vnd(63_200_000)),
		"total = 7900 × 8000 = 63.200.000 VND, obtuvo %s", p.TotalValue)

	assert.Len(t, s.transactions, 2)
}

// El socio se busca sin distinguir mayúsculas: "vựa tân phát" no duplica.
func TestRecordImport_BusquedaDeSocioSinMayusculas(t *testing.T) {
	uc, s := newTestLedger(t, decimal.Zero, decimal.Zero)
	ctx := context.Background()

	_, err := uc.RecordImport(ctx, ledger.MovementInputDTO{
		MaterialCode: scrapCode, PartnerName: "Cong Ty ABC",
		Weight: kg(100), PricePerKg: vnd(8000), UserID: testUserID,
	})
	require.NoError(t, err)

	_, err = uc.RecordImport(ctx, ledger.MovementInputDTO{
		MaterialCode: scrapCode, PartnerName: "cong ty abc",
		Weight: kg(50), PricePerKg: vnd(8000), UserID: testUserID,
	})
	require.NoError(t, err)

	assert.Len(t, s.partners, 1, "no debe crearse un socio duplicado")
}

// Material inexistente: la operación completa aborta sin crear nada.
func TestRecordImport_MaterialInexistente(t *testing.T) {
	uc, s := newTestLedger(t, decimal.Zero, decimal.Zero)

	_, err := uc.RecordImport(context.Background(), ledger.MovementInputDTO{
		MaterialCode: "NO-EXISTE", PartnerName: "Vựa X",
		Weight: kg(100), PricePerKg: vnd(8000), UserID: testUserID,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, s.partners, "no debe crearse el socio si el material no existe")
	assert.Empty(t, s.transactions)
}

// Peso cero o negativo → entrada inválida.
func TestRecordImport_PesoInvalido(t *testing.T) {
	uc, _ := newTestLedger(t, decimal.Zero, decimal.Zero)

	for _, w := range []decimal.Decimal{decimal.Zero, kg(-5)} {
		_, err := uc.RecordImport(context.Background(), ledger.MovementInputDTO{
			MaterialCode: scrapCode, PartnerName: "Vựa X",
			Weight: w, PricePerKg: vnd(8000), UserID: testUserID,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Exports
// ──────────────────────────────────────────────────────────────────────────────

// Venta que excede el stock: rechazo con INSUFFICIENT_STOCK y cero mutaciones.
func TestRecordExport_StockInsuficienteNoMutaNada(t *testing.T) {
	uc, s := newTestLedger(t, decimal.Zero, kg(12500))

	_, err := uc.RecordExport(context.Background(), ledger.MovementInputDTO{
		MaterialCode: powderCode, PartnerName: "Nhà máy Hòa Bình",
		Weight: kg(20000), PricePerKg: vnd(22000), UserID: testUserID,
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.True(t, s.materials["mat-powder"].Stock.Equal(kg(12500)),
		"el stock debe quedar intacto")
	assert.Empty(t, s.partners, "el cliente no debe crearse en una venta rechazada")
	assert.Empty(t, s.transactions)
}

// Venta válida: resta stock, crea el cliente como CUSTOMER y congela el valor.
func TestRecordExport_DescuentaStockYCreaCliente(t *testing.T) {
	uc, s := newTestLedger(t, decimal.Zero, kg(12500))

	out, err := uc.RecordExport(context.Background(), ledger.MovementInputDTO{
		MaterialCode: powderCode, PartnerName: "Nhà máy Hòa Bình",
		Weight: kg(10000), PricePerKg: vnd(22000), UserID: testUserID,
	})
	require.NoError(t, err)

	assert.True(t, s.materials["mat-powder"].Stock.Equal(kg(2500)))
	assert.True(t, out.TotalValue.Equal(vnd(220_000_000)),
		"valor = 10000 × 22000, obtuvo %s", out.TotalValue)

	p := findPartner(s, "Nhà máy Hòa Bình")
	require.NotNil(t, p)
	assert.Equal(t, entity.PartnerTypeCustomer, p.Type)
}

// El precio del material puede cambiar después: el valor de la transacción no.
func TestRecordExport_ValorCongeladoAlCrear(t *testing.T) {
	uc, s := newTestLedger(t, decimal.Zero, kg(5000))

	out, err := uc.RecordExport(context.Background(), ledger.MovementInputDTO{
		MaterialCode: powderCode, PartnerName: "Nhà máy X",
		Weight: kg(1000), PricePerKg: vnd(22000), UserID: testUserID,
	})
	require.NoError(t, err)

	// sube el precio de lista
	s.materials["mat-powder"].PricePerKg = vnd(25000)

	stored := s.transactions[out.ID]
	assert.True(t, stored.TotalValue.Equal(vnd(22_000_000)),
		"el snapshot no debe seguir al precio de lista")
}

// ──────────────────────────────────────────────────────────────────────────────
// Producción
// ──────────────────────────────────────────────────────────────────────────────

// 2000 kg de chatarra → −2000 scrap, +1900 polvo (rendimiento 95%).
func TestRecordProduction_AplicaRendimiento(t *testing.T) {
	uc, s := newTestLedger(t, kg(5000), kg(100))

	out, err := uc.RecordProduction(context.Background(), kg(2000), "", testUserID)
	require.NoError(t, err)

	assert.True(t, s.materials["mat-scrap"].Stock.Equal(kg(3000)),
		"scrap: 5000 − 2000 = 3000")
	assert.True(t, s.materials["mat-powder"].Stock.Equal(kg(2000)),
		"powder: 100 + 1900 = 2000, obtuvo %s", s.materials["mat-powder"].Stock)
	assert.Equal(t, entity.TransactionTypeProduction, out.Type)
	assert.True(t, out.TotalValue.IsZero(), "producción no tiene efecto de caja")
	assert.Contains(t, out.Note, "1900", "la nota debe nombrar los kg de salida")
}

// No hay chatarra suficiente: nada cambia.
func TestRecordProduction_ChatarraInsuficiente(t *testing.T) {
	uc, s := newTestLedger(t, kg(500), kg(100))

	_, err := uc.RecordProduction(context.Background(), kg(2000), "", testUserID)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.True(t, s.materials["mat-scrap"].Stock.Equal(kg(500)))
	assert.True(t, s.materials["mat-powder"].Stock.Equal(kg(100)))
	assert.Empty(t, s.transactions)
}

// ──────────────────────────────────────────────────────────────────────────────
// Gastos
// ──────────────────────────────────────────────────────────────────────────────

func TestRecordExpense_CategoriaInvalida(t *testing.T) {
	uc, _ := newTestLedger(t, decimal.Zero, decimal.Zero)

	_, err := uc.RecordExpense(context.Background(), ledger.ExpenseInputDTO{
		TotalValue: vnd(5_000_000), Category: "VIAJES", UserID: testUserID,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdateExpense_SoloGastosSonEditables(t *testing.T) {
	uc, s := newTestLedger(t, decimal.Zero, decimal.Zero)
	ctx := context.Background()

	imp, err := uc.RecordImport(ctx, ledger.MovementInputDTO{
		MaterialCode: scrapCode, PartnerName: "Vựa X",
		Weight: kg(100), PricePerKg: vnd(8000), UserID: testUserID,
	})
	require.NoError(t, err)

	nuevoValor := vnd(999)
	_, err = uc.UpdateExpense(ctx, imp.ID, ledger.ExpenseUpdateDTO{TotalValue: &nuevoValor})
	assert.ErrorIs(t, err, domain.ErrImmutable,
		"una transacción con efecto de stock no puede editarse")

	gasto, err := uc.RecordExpense(ctx, ledger.ExpenseInputDTO{
		TotalValue: vnd(5_000_000), Category: entity.ExpenseCategoryLabor, UserID: testUserID,
	})
	require.NoError(t, err)

	otraCategoria := entity.ExpenseCategoryMachinery
	updated, err := uc.UpdateExpense(ctx, gasto.ID, ledger.ExpenseUpdateDTO{
		TotalValue: &nuevoValor, Category: &otraCategoria,
	})
	require.NoError(t, err)
	assert.True(t, updated.TotalValue.Equal(vnd(999)))
	assert.Equal(t, entity.ExpenseCategoryMachinery, updated.Category)
	assert.True(t, s.transactions[gasto.ID].TotalValue.Equal(vnd(999)))
}

// ──────────────────────────────────────────────────────────────────────────────
// Borrado con reversión
// ──────────────────────────────────────────────────────────────────────────────

// Borrar un IMPORT revierte stock y acumulados del proveedor.
func TestDeleteTransaction_RevierteImport(t *testing.T) {
	uc, s := newTestLedger(t, decimal.Zero, decimal.Zero)
	ctx := context.Background()

	imp, err := uc.RecordImport(ctx, ledger.MovementInputDTO{
		MaterialCode: scrapCode, PartnerName: "Vựa Tân Phát",
		Weight: kg(3000), PricePerKg: vnd(8000), UserID: testUserID,
	})
	require.NoError(t, err)

	require.NoError(t, uc.DeleteTransaction(ctx, imp.ID))

	assert.True(t, s.materials["mat-scrap"].Stock.IsZero())
	p := findPartner(s, "Vựa Tân Phát")
	require.NotNil(t, p, "el socio sobrevive al borrado de la transacción")
	assert.True(t, p.TotalVolume.IsZero())
	assert.True(t, p.TotalValue.IsZero())
	assert.Empty(t, s.transactions)
}

// Borrar un EXPORT devuelve el stock y descuenta los acumulados del cliente.
func TestDeleteTransaction_RevierteExport(t *testing.T) {
	uc, s := newTestLedger(t, decimal.Zero, kg(10000))
	ctx := context.Background()

	exp, err := uc.RecordExport(ctx, ledger.MovementInputDTO{
		MaterialCode: powderCode, PartnerName: "Nhà máy Hòa Bình",
		Weight: kg(4000), PricePerKg: vnd(22000), UserID: testUserID,
	})
	require.NoError(t, err)
	require.True(t, s.materials["mat-powder"].Stock.Equal(kg(6000)))

	require.NoError(t, uc.DeleteTransaction(ctx, exp.ID))

	assert.True(t, s.materials["mat-powder"].Stock.Equal(kg(10000)))
	p := findPartner(s, "Nhà máy Hòa Bình")
	assert.True(t, p.TotalVolume.IsZero())
	assert.True(t, p.TotalValue.IsZero())
}

// Borrar una producción: devuelve la chatarra y retira el polvo producido.
func TestDeleteTransaction_RevierteProduccion(t *testing.T) {
	uc, s := newTestLedger(t, kg(5000), decimal.Zero)
	ctx := context.Background()

	prod, err := uc.RecordProduction(ctx, kg(2000), "", testUserID)
	require.NoError(t, err)

	require.NoError(t, uc.DeleteTransaction(ctx, prod.ID))

	assert.True(t, s.materials["mat-scrap"].Stock.Equal(kg(5000)))
	assert.True(t, s.materials["mat-powder"].Stock.IsZero())
}

// Borrar un IMPORT cuyo material ya salió de la planta dejaría stock negativo:
// rechazo y todo queda igual.
func TestDeleteTransaction_ReversionNoDejaStockNegativo(t *testing.T) {
	uc, s := newTestLedger(t, decimal.Zero, decimal.Zero)
	ctx := context.Background()

	imp, err := uc.RecordImport(ctx, ledger.MovementInputDTO{
		MaterialCode: scrapCode, PartnerName: "Vựa X",
		Weight: kg(2000), PricePerKg: vnd(8000), UserID: testUserID,
	})
	require.NoError(t, err)

	// se procesa casi toda la chatarra
	_, err = uc.RecordProduction(ctx, kg(1500), "", testUserID)
	require.NoError(t, err)

	err = uc.DeleteTransaction(ctx, imp.ID)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	// nada retrocedió
	assert.True(t, s.materials["mat-scrap"].Stock.Equal(kg(500)))
	p := findPartner(s, "Vựa X")
	assert.True(t, p.TotalVolume.Equal(kg(2000)),
		"los acumulados del socio no deben tocarse en un borrado rechazado")
	assert.Len(t, s.transactions, 2)
}

// Borrar un gasto no toca stock ni socios.
func TestDeleteTransaction_GastoSinEfectos(t *testing.T) {
	uc, s := newTestLedger(t, kg(100), kg(100))
	ctx := context.Background()

	gasto, err := uc.RecordExpense(ctx, ledger.ExpenseInputDTO{
		TotalValue: vnd(1_000_000), Category: entity.ExpenseCategoryOther, UserID: testUserID,
	})
	require.NoError(t, err)

	require.NoError(t, uc.DeleteTransaction(ctx, gasto.ID))
	assert.True(t, s.materials["mat-scrap"].Stock.Equal(kg(100)))
	assert.Empty(t, s.transactions)
}

func TestDeleteTransaction_Inexistente(t *testing.T) {
	uc, _ := newTestLedger(t, decimal.Zero, decimal.Zero)
	err := uc.DeleteTransaction(context.Background(), uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Invariante de acumulados
// ──────────────────────────────────────────────────────────────────────────────

// Tras una mezcla de altas y bajas, los acumulados del socio deben coincidir
// con la suma de sus transacciones vivas.
func TestPartnerTotals_CoincidenConTransaccionesVivas(t *testing.T) {
	uc, s := newTestLedger(t, decimal.Zero, decimal.Zero)
	ctx := context.Background()

	tx1, err := uc.RecordImport(ctx, ledger.MovementInputDTO{
		MaterialCode: scrapCode, PartnerName: "Vựa Tân Phát",
		Weight: kg(1000), PricePerKg: vnd(8000), UserID: testUserID,
	})
	require.NoError(t, err)
	_, err = uc.RecordImport(ctx, ledger.MovementInputDTO{
		MaterialCode: scrapCode, PartnerName: "Vựa Tân Phát",
		Weight: kg(600), PricePerKg: vnd(8500), UserID: testUserID,
	})
	require.NoError(t, err)

	require.NoError(t, uc.DeleteTransaction(ctx, tx1.ID))

	p := findPartner(s, "Vựa Tân Phát")
	require.NotNil(t, p)

	// queda solo la segunda compra
	wantVolume := kg(600)
	wantValue := kg(600).Mul(vnd(8500))
	assert.True(t, p.TotalVolume.Equal(wantVolume), "volumen %s ≠ %s", p.TotalVolume, wantVolume)
	assert.True(t, p.TotalValue.Equal(wantValue), "valor %s ≠ %s", p.TotalValue, wantValue)
}
