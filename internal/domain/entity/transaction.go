package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de transacción del libro.
const (
	TransactionTypeImport     = "IMPORT"     // nhập kho: compra de material de desecho (egreso de caja)
	TransactionTypeExport     = "EXPORT"     // xuất kho: venta de polvo (ingreso de caja)
	TransactionTypeProduction = "PRODUCTION" // sản xuất: conversión scrap -> polvo, sin efecto de caja
	TransactionTypeExpense    = "EXPENSE"    // chi phí: gasto operativo sin efecto de stock
)

// Categorías de gasto (solo para EXPENSE).
const (
	ExpenseCategoryMaterial  = "MATERIAL"
	ExpenseCategoryLabor     = "LABOR"
	ExpenseCategoryMachinery = "MACHINERY"
	ExpenseCategoryOther     = "OTHER"
)

// Transaction es una entrada del libro de movimientos. No hay campo de estado:
// existencia = activa, ausencia = borrada (el borrado revierte sus efectos).
// Weight y TotalValue son snapshots tomados al crear; en tipos con efecto de
// stock (IMPORT/EXPORT/PRODUCTION) son inmutables, por lo que la reversión del
// borrado siempre usa los valores originales.
type Transaction struct {
	ID         string
	Date       time.Time
	Type       string // IMPORT | EXPORT | PRODUCTION | EXPENSE
	MaterialID string // vacío para EXPENSE
	PartnerID  string // vacío para PRODUCTION y EXPENSE
	Weight     decimal.Decimal // kg; cero para EXPENSE
	TotalValue decimal.Decimal // VND; weight × precio unitario al momento de crear
	Category   string          // solo EXPENSE
	Note       string
	CreatedBy  string // UserID
	CreatedAt  time.Time

	// Nombres denormalizados para listados (JOIN en el repositorio, no persisten).
	MaterialName  string
	PartnerName   string
	CreatedByName string
}

// IsExpense indica si la transacción es un gasto editable.
func (t *Transaction) IsExpense() bool {
	return t.Type == TransactionTypeExpense
}
