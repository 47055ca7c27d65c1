package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// StockTotals stock agregado por tipo de material.
type StockTotals struct {
	Scrap  decimal.Decimal // kg de desecho en planta
	Powder decimal.Decimal // kg de polvo terminado
}

// CashFlowTotals ingresos y egresos de un período.
// Revenue = suma de EXPORT; Expense = suma de IMPORT + EXPENSE.
type CashFlowTotals struct {
	Revenue decimal.Decimal
	Expense decimal.Decimal
}

// CategoryTotal gasto acumulado de una categoría en un período.
type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
}

// ReportRepository define las consultas de solo lectura para el dashboard y
// los reportes. Las implementaciones no modifican datos.
type ReportRepository interface {
	// GetStockTotals suma el stock actual por tipo de material.
	GetStockTotals(ctx context.Context) (StockTotals, error)

	// GetCashFlow devuelve ingresos y egresos del rango [from, to).
	// Usa COALESCE para devolver cero en períodos sin movimientos.
	GetCashFlow(ctx context.Context, from, to time.Time) (CashFlowTotals, error)

	// GetExpenseByCategory agrupa los gastos EXPENSE del rango por categoría,
	// ordenados por total descendente.
	GetExpenseByCategory(ctx context.Context, from, to time.Time) ([]CategoryTotal, error)
}
