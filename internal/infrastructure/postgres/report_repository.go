package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/qlkp/reciclaje-api/internal/domain/entity"
	"github.com/qlkp/reciclaje-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de solo lectura para el dashboard y los reportes.
type ReportRepo struct {
	pool *pgxpool.Pool
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{pool: pool}
}

// GetStockTotals suma el stock actual por tipo de material.
func (r *ReportRepo) GetStockTotals(ctx context.Context) (repository.StockTotals, error) {
	const query = `
	SELECT
	    COALESCE(SUM(stock) FILTER (WHERE type = $1), 0) AS scrap,
	    COALESCE(SUM(stock) FILTER (WHERE type = $2), 0) AS powder
	FROM materials`

	var totals repository.StockTotals
	err := r.pool.QueryRow(ctx, query, entity.MaterialTypeScrap, entity.MaterialTypePowder).
		Scan(&totals.Scrap, &totals.Powder)
	if err != nil {
		return repository.StockTotals{}, fmt.Errorf("report.GetStockTotals: %w", err)
	}
	return totals, nil
}

// GetCashFlow devuelve ingresos (EXPORT) y egresos (IMPORT + EXPENSE) del rango [from, to).
// PRODUCTION no tiene efecto de caja y queda fuera de ambos lados.
func (r *ReportRepo) GetCashFlow(ctx context.Context, from, to time.Time) (repository.CashFlowTotals, error) {
	const query = `
	SELECT
	    COALESCE(SUM(total_value) FILTER (WHERE type = 'EXPORT'), 0)                      AS revenue,
	    COALESCE(SUM(total_value) FILTER (WHERE type IN ('IMPORT', 'EXPENSE')), 0)        AS expense
	FROM transactions
	WHERE transaction_date >= $1 AND transaction_date < $2`

	var totals repository.CashFlowTotals
	err := r.pool.QueryRow(ctx, query, from, to).Scan(&totals.Revenue, &totals.Expense)
	if err != nil {
		return repository.CashFlowTotals{}, fmt.Errorf("report.GetCashFlow: %w", err)
	}
	return totals, nil
}

// GetExpenseByCategory agrupa los gastos del rango por categoría, ordenados por total descendente.
// Los gastos sin categoría se consolidan bajo OTHER.
func (r *ReportRepo) GetExpenseByCategory(ctx context.Context, from, to time.Time) ([]repository.CategoryTotal, error) {
	const query = `
	SELECT COALESCE(category, 'OTHER') AS category, SUM(total_value) AS total
	FROM transactions
	WHERE type = 'EXPENSE' AND transaction_date >= $1 AND transaction_date < $2
	GROUP BY COALESCE(category, 'OTHER')
	ORDER BY total DESC`

	rows, err := r.pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("report.GetExpenseByCategory: %w", err)
	}
	defer rows.Close()

	var results []repository.CategoryTotal
	for rows.Next() {
		var row repository.CategoryTotal
		if err := rows.Scan(&row.Category, &row.Total); err != nil {
			return nil, fmt.Errorf("report.GetExpenseByCategory scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
