package report

import (
	"context"
	"time"

	"github.com/qlkp/reciclaje-api/internal/domain/entity"
	"github.com/qlkp/reciclaje-api/internal/domain/repository"
)

// LedgerExporter genera el archivo Excel con el libro de transacciones.
type LedgerExporter interface {
	ExportLedger(ctx context.Context, from, to time.Time, rows []*entity.Transaction) ([]byte, error)
}

// CashFlowData datos ya agregados para el reporte de caja.
type CashFlowData struct {
	From       time.Time
	To         time.Time
	Totals     repository.CashFlowTotals
	ByCategory []repository.CategoryTotal
	Movements  []*entity.Transaction
}

// CashFlowPDFGenerator genera la representación PDF del reporte de caja.
type CashFlowPDFGenerator interface {
	GenerateCashFlowPDF(ctx context.Context, data CashFlowData) ([]byte, error)
}
