// Package report arma los reportes descargables: el libro en Excel y el
// flujo de caja en PDF ("Xuất Báo Cáo").
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/qlkp/reciclaje-api/internal/domain"
	"github.com/qlkp/reciclaje-api/internal/domain/repository"
)

// maxReportRange límite del rango de un reporte para no cargar el libro
// entero en memoria.
const maxReportRange = 366 * 24 * time.Hour

// ReportUseCase orquesta la recolección de datos y delega el formato en los
// generadores (Excel, PDF).
type ReportUseCase struct {
	txRepo     repository.TransactionRepository
	reportRepo repository.ReportRepository
	exporter   LedgerExporter
	pdfGen     CashFlowPDFGenerator
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(
	txRepo repository.TransactionRepository,
	reportRepo repository.ReportRepository,
	exporter LedgerExporter,
	pdfGen CashFlowPDFGenerator,
) *ReportUseCase {
	return &ReportUseCase{
		txRepo:     txRepo,
		reportRepo: reportRepo,
		exporter:   exporter,
		pdfGen:     pdfGen,
	}
}

// normalizeRange valida el rango y aplica el valor por defecto (mes en curso).
func normalizeRange(from, to time.Time) (time.Time, time.Time, error) {
	if from.IsZero() && to.IsZero() {
		now := time.Now()
		from = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		to = from.AddDate(0, 1, 0)
	}
	if !to.After(from) {
		return from, to, domain.ErrInvalidInput
	}
	if to.Sub(from) > maxReportRange {
		return from, to, domain.ErrInvalidInput
	}
	return from, to, nil
}

// ExportLedgerXLSX genera el Excel del libro para el rango [from, to).
// Devuelve los bytes y el nombre de archivo sugerido.
func (uc *ReportUseCase) ExportLedgerXLSX(ctx context.Context, from, to time.Time) ([]byte, string, error) {
	from, to, err := normalizeRange(from, to)
	if err != nil {
		return nil, "", err
	}
	rows, err := uc.txRepo.ListBetween(from, to)
	if err != nil {
		return nil, "", fmt.Errorf("reporte: libro: %w", err)
	}
	data, err := uc.exporter.ExportLedger(ctx, from, to, rows)
	if err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("so-giao-dich_%s_%s.xlsx", from.Format("20060102"), to.Format("20060102"))
	return data, filename, nil
}

// CashFlowPDF genera el PDF del reporte de caja para el rango [from, to).
func (uc *ReportUseCase) CashFlowPDF(ctx context.Context, from, to time.Time) ([]byte, string, error) {
	from, to, err := normalizeRange(from, to)
	if err != nil {
		return nil, "", err
	}

	totals, err := uc.reportRepo.GetCashFlow(ctx, from, to)
	if err != nil {
		return nil, "", fmt.Errorf("reporte: flujo de caja: %w", err)
	}
	byCategory, err := uc.reportRepo.GetExpenseByCategory(ctx, from, to)
	if err != nil {
		return nil, "", fmt.Errorf("reporte: gastos por categoría: %w", err)
	}
	movements, err := uc.txRepo.ListBetween(from, to)
	if err != nil {
		return nil, "", fmt.Errorf("reporte: movimientos: %w", err)
	}

	data, err := uc.pdfGen.GenerateCashFlowPDF(ctx, CashFlowData{
		From:       from,
		To:         to,
		Totals:     totals,
		ByCategory: byCategory,
		Movements:  movements,
	})
	if err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("bao-cao-dong-tien_%s_%s.pdf", from.Format("20060102"), to.Format("20060102"))
	return data, filename, nil
}
