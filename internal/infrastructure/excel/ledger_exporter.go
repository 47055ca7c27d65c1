// Package excel genera el libro de transacciones en formato XLSX para
// descarga desde la interfaz web.
package excel

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/qlkp/reciclaje-api/internal/application/report"
	"github.com/qlkp/reciclaje-api/internal/domain/entity"
)

// Ensure LedgerExporter implements report.LedgerExporter.
var _ report.LedgerExporter = (*LedgerExporter)(nil)

// LedgerExporter implementa report.LedgerExporter usando excelize.
type LedgerExporter struct{}

// NewLedgerExporter construye el exportador.
func NewLedgerExporter() *LedgerExporter { return &LedgerExporter{} }

// ExportLedger escribe las transacciones en una hoja, una fila por movimiento,
// con los valores numéricos como números (no texto) para que Excel pueda sumar.
func (e *LedgerExporter) ExportLedger(_ context.Context, from, to time.Time, rows []*entity.Transaction) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())

	header := []interface{}{
		"Fecha",
		"Tipo",
		"Material",
		"Socio",
		"Peso (kg)",
		"Valor (VND)",
		"Categoría",
		"Nota",
		"Registrado por",
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("excel: encabezado: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err == nil {
		_ = f.SetCellStyle(sheet, "A1", "I1", bold)
	}

	rowNum := 2
	for _, tx := range rows {
		weight, _ := tx.Weight.Float64()
		value, _ := tx.TotalValue.Float64()
		excelRow := []interface{}{
			tx.Date.Format("02/01/2006 15:04"),
			tx.Type,
			tx.MaterialName,
			tx.PartnerName,
			weight,
			value,
			tx.Category,
			tx.Note,
			tx.CreatedByName,
		}
		cell := fmt.Sprintf("A%d", rowNum)
		if err := f.SetSheetRow(sheet, cell, &excelRow); err != nil {
			return nil, fmt.Errorf("excel: fila %d: %w", rowNum, err)
		}
		rowNum++
	}

	// Anchos legibles para fecha, nombres y nota
	_ = f.SetColWidth(sheet, "A", "A", 17)
	_ = f.SetColWidth(sheet, "C", "D", 24)
	_ = f.SetColWidth(sheet, "H", "H", 32)

	_ = f.SetCellValue(sheet, fmt.Sprintf("A%d", rowNum+1),
		fmt.Sprintf("Período: %s - %s", from.Format("02/01/2006"), to.Format("02/01/2006")))

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("excel: escribir archivo: %w", err)
	}
	return buf.Bytes(), nil
}
