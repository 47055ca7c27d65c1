package excel

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/qlkp/reciclaje-api/internal/domain/entity"
)

func TestExportLedger_ArchivoLegiblePorExcel(t *testing.T) {
	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.Local)
	to := time.Date(2026, 4, 1, 0, 0, 0, 0, time.Local)

	rows := []*entity.Transaction{
		{
			Date:          time.Date(2026, 3, 5, 9, 30, 0, 0, time.Local),
			Type:          entity.TransactionTypeImport,
			MaterialName:  "Nhựa Phế Liệu",
			PartnerName:   "Vựa Tâm Phát",
			Weight:        decimal.NewFromInt(5400),
			TotalValue:    decimal.NewFromInt(43200000),
			Note:          "lote de la mañana",
			CreatedByName: "Chủ Xưởng",
		},
		{
			Date:       time.Date(2026, 3, 20, 14, 0, 0, 0, time.Local),
			Type:       entity.TransactionTypeExpense,
			TotalValue: decimal.NewFromInt(1500000),
			Category:   entity.ExpenseCategoryMachinery,
		},
	}

	data, err := NewLedgerExporter().ExportLedger(context.Background(), from, to, rows)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	// reabrimos el archivo generado con la misma librería
	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())

	header, err := f.GetCellValue(sheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Fecha", header)

	material, _ := f.GetCellValue(sheet, "C2")
	assert.Equal(t, "Nhựa Phế Liệu", material)

	weight, _ := f.GetCellValue(sheet, "E2")
	assert.Equal(t, "5400", weight, "el peso se guarda como número, no como texto")

	category, _ := f.GetCellValue(sheet, "G3")
	assert.Equal(t, entity.ExpenseCategoryMachinery, category)

	// pie con el período, una fila debajo de la última transacción
	footer, _ := f.GetCellValue(sheet, "A5")
	assert.Contains(t, footer, "01/03/2026")
}

func TestExportLedger_SinMovimientos(t *testing.T) {
	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.Local)
	to := time.Date(2026, 4, 1, 0, 0, 0, 0, time.Local)

	data, err := NewLedgerExporter().ExportLedger(context.Background(), from, to, nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	header, _ := f.GetCellValue(sheet, "I1")
	assert.Equal(t, "Registrado por", header)
}
