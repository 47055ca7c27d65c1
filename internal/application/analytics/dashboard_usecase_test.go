package analytics_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qlkp/reciclaje-api/internal/application/analytics"
	"github.com/qlkp/reciclaje-api/internal/domain/entity"
	"github.com/qlkp/reciclaje-api/internal/domain/repository"
)

// stubReportRepo devuelve valores fijos.
type stubReportRepo struct {
	stock repository.StockTotals
	cash  repository.CashFlowTotals
}

func (r *stubReportRepo) GetStockTotals(_ context.Context) (repository.StockTotals, error) {
	return r.stock, nil
}

func (r *stubReportRepo) GetCashFlow(_ context.Context, _, _ time.Time) (repository.CashFlowTotals, error) {
	return r.cash, nil
}

func (r *stubReportRepo) GetExpenseByCategory(_ context.Context, _, _ time.Time) ([]repository.CategoryTotal, error) {
	return nil, nil
}

// stubTxRepo sirve una lista fija de transacciones.
type stubTxRepo struct {
	rows []*entity.Transaction
}

func (r *stubTxRepo) Create(*entity.Transaction) error            { return nil }
func (r *stubTxRepo) GetByID(string) (*entity.Transaction, error) { return nil, nil }
func (r *stubTxRepo) Update(*entity.Transaction) error            { return nil }
func (r *stubTxRepo) Delete(string) error                         { return nil }
func (r *stubTxRepo) CountByMaterial(string) (int, error)         { return 0, nil }

func (r *stubTxRepo) List(filter repository.TransactionFilter) ([]*entity.Transaction, error) {
	if filter.Limit > 0 && len(r.rows) > filter.Limit {
		return r.rows[:filter.Limit], nil
	}
	return r.rows, nil
}

func (r *stubTxRepo) ListBetween(from, to time.Time) ([]*entity.Transaction, error) {
	out := make([]*entity.Transaction, 0)
	for _, tx := range r.rows {
		if !tx.Date.Before(from) && tx.Date.Before(to) {
			out = append(out, tx)
		}
	}
	return out, nil
}

func kg(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func movement(txType string, date time.Time, weight int64) *entity.Transaction {
	return &entity.Transaction{
		ID:     txType + "-" + date.Format(time.RFC3339Nano),
		Date:   date,
		Type:   txType,
		Weight: kg(weight),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// GetSummary
// ──────────────────────────────────────────────────────────────────────────────

func TestGetSummary_AlertasDeStock(t *testing.T) {
	cases := []struct {
		name          string
		scrap, powder int64
		wantLow       bool
		wantOverstock bool
	}{
		{"planta sana", 5000, 10000, false, false},
		{"poca chatarra", 800, 10000, true, false},
		{"almacén de polvo lleno", 5000, 25000, false, true},
		{"ambas alertas", 999, 20001, true, true},
		{"justo en los umbrales", 1000, 20000, false, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc := analytics.NewDashboardUseCase(&stubReportRepo{
				stock: repository.StockTotals{Scrap: kg(tc.scrap), Powder: kg(tc.powder)},
				cash:  repository.CashFlowTotals{Revenue: kg(300), Expense: kg(100)},
			}, &stubTxRepo{})

			out, err := uc.GetSummary(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tc.wantLow, out.LowScrapAlert)
			assert.Equal(t, tc.wantOverstock, out.OverstockAlert)
			assert.True(t, out.MonthlyProfit.Equal(kg(200)),
				"ganancia = ingresos − egresos")
		})
	}
}

func TestGetSummary_MovimientosRecientesAcotados(t *testing.T) {
	rows := make([]*entity.Transaction, 0, 15)
	now := time.Now()
	for i := 0; i < 15; i++ {
		rows = append(rows, movement(entity.TransactionTypeImport, now.Add(-time.Duration(i)*time.Hour), 100))
	}
	uc := analytics.NewDashboardUseCase(&stubReportRepo{}, &stubTxRepo{rows: rows})

	out, err := uc.GetSummary(context.Background())
	require.NoError(t, err)
	assert.Len(t, out.RecentMovements, 10, "el widget muestra como máximo 10 movimientos")
}

// ──────────────────────────────────────────────────────────────────────────────
// GetChart
// ──────────────────────────────────────────────────────────────────────────────

func TestGetChart_Diario_SumaImportsYExportsPorDia(t *testing.T) {
	now := time.Now()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	// Horas extremas del día: la cubeta se elige por fecha calendario, la hora
	// estampada no importa aunque sea posterior al momento de la consulta.
	earlyToday := todayStart.Add(30 * time.Minute)
	lateToday := todayStart.Add(23*time.Hour + 30*time.Minute)

	uc := analytics.NewDashboardUseCase(&stubReportRepo{}, &stubTxRepo{rows: []*entity.Transaction{
		movement(entity.TransactionTypeImport, earlyToday, 2500),
		movement(entity.TransactionTypeImport, lateToday, 1000), // mismo día: se suma
		movement(entity.TransactionTypeExport, earlyToday, 800),
		movement(entity.TransactionTypeImport, todayStart.AddDate(0, 0, -2), 2000),  // antier
		movement(entity.TransactionTypeImport, todayStart.AddDate(0, 0, -10), 9999), // fuera de rango: se ignora
		movement(entity.TransactionTypeProduction, earlyToday, 5000),                // no es compra ni venta
		movement(entity.TransactionTypeExpense, earlyToday, 0),
	}})

	buckets, err := uc.GetChart(context.Background(), analytics.ChartPeriodDaily)
	require.NoError(t, err)
	require.Len(t, buckets, 7, "siempre 7 cubetas, con días vacíos en cero")

	last := buckets[6] // hoy
	assert.True(t, last.InputKg.Equal(kg(3500)), "hoy se compraron 2500+1000 kg, obtuvo %s", last.InputKg)
	assert.True(t, last.OutputKg.Equal(kg(800)), "hoy se vendieron 800 kg, obtuvo %s", last.OutputKg)

	antier := buckets[4]
	assert.True(t, antier.InputKg.Equal(kg(2000)))
	assert.True(t, antier.OutputKg.IsZero())

	// días sin movimiento quedan en cero, no desaparecen
	assert.True(t, buckets[5].InputKg.IsZero())
	assert.True(t, buckets[0].InputKg.IsZero())
}

func TestGetChart_Mensual_SeisCubetas(t *testing.T) {
	now := time.Now()
	thisMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	uc := analytics.NewDashboardUseCase(&stubReportRepo{}, &stubTxRepo{rows: []*entity.Transaction{
		movement(entity.TransactionTypeImport, thisMonth, 3000),
		movement(entity.TransactionTypeImport, thisMonth.AddDate(0, -1, 0), 1000),
		movement(entity.TransactionTypeImport, thisMonth.AddDate(0, -1, 5), 500),
		movement(entity.TransactionTypeExport, thisMonth.AddDate(0, -1, 10), 700),
	}})

	buckets, err := uc.GetChart(context.Background(), analytics.ChartPeriodMonthly)
	require.NoError(t, err)
	require.Len(t, buckets, 6)

	assert.True(t, buckets[5].InputKg.Equal(kg(3000)), "mes en curso")
	assert.True(t, buckets[4].InputKg.Equal(kg(1500)), "mes anterior: 1000+500")
	assert.True(t, buckets[4].OutputKg.Equal(kg(700)), "venta del mes anterior")
	assert.Equal(t, thisMonth.Format("01/2006"), buckets[5].Label)
}

func TestGetChart_PeriodoInvalido(t *testing.T) {
	uc := analytics.NewDashboardUseCase(&stubReportRepo{}, &stubTxRepo{})

	_, err := uc.GetChart(context.Background(), "weekly")
	assert.Error(t, err)
}
