// Package analytics contiene los casos de uso de solo lectura del dashboard:
// resumen de planta, flujo de caja del mes y gráfica de entrada/salida.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/qlkp/reciclaje-api/internal/application/dto"
	"github.com/qlkp/reciclaje-api/internal/application/ledger"
	"github.com/qlkp/reciclaje-api/internal/domain"
	"github.com/qlkp/reciclaje-api/internal/domain/entity"
	"github.com/qlkp/reciclaje-api/internal/domain/repository"
)

const dashboardRecentMovements = 10 // filas en el widget de últimos movimientos

// Umbrales de alerta de la planta, en kg.
var (
	lowScrapThreshold  = decimal.NewFromInt(1000)  // menos de esto y la máquina se queda sin materia prima
	overstockThreshold = decimal.NewFromInt(20000) // más polvo que esto y el almacén se desborda
)

// Periodos válidos para la gráfica de entrada/salida.
const (
	ChartPeriodDaily   = "daily"   // últimos 7 días, un punto por día
	ChartPeriodMonthly = "monthly" // últimos 6 meses, un punto por mes
)

// DashboardUseCase genera el resumen de planta y la gráfica de entrada/salida.
//
// Fuente de datos: ReportRepository y TransactionRepository (consultas read-only).
type DashboardUseCase struct {
	reportRepo repository.ReportRepository
	txRepo     repository.TransactionRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(reportRepo repository.ReportRepository, txRepo repository.TransactionRepository) *DashboardUseCase {
	return &DashboardUseCase{reportRepo: reportRepo, txRepo: txRepo}
}

// GetSummary construye el DashboardSummaryDTO.
//
// Tres llamadas en paralelo:
//  1. GetStockTotals          → stocks + alertas
//  2. GetCashFlow(mes)        → ingresos/egresos/ganancia del mes
//  3. List(últimos N)         → movimientos recientes
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthEnd := monthStart.AddDate(0, 1, 0)

	type stockResult struct {
		totals repository.StockTotals
		err    error
	}
	type cashResult struct {
		totals repository.CashFlowTotals
		err    error
	}
	type recentResult struct {
		rows []*entity.Transaction
		err  error
	}

	stockCh := make(chan stockResult, 1)
	cashCh := make(chan cashResult, 1)
	recentCh := make(chan recentResult, 1)

	go func() {
		totals, err := uc.reportRepo.GetStockTotals(ctx)
		stockCh <- stockResult{totals, err}
	}()
	go func() {
		totals, err := uc.reportRepo.GetCashFlow(ctx, monthStart, monthEnd)
		cashCh <- cashResult{totals, err}
	}()
	go func() {
		rows, err := uc.txRepo.List(repository.TransactionFilter{Limit: dashboardRecentMovements})
		recentCh <- recentResult{rows, err}
	}()

	stock := <-stockCh
	cash := <-cashCh
	recent := <-recentCh

	if stock.err != nil {
		return nil, fmt.Errorf("dashboard: stock: %w", stock.err)
	}
	if cash.err != nil {
		return nil, fmt.Errorf("dashboard: flujo de caja: %w", cash.err)
	}
	if recent.err != nil {
		return nil, fmt.Errorf("dashboard: movimientos recientes: %w", recent.err)
	}

	movements := make([]dto.TransactionResponse, 0, len(recent.rows))
	for _, tx := range recent.rows {
		movements = append(movements, ledger.ToTransactionResponse(tx))
	}

	return &dto.DashboardSummaryDTO{
		ScrapStock:      stock.totals.Scrap,
		PowderStock:     stock.totals.Powder,
		MonthlyRevenue:  cash.totals.Revenue,
		MonthlyExpense:  cash.totals.Expense,
		MonthlyProfit:   cash.totals.Revenue.Sub(cash.totals.Expense),
		LowScrapAlert:   stock.totals.Scrap.LessThan(lowScrapThreshold),
		OverstockAlert:  stock.totals.Powder.GreaterThan(overstockThreshold),
		RecentMovements: movements,
	}, nil
}

// GetChart construye la gráfica de entrada/salida ("Biểu Đồ Nhập/Xuất"):
// kg comprados (IMPORT) y kg vendidos (EXPORT) por cubeta de tiempo.
// period = "daily" (7 días) o "monthly" (6 meses).
func (uc *DashboardUseCase) GetChart(ctx context.Context, period string) ([]dto.ChartBucketDTO, error) {
	now := time.Now()
	var from, to time.Time
	var buckets []dto.ChartBucketDTO
	var keyOf func(t time.Time) int

	switch period {
	case ChartPeriodDaily:
		dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		from = dayStart.AddDate(0, 0, -6)
		to = dayStart.AddDate(0, 0, 1)
		buckets = make([]dto.ChartBucketDTO, 7)
		// Indexar por día calendario, no por horas transcurridas: los días de
		// cambio de horario no duran 24h y las fechas con hora manual pueden
		// venir estampadas más tarde que now.
		dayIndex := make(map[string]int, len(buckets))
		for i := range buckets {
			day := from.AddDate(0, 0, i)
			buckets[i] = emptyBucket(day.Format("02/01"))
			dayIndex[day.Format("2006-01-02")] = i
		}
		keyOf = func(t time.Time) int {
			i, ok := dayIndex[t.Format("2006-01-02")]
			if !ok {
				return -1
			}
			return i
		}
	case ChartPeriodMonthly:
		monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		from = monthStart.AddDate(0, -5, 0)
		to = monthStart.AddDate(0, 1, 0)
		buckets = make([]dto.ChartBucketDTO, 6)
		for i := range buckets {
			buckets[i] = emptyBucket(from.AddDate(0, i, 0).Format("01/2006"))
		}
		keyOf = func(t time.Time) int {
			return (t.Year()-from.Year())*12 + int(t.Month()) - int(from.Month())
		}
	default:
		return nil, domain.ErrInvalidInput
	}

	rows, err := uc.txRepo.ListBetween(from, to)
	if err != nil {
		return nil, fmt.Errorf("dashboard: gráfica: %w", err)
	}

	// Pliegue puro sobre los movimientos de stock del rango: compras a entrada,
	// ventas a salida. PRODUCTION y EXPENSE no aparecen en esta gráfica.
	for _, tx := range rows {
		i := keyOf(tx.Date.In(now.Location()))
		if i < 0 || i >= len(buckets) {
			continue
		}
		switch tx.Type {
		case entity.TransactionTypeImport:
			buckets[i].InputKg = buckets[i].InputKg.Add(tx.Weight)
		case entity.TransactionTypeExport:
			buckets[i].OutputKg = buckets[i].OutputKg.Add(tx.Weight)
		}
	}
	return buckets, nil
}

func emptyBucket(label string) dto.ChartBucketDTO {
	return dto.ChartBucketDTO{
		Label:    label,
		InputKg:  decimal.Zero,
		OutputKg: decimal.Zero,
	}
}
