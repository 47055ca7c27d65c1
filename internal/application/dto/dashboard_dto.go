package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO resumen para la pantalla principal.
type DashboardSummaryDTO struct {
	ScrapStock      decimal.Decimal       `json:"scrap_stock"`
	PowderStock     decimal.Decimal       `json:"powder_stock"`
	MonthlyRevenue  decimal.Decimal       `json:"monthly_revenue"`
	MonthlyExpense  decimal.Decimal       `json:"monthly_expense"`
	MonthlyProfit   decimal.Decimal       `json:"monthly_profit"`
	LowScrapAlert   bool                  `json:"low_scrap_alert"`
	OverstockAlert  bool                  `json:"overstock_alert"`
	RecentMovements []TransactionResponse `json:"recent_movements"`
}

// ChartBucketDTO un punto de la gráfica de entrada/salida ("Biểu Đồ Nhập/Xuất").
// InputKg es el peso comprado (IMPORT) y OutputKg el peso vendido (EXPORT)
// en el mismo periodo.
type ChartBucketDTO struct {
	Label    string          `json:"label"`
	InputKg  decimal.Decimal `json:"input_kg"`
	OutputKg decimal.Decimal `json:"output_kg"`
}

// CashFlowReportDTO totales del reporte de caja.
type CashFlowReportDTO struct {
	Revenue    decimal.Decimal   `json:"revenue"`
	Expense    decimal.Decimal   `json:"expense"`
	Profit     decimal.Decimal   `json:"profit"`
	ByCategory map[string]string `json:"by_category,omitempty"`
}
