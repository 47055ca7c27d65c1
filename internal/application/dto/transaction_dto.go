package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateImportRequest body para POST /api/transactions/import.
// El socio se busca por nombre (sin distinguir mayúsculas) y se crea como
// SUPPLIER si no existe.
type CreateImportRequest struct {
	MaterialCode string          `json:"material_code"`
	PartnerName  string          `json:"partner_name"`
	Weight       decimal.Decimal `json:"weight"`
	PricePerKg   decimal.Decimal `json:"price_per_kg"`
	Note         string          `json:"note,omitempty"`
}

// CreateExportRequest body para POST /api/transactions/export.
// Simétrico al import; el socio se crea como CUSTOMER si no existe.
type CreateExportRequest struct {
	MaterialCode string          `json:"material_code"`
	PartnerName  string          `json:"partner_name"`
	Weight       decimal.Decimal `json:"weight"`
	PricePerKg   decimal.Decimal `json:"price_per_kg"`
	Note         string          `json:"note,omitempty"`
}

// CreateProductionRequest body para POST /api/transactions/production.
type CreateProductionRequest struct {
	ScrapWeight decimal.Decimal `json:"scrap_weight"`
	Note        string          `json:"note,omitempty"`
}

// CreateExpenseRequest body para POST /api/transactions/expense.
type CreateExpenseRequest struct {
	TotalValue decimal.Decimal `json:"total_value"`
	Category   string          `json:"category"` // MATERIAL | LABOR | MACHINERY | OTHER
	Note       string          `json:"note,omitempty"`
	Date       *time.Time      `json:"date,omitempty"` // por defecto now()
}

// UpdateExpenseRequest body para PUT /api/transactions/:id (solo gastos).
type UpdateExpenseRequest struct {
	TotalValue *decimal.Decimal `json:"total_value,omitempty"`
	Category   *string          `json:"category,omitempty"`
	Note       *string          `json:"note,omitempty"`
	Date       *time.Time       `json:"date,omitempty"`
}

// TransactionResponse salida de una transacción del libro.
type TransactionResponse struct {
	ID           string          `json:"id"`
	Date         time.Time       `json:"date"`
	Type         string          `json:"type"`
	MaterialID   string          `json:"material_id,omitempty"`
	MaterialName string          `json:"material_name,omitempty"`
	PartnerID    string          `json:"partner_id,omitempty"`
	PartnerName  string          `json:"partner_name,omitempty"`
	Weight       decimal.Decimal `json:"weight"`
	TotalValue   decimal.Decimal `json:"total_value"`
	Category     string          `json:"category,omitempty"`
	Note         string          `json:"note,omitempty"`
	CreatedBy    string          `json:"created_by,omitempty"`
}

// TransactionListResponse listado paginado del libro.
type TransactionListResponse struct {
	Items []TransactionResponse `json:"items"`
	Page  PageResponse          `json:"page"`
}
