package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateMaterialRequest entrada para crear un material.
type CreateMaterialRequest struct {
	Code       string          `json:"code"`
	Name       string          `json:"name"`
	Type       string          `json:"type"` // SCRAP | POWDER
	Unit       string          `json:"unit"`
	PricePerKg decimal.Decimal `json:"price_per_kg"`
}

// UpdateMaterialRequest entrada para actualizar un material (campos opcionales).
type UpdateMaterialRequest struct {
	Code       *string          `json:"code,omitempty"`
	Name       *string          `json:"name,omitempty"`
	Type       *string          `json:"type,omitempty"`
	Unit       *string          `json:"unit,omitempty"`
	PricePerKg *decimal.Decimal `json:"price_per_kg,omitempty"`
}

// CorrectStockRequest entrada para la corrección manual de stock (solo admin).
type CorrectStockRequest struct {
	Stock decimal.Decimal `json:"stock"`
	Note  string          `json:"note,omitempty"`
}

// MaterialResponse salida de un material.
type MaterialResponse struct {
	ID         string          `json:"id"`
	Code       string          `json:"code"`
	Name       string          `json:"name"`
	Type       string          `json:"type"`
	Stock      decimal.Decimal `json:"stock"`
	Unit       string          `json:"unit"`
	PricePerKg decimal.Decimal `json:"price_per_kg"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}
