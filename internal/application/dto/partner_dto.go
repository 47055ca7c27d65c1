package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePartnerRequest entrada para crear un socio.
type CreatePartnerRequest struct {
	Name    string `json:"name"`
	Type    string `json:"type"` // SUPPLIER | CUSTOMER
	Phone   string `json:"phone"`
	Address string `json:"address,omitempty"`
}

// UpdatePartnerRequest entrada para actualizar un socio (campos opcionales).
type UpdatePartnerRequest struct {
	Name    *string `json:"name,omitempty"`
	Type    *string `json:"type,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Address *string `json:"address,omitempty"`
}

// PartnerResponse salida de un socio con sus acumulados.
type PartnerResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Type        string          `json:"type"`
	Phone       string          `json:"phone"`
	Address     string          `json:"address,omitempty"`
	TotalVolume decimal.Decimal `json:"total_volume"`
	TotalValue  decimal.Decimal `json:"total_value"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
