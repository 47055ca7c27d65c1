package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateStaffRequest body para POST /api/staff (solo ADMIN).
type CreateStaffRequest struct {
	Email      string          `json:"email"`
	Password   string          `json:"password"`
	FullName   string          `json:"full_name"`
	Role       string          `json:"role"` // ADMIN | STAFF
	Phone      string          `json:"phone,omitempty"`
	SalaryBase decimal.Decimal `json:"salary_base"`
	JoinedAt   *time.Time      `json:"joined_at,omitempty"`
}

// UpdateStaffRequest body para PUT /api/staff/:id (solo ADMIN).
// El correo y la contraseña no se cambian por esta ruta.
type UpdateStaffRequest struct {
	FullName   *string          `json:"full_name,omitempty"`
	Role       *string          `json:"role,omitempty"`
	Phone      *string          `json:"phone,omitempty"`
	SalaryBase *decimal.Decimal `json:"salary_base,omitempty"`
	Status     *string          `json:"status,omitempty"` // ACTIVE | INACTIVE
}
