package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// LoginRequest entrada para login. Identifier acepta email o teléfono.
type LoginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

// LoginResponse salida con token JWT y el perfil del usuario.
type LoginResponse struct {
	Token string        `json:"token"`
	User  StaffResponse `json:"user"`
}

// ChangePasswordRequest entrada para cambio de contraseña del usuario autenticado.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// StaffResponse salida de un miembro del personal (sin password).
type StaffResponse struct {
	ID         string          `json:"id"`
	Email      string          `json:"email"`
	FullName   string          `json:"full_name"`
	Role       string          `json:"role"`
	Phone      string          `json:"phone"`
	SalaryBase decimal.Decimal `json:"salary_base"`
	Status     string          `json:"status"`
	JoinedAt   time.Time       `json:"joined_at"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}
