package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Roles válidos para User.
const (
	RoleAdmin = "ADMIN"
	RoleStaff = "STAFF"
)

// Estados de usuario.
const (
	UserStatusActive   = "ACTIVE"
	UserStatusInactive = "INACTIVE"
)

// User representa un miembro del personal de la planta. El rol decide los
// permisos (solo ADMIN gestiona personal y correcciones de stock).
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	FullName     string
	Role         string // ADMIN | STAFF
	Phone        string
	SalaryBase   decimal.Decimal // VND/mes
	Status       string          // ACTIVE | INACTIVE
	JoinedAt     time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
