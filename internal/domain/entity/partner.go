package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de socio comercial.
const (
	PartnerTypeSupplier = "SUPPLIER" // vựa: proveedor de plástico de desecho
	PartnerTypeCustomer = "CUSTOMER" // nhà máy: fábrica compradora de polvo
)

// Partner representa un proveedor o cliente con acumulados de volumen y valor.
// TotalVolume/TotalValue se ajustan por delta en la misma transacción de BD que
// crea o borra cada transacción del libro; deben coincidir con la suma de las
// transacciones vivas que lo referencian.
type Partner struct {
	ID          string
	Name        string
	Type        string // SUPPLIER | CUSTOMER
	Phone       string
	Address     string
	TotalVolume decimal.Decimal // kg acumulados
	TotalValue  decimal.Decimal // VND acumulados
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
