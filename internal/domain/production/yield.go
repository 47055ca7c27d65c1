package production

import "github.com/shopspring/decimal"

// YieldRate es el rendimiento fijo del proceso de molienda: por cada kg de
// plástico de desecho entran 0.95 kg de polvo al inventario. El 5% restante es
// merma del proceso y no se registra como entidad.
var YieldRate = decimal.NewFromFloat(0.95)

// PowderOutput calcula los kg de polvo producidos a partir de scrapInput kg de
// desecho (servicio de dominio). Salida = entrada × 0.95, redondeada a 3
// decimales (precisión de la columna de stock).
func PowderOutput(scrapInput decimal.Decimal) decimal.Decimal {
	return scrapInput.Mul(YieldRate).Round(3)
}
