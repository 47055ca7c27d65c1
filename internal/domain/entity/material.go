package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de material.
const (
	MaterialTypeScrap  = "SCRAP"  // nhựa phế (plástico de desecho, materia prima)
	MaterialTypePowder = "POWDER" // bột nhựa (polvo de plástico, producto terminado)
)

// Material representa un material de la planta (materia prima o producto terminado).
// Stock se muta únicamente vía transacciones del libro (o la corrección manual de admin);
// nunca puede quedar negativo.
type Material struct {
	ID         string
	Code       string // código único, ej. PHE-LIEU, BOT-NHUA
	Name       string
	Type       string          // SCRAP | POWDER
	Stock      decimal.Decimal // kg
	Unit       string          // "kg"
	PricePerKg decimal.Decimal // precio de referencia VND/kg; las transacciones guardan su propio snapshot
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
