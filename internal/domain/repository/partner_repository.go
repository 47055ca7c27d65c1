package repository

import (
	"github.com/shopspring/decimal"

	"github.com/qlkp/reciclaje-api/internal/domain/entity"
)

// PartnerRepository define el puerto de persistencia para Partner (DIP).
type PartnerRepository interface {
	Create(partner *entity.Partner) error
	GetByID(id string) (*entity.Partner, error)
	// GetByNameForUpdate busca por nombre sin distinguir mayúsculas (el caller
	// normaliza Unicode antes) y bloquea la fila. Devuelve nil, nil si no existe.
	GetByNameForUpdate(name string) (*entity.Partner, error)
	Update(partner *entity.Partner) error
	// AddTotals suma los deltas a los acumulados del socio (negativos para
	// revertir). Debe ejecutarse en la misma transacción de BD que el cambio
	// del libro que los origina.
	AddTotals(partnerID string, deltaVolume, deltaValue decimal.Decimal) error
	List() ([]*entity.Partner, error)
	Delete(id string) error
}
