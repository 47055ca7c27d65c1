package repository

import (
	"github.com/shopspring/decimal"

	"github.com/qlkp/reciclaje-api/internal/domain/entity"
)

// MaterialRepository define el puerto de persistencia para Material (DIP).
type MaterialRepository interface {
	Create(material *entity.Material) error
	GetByID(id string) (*entity.Material, error)
	GetByCode(code string) (*entity.Material, error)
	// GetByCodeForUpdate bloquea la fila del material (SELECT FOR UPDATE).
	// Usado por el libro dentro de transacciones de BD.
	GetByCodeForUpdate(code string) (*entity.Material, error)
	// GetByTypeForUpdate bloquea el material de un tipo dado (SCRAP o POWDER).
	// La planta tiene un material por tipo; si hubiera varios se toma el de
	// menor código para que el orden de bloqueo sea determinista.
	GetByTypeForUpdate(materialType string) (*entity.Material, error)
	Update(material *entity.Material) error
	// UpdateStock fija el stock absoluto del material (corrección de admin o
	// aplicación de delta ya calculado bajo lock).
	UpdateStock(materialID string, stock decimal.Decimal) error
	List() ([]*entity.Material, error)
	Delete(id string) error
}
