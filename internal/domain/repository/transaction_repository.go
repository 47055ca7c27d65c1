package repository

import (
	"time"

	"github.com/qlkp/reciclaje-api/internal/domain/entity"
)

// TransactionFilter filtros para listados del libro.
type TransactionFilter struct {
	Type     string // vacío = todos
	Category string // solo aplica con Type=EXPENSE
	Limit    int
	Offset   int
}

// TransactionRepository define el puerto de persistencia para el libro de
// transacciones. Create/Delete se invocan dentro de transacciones de BD junto
// con los ajustes de stock y acumulados.
type TransactionRepository interface {
	Create(tx *entity.Transaction) error
	GetByID(id string) (*entity.Transaction, error)
	// Update solo persiste los campos editables (fecha, valor, categoría, nota).
	Update(tx *entity.Transaction) error
	Delete(id string) error
	// List devuelve transacciones con nombres de material/socio/creador
	// resueltos, ordenadas por fecha descendente.
	List(filter TransactionFilter) ([]*entity.Transaction, error)
	// ListBetween devuelve las transacciones del rango [from, to) en orden
	// cronológico (para el gráfico del dashboard y los reportes).
	ListBetween(from, to time.Time) ([]*entity.Transaction, error)
	// CountByMaterial cuenta las transacciones que referencian un material
	// (bloqueo de borrado de materiales).
	CountByMaterial(materialID string) (int, error)
}
