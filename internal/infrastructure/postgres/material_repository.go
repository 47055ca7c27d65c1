package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/qlkp/reciclaje-api/internal/domain"
	"github.com/qlkp/reciclaje-api/internal/domain/entity"
	"github.com/qlkp/reciclaje-api/internal/domain/repository"
)

var _ repository.MaterialRepository = (*MaterialRepo)(nil)

// MaterialRepo implementación del puerto MaterialRepository sobre PostgreSQL (usable con pool o tx).
type MaterialRepo struct {
	q Querier
}

// NewMaterialRepository construye el adaptador de persistencia para materiales. Pasar pool o tx (Querier).
func NewMaterialRepository(q Querier) *MaterialRepo {
	return &MaterialRepo{q: q}
}

const materialColumns = `id, code, name, type, stock, unit, price_per_kg, created_at, updated_at`

// Create persiste un nuevo material.
func (r *MaterialRepo) Create(material *entity.Material) error {
	query := `
		INSERT INTO materials (id, code, name, type, stock, unit, price_per_kg, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		material.ID, material.Code, material.Name, material.Type, material.Stock,
		material.Unit, material.PricePerKg, material.CreatedAt, material.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert material: %w", err)
	}
	return nil
}

// GetByID obtiene un material por ID.
func (r *MaterialRepo) GetByID(id string) (*entity.Material, error) {
	query := `SELECT ` + materialColumns + ` FROM materials WHERE id = $1`
	return r.scanOne(query, id)
}

// GetByCode obtiene un material por su código único.
func (r *MaterialRepo) GetByCode(code string) (*entity.Material, error) {
	query := `SELECT ` + materialColumns + ` FROM materials WHERE code = $1`
	return r.scanOne(query, code)
}

// GetByCodeForUpdate obtiene el material y bloquea la fila (SELECT FOR UPDATE).
func (r *MaterialRepo) GetByCodeForUpdate(code string) (*entity.Material, error) {
	query := `SELECT ` + materialColumns + ` FROM materials WHERE code = $1 FOR UPDATE`
	return r.scanOne(query, code)
}

// GetByTypeForUpdate bloquea el material del tipo dado. Con varios materiales
// del mismo tipo toma el de menor código (orden de bloqueo determinista).
func (r *MaterialRepo) GetByTypeForUpdate(materialType string) (*entity.Material, error) {
	query := `SELECT ` + materialColumns + ` FROM materials WHERE type = $1 ORDER BY code LIMIT 1 FOR UPDATE`
	return r.scanOne(query, materialType)
}

func (r *MaterialRepo) scanOne(query string, arg any) (*entity.Material, error) {
	var m entity.Material
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&m.ID, &m.Code, &m.Name, &m.Type, &m.Stock, &m.Unit, &m.PricePerKg,
		&m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, scanOneErr(err, "get material")
	}
	return &m, nil
}

// Update actualiza un material. No toca Stock (se maneja vía transacciones del libro o UpdateStock).
func (r *MaterialRepo) Update(material *entity.Material) error {
	query := `
		UPDATE materials SET code = $2, name = $3, type = $4, unit = $5, price_per_kg = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		material.ID, material.Code, material.Name, material.Type, material.Unit,
		material.PricePerKg, material.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update material: %w", err)
	}
	return nil
}

// UpdateStock fija el stock absoluto del material. El CHECK (stock >= 0) de la
// tabla respalda el invariante ante cualquier cálculo erróneo del caller.
func (r *MaterialRepo) UpdateStock(materialID string, stock decimal.Decimal) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE materials SET stock = $2, updated_at = now() WHERE id = $1`,
		materialID, stock,
	)
	if err != nil {
		if isCheckViolation(err) {
			return domain.ErrInsufficientStock
		}
		return fmt.Errorf("update material stock: %w", err)
	}
	return nil
}

// List lista los materiales ordenados por tipo (SCRAP antes que POWDER).
func (r *MaterialRepo) List() ([]*entity.Material, error) {
	query := `SELECT ` + materialColumns + ` FROM materials ORDER BY type DESC, code`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list materials: %w", err)
	}
	defer rows.Close()
	var list []*entity.Material
	for rows.Next() {
		var m entity.Material
		if err := rows.Scan(&m.ID, &m.Code, &m.Name, &m.Type, &m.Stock, &m.Unit,
			&m.PricePerKg, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan material: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// Delete elimina un material por ID. El caller debe verificar antes que no
// existan transacciones que lo referencien.
func (r *MaterialRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM materials WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete material: %w", err)
	}
	return nil
}
