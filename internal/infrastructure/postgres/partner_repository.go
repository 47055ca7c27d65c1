package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/qlkp/reciclaje-api/internal/domain"
	"github.com/qlkp/reciclaje-api/internal/domain/entity"
	"github.com/qlkp/reciclaje-api/internal/domain/repository"
)

var _ repository.PartnerRepository = (*PartnerRepo)(nil)

// PartnerRepo implementación de PartnerRepository sobre PostgreSQL (usable con pool o tx).
type PartnerRepo struct {
	q Querier
}

// NewPartnerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPartnerRepository(q Querier) *PartnerRepo {
	return &PartnerRepo{q: q}
}

const partnerColumns = `id, name, type, phone, COALESCE(address, ''), total_volume, total_value, created_at, updated_at`

// Create persiste un nuevo socio con acumulados en cero.
func (r *PartnerRepo) Create(partner *entity.Partner) error {
	query := `
		INSERT INTO partners (id, name, type, phone, address, total_volume, total_value, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		partner.ID, partner.Name, partner.Type, partner.Phone, partner.Address,
		partner.TotalVolume, partner.TotalValue, partner.CreatedAt, partner.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert partner: %w", err)
	}
	return nil
}

// GetByID obtiene un socio por ID.
func (r *PartnerRepo) GetByID(id string) (*entity.Partner, error) {
	query := `SELECT ` + partnerColumns + ` FROM partners WHERE id = $1`
	return r.scanOne(query, id)
}

// GetByNameForUpdate busca por nombre sin distinguir mayúsculas y bloquea la fila.
// El índice único sobre LOWER(name) hace la búsqueda exacta e impide duplicados
// que solo difieran en capitalización. Devuelve nil, nil si no existe: para el
// caso de uso un socio ausente no es un error, es la señal de crearlo.
func (r *PartnerRepo) GetByNameForUpdate(name string) (*entity.Partner, error) {
	query := `SELECT ` + partnerColumns + ` FROM partners WHERE LOWER(name) = LOWER($1) FOR UPDATE`
	partner, err := r.scanOne(query, name)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	return partner, err
}

func (r *PartnerRepo) scanOne(query string, arg any) (*entity.Partner, error) {
	var p entity.Partner
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&p.ID, &p.Name, &p.Type, &p.Phone, &p.Address, &p.TotalVolume, &p.TotalValue,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, scanOneErr(err, "get partner")
	}
	return &p, nil
}

// Update actualiza los datos de contacto de un socio. No toca los acumulados.
func (r *PartnerRepo) Update(partner *entity.Partner) error {
	query := `
		UPDATE partners SET name = $2, type = $3, phone = $4, address = NULLIF($5, ''), updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		partner.ID, partner.Name, partner.Type, partner.Phone, partner.Address, partner.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update partner: %w", err)
	}
	return nil
}

// AddTotals suma deltas (pueden ser negativos) a los acumulados del socio.
func (r *PartnerRepo) AddTotals(partnerID string, deltaVolume, deltaValue decimal.Decimal) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE partners SET total_volume = total_volume + $2, total_value = total_value + $3, updated_at = now()
		 WHERE id = $1`,
		partnerID, deltaVolume, deltaValue,
	)
	if err != nil {
		return fmt.Errorf("add partner totals: %w", err)
	}
	return nil
}

// List lista los socios ordenados por nombre.
func (r *PartnerRepo) List() ([]*entity.Partner, error) {
	query := `SELECT ` + partnerColumns + ` FROM partners ORDER BY name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list partners: %w", err)
	}
	defer rows.Close()
	var list []*entity.Partner
	for rows.Next() {
		var p entity.Partner
		if err := rows.Scan(&p.ID, &p.Name, &p.Type, &p.Phone, &p.Address,
			&p.TotalVolume, &p.TotalValue, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan partner: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Delete elimina un socio por ID. Las transacciones que lo referencian quedan
// con partner_id en NULL (ON DELETE SET NULL).
func (r *PartnerRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM partners WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete partner: %w", err)
	}
	return nil
}
