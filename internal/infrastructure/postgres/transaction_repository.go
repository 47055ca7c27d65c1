package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/qlkp/reciclaje-api/internal/domain/entity"
	"github.com/qlkp/reciclaje-api/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

// TransactionRepo implementación del puerto TransactionRepository sobre PostgreSQL (usable con pool o tx).
type TransactionRepo struct {
	q Querier
}

// NewTransactionRepository construye el adaptador del libro. Pasar pool o tx (Querier).
func NewTransactionRepository(q Querier) *TransactionRepo {
	return &TransactionRepo{q: q}
}

// selectWithNames resuelve nombres de material, socio y creador vía LEFT JOIN
// (las referencias son opcionales según el tipo de transacción).
const selectWithNames = `
	SELECT t.id, t.transaction_date, t.type,
	       COALESCE(t.material_id::TEXT, ''), COALESCE(t.partner_id::TEXT, ''),
	       COALESCE(t.weight, 0), t.total_value,
	       COALESCE(t.category, ''), COALESCE(t.note, ''),
	       COALESCE(t.created_by::TEXT, ''), t.created_at,
	       COALESCE(m.name, ''), COALESCE(p.name, ''), COALESCE(u.full_name, '')
	FROM transactions t
	LEFT JOIN materials m ON m.id = t.material_id
	LEFT JOIN partners  p ON p.id = t.partner_id
	LEFT JOIN users     u ON u.id = t.created_by`

// Create persiste una nueva transacción del libro.
func (r *TransactionRepo) Create(tx *entity.Transaction) error {
	query := `
		INSERT INTO transactions (id, transaction_date, type, material_id, partner_id, weight, total_value, category, note, created_by, created_at)
		VALUES ($1, $2, $3, NULLIF($4, '')::uuid, NULLIF($5, '')::uuid, $6, $7, NULLIF($8, ''), NULLIF($9, ''), NULLIF($10, '')::uuid, $11)`
	_, err := r.q.Exec(context.Background(), query,
		tx.ID, tx.Date, tx.Type, tx.MaterialID, tx.PartnerID, tx.Weight, tx.TotalValue,
		tx.Category, tx.Note, tx.CreatedBy, tx.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

// GetByID obtiene una transacción con los nombres resueltos.
func (r *TransactionRepo) GetByID(id string) (*entity.Transaction, error) {
	query := selectWithNames + ` WHERE t.id = $1`
	var t entity.Transaction
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&t.ID, &t.Date, &t.Type, &t.MaterialID, &t.PartnerID, &t.Weight, &t.TotalValue,
		&t.Category, &t.Note, &t.CreatedBy, &t.CreatedAt,
		&t.MaterialName, &t.PartnerName, &t.CreatedByName,
	)
	if err != nil {
		return nil, scanOneErr(err, "get transaction")
	}
	return &t, nil
}

// Update persiste solo los campos editables de un gasto (fecha, valor, categoría, nota).
// Los campos con efecto de stock (type, material, weight) no se tocan nunca.
func (r *TransactionRepo) Update(tx *entity.Transaction) error {
	query := `
		UPDATE transactions SET transaction_date = $2, total_value = $3, category = NULLIF($4, ''), note = NULLIF($5, '')
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		tx.ID, tx.Date, tx.TotalValue, tx.Category, tx.Note,
	)
	if err != nil {
		return fmt.Errorf("update transaction: %w", err)
	}
	return nil
}

// Delete elimina la fila. La reversión de efectos es responsabilidad del caso
// de uso, dentro de la misma transacción de BD.
func (r *TransactionRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM transactions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	return nil
}

// List lista transacciones por fecha descendente con filtros opcionales.
func (r *TransactionRepo) List(filter repository.TransactionFilter) ([]*entity.Transaction, error) {
	query := selectWithNames + `
	WHERE ($1 = '' OR t.type = $1)
	  AND ($2 = '' OR t.category = $2)
	ORDER BY t.transaction_date DESC
	LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(context.Background(), query, filter.Type, filter.Category, filter.Limit, filter.Offset)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()
	return scanTransactions(rows)
}

// ListBetween devuelve las transacciones de [from, to) en orden cronológico.
func (r *TransactionRepo) ListBetween(from, to time.Time) ([]*entity.Transaction, error) {
	query := selectWithNames + `
	WHERE t.transaction_date >= $1 AND t.transaction_date < $2
	ORDER BY t.transaction_date`
	rows, err := r.q.Query(context.Background(), query, from, to)
	if err != nil {
		return nil, fmt.Errorf("list transactions between: %w", err)
	}
	defer rows.Close()
	return scanTransactions(rows)
}

// CountByMaterial cuenta las transacciones que referencian un material.
func (r *TransactionRepo) CountByMaterial(materialID string) (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM transactions WHERE material_id = $1`, materialID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count transactions by material: %w", err)
	}
	return count, nil
}

func scanTransactions(rows pgx.Rows) ([]*entity.Transaction, error) {
	var list []*entity.Transaction
	for rows.Next() {
		var t entity.Transaction
		if err := rows.Scan(&t.ID, &t.Date, &t.Type, &t.MaterialID, &t.PartnerID,
			&t.Weight, &t.TotalValue, &t.Category, &t.Note, &t.CreatedBy, &t.CreatedAt,
			&t.MaterialName, &t.PartnerName, &t.CreatedByName); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}
