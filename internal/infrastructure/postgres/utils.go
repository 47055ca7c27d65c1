package postgres

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/qlkp/reciclaje-api/internal/domain"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// isCheckViolation verifica si un error es una violación de CHECK constraint (23514),
// p. ej. el CHECK (stock >= 0) de materials.
func isCheckViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23514" // check_violation
	}
	return strings.Contains(err.Error(), "23514")
}

// isInvalidTextRepresentation verifica el código 22P02, que Postgres lanza al
// castear un valor malformado, p. ej. un ID de ruta que no es un UUID válido.
func isInvalidTextRepresentation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "22P02" // invalid_text_representation
	}
	return strings.Contains(err.Error(), "22P02")
}

// scanOneErr traduce el error de una consulta de una sola fila: sin resultado
// o con un ID que ni siquiera castea a UUID, la entidad no existe. Los casos
// de uso cuentan con este contrato para responder 404 en vez de reventar.
func scanOneErr(err error, what string) error {
	if errors.Is(err, pgx.ErrNoRows) || isInvalidTextRepresentation(err) {
		return domain.ErrNotFound
	}
	return fmt.Errorf("%s: %w", what, err)
}
