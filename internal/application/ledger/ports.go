package ledger

import (
	"context"

	"github.com/qlkp/reciclaje-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Garantiza atomicidad para el libro: stock, acumulados de socio y fila de
// transacción se aplican todos o ninguno.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		materialRepo repository.MaterialRepository,
		partnerRepo repository.PartnerRepository,
		txRepo repository.TransactionRepository,
	) error) error
}
