package ledger

import (
	"github.com/qlkp/reciclaje-api/internal/application/dto"
	"github.com/qlkp/reciclaje-api/internal/domain/entity"
)

// ToTransactionResponse mapea una transacción del libro a su DTO de salida,
// con los nombres denormalizados que resuelve el repositorio.
func ToTransactionResponse(tx *entity.Transaction) dto.TransactionResponse {
	return dto.TransactionResponse{
		ID:           tx.ID,
		Date:         tx.Date,
		Type:         tx.Type,
		MaterialID:   tx.MaterialID,
		MaterialName: tx.MaterialName,
		PartnerID:    tx.PartnerID,
		PartnerName:  tx.PartnerName,
		Weight:       tx.Weight,
		TotalValue:   tx.TotalValue,
		Category:     tx.Category,
		Note:         tx.Note,
		CreatedBy:    tx.CreatedByName,
	}
}
