package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/qlkp/reciclaje-api/internal/application/dto"
	"github.com/qlkp/reciclaje-api/internal/application/ledger"
	"github.com/qlkp/reciclaje-api/internal/domain/entity"
	"github.com/qlkp/reciclaje-api/internal/domain/repository"
	"github.com/qlkp/reciclaje-api/internal/infrastructure/metrics"
)

// TransactionHandler maneja las peticiones HTTP del libro de transacciones.
type TransactionHandler struct {
	uc *ledger.LedgerUseCase
}

// NewTransactionHandler construye el handler.
func NewTransactionHandler(uc *ledger.LedgerUseCase) *TransactionHandler {
	return &TransactionHandler{uc: uc}
}

// RecordImport godoc
// @Summary      Registrar compra de material (nhập kho)
// @Description  Suma stock y acumulados del proveedor de forma atómica; crea el proveedor si no existe
// @Tags         transactions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateImportRequest  true  "Datos de la compra"
// @Success      201   {object}  dto.TransactionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/transactions/import [post]
func (h *TransactionHandler) RecordImport(c *fiber.Ctx) error {
	var in dto.CreateImportRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.RecordImport(c.UserContext(), ledger.MovementInputDTO{
		MaterialCode: in.MaterialCode,
		PartnerName:  in.PartnerName,
		Weight:       in.Weight,
		PricePerKg:   in.PricePerKg,
		Note:         in.Note,
		UserID:       GetUserID(c),
	})
	if err != nil {
		return mapDomainError(c, err)
	}
	metrics.LedgerTransactions.WithLabelValues(entity.TransactionTypeImport).Inc()
	return c.Status(fiber.StatusCreated).JSON(ledger.ToTransactionResponse(out))
}

// RecordExport godoc
// @Summary      Registrar venta de polvo (xuất kho)
// @Description  Falla con 409 si el stock no alcanza; crea el cliente si no existe
// @Tags         transactions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateExportRequest  true  "Datos de la venta"
// @Success      201   {object}  dto.TransactionResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/transactions/export [post]
func (h *TransactionHandler) RecordExport(c *fiber.Ctx) error {
	var in dto.CreateExportRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.RecordExport(c.UserContext(), ledger.MovementInputDTO{
		MaterialCode: in.MaterialCode,
		PartnerName:  in.PartnerName,
		Weight:       in.Weight,
		PricePerKg:   in.PricePerKg,
		Note:         in.Note,
		UserID:       GetUserID(c),
	})
	if err != nil {
		return mapDomainError(c, err)
	}
	metrics.LedgerTransactions.WithLabelValues(entity.TransactionTypeExport).Inc()
	return c.Status(fiber.StatusCreated).JSON(ledger.ToTransactionResponse(out))
}

// RecordProduction godoc
// @Summary      Registrar lote de producción (sản xuất)
// @Description  Resta chatarra y suma polvo con rendimiento fijo del 95%
// @Tags         transactions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductionRequest  true  "Peso de chatarra a procesar"
// @Success      201   {object}  dto.TransactionResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/transactions/production [post]
func (h *TransactionHandler) RecordProduction(c *fiber.Ctx) error {
	var in dto.CreateProductionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.RecordProduction(c.UserContext(), in.ScrapWeight, in.Note, GetUserID(c))
	if err != nil {
		return mapDomainError(c, err)
	}
	metrics.LedgerTransactions.WithLabelValues(entity.TransactionTypeProduction).Inc()
	return c.Status(fiber.StatusCreated).JSON(ledger.ToTransactionResponse(out))
}

// RecordExpense godoc
// @Summary      Registrar gasto operativo (chi phí)
// @Tags         transactions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateExpenseRequest  true  "Datos del gasto"
// @Success      201   {object}  dto.TransactionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/transactions/expense [post]
func (h *TransactionHandler) RecordExpense(c *fiber.Ctx) error {
	var in dto.CreateExpenseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.RecordExpense(c.UserContext(), ledger.ExpenseInputDTO{
		TotalValue: in.TotalValue,
		Category:   in.Category,
		Note:       in.Note,
		Date:       in.Date,
		UserID:     GetUserID(c),
	})
	if err != nil {
		return mapDomainError(c, err)
	}
	metrics.LedgerTransactions.WithLabelValues(entity.TransactionTypeExpense).Inc()
	return c.Status(fiber.StatusCreated).JSON(ledger.ToTransactionResponse(out))
}

// List godoc
// @Summary      Listar el libro de transacciones
// @Tags         transactions
// @Security     Bearer
// @Produce      json
// @Param        type      query  string  false  "IMPORT | EXPORT | PRODUCTION | EXPENSE"
// @Param        category  query  string  false  "Categoría de gasto (con type=EXPENSE)"
// @Param        limit     query  int     false  "Límite"  default(50)
// @Param        offset    query  int     false  "Offset"  default(0)
// @Success      200  {object}  dto.TransactionListResponse
// @Router       /api/transactions [get]
func (h *TransactionHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit"), Offset: c.QueryInt("offset")}
	page.DefaultPage()
	filter := repository.TransactionFilter{
		Type:     c.Query("type"),
		Category: c.Query("category"),
		Limit:    page.Limit,
		Offset:   page.Offset,
	}
	rows, err := h.uc.ListTransactions(c.UserContext(), filter)
	if err != nil {
		return mapDomainError(c, err)
	}
	items := make([]dto.TransactionResponse, 0, len(rows))
	for _, tx := range rows {
		items = append(items, ledger.ToTransactionResponse(tx))
	}
	return c.JSON(dto.TransactionListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: filter.Limit, Offset: filter.Offset, Count: len(items)},
	})
}

// GetByID godoc
// @Summary      Obtener transacción por ID
// @Tags         transactions
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la transacción"
// @Success      200  {object}  dto.TransactionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/transactions/{id} [get]
func (h *TransactionHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetTransaction(c.UserContext(), c.Params("id"))
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(ledger.ToTransactionResponse(out))
}

// UpdateExpense godoc
// @Summary      Editar un gasto
// @Description  Solo las transacciones EXPENSE son editables; el resto responde 409
// @Tags         transactions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la transacción"
// @Param        body  body  dto.UpdateExpenseRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.TransactionResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/transactions/{id} [put]
func (h *TransactionHandler) UpdateExpense(c *fiber.Ctx) error {
	var in dto.UpdateExpenseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdateExpense(c.UserContext(), c.Params("id"), ledger.ExpenseUpdateDTO{
		TotalValue: in.TotalValue,
		Category:   in.Category,
		Note:       in.Note,
		Date:       in.Date,
	})
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(ledger.ToTransactionResponse(out))
}

// Delete godoc
// @Summary      Borrar transacción revirtiendo sus efectos
// @Description  Falla con 409 si la reversión dejaría stock negativo
// @Tags         transactions
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la transacción"
// @Success      204  "sin contenido"
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/transactions/{id} [delete]
func (h *TransactionHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.DeleteTransaction(c.UserContext(), c.Params("id")); err != nil {
		return mapDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
