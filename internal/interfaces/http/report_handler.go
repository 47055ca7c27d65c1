package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/qlkp/reciclaje-api/internal/application/dto"
	"github.com/qlkp/reciclaje-api/internal/application/report"
)

// ReportHandler maneja las descargas de reportes (Excel y PDF).
type ReportHandler struct {
	uc *report.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *report.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// parseRange lee from/to (YYYY-MM-DD) del query string. Ambos vacíos = mes en curso.
func parseRange(c *fiber.Ctx) (time.Time, time.Time, error) {
	var from, to time.Time
	var err error
	if s := c.Query("from"); s != "" {
		from, err = time.ParseInLocation("2006-01-02", s, time.Local)
		if err != nil {
			return from, to, err
		}
	}
	if s := c.Query("to"); s != "" {
		to, err = time.ParseInLocation("2006-01-02", s, time.Local)
		if err != nil {
			return from, to, err
		}
	}
	return from, to, nil
}

// LedgerXLSX godoc
// @Summary      Descargar el libro en Excel
// @Tags         reports
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        from  query  string  false  "Fecha inicial YYYY-MM-DD"
// @Param        to    query  string  false  "Fecha final YYYY-MM-DD"
// @Success      200   {file}    file
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/reports/ledger.xlsx [get]
func (h *ReportHandler) LedgerXLSX(c *fiber.Ctx) error {
	from, to, err := parseRange(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "formato de fecha: YYYY-MM-DD"})
	}
	data, filename, err := h.uc.ExportLedgerXLSX(c.UserContext(), from, to)
	if err != nil {
		return mapDomainError(c, err)
	}
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	return c.Send(data)
}

// CashFlowPDF godoc
// @Summary      Descargar el reporte de flujo de caja en PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Param        from  query  string  false  "Fecha inicial YYYY-MM-DD"
// @Param        to    query  string  false  "Fecha final YYYY-MM-DD"
// @Success      200   {file}    file
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/reports/cashflow.pdf [get]
func (h *ReportHandler) CashFlowPDF(c *fiber.Ctx) error {
	from, to, err := parseRange(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "formato de fecha: YYYY-MM-DD"})
	}
	data, filename, err := h.uc.CashFlowPDF(c.UserContext(), from, to)
	if err != nil {
		return mapDomainError(c, err)
	}
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	c.Set(fiber.HeaderContentType, "application/pdf")
	return c.Send(data)
}
