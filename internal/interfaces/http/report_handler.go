package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/openmes/mes-api/internal/application/dto"
	"github.com/openmes/mes-api/internal/application/reports"
)

// ReportHandler serves Excel exports.
type ReportHandler struct {
	uc *reports.ReportUseCase
}

// NewReportHandler builds the handler.
func NewReportHandler(uc *reports.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// ExportPlans godoc
// @Summary      Export plans with progress as .xlsx
// @Tags         reports
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        date          query  string  false  "Exact ship day (YYYY-MM-DD)"
// @Param        date_from     query  string  false  "Ship date from (inclusive)"
// @Param        date_to       query  string  false  "Ship date to (inclusive)"
// @Param        product_code  query  string  false  "Product code"
// @Param        status        query  string  false  "started | not_started | completed"
// @Success      200  {file}  binary
// @Router       /api/reports/plans.xlsx [get]
func (h *ReportHandler) ExportPlans(c *fiber.Ctx) error {
	filter, err := planFilterFromQuery(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: err.Error()})
	}
	buf, err := h.uc.ExportPlans(c.Context(), filter)
	if err != nil {
		return fail(c, err)
	}
	filename := "plans-" + time.Now().Format("20060102-150405") + ".xlsx"
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(buf.Bytes())
}
