package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/openmes/mes-api/internal/application/dto"
	"github.com/openmes/mes-api/internal/application/production"
	"github.com/openmes/mes-api/internal/domain/repository"
)

// OutputHandler handles HTTP requests for the production output ledger.
type OutputHandler struct {
	uc *production.OutputUseCase
}

// NewOutputHandler builds the handler.
func NewOutputHandler(uc *production.OutputUseCase) *OutputHandler {
	return &OutputHandler{uc: uc}
}

// Add godoc
// @Summary      Record production output
// @Tags         outputs
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOutputRequest  true  "Output data"
// @Success      201   {object}  dto.AddOutputResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/outputs [post]
func (h *OutputHandler) Add(c *fiber.Ctx) error {
	var in dto.CreateOutputRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	if in.PlanID == "" || in.ProductCode == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "plan_id and product_code are required"})
	}
	out, err := h.uc.Add(c.Context(), GetUsername(c), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      List production outputs
// @Tags         outputs
// @Security     Bearer
// @Produce      json
// @Param        plan_id    query  string  false  "Plan id"
// @Param        date_from  query  string  false  "Production date from (inclusive)"
// @Param        date_to    query  string  false  "Production date to (inclusive)"
// @Success      200        {object}  dto.OutputListResponse
// @Router       /api/outputs [get]
func (h *OutputHandler) List(c *fiber.Ctx) error {
	filter := repository.OutputFilter{PlanID: c.Query("plan_id")}
	if raw := c.Query("date_from"); raw != "" {
		t, err := parseDate(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "date_from must be RFC 3339 or YYYY-MM-DD"})
		}
		filter.DateFrom = &t
	}
	if raw := c.Query("date_to"); raw != "" {
		t, err := parseDate(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "date_to must be RFC 3339 or YYYY-MM-DD"})
		}
		filter.DateTo = &t
	}
	out, err := h.uc.List(c.Context(), filter)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Edit production output
// @Tags         outputs
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Output id"
// @Param        body  body  dto.UpdateOutputRequest  true  "Fields to update"
// @Success      200   {object}  dto.OutputResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/outputs/{id} [put]
func (h *OutputHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id is required"})
	}
	var in dto.UpdateOutputRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	out, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Delete production output
// @Tags         outputs
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "Output id"
// @Success      200  {object}  dto.OKResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/outputs/{id} [delete]
func (h *OutputHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id is required"})
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.OKResponse{OK: true})
}
