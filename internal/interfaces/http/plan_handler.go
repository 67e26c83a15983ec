package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/openmes/mes-api/internal/application/dto"
	"github.com/openmes/mes-api/internal/application/production"
	"github.com/openmes/mes-api/internal/domain/repository"
)

// PlanHandler handles HTTP requests for production plans.
type PlanHandler struct {
	uc *production.PlanUseCase
}

// NewPlanHandler builds the handler.
func NewPlanHandler(uc *production.PlanUseCase) *PlanHandler {
	return &PlanHandler{uc: uc}
}

// Create godoc
// @Summary      Create production plan
// @Tags         plans
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePlanRequest  true  "Plan data"
// @Success      201   {object}  dto.PlanResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/plans [post]
func (h *PlanHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePlanRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	if in.ProductCode == "" || in.ShipDate.IsZero() {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_code and ship_date are required"})
	}
	out, err := h.uc.Create(c.Context(), GetUsername(c), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      List production plans
// @Tags         plans
// @Security     Bearer
// @Produce      json
// @Param        date          query  string  false  "Exact ship day (YYYY-MM-DD)"
// @Param        date_from     query  string  false  "Ship date from (inclusive)"
// @Param        date_to       query  string  false  "Ship date to (inclusive)"
// @Param        product_code  query  string  false  "Product code"
// @Param        status        query  string  false  "started | not_started | completed"
// @Param        page          query  int     false  "Page"       default(1)
// @Param        page_size     query  int     false  "Page size"  default(20)
// @Success      200           {object}  dto.PlanListResponse
// @Router       /api/plans [get]
func (h *PlanHandler) List(c *fiber.Ctx) error {
	filter, err := planFilterFromQuery(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: err.Error()})
	}
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "invalid query"})
	}
	page.Normalize()
	out, err := h.uc.List(c.Context(), filter, page)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Get plan with progress
// @Tags         plans
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "Plan id"
// @Success      200  {object}  dto.PlanDetailResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/plans/{id} [get]
func (h *PlanHandler) Get(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id is required"})
	}
	out, err := h.uc.Get(c.Context(), id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Progress godoc
// @Summary      Get plan progress
// @Tags         plans
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "Plan id"
// @Success      200  {object}  dto.ProgressResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/plans/{id}/progress [get]
func (h *PlanHandler) Progress(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id is required"})
	}
	out, err := h.uc.Progress(c.Context(), id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Update plan
// @Tags         plans
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Plan id"
// @Param        body  body  dto.UpdatePlanRequest  true  "Fields to update"
// @Success      200   {object}  dto.PlanResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/plans/{id} [put]
func (h *PlanHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id is required"})
	}
	var in dto.UpdatePlanRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	out, err := h.uc.Update(c.Context(), id, GetUsername(c), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Delete plan (soft)
// @Tags         plans
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "Plan id"
// @Success      200  {object}  dto.OKResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/plans/{id} [delete]
func (h *PlanHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id is required"})
	}
	if err := h.uc.Delete(c.Context(), id, GetUsername(c)); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.OKResponse{OK: true})
}

// Start godoc
// @Summary      Mark plan started
// @Tags         plans
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "Plan id"
// @Success      200  {object}  dto.PlanResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/plans/{id}/start [post]
func (h *PlanHandler) Start(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id is required"})
	}
	out, err := h.uc.Start(c.Context(), id, GetUsername(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Complete godoc
// @Summary      Mark plan completed (manual)
// @Tags         plans
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "Plan id"
// @Success      200  {object}  dto.PlanResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/plans/{id}/complete [post]
func (h *PlanHandler) Complete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id is required"})
	}
	out, err := h.uc.Complete(c.Context(), id, GetUsername(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// planFilterFromQuery builds a PlanFilter from list/export query params.
func planFilterFromQuery(c *fiber.Ctx) (repository.PlanFilter, error) {
	filter := repository.PlanFilter{
		ProductCode: c.Query("product_code"),
		Status:      c.Query("status"),
	}
	if raw := c.Query("date"); raw != "" {
		t, err := parseDate(raw)
		if err != nil {
			return filter, err
		}
		filter.Date = &t
	}
	if raw := c.Query("date_from"); raw != "" {
		t, err := parseDate(raw)
		if err != nil {
			return filter, err
		}
		filter.DateFrom = &t
	}
	if raw := c.Query("date_to"); raw != "" {
		t, err := parseDate(raw)
		if err != nil {
			return filter, err
		}
		filter.DateTo = &t
	}
	return filter, nil
}
