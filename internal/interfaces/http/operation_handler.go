package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/openmes/mes-api/internal/application/dto"
	"github.com/openmes/mes-api/internal/application/usecase"
)

// OperationHandler handles HTTP requests for operation master data.
type OperationHandler struct {
	uc *usecase.OperationUseCase
}

// NewOperationHandler builds the handler.
func NewOperationHandler(uc *usecase.OperationUseCase) *OperationHandler {
	return &OperationHandler{uc: uc}
}

// Create godoc
// @Summary      Create operation
// @Tags         operations
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOperationRequest  true  "Operation data"
// @Success      201   {object}  dto.OperationResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/operations [post]
func (h *OperationHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOperationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	if in.OperationCode == "" || in.OperationName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "operation_code and operation_name are required"})
	}
	out, err := h.uc.Create(c.Context(), GetUsername(c), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Get godoc
// @Summary      Get operation by code
// @Tags         operations
// @Produce      json
// @Param        code  path  string  true  "Operation code"
// @Success      200   {object}  dto.OperationResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/operations/{code} [get]
func (h *OperationHandler) Get(c *fiber.Ctx) error {
	code := c.Params("code")
	if code == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_CODE", Message: "code is required"})
	}
	out, err := h.uc.Get(c.Context(), code)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      List operations
// @Tags         operations
// @Produce      json
// @Param        q          query  string  false  "Matches code or name"
// @Param        page       query  int     false  "Page"       default(1)
// @Param        page_size  query  int     false  "Page size"  default(20)
// @Success      200        {object}  dto.OperationListResponse
// @Router       /api/operations [get]
func (h *OperationHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "invalid query"})
	}
	page.Normalize()
	out, err := h.uc.List(c.Context(), c.Query("q"), page)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Update operation
// @Tags         operations
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        code  path  string  true  "Operation code"
// @Param        body  body  dto.UpdateOperationRequest  true  "Fields to update"
// @Success      200   {object}  dto.OperationResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/operations/{code} [put]
func (h *OperationHandler) Update(c *fiber.Ctx) error {
	code := c.Params("code")
	if code == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_CODE", Message: "code is required"})
	}
	var in dto.UpdateOperationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	out, err := h.uc.Update(c.Context(), code, GetUsername(c), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Delete operation (soft)
// @Tags         operations
// @Security     Bearer
// @Produce      json
// @Param        code  path  string  true  "Operation code"
// @Success      200   {object}  dto.OKResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/operations/{code} [delete]
func (h *OperationHandler) Delete(c *fiber.Ctx) error {
	code := c.Params("code")
	if code == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_CODE", Message: "code is required"})
	}
	if err := h.uc.Delete(c.Context(), code, GetUsername(c)); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.OKResponse{OK: true})
}
