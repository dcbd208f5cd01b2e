package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/burger-house/internal/application/dto"
	"github.com/jhoicas/burger-house/internal/application/usecase"
)

// MenuHandler carta pública y su edición desde la consola.
type MenuHandler struct {
	uc *usecase.CatalogUseCase
}

// NewMenuHandler construye el handler.
func NewMenuHandler(uc *usecase.CatalogUseCase) *MenuHandler {
	return &MenuHandler{uc: uc}
}

// List godoc
// @Summary      Carta filtrada
// @Tags         menu
// @Produce      json
// @Param        search           query  string  false  "búsqueda por nombre"
// @Param        category         query  string  false  "All | Burger | Pizza | Fries | Drinks | Deals | More Fun"
// @Param        only_discounted  query  bool    false  "solo ítems con descuento"
// @Param        min_rating       query  string  false  "rating mínimo"
// @Param        sort             query  string  false  "none | low-high | high-low"
// @Success      200  {object}  dto.MenuListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/menu [get]
func (h *MenuHandler) List(c *fiber.Ctx) error {
	var q dto.MenuQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PARAMS", Message: "parámetros de consulta inválidos"})
	}
	out, err := h.uc.List(q)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Get GET /api/menu/:id
func (h *MenuHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return invalidParam(c, "id")
	}
	out, err := h.uc.Get(id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Create POST /api/admin/menu
func (h *MenuHandler) Create(c *fiber.Ctx) error {
	var in dto.MenuItemRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.Context(), GetActor(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update PUT /api/admin/menu/:id
func (h *MenuHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return invalidParam(c, "id")
	}
	var in dto.MenuItemRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.Context(), GetActor(c), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete DELETE /api/admin/menu/:id
func (h *MenuHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return invalidParam(c, "id")
	}
	if err := h.uc.Delete(c.Context(), GetActor(c), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
