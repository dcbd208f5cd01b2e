package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/burger-house/internal/application/dto"
	"github.com/jhoicas/burger-house/internal/application/usecase"
)

// CartHandler carrito activo del perfil (invitados incluidos).
type CartHandler struct {
	uc *usecase.CartUseCase
}

// NewCartHandler construye el handler.
func NewCartHandler(uc *usecase.CartUseCase) *CartHandler {
	return &CartHandler{uc: uc}
}

// View GET /api/cart
func (h *CartHandler) View(c *fiber.Ctx) error {
	return c.JSON(h.uc.View())
}

// Add godoc
// @Summary      Agregar una unidad al carrito
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddToCartRequest  true  "item_id"
// @Success      200   {object}  dto.CartResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/cart/items [post]
func (h *CartHandler) Add(c *fiber.Ctx) error {
	var in dto.AddToCartRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Add(c.Context(), in.ItemID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Adjust PATCH /api/cart/items/:id  (delta positivo o negativo; piso 1)
func (h *CartHandler) Adjust(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return invalidParam(c, "id")
	}
	var in dto.AdjustQuantityRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.AdjustQuantity(c.Context(), id, in.Delta)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Remove DELETE /api/cart/items/:id
func (h *CartHandler) Remove(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return invalidParam(c, "id")
	}
	out, err := h.uc.Remove(c.Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Clear DELETE /api/cart
func (h *CartHandler) Clear(c *fiber.Ctx) error {
	return c.JSON(h.uc.Clear(c.Context()))
}

// ClearNotification DELETE /api/cart/notification
func (h *CartHandler) ClearNotification(c *fiber.Ctx) error {
	h.uc.ClearNotification()
	return c.SendStatus(fiber.StatusNoContent)
}
