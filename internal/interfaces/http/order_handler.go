package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/burger-house/internal/application/dto"
	"github.com/jhoicas/burger-house/internal/application/ordering"
)

// OrderHandler checkout, seguimiento y ciclo de vida de pedidos.
type OrderHandler struct {
	checkout *ordering.CheckoutUseCase
	orders   *ordering.OrderUseCase
	receipts *ordering.ReceiptUseCase
}

// NewOrderHandler construye el handler.
func NewOrderHandler(checkout *ordering.CheckoutUseCase, orders *ordering.OrderUseCase, receipts *ordering.ReceiptUseCase) *OrderHandler {
	return &OrderHandler{checkout: checkout, orders: orders, receipts: receipts}
}

// Checkout godoc
// @Summary      Confirmar el carrito como pedido
// @Description  Valida los datos de entrega y pago, espera la latencia configurada,
// @Description  registra el pedido y vacía el carrito. Sin token el pedido queda como invitado.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CheckoutRequest  true  "datos de entrega y pago"
// @Success      201   {object}  dto.OrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/checkout [post]
func (h *OrderHandler) Checkout(c *fiber.Ctx) error {
	var in dto.CheckoutRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.checkout.PlaceOrder(c.Context(), GetActor(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListMine GET /api/orders/mine
func (h *OrderHandler) ListMine(c *fiber.Ctx) error {
	out, err := h.orders.ListMine(GetActor(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Get GET /api/orders/:id
func (h *OrderHandler) Get(c *fiber.Ctx) error {
	out, err := h.orders.Get(GetActor(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// CancelMine POST /api/orders/:id/cancel
func (h *OrderHandler) CancelMine(c *fiber.Ctx) error {
	out, err := h.orders.CancelMine(c.Context(), GetActor(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Receipt godoc
// @Summary      Comprobante PDF del pedido
// @Tags         orders
// @Produce      application/pdf
// @Param        id   path  string  true  "código del pedido"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/receipt [get]
func (h *OrderHandler) Receipt(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.receipts.Download(c.Context(), GetActor(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(pdfBytes)
}

// List godoc
// @Summary      Libro de pedidos (consola)
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Param        status  query  string  false  "all | pending | accepted | delivered | cancelled"
// @Success      200  {object}  dto.OrderListResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/admin/orders [get]
func (h *OrderHandler) List(c *fiber.Ctx) error {
	out, err := h.orders.List(GetActor(c), c.Query("status"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// UpdateStatus PATCH /api/admin/orders/:id/status
func (h *OrderHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateOrderStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.orders.UpdateStatus(c.Context(), GetActor(c), c.Params("id"), in.Status)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Accept POST /api/admin/orders/:id/accept
func (h *OrderHandler) Accept(c *fiber.Ctx) error {
	out, err := h.orders.Accept(c.Context(), GetActor(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Deliver POST /api/admin/orders/:id/deliver
func (h *OrderHandler) Deliver(c *fiber.Ctx) error {
	out, err := h.orders.Deliver(c.Context(), GetActor(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Cancel POST /api/admin/orders/:id/cancel
func (h *OrderHandler) Cancel(c *fiber.Ctx) error {
	out, err := h.orders.Cancel(c.Context(), GetActor(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
