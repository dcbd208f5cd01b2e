package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Métodos de pago aceptados en el checkout.
const (
	PaymentCashOnDelivery = "cod"
	PaymentCard           = "card"
)

// CheckoutRequest datos de entrega y pago. Los datos de tarjeta solo se validan, nunca se guardan.
type CheckoutRequest struct {
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	Street        string `json:"street"`
	PaymentMethod string `json:"payment_method"`
	CardNumber    string `json:"card_number,omitempty"`
	CVV           string `json:"cvv,omitempty"`
}

// OrderLineResponse línea del snapshot del pedido.
type OrderLineResponse struct {
	ItemID    int              `json:"item_id"`
	Name      string           `json:"name"`
	Category  string           `json:"category"`
	Price     decimal.Decimal  `json:"price"`
	Discount  *decimal.Decimal `json:"discount,omitempty"`
	Quantity  int              `json:"quantity"`
	LineTotal decimal.Decimal  `json:"line_total"`
}

// OrderResponse salida de un pedido.
type OrderResponse struct {
	ID           string              `json:"id"`
	UserID       string              `json:"user_id"`
	UserName     string              `json:"user_name"`
	Items        []OrderLineResponse `json:"items"`
	Total        decimal.Decimal     `json:"total"`
	Status       string              `json:"status"`
	NextStatuses []string            `json:"next_statuses"`
	PlacedAt     time.Time           `json:"placed_at"`
	Address      string              `json:"address"`
	Phone        string              `json:"phone"`
}

// OrderListResponse listado de pedidos.
type OrderListResponse struct {
	Items []OrderResponse `json:"items"`
	Total int             `json:"total"`
}

// UpdateOrderStatusRequest estado destino.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}
