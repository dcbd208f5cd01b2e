package dto

import "github.com/shopspring/decimal"

// AddToCartRequest agrega una unidad del ítem indicado.
type AddToCartRequest struct {
	ItemID int `json:"item_id"`
}

// AdjustQuantityRequest suma delta (puede ser negativo) a la cantidad de una línea.
type AdjustQuantityRequest struct {
	Delta int `json:"delta"`
}

// CartLineResponse línea del carrito.
type CartLineResponse struct {
	Item      MenuItemResponse `json:"item"`
	Quantity  int              `json:"quantity"`
	LineTotal decimal.Decimal  `json:"line_total"`
}

// CartResponse carrito con totales recalculados.
type CartResponse struct {
	Lines       []CartLineResponse `json:"lines"`
	TotalItems  int                `json:"total_items"`
	Subtotal    decimal.Decimal    `json:"subtotal"`
	DeliveryFee decimal.Decimal    `json:"delivery_fee"`
	Total       decimal.Decimal    `json:"total"`
	LastAdded   *MenuItemResponse  `json:"last_added,omitempty"`
}
