package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus estado de un pedido.
type OrderStatus string

// Ciclo de vida: pending → accepted → delivered; pending → cancelled es la única salida.
const (
	OrderPending   OrderStatus = "pending"
	OrderAccepted  OrderStatus = "accepted"
	OrderDelivered OrderStatus = "delivered"
	OrderCancelled OrderStatus = "cancelled"
)

// orderTransitions estado actual → estados siguientes permitidos.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderPending:  {OrderAccepted, OrderCancelled},
	OrderAccepted: {OrderDelivered},
}

// Valid indica si el estado pertenece al conjunto cerrado.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderAccepted, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}

// CanTransitionTo consulta la tabla de transiciones.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// NextStatuses estados alcanzables desde s (vacío para estados finales).
func (s OrderStatus) NextStatuses() []OrderStatus {
	out := make([]OrderStatus, len(orderTransitions[s]))
	copy(out, orderTransitions[s])
	return out
}

// Order registro de compra. Items y Total son inmutables una vez creado; solo cambia Status.
type Order struct {
	ID        string          `json:"id"`
	UserID    string          `json:"userId"`
	UserName  string          `json:"userName"`
	Items     []CartLine      `json:"items"`
	Total     decimal.Decimal `json:"total"`
	Status    OrderStatus     `json:"status"`
	Timestamp int64           `json:"timestamp"` // epoch en milisegundos
	Address   string          `json:"address"`
	Phone     string          `json:"phone"`
}

// PlacedAt convierte Timestamp a time.Time.
func (o Order) PlacedAt() time.Time {
	return time.UnixMilli(o.Timestamp)
}

// Clone copia profunda (las líneas son un snapshot independiente).
func (o Order) Clone() Order {
	o.Items = CloneLines(o.Items)
	return o
}

// CloneOrders copia profunda de una lista de pedidos.
func CloneOrders(orders []Order) []Order {
	out := make([]Order, len(orders))
	for i, o := range orders {
		out[i] = o.Clone()
	}
	return out
}
