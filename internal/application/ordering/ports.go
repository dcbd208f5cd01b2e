package ordering

import (
	"context"

	"github.com/jhoicas/burger-house/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// OrderObserver recibe los eventos de pedidos (métricas).
type OrderObserver interface {
	OrderPlaced(guest bool)
	OrderStatusChanged(status string)
}

// ReceiptGenerator define el contrato para la representación gráfica de un pedido.
type ReceiptGenerator interface {
	GenerateReceiptPDF(ctx context.Context, order entity.Order, store entity.StoreSettings, deliveryFee decimal.Decimal) ([]byte, error)
}

type nopObserver struct{}

func (nopObserver) OrderPlaced(bool)          {}
func (nopObserver) OrderStatusChanged(string) {}
