package ordering

import (
	"context"
	"fmt"

	"github.com/jhoicas/burger-house/internal/application/access"
	"github.com/jhoicas/burger-house/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// ReceiptUseCase comprobante PDF de un pedido.
type ReceiptUseCase struct {
	orders      *OrderUseCase
	settings    repository.SettingsRepository
	generator   ReceiptGenerator
	deliveryFee decimal.Decimal
}

// NewReceiptUseCase construye el caso de uso inyectando el generador.
func NewReceiptUseCase(orders *OrderUseCase, settings repository.SettingsRepository, generator ReceiptGenerator, deliveryFee decimal.Decimal) *ReceiptUseCase {
	return &ReceiptUseCase{orders: orders, settings: settings, generator: generator, deliveryFee: deliveryFee}
}

// Download genera el comprobante con las mismas reglas de visibilidad que OrderUseCase.Get.
func (uc *ReceiptUseCase) Download(ctx context.Context, actor access.Actor, orderID string) (pdfBytes []byte, filename string, err error) {
	order, err := uc.orders.visible(actor, orderID)
	if err != nil {
		return nil, "", err
	}
	pdfBytes, err = uc.generator.GenerateReceiptPDF(ctx, order, uc.settings.Get(), uc.deliveryFee)
	if err != nil {
		return nil, "", fmt.Errorf("comprobante: %w", err)
	}
	return pdfBytes, fmt.Sprintf("pedido-%s.pdf", order.ID), nil
}
