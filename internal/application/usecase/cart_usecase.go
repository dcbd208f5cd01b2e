package usecase

import (
	"context"

	"github.com/jhoicas/burger-house/internal/application/dto"
	"github.com/jhoicas/burger-house/internal/domain"
	"github.com/jhoicas/burger-house/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// CartUseCase carrito activo del perfil. No requiere sesión: los invitados también compran.
type CartUseCase struct {
	cart        repository.CartRepository
	catalog     repository.CatalogRepository
	deliveryFee decimal.Decimal
}

// NewCartUseCase construye el caso de uso.
func NewCartUseCase(cart repository.CartRepository, catalog repository.CatalogRepository, deliveryFee decimal.Decimal) *CartUseCase {
	return &CartUseCase{cart: cart, catalog: catalog, deliveryFee: deliveryFee}
}

// View líneas y totales recalculados en cada lectura.
func (uc *CartUseCase) View() *dto.CartResponse {
	lines := uc.cart.Lines()
	subtotal := uc.cart.TotalPrice()
	out := &dto.CartResponse{
		Lines:       make([]dto.CartLineResponse, 0, len(lines)),
		TotalItems:  uc.cart.TotalItems(),
		Subtotal:    subtotal,
		DeliveryFee: uc.deliveryFee,
		Total:       subtotal.Add(uc.deliveryFee),
	}
	if len(lines) == 0 {
		out.DeliveryFee = decimal.Zero
		out.Total = decimal.Zero
	}
	for _, l := range lines {
		out.Lines = append(out.Lines, dto.CartLineResponse{
			Item:      toMenuItemResponse(l.MenuItem),
			Quantity:  l.Quantity,
			LineTotal: l.LineTotal(),
		})
	}
	if last, ok := uc.cart.LastAdded(); ok {
		resp := toMenuItemResponse(last)
		out.LastAdded = &resp
	}
	return out
}

// Add agrega una unidad del ítem del catálogo (snapshot del ítem vigente).
func (uc *CartUseCase) Add(ctx context.Context, itemID int) (*dto.CartResponse, error) {
	item, ok := uc.catalog.Item(itemID)
	if !ok {
		return nil, domain.ErrNotFound
	}
	uc.cart.Add(ctx, item)
	return uc.View(), nil
}

// Remove quita la línea del ítem.
func (uc *CartUseCase) Remove(ctx context.Context, itemID int) (*dto.CartResponse, error) {
	if !uc.hasLine(itemID) {
		return nil, domain.ErrNotFound
	}
	uc.cart.Remove(ctx, itemID)
	return uc.View(), nil
}

// AdjustQuantity suma delta a la línea; la cantidad nunca baja de 1.
func (uc *CartUseCase) AdjustQuantity(ctx context.Context, itemID, delta int) (*dto.CartResponse, error) {
	if !uc.hasLine(itemID) {
		return nil, domain.ErrNotFound
	}
	uc.cart.UpdateQuantity(ctx, itemID, delta)
	return uc.View(), nil
}

// Clear vacía el carrito.
func (uc *CartUseCase) Clear(ctx context.Context) *dto.CartResponse {
	uc.cart.Clear(ctx)
	return uc.View()
}

// ClearNotification descarta el aviso de "agregado al carrito".
func (uc *CartUseCase) ClearNotification() {
	uc.cart.ClearNotification()
}

func (uc *CartUseCase) hasLine(itemID int) bool {
	for _, l := range uc.cart.Lines() {
		if l.ID == itemID {
			return true
		}
	}
	return false
}
