package ordering

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/burger-house/internal/application/access"
	"github.com/jhoicas/burger-house/internal/application/dto"
	"github.com/jhoicas/burger-house/internal/domain"
	"github.com/jhoicas/burger-house/internal/domain/analytics"
	"github.com/jhoicas/burger-house/internal/domain/entity"
	"github.com/jhoicas/burger-house/internal/domain/repository"
	"github.com/jhoicas/burger-house/pkg/logger"
)

// DefaultCancelWindow tiempo durante el cual el cliente puede cancelar su pedido.
const DefaultCancelWindow = 30 * time.Second

// OrderUseCase consulta y ciclo de vida de los pedidos.
type OrderUseCase struct {
	directory    repository.DirectoryRepository
	cancelWindow time.Duration
	observer     OrderObserver
	log          *logger.Logger
	now          func() time.Time
}

// NewOrderUseCase construye el caso de uso. cancelWindow <= 0 usa DefaultCancelWindow.
func NewOrderUseCase(directory repository.DirectoryRepository, cancelWindow time.Duration, observer OrderObserver, log *logger.Logger) *OrderUseCase {
	if cancelWindow <= 0 {
		cancelWindow = DefaultCancelWindow
	}
	if observer == nil {
		observer = nopObserver{}
	}
	if log == nil {
		log = logger.Nop()
	}
	return &OrderUseCase{
		directory:    directory,
		cancelWindow: cancelWindow,
		observer:     observer,
		log:          log.Named("orders"),
		now:          time.Now,
	}
}

// SetClock reemplaza el reloj (tests).
func (uc *OrderUseCase) SetClock(now func() time.Time) { uc.now = now }

// List libro completo para la consola, opcionalmente filtrado por estado ("all" o vacío = todos).
func (uc *OrderUseCase) List(actor access.Actor, status string) (*dto.OrderListResponse, error) {
	if err := access.RequireConsole(actor); err != nil {
		return nil, err
	}
	if status != "" && status != analytics.StatusAll && !entity.OrderStatus(status).Valid() {
		return nil, fmt.Errorf("estado %q: %w", status, domain.ErrInvalidInput)
	}
	return toOrderList(analytics.FilterOrdersByStatus(uc.directory.Orders(), status)), nil
}

// ListMine pedidos del cliente con sesión, del más reciente al más antiguo.
func (uc *OrderUseCase) ListMine(actor access.Actor) (*dto.OrderListResponse, error) {
	if actor.IsGuest() {
		return nil, domain.ErrUnauthorized
	}
	mine := []entity.Order{}
	for _, o := range uc.directory.Orders() {
		if o.UserID == actor.UserID {
			mine = append(mine, o)
		}
	}
	return toOrderList(mine), nil
}

// Get un pedido. El staff ve cualquiera; el cliente solo los suyos. Un invitado
// puede seguir un pedido de invitado con su código.
func (uc *OrderUseCase) Get(actor access.Actor, orderID string) (*dto.OrderResponse, error) {
	order, err := uc.visible(actor, orderID)
	if err != nil {
		return nil, err
	}
	resp := toOrderResponse(order)
	return &resp, nil
}

func (uc *OrderUseCase) visible(actor access.Actor, orderID string) (entity.Order, error) {
	order, ok := uc.directory.Order(orderID)
	if !ok {
		return entity.Order{}, domain.ErrNotFound
	}
	if access.CanUseConsole(actor) || owns(actor, order) {
		return order, nil
	}
	return entity.Order{}, domain.ErrNotFound
}

func owns(actor access.Actor, order entity.Order) bool {
	if actor.IsGuest() {
		return order.UserID == GuestUserID
	}
	return order.UserID == actor.UserID
}

// UpdateStatus mueve el pedido al estado indicado si la tabla de transiciones lo permite.
func (uc *OrderUseCase) UpdateStatus(ctx context.Context, actor access.Actor, orderID, status string) (*dto.OrderResponse, error) {
	if err := access.RequireConsole(actor); err != nil {
		return nil, err
	}
	next := entity.OrderStatus(status)
	if !next.Valid() {
		return nil, fmt.Errorf("estado %q: %w", status, domain.ErrInvalidInput)
	}
	return uc.transition(ctx, actor, orderID, next)
}

// Accept pending → accepted.
func (uc *OrderUseCase) Accept(ctx context.Context, actor access.Actor, orderID string) (*dto.OrderResponse, error) {
	return uc.UpdateStatus(ctx, actor, orderID, string(entity.OrderAccepted))
}

// Deliver accepted → delivered.
func (uc *OrderUseCase) Deliver(ctx context.Context, actor access.Actor, orderID string) (*dto.OrderResponse, error) {
	return uc.UpdateStatus(ctx, actor, orderID, string(entity.OrderDelivered))
}

// Cancel pending → cancelled desde la consola.
func (uc *OrderUseCase) Cancel(ctx context.Context, actor access.Actor, orderID string) (*dto.OrderResponse, error) {
	return uc.UpdateStatus(ctx, actor, orderID, string(entity.OrderCancelled))
}

// CancelMine cancelación por parte del cliente: solo su pedido, solo pendiente y
// solo dentro de la ventana de cancelación.
func (uc *OrderUseCase) CancelMine(ctx context.Context, actor access.Actor, orderID string) (*dto.OrderResponse, error) {
	order, ok := uc.directory.Order(orderID)
	if !ok || !owns(actor, order) {
		return nil, domain.ErrNotFound
	}
	if uc.now().Sub(order.PlacedAt()) > uc.cancelWindow {
		return nil, domain.ErrCancelWindowClosed
	}
	return uc.transition(ctx, actor, orderID, entity.OrderCancelled)
}

func (uc *OrderUseCase) transition(ctx context.Context, actor access.Actor, orderID string, next entity.OrderStatus) (*dto.OrderResponse, error) {
	updated, err := uc.directory.UpdateOrderStatus(ctx, orderID, next)
	if err != nil {
		return nil, err
	}
	uc.observer.OrderStatusChanged(string(next))
	uc.log.Info().
		Str("order_id", orderID).
		Str("status", string(next)).
		Str("actor", actor.UserID).
		Msg("estado de pedido actualizado")
	resp := toOrderResponse(updated)
	return &resp, nil
}

func toOrderList(orders []entity.Order) *dto.OrderListResponse {
	out := &dto.OrderListResponse{Items: make([]dto.OrderResponse, 0, len(orders)), Total: len(orders)}
	for _, o := range orders {
		out.Items = append(out.Items, toOrderResponse(o))
	}
	return out
}

func toOrderResponse(o entity.Order) dto.OrderResponse {
	lines := make([]dto.OrderLineResponse, 0, len(o.Items))
	for _, l := range o.Items {
		c := l.Clone()
		lines = append(lines, dto.OrderLineResponse{
			ItemID:    c.ID,
			Name:      c.Name,
			Category:  string(c.Category),
			Price:     c.Price,
			Discount:  c.Discount,
			Quantity:  c.Quantity,
			LineTotal: c.LineTotal(),
		})
	}
	next := []string{}
	for _, s := range o.Status.NextStatuses() {
		next = append(next, string(s))
	}
	return dto.OrderResponse{
		ID:           o.ID,
		UserID:       o.UserID,
		UserName:     o.UserName,
		Items:        lines,
		Total:        o.Total,
		Status:       string(o.Status),
		NextStatuses: next,
		PlacedAt:     o.PlacedAt().UTC(),
		Address:      o.Address,
		Phone:        o.Phone,
	}
}
