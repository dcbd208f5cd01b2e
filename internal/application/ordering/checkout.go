package ordering

import (
	"context"
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/burger-house/internal/application/access"
	"github.com/jhoicas/burger-house/internal/application/dto"
	"github.com/jhoicas/burger-house/internal/domain"
	"github.com/jhoicas/burger-house/internal/domain/entity"
	"github.com/jhoicas/burger-house/internal/domain/repository"
	"github.com/jhoicas/burger-house/pkg/logger"
	"github.com/shopspring/decimal"
)

// GuestUserID userId de los pedidos hechos sin sesión.
const GuestUserID = "guest"

const (
	orderCodeLength = 6
	maxCodeAttempts = 10
	orderCodeSpace  = 36 * 36 * 36 * 36 * 36 * 36
)

// Config reglas del checkout.
type Config struct {
	DeliveryFee decimal.Decimal
	Delay       time.Duration // latencia simulada antes de registrar el pedido
}

// CheckoutUseCase convierte el carrito en un pedido: registra el pedido en el directorio
// y, a continuación, vacía el carrito.
type CheckoutUseCase struct {
	directory repository.DirectoryRepository
	cart      repository.CartRepository
	cfg       Config
	observer  OrderObserver
	log       *logger.Logger

	inFlight atomic.Bool
	newCode  func() string
	now      func() time.Time
}

// CheckoutOption configura un CheckoutUseCase.
type CheckoutOption func(*CheckoutUseCase)

// WithCodeGenerator reemplaza el generador de códigos de pedido (tests).
func WithCodeGenerator(gen func() string) CheckoutOption {
	return func(uc *CheckoutUseCase) { uc.newCode = gen }
}

// WithClock reemplaza el reloj (tests).
func WithClock(now func() time.Time) CheckoutOption {
	return func(uc *CheckoutUseCase) { uc.now = now }
}

// NewCheckoutUseCase construye el caso de uso. observer y log pueden ser nil.
func NewCheckoutUseCase(
	directory repository.DirectoryRepository,
	cart repository.CartRepository,
	cfg Config,
	observer OrderObserver,
	log *logger.Logger,
	opts ...CheckoutOption,
) *CheckoutUseCase {
	if cfg.Delay < 0 {
		cfg.Delay = 0
	}
	if observer == nil {
		observer = nopObserver{}
	}
	if log == nil {
		log = logger.Nop()
	}
	uc := &CheckoutUseCase{
		directory: directory,
		cart:      cart,
		cfg:       cfg,
		observer:  observer,
		log:       log.Named("checkout"),
		newCode:   NewOrderCode,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// NewOrderCode código de 6 caracteres en base 36, en mayúsculas.
func NewOrderCode() string {
	id := uuid.New()
	n := binary.BigEndian.Uint64(id[:8]) % orderCodeSpace
	code := strings.ToUpper(strconv.FormatUint(n, 36))
	return strings.Repeat("0", orderCodeLength-len(code)) + code
}

// PlaceOrder registra el pedido del carrito actual.
// Solo un checkout a la vez: un segundo intento mientras otro espera devuelve ErrPlacementInFlight.
func (uc *CheckoutUseCase) PlaceOrder(ctx context.Context, actor access.Actor, in dto.CheckoutRequest) (*dto.OrderResponse, error) {
	if err := ValidateCheckout(in); err != nil {
		return nil, err
	}
	if !uc.inFlight.CompareAndSwap(false, true) {
		return nil, domain.ErrPlacementInFlight
	}
	defer uc.inFlight.Store(false)

	// ── 1. Snapshot del carrito al confirmar ─────────────────────────────────
	lines := uc.cart.Lines()
	if len(lines) == 0 {
		return nil, domain.ErrEmptyCart
	}
	subtotal := uc.cart.TotalPrice()

	// ── 2. Latencia simulada ──────────────────────────────────────────────────
	if uc.cfg.Delay > 0 {
		timer := time.NewTimer(uc.cfg.Delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, fmt.Errorf("checkout: %w", ctx.Err())
		case <-timer.C:
		}
	}

	// ── 3. Código único ───────────────────────────────────────────────────────
	code, err := uc.uniqueCode()
	if err != nil {
		return nil, err
	}

	userID := actor.UserID
	if actor.IsGuest() {
		userID = GuestUserID
	}
	order := entity.Order{
		ID:        code,
		UserID:    userID,
		UserName:  in.Name,
		Items:     lines,
		Total:     subtotal.Add(uc.cfg.DeliveryFee),
		Status:    entity.OrderPending,
		Timestamp: uc.now().UnixMilli(),
		Address:   in.Address + ", " + in.Street,
		Phone:     in.Phone,
	}

	// ── 4. Registrar pedido y vaciar carrito ──────────────────────────────────
	// Pasada la espera ya no se cancela: los dos pasos van juntos.
	wctx := context.WithoutCancel(ctx)
	uc.directory.PlaceOrder(wctx, order)
	uc.cart.Clear(wctx)

	uc.observer.OrderPlaced(actor.IsGuest())
	uc.log.Info().
		Str("order_id", order.ID).
		Str("user_id", order.UserID).
		Str("total", order.Total.StringFixed(2)).
		Int("lines", len(order.Items)).
		Msg("pedido registrado")

	resp := toOrderResponse(order)
	return &resp, nil
}

func (uc *CheckoutUseCase) uniqueCode() (string, error) {
	for range maxCodeAttempts {
		code := uc.newCode()
		if !uc.directory.OrderIDExists(code) {
			return code, nil
		}
	}
	return "", fmt.Errorf("checkout: no se obtuvo un código libre tras %d intentos: %w", maxCodeAttempts, domain.ErrConflict)
}
