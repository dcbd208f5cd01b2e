package repository

import (
	"context"

	"github.com/jhoicas/burger-house/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// SettingsRepository define el acceso al singleton StoreSettings.
type SettingsRepository interface {
	Get() entity.StoreSettings
	Update(ctx context.Context, next entity.StoreSettings) entity.StoreSettings
}

// CatalogRepository define el acceso al catálogo de MenuItem.
type CatalogRepository interface {
	Items() []entity.MenuItem
	Item(id int) (entity.MenuItem, bool)
	Add(ctx context.Context, item entity.MenuItem) entity.MenuItem
	Update(ctx context.Context, item entity.MenuItem) bool
	Delete(ctx context.Context, id int) bool
}

// CartRepository define el acceso al carrito activo (uno por perfil).
type CartRepository interface {
	Lines() []entity.CartLine
	Add(ctx context.Context, item entity.MenuItem)
	Remove(ctx context.Context, id int)
	UpdateQuantity(ctx context.Context, id int, delta int)
	Clear(ctx context.Context)
	LastAdded() (entity.MenuItem, bool)
	ClearNotification()
	TotalItems() int
	TotalPrice() decimal.Decimal
}

// LoginOutcome resultado explícito de un login.
type LoginOutcome string

// Found = usuario existente; Created = alta automática de cliente; Rejected = fallo.
const (
	LoginFound    LoginOutcome = "found"
	LoginCreated  LoginOutcome = "created"
	LoginRejected LoginOutcome = "rejected"
)

// LoginResult perfil autenticado (vacío si Rejected) y cómo se obtuvo.
type LoginResult struct {
	Outcome LoginOutcome
	Profile entity.UserProfile
}

// DirectoryRepository define el acceso a usuarios, sesión activa y libro de pedidos.
type DirectoryRepository interface {
	Login(ctx context.Context, identifier, password string) LoginResult
	Logout(ctx context.Context)
	CurrentUser() (entity.UserProfile, bool)
	IsSuperAdmin() bool
	IsAdmin() bool
	IsManager() bool

	Users() []entity.UserProfile
	User(id string) (entity.UserProfile, bool)
	UpsertStaff(ctx context.Context, profile entity.UserProfile) entity.UserProfile
	DeleteStaff(ctx context.Context, userID string) bool

	Orders() []entity.Order
	Order(id string) (entity.Order, bool)
	OrderIDExists(id string) bool
	PlaceOrder(ctx context.Context, order entity.Order)
	UpdateOrderStatus(ctx context.Context, orderID string, status entity.OrderStatus) (entity.Order, error)
}
