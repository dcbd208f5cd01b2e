package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appanalytics "github.com/jhoicas/burger-house/internal/application/analytics"
	"github.com/jhoicas/burger-house/internal/application/auth"
	"github.com/jhoicas/burger-house/internal/application/dto"
	"github.com/jhoicas/burger-house/internal/application/ordering"
	"github.com/jhoicas/burger-house/internal/application/usecase"
	"github.com/jhoicas/burger-house/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/burger-house/internal/infrastructure/pdf"
	apphttp "github.com/jhoicas/burger-house/internal/interfaces/http"
	"github.com/jhoicas/burger-house/internal/store"
	"github.com/jhoicas/burger-house/pkg/logger"
)

var deliveryFee = decimal.NewFromInt(5)

// newStorefront arma la API completa sobre el espejo en memoria, sin latencia de checkout.
func newStorefront(t *testing.T) *fiber.App {
	t.Helper()
	ctx := context.Background()
	m := store.NewMirror(memory.NewKVStore(), "", logger.Nop(), nil)
	settings, err := store.NewSettingsStore(ctx, m)
	require.NoError(t, err)
	catalog, err := store.NewCatalogStore(ctx, m)
	require.NoError(t, err)
	cart, err := store.NewCartStore(ctx, m)
	require.NoError(t, err)
	dir, err := store.NewDirectoryStore(ctx, m)
	require.NoError(t, err)

	orderUC := ordering.NewOrderUseCase(dir, 0, nil, nil)
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:      auth.NewAuthUseCase(dir, auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer}, nil),
		CatalogUC:   usecase.NewCatalogUseCase(catalog),
		CartUC:      usecase.NewCartUseCase(cart, catalog, deliveryFee),
		SettingsUC:  usecase.NewSettingsUseCase(settings),
		StaffUC:     usecase.NewStaffUseCase(dir),
		CheckoutUC:  ordering.NewCheckoutUseCase(dir, cart, ordering.Config{DeliveryFee: deliveryFee}, nil, nil),
		OrderUC:     orderUC,
		ReceiptUC:   ordering.NewReceiptUseCase(orderUC, settings, infrapdf.NewMarotoReceiptGenerator(), deliveryFee),
		DashboardUC: appanalytics.NewDashboardUseCase(dir, catalog),
		JWTSecret:   testJWTSecret,
	})
	return app
}

func call(t *testing.T, app *fiber.App, method, path, token string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func login(t *testing.T, app *fiber.App, identifier, password string) string {
	t.Helper()
	resp := call(t, app, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Identifier: identifier, Password: password})
	require.Contains(t, []int{http.StatusOK, http.StatusCreated}, resp.StatusCode)
	return decode[dto.LoginResponse](t, resp).Token
}

func TestStorefront_GuestCheckoutThroughKitchen(t *testing.T) {
	app := newStorefront(t)

	menu := decode[dto.MenuListResponse](t, call(t, app, http.MethodGet, "/api/menu", "", nil))
	assert.Equal(t, 10, menu.Total)

	for range 2 {
		resp := call(t, app, http.MethodPost, "/api/cart/items", "", dto.AddToCartRequest{ItemID: 1})
		require.Equal(t, http.StatusOK, resp.StatusCode)
		resp.Body.Close()
	}
	cart := decode[dto.CartResponse](t, call(t, app, http.MethodGet, "/api/cart", "", nil))
	assert.Equal(t, 2, cart.TotalItems)

	resp := call(t, app, http.MethodPost, "/api/checkout", "", dto.CheckoutRequest{
		Name: "Luis Perez", Phone: "3001234567", Address: "Calle 10", Street: "Apto 3",
		PaymentMethod: dto.PaymentCashOnDelivery,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	order := decode[dto.OrderResponse](t, resp)
	assert.True(t, order.Total.Equal(decimal.RequireFromString("15.782")), order.Total.String())
	assert.Equal(t, ordering.GuestUserID, order.UserID)

	cart = decode[dto.CartResponse](t, call(t, app, http.MethodGet, "/api/cart", "", nil))
	assert.Empty(t, cart.Lines)

	manager := login(t, app, "manager", "manager")
	resp = call(t, app, http.MethodPost, fmt.Sprintf("/api/admin/orders/%s/accept", order.ID), manager, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "accepted", decode[dto.OrderResponse](t, resp).Status)

	resp = call(t, app, http.MethodPost, fmt.Sprintf("/api/admin/orders/%s/cancel", order.ID), manager, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()

	report := decode[dto.AnalyticsReportDTO](t, call(t, app, http.MethodGet, "/api/admin/analytics", manager, nil))
	assert.True(t, report.TotalRevenue.Equal(decimal.RequireFromString("15.78")), report.TotalRevenue.String())
	assert.Equal(t, 1, report.StatusBreakdown["accepted"])

	resp = call(t, app, http.MethodGet, fmt.Sprintf("/api/orders/%s/receipt", order.ID), "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	pdf, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF")))
}

func TestStorefront_ConsoleAccess(t *testing.T) {
	app := newStorefront(t)

	resp := call(t, app, http.MethodGet, "/api/admin/orders", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	customer := login(t, app, "ana@mail.com", "secreto")
	resp = call(t, app, http.MethodGet, "/api/admin/orders", customer, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	admin := login(t, app, "admin", "admin")
	resp = call(t, app, http.MethodPut, "/api/admin/settings", admin, dto.SettingsRequest{Name: "X", Logo: "x"})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode, "solo super-admin cambia la identidad")
	resp.Body.Close()

	super := login(t, app, "super", "super")
	resp = call(t, app, http.MethodPut, "/api/admin/settings", super, dto.SettingsRequest{Name: "Taco Town", Logo: "🌮"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
	settings := decode[dto.SettingsResponse](t, call(t, app, http.MethodGet, "/api/settings", "", nil))
	assert.Equal(t, "Taco Town | Premium Taste", settings.PageTitle)

	staff := decode[dto.StaffListResponse](t, call(t, app, http.MethodGet, "/api/admin/staff", admin, nil))
	assert.Len(t, staff.Items, 3)
}

func TestStorefront_LoginOutcomes(t *testing.T) {
	app := newStorefront(t)

	resp := call(t, app, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Identifier: "nuevo@mail.com", Password: "12345"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[dto.LoginResponse](t, resp)
	assert.Equal(t, "nuevo", created.User.Name)

	resp = call(t, app, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Identifier: "otro@mail.com", Password: "123"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	me := decode[dto.SessionResponse](t, call(t, app, http.MethodGet, "/api/auth/me", created.Token, nil))
	assert.False(t, me.Permissions.Console)
	assert.Equal(t, created.User.ID, me.User.ID)
}
