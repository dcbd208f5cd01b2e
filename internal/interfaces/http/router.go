package http

import (
	"github.com/gofiber/fiber/v2"
	appanalytics "github.com/jhoicas/burger-house/internal/application/analytics"
	"github.com/jhoicas/burger-house/internal/application/auth"
	"github.com/jhoicas/burger-house/internal/application/ordering"
	"github.com/jhoicas/burger-house/internal/application/usecase"
	"github.com/jhoicas/burger-house/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	CatalogUC   *usecase.CatalogUseCase
	CartUC      *usecase.CartUseCase
	SettingsUC  *usecase.SettingsUseCase
	StaffUC     *usecase.StaffUseCase
	CheckoutUC  *ordering.CheckoutUseCase
	OrderUC     *ordering.OrderUseCase
	ReceiptUC   *ordering.ReceiptUseCase
	DashboardUC *appanalytics.DashboardUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	authHandler := NewAuthHandler(deps.AuthUC)
	menuHandler := NewMenuHandler(deps.CatalogUC)
	cartHandler := NewCartHandler(deps.CartUC)
	settingsHandler := NewSettingsHandler(deps.SettingsUC)
	staffHandler := NewStaffHandler(deps.StaffUC)
	orderHandler := NewOrderHandler(deps.CheckoutUC, deps.OrderUC, deps.ReceiptUC)
	analyticsHandler := NewAnalyticsHandler(deps.DashboardUC)

	// Auth
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", authHandler.Logout)
	authGroup.Get("/me", AuthMiddleware(deps.JWTSecret), LoadActor(deps.AuthUC), authHandler.Me)

	// Tienda (invitados o clientes con sesión)
	shop := api.Group("/", OptionalAuth(deps.JWTSecret), LoadActor(deps.AuthUC))

	shop.Get("/settings", settingsHandler.Get)

	shop.Get("/menu", menuHandler.List)
	shop.Get("/menu/:id", menuHandler.Get)

	cart := shop.Group("/cart")
	cart.Get("/", cartHandler.View)
	cart.Delete("/", cartHandler.Clear)
	cart.Post("/items", cartHandler.Add)
	cart.Patch("/items/:id", cartHandler.Adjust)
	cart.Delete("/items/:id", cartHandler.Remove)
	cart.Delete("/notification", cartHandler.ClearNotification)

	shop.Post("/checkout", orderHandler.Checkout)

	orders := shop.Group("/orders")
	orders.Get("/mine", orderHandler.ListMine)
	orders.Get("/:id", orderHandler.Get)
	orders.Post("/:id/cancel", orderHandler.CancelMine)
	orders.Get("/:id/receipt", orderHandler.Receipt)

	// Consola (manager o superior; cada caso de uso afina el permiso)
	admin := api.Group("/admin",
		AuthMiddleware(deps.JWTSecret),
		RequireRole(string(entity.RoleSuperAdmin), string(entity.RoleAdmin), string(entity.RoleManager)),
		LoadActor(deps.AuthUC),
	)

	admin.Get("/orders", orderHandler.List)
	admin.Patch("/orders/:id/status", orderHandler.UpdateStatus)
	admin.Post("/orders/:id/accept", orderHandler.Accept)
	admin.Post("/orders/:id/deliver", orderHandler.Deliver)
	admin.Post("/orders/:id/cancel", orderHandler.Cancel)

	admin.Post("/menu", menuHandler.Create)
	admin.Put("/menu/:id", menuHandler.Update)
	admin.Delete("/menu/:id", menuHandler.Delete)

	admin.Get("/analytics", analyticsHandler.Report)
	admin.Get("/customers", analyticsHandler.Customers)

	admin.Get("/staff", staffHandler.List)
	admin.Post("/staff", staffHandler.Create)
	admin.Put("/staff/:id", staffHandler.Update)
	admin.Delete("/staff/:id", staffHandler.Delete)

	admin.Put("/settings", settingsHandler.Update)
}
