package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"

	appalerts "github.com/jhoicas/Restaurante-api/internal/application/alerts"
	"github.com/jhoicas/Restaurante-api/internal/application/inventory"
	"github.com/jhoicas/Restaurante-api/internal/application/orders"
	"github.com/jhoicas/Restaurante-api/internal/application/realtime"
	"github.com/jhoicas/Restaurante-api/internal/application/usecase"
	"github.com/jhoicas/Restaurante-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	IngredientUC  *inventory.IngredientUseCase
	AdjustStockUC *inventory.AdjustStockUseCase
	AlertsUC      *appalerts.AlertsUseCase
	ReorderUC     *appalerts.ReorderUseCase
	MenuUC        *usecase.MenuUseCase
	CreateOrderUC *orders.CreateOrderUseCase
	OrderUC       *orders.OrderUseCase
	KitchenUC     *orders.KitchenUseCase
	StaffUC       *usecase.StaffUseCase
	TableUC       *usecase.TableUseCase
	CustomerUC    *usecase.CustomerUseCase
	PaymentUC     *usecase.PaymentUseCase
	Broker        *realtime.Broker
	Log           *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Ingredients
	ingredients := api.Group("/ingredients")
	ingredientHandler := NewIngredientHandler(deps.IngredientUC, deps.AdjustStockUC)
	ingredients.Post("/", ingredientHandler.Create)
	ingredients.Get("/", ingredientHandler.List)
	ingredients.Get("/:id", ingredientHandler.GetByID)
	ingredients.Put("/:id", ingredientHandler.Update)
	ingredients.Delete("/:id", ingredientHandler.Delete)
	ingredients.Post("/:id/adjust", ingredientHandler.AdjustStock)
	ingredients.Get("/:id/movements", ingredientHandler.Movements)

	// Alerts
	alertsGroup := api.Group("/alerts")
	alertsHandler := NewAlertsHandler(deps.AlertsUC)
	alertsGroup.Get("/", alertsHandler.Overview)
	alertsGroup.Get("/low-stock", alertsHandler.LowStock)
	alertsGroup.Get("/expiring", alertsHandler.Expiring)
	alertsGroup.Get("/predictions", alertsHandler.Predictions)

	// Reorder rules
	reorder := api.Group("/reorder-rules")
	reorderHandler := NewReorderHandler(deps.ReorderUC)
	reorder.Post("/", reorderHandler.Create)
	reorder.Get("/", reorderHandler.List)
	reorder.Post("/:id/reorder", reorderHandler.ManualReorder)
	reorder.Post("/:id/toggle-auto", reorderHandler.ToggleAuto)
	reorder.Put("/:id/status", reorderHandler.SetStatus)

	// Menu
	menu := api.Group("/menu-items")
	menuHandler := NewMenuHandler(deps.MenuUC)
	menu.Post("/", menuHandler.Create)
	menu.Get("/", menuHandler.List)
	menu.Get("/:id", menuHandler.GetByID)
	menu.Put("/:id", menuHandler.Update)
	menu.Delete("/:id", menuHandler.Delete)

	// Orders y pagos
	ordersGroup := api.Group("/orders")
	orderHandler := NewOrderHandler(deps.CreateOrderUC, deps.OrderUC)
	paymentHandler := NewPaymentHandler(deps.PaymentUC)
	ordersGroup.Post("/", orderHandler.Create)
	ordersGroup.Get("/", orderHandler.List)
	ordersGroup.Get("/:id", orderHandler.GetByID)
	ordersGroup.Put("/:id/status", orderHandler.SetStatus)
	ordersGroup.Post("/:id/payments", paymentHandler.Register)
	ordersGroup.Get("/:id/payments", paymentHandler.ListByOrder)

	// Kitchen display
	kitchen := api.Group("/kitchen")
	kitchenHandler := NewKitchenHandler(deps.KitchenUC)
	kitchen.Get("/tickets", kitchenHandler.ListActive)
	kitchen.Put("/tickets/:id/status", kitchenHandler.Advance)

	// Staff
	staff := api.Group("/staff")
	staffHandler := NewStaffHandler(deps.StaffUC)
	staff.Post("/", staffHandler.Create)
	staff.Get("/", staffHandler.List)
	staff.Get("/:id", staffHandler.GetByID)
	staff.Put("/:id", staffHandler.Update)
	staff.Delete("/:id", staffHandler.Delete)
	staff.Post("/:id/verify-pin", staffHandler.VerifyPIN)

	// Tables y reservas
	tables := api.Group("/tables")
	tableHandler := NewTableHandler(deps.TableUC)
	tables.Post("/", tableHandler.CreateTable)
	tables.Get("/", tableHandler.ListTables)
	tables.Put("/:id/status", tableHandler.SetTableStatus)
	tables.Delete("/:id", tableHandler.DeleteTable)

	reservations := api.Group("/reservations")
	reservations.Post("/", tableHandler.CreateReservation)
	reservations.Get("/", tableHandler.ListReservations)
	reservations.Put("/:id/status", tableHandler.SetReservationStatus)

	// Customers
	customers := api.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", customerHandler.Delete)

	// Payment methods
	methods := api.Group("/payment-methods")
	methods.Post("/", paymentHandler.CreateMethod)
	methods.Get("/", paymentHandler.ListMethods)
	methods.Put("/:id", paymentHandler.UpdateMethod)

	// Realtime fan-out (websocket)
	wsHandler := NewWSHandler(deps.Broker, deps.Log)
	app.Use("/ws", wsHandler.Upgrade)
	app.Get("/ws", wsHandler.Serve())

	// Prometheus sobre fasthttp
	app.Get("/metrics", func(c *fiber.Ctx) error {
		fasthttpadaptor.NewFastHTTPHandler(promhttp.Handler())(c.Context())
		return nil
	})
}
