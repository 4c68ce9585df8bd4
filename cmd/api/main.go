package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/shopspring/decimal"

	appalerts "github.com/jhoicas/Restaurante-api/internal/application/alerts"
	"github.com/jhoicas/Restaurante-api/internal/application/inventory"
	"github.com/jhoicas/Restaurante-api/internal/application/orders"
	"github.com/jhoicas/Restaurante-api/internal/application/realtime"
	"github.com/jhoicas/Restaurante-api/internal/application/usecase"
	domainalerts "github.com/jhoicas/Restaurante-api/internal/domain/alerts"
	"github.com/jhoicas/Restaurante-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Restaurante-api/internal/interfaces/http"
	"github.com/jhoicas/Restaurante-api/pkg/config"
	"github.com/jhoicas/Restaurante-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	ingredientRepo := postgres.NewIngredientRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	reorderRepo := postgres.NewReorderRuleRepository(pool)
	menuRepo := postgres.NewMenuItemRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	ticketRepo := postgres.NewKitchenTicketRepository(pool)
	staffRepo := postgres.NewStaffRepository(pool)
	tableRepo := postgres.NewTableRepository(pool)
	reservationRepo := postgres.NewReservationRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	methodRepo := postgres.NewPaymentMethodRepository(pool)
	paymentTxRepo := postgres.NewPaymentTransactionRepository(pool)

	txRunner := postgres.NewTxRunner(pool)
	orderTxRunner := postgres.NewOrderTxRunner(pool)
	notifier := postgres.NewNotifier(pool, log)

	// Fan-out realtime: el listener LISTEN/NOTIFY es la fuente del broker.
	// El handler se engancha después de construir el broker para cerrar el ciclo.
	listener := postgres.NewListener(cfg.DB.ConnectionString(), cfg.Realtime, log)
	broker := realtime.NewBroker(listener, log)
	listener.OnNotification(broker.Dispatch)

	ingredientUC := inventory.NewIngredientUseCase(ingredientRepo, movementRepo, notifier)
	adjustStockUC := inventory.NewAdjustStockUseCase(txRunner, notifier, log)

	alertSettings := domainalerts.Settings{
		LowStockThreshold:  decimal.NewFromFloat(cfg.Alert.LowStockThreshold),
		ExpiryWarningDays:  cfg.Alert.ExpiryWarningDays,
		AutoReorderDefault: cfg.Alert.AutoReorderDefault,
	}
	alertsUC := appalerts.NewAlertsUseCase(ingredientRepo, alertSettings, broker)
	reorderUC := appalerts.NewReorderUseCase(reorderRepo, ingredientRepo, cfg.Alert.AutoReorderDefault, log)

	menuUC := usecase.NewMenuUseCase(menuRepo, ingredientRepo, notifier, log)
	createOrderUC := orders.NewCreateOrderUseCase(
		orderTxRunner, menuRepo, notifier,
		decimal.NewFromFloat(cfg.App.OrderTaxPct), log,
	)
	orderUC := orders.NewOrderUseCase(orderRepo, notifier)
	kitchenUC := orders.NewKitchenUseCase(ticketRepo, notifier)
	staffUC := usecase.NewStaffUseCase(staffRepo, notifier)
	tableUC := usecase.NewTableUseCase(tableRepo, reservationRepo, notifier)
	customerUC := usecase.NewCustomerUseCase(customerRepo, notifier)
	paymentUC := usecase.NewPaymentUseCase(methodRepo, paymentTxRepo, orderRepo, customerUC, notifier, log)

	// Suscriptores internos del dominio stock: evaluación de auto-reorden y
	// recálculo de disponibilidad de la carta cada vez que cambia un nivel.
	// Mantienen el listener abierto durante toda la vida del proceso.
	broker.Register(realtime.DomainStock, "auto-reorder-evaluator", func() {
		go func() {
			if _, err := reorderUC.EvaluateAutoReorders(); err != nil {
				log.Error().Err(err).Msg("evaluación de auto-reorden")
			}
		}()
	})
	broker.Register(realtime.DomainStock, "menu-availability-refresher", func() {
		go func() {
			if err := menuUC.RefreshAvailability(context.Background()); err != nil {
				log.Error().Err(err).Msg("recálculo de disponibilidad de la carta")
			}
		}()
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Resto POS API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		IngredientUC:  ingredientUC,
		AdjustStockUC: adjustStockUC,
		AlertsUC:      alertsUC,
		ReorderUC:     reorderUC,
		MenuUC:        menuUC,
		CreateOrderUC: createOrderUC,
		OrderUC:       orderUC,
		KitchenUC:     kitchenUC,
		StaffUC:       staffUC,
		TableUC:       tableUC,
		CustomerUC:    customerUC,
		PaymentUC:     paymentUC,
		Broker:        broker,
		Log:           log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
	listener.Close()

	log.Info().Msg("aplicación detenida")
}
