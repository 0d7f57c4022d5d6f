package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/phamtrung/pos-api/internal/application/service"
	"github.com/phamtrung/pos-api/internal/config"
	"github.com/phamtrung/pos-api/internal/infrastructure/database"
	"github.com/phamtrung/pos-api/internal/infrastructure/repository"
	"github.com/phamtrung/pos-api/internal/presentation/http/handler"
	"github.com/phamtrung/pos-api/internal/presentation/http/routes"
	"github.com/phamtrung/pos-api/internal/presentation/ws"
	"github.com/phamtrung/pos-api/pkg/events"
	"github.com/phamtrung/pos-api/pkg/printer"
	"github.com/phamtrung/pos-api/pkg/token"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed default data
	if err := database.SeedDefaultData(db); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Make sure the artifact directory for the print fallback tiers exists
	if err := os.MkdirAll(cfg.Storage.Path, 0o755); err != nil {
		log.Fatalf("Failed to create storage directory: %v", err)
	}

	// Initialize session manager
	sessions := token.NewSessionManager(cfg.Session.Secret, cfg.Session.Expiry)

	// Initialize repositories
	productRepo := repository.NewProductRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	orderItemRepo := repository.NewOrderItemRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	tableRepo := repository.NewTableRepository(db)
	printerRepo := repository.NewPrinterConfigRepository(db)
	paymentMethodRepo := repository.NewPaymentMethodRepository(db)
	einvoiceRepo := repository.NewEInvoiceProviderRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Initialize the print relay client and the event bus
	relay := printer.NewRelayClient(cfg.Print.RelayURL, cfg.Print.RelayTimeout)
	bus := events.NewBus()
	defer bus.Close()

	// Initialize services
	sessionService := service.NewSessionService(settingsRepo, employeeRepo, sessions)
	productService := service.NewProductService(productRepo, categoryRepo)
	categoryService := service.NewCategoryService(categoryRepo)
	orderService := service.NewOrderService(orderRepo, orderItemRepo, productRepo, customerRepo, tableRepo, settingsRepo)
	exportService := service.NewExportService(orderRepo)
	customerService := service.NewCustomerService(customerRepo)
	employeeService := service.NewEmployeeService(employeeRepo)
	tableService := service.NewTableService(tableRepo, orderRepo)
	printerConfigService := service.NewPrinterConfigService(printerRepo)
	paymentMethodService := service.NewPaymentMethodService(paymentMethodRepo)
	einvoiceService := service.NewEInvoiceService(einvoiceRepo)
	settingsService := service.NewSettingsService(settingsRepo)
	receiptService := service.NewReceiptService(orderRepo, settingsRepo, einvoiceRepo, cfg.Print.PaperWidth)
	printService := service.NewPrintService(receiptService, orderService, printerRepo, relay, bus, cfg.Print, cfg.Storage.Path)

	// Start the websocket hub and feed it from the event bus
	hub := ws.NewHub()
	go hub.Run()
	defer hub.Stop()
	busCh, cancelBus := bus.Subscribe()
	defer cancelBus()
	go hub.Pump(busCh)

	// Initialize handlers
	handlers := &routes.Handlers{
		Session:       handler.NewSessionHandler(sessionService),
		Product:       handler.NewProductHandler(productService, categoryService),
		Order:         handler.NewOrderHandler(orderService, exportService),
		Receipt:       handler.NewReceiptHandler(receiptService),
		Print:         handler.NewPrintHandler(printService),
		Customer:      handler.NewCustomerHandler(customerService),
		Employee:      handler.NewEmployeeHandler(employeeService),
		Table:         handler.NewTableHandler(tableService),
		Printer:       handler.NewPrinterHandler(printerConfigService),
		Settings:      handler.NewSettingsHandler(settingsService),
		PaymentMethod: handler.NewPaymentMethodHandler(paymentMethodService),
		EInvoice:      handler.NewEInvoiceHandler(einvoiceService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		Sessions:        sessions,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
		Hub:             hub,
	})

	// Get port from environment or use default
	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
