package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/phamtrung/pos-api/internal/config"
	domainRepo "github.com/phamtrung/pos-api/internal/domain/repository"
	"github.com/phamtrung/pos-api/internal/presentation/http/handler"
	"github.com/phamtrung/pos-api/internal/presentation/http/middleware"
	"github.com/phamtrung/pos-api/internal/presentation/ws"
	"github.com/phamtrung/pos-api/pkg/token"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Session       *handler.SessionHandler
	Product       *handler.ProductHandler
	Order         *handler.OrderHandler
	Receipt       *handler.ReceiptHandler
	Print         *handler.PrintHandler
	Customer      *handler.CustomerHandler
	Employee      *handler.EmployeeHandler
	Table         *handler.TableHandler
	Printer       *handler.PrinterHandler
	Settings      *handler.SettingsHandler
	PaymentMethod *handler.PaymentMethodHandler
	EInvoice      *handler.EInvoiceHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	Sessions        *token.SessionManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
	Hub             *ws.Hub
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// Receipt artifacts written by the print fallback tiers
	router.Static("/files", deps.Cfg.Storage.Path)

	// Refresh event stream for connected terminals
	router.GET("/ws", ws.Handler(deps.Hub))

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no session required)
		v1.POST("/session/pin", h.Session.Open)

		// Protected routes (session required)
		protected := v1.Group("")
		protected.Use(middleware.SessionMiddleware(deps.Sessions))

		// Per-terminal rate limiter
		rateLimiter := middleware.NewTerminalRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h, deps)
	}

	return router
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	// Session
	protected.GET("/session/me", h.Session.Verify)

	// Settings
	protected.GET("/settings", h.Settings.Get)
	protected.PUT("/settings", h.Settings.Update)
	protected.PUT("/settings/pin", h.Settings.ChangePIN)

	// Receipt preview for in-progress carts
	protected.POST("/receipts/preview", h.Receipt.Preview)

	// Orders
	registerOrderRoutes(protected, h, deps)

	// Products and categories
	registerProductRoutes(protected, h)

	// Customers
	registerCustomerRoutes(protected, h)

	// Employees
	registerEmployeeRoutes(protected, h)

	// Tables
	registerTableRoutes(protected, h)

	// Printers
	registerPrinterRoutes(protected, h)

	// Payment methods
	registerPaymentMethodRoutes(protected, h)

	// E-invoice providers
	registerEInvoiceRoutes(protected, h)
}

func registerOrderRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	orders := protected.Group("/orders")
	{
		orders.GET("", h.Order.List)
		// Order creation uses idempotency middleware so a retried checkout
		// never double-charges
		orders.POST("", middleware.Idempotency(middleware.IdempotencyConfig{
			Repo: deps.IdempotencyRepo,
		}), h.Order.Create)
		orders.GET("/export", h.Order.Export)
		orders.GET("/:id", h.Order.Get)
		orders.PUT("/:id/status", h.Order.UpdateStatus)
		orders.POST("/:id/cancel", h.Order.Cancel)
		orders.GET("/:id/receipt", h.Receipt.Render)
		orders.GET("/:id/receipt.html", h.Receipt.RenderHTML)
		orders.GET("/:id/receipt.pdf", h.Receipt.RenderPDF)
		orders.POST("/:id/print", h.Print.Print)
	}
}

func registerProductRoutes(protected *gin.RouterGroup, h *Handlers) {
	products := protected.Group("/products")
	{
		products.GET("", h.Product.List)
		products.POST("", h.Product.Create)
		products.GET("/:id", h.Product.Get)
		products.PUT("/:id", h.Product.Update)
		products.DELETE("/:id", h.Product.Delete)
	}

	categories := protected.Group("/categories")
	{
		categories.GET("", h.Product.ListCategories)
		categories.POST("", h.Product.CreateCategory)
		categories.PUT("/:id", h.Product.UpdateCategory)
		categories.DELETE("/:id", h.Product.DeleteCategory)
	}
}

func registerCustomerRoutes(protected *gin.RouterGroup, h *Handlers) {
	customers := protected.Group("/customers")
	{
		customers.GET("", h.Customer.List)
		customers.POST("", h.Customer.Create)
		customers.GET("/:id", h.Customer.Get)
		customers.PUT("/:id", h.Customer.Update)
		customers.DELETE("/:id", h.Customer.Delete)
	}
}

func registerEmployeeRoutes(protected *gin.RouterGroup, h *Handlers) {
	employees := protected.Group("/employees")
	{
		employees.GET("", h.Employee.List)
		employees.POST("", middleware.RequireRole("admin", "manager"), h.Employee.Create)
		employees.PUT("/:id", middleware.RequireRole("admin", "manager"), h.Employee.Update)
		employees.DELETE("/:id", middleware.RequireRole("admin"), h.Employee.Delete)
	}
}

func registerTableRoutes(protected *gin.RouterGroup, h *Handlers) {
	tables := protected.Group("/tables")
	{
		tables.GET("", h.Table.List)
		tables.POST("", h.Table.Create)
		tables.GET("/:id", h.Table.Get)
		tables.PUT("/:id", h.Table.Update)
		tables.DELETE("/:id", h.Table.Delete)
	}
}

func registerPrinterRoutes(protected *gin.RouterGroup, h *Handlers) {
	printers := protected.Group("/printers")
	{
		printers.GET("", h.Printer.List)
		printers.GET("/status", h.Print.Status)
		printers.POST("", h.Printer.Create)
		printers.POST("/test", h.Print.TestPrint)
		printers.PUT("/:id", h.Printer.Update)
		printers.DELETE("/:id", h.Printer.Delete)
	}
}

func registerPaymentMethodRoutes(protected *gin.RouterGroup, h *Handlers) {
	methods := protected.Group("/payment-methods")
	{
		methods.GET("", h.PaymentMethod.List)
		methods.POST("", h.PaymentMethod.Create)
		methods.PUT("/:id", h.PaymentMethod.Update)
		methods.DELETE("/:id", h.PaymentMethod.Delete)
	}
}

func registerEInvoiceRoutes(protected *gin.RouterGroup, h *Handlers) {
	providers := protected.Group("/einvoice-providers")
	{
		providers.GET("", h.EInvoice.List)
		providers.POST("", h.EInvoice.Create)
		providers.PUT("/:id", h.EInvoice.Update)
		providers.DELETE("/:id", h.EInvoice.Delete)
	}
}
