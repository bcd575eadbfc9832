package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sothea-dev/shoppos-api/internal/config"
	domainRepo "github.com/sothea-dev/shoppos-api/internal/domain/repository"
	"github.com/sothea-dev/shoppos-api/internal/presentation/http/handler"
	"github.com/sothea-dev/shoppos-api/internal/presentation/http/middleware"
	"github.com/sothea-dev/shoppos-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth      *handler.AuthHandler
	Order     *handler.OrderHandler
	Purchase  *handler.PurchaseOrderHandler
	Receive   *handler.ReceiveOrderHandler
	Item      *handler.ItemHandler
	Supplier  *handler.SupplierHandler
	Dashboard *handler.DashboardHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
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

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		v1.POST("/auth/login", h.Auth.Login)

		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		rateLimiter := middleware.NewAccountRateLimiter(middleware.RateLimiterConfig{
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
	protected.GET("/auth/me", h.Auth.Me)
	protected.POST("/auth/logout", h.Auth.Logout)

	// Dashboard
	protected.GET("/dashboard", h.Dashboard.Stats)
	protected.GET("/chart-data", h.Dashboard.ChartData)

	// Shop orders
	orders := protected.Group("/shop-orders")
	{
		orders.GET("", h.Order.List)
		// Checkout retries replay the original response
		orders.POST("", middleware.Idempotency(deps.IdempotencyRepo), h.Order.Create)
		orders.GET("/:id", h.Order.Get)
		orders.DELETE("/:id", h.Order.Delete)
	}

	// Purchase orders
	purchases := protected.Group("/purchase-orders")
	{
		purchases.GET("", h.Purchase.List)
		purchases.POST("", middleware.Idempotency(deps.IdempotencyRepo), h.Purchase.Create)
		purchases.GET("/:id", h.Purchase.Get)
		purchases.PUT("/:id", h.Purchase.Update)
		purchases.DELETE("/:id", h.Purchase.Delete)
	}

	// Receive orders
	receives := protected.Group("/receive-orders")
	{
		receives.GET("", h.Receive.List)
		receives.POST("", h.Receive.Create)
		receives.GET("/:id", h.Receive.Get)
		receives.PUT("/:id", h.Receive.Update)
		receives.DELETE("/:id", h.Receive.Delete)
	}

	// Items
	items := protected.Group("/items")
	{
		items.GET("", h.Item.List)
		items.POST("", h.Item.Create)
		items.GET("/:id", h.Item.Get)
		items.PUT("/:id", h.Item.Update)
		items.DELETE("/:id", h.Item.Delete)
	}

	// Suppliers
	suppliers := protected.Group("/suppliers")
	{
		suppliers.GET("", h.Supplier.List)
		suppliers.POST("", h.Supplier.Create)
		suppliers.GET("/:id", h.Supplier.Get)
		suppliers.PUT("/:id", h.Supplier.Update)
		suppliers.DELETE("/:id", h.Supplier.Delete)
	}
}
