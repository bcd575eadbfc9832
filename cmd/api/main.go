package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/sothea-dev/shoppos-api/internal/application/service"
	"github.com/sothea-dev/shoppos-api/internal/config"
	"github.com/sothea-dev/shoppos-api/internal/infrastructure/database"
	"github.com/sothea-dev/shoppos-api/internal/infrastructure/repository"
	"github.com/sothea-dev/shoppos-api/internal/presentation/http/handler"
	"github.com/sothea-dev/shoppos-api/internal/presentation/http/routes"
	"github.com/sothea-dev/shoppos-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

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

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(cfg.JWT.Secret, cfg.JWT.ExpiryHours)

	// Initialize repositories
	accountRepo := repository.NewAccountRepository(db)
	itemRepo := repository.NewItemRepository(db)
	orderRepo := repository.NewShopOrderRepository(db)
	purchaseRepo := repository.NewPurchaseOrderRepository(db)
	receiveRepo := repository.NewReceiveOrderRepository(db)
	supplierRepo := repository.NewSupplierRepository(db)
	counterRepo := repository.NewInvoiceCounterRepository(db)
	financeRepo := repository.NewFinanceRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Initialize services
	authService := service.NewAuthService(accountRepo, jwtManager)
	orderService := service.NewOrderService(orderRepo, itemRepo, counterRepo)
	purchaseService := service.NewPurchaseOrderService(purchaseRepo, supplierRepo, counterRepo)
	receiveService := service.NewReceiveOrderService(receiveRepo, purchaseRepo)
	itemService := service.NewItemService(itemRepo)
	supplierService := service.NewSupplierService(supplierRepo)
	dashboardService := service.NewDashboardService(financeRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:      handler.NewAuthHandler(authService),
		Order:     handler.NewOrderHandler(orderService),
		Purchase:  handler.NewPurchaseOrderHandler(purchaseService),
		Receive:   handler.NewReceiveOrderHandler(receiveService),
		Item:      handler.NewItemHandler(itemService),
		Supplier:  handler.NewSupplierHandler(supplierService),
		Dashboard: handler.NewDashboardHandler(dashboardService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})

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
