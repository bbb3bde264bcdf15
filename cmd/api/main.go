package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/seyalworks/tailorshop-api/internal/application/service"
	"github.com/seyalworks/tailorshop-api/internal/config"
	"github.com/seyalworks/tailorshop-api/internal/infrastructure/database"
	"github.com/seyalworks/tailorshop-api/internal/infrastructure/repository"
	"github.com/seyalworks/tailorshop-api/internal/presentation/http/handler"
	"github.com/seyalworks/tailorshop-api/internal/presentation/http/routes"
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

	// Seed the shop profile
	if err := database.SeedDefaultData(db, &cfg.Shop); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Initialize repositories
	customerRepo := repository.NewCustomerRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)
	billRepo := repository.NewBillRepository(db)
	workOrderRepo := repository.NewWorkOrderRepository(db)
	shopRepo := repository.NewShopRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)

	// Initialize services
	customerService := service.NewCustomerService(customerRepo)
	catalogService := service.NewCatalogService(catalogRepo)
	billService := service.NewBillService(billRepo, catalogRepo, customerRepo)
	workOrderService := service.NewWorkOrderService(workOrderRepo, customerRepo)
	shopService := service.NewShopService(shopRepo)
	dashboardService := service.NewDashboardService(analyticsRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Customer:  handler.NewCustomerHandler(customerService),
		Catalog:   handler.NewCatalogHandler(catalogService),
		Bill:      handler.NewBillHandler(billService),
		WorkOrder: handler.NewWorkOrderHandler(workOrderService),
		Shop:      handler.NewShopHandler(shopService),
		Dashboard: handler.NewDashboardHandler(dashboardService),
	}

	// Setup routes
	router := routes.Setup(handlers, cfg)

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
		log.Printf("Environment: %s", cfg.App.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Forced shutdown: %v", err)
	}

	// Release the store handle last
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}

	log.Println("Server stopped")
}
