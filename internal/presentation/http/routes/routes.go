package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/seyalworks/tailorshop-api/internal/config"
	"github.com/seyalworks/tailorshop-api/internal/presentation/http/handler"
	"github.com/seyalworks/tailorshop-api/internal/presentation/http/middleware"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Customer  *handler.CustomerHandler
	Catalog   *handler.CatalogHandler
	Bill      *handler.BillHandler
	WorkOrder *handler.WorkOrderHandler
	Shop      *handler.ShopHandler
	Dashboard *handler.DashboardHandler
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, cfg *config.Config) *gin.Engine {
	router := gin.New()

	// Customer ids carry slashes (CUST-XXX-dd/mm/yyyy-XXXX); clients send
	// them URL-encoded, so params must be matched on the raw path.
	router.UseRawPath = true
	router.UnescapePathValues = true

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&cfg.CORS))

	rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
		RequestsPerSecond: float64(cfg.RateLimit.Requests) / float64(cfg.RateLimit.Duration),
		BurstSize:         cfg.RateLimit.Requests,
		CleanupInterval:   5 * time.Minute,
		EntryTTL:          10 * time.Minute,
	})
	router.Use(rateLimiter.Middleware())

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": cfg.App.Name,
		})
	})

	registerCustomerRoutes(router, h)
	registerCatalogRoutes(router, h)
	registerBillRoutes(router, h)
	registerWorkOrderRoutes(router, h)
	registerShopRoutes(router, h)
	registerDashboardRoutes(router, h)

	return router
}

func registerCustomerRoutes(router *gin.Engine, h *Handlers) {
	customer := router.Group("/customer")
	{
		customer.POST("/submitCustomers", h.Customer.Submit)
		customer.GET("/getCustomers", h.Customer.List)
		customer.GET("/getCustomer/:customerId", h.Customer.Get)
		customer.PUT("/updateCustomer/:customerId", h.Customer.Update)
		customer.PUT("/toggleFavorite/:customerId", h.Customer.ToggleFavorite)
		customer.DELETE("/deleteCustomer/:customerId", h.Customer.Delete)
	}
}

func registerCatalogRoutes(router *gin.Engine, h *Handlers) {
	billing := router.Group("/billing")
	{
		billing.POST("/submitItems", h.Catalog.Submit)
		billing.GET("/getItems", h.Catalog.List)
		billing.PUT("/updateItem", h.Catalog.Update)
		billing.DELETE("/submitItems/:itemId", h.Catalog.Delete)
	}
}

func registerBillRoutes(router *gin.Engine, h *Handlers) {
	bill := router.Group("/bill")
	{
		bill.POST("/saveBill", h.Bill.Save)
		bill.GET("/getBills/:customerId", h.Bill.ListForCustomer)
		bill.PUT("/updatePayment/:billId", h.Bill.UpdatePayment)
	}
}

func registerWorkOrderRoutes(router *gin.Engine, h *Handlers) {
	aari := router.Group("/aari")
	{
		aari.POST("/submitOrder", h.WorkOrder.Submit)
		aari.GET("/getOrders", h.WorkOrder.List)
		aari.GET("/getOrder/:orderId", h.WorkOrder.Get)
		aari.PUT("/updateOrder/:orderId", h.WorkOrder.Update)
		aari.DELETE("/deleteOrder/:orderId", h.WorkOrder.Delete)
	}
}

func registerShopRoutes(router *gin.Engine, h *Handlers) {
	shop := router.Group("/shop")
	{
		shop.GET("/getShop", h.Shop.Get)
		shop.PUT("/updateShop", h.Shop.Update)
	}
}

func registerDashboardRoutes(router *gin.Engine, h *Handlers) {
	dashboard := router.Group("/dashboard")
	{
		dashboard.GET("/getStats", h.Dashboard.GetStats)
	}
}
