package router

import (
	"github.com/gin-gonic/gin"

	"github.com/nicitum/orderappu-sub000/internal/domain"
	"github.com/nicitum/orderappu-sub000/internal/handler"
	"github.com/nicitum/orderappu-sub000/internal/middleware"
	"github.com/nicitum/orderappu-sub000/internal/service"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	authSvc service.AuthService,
	corsOrigins []string,
	authH *handler.AuthHandler,
	clientH *handler.ClientHandler,
	productH *handler.ProductHandler,
	customerH *handler.CustomerHandler,
	cartH *handler.CartHandler,
	orderH *handler.OrderHandler,
	invoiceH *handler.InvoiceHandler,
	collectionH *handler.CollectionHandler,
	bankH *handler.BankAccountHandler,
	userH *handler.UserHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(corsOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	v1 := r.Group("/api/v1")

	// Public auth routes
	auth := v1.Group("/auth")
	auth.POST("/login", authH.Login)
	auth.POST("/refresh", authH.RefreshToken)

	// Protected routes - require valid JWT
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authSvc))

	// Seller configuration
	protected.GET("/client", clientH.Get)
	protected.PUT("/client", middleware.RequireRole(domain.RoleSuperAdmin), clientH.Update)

	// Product catalogue
	products := protected.Group("/products")
	products.POST("", productH.Create)
	products.GET("", productH.Search)
	products.GET("/:id", productH.GetByID)
	products.PUT("/:id", productH.Update)

	// Customers
	customers := protected.Group("/customers")
	customers.POST("", customerH.Create)
	customers.GET("", customerH.Search)
	customers.GET("/:id", customerH.GetByID)
	customers.PUT("/:id", customerH.Update)

	// Working cart, keyed by customer
	cart := protected.Group("/cart")
	cart.GET("/:customerID", cartH.Get)
	cart.PUT("/:customerID", cartH.SetItems)
	cart.DELETE("/:customerID", cartH.Clear)
	cart.POST("/:customerID/checkout", cartH.Checkout)

	// Orders
	orders := protected.Group("/orders")
	orders.GET("", orderH.List)
	orders.GET("/:id", orderH.GetByID)
	orders.PUT("/:id/items", orderH.UpdateItems)
	orders.POST("/:id/accept", orderH.Accept)
	orders.POST("/:id/reject", orderH.Reject)
	orders.POST("/:id/cancel", orderH.Cancel)
	orders.POST("/:id/deliver", orderH.Deliver)

	// Invoices
	invoices := protected.Group("/invoices")
	invoices.POST("", invoiceH.CreateFromOrder)
	invoices.POST("/direct", invoiceH.CreateDirect)
	invoices.GET("", invoiceH.List)
	invoices.GET("/export/csv", invoiceH.ExportCSV)
	invoices.GET("/:id", invoiceH.GetByID)
	invoices.GET("/:id/collections", collectionH.ListByInvoice)
	invoices.GET("/:id/outstanding", collectionH.Outstanding)

	// Cash collections
	collections := protected.Group("/collections")
	collections.POST("", collectionH.Record)
	collections.GET("", collectionH.List)

	// Bank accounts
	banks := protected.Group("/bank-accounts")
	banks.POST("", bankH.Create)
	banks.GET("", bankH.List)
	banks.POST("/:id/default", bankH.SetDefault)

	// User management
	users := protected.Group("/users")
	users.POST("", middleware.RequireRole(domain.RoleSuperAdmin), userH.Create)
	users.GET("", middleware.RequireRole(domain.RoleSuperAdmin), userH.List)
	users.GET("/:id", userH.GetByID)
	users.PUT("/:id", middleware.RequireRole(domain.RoleSuperAdmin), userH.Update)

	return r
}
