package main

import (
	"fmt"
	"log"

	"github.com/nicitum/orderappu-sub000/internal/config"
	"github.com/nicitum/orderappu-sub000/internal/handler"
	"github.com/nicitum/orderappu-sub000/internal/repository/postgres"
	"github.com/nicitum/orderappu-sub000/internal/router"
	"github.com/nicitum/orderappu-sub000/internal/service"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	clientRepo := postgres.NewClientRepo(db)
	userRepo := postgres.NewUserRepo(db)
	productRepo := postgres.NewProductRepo(db)
	customerRepo := postgres.NewCustomerRepo(db)
	cartRepo := postgres.NewCartRepo(db)
	orderRepo := postgres.NewOrderRepo(db)
	invoiceRepo := postgres.NewInvoiceRepo(db)
	bankRepo := postgres.NewBankAccountRepo(db)
	collectionRepo := postgres.NewCollectionRepo(db)

	// Initialize services
	authSvc := service.NewAuthService(userRepo, cfg.JWT)
	clientSvc := service.NewClientService(clientRepo)
	productSvc := service.NewProductService(productRepo)
	customerSvc := service.NewCustomerService(customerRepo)
	cartSvc := service.NewCartService(cartRepo, productRepo, customerRepo)
	orderSvc := service.NewOrderService(orderRepo, cartRepo, productRepo, customerRepo, clientSvc)
	invoiceSvc := service.NewInvoiceService(invoiceRepo, orderRepo, productRepo, customerRepo, bankRepo, clientSvc, cfg.Invoice.NumberPrefix)
	collectionSvc := service.NewCollectionService(collectionRepo, invoiceRepo)
	bankSvc := service.NewBankAccountService(bankRepo)
	userSvc := service.NewUserService(userRepo)

	// Initialize handlers
	authH := handler.NewAuthHandler(authSvc)
	clientH := handler.NewClientHandler(clientSvc)
	productH := handler.NewProductHandler(productSvc)
	customerH := handler.NewCustomerHandler(customerSvc)
	cartH := handler.NewCartHandler(cartSvc, orderSvc)
	orderH := handler.NewOrderHandler(orderSvc)
	invoiceH := handler.NewInvoiceHandler(invoiceSvc)
	collectionH := handler.NewCollectionHandler(collectionSvc)
	bankH := handler.NewBankAccountHandler(bankSvc)
	userH := handler.NewUserHandler(userSvc)
	healthH := handler.NewHealthHandler(db)

	// Setup router
	r := router.Setup(
		authSvc, cfg.CORS.AllowedOrigins,
		authH, clientH, productH, customerH, cartH,
		orderH, invoiceH, collectionH, bankH, userH, healthH,
	)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
