// Invoicing API server.
//
//	@title			Invoicing API
//	@version		1.0
//	@description	Token-authenticated REST API for customers, products, categories and invoices.
//	@BasePath		/api
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and the access token.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/factura-dev/invoicing-api/internal/api/handlers"
	"github.com/factura-dev/invoicing-api/internal/api/middleware"
	"github.com/factura-dev/invoicing-api/internal/config"
	"github.com/factura-dev/invoicing-api/internal/health"
	"github.com/factura-dev/invoicing-api/internal/metrics"
	"github.com/factura-dev/invoicing-api/internal/observability"
	repository "github.com/factura-dev/invoicing-api/internal/repositories"
	"github.com/factura-dev/invoicing-api/internal/services"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	_ "github.com/factura-dev/invoicing-api/docs"
)

func main() {
	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load config
	cfg := config.MustLoad()

	// Tracing setup
	shutdownTracing, err := observability.InitTracing(context.Background(), &cfg.Otel)
	if err != nil {
		slog.Error("Error initializing tracing", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Database setup
	repos, err := repository.New(cfg)
	if err != nil {
		slog.Error("Error accessing the database", slog.String("error", err.Error()))
		os.Exit(1)
	}

	defer func() {
		if err := repos.Close(); err != nil {
			slog.Error("Error closing database connection", slog.String("error", err.Error()))
		} else {
			slog.Info("Database connection closed")
		}
	}()

	// Redis setup
	redisClient, err := repository.NewRedisClient(cfg)
	if err != nil {
		slog.Error("Error accessing the redis instance", slog.String("error", err.Error()))
		os.Exit(1)
	}

	tokenRepo := repository.NewTokenRepo(redisClient)

	authService := services.NewAuthService(repos.User, tokenRepo, cfg.Security.JWTKey, cfg.Security.JWTExpiryHours)
	authHandler := handlers.NewAuthHandler(authService)
	customerService := services.NewCustomerService(repos.Customer)
	customerHandler := handlers.NewCustomerHandler(customerService)
	categoryService := services.NewCategoryService(repos.Category)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	productService := services.NewProductService(repos.Product, repos.Category)
	productHandler := handlers.NewProductHandler(productService)
	invoiceService := services.NewInvoiceService(repos.Invoice, repos.Customer, repos.Product)
	invoiceHandler := handlers.NewInvoiceHandler(invoiceService)
	authMiddleware := middleware.NewAuthMiddleware([]byte(cfg.Security.JWTKey), tokenRepo)

	healthHandler, err := health.NewHealthHandler(cfg)
	if err != nil {
		slog.Error("Error creating health handler", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("storage initialized", slog.String("env", cfg.Env), slog.String("version", "1.0.0"))

	// Setup router
	routerMux := http.NewServeMux()
	routerMux.HandleFunc("POST /api/register", authHandler.Register)
	routerMux.HandleFunc("POST /api/login", authHandler.Login)
	routerMux.HandleFunc("GET /api/profile", authMiddleware.Authenticate(http.HandlerFunc(authHandler.Profile)))
	routerMux.HandleFunc("POST /api/change-password", authMiddleware.Authenticate(http.HandlerFunc(authHandler.ChangePassword)))
	routerMux.HandleFunc("POST /api/logout", authMiddleware.Authenticate(http.HandlerFunc(authHandler.Logout)))

	routerMux.HandleFunc("GET /api/customers", authMiddleware.Authenticate(http.HandlerFunc(customerHandler.List)))
	routerMux.HandleFunc("POST /api/customers", authMiddleware.Authenticate(http.HandlerFunc(customerHandler.Create)))
	routerMux.HandleFunc("GET /api/customers/{id}", authMiddleware.Authenticate(http.HandlerFunc(customerHandler.Get)))
	routerMux.HandleFunc("PUT /api/customers/{id}", authMiddleware.Authenticate(http.HandlerFunc(customerHandler.Update)))
	routerMux.HandleFunc("DELETE /api/customers/{id}", authMiddleware.Authenticate(http.HandlerFunc(customerHandler.Delete)))

	routerMux.HandleFunc("GET /api/categories", authMiddleware.Authenticate(http.HandlerFunc(categoryHandler.List)))
	routerMux.HandleFunc("POST /api/categories", authMiddleware.Authenticate(http.HandlerFunc(categoryHandler.Create)))
	routerMux.HandleFunc("GET /api/categories/{id}", authMiddleware.Authenticate(http.HandlerFunc(categoryHandler.Get)))
	routerMux.HandleFunc("PUT /api/categories/{id}", authMiddleware.Authenticate(http.HandlerFunc(categoryHandler.Update)))
	routerMux.HandleFunc("DELETE /api/categories/{id}", authMiddleware.Authenticate(http.HandlerFunc(categoryHandler.Delete)))

	routerMux.HandleFunc("GET /api/products", authMiddleware.Authenticate(http.HandlerFunc(productHandler.List)))
	routerMux.HandleFunc("POST /api/products", authMiddleware.Authenticate(http.HandlerFunc(productHandler.Create)))
	routerMux.HandleFunc("GET /api/products/{id}", authMiddleware.Authenticate(http.HandlerFunc(productHandler.Get)))
	routerMux.HandleFunc("PUT /api/products/{id}", authMiddleware.Authenticate(http.HandlerFunc(productHandler.Update)))
	routerMux.HandleFunc("DELETE /api/products/{id}", authMiddleware.Authenticate(http.HandlerFunc(productHandler.Delete)))

	routerMux.HandleFunc("GET /api/invoices", authMiddleware.Authenticate(http.HandlerFunc(invoiceHandler.List)))
	routerMux.HandleFunc("POST /api/invoices", authMiddleware.Authenticate(http.HandlerFunc(invoiceHandler.Create)))
	routerMux.HandleFunc("GET /api/invoices/{id}", authMiddleware.Authenticate(http.HandlerFunc(invoiceHandler.Get)))
	routerMux.HandleFunc("PUT /api/invoices/{id}", authMiddleware.Authenticate(http.HandlerFunc(invoiceHandler.Update)))
	routerMux.HandleFunc("DELETE /api/invoices/{id}", authMiddleware.Authenticate(http.HandlerFunc(invoiceHandler.Delete)))
	routerMux.HandleFunc("POST /api/invoices/{id}/products", authMiddleware.Authenticate(http.HandlerFunc(invoiceHandler.AddProducts)))
	routerMux.HandleFunc("DELETE /api/invoices/{id}/products", authMiddleware.Authenticate(http.HandlerFunc(invoiceHandler.RemoveProducts)))

	routerMux.Handle("GET /metrics", metrics.Handler())
	routerMux.Handle("GET /health", healthHandler.Handler())
	routerMux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// Middleware chaining
	var handler http.Handler = routerMux
	handler = metrics.Middleware(handler)
	handler = middleware.Logging(handler)
	handler = otelhttp.NewHandler(handler, "invoicing-api")

	// Setup http server
	server := http.Server{
		Addr:    cfg.HTTPServer.Addr,
		Handler: handler,
	}

	slog.Info("Server is starting...", slog.String("address", cfg.HTTPServer.Addr))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("Failed to start server", slog.String("error", err.Error()))
		}
	}()

	<-done

	slog.Warn("Shutdown signal received. Preparing to stop the server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("Server shut down gracefully. All connections closed.")
	}

	if err := shutdownTracing(shutdownCtx); err != nil {
		slog.Error("Tracer shutdown encountered an issue", slog.String("error", err.Error()))
	}

	if err := redisClient.Close(); err != nil {
		slog.Error("Error closing redis connection", slog.String("error", err.Error()))
	}
}
