package routes

import (
	"swiftpay/internal/adapters/http/handlers"
	"swiftpay/internal/adapters/http/middleware"
	"swiftpay/internal/adapters/persistence/repositories"
	"swiftpay/internal/config"
	"swiftpay/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"gorm.io/gorm"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// Repositories
	employeeRepo := repositories.NewEmployeeRepository(db)
	customerRepo := repositories.NewCustomerRepository(db)
	paymentRepo := repositories.NewPaymentRepository(db)
	counterRepo := repositories.NewCounterRepository(db)

	// Services
	authService := services.NewAuthService(employeeRepo, customerRepo, cfg)
	paymentService := services.NewPaymentService(paymentRepo, counterRepo)
	dashboardService := services.NewDashboardService(db, paymentRepo, counterRepo)

	// Handlers
	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(authService, cfg)
	paymentHandler := handlers.NewPaymentHandler(paymentService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API v1 group
	apiV1 := app.Group("/api/v1")

	// Auth routes (rate limited, public)
	auth := apiV1.Group("/auth")
	auth.Post("/register/employee", middleware.AuthRateLimiter(), authHandler.RegisterEmployee)
	auth.Post("/register/customer", middleware.AuthRateLimiter(), authHandler.RegisterCustomer)
	auth.Post("/login/employee", middleware.AuthRateLimiter(), authHandler.LoginEmployee)
	auth.Post("/login/customer", middleware.AuthRateLimiter(), authHandler.LoginCustomer)
	auth.Post("/logout", authHandler.Logout)
	auth.Get("/me", middleware.AuthMiddleware(cfg), authHandler.Me)

	// Payment routes (all behind the access guard)
	payments := apiV1.Group("/payments", middleware.AuthMiddleware(cfg))
	payments.Post("/", middleware.CustomerOnly(), paymentHandler.Create)
	payments.Get("/my", middleware.CustomerOnly(), paymentHandler.ListMine)
	payments.Get("/", middleware.EmployeeOnly(), paymentHandler.List)
	payments.Patch("/:id/status", middleware.EmployeeOnly(), paymentHandler.UpdateStatus)
	payments.Post("/submit-swift", middleware.EmployeeOnly(), paymentHandler.SubmitToSwift)
	payments.Delete("/", middleware.EmployeeOnly(), paymentHandler.ClearAll)

	// Dashboard (employees only)
	apiV1.Get("/dashboard", middleware.AuthMiddleware(cfg), middleware.EmployeeOnly(), dashboardHandler.Get)
}
