package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"swiftpay/internal/adapters/http/middleware"
	"swiftpay/internal/adapters/http/routes"
	"swiftpay/internal/adapters/persistence/models"
	"swiftpay/internal/adapters/persistence/repositories"
	"swiftpay/internal/config"
	"swiftpay/internal/core/services"

	"github.com/gofiber/fiber/v2"

	_ "swiftpay/docs" // Swagger docs
)

// @title SwiftPay Payments Portal API
// @version 1.0
// @description International payments portal: registration, login and the payment verification lifecycle.

// @contact.name API Support
// @contact.email support@swiftpay.example.com

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer config.CloseDatabase()

	// Auto migrate (creates tables if not exist)
	if err := models.AutoMigrate(db); err != nil {
		log.Fatalf("❌ Failed to auto migrate: %v", err)
	}
	log.Println("✅ Database migration completed")

	// Seed bootstrap employee
	if err := config.NewSeeder(db, cfg).Run(); err != nil {
		log.Printf("⚠️ Warning: Failed to seed database: %v", err)
	}

	// Daily operations report (08:30)
	dashboardService := services.NewDashboardService(db,
		repositories.NewPaymentRepository(db),
		repositories.NewCounterRepository(db),
	)
	reportCron := services.NewReportCronService(dashboardService)
	reportCron.Start()
	defer reportCron.Stop()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "SwiftPay Payments Portal API",
		ErrorHandler: middleware.CustomErrorHandler,
	})

	// Setup middlewares
	middleware.Setup(app, cfg)

	// Setup routes (pass db and cfg for dependency injection)
	routes.Setup(app, db, cfg)

	// Graceful shutdown
	go gracefulShutdown(app)

	// Start server
	log.Printf("🚀 Server starting on port %s [MODE: %s]", cfg.Port, cfg.AppMode)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// gracefulShutdown waits for SIGINT/SIGTERM and drains the server
func gracefulShutdown(app *fiber.App) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("❌ Server shutdown error: %v", err)
	}
}
