package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-stockflow/internal/config"
	"go-stockflow/internal/handler"
	"go-stockflow/internal/logger"
	"go-stockflow/internal/middleware"
	"go-stockflow/internal/model"
	"go-stockflow/internal/repository"
	"go-stockflow/internal/service"
	"go-stockflow/pkg/database"
	"go-stockflow/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}
	cfg := config.Load()

	zlog, err := logger.New(cfg.Server.Env)
	if err != nil {
		log.Fatal("Failed to build logger: ", err)
	}
	defer zlog.Sync()

	if cfg.JWT.Secret != "" {
		jwt.SetSecret(cfg.JWT.Secret)
	}

	// 2. Setup Database
	db := database.ConnectDB(cfg.Database)
	db.AutoMigrate(&model.User{}, &model.Product{}, &model.Request{}, &model.Notification{})

	// 3. Dependency Injection (Wiring Layers)
	userRepo := repository.NewUserRepo(db)
	productRepo := repository.NewProductRepo(db)
	requestRepo := repository.NewRequestRepo(db)
	notificationRepo := repository.NewNotificationRepo(db)

	// 4. Seed default admin user
	seedAdmin(userRepo, zlog)

	notifier := service.NewNotifier(notificationRepo, userRepo, zlog)

	authService := service.NewAuthService(userRepo, time.Duration(cfg.JWT.ExpiryHours)*time.Hour)
	productService := service.NewProductService(productRepo)
	requestService := service.NewRequestService(requestRepo, productRepo, notifier)
	notificationService := service.NewNotificationService(notificationRepo)

	authHandler := handler.NewAuthHandler(authService)
	productHandler := handler.NewProductHandler(productService)
	requestHandler := handler.NewRequestHandler(requestService)
	notificationHandler := handler.NewNotificationHandler(notificationService)

	// 5. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Stockflow v1.0",
	})

	// Middleware
	app.Use(fiberlogger.New()) // Logging request
	app.Use(recover.New())     // Panic recovery
	app.Use(cors.New())        // CORS

	// 6. Routes
	api := app.Group("/api/v1")

	// ============ PUBLIC ROUTES ============
	auth := api.Group("/auth")
	auth.Post("/login", authHandler.Login)
	auth.Post("/register", authHandler.Register)
	auth.Post("/validate-token", authHandler.ValidateToken)

	// ============ PROTECTED ROUTES ============
	// All routes below require authentication; authorization is decided in
	// the service layer against the acting user's role and ownership
	protected := api.Group("", middleware.RequireAuth(userRepo))

	// Product Routes
	protected.Get("/products", productHandler.GetProducts)
	protected.Get("/products/:id", productHandler.GetProduct)
	protected.Post("/products", productHandler.CreateProduct)
	protected.Put("/products/:id", productHandler.UpdateProduct)
	protected.Delete("/products/:id", productHandler.DeactivateProduct)

	// Request Routes
	protected.Get("/requests", requestHandler.GetRequests)
	protected.Get("/requests/:id", requestHandler.GetRequest)
	protected.Post("/requests", requestHandler.CreateRequest)
	protected.Put("/requests/:id", requestHandler.UpdateRequest)
	protected.Delete("/requests/:id", requestHandler.DeleteRequest)
	protected.Post("/requests/:id/cancel", requestHandler.CancelRequest)
	protected.Post("/requests/:id/approve", requestHandler.ApproveRequest)
	protected.Post("/requests/:id/reject", requestHandler.RejectRequest)

	// Notification Routes
	protected.Get("/notifications", notificationHandler.GetNotifications)
	protected.Get("/notifications/unread-count", notificationHandler.GetUnreadCount)
	protected.Put("/notifications/read-all", notificationHandler.MarkAllAsRead)
	protected.Put("/notifications/:id/read", notificationHandler.MarkAsRead)
	protected.Delete("/notifications/:id", notificationHandler.DeleteNotification)

	// 7. Graceful Shutdown
	go func() {
		if err := app.Listen(":" + cfg.Server.Port); err != nil {
			log.Panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zlog.Info("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	zlog.Info("Server exited")
}

// seedAdmin creates the default admin user if no account exists for it yet
func seedAdmin(userRepo repository.UserRepository, zlog *zap.Logger) {
	const adminEmail = "admin@example.com"

	if _, err := userRepo.FindByEmail(adminEmail); err == nil {
		return
	}

	admin := &model.User{
		Email:    adminEmail,
		Name:     "Administrator",
		Role:     model.RoleAdmin,
		IsActive: true,
	}
	if err := admin.SetPassword("admin123"); err != nil {
		zlog.Warn("Failed to hash admin password", zap.Error(err))
		return
	}

	if err := userRepo.Create(admin); err != nil {
		zlog.Warn("Failed to create admin user", zap.Error(err))
		return
	}
	zlog.Info("Admin user created", zap.String("email", adminEmail))
}
