package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Asahu22/E-commerce/controllers"
	"github.com/Asahu22/E-commerce/database"
	"github.com/Asahu22/E-commerce/middleware"
	"github.com/Asahu22/E-commerce/repository"
	"github.com/Asahu22/E-commerce/routes"
	"github.com/Asahu22/E-commerce/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
)

func main() {
	// Load .env file (optional, falls back to system env)
	_ = godotenv.Load()

	cfg, err := LoadConfig()
	if err != nil {
		panic("failed to load configuration: " + err.Error())
	}

	// Initialize structured logger
	var logger *zap.Logger
	if cfg.Env == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	// --- 1. Startup-acquired resources ---

	client, db, err := database.Connect(cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		zap.L().Fatal("Failed to connect to MongoDB", zap.Error(err))
	}
	zap.L().Info("MongoDB connected successfully", zap.String("database", cfg.MongoDB))

	// Uploads directory backs legacy url-mode images only; current
	// uploads are stored inline, so a failure here is not fatal.
	if err := os.MkdirAll(cfg.UploadsDir, 0o755); err != nil {
		zap.L().Warn("Uploads directory not created", zap.Error(err))
	}

	// --- 2. Dependency injection ---

	productRepo := repository.NewProductRepository(db)
	if err := productRepo.EnsureIndexes(context.Background()); err != nil {
		zap.L().Warn("Failed to ensure product indexes", zap.Error(err))
	}

	productsCreated := promauto.NewCounter(prometheus.CounterOpts{
		Name: "catalog_products_created_total",
		Help: "Products added to the catalog.",
	})
	productsDeleted := promauto.NewCounter(prometheus.CounterOpts{
		Name: "catalog_products_deleted_total",
		Help: "Products removed from the catalog.",
	})

	imageService := services.NewImageService()
	productService := services.NewProductService(productRepo, imageService, cfg.UploadsDir, productsCreated, productsDeleted)
	authService := services.NewAuthService(cfg.AdminUsername, cfg.AdminPassword, cfg.JWTSecret)

	productController := controllers.NewProductController(productService)
	authController := controllers.NewAuthController(authService)
	pagesController := controllers.NewPagesController(cfg.FrontendDir)

	// --- 3. HTTP server & middleware ---

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Authorization"},
		MaxAge:          12 * time.Hour,
	}))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.Metrics())

	// Uploads are buffered in memory per request, capped by the image
	// size ceiling plus form overhead.
	r.MaxMultipartMemory = 8 << 20

	routes.RegisterRoutes(r, authController, productController, pagesController,
		middleware.RequireAdmin([]byte(cfg.JWTSecret)), cfg.UploadsDir, cfg.FrontendDir)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		zap.L().Info("Server starting", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zap.L().Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// --- 4. Graceful shutdown ---

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zap.L().Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zap.L().Fatal("Server forced to shutdown", zap.Error(err))
	}

	if err := database.Close(client); err != nil {
		zap.L().Error("Failed to close MongoDB connection", zap.Error(err))
	}

	zap.L().Info("Server stopped gracefully")
}
