package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"armory/internal/authz"
	"armory/internal/cache"
	"armory/internal/config"
	"armory/internal/database"
	"armory/internal/handlers"
	"armory/internal/logger"
	"armory/internal/middleware"
	"armory/internal/services"
	"armory/internal/validator"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "armory/internal/docs" // Import swagger docs
)

// @title           Armory API
// @version         1.0
// @description     Armory tracks military assets across bases: purchases, transfers, assignments and expenditures recorded in an append-only ledger.

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

const shutdownTimeout = 10 * time.Second

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if appConfig.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	validator.Register()

	// Create database manager
	dbManager, err := database.NewManager(database.NewConfig(appConfig))
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	defer func() {
		if err := dbManager.Close(); err != nil {
			log.Warnf("database close error: %v", err)
		}
	}()

	// Run migrations
	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	store := cache.NewStore(appConfig)
	defer func() {
		if err := store.Close(); err != nil {
			log.Warnf("cache close error: %v", err)
		}
	}()
	readCache := services.ReadCache{Store: store, TTL: appConfig.CacheTTL}

	// Initialize services
	db := dbManager.DB()
	userService := services.NewUserService(db)
	baseService := services.NewBaseService(db, readCache)
	assetService := services.NewAssetService(db, readCache)
	transactionService := services.NewTransactionService(db)
	statsService := services.NewStatsService(db, readCache)
	snapshotService := services.NewSnapshotService(db)
	auditService := services.NewAuditService(db)

	if appConfig.SeedDemoData {
		seed := services.SeedServices{Users: userService, Bases: baseService, Assets: assetService}
		if err := services.SeedDemoData(context.Background(), seed, appConfig.SeedAdminPassword); err != nil {
			return fmt.Errorf("failed to seed demo data: %w", err)
		}
	}

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService, auditService)
	userHandler := handlers.NewUserHandler(userService, auditService)
	baseHandler := handlers.NewBaseHandler(baseService, auditService)
	assetHandler := handlers.NewAssetHandler(assetService, auditService)
	transactionHandler := handlers.NewTransactionHandler(transactionService)
	dashboardHandler := handlers.NewDashboardHandler(statsService)
	snapshotHandler := handlers.NewSnapshotHandler(snapshotService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-API-Key")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	// Public routes
	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.RefreshToken)

	// Pipeline routes
	pipeline := v1.Group("/pipeline")
	pipeline.Use(middleware.PipelineAuthMiddleware(appConfig.PipelineAPIKey))
	pipeline.POST("/snapshots", snapshotHandler.ComputeSnapshots)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	protected.POST("/auth/logout", authHandler.Logout)
	protected.GET("/profile", authHandler.GetProfile)

	// Base routes
	bases := protected.Group("/bases")
	bases.GET("", middleware.RequirePermission(authz.BaseRead), baseHandler.ListBases)
	bases.POST("", middleware.RequirePermission(authz.BaseCreate), baseHandler.CreateBase)
	bases.GET("/:id", middleware.RequirePermission(authz.BaseRead), baseHandler.GetBase)
	bases.PATCH("/:id", middleware.RequirePermission(authz.BaseUpdate), baseHandler.UpdateBase)
	bases.GET("/:id/snapshots", middleware.RequirePermission(authz.SnapshotRead), snapshotHandler.GetSnapshots)

	// Asset routes
	assets := protected.Group("/assets")
	assets.GET("", middleware.RequirePermission(authz.AssetRead), assetHandler.ListAssets)
	assets.POST("", middleware.RequirePermission(authz.AssetPurchase), assetHandler.PurchaseAsset)
	assets.GET("/:id", middleware.RequirePermission(authz.AssetRead), assetHandler.GetAsset)
	assets.PUT("/:id", middleware.RequirePermission(authz.AssetUpdate), assetHandler.UpdateAsset)
	assets.POST("/:id/transfer", middleware.RequirePermission(authz.AssetTransfer), assetHandler.TransferAsset)
	assets.POST("/:id/assign", middleware.RequirePermission(authz.AssetAssign), assetHandler.AssignAsset)
	assets.POST("/:id/return", middleware.RequirePermission(authz.AssetReturn), assetHandler.ReturnAsset)
	assets.POST("/:id/expend", middleware.RequirePermission(authz.AssetExpend), assetHandler.ExpendAsset)

	// Ledger routes
	transactions := protected.Group("/transactions")
	transactions.Use(middleware.RequirePermission(authz.TransactionRead))
	transactions.GET("", transactionHandler.ListTransactions)
	transactions.GET("/:id", transactionHandler.GetTransactionByID)

	protected.GET("/dashboard/stats", middleware.RequirePermission(authz.DashboardRead), dashboardHandler.GetStats)

	// Admin routes
	admin := protected.Group("/admin")
	admin.GET("/users", middleware.RequirePermission(authz.UserRead), userHandler.ListUsers)
	admin.POST("/users", middleware.RequirePermission(authz.UserCreate), userHandler.CreateUser)

	srv := &http.Server{
		Addr:              ":" + appConfig.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		log.Infof("Starting Armory backend server on port %s", appConfig.Port)
		log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	log.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	return nil
}
