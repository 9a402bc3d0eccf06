package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"offer-bazar.backend/internal/config"
	"offer-bazar.backend/internal/infrastructure/gateway/sslcommerz"
	"offer-bazar.backend/internal/infrastructure/jobs"
	"offer-bazar.backend/internal/infrastructure/models"
	"offer-bazar.backend/internal/infrastructure/repositories"
	"offer-bazar.backend/internal/interfaces/http/handlers"
	"offer-bazar.backend/internal/interfaces/http/middleware"
	"offer-bazar.backend/internal/usecases"
	"offer-bazar.backend/pkg/jwt"
	"offer-bazar.backend/pkg/logger"
	"offer-bazar.backend/pkg/redis"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
	}
	runServer = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB  = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := loadCfg()

	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	if err := initRedis(cfg.Redis.URL, cfg.Redis.Password); err != nil {
		logger.Error(context.Background(), "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	logger.Info(context.Background(), "Redis initialized")

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := openDB(cfg.Database.URL())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		log.Printf("⚠️ Database not available: %v (endpoints will return errors)", err)
	} else {
		log.Println("✅ Connected to PostgreSQL via GORM")
		if err := db.AutoMigrate(
			&models.User{},
			&models.Merchant{},
			&models.Payment{},
			&models.Commission{},
			&models.Package{},
			&models.Store{},
			&models.Offer{},
			&models.Notification{},
		); err != nil {
			return fmt.Errorf("failed to migrate schema: %w", err)
		}
	}

	jwtService := jwt.NewJWTService(
		cfg.JWT.Secret,
		cfg.JWT.AccessExpiry,
		cfg.JWT.RefreshExpiry,
	)

	// Repositories
	userRepo := repositories.NewUserRepository(db)
	merchantRepo := repositories.NewMerchantRepository(db)
	paymentRepo := repositories.NewPaymentRepository(db)
	commissionRepo := repositories.NewCommissionRepository(db)
	packageRepo := repositories.NewPackageRepository(db)
	storeRepo := repositories.NewStoreRepository(db)
	offerRepo := repositories.NewOfferRepository(db)
	notificationRepo := repositories.NewNotificationRepository(db)
	uow := repositories.NewUnitOfWork(db)

	// Payment gateway client
	gatewayClient := sslcommerz.NewClient(cfg.Gateway.StoreID, cfg.Gateway.StorePassword, cfg.Gateway.Sandbox)

	// Usecases
	authUsecase := usecases.NewAuthUsecase(merchantRepo, userRepo, jwtService)
	paymentUsecase := usecases.NewPaymentUsecase(paymentRepo, merchantRepo, commissionRepo, packageRepo, notificationRepo, uow, gatewayClient, cfg.Gateway.CallbackBase)
	gatewayUsecase := usecases.NewGatewayUsecase(paymentUsecase, paymentRepo, uow, gatewayClient)
	merchantUsecase := usecases.NewMerchantUsecase(merchantRepo, storeRepo, packageRepo, paymentRepo, notificationRepo, uow)
	packageUsecase := usecases.NewPackageUsecase(packageRepo)
	storeUsecase := usecases.NewStoreUsecase(storeRepo, merchantRepo, notificationRepo)
	offerUsecase := usecases.NewOfferUsecase(offerRepo, storeRepo, merchantRepo, notificationRepo)
	notificationUsecase := usecases.NewNotificationUsecase(notificationRepo, merchantRepo)

	// Seed the configured admin account
	if err := authUsecase.SeedAdmin(
		context.Background(),
		os.Getenv("ADMIN_NAME"),
		os.Getenv("ADMIN_EMAIL"),
		os.Getenv("ADMIN_PASSWORD"),
	); err != nil {
		log.Printf("⚠️ Failed to seed admin account: %v", err)
	}

	// Handlers
	authHandler := handlers.NewAuthHandler(authUsecase)
	paymentHandler := handlers.NewPaymentHandler(paymentUsecase)
	gatewayHandler := handlers.NewGatewayHandler(gatewayUsecase)
	merchantHandler := handlers.NewMerchantHandler(merchantUsecase)
	packageHandler := handlers.NewPackageHandler(packageUsecase)
	storeHandler := handlers.NewStoreHandler(storeUsecase)
	offerHandler := handlers.NewOfferHandler(offerUsecase)
	notificationHandler := handlers.NewNotificationHandler(notificationUsecase)

	// Background jobs
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	expiryJob := jobs.NewPackageExpiryJob(merchantUsecase, cfg.Jobs.PackageExpiryInterval)
	go expiryJob.Start(ctx)

	// Router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware())

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	registerMetricsRoute(r)
	registerAPIV1Routes(r, routeDeps{
		authHandler:         authHandler,
		paymentHandler:      paymentHandler,
		gatewayHandler:      gatewayHandler,
		merchantHandler:     merchantHandler,
		packageHandler:      packageHandler,
		storeHandler:        storeHandler,
		offerHandler:        offerHandler,
		notificationHandler: notificationHandler,
		authMiddleware:      middleware.AuthMiddleware(jwtService),
	})

	// Graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("🛑 Shutting down server...")
		expiryJob.Stop()
		cancel()
	}()

	log.Printf("🚀 Offer Bazar Backend starting on port %s", cfg.Server.Port)
	log.Printf("📚 API: http://localhost:%s/api/v1", cfg.Server.Port)
	log.Printf("❤️ Health: http://localhost:%s/health", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
