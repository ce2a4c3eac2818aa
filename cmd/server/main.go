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

	"reward-ops.backend/internal/config"
	"reward-ops.backend/internal/infrastructure/jobs"
	"reward-ops.backend/internal/infrastructure/otp"
	"reward-ops.backend/internal/infrastructure/repositories"
	"reward-ops.backend/internal/infrastructure/storage"
	"reward-ops.backend/internal/interfaces/http/handlers"
	"reward-ops.backend/internal/interfaces/http/middleware"
	"reward-ops.backend/internal/usecases"
	"reward-ops.backend/pkg/jwt"
	"reward-ops.backend/pkg/logger"
	"reward-ops.backend/pkg/redis"
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
			// Duplicate-key violations must surface as gorm.ErrDuplicatedKey
			// so repositories can map them to conflicts.
			TranslateError: true,
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
	// Load .env file
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := loadCfg()

	// Initialize Logger
	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	// Initialize Redis
	if err := initRedis(cfg.Redis.URL, cfg.Redis.Password); err != nil {
		logger.Error(context.Background(), "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	logger.Info(context.Background(), "Redis initialized")

	// Set Gin mode
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database using GORM
	dsn := cfg.Database.URL()
	db, err := openDB(dsn)
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
	}

	// Initialize JWT service
	jwtService := jwt.NewJWTService(
		cfg.JWT.Secret,
		cfg.JWT.AccessExpiry,
		cfg.JWT.RefreshExpiry,
	)

	// Initialize OTP provider
	provider, err := otp.NewProvider(otp.Config{
		Driver:  cfg.Otp.Driver,
		BaseURL: cfg.Otp.BaseURL,
		APIKey:  cfg.Otp.APIKey,
		Channel: cfg.Otp.Channel,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize otp provider: %w", err)
	}

	// Initialize media storage
	media, err := storage.NewLocalStorage(cfg.Storage.LocalDir, cfg.Storage.BaseURL)
	if err != nil {
		return fmt.Errorf("failed to initialize media storage: %w", err)
	}

	// Initialize repositories
	accountRepo := repositories.NewAccountRepository(db)
	shopRepo := repositories.NewShopRepository(db)
	profileRepo := repositories.NewProfileRepository(db)
	approvalRepo := repositories.NewApprovalRepository(db)
	geoRepo := repositories.NewGeographyRepository(db)
	otpRepo := repositories.NewOtpChallengeRepository()
	uow := repositories.NewUnitOfWork(db)

	// Start background jobs
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	notifier := jobs.NewWelcomeNotifier(provider)
	go notifier.Start(ctx)

	// Initialize usecases
	codeGen := usecases.NewShopCodeGenerator(shopRepo)
	intakeUsecase := usecases.NewRegistrationIntakeUsecase(accountRepo, shopRepo, geoRepo, otpRepo, provider, media)
	commitUsecase := usecases.NewRegistrationCommitUsecase(otpRepo, provider, accountRepo, shopRepo, profileRepo, uow)
	approvalUsecase := usecases.NewApprovalUsecase(accountRepo, shopRepo, approvalRepo, uow, codeGen, notifier)
	loginUsecase := usecases.NewLoginUsecase(accountRepo, otpRepo, provider, jwtService)

	// Initialize handlers
	registrationHandler := handlers.NewRegistrationHandler(intakeUsecase, commitUsecase)
	authHandler := handlers.NewAuthHandler(loginUsecase)
	approvalHandler := handlers.NewApprovalHandler(approvalUsecase)

	authMiddleware := middleware.AuthMiddleware(jwtService)

	// Initialize router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware())

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	registerAPIV1Routes(r, routeDeps{
		registrationHandler: registrationHandler,
		authHandler:         authHandler,
		approvalHandler:     approvalHandler,
		authMiddleware:      authMiddleware,
	})

	// Graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("🛑 Shutting down server...")
		notifier.Stop()
		cancel()
	}()

	// Start server
	log.Printf("🚀 Reward-Ops Backend starting on port %s", cfg.Server.Port)
	log.Printf("📚 API: http://localhost:%s/api/v1", cfg.Server.Port)
	log.Printf("❤️ Health: http://localhost:%s/health", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
