package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/swapnilsborase/blooddonor-service/config"
	deliveryHttp "github.com/swapnilsborase/blooddonor-service/internal/delivery/http"
	"github.com/swapnilsborase/blooddonor-service/internal/delivery/http/handler"
	"github.com/swapnilsborase/blooddonor-service/internal/delivery/http/middleware"
	"github.com/swapnilsborase/blooddonor-service/internal/infrastructure/cache"
	"github.com/swapnilsborase/blooddonor-service/internal/infrastructure/database"
	"github.com/swapnilsborase/blooddonor-service/internal/provider/geocode"
	"github.com/swapnilsborase/blooddonor-service/internal/provider/hospitaldir"
	"github.com/swapnilsborase/blooddonor-service/internal/provider/profilesink"
	"github.com/swapnilsborase/blooddonor-service/internal/repository"
	"github.com/swapnilsborase/blooddonor-service/internal/usecase"
	"github.com/swapnilsborase/blooddonor-service/pkg/jwt"
	"github.com/swapnilsborase/blooddonor-service/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	logrus.Info("Database connected successfully")

	// Apply schema migrations
	if err := database.RunMigrations(db); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	logrus.Info("Migrations applied successfully")

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	logrus.Info("Redis connected successfully")

	// Initialize all layers
	server := initializeServer(cfg, db, redisClient)
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *http.Server {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize repositories
	kvStore := repository.NewPostgresKVStore(db)
	accountRepo := repository.NewAccountRepository(kvStore)
	appointmentRepo := repository.NewAppointmentRepository()

	// Initialize external providers
	directoryClient := hospitaldir.NewClient(cfg.HospitalDir)
	geocodeClient := geocode.NewClient(cfg.Geocode)
	sinkClient := profilesink.NewClient(cfg.ProfileSink)

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(log, accountRepo, jwtService, redisClient)
	profileUsecase := usecase.NewProfileUsecase(log, accountRepo, sinkClient, nil)
	hospitalSearchUsecase := usecase.NewHospitalSearchUsecase(log, directoryClient, geocodeClient)
	appointmentUsecase := usecase.NewAppointmentUsecase(db, log, appointmentRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator, jwtService)
	profileHandler := handler.NewProfileHandler(profileUsecase, customValidator)
	hospitalHandler := handler.NewHospitalHandler(hospitalSearchUsecase)
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase, customValidator)
	storageHandler := handler.NewStorageHandler(kvStore)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, redisClient)
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(authHandler, profileHandler, hospitalHandler, appointmentHandler, storageHandler, authMiddleware, corsMiddleware)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
