package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"kitchen/cmd"
	httpin "kitchen/internal/adapters/in/http"
	"kitchen/internal/adapters/out/postgres"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configs := getConfigs()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: configs.SlogLevel()}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gormDB := openDatabase(ctx, configs, logger)

	app, err := cmd.NewCompositionRoot(ctx, configs, gormDB, logger)
	if err != nil {
		log.Fatalf("Failed to build application: %v", err)
	}
	defer func() {
		if err := app.Close(); err != nil {
			logger.Error("Failed to release connections", "error", err)
		}
	}()

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(ctx, app, configs, logger)
}

func getConfigs() cmd.Config {
	// A missing .env is fine: the environment may be set by the container.
	_ = godotenv.Load(".env")

	config := cmd.Config{
		HTTPPort:               os.Getenv("HTTP_PORT"),
		DBHost:                 os.Getenv("DB_HOST"),
		DBPort:                 os.Getenv("DB_PORT"),
		DBUser:                 os.Getenv("DB_USER"),
		DBPassword:             os.Getenv("DB_PASSWORD"),
		DBName:                 os.Getenv("DB_NAME"),
		DBSslMode:              os.Getenv("DB_SSLMODE"),
		KafkaHost:              os.Getenv("KAFKA_HOST"),
		KafkaOrderChangedTopic: os.Getenv("KAFKA_ORDER_CHANGED_TOPIC"),
		RedisAddr:              os.Getenv("REDIS_ADDR"),
		StatusPolicy:           os.Getenv("STATUS_POLICY"),
		AllowDirectCompletion:  os.Getenv("ALLOW_DIRECT_COMPLETION"),
		SeedDemoData:           os.Getenv("SEED_DEMO_DATA"),
		CORSAllowedOrigins:     os.Getenv("CORS_ALLOWED_ORIGINS"),
		LogLevel:               os.Getenv("LOG_LEVEL"),
	}
	return config
}

func openDatabase(ctx context.Context, configs cmd.Config, logger *slog.Logger) *gorm.DB {
	settings := postgres.ConnectionSettings{
		Host:     configs.DBHost,
		Port:     configs.DBPort,
		User:     configs.DBUser,
		Password: configs.DBPassword,
		DBName:   configs.DBName,
		SSLMode:  configs.DBSslMode,
	}

	gormDB, err := postgres.Open(settings.DSN())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := postgres.Migrate(gormDB); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	seed, err := configs.SeedDemoDataEnabled()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	if seed {
		inserted, err := postgres.SeedDemoOrders(ctx, gormDB, time.Now())
		if err != nil {
			log.Fatalf("Failed to seed demo orders: %v", err)
		}
		logger.InfoContext(ctx, "Demo orders seeded", "count", inserted)
	}

	return gormDB
}

func startWebServer(ctx context.Context, app *cmd.CompositionRoot, configs cmd.Config, logger *slog.Logger) {
	e, err := httpin.NewRouter(app.CreateHTTPServer(), httpin.RouterOptions{
		Logger:         logger,
		AllowedOrigins: configs.AllowedOrigins(),
		Metrics:        httpin.NewMetrics("api"),
	})
	if err != nil {
		log.Fatalf("Failed to build router: %v", err)
	}

	go func() {
		logger.InfoContext(ctx, "HTTP server listening", "address", configs.HTTPAddress())
		if err := e.Start(configs.HTTPAddress()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("HTTP server failed: %v", err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown failed", "error", err)
	}
}
