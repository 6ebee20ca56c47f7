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

	"siparisqr/cmd"
	httpadapter "siparisqr/internal/adapters/in/http"
	"siparisqr/internal/adapters/out/postgres"
	"siparisqr/internal/core/application/usecases/commands"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func main() {
	configs, err := cmd.LoadConfig(".env")
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	logger, err := configs.NewLogger()
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var gormDB *gorm.DB
	var rdb redis.UniversalClient
	if configs.StorageDriver == cmd.StorageDriverPostgres {
		gormDB = mustOpenDatabase(configs, logger)
		rdb = openRedis(ctx, configs, logger)
		if rdb != nil {
			defer func() { _ = rdb.Close() }()
		}
	}

	app, err := cmd.NewCompositionRoot(configs, logger, gormDB, rdb)
	if err != nil {
		logger.Fatal("composition root", zap.Error(err))
	}

	if configs.SeedDemo {
		seed := app.CreateSeedDemoCommandHandler()
		result, err := seed.Handle(ctx, commands.NewSeedDemoCommand())
		if err != nil {
			logger.Fatal("seed demo data", zap.Error(err))
		}
		if result.Created {
			logger.Info("Demo restaurant created", zap.String("tenantId", result.TenantID.String()))
		}
	}

	jobManager, err := app.CreateJobManager()
	if err != nil {
		logger.Fatal("jobs", zap.Error(err))
	}
	if err := jobManager.StartAll(); err != nil {
		logger.Fatal("start jobs", zap.Error(err))
	}
	defer jobManager.StopAll()

	startWebServer(ctx, app, configs, logger)
}

func mustOpenDatabase(configs cmd.Config, logger *zap.Logger) *gorm.DB {
	gormDB, err := gorm.Open(gormpostgres.Open(configs.PostgresDSN()), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		logger.Fatal("database", zap.Error(err))
	}
	if err := postgres.Migrate(gormDB); err != nil {
		logger.Fatal("migrate", zap.Error(err))
	}
	return gormDB
}

// openRedis returns nil when REDIS_ADDR is unset or the server does not answer;
// tenant lookups then go straight to the database.
func openRedis(ctx context.Context, configs cmd.Config, logger *zap.Logger) redis.UniversalClient {
	if configs.RedisAddr == "" {
		return nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     configs.RedisAddr,
		Password: configs.RedisPassword,
		DB:       configs.RedisDB,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		logger.Warn("Redis unavailable, tenant cache disabled", zap.String("addr", configs.RedisAddr), zap.Error(err))
		_ = rdb.Close()
		return nil
	}
	logger.Info("Redis client connected", zap.String("addr", configs.RedisAddr))
	return rdb
}

func startWebServer(ctx context.Context, app *cmd.CompositionRoot, configs cmd.Config, logger *zap.Logger) {
	handlers, err := app.CreateHTTPHandlers()
	if err != nil {
		logger.Fatal("handlers", zap.Error(err))
	}
	router, err := app.CreateTenantRouter()
	if err != nil {
		logger.Fatal("tenant router", zap.Error(err))
	}
	contract, err := httpadapter.LoadOpenAPI(ctx)
	if err != nil {
		logger.Fatal("openapi", zap.Error(err))
	}

	e := httpadapter.NewEcho(httpadapter.EchoConfig{
		Router:       router,
		OpenAPI:      contract,
		Validate:     configs.OpenAPIValidation,
		Logger:       logger.With(zap.String("component", "http")),
		EchoLogLevel: configs.EchoLogLevel(),
	}, httpadapter.NewServer(handlers))

	go func() {
		logger.Info("Server listening",
			zap.String("port", configs.HTTPPort),
			zap.String("rootDomain", configs.RootDomain),
			zap.String("storage", configs.StorageDriver))
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown", zap.Error(err))
	}
	logger.Info("Server stopped")
}
