// cmd/api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"

	"github.com/ammerola/shoplist-be/internal/adapters/db"
	"github.com/ammerola/shoplist-be/internal/adapters/openfoodfacts"
	"github.com/ammerola/shoplist-be/internal/adapters/queue"
	redis_a "github.com/ammerola/shoplist-be/internal/adapters/redis_adapter"
	"github.com/ammerola/shoplist-be/internal/adapters/storage"
	"github.com/ammerola/shoplist-be/internal/core/ports"
	"github.com/ammerola/shoplist-be/internal/core/services"
	"github.com/ammerola/shoplist-be/internal/handlers"
	"github.com/ammerola/shoplist-be/internal/handlers/middleware"
	"github.com/ammerola/shoplist-be/internal/pkg/config"
	"github.com/ammerola/shoplist-be/internal/pkg/logger"
)

// Build information injected at compile time
var (
	Version   = "dev"
	BuildTime = "unknown"
	GoVersion = "unknown"
)

func main() {
	slogger := logger.SetupLogger("debug", "json")

	slogger.Info("starting shopping list backend",
		slog.String("version", Version),
		slog.String("build_time", BuildTime),
		slog.String("go_version", GoVersion),
	)

	cfg, err := config.Load(slogger)
	if err != nil {
		slogger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if Version != "dev" {
		cfg.App.Version = Version
	}

	// Reconfigure logger with loaded settings
	slogger = logger.SetupLogger(cfg.App.LogLevel, cfg.App.LogFormat)
	slogger.Info("configuration loaded",
		slog.String("environment", cfg.App.Environment),
		slog.String("log_level", cfg.App.LogLevel),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Migrations run before the repositories touch the schema
	if !cfg.IsProduction() {
		if err := runMigrations(ctx, cfg, slogger); err != nil {
			slogger.Error("failed to run migrations", slog.String("error", err.Error()))
		}
	}

	deps, err := initializeDependencies(ctx, cfg, slogger)
	if err != nil {
		slogger.Error("failed to initialize dependencies", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer deps.cleanup()

	// Evicts scan sessions nobody polled for a while
	go deps.scanService.Run(ctx)

	server := setupHTTPServer(cfg, deps, slogger)

	serverErrors := make(chan error, 1)
	go func() {
		slogger.Info("starting HTTP server",
			slog.String("address", cfg.GetServerAddress()),
			slog.Bool("tls", cfg.Server.TLSEnabled),
		)

		if cfg.Server.TLSEnabled {
			serverErrors <- server.ListenAndServeTLS(cfg.Server.TLSCertFile, cfg.Server.TLSKeyFile)
		} else {
			serverErrors <- server.ListenAndServe()
		}
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slogger.Error("server error", slog.String("error", err.Error()))
		}
	case sig := <-shutdown:
		slogger.Info("shutdown signal received",
			slog.String("signal", sig.String()),
		)

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.GracefulTimeout)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			slogger.Error("failed to gracefully shutdown server", slog.String("error", err.Error()))
			server.Close()
		}

		slogger.Info("server shutdown complete")
	}
}

// dependencies holds all application dependencies
type dependencies struct {
	database       ports.Database
	redisClient    *redis.Client
	asynqClient    *asynq.Client
	asynqInspector *asynq.Inspector
	scanService    *services.ScanService
	handlers       *handlers.Handlers
}

func (d *dependencies) cleanup() {
	if d.asynqInspector != nil {
		d.asynqInspector.Close()
	}
	if d.asynqClient != nil {
		d.asynqClient.Close()
	}
	if d.redisClient != nil {
		d.redisClient.Close()
	}
	if d.database != nil {
		d.database.Close()
	}
}

func initializeDependencies(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*dependencies, error) {
	deps := &dependencies{}

	logger.Info("connecting to database",
		slog.String("host", cfg.Database.Host),
		slog.String("database", cfg.Database.Name),
	)

	database, err := db.NewDatabase(ctx, &db.Config{
		Host:               cfg.Database.Host,
		Port:               cfg.Database.Port,
		User:               cfg.Database.User,
		Password:           cfg.Database.Password,
		Database:           cfg.Database.Name,
		SSLMode:            cfg.Database.SSLMode,
		MaxConnections:     cfg.Database.MaxConnections,
		MinConnections:     cfg.Database.MinConnections,
		MaxConnLifetime:    cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:    cfg.Database.MaxConnIdleTime,
		HealthCheckPeriod:  cfg.Database.HealthCheckPeriod,
		ConnectTimeout:     cfg.Database.ConnectTimeout,
		EnableQueryLogging: cfg.Database.EnableQueryLogging,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	deps.database = database

	logger.Info("connecting to Redis",
		slog.String("host", cfg.Redis.Host),
		slog.String("port", cfg.Redis.Port),
	)

	redisClient := redis.NewClient(&redis.Options{
		Addr:            cfg.GetRedisAddress(),
		Password:        cfg.Redis.Password,
		DB:              cfg.Redis.DB,
		MaxRetries:      cfg.Redis.MaxRetries,
		MinRetryBackoff: cfg.Redis.MinRetryBackoff,
		MaxRetryBackoff: cfg.Redis.MaxRetryBackoff,
		DialTimeout:     cfg.Redis.DialTimeout,
		ReadTimeout:     cfg.Redis.ReadTimeout,
		WriteTimeout:    cfg.Redis.WriteTimeout,
		PoolSize:        cfg.Redis.PoolSize,
		MinIdleConns:    cfg.Redis.MinIdleConns,
		ConnMaxLifetime: cfg.Redis.MaxConnAge,
		PoolTimeout:     cfg.Redis.PoolTimeout,
		ConnMaxIdleTime: cfg.Redis.IdleTimeout,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		redisClient.Close()
		database.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	deps.redisClient = redisClient

	cache := redis_a.NewCache(redisClient, cfg.Redis.TTL, logger)
	jobStore := redis_a.NewJobStore(cache, cfg.Jobs.StatusTTL)

	logger.Info("initializing Asynq client")
	asynqRedisOpt := asynq.RedisClientOpt{
		Addr:     cfg.Asynq.RedisAddr,
		Password: cfg.Asynq.RedisPassword,
		DB:       cfg.Asynq.RedisDB,
	}
	deps.asynqClient = asynq.NewClient(asynqRedisOpt)
	deps.asynqInspector = asynq.NewInspector(asynqRedisOpt)

	files, err := storage.NewS3Storage(ctx, &storage.S3Config{
		Region:          cfg.AWS.Region,
		Bucket:          cfg.AWS.S3Bucket,
		AccessKeyID:     cfg.AWS.AccessKeyID,
		SecretAccessKey: cfg.AWS.SecretAccessKey,
		Endpoint:        cfg.AWS.S3Endpoint,
		UsePathStyle:    cfg.AWS.UsePathStyle,
	}, logger)
	if err != nil {
		deps.cleanup()
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	// Repositories
	listRepo := db.NewListRepository(database, logger)
	itemRepo := db.NewItemRepository(database, logger)

	// Services
	taskQueue := queue.NewTaskQueue(deps.asynqClient, jobStore, cfg.Asynq.RetryMax, cfg.Jobs.ExportRetention, logger)
	shopping := services.NewShoppingService(listRepo, itemRepo, cache, logger)

	lookup := openfoodfacts.NewClient(openfoodfacts.Config{
		BaseURL:       cfg.Lookup.BaseURL,
		Timeout:       cfg.Lookup.Timeout,
		RatePerSecond: cfg.Lookup.RatePerSecond,
		Burst:         cfg.Lookup.Burst,
		UserAgent:     cfg.Lookup.UserAgent,
	}, logger)
	products := services.NewProductService(lookup, cache, cfg.Lookup.CacheTTL, logger)

	deps.scanService = services.NewScanService(listRepo, products, cache, services.ScanOptions{
		SessionTTL:      cfg.Scan.SessionTTL,
		ResetCooldown:   cfg.Scan.ResetCooldown,
		ResolveTimeout:  cfg.Scan.ResolveTimeout,
		JanitorInterval: cfg.Scan.JanitorInterval,
	}, logger)

	share := services.NewShareService(shopping, taskQueue, services.ShareOptions{
		Secret:        cfg.Security.JWTSecret,
		TokenTTL:      cfg.Share.TokenTTL,
		PublicBaseURL: cfg.Share.PublicBaseURL,
	}, logger)

	// Handlers
	maxFileSize := int64(cfg.Jobs.ImportMaxSizeMB) * 1024 * 1024
	deps.handlers = &handlers.Handlers{
		Lists:    handlers.NewListHandler(shopping, logger),
		Items:    handlers.NewItemHandler(shopping, logger),
		Products: handlers.NewProductHandler(products, logger),
		Scan:     handlers.NewScanHandler(deps.scanService, logger),
		Share:    handlers.NewShareHandler(share, logger),
		Export:   handlers.NewExportHandler(shopping, taskQueue, logger),
		Import:   handlers.NewImportHandler(shopping, files, taskQueue, maxFileSize, logger),
		Jobs:     handlers.NewJobHandler(taskQueue, logger),
	}
	if cfg.Server.EnableHealthCheck {
		deps.handlers.Health = handlers.NewHealthHandler(database, redisClient, deps.asynqInspector, cfg, logger)
	}

	logger.Info("all dependencies initialized successfully")
	return deps, nil
}

func setupHTTPServer(cfg *config.Config, deps *dependencies, logger *slog.Logger) *http.Server {
	mux := http.NewServeMux()
	deps.handlers.Register(mux)

	if cfg.Server.EnablePprof && cfg.IsDevelopment() {
		mux.Handle("GET /debug/pprof/", http.DefaultServeMux)
	}

	// Outermost first
	var chain []func(http.Handler) http.Handler
	if cfg.Security.SecureHeaders {
		chain = append(chain, middleware.SecureHeaders)
	}
	if len(cfg.Security.AllowedOrigins) > 0 {
		chain = append(chain, middleware.CORS(cfg.Security.AllowedOrigins))
	}
	if cfg.Security.RateLimitRequests > 0 {
		chain = append(chain, middleware.RateLimit(cfg.Security.RateLimitRequests, cfg.Security.RateLimitDuration))
	}
	chain = append(chain,
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.RequestID,
	)
	if cfg.Server.WriteTimeout > 0 {
		chain = append(chain, middleware.Timeout(cfg.Server.WriteTimeout))
	}

	return &http.Server{
		Addr:           cfg.GetServerAddress(),
		Handler:        middleware.Chain(mux, chain...),
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    cfg.Server.IdleTimeout,
		MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
		ErrorLog:       slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}
}

func runMigrations(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	logger.Info("running database migrations")

	return db.RunMigrationsWithRetry(ctx, &db.MigrationConfig{
		DatabaseURL: cfg.GetDatabaseURL(),
		SourcePath:  cfg.Database.MigrationPath,
		TableName:   "schema_migrations",
		SchemaName:  "public",
	}, logger, 3)
}
