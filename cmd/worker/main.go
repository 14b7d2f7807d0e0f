// cmd/worker/main.go
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"

	"github.com/ammerola/shoplist-be/internal/adapters/db"
	"github.com/ammerola/shoplist-be/internal/adapters/queue"
	redis_a "github.com/ammerola/shoplist-be/internal/adapters/redis_adapter"
	"github.com/ammerola/shoplist-be/internal/adapters/storage"
	"github.com/ammerola/shoplist-be/internal/adapters/telegram"
	"github.com/ammerola/shoplist-be/internal/core/ports"
	"github.com/ammerola/shoplist-be/internal/core/services"
	"github.com/ammerola/shoplist-be/internal/pkg/config"
	"github.com/ammerola/shoplist-be/internal/pkg/logger"
	"github.com/ammerola/shoplist-be/internal/workers"
)

// cleanupSchedule is the cron spec of the stored file cleanup
const cleanupSchedule = "@hourly"

func main() {
	slogger := logger.SetupLogger("info", "json")

	cfg, err := config.Load(slogger)
	if err != nil {
		slogger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slogger = logger.SetupLogger(cfg.App.LogLevel, cfg.App.LogFormat)
	slogger.Info("starting worker",
		slog.String("environment", cfg.App.Environment),
		slog.String("redis_addr", cfg.Asynq.RedisAddr))

	ctx := context.Background()
	database, err := initDatabase(ctx, cfg, slogger)
	if err != nil {
		slogger.Error("failed to initialize database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.GetRedisAddress(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	files, err := storage.NewS3Storage(ctx, &storage.S3Config{
		Region:          cfg.AWS.Region,
		Bucket:          cfg.AWS.S3Bucket,
		AccessKeyID:     cfg.AWS.AccessKeyID,
		SecretAccessKey: cfg.AWS.SecretAccessKey,
		Endpoint:        cfg.AWS.S3Endpoint,
		UsePathStyle:    cfg.AWS.UsePathStyle,
	}, slogger)
	if err != nil {
		slogger.Error("failed to initialize file storage", slog.String("error", err.Error()))
		os.Exit(1)
	}

	redisOpt := asynq.RedisClientOpt{
		Addr:     cfg.Asynq.RedisAddr,
		Password: cfg.Asynq.RedisPassword,
		DB:       cfg.Asynq.RedisDB,
	}
	client := asynq.NewClient(redisOpt)
	defer client.Close()

	// Repositories and services
	cache := redis_a.NewCache(redisClient, cfg.Redis.TTL, slogger)
	jobStore := redis_a.NewJobStore(cache, cfg.Jobs.StatusTTL)
	taskQueue := queue.NewTaskQueue(client, jobStore, cfg.Asynq.RetryMax, cfg.Jobs.ExportRetention, slogger)

	shopping := services.NewShoppingService(
		db.NewListRepository(database, slogger),
		db.NewItemRepository(database, slogger),
		cache,
		slogger,
	)
	share := services.NewShareService(shopping, taskQueue, services.ShareOptions{
		Secret:        cfg.Security.JWTSecret,
		TokenTTL:      cfg.Share.TokenTTL,
		PublicBaseURL: cfg.Share.PublicBaseURL,
	}, slogger)

	var messenger ports.Messenger
	if cfg.Share.TelegramToken != "" {
		bot, err := telegram.NewMessenger(cfg.Share.TelegramToken, slogger)
		if err != nil {
			slogger.Error("failed to initialize telegram bot", slog.String("error", err.Error()))
			os.Exit(1)
		}
		messenger = bot
	} else {
		slogger.Warn("TELEGRAM_BOT_TOKEN not set, telegram shares will fail")
	}

	srv := asynq.NewServer(redisOpt, asynq.Config{
		Concurrency:     cfg.Asynq.Concurrency,
		Queues:          cfg.Asynq.Queues,
		StrictPriority:  cfg.Asynq.StrictPriority,
		ErrorHandler:    asynq.ErrorHandlerFunc(handleError),
		RetryDelayFunc:  exponentialBackoff,
		ShutdownTimeout: cfg.Asynq.ShutdownTimeout,
		HealthCheckFunc: healthCheck,
		Logger:          newAsynqLogger(slogger),
	})

	mux := asynq.NewServeMux()
	mux.Use(timeoutMiddleware(cfg.Jobs.ProcessingTimeout))

	exportProcessor := workers.NewExportProcessor(shopping, files, jobStore, cfg.Jobs.ExportRetention, slogger)
	mux.HandleFunc(workers.TypeExportList, exportProcessor.ProcessExport)

	importProcessor := workers.NewImportProcessor(shopping, files, jobStore, slogger)
	mux.HandleFunc(workers.TypeImportExcel, importProcessor.ProcessExcel)
	mux.HandleFunc(workers.TypeImportPDF, importProcessor.ProcessPDF)

	notificationProcessor := workers.NewNotificationProcessor(share, messenger, jobStore, slogger)
	mux.HandleFunc(workers.TypeShareTelegram, notificationProcessor.SendTelegram)

	cleanupProcessor := workers.NewCleanupProcessor(files, cfg.Jobs.ExportRetention, slogger)
	mux.HandleFunc(workers.TypeCleanupExports, cleanupProcessor.CleanupExports)

	scheduler := asynq.NewScheduler(redisOpt, &asynq.SchedulerOpts{
		Logger: newAsynqLogger(slogger),
	})
	if _, err := scheduler.Register(cleanupSchedule, workers.NewCleanupTask(), asynq.Queue(workers.QueueLow)); err != nil {
		slogger.Error("failed to schedule cleanup", slog.String("error", err.Error()))
		os.Exit(1)
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Run(mux); err != nil {
			slogger.Error("failed to run worker server", slog.String("error", err.Error()))
			shutdown <- syscall.SIGTERM
		}
	}()
	if err := scheduler.Start(); err != nil {
		slogger.Error("failed to start scheduler", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slogger.Info("worker started successfully",
		slog.Int("concurrency", cfg.Asynq.Concurrency),
		slog.Any("queues", cfg.Asynq.Queues),
		slog.Bool("telegram", messenger != nil))

	sig := <-shutdown
	slogger.Info("shutdown signal received", slog.String("signal", sig.String()))

	scheduler.Shutdown()
	srv.Shutdown()
	slogger.Info("worker shutdown complete")
}

func initDatabase(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*db.Database, error) {
	return db.NewDatabase(ctx, &db.Config{
		Host:               cfg.Database.Host,
		Port:               cfg.Database.Port,
		User:               cfg.Database.User,
		Password:           cfg.Database.Password,
		Database:           cfg.Database.Name,
		SSLMode:            cfg.Database.SSLMode,
		MaxConnections:     10, // Fewer connections for worker
		MinConnections:     2,
		MaxConnLifetime:    cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:    cfg.Database.MaxConnIdleTime,
		HealthCheckPeriod:  cfg.Database.HealthCheckPeriod,
		ConnectTimeout:     cfg.Database.ConnectTimeout,
		EnableQueryLogging: cfg.Database.EnableQueryLogging,
	}, logger)
}

// timeoutMiddleware bounds every task by the processing timeout
func timeoutMiddleware(timeout time.Duration) asynq.MiddlewareFunc {
	return func(next asynq.Handler) asynq.Handler {
		return asynq.HandlerFunc(func(ctx context.Context, t *asynq.Task) error {
			if timeout <= 0 {
				return next.ProcessTask(ctx, t)
			}
			ctx, cancel := context.WithTimeout(ctx, timeout)
			defer cancel()
			return next.ProcessTask(ctx, t)
		})
	}
}

func handleError(ctx context.Context, task *asynq.Task, err error) {
	retried, _ := asynq.GetRetryCount(ctx)
	maxRetry, _ := asynq.GetMaxRetry(ctx)
	slog.ErrorContext(ctx, "task processing failed",
		slog.String("type", task.Type()),
		slog.Int("retried", retried),
		slog.Int("max_retry", maxRetry),
		slog.String("error", err.Error()))
}

func exponentialBackoff(n int, e error, t *asynq.Task) time.Duration {
	baseDelay := time.Second
	maxDelay := 10 * time.Minute
	delay := baseDelay * time.Duration(1<<uint(n))
	if delay > maxDelay {
		delay = maxDelay
	}
	return delay
}

func healthCheck(err error) {
	if err != nil {
		slog.Error("worker health check failed", slog.String("error", err.Error()))
	}
}

// asynqLogger adapts slog for Asynq
type asynqLogger struct {
	logger *slog.Logger
}

func newAsynqLogger(logger *slog.Logger) *asynqLogger {
	return &asynqLogger{
		logger: logger.With(slog.String("component", "asynq")),
	}
}

func (l *asynqLogger) Debug(args ...interface{}) {
	l.logger.Debug(fmt.Sprint(args...))
}

func (l *asynqLogger) Info(args ...interface{}) {
	l.logger.Info(fmt.Sprint(args...))
}

func (l *asynqLogger) Warn(args ...interface{}) {
	l.logger.Warn(fmt.Sprint(args...))
}

func (l *asynqLogger) Error(args ...interface{}) {
	l.logger.Error(fmt.Sprint(args...))
}

func (l *asynqLogger) Fatal(args ...interface{}) {
	l.logger.Error(fmt.Sprint(args...))
	os.Exit(1)
}
