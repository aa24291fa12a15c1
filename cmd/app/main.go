package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"dishly/cmd"
	httpadapter "dishly/internal/adapters/in/http"
	kafkaadapter "dishly/internal/adapters/out/kafka"
	"dishly/internal/adapters/out/postgres"
	redisadapter "dishly/internal/adapters/out/redis"
	"dishly/internal/core/ports"

	"github.com/labstack/gommon/log"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("dishly: %v", err)
	}
}

func run() error {
	configs, err := cmd.LoadConfig(".env")
	if err != nil {
		return err
	}

	level, _ := configs.SlogLevel()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gormDB, err := gorm.Open(gormpostgres.Open(configs.Postgres.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return fmt.Errorf("connect to postgres: %w", err)
	}
	if err = postgres.Migrate(gormDB); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	publisher, closePublisher := newPublisher(configs, logger)
	defer closePublisher()

	var idempotency ports.IdempotencyStore
	var checks []httpadapter.HealthCheck
	if configs.Redis.Addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     configs.Redis.Addr,
			Password: configs.Redis.Password,
			DB:       configs.Redis.DB,
		})
		defer func() {
			_ = client.Close()
		}()
		idempotency = redisadapter.NewIdempotencyStore(client, configs.Redis.IdempotencyTTL)
		checks = append(checks, httpadapter.HealthCheck{
			Name:  "redis",
			Check: func(ctx context.Context) error { return client.Ping(ctx).Err() },
		})
	} else {
		logger.WarnContext(ctx, "Redis is not configured, idempotency keys are ignored")
	}

	app := cmd.NewCompositionRoot(configs, gormDB, publisher, idempotency, logger)

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	e, err := httpadapter.NewRouter(app.CreateRouterConfig(), app.CreateHTTPServer(), logger,
		append([]httpadapter.HealthCheck{app.CreateDatabaseHealthCheck()}, checks...)...)
	if err != nil {
		return err
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.InfoContext(gCtx, "HTTP server listening", "port", configs.HTTP.Port)
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTP.Port)); err != nil &&
			!errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), configs.HTTP.ShutdownTimeout)
		defer cancel()
		logger.InfoContext(shutdownCtx, "Shutting down HTTP server")
		return e.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func newPublisher(configs cmd.Config, logger *slog.Logger) (ports.EventPublisher, func()) {
	if len(configs.Kafka.Brokers) == 0 {
		logger.Warn("Kafka is not configured, order events are dropped")
		return kafkaadapter.NewNoopPublisher(), func() {}
	}

	publisher := kafkaadapter.NewPublisher(kafkaadapter.NewWriter(configs.Kafka.Brokers, configs.Kafka.Topic))
	return publisher, func() {
		if err := publisher.Close(); err != nil {
			logger.Error("Failed to close kafka writer", "error", err)
		}
	}
}
