package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/redis"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/ezioding/email-reminder/internal/config"
	"github.com/ezioding/email-reminder/internal/handler"
	"github.com/ezioding/email-reminder/internal/notifier"
	"github.com/ezioding/email-reminder/internal/ports"
	"github.com/ezioding/email-reminder/internal/repository"
	"github.com/ezioding/email-reminder/internal/service"
	"github.com/ezioding/email-reminder/pkg/postgres"
)

func main() {
	var envFile string
	var migrationsPath string
	flag.StringVar(&envFile, "env-file", ".env", "path to .env file")
	flag.StringVar(&migrationsPath, "migrations", "file://./db/migration", "migrations source path")
	flag.Parse()

	ctx, ctxStop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer ctxStop()

	cfg, err := config.NewConfig(envFile, "")
	if err != nil {
		log.Fatal(err)
	}

	zlog.InitConsole()
	if err := zlog.SetLevel(cfg.Env); err != nil {
		log.Fatal(fmt.Errorf("error setting log level to '%s': %w", cfg.Env, err))
	}

	zlog.Logger.Info().
		Str("env", cfg.Env).
		Str("email_service", cfg.Email.Service).
		Msg("starting email-reminder")

	storeRetryStrategy := config.MakeStrategy(cfg.StoreRetry)
	notifierRetryStrategy := config.MakeStrategy(cfg.NotifierRetry)

	var postgresDB *dbpg.DB
	err = retry.DoContext(ctx, storeRetryStrategy, func() error {
		var connErr error
		postgresDB, connErr = dbpg.New(cfg.Database.MasterDSN, cfg.Database.SlaveDSNs,
			&dbpg.Options{
				MaxOpenConns:    cfg.Database.MaxOpenConnections,
				MaxIdleConns:    cfg.Database.MaxIdleConnections,
				ConnMaxLifetime: time.Duration(cfg.Database.ConnectionMaxLifetimeSeconds) * time.Second,
			})
		return connErr
	})
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	zlog.Logger.Info().Msg("connected to PostgreSQL")

	if err := postgres.MigrateUp(cfg.Database.MasterDSN, migrationsPath); err != nil {
		zlog.Logger.Fatal().Err(err).Msg("couldn't migrate postgres")
	}

	storeRepo := repository.NewStoreRepository(postgresDB, storeRetryStrategy)

	var cacheRepo ports.ReminderCache
	if cfg.Redis.Address != "" {
		redisClient := redis.New(cfg.Redis.Address, cfg.Redis.Password, cfg.Redis.DB)
		cacheRepo = repository.NewRedisRepository(redisClient, time.Duration(cfg.Redis.ExpirationSeconds)*time.Second)
		zlog.Logger.Info().Str("address", cfg.Redis.Address).Msg("reminder cache enabled")
	}

	mailer, err := notifier.New(cfg.Email)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to build notifier")
	}
	zlog.Logger.Info().Str("notifier", mailer.Name()).Msg("notifier selected")

	checkPeriod, err := time.ParseDuration(cfg.Check.Period)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("invalid check period")
	}
	itemTimeout, err := time.ParseDuration(cfg.Check.ItemTimeout)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("invalid check item timeout")
	}

	crudService := service.NewCRUDService(storeRepo, cacheRepo)
	checkService := service.NewCheckService(storeRepo, cacheRepo, mailer, notifierRetryStrategy, itemTimeout, checkPeriod)

	reminderHandler := handler.NewReminderHandler(crudService, checkService)
	router := handler.NewRouter(reminderHandler, cfg.AdminToken)

	go checkService.Run(ctx)
	go serveMetrics(cfg.Server.MetricsAddress)

	server := &http.Server{
		Addr:    cfg.Server.Address,
		Handler: router,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			zlog.Logger.Error().Err(err).Msg("server shutdown failed")
		}
	}()

	zlog.Logger.Info().Str("address", cfg.Server.Address).Msg("listening")
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		zlog.Logger.Fatal().Err(err).Msg("server stopped unexpectedly")
	}
	zlog.Logger.Info().Msg("shutdown complete")
}

func serveMetrics(address string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	if err := http.ListenAndServe(address, mux); err != nil {
		zlog.Logger.Error().Err(err).Msg("metrics listener stopped")
	}
}
