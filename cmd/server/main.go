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

	"github.com/redis/go-redis/v9"

	"campaign-manager/internal/adapter/googleads"
	httpadapter "campaign-manager/internal/adapter/http"
	"campaign-manager/internal/adapter/memory"
	"campaign-manager/internal/adapter/postgres"
	"campaign-manager/internal/adapter/redislock"
	"campaign-manager/internal/adapter/usecase"
	"campaign-manager/internal/config"
	"campaign-manager/internal/core/port"
	"campaign-manager/internal/db"
	"campaign-manager/internal/logging"
)

// main is the entry point of the campaign manager server. It loads
// configuration, optionally runs database migrations and seeds demo data,
// wires storage, the transition lock and the ads provider, then starts the
// HTTP server. On receiving a termination signal it gracefully shuts down
// the server.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	// Load configuration from environment variables and .env.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}

	logger, logFile, err := logging.New(cfg.Log, os.Stdout)
	if err != nil {
		slog.Error("failed to open log file", slog.Any("error", err))
		return
	}
	defer logFile.Close()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var (
		campaigns port.CampaignRepository
		adGroups  port.AdGroupRepository
	)
	switch cfg.Store.Driver {
	case "memory":
		store := memory.NewStore()
		campaigns, adGroups = store, store
		logger.Warn("using in-memory store, data is lost on restart")
		if cfg.Store.Seed {
			if err = db.Seed(ctx, store, store); err != nil {
				logger.Error("seed error", slog.Any("error", err))
				return
			}
		}
	case "postgres":
		// Optionally run migrations if configured. We use the Psql sub-config.
		if cfg.Psql.RunMigrations {
			if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
				logger.Error("migration error", slog.Any("error", err))
				return
			}
			logger.Info("migrations applied successfully")
		}

		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			logger.Error("database connection error", slog.Any("error", err))
			return
		}
		defer pool.Close()

		campaignRepo := postgres.NewCampaignRepository(pool)
		adGroupRepo := postgres.NewAdGroupRepository(pool)
		if cfg.Psql.Seed {
			if err = db.Seed(ctx, campaignRepo, adGroupRepo); err != nil {
				logger.Error("seed error", slog.Any("error", err))
				return
			}
		}
		campaigns, adGroups = campaignRepo, adGroupRepo
	default:
		logger.Error("unknown store driver", slog.String("driver", cfg.Store.Driver))
		return
	}

	var locker port.Locker = memory.NewLocker()
	if cfg.Redis.Addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer client.Close()
		if err = client.Ping(ctx).Err(); err != nil {
			logger.Error("redis connection error", slog.Any("error", err))
			return
		}
		locker = redislock.NewLocker(client, cfg.Redis.KeyPrefix, logger)
	}

	var provider port.AdsProvider
	if cfg.GoogleAds.Configured() {
		provider = googleads.NewREST(ctx, cfg.GoogleAds, logger)
	} else {
		logger.Warn("Google Ads credentials missing, publishing through the mock provider")
		provider = googleads.NewMock(logger)
	}

	svc := usecase.NewCampaignUseCase(campaigns, adGroups, provider, locker, logger)
	handler := httpadapter.NewHandler(svc, logger, httpadapter.Options{
		AllowedOrigins: cfg.HTTP.AllowedOrigins,
	})
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)), slog.String("store", cfg.Store.Driver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err = <-serveErr:
		logger.Error("server error", slog.Any("error", err))
		return
	case <-ctx.Done():
		exitCode = 0
	}

	shutdownCtx, stop := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer stop()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
		exitCode = 1
	} else {
		logger.Info("server gracefully stopped")
	}
}
