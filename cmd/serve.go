package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ariebrainware/inet-clinic/config"
	"github.com/ariebrainware/inet-clinic/endpoint"
	"github.com/ariebrainware/inet-clinic/metrics"
	"github.com/ariebrainware/inet-clinic/middleware"
	"github.com/ariebrainware/inet-clinic/model"
	"github.com/ariebrainware/inet-clinic/util"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

func newServeCommand(envFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*envFile)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServer(ctx, cfg)
		},
	}
}

// runServer serves until ctx is cancelled, then shuts down within cfg.ShutdownTimeout.
func runServer(ctx context.Context, cfg *config.Config) error {
	db, err := config.OpenDatabase(cfg)
	if err != nil {
		// Requests report the missing database; the process stays up.
		log.Error().Err(err).Msg("Error opening database")
	} else {
		defer func() {
			if err := config.CloseDatabase(db); err != nil {
				log.Error().Err(err).Msg("Error closing database")
			}
		}()
		if err := model.Migrate(db); err != nil {
			log.Error().Err(err).Msg("Schema creation incomplete")
		}
	}

	rdb, err := config.ConnectRedis(ctx, cfg)
	if err != nil {
		log.Warn().Err(err).Msg("Redis unavailable, rate limiting disabled")
	}
	if rdb != nil {
		defer func() { _ = rdb.Close() }()
	}

	geo, err := util.OpenGeoIP(cfg.GeoIPDBPath)
	if err != nil {
		log.Warn().Err(err).Str("path", cfg.GeoIPDBPath).Msg("GeoIP database unavailable, request logs carry no location")
	}
	defer func() { _ = geo.Close() }()

	srv := newServer(cfg, db, rdb, geo)
	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Str("env", cfg.AppEnv).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Dur("timeout", cfg.ShutdownTimeout).Msg("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	return nil
}

// newServer assembles the router from cfg. db, rdb and geo may be nil.
func newServer(cfg *config.Config, db *gorm.DB, rdb *redis.Client, geo *util.GeoIP) *http.Server {
	gin.SetMode(cfg.GinMode)

	var persistDB *gorm.DB
	if cfg.RequestLogPersist && db != nil {
		if err := model.Migrate(db, &model.RequestLog{}); err != nil {
			log.Error().Err(err).Msg("Request log persistence disabled")
		} else {
			persistDB = db
		}
	}

	var m *metrics.Metrics
	if cfg.MetricsEnabled {
		m = metrics.New()
	}

	router := endpoint.SetupRouter(endpoint.RouterOptions{
		AppName:       cfg.AppName,
		DB:            db,
		RequestLogger: util.NewRequestLogger(log.Logger, persistDB).WithGeoIP(geo),
		Metrics:       m,
		CORSOrigins:   cfg.CORSOrigins,
		RateLimit: middleware.RateLimitConfig{
			Client: rdb,
			Limit:  cfg.RateLimit,
			Window: cfg.RateLimitWindow,
		},
	})

	return &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.AppPort),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
}
