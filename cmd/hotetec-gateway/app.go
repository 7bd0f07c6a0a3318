package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/ozzus/hotetec-gateway/internal/application/service"
	"github.com/ozzus/hotetec-gateway/internal/config"
	"github.com/ozzus/hotetec-gateway/internal/domain/ports"
	postgres "github.com/ozzus/hotetec-gateway/internal/infrastructures/db/postgres/repo"
	cacheredis "github.com/ozzus/hotetec-gateway/internal/infrastructures/db/redis"
	"github.com/ozzus/hotetec-gateway/internal/infrastructures/hotetec"
	"github.com/ozzus/hotetec-gateway/internal/infrastructures/hotetec/http/client"
	"github.com/ozzus/hotetec-gateway/internal/infrastructures/metrics"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type application struct {
	service *service.BookingService
	metrics *metrics.Collector
	closers []func()
}

func (a *application) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}

// buildApplication wires the gateway with whichever of redis and postgres the
// config enables.
func buildApplication(ctx context.Context, cfg *config.Config, log *zap.Logger) (*application, error) {
	app := &application{metrics: metrics.New()}

	providerClient := client.NewClient(client.Config{
		Endpoint:     cfg.Hotetec.Endpoint,
		Timeout:      cfg.Hotetec.Timeout,
		Retries:      cfg.Hotetec.Retries,
		RetryBackoff: cfg.Hotetec.RetryBackoff,
		RateLimit:    cfg.Hotetec.RateLimit,
		Burst:        cfg.Hotetec.Burst,
	},
		client.WithLogger(log.Named("hotetec")),
		client.WithRecorder(app.metrics),
	)
	session := cfg.Hotetec.Session()
	gateway := hotetec.NewGateway(log.Named("gateway"), providerClient, session, gatewayOptions(cfg)...)

	var (
		sessions  ports.SessionStore
		hotelInfo ports.HotelInfoCache
		ledger    ports.ReservationRepository
	)

	if cfg.Redis.Enabled() {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		app.closers = append(app.closers, func() {
			if err := redisClient.Close(); err != nil {
				log.Warn("failed to close redis client", zap.Error(err))
			}
		})
		sessions = cacheredis.NewSessionStore(redisClient)
		hotelInfo = cacheredis.NewHotelInfoCache(redisClient)
	}

	if cfg.DB.Enabled() {
		repo, err := postgres.New(ctx, cfg.DB.DatabaseURL())
		if err != nil {
			app.Close()
			return nil, fmt.Errorf("open reservation ledger: %w", err)
		}
		app.closers = append(app.closers, repo.Close)
		if cfg.DB.Migrate {
			if err := repo.Migrate(ctx); err != nil {
				app.Close()
				return nil, fmt.Errorf("migrate reservation ledger: %w", err)
			}
		}
		ledger = repo
	}

	app.service = service.NewBookingService(log, gateway, sessions, hotelInfo, ledger, service.Options{
		SessionKey:        session.SessionKey(),
		SessionTTL:        cfg.SessionTTL,
		HotelInfoCacheTTL: cfg.HotelInfoCacheTTL,
		SessionErrorCodes: cfg.Hotetec.SessionErrorCodes,
	})

	return app, nil
}

func gatewayOptions(cfg *config.Config) []hotetec.Option {
	var opts []hotetec.Option
	if token := strings.TrimSpace(cfg.Hotetec.SessionID); token != "" {
		opts = append(opts, hotetec.WithToken(token))
	}
	return opts
}
