package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/soheilhy/cmux"
	"golang.org/x/sync/errgroup"

	"github.com/abababa124444-cmd/arab-chat1/internal/broadcast"
	"github.com/abababa124444-cmd/arab-chat1/internal/broadcast/redisbroker"
	"github.com/abababa124444-cmd/arab-chat1/internal/config"
	"github.com/abababa124444-cmd/arab-chat1/internal/infra"
	"github.com/abababa124444-cmd/arab-chat1/internal/pkg/jwt"
	"github.com/abababa124444-cmd/arab-chat1/internal/pkg/tx"
	"github.com/abababa124444-cmd/arab-chat1/internal/pkg/validator"
	"github.com/abababa124444-cmd/arab-chat1/internal/pkg/workerpool"
	"github.com/abababa124444-cmd/arab-chat1/internal/repository/memory"
	db "github.com/abababa124444-cmd/arab-chat1/internal/repository/postgres"
	"github.com/abababa124444-cmd/arab-chat1/internal/rest"
	"github.com/abababa124444-cmd/arab-chat1/internal/service"
	"github.com/abababa124444-cmd/arab-chat1/internal/session"
	"github.com/abababa124444-cmd/arab-chat1/internal/ws"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.MustLoad()
	logger := newLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = logger.WithContext(ctx)

	var repo service.Repository
	switch cfg.Storage.Driver {
	case config.StorageMemory:
		repo = memory.New()
	case config.StoragePostgres:
		dbRepo := db.New(cfg)
		defer dbRepo.Close()

		if err := dbRepo.Migrate(ctx); err != nil {
			logger.Fatal().Err(err).Msg("failed to apply schema")
		}
		repo = dbRepo
	default:
		logger.Fatal().Str("driver", cfg.Storage.Driver).Msg("unknown storage driver")
	}

	var broadcaster session.Broadcaster
	switch cfg.Broker.Driver {
	case config.BrokerMemory:
		broadcaster = broadcast.NewHub()
	case config.BrokerRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Broker.RedisAddr,
			Password: cfg.Broker.RedisPassword,
		})
		defer client.Close()

		broker := redisbroker.New(client, cfg.Broker.ChannelPrefix)
		if err := broker.Ping(ctx); err != nil {
			logger.Fatal().Err(err).Str("addr", cfg.Broker.RedisAddr).Msg("redis is unreachable")
		}
		if err := broker.Start(ctx); err != nil {
			logger.Fatal().Err(err).Msg("failed to subscribe to redis broker")
		}
		broadcaster = broker
	default:
		logger.Fatal().Str("driver", cfg.Broker.Driver).Msg("unknown broker driver")
	}

	pool := workerpool.New(cfg.Live.WorkerPoolSize)
	defer pool.Wait()

	chatService := service.New(repo, service.LimitsFromConfig(cfg.Chat))
	relay := session.NewRelay(chatService, broadcaster, session.NewSequencer())
	sessions := session.NewManager(chatService, broadcaster, relay, pool, cfg.Live.SendBuffer)

	tokens := jwt.New(cfg.Auth.JWTSecret)

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
		MaxAge:         300,
	}))
	router.Use(func(next http.Handler) http.Handler {
		return infra.LoggerHTTP(next, logger)
	})
	router.Use(infra.MetricsHTTP)
	router.Use(func(next http.Handler) http.Handler {
		return infra.AuthInterceptorHTTP(next, tokens)
	})
	router.Use(tx.TxMiddlewareHTTP(repo))

	rest.New(chatService, relay, validator.New()).Register(router)
	ws.New(sessions, cfg.Live.MaxFrameSize).Register(router)
	router.Handle("/metrics", promhttp.Handler())

	httpServer := &http.Server{
		Handler:      router,
		ReadTimeout:  cfg.Service.ReadTimeout,
		WriteTimeout: cfg.Service.WriteTimeout,
	}
	// websocket connections are long-lived and manage their own deadlines
	wsServer := &http.Server{
		Handler: router,
	}

	listener, err := net.Listen("tcp", fmt.Sprintf(":%s", cfg.Service.Port))
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to start TCP listener")
	}

	m := cmux.New(listener)

	wsListener := m.Match(cmux.HTTP1HeaderField("Upgrade", "websocket"))
	httpListener := m.Match(cmux.HTTP1Fast())

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := wsServer.Serve(wsListener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("websocket server error: %v", err)
		}
		return nil
	})

	g.Go(func() error {
		if err := httpServer.Serve(httpListener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %v", err)
		}
		return nil
	})

	g.Go(func() error {
		if err := m.Serve(); err != nil && gctx.Err() == nil {
			return fmt.Errorf("cannot start service: %v", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shut down HTTP server")
		}
		if err := wsServer.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shut down websocket server")
		}
		m.Close()
		return nil
	})

	logger.Info().
		Str("port", cfg.Service.Port).
		Str("storage", cfg.Storage.Driver).
		Str("broker", cfg.Broker.Driver).
		Msg("chat service started")

	if err := g.Wait(); err != nil {
		logger.Error().Err(err).Msg("server error")
	}
}

func newLogger(cfg *config.Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Logger.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	return zerolog.New(os.Stdout).
		Level(level).
		With().
		Timestamp().
		Str("service", cfg.Service.Name).
		Str("env", cfg.Platform.Env).
		Logger()
}
