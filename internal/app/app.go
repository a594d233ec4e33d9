package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/utafrali/mangomarket/internal/config"
	"github.com/utafrali/mangomarket/internal/event"
	handler "github.com/utafrali/mangomarket/internal/handler/http"
	"github.com/utafrali/mangomarket/internal/provider/simulated"
	"github.com/utafrali/mangomarket/internal/repository"
	filerepo "github.com/utafrali/mangomarket/internal/repository/file"
	"github.com/utafrali/mangomarket/internal/repository/memory"
	redisrepo "github.com/utafrali/mangomarket/internal/repository/redis"
	"github.com/utafrali/mangomarket/internal/scheduler"
	"github.com/utafrali/mangomarket/internal/service"
	"github.com/utafrali/mangomarket/pkg/database"
	"github.com/utafrali/mangomarket/pkg/health"
	pkgkafka "github.com/utafrali/mangomarket/pkg/kafka"
	"github.com/utafrali/mangomarket/pkg/middleware"
	"github.com/utafrali/mangomarket/pkg/tracing"
)

// App wires together all dependencies and runs the storefront service.
type App struct {
	cfg            *config.Config
	logger         *slog.Logger
	rdb            *redis.Client
	producer       *pkgkafka.Producer
	sweeper        *scheduler.DraftSweeper
	httpServer     *http.Server
	tracerShutdown func(context.Context) error
}

// stateRepositories are the per-device stores of one backend.
type stateRepositories struct {
	checkouts repository.CheckoutRepository
	carts     repository.CartRepository
}

// NewApp creates a new application instance, initializing all dependencies.
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Initialize OpenTelemetry tracing.
	tracerShutdown, err := tracing.InitTracer(ctx, tracing.Config{
		ServiceName:    "storefront",
		ServiceVersion: "0.1.0",
		Environment:    cfg.Environment,
		OTLPEndpoint:   cfg.OTELEndpoint,
		SampleRate:     cfg.OTELSampleRate,
		Enabled:        cfg.OTELEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	a := &App{
		cfg:            cfg,
		logger:         logger,
		tracerShutdown: tracerShutdown,
	}
	healthHandler := health.NewHandler()

	// Per-device state.
	var repos stateRepositories
	switch cfg.StateBackend {
	case config.BackendFile:
		repos, err = a.initFileBackend(healthHandler)
	default:
		repos, err = a.initRedisBackend(ctx, healthHandler)
	}
	if err != nil {
		_ = a.Shutdown()
		return nil, err
	}

	// Domain events.
	var publisher event.Publisher = event.Discard{}
	if cfg.KafkaEnabled {
		a.producer = pkgkafka.NewProducer(pkgkafka.DefaultProducerConfig(cfg.KafkaBrokers), logger)
		publisher = a.producer
		healthHandler.RegisterNonCritical("kafka", func(ctx context.Context) error {
			return a.producer.Ping(ctx)
		})
		logger.Info("kafka producer initialized", slog.Any("brokers", cfg.KafkaBrokers))
	} else {
		logger.Info("kafka disabled, domain events are discarded")
	}
	eventProducer := event.NewProducer(publisher, logger)

	// Build the dependency graph.
	products := memory.NewProductRepository()
	payments := simulated.NewProvider(cfg.OrderProcessingDelay(), cfg.OrderFailureRate)
	cartService := service.NewCartService(repos.carts, products, eventProducer, logger)
	checkoutService := service.NewCheckoutService(repos.checkouts, cartService, payments, eventProducer, logger)
	catalogService := service.NewCatalogService(products, logger)

	// HTTP router.
	cors := middleware.DefaultCORSConfig()
	cors.AllowedOrigins = cfg.CORSAllowedOrigins
	router := handler.NewRouter(handler.Services{
		Checkout: checkoutService,
		Cart:     cartService,
		Catalog:  catalogService,
	}, healthHandler, logger, cfg.PprofAllowedCIDRs, cors)

	a.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      45 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return a, nil
}

func (a *App) initRedisBackend(ctx context.Context, healthHandler *health.Handler) (stateRepositories, error) {
	redisCfg := database.DefaultRedisConfig()
	redisCfg.Addr = a.cfg.RedisAddr
	redisCfg.Password = a.cfg.RedisPass
	redisCfg.DB = a.cfg.RedisDB

	rdb, err := database.NewRedisClient(ctx, redisCfg)
	if err != nil {
		return stateRepositories{}, fmt.Errorf("connect to redis: %w", err)
	}
	a.rdb = rdb
	a.logger.Info("connected to Redis",
		slog.String("addr", a.cfg.RedisAddr),
		slog.Int("db", a.cfg.RedisDB),
	)

	healthHandler.RegisterCritical("redis", func(ctx context.Context) error {
		return rdb.Ping(ctx).Err()
	})

	ttl := a.cfg.StateTTLDuration()
	return stateRepositories{
		checkouts: redisrepo.NewCheckoutRepository(rdb, ttl),
		carts:     redisrepo.NewCartRepository(rdb, ttl),
	}, nil
}

func (a *App) initFileBackend(healthHandler *health.Handler) (stateRepositories, error) {
	store, err := filerepo.NewStore(a.cfg.StateDir)
	if err != nil {
		return stateRepositories{}, fmt.Errorf("open state dir: %w", err)
	}
	a.logger.Info("using file state backend", slog.String("dir", store.Root()))

	healthHandler.RegisterCritical("state_dir", func(context.Context) error {
		_, err := os.Stat(store.Root())
		return err
	})

	a.sweeper = scheduler.NewDraftSweeper(store, a.cfg.StateTTLDuration(), a.logger)
	if err := a.sweeper.Start(a.cfg.DraftSweepSchedule); err != nil {
		a.sweeper = nil
		return stateRepositories{}, err
	}

	return stateRepositories{
		checkouts: filerepo.NewCheckoutRepository(store),
		carts:     filerepo.NewCartRepository(store),
	}, nil
}

// Run starts the HTTP server and blocks until the context is canceled.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		a.logger.Info("starting HTTP server",
			slog.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("shutdown signal received")
	case err := <-errCh:
		_ = a.Shutdown()
		return err
	}

	return a.Shutdown()
}

// Shutdown gracefully stops all components in the correct order:
// 1. HTTP server (drain in-flight requests)
// 2. Draft sweeper
// 3. Tracer (flush pending spans from drained requests)
// 4. Kafka producer
// 5. Redis client
func (a *App) Shutdown() error {
	a.logger.Info("shutting down application...")

	var errs []error

	// 1. Drain in-flight HTTP requests (5s budget).
	if a.httpServer != nil {
		httpCtx, httpCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer httpCancel()
		if err := a.httpServer.Shutdown(httpCtx); err != nil {
			a.logger.Error("http server shutdown error", slog.String("error", err.Error()))
			errs = append(errs, err)
		}
	}

	// 2. Wait for a running sweep.
	if a.sweeper != nil {
		sweepCtx, sweepCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer sweepCancel()
		a.sweeper.Stop(sweepCtx)
	}

	// 3. Flush pending spans after HTTP drain so in-flight request spans are captured.
	if a.tracerShutdown != nil {
		tracerCtx, tracerCancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer tracerCancel()
		if err := a.tracerShutdown(tracerCtx); err != nil {
			a.logger.Error("tracer shutdown error", slog.String("error", err.Error()))
			errs = append(errs, err)
		}
	}

	// 4. Close Kafka producer.
	if a.producer != nil {
		if err := a.producer.Close(); err != nil {
			a.logger.Error("kafka producer close error", slog.String("error", err.Error()))
			errs = append(errs, err)
		}
	}

	// 5. Close Redis client.
	if a.rdb != nil {
		if err := a.rdb.Close(); err != nil {
			a.logger.Error("redis close error", slog.String("error", err.Error()))
			errs = append(errs, err)
		}
	}

	a.logger.Info("application shutdown complete")
	return errors.Join(errs...)
}
