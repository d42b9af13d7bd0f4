// Package main implements the AutoSpecs API server.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/nats-io/nats.go"

	"github.com/WessleyAI/autospecs/engine/specs"
	"github.com/WessleyAI/autospecs/pkg/metrics"
	"github.com/WessleyAI/autospecs/pkg/mid"
	"github.com/WessleyAI/autospecs/pkg/perplexity"
	"github.com/WessleyAI/autospecs/pkg/resilience"
)

// Config holds all environment-based configuration.
type Config struct {
	Port              string
	PerplexityKey     string
	PerplexityURL     string
	PerplexityModel   string
	PerplexityTimeout time.Duration
	CORSOrigin        string
	NATSURL           string
	GRPCHealthPort    string
	RateLimitRPS      float64
	RateLimitBurst    int
	BreakerThreshold  int
	BreakerTimeout    time.Duration
}

func loadConfig() Config {
	return Config{
		Port:              envOr("PORT", "8080"),
		PerplexityKey:     os.Getenv("PERPLEXITY_API_KEY"),
		PerplexityURL:     envOr("PERPLEXITY_URL", perplexity.DefaultURL),
		PerplexityModel:   envOr("PERPLEXITY_MODEL", perplexity.DefaultModel),
		PerplexityTimeout: envDuration("PERPLEXITY_TIMEOUT", 30*time.Second),
		CORSOrigin:        envOr("CORS_ORIGIN", "*"),
		NATSURL:           os.Getenv("NATS_URL"),
		GRPCHealthPort:    os.Getenv("GRPC_HEALTH_PORT"),
		RateLimitRPS:      envFloat("RATE_LIMIT_RPS", 10),
		RateLimitBurst:    envInt("RATE_LIMIT_BURST", 20),
		BreakerThreshold:  envInt("BREAKER_THRESHOLD", 5),
		BreakerTimeout:    envDuration("BREAKER_TIMEOUT", 30*time.Second),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if n, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return n
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if f, err := strconv.ParseFloat(os.Getenv(key), 64); err == nil {
		return f
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if d, err := time.ParseDuration(os.Getenv(key)); err == nil && d > 0 {
		return d
	}
	return fallback
}

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	// A missing .env is normal outside local development.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		logger.Warn("could not read .env", "err", err)
	}
	cfg := loadConfig()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("server exited with error", "err", err)
		os.Exit(1)
	}
}

// app is everything a running server needs, built from Config.
type app struct {
	svc     *specs.Service
	metrics *metrics.Metrics
	handler http.Handler
}

func newApp(cfg Config, logger *slog.Logger, notifier specs.Notifier) *app {
	m := metrics.New()

	breaker := resilience.NewBreaker(resilience.BreakerOpts{
		FailThreshold: cfg.BreakerThreshold,
		Timeout:       cfg.BreakerTimeout,
		OnStateChange: func(from, to resilience.State) {
			m.SetBreakerState(int(to))
			logger.Warn("upstream breaker state changed", "from", from.String(), "to", to.String())
		},
	})

	var gen specs.Generator
	if cfg.PerplexityKey != "" {
		gen = perplexity.NewClient(cfg.PerplexityKey, perplexity.Options{
			URL:     cfg.PerplexityURL,
			Model:   cfg.PerplexityModel,
			Timeout: cfg.PerplexityTimeout,
		})
	} else {
		logger.Warn("PERPLEXITY_API_KEY not set, serving placeholder data")
	}

	opts := []specs.Option{
		specs.WithBreaker(breaker),
		specs.WithRecorder(m),
		specs.WithLogger(logger),
	}
	if notifier != nil {
		opts = append(opts, specs.WithNotifier(notifier))
	}
	svc := specs.NewService(gen, opts...)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", handleHealth)
	mux.HandleFunc("GET /api/car-specs", handleCarSpecs(svc, logger))
	mux.HandleFunc("GET /api/compare", handleCompare(svc, logger))
	mux.Handle("GET /metrics", m.Handler())

	limiter := resilience.NewLimiter(resilience.LimiterOpts{
		Rate:  cfg.RateLimitRPS,
		Burst: cfg.RateLimitBurst,
	})

	handler := mid.Chain(mux,
		mid.Recover(logger),
		mid.Logger(logger),
		mid.CORS(cfg.CORSOrigin),
		mid.OTel("autospecs-api"),
		mid.Metrics(m),
		mid.RateLimit(limiter),
	)

	return &app{svc: svc, metrics: m, handler: handler}
}

func run(ctx context.Context, cfg Config, logger *slog.Logger) error {
	// --- Connect to NATS (optional) ---
	var nc *nats.Conn
	var notifier specs.Notifier
	if cfg.NATSURL != "" {
		var err error
		nc, err = nats.Connect(cfg.NATSURL, nats.Name("autospecs-api"))
		if err != nil {
			return fmt.Errorf("nats connect: %w", err)
		}
		defer nc.Drain()
		notifier = &natsNotifier{nc: nc, logger: logger}
	}

	a := newApp(cfg, logger, notifier)

	if nc != nil {
		sub, err := serveLookups(nc, a.svc, logger)
		if err != nil {
			return fmt.Errorf("nats subscribe: %w", err)
		}
		defer sub.Unsubscribe()
		logger.Info("nats connected", "url", cfg.NATSURL)
	}

	// --- gRPC health (optional) ---
	if cfg.GRPCHealthPort != "" {
		lis, err := net.Listen("tcp", ":"+cfg.GRPCHealthPort)
		if err != nil {
			return fmt.Errorf("grpc health listen: %w", err)
		}
		hs := newHealthServer()
		go func() {
			logger.Info("grpc health starting", "port", cfg.GRPCHealthPort)
			if err := hs.Serve(lis); err != nil {
				logger.Error("grpc health stopped", "err", err)
			}
		}()
		defer hs.Stop()
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      a.handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.PerplexityTimeout + 15*time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// --- Graceful shutdown ---
	errCh := make(chan error, 1)
	go func() {
		logger.Info("api server starting", "port", cfg.Port)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return err
		}
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	shutCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutCtx)
}
