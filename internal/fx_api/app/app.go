package fxApp

import (
	"context"
	"github.com/androx6/wsj-fx-api/deploy/config"
	"github.com/androx6/wsj-fx-api/internal/fx_api/adapter/api_client/wsj"
	"github.com/androx6/wsj-fx-api/internal/fx_api/adapter/notifier/redis"
	"github.com/androx6/wsj-fx-api/internal/fx_api/ports/http/public"
	"github.com/androx6/wsj-fx-api/internal/fx_api/service"
	redisPack "github.com/redis/go-redis/v9"
	"log"
	"log/slog"
	"os"
	"strings"
)

type FxApp struct {
	cfg         *config.Config
	redisClient *redisPack.Client
}

func NewFxApp(cfg *config.Config) *FxApp {
	return &FxApp{cfg: cfg}
}

func (f *FxApp) Start(ctx context.Context) <-chan struct{} {
	f.initLogger()
	slog.Info("Logger initialized")

	slog.With("config", f.cfg).Info("starting server")

	httpClient := f.initHTTPClient()
	slog.Info("HTTP client initialized")

	notifier := f.initNotifier(ctx)

	fxService := f.initService(httpClient, notifier)
	slog.Info("Service initialized")

	serverDone := public.StartServer(ctx, fxService, f.cfg,
		public.WithBatchBudget(f.cfg.Fetcher.Timeout, fxService.Concurrency()),
	)
	slog.Info("server started", "port", f.cfg.HTTPServer.Port)

	return serverDone
}

// Close releases the Redis connection, call it once the server is done.
func (f *FxApp) Close() {
	if f.redisClient == nil {
		return
	}
	if err := f.redisClient.Close(); err != nil {
		slog.Error("Failed to close Redis client", "error", err)
		return
	}
	slog.Info("Redis client closed")
}

func (f *FxApp) initLogger() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level:     parseLevel(f.cfg.Logger.Level),
		AddSource: false,
	}))
	slog.SetDefault(logger)
}

func (f *FxApp) initHTTPClient() *wsj.HTTPClient {
	return wsj.NewHTTPClient(wsj.Config{
		BaseURL:   f.cfg.Fetcher.URL,
		Cookie:    f.cfg.Fetcher.Cookie,
		UserAgent: f.cfg.Fetcher.UserAgent,
		Rows:      f.cfg.Fetcher.Rows,
		Timeout:   f.cfg.Fetcher.Timeout,
	})
}

// initNotifier returns nil when Redis is not configured.
func (f *FxApp) initNotifier(ctx context.Context) service.Notifier {
	if f.cfg.Redis.Host == "" {
		slog.Info("Redis not configured, batch announcements disabled")
		return nil
	}

	options := &redisPack.Options{
		Addr:     f.cfg.Redis.Host,
		Password: f.cfg.Redis.Password,
		DB:       f.cfg.Redis.DB,
	}

	notifier, client, err := redis.InitNotifier(ctx, options, f.cfg.Redis.Channel)
	if err != nil {
		log.Fatalln("Failed to initialize Redis notifier", "error", err)
	}
	f.redisClient = client
	slog.Info("Redis client initialized", "channel", f.cfg.Redis.Channel)

	return notifier
}

func (f *FxApp) initService(fetcher service.QuoteFetcher, notifier service.Notifier) *service.Service {
	opts := []service.Option{service.WithConcurrency(f.cfg.Fetcher.Concurrency)}
	if notifier != nil {
		opts = append(opts, service.WithNotifier(notifier))
	}

	if limit := f.cfg.Fetcher.Concurrency; limit != service.ClampConcurrency(limit) {
		slog.Warn("FETCHER_CONCURRENCY out of range, clamped",
			"requested", limit,
			"used", service.ClampConcurrency(limit),
		)
	}

	fxService, err := service.NewService(fetcher, opts...)
	if err != nil {
		log.Fatalln("Failed to initialize service", "error", err)
	}

	return fxService
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
