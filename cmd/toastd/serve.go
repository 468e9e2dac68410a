package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/toastkit/internal/web"
	"github.com/dmitrymomot/toastkit/pkg/broadcast"
	"github.com/dmitrymomot/toastkit/pkg/config"
	"github.com/dmitrymomot/toastkit/pkg/cookie"
	"github.com/dmitrymomot/toastkit/pkg/environment"
	"github.com/dmitrymomot/toastkit/pkg/flash"
	"github.com/dmitrymomot/toastkit/pkg/httpserver"
	"github.com/dmitrymomot/toastkit/pkg/logger"
	"github.com/dmitrymomot/toastkit/pkg/metrics"
	"github.com/dmitrymomot/toastkit/pkg/ratelimiter"
	"github.com/dmitrymomot/toastkit/pkg/toast"
)

type appConfig struct {
	AppName string `env:"APP_NAME" envDefault:"toastkit"`
	Env     string `env:"APP_ENV" envDefault:"development"`
	Metrics bool   `env:"METRICS_ENABLED" envDefault:"true"`

	HTTP      httpserver.Config
	Cookie    cookie.Config
	Toast     toast.Config
	RateLimit ratelimiter.Config
}

func serveCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Long: `Start the HTTP server and block until SIGINT or SIGTERM.

Examples:
  toastd serve
  toastd serve --addr=127.0.0.1:3000`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "", "Listen address (overrides HTTP_ADDR)")

	return cmd
}

func runServe(ctx context.Context, addr string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		return err
	}
	if addr != "" {
		cfg.HTTP.Addr = addr
	}
	env := environment.Parse(cfg.Env)

	log := logger.New(
		logger.WithEnvironment(env, cfg.AppName),
		logger.WithContextExtractors(
			web.RequestIDExtractor(),
		),
	)
	slog.SetDefault(log)

	var collector *metrics.Collector
	if cfg.Metrics {
		collector = metrics.New(
			metrics.WithRuntimeMetrics(),
			metrics.WithConstLabels(prometheus.Labels{"env": string(env)}),
		)
	}

	hub := broadcast.NewHub[toast.Patch](cfg.Toast.BufferSize)
	defer hub.Close()

	notifier := toast.NewFromConfig(cfg.Toast, toast.NewBroadcastDisplay(hub),
		toast.WithLogger(log),
		toast.WithRecorder(collector),
	)

	var cookieOpts []cookie.Option
	if env.IsProduction() {
		cookieOpts = append(cookieOpts, cookie.WithSecure(true))
	}
	cookies, err := cookie.NewFromConfig(cfg.Cookie, cookieOpts...)
	if err != nil {
		return fmt.Errorf("cookies: %w", err)
	}

	buckets := ratelimiter.NewMemoryStore()
	defer buckets.Close()
	limiter, err := ratelimiter.NewBucket(buckets, cfg.RateLimit)
	if err != nil {
		return fmt.Errorf("rate limiter: %w", err)
	}

	router := web.NewRouter(web.Deps{
		AppName:  cfg.AppName,
		Env:      env,
		Log:      log,
		Notifier: notifier,
		Hub:      hub,
		Flash:    flash.New(cookies),
		Limiter:  limiter,
		Metrics:  collector,
	})

	srv := httpserver.NewFromConfig(cfg.HTTP,
		httpserver.WithLogger(log),
		httpserver.WithStopHook(func(ctx context.Context, log *slog.Logger) {
			// Ends the relays of any stream that outlived shutdown.
			_ = hub.Close()
		}),
	)
	return srv.Run(ctx, router)
}
