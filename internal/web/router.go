package web

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/dmitrymomot/toastkit/handler"
	"github.com/dmitrymomot/toastkit/pkg/broadcast"
	"github.com/dmitrymomot/toastkit/pkg/clientip"
	"github.com/dmitrymomot/toastkit/pkg/environment"
	"github.com/dmitrymomot/toastkit/pkg/flash"
	"github.com/dmitrymomot/toastkit/pkg/httpserver"
	"github.com/dmitrymomot/toastkit/pkg/logger"
	"github.com/dmitrymomot/toastkit/pkg/metrics"
	"github.com/dmitrymomot/toastkit/pkg/ratelimiter"
	"github.com/dmitrymomot/toastkit/pkg/toast"
)

// Deps are the services the routes need.
type Deps struct {
	AppName  string
	Env      environment.Environment
	Log      *slog.Logger
	Notifier *toast.Notifier
	Hub      *broadcast.Hub[toast.Patch]
	Flash    *flash.Store
	// NewPageID names each rendered page. Defaults to a random UUID.
	NewPageID func() string
	// Limiter throttles the toast endpoints per client IP. Nil disables it.
	Limiter ratelimiter.RateLimiter
	// Metrics records stream activity and serves /metrics. Nil disables it.
	Metrics *metrics.Collector
}

// NewRouter wires the demo routes.
func NewRouter(d Deps) http.Handler {
	if d.Log == nil {
		d.Log = logger.Discard()
	}
	if d.AppName == "" {
		d.AppName = "toastkit"
	}
	if d.NewPageID == nil {
		d.NewPageID = uuid.NewString
	}
	h := &handlers{deps: d, errs: handler.NewErrorHandler(d.Log, d.Notifier)}

	r := chi.NewRouter()
	r.Use(
		middleware.RequestID,
		middleware.Recoverer,
		environment.Middleware(d.Env),
		scopeToPage,
	)

	r.Get("/", handler.Wrap(h.index, handler.WithErrorHandler[struct{}](h.errs)))
	r.Get("/toasts/stream", handler.Wrap(h.stream, handler.WithErrorHandler[struct{}](h.errs)))
	r.Get("/healthz", httpserver.HealthCheckHandler(d.Log, h.hubOpen))
	if d.Metrics != nil {
		r.Handle("/metrics", d.Metrics.Handler())
	}

	r.Group(func(r chi.Router) {
		if d.Limiter != nil {
			r.Use(ratelimiter.Middleware(d.Limiter, clientip.GetIP,
				ratelimiter.WithDeniedHandler(h.tooManyRequests),
			))
		}

		r.Post("/toasts", handler.Wrap(h.show,
			handler.WithBinders[showRequest](handler.Signals()),
			handler.WithErrorHandler[showRequest](h.errs),
		))
		r.Post("/toasts/flash", handler.Wrap(h.flash,
			handler.WithBinders[showRequest](bindForm),
			handler.WithErrorHandler[showRequest](h.errs),
		))
	})

	return r
}

func (h *handlers) hubOpen(context.Context) error {
	if h.deps.Hub.Closed() {
		return broadcast.ErrClosed
	}
	return nil
}

// RequestIDExtractor adds the chi request id to log records made with a
// request context.
func RequestIDExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		if id := middleware.GetReqID(ctx); id != "" {
			return logger.RequestID(id), true
		}
		return slog.Attr{}, false
	}
}
