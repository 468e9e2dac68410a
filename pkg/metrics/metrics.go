package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dmitrymomot/toastkit/pkg/toast"
)

// categoryOther labels every category without a color of its own, which
// keeps the label set bounded whatever clients send.
const categoryOther = "other"

// Collector records toast activity.
type Collector struct {
	registry *prometheus.Registry

	shown         *prometheus.CounterVec
	removed       prometheus.Counter
	lifetime      prometheus.Histogram
	displayErrors *prometheus.CounterVec
	streams       prometheus.Gauge
	patches       *prometheus.CounterVec
	throttled     prometheus.Counter
}

// New creates a Collector and registers its metrics. It panics if the
// registry already holds metrics with the same names.
func New(opts ...Option) *Collector {
	o := options{
		namespace: DefaultNamespace,
		buckets:   []float64{0.5, 1, 2, 3, 3.5, 4, 5, 10},
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.registry == nil {
		o.registry = prometheus.NewRegistry()
	}
	if o.runtime {
		o.registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	factory := promauto.With(o.registry)
	return &Collector{
		registry: o.registry,

		shown: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   o.namespace,
			Name:        "toasts_shown_total",
			Help:        "Toasts put on screen, by category.",
			ConstLabels: o.constLabels,
		}, []string{"category"}),

		removed: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   o.namespace,
			Name:        "toasts_removed_total",
			Help:        "Toasts that completed their lifecycle.",
			ConstLabels: o.constLabels,
		}),

		lifetime: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   o.namespace,
			Name:        "toast_lifetime_seconds",
			Help:        "Time from showing a toast to removing it.",
			ConstLabels: o.constLabels,
			Buckets:     o.buckets,
		}),

		displayErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   o.namespace,
			Name:        "toast_display_errors_total",
			Help:        "Failed display updates, by lifecycle stage.",
			ConstLabels: o.constLabels,
		}, []string{"stage"}),

		streams: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   o.namespace,
			Name:        "toast_streams_active",
			Help:        "Pages currently connected to the toast stream.",
			ConstLabels: o.constLabels,
		}),

		patches: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   o.namespace,
			Name:        "toast_patches_sent_total",
			Help:        "Element patches written to connected pages, by operation.",
			ConstLabels: o.constLabels,
		}, []string{"op"}),

		throttled: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   o.namespace,
			Name:        "toast_requests_throttled_total",
			Help:        "Toast requests rejected by the rate limiter.",
			ConstLabels: o.constLabels,
		}),
	}
}

// Registry returns the registry the Collector writes to.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}

func (c *Collector) ToastShown(category string) {
	if c == nil {
		return
	}
	if toast.ColorFor(category) == toast.ColorDefault {
		category = categoryOther
	}
	c.shown.WithLabelValues(category).Inc()
}

func (c *Collector) ToastRemoved(lifetime time.Duration) {
	if c == nil {
		return
	}
	c.removed.Inc()
	c.lifetime.Observe(lifetime.Seconds())
}

func (c *Collector) DisplayFailed(stage string) {
	if c == nil {
		return
	}
	c.displayErrors.WithLabelValues(stage).Inc()
}

// StreamOpened counts a page connecting to the toast stream.
func (c *Collector) StreamOpened() {
	if c == nil {
		return
	}
	c.streams.Inc()
}

// StreamClosed counts a page disconnecting from the toast stream.
func (c *Collector) StreamClosed() {
	if c == nil {
		return
	}
	c.streams.Dec()
}

// PatchSent counts one patch written to a page.
func (c *Collector) PatchSent(op toast.Op) {
	if c == nil {
		return
	}
	c.patches.WithLabelValues(string(op)).Inc()
}

// Throttled counts a request rejected by the rate limiter.
func (c *Collector) Throttled() {
	if c == nil {
		return
	}
	c.throttled.Inc()
}

var _ toast.Recorder = (*Collector)(nil)
