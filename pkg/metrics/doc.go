// Package metrics exposes toast activity as Prometheus metrics.
//
// A Collector owns its registry, so several can coexist in tests. It
// satisfies toast.Recorder and carries the counters the web layer updates
// for streams, relayed patches and throttled requests:
//
//	m := metrics.New(metrics.WithNamespace("toastkit"))
//	notifier := toast.New(display, toast.WithRecorder(m))
//	r.Handle("/metrics", m.Handler())
//
// All methods are safe on a nil *Collector, which records nothing.
package metrics
