// Package metrics exposes the RPZ trigger index's Prometheus collectors.
//
// The index core never imports this package: it publishes lifecycle and
// counter changes on the event bus (see package evt), and this package
// merely subscribes and translates them into collectors, keeping the
// index core decoupled from Prometheus entirely.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// nolint
var reg = prometheus.NewRegistry()

// nolint
var enabled bool

// RegisterMetric registers c with the package-level registry.
func RegisterMetric(c prometheus.Collector) {
	_ = reg.Register(c)
}

// Registry returns the registry backing this package, for wiring an HTTP
// exposition endpoint (out of scope for this module).
func Registry() *prometheus.Registry {
	return reg
}

// Start enables metric collection and registers event listeners. Callers
// that don't need metrics can simply never call Start: RegisterMetric calls
// still work but nothing reads the registry.
func Start(enable bool) {
	enabled = enable

	if enabled {
		reg.MustRegister(prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}))
		reg.MustRegister(prometheus.NewGoCollector())

		RegisterEventListeners()
	}
}

// IsEnabled reports whether Start(true) was called.
func IsEnabled() bool {
	return enabled
}
