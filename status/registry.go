// Package status exposes frame and population metrics through a private
// Prometheus registry. The driver caches the collectors at construction and
// writes them once per frame.
package status

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lixenwraith/antigravity/core"
)

const namespace = "antigravity"

// Registry is the central metrics facade
type Registry struct {
	reg *prometheus.Registry

	Frames       prometheus.Counter
	Recounts     prometheus.Counter
	ThemeChanges prometheus.Counter
	Particles    prometheus.Gauge
	Connections  prometheus.Gauge
	PointerMode  prometheus.Gauge
	FrameSeconds prometheus.Histogram
}

// NewRegistry creates and registers all collectors
func NewRegistry() *Registry {
	r := &Registry{
		reg: prometheus.NewRegistry(),
		Frames: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "frames_total",
			Help:      "Simulation frames executed",
		}),
		Recounts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "recounts_total",
			Help:      "Wholesale particle set recreations on device class change",
		}),
		ThemeChanges: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "theme_changes_total",
			Help:      "Palette reassignments applied to the running field",
		}),
		Particles: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "particles",
			Help:      "Current particle population",
		}),
		Connections: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "connections",
			Help:      "Connection lines drawn in the last frame",
		}),
		PointerMode: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "pointer_mode",
			Help:      "Pointer force mode: 0 none, 1 repel, 2 attract",
		}),
		FrameSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "frame_seconds",
			Help:      "Wall time spent simulating and recording one frame",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 2, 12),
		}),
	}

	r.reg.MustRegister(
		r.Frames,
		r.Recounts,
		r.ThemeChanges,
		r.Particles,
		r.Connections,
		r.PointerMode,
		r.FrameSeconds,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return r
}

// ObserveFrame records one frame's outcome
func (r *Registry) ObserveFrame(seconds float64, particles, connections int, mode core.PointerMode) {
	r.Frames.Inc()
	r.FrameSeconds.Observe(seconds)
	r.Particles.Set(float64(particles))
	r.Connections.Set(float64(connections))
	r.PointerMode.Set(float64(mode))
}

// Gatherer returns the underlying registry for scraping or tests
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.reg
}

// Handler serves the registry in the Prometheus exposition format
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{})
}
