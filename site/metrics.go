package site

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics collects build statistics. The registry is exposed by the dev
// server at /metrics.
type Metrics struct {
	Registry *prometheus.Registry

	buildsTotal       prometheus.Counter
	pagesRendered     prometheus.Counter
	resourcesSelected prometheus.Gauge
	buildDuration     prometheus.Gauge
}

// NewMetrics creates and registers the build metrics.
func NewMetrics() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		buildsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "graphsite_builds_total",
			Help: "Number of site builds performed by this process.",
		}),
		pagesRendered: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "graphsite_pages_rendered_total",
			Help: "Number of pages rendered across all builds.",
		}),
		resourcesSelected: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "graphsite_resources_selected",
			Help: "Number of resources selected by the last build.",
		}),
		buildDuration: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "graphsite_build_duration_seconds",
			Help: "Wall-clock duration of the last build.",
		}),
	}
	m.Registry.MustRegister(m.buildsTotal, m.pagesRendered, m.resourcesSelected, m.buildDuration)
	return m
}

func (m *Metrics) observeBuild(resources, pages int, seconds float64) {
	m.buildsTotal.Inc()
	m.pagesRendered.Add(float64(pages))
	m.resourcesSelected.Set(float64(resources))
	m.buildDuration.Set(seconds)
}
