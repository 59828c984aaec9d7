package app

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/hyperifyio/mdrender/internal/htmlblock"
	"github.com/hyperifyio/mdrender/internal/render"
)

// Metrics holds the render counters on a private registry. It is a
// render.Observer and safe for concurrent use.
type Metrics struct {
	registry       *prometheus.Registry
	blocks         *prometheus.CounterVec
	htmlFallbacks  *prometheus.CounterVec
	tableStrategy  *prometheus.CounterVec
	filesRendered  *prometheus.CounterVec
	renderFailures prometheus.Counter
	renderSeconds  prometheus.Histogram
}

// NewMetrics registers all collectors on a fresh registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		blocks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "mdrender",
			Name:      "blocks_total",
			Help:      "Blocks rendered, by block kind.",
		}, []string{"kind"}),
		htmlFallbacks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "mdrender",
			Name:      "html_fallbacks_total",
			Help:      "Raw HTML blocks interpreted, by sniffed category.",
		}, []string{"category"}),
		tableStrategy: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "mdrender",
			Name:      "table_strategy_total",
			Help:      "Tables rendered, by layout strategy.",
		}, []string{"strategy"}),
		filesRendered: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "mdrender",
			Name:      "files_rendered_total",
			Help:      "Output files written, by format.",
		}, []string{"format"}),
		renderFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "mdrender",
			Name:      "render_failures_total",
			Help:      "Inputs that failed to render.",
		}),
		renderSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "mdrender",
			Name:      "render_duration_seconds",
			Help:      "Time to parse and render one input.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 8),
		}),
	}
	m.registry.MustRegister(m.blocks, m.htmlFallbacks, m.tableStrategy, m.filesRendered, m.renderFailures, m.renderSeconds)
	return m
}

func (m *Metrics) Block(kind string) { m.blocks.WithLabelValues(kind).Inc() }

func (m *Metrics) HTMLFallback(c htmlblock.Category) {
	m.htmlFallbacks.WithLabelValues(c.String()).Inc()
}

func (m *Metrics) TableStrategy(name string) { m.tableStrategy.WithLabelValues(name).Inc() }

// Registry exposes the private registry, e.g. for promhttp or tests.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// WriteFile dumps the registry in the text exposition format, atomically.
func (m *Metrics) WriteFile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}

// observers fans renderer callbacks out to several observers.
type observers []render.Observer

func (o observers) Block(kind string) {
	for _, x := range o {
		x.Block(kind)
	}
}

func (o observers) HTMLFallback(c htmlblock.Category) {
	for _, x := range o {
		x.HTMLFallback(c)
	}
}

func (o observers) TableStrategy(name string) {
	for _, x := range o {
		x.TableStrategy(name)
	}
}
