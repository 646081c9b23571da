package stats_collector

import (
	"github.com/Depado/ginprom"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const (
	DEFAULT_PROMETHEUS_NAMESPACE = "kulturharita"
)

type PrometheusConfig struct {
	Enabled    bool      `koanf:"enabled"`
	Token      string    `koanf:"token"`
	BucketSize []float64 `koanf:"bucket_size"`
	Namespace  string    `koanf:"namespace"`
}

func (cfg *PrometheusConfig) Validate() error {
	if !cfg.Enabled {
		return nil
	}
	return nil
}

func GetDefaultPrometheusConfig() PrometheusConfig {
	return PrometheusConfig{
		BucketSize: []float64{.00005, .000075, .0001, .00025, .0005, .00075, .001, .0025, .005, .01, .05, .1, .25, .5, 1, 2.5, 5, 10},
		Namespace:  DEFAULT_PROMETHEUS_NAMESPACE,
	}
}

var _ StatsCollector = (*PrometheusCollector)(nil)

type PrometheusCollector struct {
	config   PrometheusConfig
	registry *prometheus.Registry

	boundaryLoads    *prometheus.CounterVec
	selectionsServed *prometheus.CounterVec
	locateHits       prometheus.Counter
	locateMisses     prometheus.Counter
	regionsMatched   prometheus.Gauge
	regionsTotal     prometheus.Gauge
}

func (col *PrometheusCollector) Name() string {
	return "prometheus"
}

func (col *PrometheusCollector) RegisterGinEngine(engine *gin.Engine) {
	p := ginprom.New(
		ginprom.Engine(engine),
		ginprom.Registry(col.registry),
		ginprom.Subsystem("gin"),
		ginprom.Path("/metrics"),
		ginprom.Token(col.config.Token),
		ginprom.BucketSize(col.config.BucketSize),
	)
	engine.Use(p.Instrument())
}

func (col *PrometheusCollector) AddBoundariesLoaded(origin string) {
	col.boundaryLoads.WithLabelValues(origin).Inc()
}

func (col *PrometheusCollector) AddSelectionServed(source string) {
	col.selectionsServed.WithLabelValues(source).Inc()
}

func (col *PrometheusCollector) AddLocateHit(num uint64) {
	col.locateHits.Add(float64(num))
}

func (col *PrometheusCollector) AddLocateMiss(num uint64) {
	col.locateMisses.Add(float64(num))
}

func (col *PrometheusCollector) SetRegionsMatched(matched, total uint64) {
	col.regionsMatched.Set(float64(matched))
	col.regionsTotal.Set(float64(total))
}

func NewPrometheusCollector(config PrometheusConfig) StatsCollector {
	ns := config.Namespace
	if ns == "" {
		ns = DEFAULT_PROMETHEUS_NAMESPACE
	}

	registry := prometheus.NewRegistry()
	collector := &PrometheusCollector{
		config:   config,
		registry: registry,
		boundaryLoads: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: ns,
				Name:      "boundary_loads",
				Help:      "Total number of boundary collection loads by origin",
			},
			[]string{"origin"},
		),
		selectionsServed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: ns,
				Name:      "selections_served",
				Help:      "Total number of selections served by source",
			},
			[]string{"source"},
		),
		locateHits: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: ns,
				Name:      "locate_hits",
				Help:      "Total number of locate queries landing inside a region",
			},
		),
		locateMisses: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: ns,
				Name:      "locate_misses",
				Help:      "Total number of locate queries landing outside every region",
			},
		),
		regionsMatched: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: ns,
				Name:      "regions_matched",
				Help:      "Number of content rows matched to a boundary feature",
			},
		),
		regionsTotal: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: ns,
				Name:      "regions_total",
				Help:      "Number of content rows in the region table",
			},
		),
	}

	processOpts := collectors.ProcessCollectorOpts{
		Namespace: ns,
	}

	registry.MustRegister(
		collectors.NewProcessCollector(processOpts),
		collectors.NewGoCollector(
			collectors.WithGoCollectorRuntimeMetrics(
				collectors.MetricsGC,
				collectors.MetricsMemory,
			),
		),
		collector.boundaryLoads,
		collector.selectionsServed,
		collector.locateHits,
		collector.locateMisses,
		collector.regionsMatched,
		collector.regionsTotal,
	)

	return collector
}
