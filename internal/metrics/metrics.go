// Package metrics exposes Prometheus collectors for the simulation and the
// sync protocol.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector bundles the simulation and protocol metrics on a private
// registry so tests can build collectors freely.
type Collector struct {
	registry *prometheus.Registry

	TicksTotal       prometheus.Counter
	KeplerIterations prometheus.Histogram
	UpdatesSentTotal prometheus.Counter
	UDPBytes         *prometheus.CounterVec
	WSMessages       *prometheus.CounterVec
	ConnectedClients prometheus.Gauge
	DroppedTotal     *prometheus.CounterVec
}

// NewCollector registers all collectors on a fresh registry.
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		TicksTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "simulation_ticks_total",
			Help: "Total simulation ticks advanced",
		}),
		KeplerIterations: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "kepler_iterations_per_tick",
			Help:    "Newton iterations spent solving Kepler's equation per tick",
			Buckets: prometheus.LinearBuckets(0, 20, 10),
		}),
		UpdatesSentTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "periodic_updates_sent_total",
			Help: "Periodic kinematic updates broadcast",
		}),
		UDPBytes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "udp_bytes_total",
			Help: "Bytes on the unreliable channel",
		}, []string{"direction"}),
		WSMessages: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ws_messages_total",
			Help: "Messages on the reliable channel by kind",
		}, []string{"kind", "direction"}),
		ConnectedClients: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "connected_clients",
			Help: "Currently connected replica peers",
		}),
		DroppedTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "dropped_messages_total",
			Help: "Inbound messages dropped by reason",
		}, []string{"reason"}),
	}
	c.registry.MustRegister(
		c.TicksTotal,
		c.KeplerIterations,
		c.UpdatesSentTotal,
		c.UDPBytes,
		c.WSMessages,
		c.ConnectedClients,
		c.DroppedTotal,
	)
	return c
}

// Handler returns the scrape handler for this collector's registry.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// Serve exposes /metrics on its own listener. Blocks.
func (c *Collector) Serve(addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", c.Handler())
	return http.ListenAndServe(addr, mux)
}
