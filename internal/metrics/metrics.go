// Package metrics registers the daemon's Prometheus collectors.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics groups the collectors. Each instance owns its registry so tests can
// create as many as they like.
type Metrics struct {
	registry *prometheus.Registry

	RPCRequests *prometheus.CounterVec
	RPCDuration *prometheus.HistogramVec
	Logins      *prometheus.CounterVec
	Bookings    *prometheus.CounterVec
	SeatsBooked prometheus.Counter
}

// New creates and registers all collectors, plus the Go and process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		RPCRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "cinebook",
			Name:      "rpc_requests_total",
			Help:      "RPC calls by procedure and Connect code.",
		}, []string{"procedure", "code"}),
		RPCDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "cinebook",
			Name:      "rpc_duration_seconds",
			Help:      "RPC latency by procedure.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"procedure"}),
		Logins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "cinebook",
			Name:      "logins_total",
			Help:      "Login attempts by result.",
		}, []string{"result"}),
		Bookings: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "cinebook",
			Name:      "bookings_total",
			Help:      "Booking confirmations by result.",
		}, []string{"result"}),
		SeatsBooked: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "cinebook",
			Name:      "seats_booked_total",
			Help:      "Seats on confirmed tickets.",
		}),
	}
	m.registry.MustRegister(
		m.RPCRequests, m.RPCDuration, m.Logins, m.Bookings, m.SeatsBooked,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry exposes the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) ObserveLogin(ok bool) {
	m.Logins.WithLabelValues(result(ok)).Inc()
}

func (m *Metrics) ObserveBooking(seats int, ok bool) {
	m.Bookings.WithLabelValues(result(ok)).Inc()
	if ok {
		m.SeatsBooked.Add(float64(seats))
	}
}

func result(ok bool) string {
	if ok {
		return "success"
	}
	return "failure"
}
