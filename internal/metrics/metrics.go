// Package metrics wires github.com/prometheus/client_golang the way
// luxfi-dex/pkg/metrics/lux_metrics.go does: a struct of CounterVec/
// GaugeVec fields registered against a private prometheus.Registry,
// exposed over HTTP via promhttp on its own port, separate from the
// gRPC listen port.
package metrics

import (
	"context"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics is the process-lifetime set of observables named in
// SPEC_FULL.md §13.
type Metrics struct {
	registry *prometheus.Registry

	ParserTotal     *prometheus.CounterVec // no labels, but kept Vec for uniform Inc() call sites
	ParserErrors    *prometheus.CounterVec // labels: kind
	BookOrdersTotal *prometheus.GaugeVec   // labels: market
	BookSequence    *prometheus.GaugeVec   // labels: market
	BreakerState    prometheus.Gauge       // 0=Closed,1=Open,2=HalfOpen
	BroadcastLag    prometheus.Counter
	SubscriberCount prometheus.Gauge
	RPCRequests     *prometheus.CounterVec // labels: method, code
}

// New creates and registers every metric against a fresh registry.
func New() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,

		ParserTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bookstream",
			Name:      "parser_total",
			Help:      "Total ingress lines handed to the parser.",
		}, nil),

		ParserErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bookstream",
			Name:      "parser_errors_total",
			Help:      "Parser rejections by error kind.",
		}, []string{"kind"}),

		BookOrdersTotal: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "bookstream",
			Name:      "book_orders_total",
			Help:      "Resting order count per market.",
		}, []string{"market"}),

		BookSequence: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "bookstream",
			Name:      "book_sequence",
			Help:      "Current sequence counter per market.",
		}, []string{"market"}),

		BreakerState: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "bookstream",
			Name:      "breaker_state",
			Help:      "Circuit breaker state: 0=Closed, 1=Open, 2=HalfOpen.",
		}),

		BroadcastLag: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "bookstream",
			Name:      "broadcast_lag_events_total",
			Help:      "Total lag events observed by subscribers.",
		}),

		SubscriberCount: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "bookstream",
			Name:      "subscriber_active",
			Help:      "Currently connected SubscribeOrderbook streams.",
		}),

		RPCRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bookstream",
			Name:      "rpc_requests_total",
			Help:      "RPC calls by method and resulting status code.",
		}, []string{"method", "code"}),
	}

	registry.MustRegister(
		m.ParserTotal,
		m.ParserErrors,
		m.BookOrdersTotal,
		m.BookSequence,
		m.BreakerState,
		m.BroadcastLag,
		m.SubscriberCount,
		m.RPCRequests,
	)
	return m
}

// ServeHTTP starts the /metrics Prometheus endpoint on port and blocks
// until ctx is canceled, mirroring LXMetrics.StartServer's separation of
// the metrics listener from the gRPC listener.
func (m *Metrics) ServeHTTP(ctx context.Context, port int) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))

	srv := &http.Server{Addr: fmt.Sprintf(":%d", port), Handler: mux}
	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case <-ctx.Done():
		return srv.Close()
	case err := <-errCh:
		return err
	}
}

// RecordBreakerState maps a breaker state name to the documented gauge
// values. Accepts a string rather than importing internal/ingest, to
// avoid a dependency cycle between metrics and the component it observes.
func (m *Metrics) RecordBreakerState(state string) {
	switch state {
	case "open":
		m.BreakerState.Set(1)
	case "half_open":
		m.BreakerState.Set(2)
	default:
		m.BreakerState.Set(0)
	}
}
