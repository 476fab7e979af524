// Package metrics records observability events as Prometheus metrics.
package metrics

import (
	"context"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/matzehuels/pathfinder/pkg/observability"
)

// Metrics implements the observability hook interfaces.
type Metrics struct {
	queries       *prometheus.CounterVec
	queryDuration prometheus.Histogram
	graphNodes    prometheus.Histogram
	graphEdges    prometheus.Histogram
	cacheEvents   *prometheus.CounterVec
	cacheBytes    prometheus.Counter
	requests      *prometheus.CounterVec
	reqDuration   *prometheus.HistogramVec
}

// New registers the pathfinder metrics with reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		queries: f.NewCounterVec(prometheus.CounterOpts{
			Name: "pathfinder_queries_total",
			Help: "Shortest-path queries by outcome",
		}, []string{"status"}),
		queryDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "pathfinder_query_duration_seconds",
			Help:    "Time spent answering a query, including cache lookups",
			Buckets: []float64{0.00001, 0.0001, 0.001, 0.01, 0.1, 1},
		}),
		graphNodes: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "pathfinder_graph_nodes",
			Help:    "Nodes per submitted graph",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8),
		}),
		graphEdges: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "pathfinder_graph_edges",
			Help:    "Directed edges per submitted graph",
			Buckets: prometheus.ExponentialBuckets(1, 4, 9),
		}),
		cacheEvents: f.NewCounterVec(prometheus.CounterOpts{
			Name: "pathfinder_cache_events_total",
			Help: "Cache hits, misses and writes",
		}, []string{"key_type", "event"}),
		cacheBytes: f.NewCounter(prometheus.CounterOpts{
			Name: "pathfinder_cache_written_bytes_total",
			Help: "Bytes written to the result cache",
		}),
		requests: f.NewCounterVec(prometheus.CounterOpts{
			Name: "pathfinder_http_requests_total",
			Help: "HTTP requests by route and status code",
		}, []string{"method", "route", "code"}),
		reqDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "pathfinder_http_request_duration_seconds",
			Help:    "HTTP request latency by route",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
}

// Register installs m as the solver, cache and HTTP hooks.
func (m *Metrics) Register() {
	observability.SetSolverHooks(m)
	observability.SetCacheHooks(m)
	observability.SetHTTPHooks(m)
}

func (m *Metrics) OnSolveStart(_ context.Context, nodes, edges int) {
	m.graphNodes.Observe(float64(nodes))
	m.graphEdges.Observe(float64(edges))
}

func (m *Metrics) OnSolveComplete(_ context.Context, status string, d time.Duration, err error) {
	if err != nil {
		status = "error"
	}
	m.queries.WithLabelValues(status).Inc()
	m.queryDuration.Observe(d.Seconds())
}

func (m *Metrics) OnCacheHit(_ context.Context, keyType string) {
	m.cacheEvents.WithLabelValues(keyType, "hit").Inc()
}

func (m *Metrics) OnCacheMiss(_ context.Context, keyType string) {
	m.cacheEvents.WithLabelValues(keyType, "miss").Inc()
}

func (m *Metrics) OnCacheSet(_ context.Context, keyType string, size int) {
	m.cacheEvents.WithLabelValues(keyType, "set").Inc()
	m.cacheBytes.Add(float64(size))
}

func (m *Metrics) OnResponse(_ context.Context, method, route string, code int, d time.Duration) {
	m.requests.WithLabelValues(method, route, strconv.Itoa(code)).Inc()
	m.reqDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

var (
	_ observability.SolverHooks = (*Metrics)(nil)
	_ observability.CacheHooks  = (*Metrics)(nil)
	_ observability.HTTPHooks   = (*Metrics)(nil)
)
