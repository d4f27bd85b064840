package bareun

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

// Metrics records per-method call counts and latency of SDK calls.
type Metrics struct {
	calls   *prometheus.CounterVec
	latency *prometheus.HistogramVec
}

// NewMetrics registers the client collectors with reg. A nil reg uses the default registry.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(reg)
	return &Metrics{
		calls: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "bareun",
				Subsystem: "client",
				Name:      "calls_total",
				Help:      "Total number of Bareun RPCs by method and status code.",
			},
			[]string{"method", "code"},
		),
		latency: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "bareun",
				Subsystem: "client",
				Name:      "call_duration_seconds",
				Help:      "Bareun RPC latency in seconds.",
				Buckets:   prometheus.ExponentialBuckets(0.005, 2, 12), // 5ms to ~10s
			},
			[]string{"method"},
		),
	}
}

// UnaryClientInterceptor observes every unary call made on the connection.
func (m *Metrics) UnaryClientInterceptor() grpc.UnaryClientInterceptor {
	return func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
		start := time.Now()
		err := invoker(ctx, method, req, reply, cc, opts...)
		m.latency.WithLabelValues(method).Observe(time.Since(start).Seconds())
		m.calls.WithLabelValues(method, status.Code(err).String()).Inc()
		return err
	}
}
