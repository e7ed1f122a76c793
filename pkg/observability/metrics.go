package observability

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// OperationMetrics records the outcome of service operations.
type OperationMetrics interface {
	RecordOperationAttempt(ctx context.Context, operation, service string)
	RecordOperationSuccess(ctx context.Context, operation, service string)
	RecordOperationFailure(ctx context.Context, operation, service string)
	RecordOperationDuration(ctx context.Context, operation, service string, duration time.Duration)
}

type prometheusMetrics struct {
	attempts *prometheus.CounterVec
	success  *prometheus.CounterVec
	failures *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewOperationMetrics registers the operation collectors for one module on reg.
func NewOperationMetrics(reg prometheus.Registerer, module string) OperationMetrics {
	labels := []string{"operation", "service"}
	constLabels := prometheus.Labels{"module": module}

	m := &prometheusMetrics{
		attempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "clip_arena_operation_attempts_total",
			Help:        "Service operations started.",
			ConstLabels: constLabels,
		}, labels),
		success: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "clip_arena_operation_success_total",
			Help:        "Service operations that completed without an infrastructure error.",
			ConstLabels: constLabels,
		}, labels),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "clip_arena_operation_failures_total",
			Help:        "Service operations that failed with an infrastructure error or panic.",
			ConstLabels: constLabels,
		}, labels),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "clip_arena_operation_duration_seconds",
			Help:        "Service operation latency.",
			Buckets:     prometheus.DefBuckets,
			ConstLabels: constLabels,
		}, labels),
	}

	if reg != nil {
		reg.MustRegister(m.attempts, m.success, m.failures, m.duration)
	}
	return m
}

func (m *prometheusMetrics) RecordOperationAttempt(_ context.Context, operation, service string) {
	m.attempts.WithLabelValues(operation, service).Inc()
}

func (m *prometheusMetrics) RecordOperationSuccess(_ context.Context, operation, service string) {
	m.success.WithLabelValues(operation, service).Inc()
}

func (m *prometheusMetrics) RecordOperationFailure(_ context.Context, operation, service string) {
	m.failures.WithLabelValues(operation, service).Inc()
}

func (m *prometheusMetrics) RecordOperationDuration(_ context.Context, operation, service string, duration time.Duration) {
	m.duration.WithLabelValues(operation, service).Observe(duration.Seconds())
}

type noopMetrics struct{}

// NewNoopMetrics returns OperationMetrics that record nothing.
func NewNoopMetrics() OperationMetrics { return noopMetrics{} }

func (noopMetrics) RecordOperationAttempt(context.Context, string, string)                 {}
func (noopMetrics) RecordOperationSuccess(context.Context, string, string)                 {}
func (noopMetrics) RecordOperationFailure(context.Context, string, string)                 {}
func (noopMetrics) RecordOperationDuration(context.Context, string, string, time.Duration) {}
