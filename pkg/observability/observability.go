// Package observability bundles the logger, tracer and metrics registry that
// every module receives at construction time.
package observability

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// Config selects the logger format and level.
type Config struct {
	ServiceName string
	Environment string
	LogLevel    string
}

// Provider exposes the process logger.
type Provider struct {
	Logger *slog.Logger
}

// Registry exposes tracing and the Prometheus registry.
type Registry struct {
	Tracer     trace.Tracer
	Prometheus *prometheus.Registry
}

// Observability is passed to every module constructor.
type Observability struct {
	Provider Provider
	Registry Registry
}

// Init builds the process observability stack. Development environments log
// text, everything else logs JSON.
func Init(cfg Config) Observability {
	return initWithWriter(cfg, os.Stdout)
}

func initWithWriter(cfg Config, w io.Writer) Observability {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.LogLevel)}

	var handler slog.Handler
	if cfg.Environment == "development" {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}

	name := cfg.ServiceName
	if name == "" {
		name = "clip-arena"
	}
	logger := slog.New(handler).With(
		slog.String("service", name),
		slog.String("environment", cfg.Environment),
	)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return Observability{
		Provider: Provider{Logger: logger},
		Registry: Registry{
			Tracer:     otel.Tracer(name),
			Prometheus: reg,
		},
	}
}

// NewNoop returns an Observability that discards everything. Used in tests.
func NewNoop() Observability {
	return Observability{
		Provider: Provider{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))},
		Registry: Registry{
			Tracer:     noop.NewTracerProvider().Tracer("noop"),
			Prometheus: prometheus.NewRegistry(),
		},
	}
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
