package observability

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitWithWriter_Format(t *testing.T) {
	var buf bytes.Buffer
	obs := initWithWriter(Config{Environment: "production", LogLevel: "debug"}, &buf)
	obs.Provider.Logger.Debug("hello")
	assert.Contains(t, buf.String(), `"msg":"hello"`)

	buf.Reset()
	obs = initWithWriter(Config{Environment: "development"}, &buf)
	obs.Provider.Logger.Info("hello")
	assert.Contains(t, buf.String(), "msg=hello")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, parseLevel("warning"))
	assert.Equal(t, slog.LevelError, parseLevel("error"))
	assert.Equal(t, slog.LevelInfo, parseLevel(""))
}

func TestOperationMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewOperationMetrics(reg, "voting")
	ctx := context.Background()

	m.RecordOperationAttempt(ctx, "CastVote", "VotingService")
	m.RecordOperationAttempt(ctx, "CastVote", "VotingService")
	m.RecordOperationSuccess(ctx, "CastVote", "VotingService")
	m.RecordOperationFailure(ctx, "CastVote", "VotingService")
	m.RecordOperationDuration(ctx, "CastVote", "VotingService", 5*time.Millisecond)

	pm, ok := m.(*prometheusMetrics)
	require.True(t, ok)
	assert.Equal(t, float64(2), testutil.ToFloat64(pm.attempts.WithLabelValues("CastVote", "VotingService")))
	assert.Equal(t, float64(1), testutil.ToFloat64(pm.success.WithLabelValues("CastVote", "VotingService")))
	assert.Equal(t, float64(1), testutil.ToFloat64(pm.failures.WithLabelValues("CastVote", "VotingService")))
}
