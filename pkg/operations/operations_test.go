package operations

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/Black-And-White-Club/clip-arena/pkg/domainerr"
	"github.com/Black-And-White-Club/clip-arena/pkg/results"
	"github.com/stretchr/testify/assert"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace/noop"
)

func newTestRunner() *Runner {
	return NewRunner(
		"TestService",
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		nil,
		noop.NewTracerProvider().Tracer("test"),
		nil,
	)
}

func TestExecute(t *testing.T) {
	failure := domainerr.Conflict("already", "already happened")
	infra := errors.New("connection reset")

	tests := []struct {
		name       string
		fn         TxFunc[int]
		want       int
		wantErr    error
		wantAnyErr bool
	}{
		{
			name: "success",
			fn: func(ctx context.Context, db bun.IDB) (results.OperationResult[int, error], error) {
				return results.SuccessResult[int, error](7), nil
			},
			want: 7,
		},
		{
			name: "domain failure surfaces as error",
			fn: func(ctx context.Context, db bun.IDB) (results.OperationResult[int, error], error) {
				return results.FailureResult[int, error](failure), nil
			},
			wantErr: failure,
		},
		{
			name: "infrastructure error is wrapped",
			fn: func(ctx context.Context, db bun.IDB) (results.OperationResult[int, error], error) {
				return results.OperationResult[int, error]{}, infra
			},
			wantErr: infra,
		},
		{
			name: "empty result",
			fn: func(ctx context.Context, db bun.IDB) (results.OperationResult[int, error], error) {
				return results.OperationResult[int, error]{}, nil
			},
			wantAnyErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Execute(newTestRunner(), context.Background(), "Op", "id", tt.fn)
			if tt.wantAnyErr {
				assert.Error(t, err)
				return
			}
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWithTelemetry_RecoversPanic(t *testing.T) {
	r := newTestRunner()
	_, err := WithTelemetry(r, context.Background(), "Boom", "id", func(ctx context.Context) (results.OperationResult[int, error], error) {
		panic("kaboom")
	})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "panic in Boom")
}

func TestRunInTx_NilDBCallsThrough(t *testing.T) {
	r := newTestRunner()
	called := false
	res, err := RunInTx(r, context.Background(), func(ctx context.Context, db bun.IDB) (results.OperationResult[string, error], error) {
		called = true
		assert.Nil(t, db)
		return results.SuccessResult[string, error]("ok"), nil
	})
	assert.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, "ok", *res.Success)
}
