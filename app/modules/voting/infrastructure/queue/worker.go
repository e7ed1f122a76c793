package votingqueue

import (
	"context"
	"fmt"
	"log/slog"

	votingdomain "github.com/Black-And-White-Club/clip-arena/app/modules/voting/domain"
	"github.com/Black-And-White-Club/clip-arena/pkg/attr"
	"github.com/riverqueue/river"
)

// Reconciler is the part of the voting service the worker drives.
type Reconciler interface {
	ReconcileScores(ctx context.Context) (*votingdomain.ReconcileReport, error)
}

// ReconcileScoresWorker runs a full reconciliation pass per job.
type ReconcileScoresWorker struct {
	river.WorkerDefaults[ReconcileScoresJob]
	logger     *slog.Logger
	reconciler Reconciler
}

func NewReconcileScoresWorker(logger *slog.Logger, reconciler Reconciler) *ReconcileScoresWorker {
	return &ReconcileScoresWorker{logger: logger, reconciler: reconciler}
}

// Work returns an error when the pass could not run or no row reconciled.
// Partial failures are counted in the report and retried on the next tick.
func (w *ReconcileScoresWorker) Work(ctx context.Context, job *river.Job[ReconcileScoresJob]) error {
	report, err := w.reconciler.ReconcileScores(ctx)
	if err != nil {
		w.logger.ErrorContext(ctx, "Score reconciliation job failed", attr.Error(err))
		return fmt.Errorf("reconcile scores: %w", err)
	}

	if report.Failed > 0 {
		w.logger.WarnContext(ctx, "Score reconciliation left rows unreconciled",
			attr.Int("failed", report.Failed),
		)
	}
	return nil
}
