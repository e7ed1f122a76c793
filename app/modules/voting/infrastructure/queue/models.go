package votingqueue

// ReconcileScoresJob recomputes every cached submission score from its votes.
type ReconcileScoresJob struct{}

// Kind returns the job type identifier for River
func (ReconcileScoresJob) Kind() string { return "reconcile_scores" }
