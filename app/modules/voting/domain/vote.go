package votingdomain

import (
	"time"

	"github.com/google/uuid"
)

// pointsByRank maps a ranked choice to the points it awards.
var pointsByRank = map[int]int{
	1: 3,
	2: 2,
	3: 1,
}

// PointsForRank returns the points a rank awards and whether the rank is valid.
func PointsForRank(rank int) (int, bool) {
	p, ok := pointsByRank[rank]
	return p, ok
}

// ValidateRank rejects anything outside 1..3.
func ValidateRank(rank int) error {
	if _, ok := PointsForRank(rank); !ok {
		return ErrInvalidRank
	}
	return nil
}

// ScoreOf sums the points of a vote set. Unknown ranks contribute nothing;
// storage constrains rank to 1..3.
func ScoreOf(ranks []int) int {
	total := 0
	for _, r := range ranks {
		p, _ := PointsForRank(r)
		total += p
	}
	return total
}

// Vote is one voter's ranked choice for one submission.
type Vote struct {
	ID           uuid.UUID `json:"id"`
	SubmissionID uuid.UUID `json:"submission_id"`
	VoterID      uuid.UUID `json:"voter_id"`
	Rank         int       `json:"rank"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// VoteResult is returned by cast and retract.
type VoteResult struct {
	SubmissionID uuid.UUID `json:"submission_id"`
	Score        int       `json:"score"`
	Rank         *int      `json:"rank,omitempty"`
}

// LikeResult is returned by toggle.
type LikeResult struct {
	SubmissionID uuid.UUID `json:"submission_id"`
	Liked        bool      `json:"liked"`
	Likes        int       `json:"likes"`
}

// ReconcileReport summarizes a reconciliation pass.
type ReconcileReport struct {
	Checked   int `json:"checked"`
	Corrected int `json:"corrected"`
	Failed    int `json:"failed"`
}

// Rules are the optional voting constraints.
type Rules struct {
	// PreventSelfVote rejects votes on one's own submission.
	PreventSelfVote bool
	// ExclusiveRanks lets a voter hold each rank at most once per tournament.
	ExclusiveRanks bool
}
