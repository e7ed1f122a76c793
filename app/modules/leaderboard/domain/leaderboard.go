package leaderboarddomain

import (
	"cmp"
	"slices"

	"github.com/Black-And-White-Club/clip-arena/pkg/domainerr"
	"github.com/google/uuid"
)

// ErrAggregationUnavailable is returned when the vote aggregate could not be
// read. Callers render an empty state; there is no cached fallback.
var ErrAggregationUnavailable = domainerr.Unavailable("aggregation_unavailable", "leaderboard data is unavailable")

// Entry is one user's line on the global leaderboard.
type Entry struct {
	UserID                  uuid.UUID `json:"user_id"`
	DisplayName             string    `json:"display_name"`
	TotalVotesReceived      int       `json:"total_votes_received"`
	ApprovedSubmissionCount int       `json:"approved_submission_count"`
	Rank                    int       `json:"rank"`
}

// compareEntries orders by votes desc, approved submissions desc, then user
// id asc so equal stats still produce a total order.
func compareEntries(a, b Entry) int {
	if c := cmp.Compare(b.TotalVotesReceived, a.TotalVotesReceived); c != 0 {
		return c
	}
	if c := cmp.Compare(b.ApprovedSubmissionCount, a.ApprovedSubmissionCount); c != 0 {
		return c
	}
	return slices.Compare(a.UserID[:], b.UserID[:])
}

// Rank sorts entries in place and assigns 1-based sequential ranks. Ties
// never share a rank.
func Rank(entries []Entry) []Entry {
	slices.SortFunc(entries, compareEntries)
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries
}
