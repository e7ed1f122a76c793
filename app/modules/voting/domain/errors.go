package votingdomain

import "github.com/Black-And-White-Club/clip-arena/pkg/domainerr"

var (
	ErrInvalidRank           = domainerr.Validation("invalid_rank", "rank must be 1, 2 or 3")
	ErrSubmissionNotApproved = domainerr.Conflict("submission_not_approved", "votes can only be cast on approved submissions")
	ErrSelfVote              = domainerr.Forbidden("self_vote_not_allowed", "you cannot vote on your own submission")
	ErrRankAlreadyAssigned   = domainerr.Conflict("rank_already_assigned", "you have already given this rank to another submission in this tournament")
	ErrVoteNotFound          = domainerr.NotFound("vote_not_found", "you have not voted on this submission")
)
