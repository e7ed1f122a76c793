package votingdomain

import "github.com/google/uuid"

const (
	VoteCastTopic      = "vote.cast.v1"
	VoteRetractedTopic = "vote.retracted.v1"
)

// VoteCastPayload is the body of VoteCastTopic.
type VoteCastPayload struct {
	SubmissionID uuid.UUID `json:"submission_id"`
	VoterID      uuid.UUID `json:"voter_id"`
	Rank         int       `json:"rank"`
	Score        int       `json:"score"`
}

// VoteRetractedPayload is the body of VoteRetractedTopic.
type VoteRetractedPayload struct {
	SubmissionID uuid.UUID `json:"submission_id"`
	VoterID      uuid.UUID `json:"voter_id"`
	Score        int       `json:"score"`
}
