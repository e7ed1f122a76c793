package votinghandlers

import "net/http"

// Handlers serves the voting endpoints.
type Handlers interface {
	HandleCastVote(w http.ResponseWriter, r *http.Request)
	HandleRetractVote(w http.ResponseWriter, r *http.Request)
	HandleToggleLike(w http.ResponseWriter, r *http.Request)
	HandleGetRanking(w http.ResponseWriter, r *http.Request)
}
