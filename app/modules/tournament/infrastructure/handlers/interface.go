package tournamenthandlers

import "net/http"

// Handlers serves the tournament endpoints.
type Handlers interface {
	HandleCreateTournament(w http.ResponseWriter, r *http.Request)
	HandleUpdateStatus(w http.ResponseWriter, r *http.Request)
	HandleGetTournament(w http.ResponseWriter, r *http.Request)
	HandleListTournaments(w http.ResponseWriter, r *http.Request)
}
