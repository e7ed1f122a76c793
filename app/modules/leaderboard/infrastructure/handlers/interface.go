package leaderboardhandlers

import "net/http"

// Handlers serves the leaderboard endpoints.
type Handlers interface {
	HandleGetLeaderboard(w http.ResponseWriter, r *http.Request)
	HandleGetLeaderboardChart(w http.ResponseWriter, r *http.Request)
}
