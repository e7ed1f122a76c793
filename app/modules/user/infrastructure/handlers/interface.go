package userhandlers

import "net/http"

// Handlers serves the user account endpoints.
type Handlers interface {
	HandleGetMe(w http.ResponseWriter, r *http.Request)
	HandleListWaitlist(w http.ResponseWriter, r *http.Request)
	HandleApproveUser(w http.ResponseWriter, r *http.Request)
}
