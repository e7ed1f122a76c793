package submissionhandlers

import "net/http"

// Handlers serves the submission endpoints.
type Handlers interface {
	HandleSubmitClip(w http.ResponseWriter, r *http.Request)
	HandleListSubmissions(w http.ResponseWriter, r *http.Request)
	HandleGetSubmission(w http.ResponseWriter, r *http.Request)
	HandleModerateSubmission(w http.ResponseWriter, r *http.Request)
}
