package authhandlers

import "net/http"

// Handlers is the HTTP gate placed in front of every protected route.
type Handlers interface {
	// Authenticate resolves the bearer token into an actor on the request context.
	Authenticate(next http.Handler) http.Handler

	// RequireApproved rejects actors whose account is still on the waitlist.
	RequireApproved(next http.Handler) http.Handler
}
