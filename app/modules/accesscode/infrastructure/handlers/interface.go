package accesscodehandlers

import "net/http"

// Handlers serves the access code endpoints.
type Handlers interface {
	HandleGenerateCodes(w http.ResponseWriter, r *http.Request)
	HandleListCodes(w http.ResponseWriter, r *http.Request)
	HandleExportCodes(w http.ResponseWriter, r *http.Request)
	HandleValidateCode(w http.ResponseWriter, r *http.Request)
	HandleRedeemCode(w http.ResponseWriter, r *http.Request)
	HandleGetReferrals(w http.ResponseWriter, r *http.Request)
}
