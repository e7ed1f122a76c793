package accesscodedomain

import "github.com/Black-And-White-Club/clip-arena/pkg/domainerr"

var (
	ErrInvalidQuantity = domainerr.Validation("invalid_quantity", "quantity must be at least 1 and at most the configured maximum")
	ErrInvalidExpiry   = domainerr.Validation("invalid_expiry", "expiry days must be at least 1 for admin codes")
	ErrCodeNotFound    = domainerr.NotFound("code_not_found", "access code not found")
	ErrCodeExpired     = domainerr.Conflict("code_expired", "access code has expired")
	ErrCodeAlreadyUsed = domainerr.Conflict("code_already_used", "access code has already been used")
	ErrForbidden       = domainerr.Forbidden("forbidden", "only approved users may issue access codes")
	ErrSelfRedemption  = domainerr.Forbidden("self_redemption", "cannot redeem an access code you issued")
)
