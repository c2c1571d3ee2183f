package models

import "fmt"

// APIError carries an HTTP status plus a client-safe message. Controllers
// surface these through utils.RespondError; anything else becomes a 500.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("[%d] %s", e.Status, e.Message)
}

func NewAPIError(status int, message string) *APIError {
	return &APIError{Status: status, Message: message}
}

var (
	// Authentication: identity could not be established. Unknown email and
	// wrong password share one message on purpose.
	ErrInvalidCredentials = NewAPIError(401, "invalid email or password")
	ErrUnauthorized       = NewAPIError(401, "unauthorized request")
	ErrInvalidToken       = NewAPIError(401, "invalid or expired token")
	ErrRefreshMissing     = NewAPIError(401, "refresh token missing")
	ErrRefreshMismatch    = NewAPIError(401, "refresh token does not match")

	// Authorization: identity established but forbidden.
	ErrForbidden = NewAPIError(403, "you are not authorized to perform this action")

	ErrUserNotFound     = NewAPIError(404, "user not found")
	ErrPropertyNotFound = NewAPIError(404, "property not found")
	ErrPhotoNotFound    = NewAPIError(404, "photo not found")
	ErrVideoNotFound    = NewAPIError(404, "video not found")
	ErrInquiryNotFound  = NewAPIError(404, "inquiry not found")

	ErrEmailTaken = NewAPIError(409, "email already registered")
)

// Token verification outcomes from the codec. Both collapse to a 401 at the
// HTTP boundary but stay distinct for callers that care.
var (
	ErrTokenExpired = NewAPIError(401, "token expired")
	ErrTokenInvalid = NewAPIError(401, "invalid token signature")
	ErrUploadFailed = NewAPIError(500, "upload failed")
)

func NewQuotaError(kind string, limit int) *APIError {
	return NewAPIError(400, fmt.Sprintf("cannot attach more than %d %s", limit, kind))
}

func NewRateLimitedError(minutes int) *APIError {
	return NewAPIError(429, fmt.Sprintf("you can send another inquiry for this property after %d minutes", minutes))
}
