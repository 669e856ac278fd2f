package models

// Stable machine-readable error kinds returned in API error bodies.
// Clients are expected to branch on Kind, not on Message wording.
const (
	KindValidationError    = "validation_error"
	KindDuplicateEmail     = "duplicate_email"
	KindInvalidCredentials = "invalid_credentials"
	KindUnauthorized       = "unauthorized"
	KindForbidden          = "forbidden"
	KindNotFound           = "not_found"
	KindRateLimited        = "rate_limited"
	KindInternalError      = "internal_error"
)

// ErrorResponse is the uniform JSON body of every non-2xx API response.
type ErrorResponse struct {
	// Kind is a stable machine-readable error discriminator,
	// one of the Kind* constants.
	Kind string `json:"kind"`

	// Message is a human-readable description of the failure.
	Message string `json:"message"`
}

// LoginResponse is the body of a successful POST /api/auth/login call.
// User is the public projection: the password hash is never included.
type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// RegisterResponse is the body of a successful POST /api/auth/register call.
// Registration does not auto-login, so no token is issued here.
type RegisterResponse struct {
	User User `json:"user"`
}
