package domain

import "errors"

// Authentication failures. All three collapse to "not authenticated" at the
// HTTP boundary but stay distinct for diagnostics and metrics.
var (
	ErrMissingToken    = errors.New("no access token present")
	ErrTokenInvalid    = errors.New("access token invalid")
	ErrTokenExpired    = errors.New("access token expired")
	ErrUnknownIdentity = errors.New("token identity matches no user")
)

// Authorization failures. Both collapse to "forbidden" at the HTTP boundary.
var (
	ErrDeactivated      = errors.New("account is deactivated")
	ErrInsufficientRole = errors.New("role does not permit this operation")
)

var (
	ErrInvalidCredentials = errors.New("invalid name or password")
	ErrTooManyAttempts    = errors.New("too many failed login attempts")
	ErrDuplicateUser      = errors.New("user with this name already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrGaugeNotFound      = errors.New("gauge not found")
	ErrInvalidRole        = errors.New("unrecognized role")
)
