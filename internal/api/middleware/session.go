package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/gaugeworks/gauge-registry/internal/api/metrics"
	"github.com/gaugeworks/gauge-registry/internal/core/domain"
	"github.com/gaugeworks/gauge-registry/internal/core/ports"
	"github.com/gaugeworks/gauge-registry/internal/token"
)

// sessionKey is the echo context key under which the resolved SessionView is
// stored for handlers and templates.
const sessionKey = "session"

// Resolver turns the access cookie of an inbound request into a SessionView:
// decode the token, extract the display name, look the user up by exact name.
// The three failure points (missing cookie, undecodable token, unknown user)
// all surface as "not authenticated" outward but are logged and counted
// separately.
type Resolver struct {
	codec      *token.Codec
	users      ports.UserRepository
	cookieName string
	logger     zerolog.Logger
}

func NewResolver(codec *token.Codec, users ports.UserRepository, cookieName string, logger zerolog.Logger) *Resolver {
	return &Resolver{codec: codec, users: users, cookieName: cookieName, logger: logger}
}

// resolve maps the request to a SessionView or one of the authentication
// sentinels (ErrMissingToken, ErrTokenInvalid, ErrTokenExpired,
// ErrUnknownIdentity).
func (r *Resolver) resolve(c echo.Context) (domain.SessionView, error) {
	cookie, err := c.Cookie(r.cookieName)
	if err != nil || cookie.Value == "" {
		return domain.SessionView{}, domain.ErrMissingToken
	}

	claims, err := r.codec.Decode(cookie.Value)
	if err != nil {
		return domain.SessionView{}, err
	}

	user, err := r.users.FindByName(c.Request().Context(), claims.FullName)
	if err != nil {
		if err == domain.ErrUserNotFound {
			return domain.SessionView{}, domain.ErrUnknownIdentity
		}
		return domain.SessionView{}, err
	}

	return user.View(), nil
}

// reject logs and counts an authentication or authorization refusal, then
// hands the sentinel to the central error handler for status mapping.
func (r *Resolver) reject(c echo.Context, err error) error {
	reason := rejectionReason(err)
	metrics.AuthRejectionsTotal.WithLabelValues(reason).Inc()
	r.logger.Debug().
		Str("reason", reason).
		Str("path", c.Request().URL.Path).
		Msg("request rejected")
	return err
}

func rejectionReason(err error) string {
	switch err {
	case domain.ErrMissingToken:
		return "missing_token"
	case domain.ErrTokenInvalid:
		return "invalid_token"
	case domain.ErrTokenExpired:
		return "expired_token"
	case domain.ErrUnknownIdentity:
		return "unknown_user"
	case domain.ErrDeactivated:
		return "deactivated"
	case domain.ErrInsufficientRole:
		return "insufficient_role"
	default:
		return "error"
	}
}

// Session returns the SessionView a gate stored for this request. The second
// return is false on routes that carry no gate.
func Session(c echo.Context) (domain.SessionView, bool) {
	view, ok := c.Get(sessionKey).(domain.SessionView)
	return view, ok
}

// SetSession stores a resolved view on the context. Exported for handler
// tests that bypass the gates.
func SetSession(c echo.Context, view domain.SessionView) {
	c.Set(sessionKey, view)
}

// MustSession is Session for handlers behind a gate, where a missing view
// means broken route wiring rather than an unauthenticated caller.
func MustSession(c echo.Context) (domain.SessionView, error) {
	view, ok := Session(c)
	if !ok {
		return domain.SessionView{}, echo.NewHTTPError(http.StatusUnauthorized, "missing session")
	}
	return view, nil
}
