package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/gaugeworks/gauge-registry/internal/api/metrics"
	"github.com/gaugeworks/gauge-registry/internal/core/domain"
	"github.com/gaugeworks/gauge-registry/internal/core/ports"
	"github.com/gaugeworks/gauge-registry/internal/token"
)

// CookieSettings describes the access cookie the login handler issues.
type CookieSettings struct {
	Name   string
	MaxAge int // seconds
	// Secure should be on behind TLS; the default configuration leaves it
	// off for plain-HTTP internal deployments.
	Secure bool
}

// AuthHandler serves the login page, the login submission and logout.
type AuthHandler struct {
	auth    ports.AuthService
	limiter ports.LoginLimiter
	codec   *token.Codec
	cookie  CookieSettings
	logger  zerolog.Logger
}

// NewAuthHandler wires the login flow. limiter may be nil to disable login
// throttling.
func NewAuthHandler(auth ports.AuthService, limiter ports.LoginLimiter, codec *token.Codec, cookie CookieSettings, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, limiter: limiter, codec: codec, cookie: cookie, logger: logger}
}

// ShowLogin renders the login form.
func (h *AuthHandler) ShowLogin(c echo.Context) error {
	return c.Render(http.StatusOK, "login.html", echo.Map{})
}

// Login authenticates the submitted name/password pair. On success it issues
// the signed access cookie and redirects to the listing page; on a bad pair
// it re-renders the form with an error so the browser stays on the page.
func (h *AuthHandler) Login(c echo.Context) error {
	var form loginForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}
	if err := c.Validate(form); err != nil {
		return h.renderLoginError(c, "Name and password are required")
	}

	ctx := c.Request().Context()

	if h.limiter != nil {
		allowed, err := h.limiter.Allow(ctx, form.FullName)
		if err != nil {
			// The throttle is an extra guard, not a dependency the login
			// path may die on.
			h.logger.Warn().Err(err).Msg("login limiter unavailable")
		} else if !allowed {
			metrics.LoginAttemptsTotal.WithLabelValues("throttled").Inc()
			// Browsers stay on the form; other callers get the 429 mapping.
			if wantsHTML(c) {
				return h.renderLoginError(c, "Too many failed attempts, try again later")
			}
			return domain.ErrTooManyAttempts
		}
	}

	user, err := h.auth.Authenticate(ctx, form.FullName, form.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginAttemptsTotal.WithLabelValues("invalid_credentials").Inc()
			if h.limiter != nil {
				if lerr := h.limiter.RecordFailure(ctx, form.FullName); lerr != nil {
					h.logger.Warn().Err(lerr).Msg("failed to record login failure")
				}
			}
			return h.renderLoginError(c, "Wrong name or password")
		}
		metrics.LoginAttemptsTotal.WithLabelValues("error").Inc()
		return err
	}

	if h.limiter != nil {
		if lerr := h.limiter.Reset(ctx, form.FullName); lerr != nil {
			h.logger.Warn().Err(lerr).Msg("failed to reset login limiter")
		}
	}

	signed, err := h.codec.Encode(user.FullName)
	if err != nil {
		return err
	}

	c.SetCookie(h.accessCookie(signed, h.cookie.MaxAge))
	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()
	h.logger.Info().Str("user_id", user.ID).Msg("login")

	return c.Redirect(http.StatusSeeOther, "/")
}

// Logout clears the access cookie and sends the browser back to the root,
// which in turn bounces to the login page.
func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(h.accessCookie("", -1))
	return c.Redirect(http.StatusFound, "/")
}

func (h *AuthHandler) renderLoginError(c echo.Context, msg string) error {
	return c.Render(http.StatusOK, "login.html", echo.Map{"Error": msg})
}

// wantsHTML reports whether the client negotiated an HTML response.
func wantsHTML(c echo.Context) bool {
	return strings.Contains(c.Request().Header.Get(echo.HeaderAccept), echo.MIMETextHTML)
}

func (h *AuthHandler) accessCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     h.cookie.Name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}
