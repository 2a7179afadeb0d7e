package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/gaugeworks/gauge-registry/internal/core/domain"
)

func handleError(t *testing.T, err error, accept string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/gauges/new", nil)
	if accept != "" {
		req.Header.Set(echo.HeaderAccept, accept)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body %q: %v", rec.Body.String(), err)
	}
	return body.Error
}

func TestErrorHandler_BrowserRedirectsToLogin(t *testing.T) {
	for _, err := range []error{
		domain.ErrMissingToken,
		domain.ErrTokenInvalid,
		domain.ErrTokenExpired,
		domain.ErrUnknownIdentity,
		domain.ErrDeactivated,
		domain.ErrInsufficientRole,
	} {
		rec := handleError(t, err, "text/html,application/xhtml+xml")
		if rec.Code != http.StatusFound {
			t.Errorf("%v: got %d, want 302", err, rec.Code)
		}
		if loc := rec.Header().Get(echo.HeaderLocation); loc != "/login" {
			t.Errorf("%v: redirected to %q", err, loc)
		}
	}
}

func TestErrorHandler_JSONClientsKeepStatusCodes(t *testing.T) {
	cases := []struct {
		err      error
		wantCode int
		wantMsg  string
	}{
		{domain.ErrMissingToken, http.StatusUnauthorized, "not authenticated"},
		{domain.ErrTokenExpired, http.StatusUnauthorized, "not authenticated"},
		{domain.ErrUnknownIdentity, http.StatusUnauthorized, "not authenticated"},
		{domain.ErrDeactivated, http.StatusForbidden, "forbidden"},
		{domain.ErrInsufficientRole, http.StatusForbidden, "forbidden"},
		{domain.ErrInvalidCredentials, http.StatusUnauthorized, "invalid credentials"},
		{domain.ErrTooManyAttempts, http.StatusTooManyRequests, "too many login attempts"},
		{domain.ErrDuplicateUser, http.StatusConflict, "user already exists"},
		{domain.ErrGaugeNotFound, http.StatusNotFound, "gauge not found"},
		{domain.ErrInvalidRole, http.StatusBadRequest, "unrecognized role"},
	}

	for _, tc := range cases {
		rec := handleError(t, tc.err, echo.MIMEApplicationJSON)
		if rec.Code != tc.wantCode {
			t.Errorf("%v: got %d, want %d", tc.err, rec.Code, tc.wantCode)
		}
		if msg := decodeError(t, rec); msg != tc.wantMsg {
			t.Errorf("%v: got message %q, want %q", tc.err, msg, tc.wantMsg)
		}
	}
}

// A 401 without an HTML Accept header must not redirect: the 401/403
// distinction stays observable to programmatic callers.
func TestErrorHandler_NoRedirectWithoutHTMLAccept(t *testing.T) {
	rec := handleError(t, domain.ErrMissingToken, "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("got %d, want 401", rec.Code)
	}
}

func TestErrorHandler_EchoErrorsPassThrough(t *testing.T) {
	rec := handleError(t, echo.NewHTTPError(http.StatusNotFound, "Not Found"), echo.MIMEApplicationJSON)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("got %d, want 404", rec.Code)
	}
}

func TestErrorHandler_UnexpectedErrorIsOpaque(t *testing.T) {
	rec := handleError(t, errors.New("mongo: connection reset"), echo.MIMEApplicationJSON)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("got %d, want 500", rec.Code)
	}
	if msg := decodeError(t, rec); msg != "internal server error" {
		t.Fatalf("internal detail leaked: %q", msg)
	}
}
