package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/gaugeworks/gauge-registry/internal/api/metrics"
	"github.com/gaugeworks/gauge-registry/internal/core/domain"
)

// Every refusal increments the rejection counter under its own reason label,
// keeping the outwardly collapsed failure modes distinguishable internally.
func TestReject_CountsByReason(t *testing.T) {
	resolver, _ := newTestResolver(newStubUserRepo())
	e := echo.New()

	cases := []struct {
		err    error
		reason string
	}{
		{domain.ErrMissingToken, "missing_token"},
		{domain.ErrTokenInvalid, "invalid_token"},
		{domain.ErrTokenExpired, "expired_token"},
		{domain.ErrUnknownIdentity, "unknown_user"},
		{domain.ErrDeactivated, "deactivated"},
		{domain.ErrInsufficientRole, "insufficient_role"},
	}

	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		c := e.NewContext(req, httptest.NewRecorder())

		counter := metrics.AuthRejectionsTotal.WithLabelValues(tc.reason)
		before := testutil.ToFloat64(counter)

		if got := resolver.reject(c, tc.err); got != tc.err {
			t.Fatalf("%s: reject must hand back the sentinel unchanged, got %v", tc.reason, got)
		}

		if after := testutil.ToFloat64(counter); after != before+1 {
			t.Errorf("%s: counter went %v to %v, want one increment", tc.reason, before, after)
		}
	}
}

// A gate refusal counts through the same path as a resolver refusal.
func TestGate_RefusalIncrementsCounter(t *testing.T) {
	repo := newStubUserRepo(
		&domain.User{ID: "1", FullName: "Plain User", Role: domain.RoleUser, Active: true},
	)
	resolver, codec := newTestResolver(repo)

	signed, err := codec.Encode("Plain User")
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	counter := metrics.AuthRejectionsTotal.WithLabelValues("insufficient_role")
	before := testutil.ToFloat64(counter)

	if code, _ := invoke(t, resolver.RequireMaster(), signed); code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", code)
	}

	if after := testutil.ToFloat64(counter); after != before+1 {
		t.Errorf("counter went %v to %v, want one increment", before, after)
	}
}
