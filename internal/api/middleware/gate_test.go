package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/gaugeworks/gauge-registry/internal/core/domain"
	"github.com/gaugeworks/gauge-registry/internal/core/ports"
	"github.com/gaugeworks/gauge-registry/internal/token"
)

type stubUserRepo struct {
	users map[string]*domain.User
}

func newStubUserRepo(users ...*domain.User) *stubUserRepo {
	r := &stubUserRepo{users: make(map[string]*domain.User)}
	for _, u := range users {
		r.users[u.FullName] = u
	}
	return r
}

func (r *stubUserRepo) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	r.users[u.FullName] = u
	return u, nil
}

func (r *stubUserRepo) FindByName(_ context.Context, fullName string) (*domain.User, error) {
	if u, ok := r.users[fullName]; ok {
		clone := *u
		return &clone, nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) List(_ context.Context) ([]*domain.User, error) { return nil, nil }

func (r *stubUserRepo) Update(_ context.Context, _ string, _ ports.UpdateUserInput) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) UpdatePassword(_ context.Context, _ string, _ string) error { return nil }

const testCookie = "access_token"

func newTestResolver(repo *stubUserRepo) (*Resolver, *token.Codec) {
	codec := token.NewCodec("test-secret", time.Hour)
	return NewResolver(codec, repo, testCookie, zerolog.Nop()), codec
}

// invoke runs the gate over a request carrying rawToken (empty = no cookie)
// and returns the observed HTTP status after central error mapping.
func invoke(t *testing.T, gate echo.MiddlewareFunc, rawToken string) (int, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if rawToken != "" {
		req.AddCookie(&http.Cookie{Name: testCookie, Value: rawToken})
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	reached := false
	handler := gate(func(c echo.Context) error {
		reached = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		return statusFor(err), reached
	}
	return rec.Code, reached
}

// statusFor mirrors the boundary mapping: authentication sentinels are 401,
// authorization sentinels 403.
func statusFor(err error) int {
	switch err {
	case domain.ErrMissingToken, domain.ErrTokenInvalid, domain.ErrTokenExpired, domain.ErrUnknownIdentity:
		return http.StatusUnauthorized
	case domain.ErrDeactivated, domain.ErrInsufficientRole:
		return http.StatusForbidden
	}
	return http.StatusInternalServerError
}

func TestGate_MissingToken(t *testing.T) {
	resolver, _ := newTestResolver(newStubUserRepo())

	code, reached := invoke(t, resolver.RequireUser(), "")
	if code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without a token, got %d", code)
	}
	if reached {
		t.Fatalf("handler must not run without a session")
	}
}

func TestGate_InvalidToken(t *testing.T) {
	resolver, _ := newTestResolver(newStubUserRepo())

	code, _ := invoke(t, resolver.RequireUser(), "garbage-token")
	if code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for an invalid token, got %d", code)
	}
}

func TestGate_UnknownUser(t *testing.T) {
	resolver, codec := newTestResolver(newStubUserRepo())

	signed, err := codec.Encode("Nobody")
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	code, _ := invoke(t, resolver.RequireUser(), signed)
	if code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for a token naming no user, got %d", code)
	}
}

func TestGate_RoleMatrix(t *testing.T) {
	repo := newStubUserRepo(
		&domain.User{ID: "1", FullName: "Plain User", Role: domain.RoleUser, Active: true},
		&domain.User{ID: "2", FullName: "Ivan Petrov", Role: domain.RoleKip, Active: true},
		&domain.User{ID: "3", FullName: "The Master", Role: domain.RoleMaster, Active: true},
		&domain.User{ID: "4", FullName: "Odd Role", Role: domain.Role("visitor"), Active: true},
	)
	resolver, codec := newTestResolver(repo)

	gates := map[string]echo.MiddlewareFunc{
		"user":   resolver.RequireUser(),
		"kip":    resolver.RequireKip(),
		"master": resolver.RequireMaster(),
	}

	want := map[string]map[string]int{
		"Plain User":  {"user": 200, "kip": 403, "master": 403},
		"Ivan Petrov": {"user": 200, "kip": 200, "master": 403},
		"The Master":  {"user": 200, "kip": 200, "master": 200},
		// Unrecognized stored roles pass no gate at all.
		"Odd Role": {"user": 403, "kip": 403, "master": 403},
	}

	for name, expectations := range want {
		signed, err := codec.Encode(name)
		if err != nil {
			t.Fatalf("encode %q: %v", name, err)
		}
		for gateName, wantCode := range expectations {
			code, _ := invoke(t, gates[gateName], signed)
			if code != wantCode {
				t.Errorf("%s through require_%s: got %d, want %d", name, gateName, code, wantCode)
			}
		}
	}
}

// Privilege containment: any session the master gate admits must pass the kip
// gate, and any session the kip gate admits must pass the user gate.
func TestGate_MonotonicPrivilege(t *testing.T) {
	repo := newStubUserRepo(
		&domain.User{ID: "1", FullName: "U", Role: domain.RoleUser, Active: true},
		&domain.User{ID: "2", FullName: "K", Role: domain.RoleKip, Active: true},
		&domain.User{ID: "3", FullName: "M", Role: domain.RoleMaster, Active: true},
		&domain.User{ID: "4", FullName: "Off", Role: domain.RoleMaster, Active: false},
	)
	resolver, codec := newTestResolver(repo)

	for name := range repo.users {
		signed, err := codec.Encode(name)
		if err != nil {
			t.Fatalf("encode %q: %v", name, err)
		}
		master, _ := invoke(t, resolver.RequireMaster(), signed)
		kip, _ := invoke(t, resolver.RequireKip(), signed)
		user, _ := invoke(t, resolver.RequireUser(), signed)

		if master == http.StatusOK && (kip != http.StatusOK || user != http.StatusOK) {
			t.Errorf("%s: master gate admits but a weaker gate refuses (kip=%d user=%d)", name, kip, user)
		}
		if kip == http.StatusOK && user != http.StatusOK {
			t.Errorf("%s: kip gate admits but user gate refuses (%d)", name, user)
		}
	}
}

func TestGate_DeactivatedRejectedByEveryGate(t *testing.T) {
	repo := newStubUserRepo(
		&domain.User{ID: "1", FullName: "Benched Master", Role: domain.RoleMaster, Active: false},
	)
	resolver, codec := newTestResolver(repo)

	signed, err := codec.Encode("Benched Master")
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	for name, gate := range map[string]echo.MiddlewareFunc{
		"user":   resolver.RequireUser(),
		"kip":    resolver.RequireKip(),
		"master": resolver.RequireMaster(),
	} {
		code, reached := invoke(t, gate, signed)
		if code != http.StatusForbidden {
			t.Errorf("require_%s: deactivated master got %d, want 403", name, code)
		}
		if reached {
			t.Errorf("require_%s: handler ran for a deactivated account", name)
		}
	}
}

// A token issued while the account was active is refused once the account is
// deactivated: deactivation is checked per request, not per token.
func TestGate_DeactivationAfterIssue(t *testing.T) {
	active := &domain.User{ID: "1", FullName: "Ivan Petrov", Role: domain.RoleKip, Active: true}
	repo := newStubUserRepo(active)
	resolver, codec := newTestResolver(repo)

	signed, err := codec.Encode("Ivan Petrov")
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	if code, _ := invoke(t, resolver.RequireUser(), signed); code != http.StatusOK {
		t.Fatalf("active account refused: %d", code)
	}

	active.Active = false

	if code, _ := invoke(t, resolver.RequireUser(), signed); code != http.StatusForbidden {
		t.Fatalf("deactivated account still admitted with old token")
	}
}

func TestGate_SetsSessionView(t *testing.T) {
	repo := newStubUserRepo(
		&domain.User{ID: "42", FullName: "Ivan Petrov", Role: domain.RoleKip, Active: true, Password: "$2b$10$hash"},
	)
	resolver, codec := newTestResolver(repo)

	signed, err := codec.Encode("Ivan Petrov")
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: testCookie, Value: signed})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := resolver.RequireKip()(func(c echo.Context) error {
		view, ok := Session(c)
		if !ok {
			t.Fatalf("session view not set")
		}
		if view.ID != "42" || view.FullName != "Ivan Petrov" || view.Role != domain.RoleKip || !view.Active {
			t.Fatalf("unexpected session view: %+v", view)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
}
