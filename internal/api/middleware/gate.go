package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/gaugeworks/gauge-registry/internal/core/domain"
)

// Require builds the authorization gate for a minimum role. The gate resolves
// the session first; an unresolved session is an authentication failure
// (401 at the boundary). Only then does it check active status and role, which
// fail as "forbidden" (403). A deactivated account of any role is rejected
// before the role comparison, so it passes no gate at all.
//
// Because roles are totally ordered (user < kip < master), any session a
// stricter gate admits is admitted by every weaker gate.
func (r *Resolver) Require(min domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			view, err := r.resolve(c)
			if err != nil {
				return r.reject(c, err)
			}
			if !view.Active {
				return r.reject(c, domain.ErrDeactivated)
			}
			if !view.Role.AtLeast(min) {
				return r.reject(c, domain.ErrInsufficientRole)
			}

			SetSession(c, view)
			return next(c)
		}
	}
}

// RequireUser admits any active account (user, kip or master).
func (r *Resolver) RequireUser() echo.MiddlewareFunc { return r.Require(domain.RoleUser) }

// RequireKip admits active kip and master accounts.
func (r *Resolver) RequireKip() echo.MiddlewareFunc { return r.Require(domain.RoleKip) }

// RequireMaster admits active master accounts only.
func (r *Resolver) RequireMaster() echo.MiddlewareFunc { return r.Require(domain.RoleMaster) }
