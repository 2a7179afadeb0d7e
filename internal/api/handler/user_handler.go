package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gaugeworks/gauge-registry/internal/core/domain"
	"github.com/gaugeworks/gauge-registry/internal/core/ports"
)

// UserHandler serves the administrator pages: account listing, registration
// and profile editing. Every route behind it sits behind the master gate.
type UserHandler struct {
	users ports.UserService
	auth  ports.AuthService
}

func NewUserHandler(users ports.UserService, auth ports.AuthService) *UserHandler {
	return &UserHandler{users: users, auth: auth}
}

// List renders all accounts. GET /users .
func (h *UserHandler) List(c echo.Context) error {
	all, err := h.users.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "users.html", echo.Map{"Users": all})
}

// NewForm renders the registration form. GET /users/new .
func (h *UserHandler) NewForm(c echo.Context) error {
	return c.Render(http.StatusOK, "user_form.html", echo.Map{})
}

// Create registers a new account with the default role. A duplicate name
// re-renders the form with an error instead of overwriting anything.
// POST /users .
func (h *UserHandler) Create(c echo.Context) error {
	var form registerForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}
	if err := c.Validate(form); err != nil {
		return c.Render(http.StatusOK, "user_form.html", echo.Map{"Error": err.Error()})
	}

	_, err := h.auth.Register(c.Request().Context(), ports.RegisterInput{
		FullName:    form.FullName,
		Password:    form.Password,
		PhoneNumber: form.PhoneNumber,
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateUser) {
			return c.Render(http.StatusOK, "user_form.html", echo.Map{
				"Error": "A user with this name already exists",
			})
		}
		return err
	}

	return c.Redirect(http.StatusSeeOther, "/users")
}

// EditForm renders the profile editor pre-filled. GET /users/:id/edit .
func (h *UserHandler) EditForm(c echo.Context) error {
	user, err := h.users.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "user_edit.html", echo.Map{"User": user})
}

// Update applies name, active flag and phone number. POST /users/:id .
func (h *UserHandler) Update(c echo.Context) error {
	var form userUpdateForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}
	if err := c.Validate(form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	_, err := h.users.UpdateProfile(c.Request().Context(), c.Param("id"), ports.UpdateUserInput{
		FullName:    form.FullName,
		Active:      form.Active,
		PhoneNumber: form.PhoneNumber,
	})
	if err != nil {
		return err
	}

	return c.Redirect(http.StatusSeeOther, "/users")
}
