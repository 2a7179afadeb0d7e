package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/gaugeworks/gauge-registry/internal/api/metrics"
	"github.com/gaugeworks/gauge-registry/internal/api/middleware"
	"github.com/gaugeworks/gauge-registry/internal/core/ports"
)

// GaugeHandler serves the gauge listing and the record forms.
type GaugeHandler struct {
	service ports.GaugeService
}

func NewGaugeHandler(service ports.GaugeService) *GaugeHandler {
	return &GaugeHandler{service: service}
}

// Index renders the paginated gauge listing, optionally filtered by a search
// term. GET / .
func (h *GaugeHandler) Index(c echo.Context) error {
	view, err := middleware.MustSession(c)
	if err != nil {
		return err
	}

	page := 1
	if p, err := strconv.Atoi(c.QueryParam("page")); err == nil && p > 0 {
		page = p
	}
	search := strings.TrimSpace(c.QueryParam("search"))

	searchLabel := "no"
	if search != "" {
		searchLabel = "yes"
	}
	start := time.Now()
	result, err := h.service.ListPage(c.Request().Context(), ports.ListGaugesInput{
		Search: search,
		Page:   page,
	})
	if err != nil {
		return err
	}
	metrics.ListPageDuration.WithLabelValues(searchLabel).Observe(time.Since(start).Seconds())

	return c.Render(http.StatusOK, "index.html", echo.Map{
		"FullName":    view.FullName,
		"Role":        string(view.Role),
		"Gauges":      result.Items,
		"UserNames":   result.CreatorNames,
		"SearchQuery": search,
		"CurrentPage": result.Page,
		"PrevPage":    result.Page - 1,
		"NextPage":    result.Page + 1,
		"TotalPages":  result.TotalPages,
		"TotalCount":  result.Total,
	})
}

// NewForm renders the empty record form. GET /gauges/new .
func (h *GaugeHandler) NewForm(c echo.Context) error {
	return c.Render(http.StatusOK, "gauge_form.html", echo.Map{})
}

// Create registers a new gauge record owned by the session user.
// POST /gauges .
func (h *GaugeHandler) Create(c echo.Context) error {
	view, err := middleware.MustSession(c)
	if err != nil {
		return err
	}

	var form gaugeForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}
	if err := c.Validate(form); err != nil {
		return c.Render(http.StatusOK, "gauge_form.html", echo.Map{
			"Error": err.Error(),
			"Form":  form,
		})
	}

	if _, err := h.service.Create(c.Request().Context(), form.toInput(), view.ID); err != nil {
		return err
	}

	metrics.GaugesCreatedTotal.Inc()
	return c.Redirect(http.StatusSeeOther, "/")
}

// EditForm renders the record editor pre-filled. GET /gauges/:id/edit .
func (h *GaugeHandler) EditForm(c echo.Context) error {
	gauge, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "gauge_edit.html", echo.Map{"Gauge": gauge})
}

// Update applies the edited record fields. POST /gauges/:id .
func (h *GaugeHandler) Update(c echo.Context) error {
	var form gaugeForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}
	if err := c.Validate(form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if _, err := h.service.Update(c.Request().Context(), c.Param("id"), form.toInput()); err != nil {
		return err
	}

	return c.Redirect(http.StatusSeeOther, "/")
}

// DeleteForm renders the deletion confirmation page.
// GET /gauges/:id/delete .
func (h *GaugeHandler) DeleteForm(c echo.Context) error {
	gauge, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "gauge_delete.html", echo.Map{"Gauge": gauge})
}

// Delete removes the record after confirmation. POST /gauges/:id/delete .
func (h *GaugeHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}

	metrics.GaugesDeletedTotal.Inc()
	return c.Redirect(http.StatusSeeOther, "/")
}
