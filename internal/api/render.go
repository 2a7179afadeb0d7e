package api

import (
	"fmt"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"
)

// TemplateRenderer adapts a parsed html/template set to echo's Renderer
// interface. The registry's pages are server-rendered; handlers pass a data
// map that includes the SessionView fields but never a credential or token.
type TemplateRenderer struct {
	templates *template.Template
}

// NewTemplateRenderer parses every template matching pattern (e.g.
// "web/templates/*.html").
func NewTemplateRenderer(pattern string) (*TemplateRenderer, error) {
	t, err := template.ParseGlob(pattern)
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &TemplateRenderer{templates: t}, nil
}

// Render satisfies echo.Renderer.
func (r *TemplateRenderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}
