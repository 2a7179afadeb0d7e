package ports

import (
	"context"

	"github.com/gaugeworks/gauge-registry/internal/core/domain"
)

// ListGaugesFilter carries the query parameters for a gauge listing page.
type ListGaugesFilter struct {
	// Search, when non-empty, restricts the listing to records whose title,
	// tag, system or device matches the term.
	Search string
	Page   int // 1-based
	Limit  int // rows per page
}

// GaugeRepository defines persistence operations for gauge records.
type GaugeRepository interface {
	Create(ctx context.Context, g *domain.Gauge) (*domain.Gauge, error)
	FindByID(ctx context.Context, id string) (*domain.Gauge, error)
	Update(ctx context.Context, id string, g *domain.Gauge) (*domain.Gauge, error)
	Delete(ctx context.Context, id string) error
	// List returns a page of gauges matching filter and the total count.
	List(ctx context.Context, filter ListGaugesFilter) ([]*domain.Gauge, int64, error)
}
