package ports

import (
	"context"
	"time"

	"github.com/gaugeworks/gauge-registry/internal/core/domain"
)

// GaugeInput carries the form fields for creating or editing a gauge record.
type GaugeInput struct {
	Title            string
	View             string
	Type             string
	Min              float64
	Max              float64
	MeasureUnit      string
	LowLow           string
	Low              string
	High             string
	HighHigh         string
	Description      string
	System           string
	Tag              string
	Device           string
	VerificationDate time.Time
}

// ListGaugesInput carries the parameters of a listing page request.
type ListGaugesInput struct {
	Search string
	Page   int
}

// GaugePage is one page of the gauge listing together with the names of the
// users who created the listed records.
type GaugePage struct {
	Items      []*domain.Gauge
	Total      int64
	Page       int
	TotalPages int
	// CreatorNames maps a by_user ID to that user's full name for display.
	CreatorNames map[string]string
}

// GaugeService defines the use cases over gauge records.
type GaugeService interface {
	Create(ctx context.Context, input GaugeInput, byUserID string) (*domain.Gauge, error)
	Get(ctx context.Context, id string) (*domain.Gauge, error)
	Update(ctx context.Context, id string, input GaugeInput) (*domain.Gauge, error)
	Delete(ctx context.Context, id string) error
	ListPage(ctx context.Context, input ListGaugesInput) (*GaugePage, error)
}
