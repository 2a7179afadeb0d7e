package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/gaugeworks/gauge-registry/internal/core/domain"
	"github.com/gaugeworks/gauge-registry/internal/core/ports"
)

// PageSize is the fixed number of gauge records per listing page.
const PageSize = 10

// GaugeService implements the gauge record use cases.
type GaugeService struct {
	repo     ports.GaugeRepository
	userRepo ports.UserRepository
	logger   zerolog.Logger
}

func NewGaugeService(repo ports.GaugeRepository, userRepo ports.UserRepository, logger zerolog.Logger) *GaugeService {
	return &GaugeService{repo: repo, userRepo: userRepo, logger: logger}
}

func (s *GaugeService) Create(ctx context.Context, input ports.GaugeInput, byUserID string) (*domain.Gauge, error) {
	g := gaugeFromInput(input)
	g.ByUser = byUserID
	g.CreatedAt = time.Now().UTC()

	created, err := s.repo.Create(ctx, g)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create gauge")
		return nil, err
	}

	s.logger.Info().Str("gauge_id", created.ID).Str("tag", created.Tag).Msg("gauge created")
	return created, nil
}

func (s *GaugeService) Get(ctx context.Context, id string) (*domain.Gauge, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *GaugeService) Update(ctx context.Context, id string, input ports.GaugeInput) (*domain.Gauge, error) {
	updated, err := s.repo.Update(ctx, id, gaugeFromInput(input))
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("gauge_id", id).Msg("gauge updated")
	return updated, nil
}

func (s *GaugeService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Str("gauge_id", id).Msg("gauge deleted")
	return nil
}

// ListPage returns one page of the gauge listing. Pages are 1-based; an out
// of range page number is clamped to 1. Besides the records themselves the
// page carries the creators' display names, resolved once per distinct user.
func (s *GaugeService) ListPage(ctx context.Context, input ports.ListGaugesInput) (*ports.GaugePage, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}

	items, total, err := s.repo.List(ctx, ports.ListGaugesFilter{
		Search: input.Search,
		Page:   page,
		Limit:  PageSize,
	})
	if err != nil {
		s.logger.Error().Err(err).Str("search", input.Search).Msg("gauge listing failed")
		return nil, err
	}

	totalPages := int((total + PageSize - 1) / PageSize)
	if totalPages < 1 {
		totalPages = 1
	}

	names := make(map[string]string)
	for _, g := range items {
		if _, seen := names[g.ByUser]; seen {
			continue
		}
		u, err := s.userRepo.FindByID(ctx, g.ByUser)
		if err != nil {
			// Creator rows can vanish independently of their records.
			names[g.ByUser] = ""
			continue
		}
		names[g.ByUser] = u.FullName
	}

	return &ports.GaugePage{
		Items:        items,
		Total:        total,
		Page:         page,
		TotalPages:   totalPages,
		CreatorNames: names,
	}, nil
}

func gaugeFromInput(input ports.GaugeInput) *domain.Gauge {
	return &domain.Gauge{
		Title:            input.Title,
		View:             input.View,
		Type:             input.Type,
		Min:              input.Min,
		Max:              input.Max,
		MeasureUnit:      input.MeasureUnit,
		LowLow:           input.LowLow,
		Low:              input.Low,
		High:             input.High,
		HighHigh:         input.HighHigh,
		Description:      input.Description,
		System:           input.System,
		Tag:              input.Tag,
		Device:           input.Device,
		VerificationDate: input.VerificationDate,
	}
}
