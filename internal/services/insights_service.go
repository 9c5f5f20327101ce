package services

import (
	"context"

	"github.com/omoluabi/heartville/internal/models"
)

type InsightsService interface {
	Summary(ctx context.Context) (*models.InsightsSummary, error)
}

// insightsService returns a fixed aggregate. It is deliberately not derived
// from the match or message stores; the service seam exists so a real
// computation could replace the fixture later.
type insightsService struct {
	summary models.InsightsSummary
}

func NewInsightsService(summary models.InsightsSummary) InsightsService {
	return &insightsService{summary: summary}
}

func (s *insightsService) Summary(_ context.Context) (*models.InsightsSummary, error) {
	out := s.summary
	return &out, nil
}
