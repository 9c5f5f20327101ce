package services

import (
	"context"
	"errors"

	"github.com/omoluabi/heartville/internal/models"
	"github.com/omoluabi/heartville/internal/repositories/memory"
	"github.com/omoluabi/heartville/internal/utils"
)

type ProfileService interface {
	List(ctx context.Context) ([]models.Profile, error)
	Get(ctx context.Context, id string) (*models.Profile, error)
	Recommendations(ctx context.Context) ([]models.Recommendation, error)
}

type profileService struct {
	profiles memory.ProfileRepository
}

func NewProfileService(profiles memory.ProfileRepository) ProfileService {
	return &profileService{profiles: profiles}
}

func (s *profileService) List(ctx context.Context) ([]models.Profile, error) {
	const op = "ProfileService.List"

	profiles, err := s.profiles.List(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list profiles", err)
	}
	return profiles, nil
}

func (s *profileService) Get(ctx context.Context, id string) (*models.Profile, error) {
	const op = "ProfileService.Get"

	if id == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "id is required", nil)
	}

	p, err := s.profiles.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "profile not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get profile", err)
	}
	return p, nil
}

// Recommendations projects every candidate except the demo user into the
// summary card shape.
func (s *profileService) Recommendations(ctx context.Context) ([]models.Recommendation, error) {
	const op = "ProfileService.Recommendations"

	profiles, err := s.profiles.List(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list profiles", err)
	}

	recs := make([]models.Recommendation, 0, len(profiles))
	for _, p := range profiles {
		if p.ID == DefaultUserID {
			continue
		}
		recs = append(recs, models.Recommendation{
			ID:            p.ID,
			Name:          p.Name,
			Compatibility: p.Compatibility,
			Vibe:          p.Vibe,
			Highlight:     p.CompatibilityWhy,
		})
	}
	return recs, nil
}
