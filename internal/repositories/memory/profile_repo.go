package memory

import (
	"context"

	"github.com/omoluabi/heartville/internal/models"
	"github.com/omoluabi/heartville/internal/utils"
)

type ProfileRepository interface {
	List(ctx context.Context) ([]models.Profile, error)
	GetByID(ctx context.Context, id string) (*models.Profile, error)
}

// profileRepo serves a fixed candidate list. Profiles never change after
// construction, so reads need no locking.
type profileRepo struct {
	profiles []models.Profile
}

func NewProfileRepo(profiles []models.Profile) ProfileRepository {
	return &profileRepo{profiles: profiles}
}

func (r *profileRepo) List(_ context.Context) ([]models.Profile, error) {
	out := make([]models.Profile, len(r.profiles))
	copy(out, r.profiles)
	return out, nil
}

func (r *profileRepo) GetByID(_ context.Context, id string) (*models.Profile, error) {
	for i := range r.profiles {
		if r.profiles[i].ID == id {
			p := r.profiles[i]
			return &p, nil
		}
	}
	return nil, utils.ErrNotFound
}
