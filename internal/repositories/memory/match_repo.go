package memory

import (
	"context"
	"sync"

	"github.com/omoluabi/heartville/internal/models"
	"github.com/omoluabi/heartville/internal/utils"
)

type MatchRepository interface {
	ListByUser(ctx context.Context, userID string) ([]models.Match, error)
	FindByUserAndTarget(ctx context.Context, userID, targetID string) (*models.Match, error)
	// CreateIfAbsent prepends m unless a match for (m.UserID, m.TargetID)
	// already exists; the existence check and the insert happen under one
	// lock acquisition. Returns the stored match and whether it was created.
	CreateIfAbsent(ctx context.Context, m *models.Match) (*models.Match, bool, error)
	Remove(ctx context.Context, userID, targetID string) error
}

// matchRepo is the only mutable store. The ledger keeps most-recent-first
// insertion order; the mutex holds the one-entry-per-pair invariant under
// concurrent requests.
type matchRepo struct {
	mu      sync.Mutex
	matches []models.Match
}

func NewMatchRepo(seed []models.Match) MatchRepository {
	matches := make([]models.Match, len(seed))
	copy(matches, seed)
	return &matchRepo{matches: matches}
}

func (r *matchRepo) ListByUser(_ context.Context, userID string) ([]models.Match, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.Match, 0, len(r.matches))
	for _, m := range r.matches {
		if m.UserID == userID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *matchRepo) FindByUserAndTarget(_ context.Context, userID, targetID string) (*models.Match, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.matches {
		if r.matches[i].UserID == userID && r.matches[i].TargetID == targetID {
			m := r.matches[i]
			return &m, nil
		}
	}
	return nil, utils.ErrNotFound
}

func (r *matchRepo) CreateIfAbsent(_ context.Context, m *models.Match) (*models.Match, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.matches {
		if r.matches[i].UserID == m.UserID && r.matches[i].TargetID == m.TargetID {
			existing := r.matches[i]
			return &existing, false, nil
		}
	}

	r.matches = append([]models.Match{*m}, r.matches...)
	stored := *m
	return &stored, true, nil
}

func (r *matchRepo) Remove(_ context.Context, userID, targetID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.matches {
		if r.matches[i].UserID == userID && r.matches[i].TargetID == targetID {
			r.matches = append(r.matches[:i], r.matches[i+1:]...)
			return nil
		}
	}
	return utils.ErrNotFound
}
