package memory

import (
	"context"

	"github.com/omoluabi/heartville/internal/models"
)

type MessageRepository interface {
	ListByMatchIDs(ctx context.Context, matchIDs map[string]struct{}) ([]models.MessagePreview, error)
}

// messageRepo serves read-only demo previews; they are not linked to any
// send/receive path.
type messageRepo struct {
	previews []models.MessagePreview
}

func NewMessageRepo(previews []models.MessagePreview) MessageRepository {
	return &messageRepo{previews: previews}
}

func (r *messageRepo) ListByMatchIDs(_ context.Context, matchIDs map[string]struct{}) ([]models.MessagePreview, error) {
	out := make([]models.MessagePreview, 0, len(r.previews))
	for _, p := range r.previews {
		if _, ok := matchIDs[p.MatchID]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}
