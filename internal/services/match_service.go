package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/omoluabi/heartville/internal/models"
	"github.com/omoluabi/heartville/internal/repositories/memory"
	"github.com/omoluabi/heartville/internal/utils"
)

// EventNewMatch is broadcast to every connected listener when a match is
// created. Idempotent re-likes do not fire it.
const EventNewMatch = "new-match"

// Compatibility of a fresh match is the target profile's base score plus a
// super-like bonus, capped at 99. Profiles without a score fall back to 80.
const (
	superLikeBonus       = 3
	maxCompatibility     = 99
	defaultCompatibility = 80
)

type MatchService interface {
	Create(ctx context.Context, userID, targetID string, superLike bool) (*models.MatchResult, error)
	ListByUser(ctx context.Context, userID string) ([]models.MatchView, error)
	Rewind(ctx context.Context, targetID string) error
	MessagesByUser(ctx context.Context, userID string) ([]models.MessagePreview, error)
}

type matchService struct {
	profiles  memory.ProfileRepository
	matches   memory.MatchRepository
	messages  memory.MessageRepository
	broadcast Broadcaster
}

func NewMatchService(profiles memory.ProfileRepository, matches memory.MatchRepository, messages memory.MessageRepository, broadcast Broadcaster) MatchService {
	if broadcast == nil {
		broadcast = NopBroadcaster{}
	}
	return &matchService{
		profiles:  profiles,
		matches:   matches,
		messages:  messages,
		broadcast: broadcast,
	}
}

func (s *matchService) Create(ctx context.Context, userID, targetID string, superLike bool) (*models.MatchResult, error) {
	const op = "MatchService.Create"

	if userID == "" {
		userID = DefaultUserID
	}
	if targetID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "targetId is required", nil)
	}

	profile, err := s.profiles.GetByID(ctx, targetID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "profile not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to look up profile", err)
	}

	base := profile.Compatibility
	if base == 0 {
		base = defaultCompatibility
	}
	compatibility := base
	if superLike {
		compatibility += superLikeBonus
	}
	if compatibility > maxCompatibility {
		compatibility = maxCompatibility
	}

	match := models.Match{
		ID:                   fmt.Sprintf("match-%d", time.Now().UnixNano()),
		UserID:               userID,
		TargetID:             targetID,
		Compatibility:        compatibility,
		CreatedAt:            time.Now().UTC(),
		ConversationStarters: conversationStarters(profile),
	}

	// The existence check and the insert are one atomic repository step, so
	// two concurrent likes for the same pair cannot both append or both
	// broadcast.
	stored, created, err := s.matches.CreateIfAbsent(ctx, &match)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to record match", err)
	}

	view := models.MatchView{Match: *stored, Profile: profile}
	if created {
		s.broadcast.Broadcast(EventNewMatch, view)
	}

	return &models.MatchResult{MatchView: view, NewlyCreated: created}, nil
}

// conversationStarters fills the fixed phrase templates from the target's
// first name, first interest, and vibe descriptor.
func conversationStarters(p *models.Profile) []string {
	firstName := p.Name
	if fields := strings.Fields(p.Name); len(fields) > 0 {
		firstName = fields[0]
	}
	firstInterest := ""
	if len(p.Interests) > 0 {
		firstInterest = strings.ToLower(p.Interests[0])
	}
	return []string{
		fmt.Sprintf("Ask %s about their favorite %s.", firstName, firstInterest),
		fmt.Sprintf("Share a story that shows your %s energy.", strings.ToLower(p.Vibe)),
		"Plan a mini-adventure you could co-create this month.",
	}
}

// ListByUser filters the ledger as-is: an empty userID matches nothing. The
// absent-parameter default lives at the handler layer.
func (s *matchService) ListByUser(ctx context.Context, userID string) ([]models.MatchView, error) {
	const op = "MatchService.ListByUser"

	matches, err := s.matches.ListByUser(ctx, userID)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list matches", err)
	}

	views := make([]models.MatchView, 0, len(matches))
	for _, m := range matches {
		// A missing target profile embeds as null rather than failing the
		// whole listing.
		profile, err := s.profiles.GetByID(ctx, m.TargetID)
		if err != nil && !errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeInternal, op, "failed to look up profile", err)
		}
		views = append(views, models.MatchView{Match: m, Profile: profile})
	}
	return views, nil
}

// Rewind removes the demo user's match against targetID. Removal is silent:
// no broadcast fires, unlike creation.
func (s *matchService) Rewind(ctx context.Context, targetID string) error {
	const op = "MatchService.Rewind"

	if targetID == "" {
		return utils.E(utils.CodeInvalidArgument, op, "targetId is required", nil)
	}

	if err := s.matches.Remove(ctx, DefaultUserID, targetID); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "match not found", err)
		}
		return utils.E(utils.CodeInternal, op, "failed to remove match", err)
	}
	return nil
}

func (s *matchService) MessagesByUser(ctx context.Context, userID string) ([]models.MessagePreview, error) {
	const op = "MatchService.MessagesByUser"

	matches, err := s.matches.ListByUser(ctx, userID)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list matches", err)
	}

	matchIDs := make(map[string]struct{}, len(matches))
	for _, m := range matches {
		matchIDs[m.ID] = struct{}{}
	}

	previews, err := s.messages.ListByMatchIDs(ctx, matchIDs)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list message previews", err)
	}
	return previews, nil
}
