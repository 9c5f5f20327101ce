package client

import (
	"context"
	"time"

	"github.com/omoluabi/heartville/internal/models"
)

// State of the swipe cursor.
type State string

const (
	StateBrowsing  State = "browsing"
	StateExhausted State = "exhausted"
)

// noticeTTL matches the app's 4-second toast auto-dismiss.
const noticeTTL = 4 * time.Second

// Tone of a transient notice.
type Tone string

const (
	ToneSuccess Tone = "success"
	ToneError   Tone = "error"
)

// Notice is a transient user-facing message with a fixed auto-dismiss delay.
type Notice struct {
	Tone    Tone
	Message string
}

// SwipeSession walks a profile deck one card at a time. The cursor only moves
// forward, one step per swipe, clamped at the end of the deck; it never wraps
// or rewinds. Likes are optimistic: the cursor advances whether or not the
// match request landed, and failures surface as a notice instead of a retry.
type SwipeSession struct {
	api      *Client
	userID   string
	profiles []models.Profile
	index    int
	matches  *MatchList

	notice        *Notice
	noticeExpires time.Time
	now           func() time.Time
}

// NewSwipeSession builds a session over the given deck. The deck should
// already exclude the session user's own profile.
func NewSwipeSession(api *Client, userID string, profiles []models.Profile) *SwipeSession {
	return &SwipeSession{
		api:      api,
		userID:   userID,
		profiles: profiles,
		matches:  NewMatchList(),
		now:      time.Now,
	}
}

// Matches exposes the session's local match list.
func (s *SwipeSession) Matches() *MatchList { return s.matches }

func (s *SwipeSession) State() State {
	if s.index >= len(s.profiles) {
		return StateExhausted
	}
	return StateBrowsing
}

// Index reports the cursor position.
func (s *SwipeSession) Index() int { return s.index }

// Current returns the profile under the cursor, or false once the deck is
// exhausted.
func (s *SwipeSession) Current() (*models.Profile, bool) {
	if s.index >= len(s.profiles) {
		return nil, false
	}
	return &s.profiles[s.index], true
}

func (s *SwipeSession) advance() {
	if s.index < len(s.profiles) {
		s.index++
	}
}

// Pass skips the current profile.
func (s *SwipeSession) Pass() {
	if _, ok := s.Current(); !ok {
		return
	}
	s.advance()
	s.setNotice(ToneSuccess, "Noted. We’ll keep refining your matches.")
}

// Like sends a match request for the current profile and advances regardless
// of the outcome.
func (s *SwipeSession) Like(ctx context.Context) *models.MatchResult {
	return s.like(ctx, false)
}

// SuperLike is Like with the compatibility bonus flag set.
func (s *SwipeSession) SuperLike(ctx context.Context) *models.MatchResult {
	return s.like(ctx, true)
}

func (s *SwipeSession) like(ctx context.Context, superLike bool) *models.MatchResult {
	profile, ok := s.Current()
	if !ok {
		return nil
	}
	defer s.advance()

	result, err := s.api.CreateMatch(ctx, s.userID, profile.ID, superLike)
	if err != nil {
		s.setNotice(ToneError, "Something glitched. Try sending that vibe again.")
		return nil
	}

	s.matches.Upsert(result.MatchView)
	if superLike {
		s.setNotice(ToneSuccess, "Spark sent to "+profile.Name+"!")
	} else {
		s.setNotice(ToneSuccess, "Connection sent to "+profile.Name+". We’ll let you know if it’s mutual!")
	}
	return result
}

func (s *SwipeSession) setNotice(tone Tone, message string) {
	s.notice = &Notice{Tone: tone, Message: message}
	s.noticeExpires = s.now().Add(noticeTTL)
}

// Notice returns the active transient notice, if it has not auto-dismissed.
func (s *SwipeSession) Notice() (*Notice, bool) {
	if s.notice == nil || s.now().After(s.noticeExpires) {
		return nil, false
	}
	return s.notice, true
}
