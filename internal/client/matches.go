package client

import (
	"sort"
	"sync"

	"github.com/omoluabi/heartville/internal/models"
)

// MatchList is the client's local view of the match ledger. Broadcast events
// and like responses both land here; entries are deduplicated by match id so
// a client that both posted the like and received the broadcast keeps a
// single copy.
type MatchList struct {
	mu      sync.Mutex
	matches []models.MatchView
}

func NewMatchList() *MatchList {
	return &MatchList{}
}

// Replace swaps in a freshly fetched match slice.
func (l *MatchList) Replace(matches []models.MatchView) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.matches = append([]models.MatchView(nil), matches...)
}

// Upsert inserts a match at the front, or updates it in place when the id is
// already present.
func (l *MatchList) Upsert(m models.MatchView) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := range l.matches {
		if l.matches[i].ID == m.ID {
			l.matches[i] = m
			return
		}
	}
	l.matches = append([]models.MatchView{m}, l.matches...)
}

// Add inserts a match at the front unless the id is already present. This is
// the broadcast-event path: a duplicate event is ignored outright.
func (l *MatchList) Add(m models.MatchView) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := range l.matches {
		if l.matches[i].ID == m.ID {
			return false
		}
	}
	l.matches = append([]models.MatchView{m}, l.matches...)
	return true
}

// Len reports the number of matches held.
func (l *MatchList) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.matches)
}

// Sorted returns the matches ordered by recency descending.
func (l *MatchList) Sorted() []models.MatchView {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := append([]models.MatchView(nil), l.matches...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}
