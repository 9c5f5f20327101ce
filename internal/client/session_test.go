package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omoluabi/heartville/internal/models"
)

func testDeck() []models.Profile {
	return []models.Profile{
		{ID: "user-2", Name: "Maya Green", Compatibility: 92, Vibe: "Grounded"},
		{ID: "user-3", Name: "Jasper Lin", Compatibility: 88, Vibe: "Thoughtful"},
		{ID: "user-4", Name: "Sasha Ibarra", Compatibility: 85, Vibe: "Magnetic"},
	}
}

// matchServer answers POST /api/matches with a minimal created match, or a
// canned failure when shouldFail is set.
func matchServer(t *testing.T, shouldFail *bool) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if *shouldFail {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"code":"INTERNAL","message":"boom"}`))
			return
		}

		var req struct {
			TargetID  string `json:"targetId"`
			SuperLike bool   `json:"superLike"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)

		result := models.MatchResult{
			MatchView: models.MatchView{
				Match: models.Match{
					ID:        "match-" + req.TargetID,
					UserID:    "user-1",
					TargetID:  req.TargetID,
					CreatedAt: time.Now().UTC(),
				},
			},
			NewlyCreated: true,
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]any{"match": result})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestSwipeCursor(t *testing.T) {
	shouldFail := false
	srv := matchServer(t, &shouldFail)
	ctx := context.Background()

	t.Run("advances one card per swipe and clamps at the end", func(t *testing.T) {
		s := NewSwipeSession(New(srv.URL), "user-1", testDeck())

		assert.Equal(t, StateBrowsing, s.State())
		current, ok := s.Current()
		require.True(t, ok)
		assert.Equal(t, "user-2", current.ID)

		s.Pass()
		assert.Equal(t, 1, s.Index())
		s.Like(ctx)
		assert.Equal(t, 2, s.Index())
		s.SuperLike(ctx)
		assert.Equal(t, 3, s.Index())
		assert.Equal(t, StateExhausted, s.State())

		// swiping past the end never wraps
		s.Pass()
		s.Like(ctx)
		assert.Equal(t, 3, s.Index())
		_, ok = s.Current()
		assert.False(t, ok)
	})

	t.Run("empty deck starts exhausted", func(t *testing.T) {
		s := NewSwipeSession(New(srv.URL), "user-1", nil)
		assert.Equal(t, StateExhausted, s.State())
	})

	t.Run("like records the match locally", func(t *testing.T) {
		s := NewSwipeSession(New(srv.URL), "user-1", testDeck())

		result := s.Like(ctx)
		require.NotNil(t, result)
		assert.Equal(t, "match-user-2", result.ID)
		assert.Equal(t, 1, s.Matches().Len())

		notice, ok := s.Notice()
		require.True(t, ok)
		assert.Equal(t, ToneSuccess, notice.Tone)
	})

	t.Run("failed like still advances", func(t *testing.T) {
		shouldFail = true
		defer func() { shouldFail = false }()

		s := NewSwipeSession(New(srv.URL), "user-1", testDeck())

		result := s.Like(ctx)
		assert.Nil(t, result)
		assert.Equal(t, 1, s.Index())
		assert.Equal(t, 0, s.Matches().Len())

		notice, ok := s.Notice()
		require.True(t, ok)
		assert.Equal(t, ToneError, notice.Tone)
		assert.Equal(t, "Something glitched. Try sending that vibe again.", notice.Message)
	})

	t.Run("notice auto-dismisses after the fixed delay", func(t *testing.T) {
		s := NewSwipeSession(New(srv.URL), "user-1", testDeck())

		current := time.Now()
		s.now = func() time.Time { return current }

		s.Pass()
		_, ok := s.Notice()
		assert.True(t, ok)

		current = current.Add(noticeTTL + time.Second)
		_, ok = s.Notice()
		assert.False(t, ok)
	})
}

func TestMatchList(t *testing.T) {
	older := models.MatchView{Match: models.Match{ID: "match-1", CreatedAt: time.Now().Add(-time.Hour)}}
	newer := models.MatchView{Match: models.Match{ID: "match-2", CreatedAt: time.Now()}}

	t.Run("upsert replaces in place", func(t *testing.T) {
		l := NewMatchList()
		l.Upsert(older)
		l.Upsert(newer)

		updated := older
		updated.Compatibility = 99
		l.Upsert(updated)

		require.Equal(t, 2, l.Len())
		sorted := l.Sorted()
		assert.Equal(t, "match-2", sorted[0].ID)
		assert.Equal(t, 99, sorted[1].Compatibility)
	})

	t.Run("add ignores duplicates", func(t *testing.T) {
		l := NewMatchList()
		assert.True(t, l.Add(older))
		assert.False(t, l.Add(older))
		assert.Equal(t, 1, l.Len())
	})

	t.Run("sorted orders by recency descending", func(t *testing.T) {
		l := NewMatchList()
		l.Add(older)
		l.Add(newer)

		sorted := l.Sorted()
		require.Len(t, sorted, 2)
		assert.Equal(t, "match-2", sorted[0].ID)
		assert.Equal(t, "match-1", sorted[1].ID)
	})
}
