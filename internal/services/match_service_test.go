package services

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omoluabi/heartville/internal/models"
	"github.com/omoluabi/heartville/internal/repositories/memory"
	"github.com/omoluabi/heartville/internal/utils"
)

type recordedEvent struct {
	event string
	data  any
}

type recordingBroadcaster struct {
	mu     sync.Mutex
	events []recordedEvent
}

func (b *recordingBroadcaster) Broadcast(event string, data any) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, recordedEvent{event: event, data: data})
}

func (b *recordingBroadcaster) Events() []recordedEvent {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]recordedEvent, len(b.events))
	copy(out, b.events)
	return out
}

func newTestMatchService(seedMatches []models.Match) (MatchService, *recordingBroadcaster) {
	broadcaster := &recordingBroadcaster{}
	svc := NewMatchService(
		memory.NewProfileRepo(memory.DemoProfiles()),
		memory.NewMatchRepo(seedMatches),
		memory.NewMessageRepo(memory.DemoMessagePreviews()),
		broadcaster,
	)
	return svc, broadcaster
}

func TestCreateMatch(t *testing.T) {
	ctx := context.Background()

	t.Run("fresh store creates and broadcasts", func(t *testing.T) {
		svc, broadcaster := newTestMatchService(nil)

		result, err := svc.Create(ctx, "user-1", "user-2", false)
		require.NoError(t, err)
		require.NotNil(t, result)

		assert.True(t, result.NewlyCreated)
		assert.Equal(t, "user-1", result.UserID)
		assert.Equal(t, "user-2", result.TargetID)
		require.NotNil(t, result.Profile)
		assert.Equal(t, "Maya Green", result.Profile.Name)
		assert.Len(t, result.ConversationStarters, 3)
		assert.Equal(t, 92, result.Compatibility)

		events := broadcaster.Events()
		require.Len(t, events, 1)
		assert.Equal(t, EventNewMatch, events[0].event)
		view, ok := events[0].data.(models.MatchView)
		require.True(t, ok)
		assert.Equal(t, result.ID, view.ID)
	})

	t.Run("repeat like is idempotent", func(t *testing.T) {
		svc, broadcaster := newTestMatchService(nil)

		first, err := svc.Create(ctx, "user-1", "user-3", false)
		require.NoError(t, err)
		second, err := svc.Create(ctx, "user-1", "user-3", true)
		require.NoError(t, err)

		assert.Equal(t, first.ID, second.ID)
		assert.True(t, first.NewlyCreated)
		assert.False(t, second.NewlyCreated)

		matches, err := svc.ListByUser(ctx, "user-1")
		require.NoError(t, err)
		assert.Len(t, matches, 1)

		// only the first call fires the broadcast
		assert.Len(t, broadcaster.Events(), 1)
	})

	t.Run("super like adds bonus within bound", func(t *testing.T) {
		svc, _ := newTestMatchService(nil)

		// user-4 base 85 -> 88
		result, err := svc.Create(ctx, "user-1", "user-4", true)
		require.NoError(t, err)
		assert.Equal(t, 88, result.Compatibility)
	})

	t.Run("super like never exceeds 99", func(t *testing.T) {
		svc, _ := newTestMatchService(nil)

		// user-1 base 97 -> capped at 99
		result, err := svc.Create(ctx, "user-2", "user-1", true)
		require.NoError(t, err)
		assert.Equal(t, 99, result.Compatibility)
	})

	t.Run("missing target id", func(t *testing.T) {
		svc, broadcaster := newTestMatchService(nil)

		_, err := svc.Create(ctx, "user-1", "", false)
		require.Error(t, err)
		assert.True(t, utils.IsCode(err, utils.CodeInvalidArgument))
		assert.Empty(t, broadcaster.Events())
	})

	t.Run("unknown target profile", func(t *testing.T) {
		svc, broadcaster := newTestMatchService(nil)

		_, err := svc.Create(ctx, "user-1", "user-999", false)
		require.Error(t, err)
		assert.True(t, utils.IsCode(err, utils.CodeNotFound))
		assert.Empty(t, broadcaster.Events())
	})

	t.Run("empty user id falls back to demo user", func(t *testing.T) {
		svc, _ := newTestMatchService(nil)

		result, err := svc.Create(ctx, "", "user-2", false)
		require.NoError(t, err)
		assert.Equal(t, DefaultUserID, result.UserID)
	})

	t.Run("concurrent likes for one pair create a single match", func(t *testing.T) {
		svc, broadcaster := newTestMatchService(nil)

		const workers = 16
		results := make([]*models.MatchResult, workers)
		var wg sync.WaitGroup
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				result, err := svc.Create(ctx, "user-1", "user-2", false)
				assert.NoError(t, err)
				results[i] = result
			}(i)
		}
		wg.Wait()

		matches, err := svc.ListByUser(ctx, "user-1")
		require.NoError(t, err)
		assert.Len(t, matches, 1)

		// exactly one caller wins; everyone sees the same match
		createdCount := 0
		for _, result := range results {
			require.NotNil(t, result)
			if result.NewlyCreated {
				createdCount++
			}
			assert.Equal(t, matches[0].ID, result.ID)
		}
		assert.Equal(t, 1, createdCount)
		assert.Len(t, broadcaster.Events(), 1)
	})

	t.Run("starters use first name, first interest, and vibe", func(t *testing.T) {
		svc, _ := newTestMatchService(nil)

		result, err := svc.Create(ctx, "user-1", "user-2", false)
		require.NoError(t, err)
		require.Len(t, result.ConversationStarters, 3)
		assert.Equal(t, "Ask Maya about their favorite trail running.", result.ConversationStarters[0])
		assert.Equal(t, "Share a story that shows your grounded, generous, purposeful energy.", result.ConversationStarters[1])
		assert.Equal(t, "Plan a mini-adventure you could co-create this month.", result.ConversationStarters[2])
	})
}

func TestListByUser(t *testing.T) {
	ctx := context.Background()

	t.Run("embeds target profiles", func(t *testing.T) {
		svc, _ := newTestMatchService(memory.DemoMatches(DefaultUserID))

		matches, err := svc.ListByUser(ctx, DefaultUserID)
		require.NoError(t, err)
		require.Len(t, matches, 2)
		require.NotNil(t, matches[0].Profile)
		assert.Equal(t, "Maya Green", matches[0].Profile.Name)
		require.NotNil(t, matches[1].Profile)
		assert.Equal(t, "Sasha Ibarra", matches[1].Profile.Name)
	})

	t.Run("new matches come first", func(t *testing.T) {
		svc, _ := newTestMatchService(memory.DemoMatches(DefaultUserID))

		created, err := svc.Create(ctx, DefaultUserID, "user-3", false)
		require.NoError(t, err)

		matches, err := svc.ListByUser(ctx, DefaultUserID)
		require.NoError(t, err)
		require.Len(t, matches, 3)
		assert.Equal(t, created.ID, matches[0].ID)
	})

	t.Run("unknown user has no matches", func(t *testing.T) {
		svc, _ := newTestMatchService(memory.DemoMatches(DefaultUserID))

		matches, err := svc.ListByUser(ctx, "user-3")
		require.NoError(t, err)
		assert.Empty(t, matches)
	})

	t.Run("empty user id matches nobody", func(t *testing.T) {
		svc, _ := newTestMatchService(memory.DemoMatches(DefaultUserID))

		matches, err := svc.ListByUser(ctx, "")
		require.NoError(t, err)
		assert.Empty(t, matches)
	})
}

func TestRewind(t *testing.T) {
	ctx := context.Background()

	t.Run("removes the match", func(t *testing.T) {
		svc, _ := newTestMatchService(memory.DemoMatches(DefaultUserID))

		require.NoError(t, svc.Rewind(ctx, "user-2"))

		matches, err := svc.ListByUser(ctx, DefaultUserID)
		require.NoError(t, err)
		require.Len(t, matches, 1)
		assert.Equal(t, "user-4", matches[0].TargetID)
	})

	t.Run("rewind then re-like creates a fresh match", func(t *testing.T) {
		svc, broadcaster := newTestMatchService(nil)

		first, err := svc.Create(ctx, DefaultUserID, "user-2", false)
		require.NoError(t, err)
		require.NoError(t, svc.Rewind(ctx, "user-2"))

		matches, err := svc.ListByUser(ctx, DefaultUserID)
		require.NoError(t, err)
		assert.Empty(t, matches)

		second, err := svc.Create(ctx, DefaultUserID, "user-2", false)
		require.NoError(t, err)
		assert.True(t, second.NewlyCreated)
		assert.NotEqual(t, first.ID, second.ID)

		// both creations broadcast; the rewind does not
		assert.Len(t, broadcaster.Events(), 2)
	})

	t.Run("missing target id", func(t *testing.T) {
		svc, _ := newTestMatchService(nil)
		err := svc.Rewind(ctx, "")
		assert.True(t, utils.IsCode(err, utils.CodeInvalidArgument))
	})

	t.Run("no such match", func(t *testing.T) {
		svc, _ := newTestMatchService(nil)
		err := svc.Rewind(ctx, "user-3")
		assert.True(t, utils.IsCode(err, utils.CodeNotFound))
	})
}

func TestMessagesByUser(t *testing.T) {
	ctx := context.Background()

	t.Run("returns previews for the user's matches only", func(t *testing.T) {
		svc, _ := newTestMatchService(memory.DemoMatches(DefaultUserID))

		messages, err := svc.MessagesByUser(ctx, DefaultUserID)
		require.NoError(t, err)
		require.Len(t, messages, 2)
		assert.Equal(t, "match-1", messages[0].MatchID)
		assert.Equal(t, "match-2", messages[1].MatchID)
	})

	t.Run("user with zero matches gets an empty list", func(t *testing.T) {
		svc, _ := newTestMatchService(memory.DemoMatches(DefaultUserID))

		messages, err := svc.MessagesByUser(ctx, "user-3")
		require.NoError(t, err)
		assert.Empty(t, messages)
	})

	t.Run("rewind removes the preview from view", func(t *testing.T) {
		svc, _ := newTestMatchService(memory.DemoMatches(DefaultUserID))

		require.NoError(t, svc.Rewind(ctx, "user-2"))

		messages, err := svc.MessagesByUser(ctx, DefaultUserID)
		require.NoError(t, err)
		require.Len(t, messages, 1)
		assert.Equal(t, "match-2", messages[0].MatchID)
	})
}
