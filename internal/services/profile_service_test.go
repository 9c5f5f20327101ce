package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omoluabi/heartville/internal/repositories/memory"
	"github.com/omoluabi/heartville/internal/utils"
)

func TestProfileService(t *testing.T) {
	ctx := context.Background()
	svc := NewProfileService(memory.NewProfileRepo(memory.DemoProfiles()))

	t.Run("list", func(t *testing.T) {
		profiles, err := svc.List(ctx)
		require.NoError(t, err)
		assert.Len(t, profiles, 4)
	})

	t.Run("get", func(t *testing.T) {
		p, err := svc.Get(ctx, "user-3")
		require.NoError(t, err)
		assert.Equal(t, "Jasper Lin", p.Name)
	})

	t.Run("get unknown", func(t *testing.T) {
		_, err := svc.Get(ctx, "user-42")
		assert.True(t, utils.IsCode(err, utils.CodeNotFound))
	})

	t.Run("recommendations exclude the demo user", func(t *testing.T) {
		recs, err := svc.Recommendations(ctx)
		require.NoError(t, err)
		require.Len(t, recs, 3)
		for _, r := range recs {
			assert.NotEqual(t, DefaultUserID, r.ID)
		}
		assert.Equal(t, "Maya Green", recs[0].Name)
		assert.Equal(t, "You both geek out over impact projects, good storytelling, and altitude adventures.", recs[0].Highlight)
	})
}
