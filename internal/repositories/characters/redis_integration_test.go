//go:build integration
// +build integration

package characters_test

import (
	"context"
	"testing"

	dnderr "github.com/KirkDiggler/dnd-long-rest/internal/errors"
	"github.com/KirkDiggler/dnd-long-rest/internal/repositories/characters"
	"github.com/KirkDiggler/dnd-long-rest/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisRepository_Integration(t *testing.T) {
	client := testutils.StartRedisContainer(t)
	repo := characters.NewRedis(client)
	ctx := context.Background()

	t.Run("create and retrieve character", func(t *testing.T) {
		char := testutils.CreateTestCharacter("test-char-1", "user-123", "Aragorn")
		require.NoError(t, repo.Create(ctx, char))

		retrieved, err := repo.Get(ctx, char.ID)
		require.NoError(t, err)
		assert.Equal(t, char.Name, retrieved.Name)
		assert.Equal(t, char.HP, retrieved.HP)
		assert.Equal(t, char.HitDice(), retrieved.HitDice())
		assert.Equal(t, 1, *retrieved.Resources["primary"].Max)
		assert.False(t, retrieved.CreatedAt.IsZero())
	})

	t.Run("create duplicate character fails", func(t *testing.T) {
		char := testutils.CreateTestCharacter("test-char-2", "user-123", "Legolas")
		require.NoError(t, repo.Create(ctx, char))
		assert.True(t, dnderr.IsAlreadyExists(repo.Create(ctx, char)))
	})

	t.Run("update and list by owner", func(t *testing.T) {
		char, err := repo.Get(ctx, "test-char-1")
		require.NoError(t, err)
		char.HP.Value = char.HP.Max
		require.NoError(t, repo.Update(ctx, char))

		list, err := repo.GetByOwner(ctx, "user-123")
		require.NoError(t, err)
		assert.Len(t, list, 2)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, "test-char-2"))
		_, err := repo.Get(ctx, "test-char-2")
		assert.True(t, dnderr.IsNotFound(err))
	})
}
