package characters_test

import (
	"context"
	"testing"

	"github.com/KirkDiggler/dnd-long-rest/internal/domain/character"
	dnderr "github.com/KirkDiggler/dnd-long-rest/internal/errors"
	"github.com/KirkDiggler/dnd-long-rest/internal/repositories/characters"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryRepository(t *testing.T) {
	ctx := context.Background()
	repo := characters.NewInMemoryRepository()

	char := &character.Character{
		ID:      "char-1",
		OwnerID: "owner-1",
		Name:    "Thorin",
		HP:      character.HitPoints{Value: 5, Max: 20},
		Items: []*character.Item{
			{ID: "fighter", HitDice: &character.ClassHitDice{Denomination: 10, Levels: 2}},
		},
	}
	require.NoError(t, repo.Create(ctx, char))
	require.NoError(t, repo.Create(ctx, &character.Character{ID: "char-2", OwnerID: "owner-1", Name: "Aria"}))

	t.Run("duplicate create fails", func(t *testing.T) {
		err := repo.Create(ctx, char)
		assert.True(t, dnderr.IsAlreadyExists(err))
	})

	t.Run("stored copy is isolated", func(t *testing.T) {
		char.Items[0].HitDice.Used = 2

		got, err := repo.Get(ctx, "char-1")
		require.NoError(t, err)
		assert.Equal(t, 0, got.Items[0].HitDice.Used)

		got.HP.Value = 1
		again, err := repo.Get(ctx, "char-1")
		require.NoError(t, err)
		assert.Equal(t, 5, again.HP.Value)
	})

	t.Run("update", func(t *testing.T) {
		got, err := repo.Get(ctx, "char-1")
		require.NoError(t, err)
		got.HP.Value = 20
		require.NoError(t, repo.Update(ctx, got))

		again, err := repo.Get(ctx, "char-1")
		require.NoError(t, err)
		assert.Equal(t, 20, again.HP.Value)

		err = repo.Update(ctx, &character.Character{ID: "missing"})
		assert.True(t, dnderr.IsNotFound(err))
	})

	t.Run("by owner sorted by name", func(t *testing.T) {
		list, err := repo.GetByOwner(ctx, "owner-1")
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, "Aria", list[0].Name)
		assert.Equal(t, "Thorin", list[1].Name)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, "char-2"))
		_, err := repo.Get(ctx, "char-2")
		assert.True(t, dnderr.IsNotFound(err))
		assert.True(t, dnderr.IsNotFound(repo.Delete(ctx, "char-2")))
	})
}
