//go:build unit

package commands_test

import (
	"context"
	"testing"

	"bibliolights/internal/domain/user"
	"bibliolights/internal/pkg/clock"
	"bibliolights/internal/pkg/errs"
	"bibliolights/internal/pkg/ptr"
	"bibliolights/internal/usecase/commands"
	"bibliolights/tests/common/builder"
	"bibliolights/tests/common/memstore"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileCommands(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	cmds := commands.NewProfileCommands(store, clock.NewMockClock(fixedNow))

	t.Run("favorite toggles", func(t *testing.T) {
		entry := builder.NewCatalogEntryBuilder()
		store.PutEntry(entry.BuildSnapshot())
		userID := uuid.New()

		on, err := cmds.ToggleFavorite(ctx, userID, entry.ID)
		require.NoError(t, err)
		assert.True(t, on)
		assert.True(t, store.IsFavorite(userID, entry.ID))

		on, err = cmds.ToggleFavorite(ctx, userID, entry.ID)
		require.NoError(t, err)
		assert.False(t, on)
		assert.False(t, store.IsFavorite(userID, entry.ID))
	})

	t.Run("favorite on missing entry", func(t *testing.T) {
		_, err := cmds.ToggleFavorite(ctx, uuid.New(), uuid.New())
		assert.Equal(t, errs.KindNotFound, errs.KindOf(err))
	})

	t.Run("details replace the whole profile", func(t *testing.T) {
		userID := uuid.New()
		_, err := cmds.SaveDetails(ctx, userID, user.DetailsInput{FirstName: ptr.Of("Ana"), City: ptr.Of("Lima")})
		require.NoError(t, err)

		_, err = cmds.SaveDetails(ctx, userID, user.DetailsInput{FirstName: ptr.Of("Ana"), City: ptr.Of("")})
		require.NoError(t, err)

		d, ok := store.Details(userID)
		require.True(t, ok)
		assert.Equal(t, "Ana", *d.FirstName())
		assert.Nil(t, d.City())
		assert.Equal(t, fixedNow, d.UpdatedAt())
	})
}
