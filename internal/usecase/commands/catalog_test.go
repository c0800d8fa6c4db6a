//go:build unit

package commands_test

import (
	"context"
	"testing"

	"bibliolights/internal/domain/catalog"
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

func TestCatalogCommands(t *testing.T) {
	ctx := context.Background()

	newCommands := func() (commands.CatalogCommands, *memstore.Store) {
		store := memstore.New()
		return commands.NewCatalogCommands(store, clock.NewMockClock(fixedNow)), store
	}

	t.Run("create", func(t *testing.T) {
		cmds, store := newCommands()
		e, err := cmds.Create(ctx, builder.NewCatalogEntryBuilder().Input())
		require.NoError(t, err)

		stored, ok := store.Entry(e.ID())
		require.True(t, ok)
		assert.Equal(t, 0, stored.Reserved)
	})

	t.Run("partial update keeps omitted fields", func(t *testing.T) {
		cmds, store := newCommands()
		b := builder.NewCatalogEntryBuilder().WithQuota(5, 2)
		store.PutEntry(b.BuildSnapshot())

		e, err := cmds.Update(ctx, b.ID, commands.CatalogPatch{Title: ptr.Of("El amor en los tiempos del cólera")})
		require.NoError(t, err)
		assert.Equal(t, "El amor en los tiempos del cólera", e.Title())
		assert.Equal(t, b.Author, e.Author())
		assert.Equal(t, 5, e.Quota())

		stored, _ := store.Entry(b.ID)
		assert.Equal(t, 2, stored.Reserved)
	})

	t.Run("update with quota below reserved", func(t *testing.T) {
		cmds, store := newCommands()
		b := builder.NewCatalogEntryBuilder().WithQuota(5, 3)
		store.PutEntry(b.BuildSnapshot())

		_, err := cmds.Update(ctx, b.ID, commands.CatalogPatch{Quota: ptr.Of(2)})
		require.ErrorIs(t, err, catalog.ErrQuotaBelowReserved)

		stored, _ := store.Entry(b.ID)
		assert.Equal(t, 5, stored.Quota)
	})

	t.Run("update of an entry deleted mid-flight", func(t *testing.T) {
		cmds, store := newCommands()
		b := builder.NewCatalogEntryBuilder().WithQuota(5, 0)
		store.PutEntry(b.BuildSnapshot())
		store.BeforeEntryUpdate = store.RemoveEntry

		_, err := cmds.Update(ctx, b.ID, commands.CatalogPatch{Title: ptr.Of("Pedro Páramo")})
		require.Error(t, err)
		assert.Equal(t, errs.KindNotFound, errs.KindOf(err))
		assert.NotErrorIs(t, err, catalog.ErrQuotaBelowReserved)
	})

	t.Run("update quota below reserved", func(t *testing.T) {
		cmds, store := newCommands()
		b := builder.NewCatalogEntryBuilder().WithQuota(5, 3)
		store.PutEntry(b.BuildSnapshot())

		_, err := cmds.UpdateQuota(ctx, b.ID, 2)
		require.ErrorIs(t, err, catalog.ErrQuotaBelowReserved)

		c, err := cmds.UpdateQuota(ctx, b.ID, 3)
		require.NoError(t, err)
		assert.Equal(t, 3, c.Quota)
		assert.Equal(t, 3, c.Reserved)

		_, err = cmds.UpdateQuota(ctx, b.ID, -1)
		require.ErrorIs(t, err, catalog.ErrNegativeQuota)
	})

	t.Run("update quota of missing entry", func(t *testing.T) {
		cmds, _ := newCommands()
		_, err := cmds.UpdateQuota(ctx, uuid.New(), 3)
		assert.Equal(t, errs.KindNotFound, errs.KindOf(err))
	})

	t.Run("delete entry with requests", func(t *testing.T) {
		cmds, store := newCommands()
		entry := builder.NewCatalogEntryBuilder()
		store.PutEntry(entry.BuildSnapshot())
		store.PutRequest(builder.NewBookRequestBuilder().ForEntry(entry).BuildSnapshot())

		err := cmds.Delete(ctx, entry.ID)
		require.ErrorIs(t, err, catalog.ErrEntryInUse)
	})

	t.Run("delete", func(t *testing.T) {
		cmds, store := newCommands()
		entry := builder.NewCatalogEntryBuilder()
		store.PutEntry(entry.BuildSnapshot())

		require.NoError(t, cmds.Delete(ctx, entry.ID))
		_, ok := store.Entry(entry.ID)
		assert.False(t, ok)
	})
}
