//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"bibliolights/internal/domain/bookrequest"
	"bibliolights/internal/usecase/queries"
	"bibliolights/tests/common/builder"
	queriesmock "bibliolights/tests/mock/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func catalogViews(n int) []*queries.CatalogEntryView {
	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	views := make([]*queries.CatalogEntryView, n)
	for i := range views {
		views[i] = builder.NewCatalogEntryBuilder().With(func(b *builder.CatalogEntryBuilder) {
			b.CreatedAt = base.Add(-time.Duration(i) * time.Minute)
		}).BuildView()
	}
	return views
}

func TestCatalogQueries_List(t *testing.T) {
	ctx := context.Background()

	t.Run("fetches one extra row to detect the next page", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockCatalogReadStore(ctrl)
		rows := catalogViews(3)
		store.EXPECT().List(gomock.Any(), (*queries.Position)(nil), int32(3)).Return(rows, nil)

		items, next, err := queries.NewCatalogQueries(store).List(ctx, nil, 2)
		require.NoError(t, err)
		require.Len(t, items, 2)
		require.NotNil(t, next)

		pos, err := queries.DecodeAfterCursor(next.After)
		require.NoError(t, err)
		assert.Equal(t, rows[1].ID, pos.ID)
		assert.True(t, rows[1].CreatedAt.Equal(pos.CreatedAt))
	})

	t.Run("last page has no cursor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockCatalogReadStore(ctrl)
		store.EXPECT().List(gomock.Any(), gomock.Any(), int32(queries.DefaultListLimit+1)).Return(catalogViews(1), nil)

		items, next, err := queries.NewCatalogQueries(store).List(ctx, nil, 0)
		require.NoError(t, err)
		assert.Len(t, items, 1)
		assert.Nil(t, next)
	})

	t.Run("cursor is decoded into a position", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockCatalogReadStore(ctrl)
		at := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
		id := uuid.New()
		store.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, after *queries.Position, _ int32) ([]*queries.CatalogEntryView, error) {
				require.NotNil(t, after)
				assert.Equal(t, id, after.ID)
				assert.True(t, at.Equal(after.CreatedAt))
				return nil, nil
			})

		_, _, err := queries.NewCatalogQueries(store).List(ctx, &queries.Cursor{After: queries.EncodeAfterCursor(at, id)}, 10)
		require.NoError(t, err)
	})

	t.Run("malformed cursor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockCatalogReadStore(ctrl)

		_, _, err := queries.NewCatalogQueries(store).List(ctx, &queries.Cursor{After: "garbage"}, 10)
		require.ErrorIs(t, err, queries.ErrInvalidCursor)
	})
}

func TestCatalogQueries_GetByID(t *testing.T) {
	t.Run("repeated reads return the same counters", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockCatalogReadStore(ctrl)
		view := builder.NewCatalogEntryBuilder().WithQuota(4, 1).BuildView()
		store.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil).Times(2)
		q := queries.NewCatalogQueries(store)

		first, err := q.GetByID(context.Background(), view.ID)
		require.NoError(t, err)
		second, err := q.GetByID(context.Background(), view.ID)
		require.NoError(t, err)

		if diff := cmp.Diff(first, second); diff != "" {
			t.Errorf("second read differs (-first +second):\n%s", diff)
		}
		assert.Equal(t, 1, second.Reserved)
		assert.Equal(t, 4, second.Quota)
	})
}

func TestCatalogQueries_Stats(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockCatalogReadStore(ctrl)
	view := builder.NewCatalogEntryBuilder().WithQuota(3, 2).BuildView()

	store.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)
	store.EXPECT().CountRequestsByStatus(gomock.Any(), view.ID).Return(map[string]int64{"pending": 1, "approved": 1}, nil)

	stats, err := queries.NewCatalogQueries(store).Stats(context.Background(), view.ID)
	require.NoError(t, err)

	want := &queries.CatalogStatsView{
		CatalogEntryID: view.ID,
		Quota:          3,
		Reserved:       2,
		RequestsByStatus: map[string]int64{
			"pending": 1, "approved": 1, "rejected": 0, "processing": 0, "delivered": 0,
		},
	}
	if diff := cmp.Diff(want, stats); diff != "" {
		t.Errorf("stats mismatch (-want +got):\n%s", diff)
	}
}

func TestBookRequestQueries(t *testing.T) {
	ctx := context.Background()

	t.Run("list for user scopes the filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockBookRequestReadStore(ctrl)
		userID := uuid.New()
		status := string(bookrequest.StatusPending)
		view := builder.NewBookRequestBuilder().BuildView()

		store.EXPECT().List(gomock.Any(), queries.BookRequestFilter{
			UserID: &userID,
			Status: &status,
			Limit:  int32(queries.DefaultListLimit + 1),
		}).Return([]*queries.BookRequestView{view}, nil)

		items, next, err := queries.NewBookRequestQueries(store).ListForUser(ctx, userID, &status, nil, 0)
		require.NoError(t, err)
		assert.Equal(t, []*queries.BookRequestView{view}, items)
		assert.Nil(t, next)
	})

	t.Run("unknown status filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockBookRequestReadStore(ctrl)
		status := "cancelled"

		_, _, err := queries.NewBookRequestQueries(store).ListAll(ctx, &status, nil, 0)
		require.ErrorIs(t, err, bookrequest.ErrInvalidStatus)
	})
}

func TestOrderQueries_ListForOwner(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockOrderReadStore(ctrl)
	ownerID := uuid.New()
	view := builder.NewOrderBuilder().BuildView()

	store.EXPECT().List(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, f queries.OrderFilter) ([]*queries.OrderView, error) {
			require.NotNil(t, f.OwnerID)
			assert.Equal(t, ownerID, *f.OwnerID)
			assert.Nil(t, f.Status)
			return []*queries.OrderView{view}, nil
		})

	items, _, err := queries.NewOrderQueries(store).ListForOwner(context.Background(), ownerID, nil, nil, 5)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "25", items[0].TotalAmount.String())
}

func TestProfileQueries(t *testing.T) {
	ctx := context.Background()

	t.Run("missing details render as nulls", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockProfileReadStore(ctrl)
		userID := uuid.New()
		store.EXPECT().Details(gomock.Any(), userID).Return(nil, nil)

		d, err := queries.NewProfileQueries(store).Details(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, &queries.UserDetailsView{UserID: userID}, d)
	})

	t.Run("no favorites is an empty list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockProfileReadStore(ctrl)
		store.EXPECT().Favorites(gomock.Any(), gomock.Any()).Return(nil, nil)

		items, err := queries.NewProfileQueries(store).Favorites(ctx, uuid.New())
		require.NoError(t, err)
		assert.NotNil(t, items)
		assert.Empty(t, items)
	})
}
