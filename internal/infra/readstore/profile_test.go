//go:build unit

package readstore_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"bibliolights/internal/infra"
	"bibliolights/internal/infra/query"
	"bibliolights/internal/infra/readstore"
	"bibliolights/internal/pkg/ptr"
	"bibliolights/tests/common/builder"
	readstoremock "bibliolights/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestProfileReadStore_Details(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	updated := time.Date(2025, 3, 4, 9, 0, 0, 0, time.UTC)

	testCases := []struct {
		name       string
		row        query.UserDetails
		returnErr  error
		wantNil    bool
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "stored details",
			row:  query.UserDetails{UserID: userID, City: ptr.Of("Bogotá"), UpdatedAt: updated},
		},
		{
			name:      "no row yet",
			returnErr: pgx.ErrNoRows,
			wantNil:   true,
		},
		{
			name:       "database failure",
			returnErr:  errors.New("reset by peer"),
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := readstoremock.NewMockProfileReadQueries(ctrl)
			mockDB := &mockDBTX{}
			store := readstore.NewProfileReadStore(mockQueries, mockDB)

			mockQueries.EXPECT().GetUserDetails(ctx, mockDB, userID).Return(tc.row, tc.returnErr)

			view, err := store.Details(ctx, userID)
			switch {
			case tc.expectKind != "":
				assert.True(t, infra.IsKind(err, tc.expectKind))
			case tc.wantNil:
				require.NoError(t, err)
				assert.Nil(t, view)
			default:
				require.NoError(t, err)
				require.NotNil(t, view)
				assert.Equal(t, "Bogotá", *view.City)
				assert.Nil(t, view.FirstName)
				require.NotNil(t, view.UpdatedAt)
				assert.Equal(t, updated, *view.UpdatedAt)
			}
		})
	}
}

func TestProfileReadStore_Favorites(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := readstoremock.NewMockProfileReadQueries(ctrl)
	mockDB := &mockDBTX{}
	store := readstore.NewProfileReadStore(mockQueries, mockDB)
	userID := uuid.New()
	entry := builder.NewCatalogEntryBuilder()
	favoritedAt := time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC)

	mockQueries.EXPECT().ListFavoriteEntries(ctx, mockDB, userID).Return([]query.FavoriteEntry{
		{CatalogEntry: entry.BuildRow(), FavoritedAt: favoritedAt},
	}, nil)

	items, err := store.Favorites(ctx, userID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, entry.ID, items[0].ID)
	assert.Equal(t, entry.Title, items[0].Title)
	assert.Equal(t, favoritedAt, items[0].FavoritedAt)
}
