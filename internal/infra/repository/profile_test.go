//go:build unit

package repository_test

import (
	"context"
	"testing"
	"time"

	"bibliolights/internal/domain/user"
	"bibliolights/internal/infra"
	"bibliolights/internal/infra/query"
	"bibliolights/internal/infra/repository"
	"bibliolights/internal/pkg/ptr"
	repositorymock "bibliolights/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestFavoriteRepository(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	userID, entryID := uuid.New(), uuid.New()

	t.Run("add reports whether a row was inserted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockFavoriteWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewFavoriteRepository(mockQueries, mockDB)

		mockQueries.EXPECT().InsertFavorite(ctx, mockDB, userID, entryID, now).Return(int64(1), nil)
		added, err := repo.Add(ctx, mockDB, userID, entryID, now)
		require.NoError(t, err)
		assert.True(t, added)

		mockQueries.EXPECT().InsertFavorite(ctx, mockDB, userID, entryID, now).Return(int64(0), nil)
		added, err = repo.Add(ctx, mockDB, userID, entryID, now)
		require.NoError(t, err)
		assert.False(t, added)
	})

	t.Run("add for a missing entry is not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockFavoriteWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewFavoriteRepository(mockQueries, mockDB)

		mockQueries.EXPECT().InsertFavorite(ctx, mockDB, userID, entryID, now).
			Return(int64(0), &pgconn.PgError{Code: "23503"})
		_, err := repo.Add(ctx, mockDB, userID, entryID, now)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("remove", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockFavoriteWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewFavoriteRepository(mockQueries, mockDB)

		mockQueries.EXPECT().DeleteFavorite(ctx, mockDB, userID, entryID).Return(int64(1), nil)
		removed, err := repo.Remove(ctx, mockDB, userID, entryID)
		require.NoError(t, err)
		assert.True(t, removed)
	})
}

func TestUserDetailsRepository_Upsert(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockUserDetailsWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewUserDetailsRepository(mockQueries, mockDB)

	d, err := user.NewDetails(uuid.New(), user.DetailsInput{FirstName: ptr.Of("Ana"), LastName: ptr.Of(" ")}, time.Now())
	require.NoError(t, err)

	mockQueries.EXPECT().UpsertUserDetails(ctx, mockDB, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ query.DBTX, arg query.UpsertUserDetailsParams) (query.UserDetails, error) {
			assert.Equal(t, d.UserID(), arg.UserID)
			require.NotNil(t, arg.FirstName)
			assert.Equal(t, "Ana", *arg.FirstName)
			assert.Nil(t, arg.LastName)
			assert.Nil(t, arg.DateOfBirth)
			return query.UserDetails{}, nil
		})

	require.NoError(t, repo.Upsert(ctx, mockDB, d))
}
