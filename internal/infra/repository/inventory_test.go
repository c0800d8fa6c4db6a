//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"bibliolights/internal/infra"
	"bibliolights/internal/infra/query"
	"bibliolights/internal/infra/repository"
	"bibliolights/tests/common/builder"
	repositorymock "bibliolights/tests/mock/repository"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// =============================================================================
// Reserve / Release Tests
// =============================================================================

func TestInventoryRepository_Reserve(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)
	entry := builder.NewCatalogEntryBuilder().WithQuota(3, 1)

	testCases := []struct {
		name         string
		setupMock    func(*repositorymock.MockInventoryQueries, query.DBTX)
		wantReserved int
		expectKind   infra.RepositoryErrorKind
	}{
		{
			name: "success: slot reserved",
			setupMock: func(m *repositorymock.MockInventoryQueries, tx query.DBTX) {
				m.EXPECT().ReserveSlot(ctx, tx, entry.ID, now).Return(query.CatalogCounter{ID: entry.ID, Quota: 3, Reserved: 2}, nil)
			},
			wantReserved: 2,
		},
		{
			name: "error: no row matched the condition",
			setupMock: func(m *repositorymock.MockInventoryQueries, tx query.DBTX) {
				m.EXPECT().ReserveSlot(ctx, tx, entry.ID, now).Return(query.CatalogCounter{}, pgx.ErrNoRows)
			},
			expectKind: infra.KindConditionNotMet,
		},
		{
			name: "error: database failure",
			setupMock: func(m *repositorymock.MockInventoryQueries, tx query.DBTX) {
				m.EXPECT().ReserveSlot(ctx, tx, entry.ID, now).Return(query.CatalogCounter{}, errors.New("connection reset"))
			},
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockInventoryQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewInventoryRepository(mockQueries, mockDB)
			tc.setupMock(mockQueries, mockDB)

			c, err := repo.Reserve(ctx, mockDB, entry.ID, now)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantReserved, c.Reserved)
			assert.Equal(t, entry.ID, c.EntryID)
		})
	}
}

func TestInventoryRepository_SetQuota(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockInventoryQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewInventoryRepository(mockQueries, mockDB)
	entry := builder.NewCatalogEntryBuilder()

	mockQueries.EXPECT().UpdateCatalogQuota(ctx, mockDB, entry.ID, int32(1), now).Return(query.CatalogCounter{}, pgx.ErrNoRows)

	_, err := repo.SetQuota(ctx, mockDB, entry.ID, 1, now)
	assert.True(t, infra.IsKind(err, infra.KindConditionNotMet))
}

func TestInventoryRepository_Counter(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockInventoryQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewInventoryRepository(mockQueries, mockDB)
	entry := builder.NewCatalogEntryBuilder().WithQuota(4, 4)

	mockQueries.EXPECT().GetCatalogCounter(ctx, mockDB, entry.ID).Return(entry.BuildCounter(), nil)
	c, err := repo.Counter(ctx, mockDB, entry.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, c.Quota)
	assert.Equal(t, 4, c.Reserved)

	mockQueries.EXPECT().GetCatalogCounter(ctx, mockDB, entry.ID).Return(query.CatalogCounter{}, pgx.ErrNoRows)
	_, err = repo.Counter(ctx, mockDB, entry.ID)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}
