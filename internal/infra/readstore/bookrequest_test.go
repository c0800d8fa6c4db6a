//go:build unit

package readstore_test

import (
	"context"
	"testing"

	"bibliolights/internal/infra"
	"bibliolights/internal/infra/query"
	"bibliolights/internal/infra/readstore"
	"bibliolights/internal/pkg/ptr"
	"bibliolights/internal/usecase/queries"
	"bibliolights/tests/common/builder"
	readstoremock "bibliolights/tests/mock/readstore"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestBookRequestReadStore_FindByID(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := readstoremock.NewMockBookRequestReadQueries(ctrl)
	mockDB := &mockDBTX{}
	store := readstore.NewBookRequestReadStore(mockQueries, mockDB)
	b := builder.NewBookRequestBuilder()

	mockQueries.EXPECT().GetBookRequestByID(ctx, mockDB, b.ID).Return(b.BuildRow(), nil)
	view, err := store.FindByID(ctx, b.ID)
	require.NoError(t, err)
	if diff := cmp.Diff(b.BuildView(), view); diff != "" {
		t.Errorf("view mismatch (-want +got):\n%s", diff)
	}

	mockQueries.EXPECT().GetBookRequestByID(ctx, mockDB, b.ID).Return(query.BookRequestView{}, pgx.ErrNoRows)
	_, err = store.FindByID(ctx, b.ID)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}

func TestBookRequestReadStore_List(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := readstoremock.NewMockBookRequestReadQueries(ctrl)
	mockDB := &mockDBTX{}
	store := readstore.NewBookRequestReadStore(mockQueries, mockDB)
	userID := uuid.New()
	b := builder.NewBookRequestBuilder().With(func(b *builder.BookRequestBuilder) { b.UserID = userID })

	mockQueries.EXPECT().ListBookRequests(ctx, mockDB, query.ListBookRequestsParams{
		UserID: &userID,
		Status: ptr.Of("pending"),
		Limit:  21,
	}).Return([]query.BookRequestView{b.BuildRow()}, nil)

	items, err := store.List(ctx, queries.BookRequestFilter{UserID: &userID, Status: ptr.Of("pending"), Limit: 21})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, userID, items[0].UserID)
}
