//go:build unit

package readstore_test

import (
	"context"
	"errors"
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

func TestOrderReadStore_FindByID(t *testing.T) {
	ctx := context.Background()

	t.Run("attaches line items", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockOrderReadQueries(ctrl)
		mockDB := &mockDBTX{}
		store := readstore.NewOrderReadStore(mockQueries, mockDB)
		b := builder.NewOrderBuilder()

		mockQueries.EXPECT().GetOrderByID(ctx, mockDB, b.ID).Return(b.BuildRow(), nil)
		mockQueries.EXPECT().ListOrderLineItems(ctx, mockDB, []uuid.UUID{b.ID}).Return(b.BuildLineItemRows(), nil)

		view, err := store.FindByID(ctx, b.ID)
		require.NoError(t, err)
		if diff := cmp.Diff(b.BuildView(), view); diff != "" {
			t.Errorf("view mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockOrderReadQueries(ctrl)
		mockDB := &mockDBTX{}
		store := readstore.NewOrderReadStore(mockQueries, mockDB)
		id := uuid.New()

		mockQueries.EXPECT().GetOrderByID(ctx, mockDB, id).Return(query.Order{}, pgx.ErrNoRows)

		_, err := store.FindByID(ctx, id)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("line item failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockOrderReadQueries(ctrl)
		mockDB := &mockDBTX{}
		store := readstore.NewOrderReadStore(mockQueries, mockDB)
		b := builder.NewOrderBuilder()

		mockQueries.EXPECT().GetOrderByID(ctx, mockDB, b.ID).Return(b.BuildRow(), nil)
		mockQueries.EXPECT().ListOrderLineItems(ctx, mockDB, gomock.Any()).Return(nil, errors.New("boom"))

		_, err := store.FindByID(ctx, b.ID)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestOrderReadStore_List(t *testing.T) {
	ctx := context.Background()

	t.Run("one line item query per page", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockOrderReadQueries(ctrl)
		mockDB := &mockDBTX{}
		store := readstore.NewOrderReadStore(mockQueries, mockDB)
		owner := uuid.New()
		first := builder.NewOrderBuilder().With(func(b *builder.OrderBuilder) { b.OwnerID = owner })
		second := builder.NewOrderBuilder().With(func(b *builder.OrderBuilder) { b.OwnerID = owner })

		mockQueries.EXPECT().ListOrders(ctx, mockDB, query.ListOrdersParams{
			OwnerID: &owner,
			Status:  ptr.Of("created"),
			Limit:   11,
		}).Return([]query.Order{first.BuildRow(), second.BuildRow()}, nil)
		mockQueries.EXPECT().ListOrderLineItems(ctx, mockDB, []uuid.UUID{first.ID, second.ID}).
			Return(first.BuildLineItemRows(), nil).Times(1)

		views, err := store.List(ctx, queries.OrderFilter{OwnerID: &owner, Status: ptr.Of("created"), Limit: 11})
		require.NoError(t, err)
		require.Len(t, views, 2)
		assert.Len(t, views[0].Items, 2)
		assert.NotNil(t, views[1].Items)
		assert.Empty(t, views[1].Items)
	})

	t.Run("empty page skips the line item query", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockOrderReadQueries(ctrl)
		mockDB := &mockDBTX{}
		store := readstore.NewOrderReadStore(mockQueries, mockDB)

		mockQueries.EXPECT().ListOrders(ctx, mockDB, gomock.Any()).Return(nil, nil)

		views, err := store.List(ctx, queries.OrderFilter{Limit: 11})
		require.NoError(t, err)
		assert.Empty(t, views)
	})
}
