package repository

import (
	"context"

	"bibliolights/internal/domain/order"
	"bibliolights/internal/infra"
	"bibliolights/internal/infra/query"
	"bibliolights/internal/infra/repository/converter"
	"bibliolights/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type OrderWriteQueries interface {
	CreateOrder(ctx context.Context, db query.DBTX, arg query.CreateOrderParams) error
	CreateOrderLineItems(ctx context.Context, db query.DBTX, orderID uuid.UUID, items []query.CreateOrderLineItemParams) error
	UpdateOrderStatus(ctx context.Context, db query.DBTX, arg query.UpdateOrderStatusParams) (query.Order, error)
}

type OrderRepository struct {
	queries OrderWriteQueries
	db      query.DBTX
}

func NewOrderRepository(queries OrderWriteQueries, db query.DBTX) *OrderRepository {
	return &OrderRepository{
		queries: queries,
		db:      db,
	}
}

// Create must run inside a transaction: the order row and its line items are two statements.
func (r *OrderRepository) Create(ctx context.Context, tx query.DBTX, o *order.Order) error {
	params, items := converter.OrderToCreateParams(o)
	if err := r.queries.CreateOrder(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to create order", err)
	}
	if err := r.queries.CreateOrderLineItems(ctx, tx, o.ID(), items); err != nil {
		return infra.WrapRepoErr("failed to create order line items", err)
	}
	return nil
}

func (r *OrderRepository) UpdateStatus(ctx context.Context, tx query.DBTX, o *order.Order, trackingChanged bool) error {
	_, err := r.queries.UpdateOrderStatus(ctx, tx, query.UpdateOrderStatusParams{
		ID:          o.ID(),
		Status:      o.Status().String(),
		TrackingURL: o.TrackingURL(),
		SetTracking: trackingChanged,
		UpdatedAt:   o.UpdatedAt(),
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return infra.WrapRepoErr("failed to update order status", err)
	}
	return nil
}
