package queries

import (
	"context"
	"time"

	"bibliolights/internal/domain/order"

	"github.com/google/uuid"
)

type OrderReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*OrderView, error)
	List(ctx context.Context, filter OrderFilter) ([]*OrderView, error)
}

type OrderQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*OrderView, error)
	ListForOwner(ctx context.Context, ownerID uuid.UUID, status *string, cursor *Cursor, limit int) ([]*OrderView, *Cursor, error)
	ListAll(ctx context.Context, status *string, cursor *Cursor, limit int) ([]*OrderView, *Cursor, error)
}

type orderQueriesImpl struct {
	store OrderReadStore
}

func NewOrderQueries(store OrderReadStore) OrderQueries {
	return &orderQueriesImpl{store: store}
}

func (q *orderQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*OrderView, error) {
	return q.store.FindByID(ctx, id)
}

func (q *orderQueriesImpl) ListForOwner(ctx context.Context, ownerID uuid.UUID, status *string, cursor *Cursor, limit int) ([]*OrderView, *Cursor, error) {
	return q.list(ctx, &ownerID, status, cursor, limit)
}

func (q *orderQueriesImpl) ListAll(ctx context.Context, status *string, cursor *Cursor, limit int) ([]*OrderView, *Cursor, error) {
	return q.list(ctx, nil, status, cursor, limit)
}

func (q *orderQueriesImpl) list(ctx context.Context, ownerID *uuid.UUID, status *string, cursor *Cursor, limit int) ([]*OrderView, *Cursor, error) {
	if status != nil {
		if _, err := order.ParseStatus(*status); err != nil {
			return nil, nil, err
		}
	}
	limit = ValidateLimit(limit)
	after, err := decodeCursor(cursor)
	if err != nil {
		return nil, nil, err
	}
	rows, err := q.store.List(ctx, OrderFilter{
		OwnerID: ownerID,
		Status:  status,
		After:   after,
		Limit:   int32(limit + 1),
	})
	if err != nil {
		return nil, nil, err
	}
	items, next := paginate(rows, limit, func(v *OrderView) (time.Time, uuid.UUID) {
		return v.CreatedAt, v.ID
	})
	return items, next, nil
}
