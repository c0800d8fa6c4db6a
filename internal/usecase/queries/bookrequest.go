package queries

import (
	"context"
	"time"

	"bibliolights/internal/domain/bookrequest"

	"github.com/google/uuid"
)

type BookRequestReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookRequestView, error)
	List(ctx context.Context, filter BookRequestFilter) ([]*BookRequestView, error)
}

type BookRequestQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BookRequestView, error)
	// ListForUser returns only the caller's own requests, newest first.
	ListForUser(ctx context.Context, userID uuid.UUID, status *string, cursor *Cursor, limit int) ([]*BookRequestView, *Cursor, error)
	ListAll(ctx context.Context, status *string, cursor *Cursor, limit int) ([]*BookRequestView, *Cursor, error)
}

type bookRequestQueriesImpl struct {
	store BookRequestReadStore
}

func NewBookRequestQueries(store BookRequestReadStore) BookRequestQueries {
	return &bookRequestQueriesImpl{store: store}
}

func (q *bookRequestQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BookRequestView, error) {
	return q.store.FindByID(ctx, id)
}

func (q *bookRequestQueriesImpl) ListForUser(ctx context.Context, userID uuid.UUID, status *string, cursor *Cursor, limit int) ([]*BookRequestView, *Cursor, error) {
	return q.list(ctx, &userID, status, cursor, limit)
}

func (q *bookRequestQueriesImpl) ListAll(ctx context.Context, status *string, cursor *Cursor, limit int) ([]*BookRequestView, *Cursor, error) {
	return q.list(ctx, nil, status, cursor, limit)
}

func (q *bookRequestQueriesImpl) list(ctx context.Context, userID *uuid.UUID, status *string, cursor *Cursor, limit int) ([]*BookRequestView, *Cursor, error) {
	if status != nil {
		if _, err := bookrequest.ParseStatus(*status); err != nil {
			return nil, nil, err
		}
	}
	limit = ValidateLimit(limit)
	after, err := decodeCursor(cursor)
	if err != nil {
		return nil, nil, err
	}
	rows, err := q.store.List(ctx, BookRequestFilter{
		UserID: userID,
		Status: status,
		After:  after,
		Limit:  int32(limit + 1),
	})
	if err != nil {
		return nil, nil, err
	}
	items, next := paginate(rows, limit, func(v *BookRequestView) (time.Time, uuid.UUID) {
		return v.RequestedAt, v.ID
	})
	return items, next, nil
}
