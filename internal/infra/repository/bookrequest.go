package repository

import (
	"context"
	"time"

	"bibliolights/internal/domain/bookrequest"
	"bibliolights/internal/infra"
	"bibliolights/internal/infra/query"
	"bibliolights/internal/infra/repository/converter"

	"github.com/google/uuid"
)

type BookRequestWriteQueries interface {
	CreateBookRequest(ctx context.Context, db query.DBTX, arg query.CreateBookRequestParams) error
	UpdateBookRequestStatusIf(ctx context.Context, db query.DBTX, arg query.UpdateBookRequestStatusParams) (int64, error)
}

type BookRequestRepository struct {
	queries BookRequestWriteQueries
	db      query.DBTX
}

func NewBookRequestRepository(queries BookRequestWriteQueries, db query.DBTX) *BookRequestRepository {
	return &BookRequestRepository{
		queries: queries,
		db:      db,
	}
}

func (r *BookRequestRepository) Create(ctx context.Context, tx query.DBTX, req *bookrequest.BookRequest) error {
	if err := r.queries.CreateBookRequest(ctx, tx, converter.BookRequestToCreateParams(req)); err != nil {
		return infra.WrapRepoErr("failed to create book request", err)
	}
	return nil
}

// UpdateStatusIf reports false when the stored status no longer equals from.
func (r *BookRequestRepository) UpdateStatusIf(ctx context.Context, tx query.DBTX, id uuid.UUID, from, to bookrequest.Status, now time.Time) (bool, error) {
	n, err := r.queries.UpdateBookRequestStatusIf(ctx, tx, query.UpdateBookRequestStatusParams{
		ID:        id,
		From:      from.String(),
		To:        to.String(),
		UpdatedAt: now,
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to update book request status", err)
	}
	return n == 1, nil
}
