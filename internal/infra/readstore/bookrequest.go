package readstore

import (
	"context"

	"bibliolights/internal/infra"
	"bibliolights/internal/infra/query"
	"bibliolights/internal/pkg/pgconv"
	"bibliolights/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookRequestReadQueries interface {
	GetBookRequestByID(ctx context.Context, db query.DBTX, id uuid.UUID) (query.BookRequestView, error)
	ListBookRequests(ctx context.Context, db query.DBTX, arg query.ListBookRequestsParams) ([]query.BookRequestView, error)
}

type BookRequestReadStore struct {
	queries BookRequestReadQueries
	db      query.DBTX
}

func NewBookRequestReadStore(queries BookRequestReadQueries, db query.DBTX) *BookRequestReadStore {
	return &BookRequestReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookRequestReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookRequestView, error) {
	return r.FindByIDWith(ctx, r.db, id)
}

func (r *BookRequestReadStore) FindByIDWith(ctx context.Context, db query.DBTX, id uuid.UUID) (*queries.BookRequestView, error) {
	row, err := r.queries.GetBookRequestByID(ctx, db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("book request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get book request by id", err)
	}
	return toBookRequestView(row), nil
}

func (r *BookRequestReadStore) List(ctx context.Context, filter queries.BookRequestFilter) ([]*queries.BookRequestView, error) {
	rows, err := r.queries.ListBookRequests(ctx, r.db, query.ListBookRequestsParams{
		UserID: filter.UserID,
		Status: filter.Status,
		After:  toKeyset(filter.After),
		Limit:  filter.Limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list book requests", err)
	}
	items := make([]*queries.BookRequestView, 0, len(rows))
	for _, row := range rows {
		items = append(items, toBookRequestView(row))
	}
	return items, nil
}

func toBookRequestView(row query.BookRequestView) *queries.BookRequestView {
	return &queries.BookRequestView{
		ID:                    row.ID,
		UserID:                row.UserID,
		CatalogEntryID:        row.CatalogEntryID,
		Title:                 row.Title,
		Author:                row.Author,
		DeliveryOption:        row.DeliveryOption,
		PriceSnapshot:         row.PriceSnapshot,
		Status:                row.Status,
		EstimatedDeliveryDate: row.EstimatedDeliveryDate,
		Notes:                 row.Notes,
		RequestedAt:           row.RequestedAt,
		UpdatedAt:             row.UpdatedAt,
	}
}
