package readstore

import (
	"context"

	"bibliolights/internal/infra"
	"bibliolights/internal/infra/query"
	"bibliolights/internal/pkg/pgconv"
	"bibliolights/internal/usecase/queries"

	"github.com/google/uuid"
)

type CatalogReadQueries interface {
	GetCatalogEntryByID(ctx context.Context, db query.DBTX, id uuid.UUID) (query.CatalogEntry, error)
	ListCatalogEntries(ctx context.Context, db query.DBTX, arg query.ListCatalogEntriesParams) ([]query.CatalogEntry, error)
	CountBookRequestsByStatus(ctx context.Context, db query.DBTX, catalogEntryID uuid.UUID) ([]query.StatusCount, error)
}

type CatalogReadStore struct {
	queries CatalogReadQueries
	db      query.DBTX
}

func NewCatalogReadStore(queries CatalogReadQueries, db query.DBTX) *CatalogReadStore {
	return &CatalogReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *CatalogReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.CatalogEntryView, error) {
	return r.findByID(ctx, r.db, id)
}

// FindByIDWith runs the lookup on an explicit connection, typically an open transaction.
func (r *CatalogReadStore) FindByIDWith(ctx context.Context, db query.DBTX, id uuid.UUID) (*queries.CatalogEntryView, error) {
	return r.findByID(ctx, db, id)
}

func (r *CatalogReadStore) findByID(ctx context.Context, db query.DBTX, id uuid.UUID) (*queries.CatalogEntryView, error) {
	row, err := r.queries.GetCatalogEntryByID(ctx, db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("catalog entry not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get catalog entry by id", err)
	}
	return toCatalogEntryView(row), nil
}

func (r *CatalogReadStore) List(ctx context.Context, after *queries.Position, limit int32) ([]*queries.CatalogEntryView, error) {
	rows, err := r.queries.ListCatalogEntries(ctx, r.db, query.ListCatalogEntriesParams{
		After: toKeyset(after),
		Limit: limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list catalog entries", err)
	}
	items := make([]*queries.CatalogEntryView, 0, len(rows))
	for _, row := range rows {
		items = append(items, toCatalogEntryView(row))
	}
	return items, nil
}

func (r *CatalogReadStore) CountRequestsByStatus(ctx context.Context, id uuid.UUID) (map[string]int64, error) {
	rows, err := r.queries.CountBookRequestsByStatus(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to count book requests by status", err)
	}
	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

func toCatalogEntryView(row query.CatalogEntry) *queries.CatalogEntryView {
	opts := row.DeliveryOptions
	if opts == nil {
		opts = []string{}
	}
	return &queries.CatalogEntryView{
		ID:              row.ID,
		Title:           row.Title,
		Author:          row.Author,
		Description:     row.Description,
		CoverImage:      row.CoverImage,
		Price:           row.Price,
		DeliveryOptions: opts,
		Quota:           int(row.Quota),
		Reserved:        int(row.Reserved),
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
	}
}

func toKeyset(p *queries.Position) *query.Keyset {
	if p == nil {
		return nil
	}
	return &query.Keyset{CreatedAt: p.CreatedAt, ID: p.ID}
}
