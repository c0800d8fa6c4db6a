package queries

import (
	"context"
	"time"

	"bibliolights/internal/domain/bookrequest"

	"github.com/google/uuid"
)

type CatalogReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*CatalogEntryView, error)
	List(ctx context.Context, after *Position, limit int32) ([]*CatalogEntryView, error)
	CountRequestsByStatus(ctx context.Context, id uuid.UUID) (map[string]int64, error)
}

type CatalogQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*CatalogEntryView, error)
	List(ctx context.Context, cursor *Cursor, limit int) ([]*CatalogEntryView, *Cursor, error)
	Stats(ctx context.Context, id uuid.UUID) (*CatalogStatsView, error)
}

type catalogQueriesImpl struct {
	store CatalogReadStore
}

func NewCatalogQueries(store CatalogReadStore) CatalogQueries {
	return &catalogQueriesImpl{store: store}
}

func (q *catalogQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*CatalogEntryView, error) {
	return q.store.FindByID(ctx, id)
}

func (q *catalogQueriesImpl) List(ctx context.Context, cursor *Cursor, limit int) ([]*CatalogEntryView, *Cursor, error) {
	limit = ValidateLimit(limit)
	after, err := decodeCursor(cursor)
	if err != nil {
		return nil, nil, err
	}
	rows, err := q.store.List(ctx, after, int32(limit+1))
	if err != nil {
		return nil, nil, err
	}
	items, next := paginate(rows, limit, func(v *CatalogEntryView) (time.Time, uuid.UUID) {
		return v.CreatedAt, v.ID
	})
	return items, next, nil
}

// Stats reports the ledger counters next to a per-status request count. Every status is present,
// zero when no request is in it.
func (q *catalogQueriesImpl) Stats(ctx context.Context, id uuid.UUID) (*CatalogStatsView, error) {
	entry, err := q.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	counts, err := q.store.CountRequestsByStatus(ctx, id)
	if err != nil {
		return nil, err
	}
	byStatus := make(map[string]int64, len(bookrequest.AllStatuses()))
	for _, s := range bookrequest.AllStatuses() {
		byStatus[s.String()] = counts[s.String()]
	}
	return &CatalogStatsView{
		CatalogEntryID:   entry.ID,
		Quota:            entry.Quota,
		Reserved:         entry.Reserved,
		RequestsByStatus: byStatus,
	}, nil
}
