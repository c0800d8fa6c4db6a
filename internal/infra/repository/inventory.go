package repository

import (
	"context"
	"time"

	"bibliolights/internal/infra"
	"bibliolights/internal/infra/query"
	"bibliolights/internal/pkg/pgconv"
	"bibliolights/internal/usecase/shared"

	"github.com/google/uuid"
)

type InventoryQueries interface {
	ReserveSlot(ctx context.Context, db query.DBTX, id uuid.UUID, now time.Time) (query.CatalogCounter, error)
	ReleaseSlot(ctx context.Context, db query.DBTX, id uuid.UUID, now time.Time) (query.CatalogCounter, error)
	UpdateCatalogQuota(ctx context.Context, db query.DBTX, id uuid.UUID, quota int32, now time.Time) (query.CatalogCounter, error)
	GetCatalogCounter(ctx context.Context, db query.DBTX, id uuid.UUID) (query.CatalogCounter, error)
}

// InventoryRepository runs the ledger's conditional updates. A statement whose WHERE clause did not
// match reports infra.KindConditionNotMet; telling "absent" from "exhausted" is left to the caller.
type InventoryRepository struct {
	queries InventoryQueries
	db      query.DBTX
}

func NewInventoryRepository(queries InventoryQueries, db query.DBTX) *InventoryRepository {
	return &InventoryRepository{
		queries: queries,
		db:      db,
	}
}

func (r *InventoryRepository) Reserve(ctx context.Context, tx query.DBTX, entryID uuid.UUID, now time.Time) (shared.Counter, error) {
	row, err := r.queries.ReserveSlot(ctx, tx, entryID, now)
	if err != nil {
		return shared.Counter{}, conditionalErr("reserve slot", err)
	}
	return toCounter(row), nil
}

func (r *InventoryRepository) Release(ctx context.Context, tx query.DBTX, entryID uuid.UUID, now time.Time) (shared.Counter, error) {
	row, err := r.queries.ReleaseSlot(ctx, tx, entryID, now)
	if err != nil {
		return shared.Counter{}, conditionalErr("release slot", err)
	}
	return toCounter(row), nil
}

func (r *InventoryRepository) SetQuota(ctx context.Context, tx query.DBTX, entryID uuid.UUID, quota int, now time.Time) (shared.Counter, error) {
	row, err := r.queries.UpdateCatalogQuota(ctx, tx, entryID, pgconv.IntToInt32(quota), now)
	if err != nil {
		return shared.Counter{}, conditionalErr("update quota", err)
	}
	return toCounter(row), nil
}

func (r *InventoryRepository) Counter(ctx context.Context, tx query.DBTX, entryID uuid.UUID) (shared.Counter, error) {
	row, err := r.queries.GetCatalogCounter(ctx, tx, entryID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return shared.Counter{}, infra.WrapRepoErr("catalog entry not found", err, infra.KindNotFound)
		}
		return shared.Counter{}, infra.WrapRepoErr("failed to read catalog counter", err)
	}
	return toCounter(row), nil
}

func conditionalErr(op string, err error) error {
	if pgconv.IsNoRows(err) {
		return infra.WrapRepoErr(op+": condition not met", err, infra.KindConditionNotMet)
	}
	return infra.WrapRepoErr("failed to "+op, err)
}

func toCounter(row query.CatalogCounter) shared.Counter {
	return shared.Counter{
		EntryID:  row.ID,
		Quota:    int(row.Quota),
		Reserved: int(row.Reserved),
	}
}
