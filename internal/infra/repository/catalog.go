package repository

import (
	"context"

	"bibliolights/internal/domain/catalog"
	"bibliolights/internal/infra"
	"bibliolights/internal/infra/query"
	"bibliolights/internal/infra/repository/converter"
	"bibliolights/internal/pkg/errs"
	"bibliolights/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type CatalogWriteQueries interface {
	CreateCatalogEntry(ctx context.Context, db query.DBTX, arg query.CreateCatalogEntryParams) error
	UpdateCatalogEntry(ctx context.Context, db query.DBTX, arg query.UpdateCatalogEntryParams) (query.CatalogEntry, error)
	DeleteCatalogEntry(ctx context.Context, db query.DBTX, id uuid.UUID) (int64, error)
}

type CatalogRepository struct {
	queries CatalogWriteQueries
	db      query.DBTX
}

func NewCatalogRepository(queries CatalogWriteQueries, db query.DBTX) *CatalogRepository {
	return &CatalogRepository{
		queries: queries,
		db:      db,
	}
}

func (r *CatalogRepository) Create(ctx context.Context, tx query.DBTX, entry *catalog.Entry) error {
	if err := r.queries.CreateCatalogEntry(ctx, tx, converter.CatalogEntryToCreateParams(entry)); err != nil {
		return infra.WrapRepoErr("failed to create catalog entry", err)
	}
	return nil
}

// Update writes the revised entry. The statement re-checks reserved <= quota, so a quota that a
// concurrent admission has since overtaken is rejected instead of breaking the invariant.
// No matching row is reported as KindConditionNotMet; the caller tells a vanished entry from
// an overtaken quota.
func (r *CatalogRepository) Update(ctx context.Context, tx query.DBTX, entry *catalog.Entry) error {
	_, err := r.queries.UpdateCatalogEntry(ctx, tx, converter.CatalogEntryToUpdateParams(entry))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return infra.WrapRepoErr("catalog entry update condition not met", err, infra.KindConditionNotMet)
		}
		return infra.WrapRepoErr("failed to update catalog entry", err)
	}
	return nil
}

func (r *CatalogRepository) Delete(ctx context.Context, tx query.DBTX, id uuid.UUID) error {
	n, err := r.queries.DeleteCatalogEntry(ctx, tx, id)
	if err != nil {
		if infra.Classify(err) == infra.KindForeignKeyViolated {
			return errs.Wrapf(catalog.ErrEntryInUse, "catalog entry %s", id)
		}
		return infra.WrapRepoErr("failed to delete catalog entry", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("catalog entry not found", nil, infra.KindNotFound)
	}
	return nil
}
