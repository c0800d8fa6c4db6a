package repository

import (
	"context"
	"time"

	"bibliolights/internal/infra"
	"bibliolights/internal/infra/query"

	"github.com/google/uuid"
)

type FavoriteWriteQueries interface {
	InsertFavorite(ctx context.Context, db query.DBTX, userID, entryID uuid.UUID, now time.Time) (int64, error)
	DeleteFavorite(ctx context.Context, db query.DBTX, userID, entryID uuid.UUID) (int64, error)
}

type FavoriteRepository struct {
	queries FavoriteWriteQueries
	db      query.DBTX
}

func NewFavoriteRepository(queries FavoriteWriteQueries, db query.DBTX) *FavoriteRepository {
	return &FavoriteRepository{
		queries: queries,
		db:      db,
	}
}

func (r *FavoriteRepository) Add(ctx context.Context, tx query.DBTX, userID, entryID uuid.UUID, now time.Time) (bool, error) {
	n, err := r.queries.InsertFavorite(ctx, tx, userID, entryID, now)
	if err != nil {
		if infra.Classify(err) == infra.KindForeignKeyViolated {
			return false, infra.WrapRepoErr("catalog entry not found", err, infra.KindNotFound)
		}
		return false, infra.WrapRepoErr("failed to add favorite", err)
	}
	return n > 0, nil
}

func (r *FavoriteRepository) Remove(ctx context.Context, tx query.DBTX, userID, entryID uuid.UUID) (bool, error) {
	n, err := r.queries.DeleteFavorite(ctx, tx, userID, entryID)
	if err != nil {
		return false, infra.WrapRepoErr("failed to remove favorite", err)
	}
	return n > 0, nil
}
