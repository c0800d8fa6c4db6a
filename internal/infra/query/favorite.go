package query

import (
	"context"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const tableUserFavorites = "user_favorites"

// InsertFavorite returns 0 when the entry was already a favorite.
func (q *Queries) InsertFavorite(ctx context.Context, db DBTX, userID, entryID uuid.UUID, now time.Time) (int64, error) {
	ds := q.dialect.Insert(tableUserFavorites).Prepared(true).
		Rows(goqu.Record{
			"user_id":          userID.String(),
			"catalog_entry_id": entryID.String(),
			"created_at":       now,
		}).
		OnConflict(goqu.DoNothing())
	return q.exec(ctx, db, ds)
}

func (q *Queries) DeleteFavorite(ctx context.Context, db DBTX, userID, entryID uuid.UUID) (int64, error) {
	ds := q.dialect.Delete(tableUserFavorites).Prepared(true).
		Where(
			goqu.C("user_id").Eq(userID.String()),
			goqu.C("catalog_entry_id").Eq(entryID.String()),
		)
	return q.exec(ctx, db, ds)
}

func (q *Queries) ListFavoriteEntries(ctx context.Context, db DBTX, userID uuid.UUID) ([]FavoriteEntry, error) {
	cols := make([]any, 0, len(catalogEntryColumns)+1)
	for _, c := range catalogEntryColumns {
		cols = append(cols, goqu.I("ce."+c.(string)))
	}
	cols = append(cols, goqu.I("f.created_at"))

	ds := q.dialect.From(goqu.T(tableUserFavorites).As("f")).Prepared(true).
		Join(goqu.T(tableCatalogEntries).As("ce"), goqu.On(goqu.I("ce.id").Eq(goqu.I("f.catalog_entry_id")))).
		Select(cols...).
		Where(goqu.I("f.user_id").Eq(userID.String())).
		Order(goqu.I("f.created_at").Desc(), goqu.I("ce.id").Desc())

	rows, err := q.query(ctx, db, ds)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []FavoriteEntry
	for rows.Next() {
		var f FavoriteEntry
		if err := rows.Scan(
			&f.ID, &f.Title, &f.Author, &f.Description, &f.CoverImage, &f.Price,
			&f.DeliveryOptions, &f.Quota, &f.Reserved, &f.CreatedAt, &f.UpdatedAt,
			&f.FavoritedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, f)
	}
	return items, rows.Err()
}
