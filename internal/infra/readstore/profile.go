package readstore

import (
	"context"

	"bibliolights/internal/infra"
	"bibliolights/internal/infra/query"
	"bibliolights/internal/pkg/pgconv"
	"bibliolights/internal/usecase/queries"

	"github.com/google/uuid"
)

type ProfileReadQueries interface {
	ListFavoriteEntries(ctx context.Context, db query.DBTX, userID uuid.UUID) ([]query.FavoriteEntry, error)
	GetUserDetails(ctx context.Context, db query.DBTX, userID uuid.UUID) (query.UserDetails, error)
}

type ProfileReadStore struct {
	queries ProfileReadQueries
	db      query.DBTX
}

func NewProfileReadStore(queries ProfileReadQueries, db query.DBTX) *ProfileReadStore {
	return &ProfileReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ProfileReadStore) Favorites(ctx context.Context, userID uuid.UUID) ([]*queries.FavoriteView, error) {
	rows, err := r.queries.ListFavoriteEntries(ctx, r.db, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list favorites", err)
	}
	items := make([]*queries.FavoriteView, 0, len(rows))
	for _, row := range rows {
		items = append(items, &queries.FavoriteView{
			CatalogEntryView: *toCatalogEntryView(row.CatalogEntry),
			FavoritedAt:      row.FavoritedAt,
		})
	}
	return items, nil
}

func (r *ProfileReadStore) Details(ctx context.Context, userID uuid.UUID) (*queries.UserDetailsView, error) {
	row, err := r.queries.GetUserDetails(ctx, r.db, userID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to get user details", err)
	}
	updatedAt := row.UpdatedAt
	return &queries.UserDetailsView{
		UserID:      row.UserID,
		FirstName:   row.FirstName,
		LastName:    row.LastName,
		Address:     row.Address,
		City:        row.City,
		Country:     row.Country,
		PhoneNumber: row.PhoneNumber,
		DateOfBirth: row.DateOfBirth,
		UpdatedAt:   &updatedAt,
	}, nil
}
