package repository

import (
	"context"

	"bibliolights/internal/domain/user"
	"bibliolights/internal/infra"
	"bibliolights/internal/infra/query"
)

type UserDetailsWriteQueries interface {
	UpsertUserDetails(ctx context.Context, db query.DBTX, arg query.UpsertUserDetailsParams) (query.UserDetails, error)
}

type UserDetailsRepository struct {
	queries UserDetailsWriteQueries
	db      query.DBTX
}

func NewUserDetailsRepository(queries UserDetailsWriteQueries, db query.DBTX) *UserDetailsRepository {
	return &UserDetailsRepository{
		queries: queries,
		db:      db,
	}
}

func (r *UserDetailsRepository) Upsert(ctx context.Context, tx query.DBTX, d *user.Details) error {
	_, err := r.queries.UpsertUserDetails(ctx, tx, query.UpsertUserDetailsParams{
		UserID:      d.UserID(),
		FirstName:   d.FirstName(),
		LastName:    d.LastName(),
		Address:     d.Address(),
		City:        d.City(),
		Country:     d.Country(),
		PhoneNumber: d.PhoneNumber(),
		DateOfBirth: d.DateOfBirth(),
		UpdatedAt:   d.UpdatedAt(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to save user details", err)
	}
	return nil
}
