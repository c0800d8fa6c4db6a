package query

import (
	"context"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const tableUserDetails = "user_details"

var userDetailsColumns = []any{
	"user_id", "first_name", "last_name", "address", "city", "country", "phone_number", "date_of_birth", "updated_at",
}

func scanUserDetails(row pgx.Row) (UserDetails, error) {
	var d UserDetails
	err := row.Scan(&d.UserID, &d.FirstName, &d.LastName, &d.Address, &d.City, &d.Country, &d.PhoneNumber, &d.DateOfBirth, &d.UpdatedAt)
	return d, err
}

type UpsertUserDetailsParams struct {
	UserID      uuid.UUID
	FirstName   *string
	LastName    *string
	Address     *string
	City        *string
	Country     *string
	PhoneNumber *string
	DateOfBirth *time.Time
	UpdatedAt   time.Time
}

// UpsertUserDetails replaces the whole profile row; nil fields are stored as NULL.
func (q *Queries) UpsertUserDetails(ctx context.Context, db DBTX, arg UpsertUserDetailsParams) (UserDetails, error) {
	ds := q.dialect.Insert(tableUserDetails).Prepared(true).
		Rows(goqu.Record{
			"user_id":       arg.UserID.String(),
			"first_name":    arg.FirstName,
			"last_name":     arg.LastName,
			"address":       arg.Address,
			"city":          arg.City,
			"country":       arg.Country,
			"phone_number":  arg.PhoneNumber,
			"date_of_birth": arg.DateOfBirth,
			"created_at":    arg.UpdatedAt,
			"updated_at":    arg.UpdatedAt,
		}).
		OnConflict(goqu.DoUpdate("user_id", goqu.Record{
			"first_name":    goqu.I("excluded.first_name"),
			"last_name":     goqu.I("excluded.last_name"),
			"address":       goqu.I("excluded.address"),
			"city":          goqu.I("excluded.city"),
			"country":       goqu.I("excluded.country"),
			"phone_number":  goqu.I("excluded.phone_number"),
			"date_of_birth": goqu.I("excluded.date_of_birth"),
			"updated_at":    goqu.I("excluded.updated_at"),
		})).
		Returning(userDetailsColumns...)
	row, err := q.queryRow(ctx, db, ds)
	if err != nil {
		return UserDetails{}, err
	}
	return scanUserDetails(row)
}

func (q *Queries) GetUserDetails(ctx context.Context, db DBTX, userID uuid.UUID) (UserDetails, error) {
	ds := q.dialect.From(tableUserDetails).Prepared(true).
		Select(userDetailsColumns...).
		Where(goqu.C("user_id").Eq(userID.String()))
	row, err := q.queryRow(ctx, db, ds)
	if err != nil {
		return UserDetails{}, err
	}
	return scanUserDetails(row)
}
