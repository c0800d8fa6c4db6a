package query

import (
	"context"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const tableBookRequests = "book_requests"

func bookRequestViewSelect(q *Queries) *goqu.SelectDataset {
	return q.dialect.From(goqu.T(tableBookRequests).As("br")).Prepared(true).
		Join(goqu.T(tableCatalogEntries).As("ce"), goqu.On(goqu.I("ce.id").Eq(goqu.I("br.catalog_entry_id")))).
		Select(
			"br.id", "br.user_id", "br.catalog_entry_id", "br.delivery_option", "br.price_snapshot",
			"br.status", "br.estimated_delivery_date", "br.notes", "br.requested_at", "br.updated_at",
			"ce.title", "ce.author",
		)
}

func scanBookRequestView(row pgx.Row) (BookRequestView, error) {
	var v BookRequestView
	err := row.Scan(
		&v.ID, &v.UserID, &v.CatalogEntryID, &v.DeliveryOption, &v.PriceSnapshot,
		&v.Status, &v.EstimatedDeliveryDate, &v.Notes, &v.RequestedAt, &v.UpdatedAt,
		&v.Title, &v.Author,
	)
	return v, err
}

type CreateBookRequestParams struct {
	ID                    uuid.UUID
	UserID                uuid.UUID
	CatalogEntryID        uuid.UUID
	DeliveryOption        string
	PriceSnapshot         decimal.Decimal
	Status                string
	EstimatedDeliveryDate time.Time
	Notes                 *string
	RequestedAt           time.Time
}

func (q *Queries) CreateBookRequest(ctx context.Context, db DBTX, arg CreateBookRequestParams) error {
	ds := q.dialect.Insert(tableBookRequests).Prepared(true).Rows(goqu.Record{
		"id":                      arg.ID.String(),
		"user_id":                 arg.UserID.String(),
		"catalog_entry_id":        arg.CatalogEntryID.String(),
		"delivery_option":         arg.DeliveryOption,
		"price_snapshot":          arg.PriceSnapshot,
		"status":                  arg.Status,
		"estimated_delivery_date": arg.EstimatedDeliveryDate,
		"notes":                   arg.Notes,
		"requested_at":            arg.RequestedAt,
		"updated_at":              arg.RequestedAt,
	})
	_, err := q.exec(ctx, db, ds)
	return err
}

func (q *Queries) GetBookRequestByID(ctx context.Context, db DBTX, id uuid.UUID) (BookRequestView, error) {
	ds := bookRequestViewSelect(q).Where(goqu.I("br.id").Eq(id.String()))
	row, err := q.queryRow(ctx, db, ds)
	if err != nil {
		return BookRequestView{}, err
	}
	return scanBookRequestView(row)
}

type ListBookRequestsParams struct {
	UserID *uuid.UUID
	Status *string
	After  *Keyset
	Limit  int32
}

func (q *Queries) ListBookRequests(ctx context.Context, db DBTX, arg ListBookRequestsParams) ([]BookRequestView, error) {
	ds := bookRequestViewSelect(q).
		Order(goqu.I("br.requested_at").Desc(), goqu.I("br.id").Desc()).
		Limit(uint(arg.Limit))

	var where []goqu.Expression
	if arg.UserID != nil {
		where = append(where, goqu.I("br.user_id").Eq(arg.UserID.String()))
	}
	if arg.Status != nil {
		where = append(where, goqu.I("br.status").Eq(*arg.Status))
	}
	if arg.After != nil {
		where = append(where, goqu.L("(?, ?) < (?::timestamptz, ?::uuid)",
			goqu.I("br.requested_at"), goqu.I("br.id"), arg.After.CreatedAt, arg.After.ID.String()))
	}
	if len(where) > 0 {
		ds = ds.Where(where...)
	}

	rows, err := q.query(ctx, db, ds)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []BookRequestView
	for rows.Next() {
		v, err := scanBookRequestView(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, v)
	}
	return items, rows.Err()
}

type UpdateBookRequestStatusParams struct {
	ID        uuid.UUID
	From      string
	To        string
	UpdatedAt time.Time
}

// UpdateBookRequestStatusIf is a compare-and-set on the status column. Zero rows affected means
// the request changed (or vanished) since it was read.
func (q *Queries) UpdateBookRequestStatusIf(ctx context.Context, db DBTX, arg UpdateBookRequestStatusParams) (int64, error) {
	ds := q.dialect.Update(tableBookRequests).Prepared(true).
		Set(goqu.Record{"status": arg.To, "updated_at": arg.UpdatedAt}).
		Where(
			goqu.C("id").Eq(arg.ID.String()),
			goqu.C("status").Eq(arg.From),
		)
	return q.exec(ctx, db, ds)
}
