package query

import (
	"context"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const tableCatalogEntries = "catalog_entries"

var catalogEntryColumns = []any{
	"id", "title", "author", "description", "cover_image", "price",
	"delivery_options", "quota", "reserved", "created_at", "updated_at",
}

func scanCatalogEntry(row pgx.Row) (CatalogEntry, error) {
	var e CatalogEntry
	err := row.Scan(
		&e.ID, &e.Title, &e.Author, &e.Description, &e.CoverImage, &e.Price,
		&e.DeliveryOptions, &e.Quota, &e.Reserved, &e.CreatedAt, &e.UpdatedAt,
	)
	return e, err
}

func scanCatalogCounter(row pgx.Row) (CatalogCounter, error) {
	var c CatalogCounter
	err := row.Scan(&c.ID, &c.Quota, &c.Reserved)
	return c, err
}

type CreateCatalogEntryParams struct {
	ID              uuid.UUID
	Title           string
	Author          string
	Description     *string
	CoverImage      *string
	Price           decimal.Decimal
	DeliveryOptions []string
	Quota           int32
	CreatedAt       time.Time
}

func (q *Queries) CreateCatalogEntry(ctx context.Context, db DBTX, arg CreateCatalogEntryParams) error {
	ds := q.dialect.Insert(tableCatalogEntries).Prepared(true).Rows(goqu.Record{
		"id":               arg.ID.String(),
		"title":            arg.Title,
		"author":           arg.Author,
		"description":      arg.Description,
		"cover_image":      arg.CoverImage,
		"price":            arg.Price,
		"delivery_options": encodeTextArray(arg.DeliveryOptions),
		"quota":            arg.Quota,
		"reserved":         0,
		"created_at":       arg.CreatedAt,
		"updated_at":       arg.CreatedAt,
	})
	_, err := q.exec(ctx, db, ds)
	return err
}

type UpdateCatalogEntryParams struct {
	ID              uuid.UUID
	Title           string
	Author          string
	Description     *string
	CoverImage      *string
	Price           decimal.Decimal
	DeliveryOptions []string
	Quota           int32
	UpdatedAt       time.Time
}

// UpdateCatalogEntry rewrites the editable columns. The new quota only applies while it still covers
// the reserved count; otherwise no row is updated and pgx.ErrNoRows is returned.
func (q *Queries) UpdateCatalogEntry(ctx context.Context, db DBTX, arg UpdateCatalogEntryParams) (CatalogEntry, error) {
	ds := q.dialect.Update(tableCatalogEntries).Prepared(true).
		Set(goqu.Record{
			"title":            arg.Title,
			"author":           arg.Author,
			"description":      arg.Description,
			"cover_image":      arg.CoverImage,
			"price":            arg.Price,
			"delivery_options": encodeTextArray(arg.DeliveryOptions),
			"quota":            arg.Quota,
			"updated_at":       arg.UpdatedAt,
		}).
		Where(
			goqu.C("id").Eq(arg.ID.String()),
			goqu.C("reserved").Lte(arg.Quota),
		).
		Returning(catalogEntryColumns...)
	row, err := q.queryRow(ctx, db, ds)
	if err != nil {
		return CatalogEntry{}, err
	}
	return scanCatalogEntry(row)
}

func (q *Queries) DeleteCatalogEntry(ctx context.Context, db DBTX, id uuid.UUID) (int64, error) {
	ds := q.dialect.Delete(tableCatalogEntries).Prepared(true).Where(goqu.C("id").Eq(id.String()))
	return q.exec(ctx, db, ds)
}

func (q *Queries) GetCatalogEntryByID(ctx context.Context, db DBTX, id uuid.UUID) (CatalogEntry, error) {
	ds := q.dialect.From(tableCatalogEntries).Prepared(true).
		Select(catalogEntryColumns...).
		Where(goqu.C("id").Eq(id.String()))
	row, err := q.queryRow(ctx, db, ds)
	if err != nil {
		return CatalogEntry{}, err
	}
	return scanCatalogEntry(row)
}

type ListCatalogEntriesParams struct {
	After *Keyset
	Limit int32
}

func (q *Queries) ListCatalogEntries(ctx context.Context, db DBTX, arg ListCatalogEntriesParams) ([]CatalogEntry, error) {
	ds := q.dialect.From(tableCatalogEntries).Prepared(true).
		Select(catalogEntryColumns...).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(uint(arg.Limit))
	if arg.After != nil {
		ds = ds.Where(keysetBefore("created_at", arg.After))
	}
	rows, err := q.query(ctx, db, ds)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []CatalogEntry
	for rows.Next() {
		e, err := scanCatalogEntry(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, e)
	}
	return items, rows.Err()
}

// ReserveSlot is the single conditional increment behind admission. Concurrent callers serialize on the
// row lock, and a caller that finds the quota exhausted gets pgx.ErrNoRows.
func (q *Queries) ReserveSlot(ctx context.Context, db DBTX, id uuid.UUID, now time.Time) (CatalogCounter, error) {
	ds := q.dialect.Update(tableCatalogEntries).Prepared(true).
		Set(goqu.Record{
			"reserved":   goqu.L("? + 1", goqu.I("reserved")),
			"updated_at": now,
		}).
		Where(
			goqu.C("id").Eq(id.String()),
			goqu.C("reserved").Lt(goqu.I("quota")),
		).
		Returning("id", "quota", "reserved")
	row, err := q.queryRow(ctx, db, ds)
	if err != nil {
		return CatalogCounter{}, err
	}
	return scanCatalogCounter(row)
}

// ReleaseSlot decrements reserved unless it is already zero, in which case pgx.ErrNoRows is returned.
func (q *Queries) ReleaseSlot(ctx context.Context, db DBTX, id uuid.UUID, now time.Time) (CatalogCounter, error) {
	ds := q.dialect.Update(tableCatalogEntries).Prepared(true).
		Set(goqu.Record{
			"reserved":   goqu.L("? - 1", goqu.I("reserved")),
			"updated_at": now,
		}).
		Where(
			goqu.C("id").Eq(id.String()),
			goqu.C("reserved").Gt(0),
		).
		Returning("id", "quota", "reserved")
	row, err := q.queryRow(ctx, db, ds)
	if err != nil {
		return CatalogCounter{}, err
	}
	return scanCatalogCounter(row)
}

// UpdateCatalogQuota sets a new quota only if it still covers the reserved count.
func (q *Queries) UpdateCatalogQuota(ctx context.Context, db DBTX, id uuid.UUID, quota int32, now time.Time) (CatalogCounter, error) {
	ds := q.dialect.Update(tableCatalogEntries).Prepared(true).
		Set(goqu.Record{"quota": quota, "updated_at": now}).
		Where(
			goqu.C("id").Eq(id.String()),
			goqu.C("reserved").Lte(quota),
		).
		Returning("id", "quota", "reserved")
	row, err := q.queryRow(ctx, db, ds)
	if err != nil {
		return CatalogCounter{}, err
	}
	return scanCatalogCounter(row)
}

// GetCatalogCounter is a plain counter read used to explain a failed conditional update.
func (q *Queries) GetCatalogCounter(ctx context.Context, db DBTX, id uuid.UUID) (CatalogCounter, error) {
	ds := q.dialect.From(tableCatalogEntries).Prepared(true).
		Select("id", "quota", "reserved").
		Where(goqu.C("id").Eq(id.String()))
	row, err := q.queryRow(ctx, db, ds)
	if err != nil {
		return CatalogCounter{}, err
	}
	return scanCatalogCounter(row)
}

func (q *Queries) CountBookRequestsByStatus(ctx context.Context, db DBTX, catalogEntryID uuid.UUID) ([]StatusCount, error) {
	ds := q.dialect.From(tableBookRequests).Prepared(true).
		Select("status", goqu.COUNT("*")).
		Where(goqu.C("catalog_entry_id").Eq(catalogEntryID.String())).
		GroupBy("status").
		Order(goqu.I("status").Asc())
	rows, err := q.query(ctx, db, ds)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []StatusCount
	for rows.Next() {
		var c StatusCount
		if err := rows.Scan(&c.Status, &c.Count); err != nil {
			return nil, err
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}
