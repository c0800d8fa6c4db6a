package query

import (
	"context"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const (
	tableOrders         = "orders"
	tableOrderLineItems = "order_line_items"
)

var orderColumns = []any{"id", "owner_id", "total_amount", "status", "tracking_url", "created_at", "updated_at"}

func scanOrder(row pgx.Row) (Order, error) {
	var o Order
	err := row.Scan(&o.ID, &o.OwnerID, &o.TotalAmount, &o.Status, &o.TrackingURL, &o.CreatedAt, &o.UpdatedAt)
	return o, err
}

type CreateOrderParams struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	TotalAmount decimal.Decimal
	Status      string
	CreatedAt   time.Time
}

func (q *Queries) CreateOrder(ctx context.Context, db DBTX, arg CreateOrderParams) error {
	ds := q.dialect.Insert(tableOrders).Prepared(true).Rows(goqu.Record{
		"id":           arg.ID.String(),
		"owner_id":     arg.OwnerID.String(),
		"total_amount": arg.TotalAmount,
		"status":       arg.Status,
		"created_at":   arg.CreatedAt,
		"updated_at":   arg.CreatedAt,
	})
	_, err := q.exec(ctx, db, ds)
	return err
}

type CreateOrderLineItemParams struct {
	CatalogEntryID uuid.UUID
	Quantity       int32
	UnitPrice      decimal.Decimal
	LineTotal      decimal.Decimal
}

// CreateOrderLineItems inserts all items in one statement; position follows slice order.
func (q *Queries) CreateOrderLineItems(ctx context.Context, db DBTX, orderID uuid.UUID, items []CreateOrderLineItemParams) error {
	rows := make([]any, len(items))
	for i, it := range items {
		rows[i] = goqu.Record{
			"order_id":         orderID.String(),
			"position":         i,
			"catalog_entry_id": it.CatalogEntryID.String(),
			"quantity":         it.Quantity,
			"unit_price":       it.UnitPrice,
			"line_total":       it.LineTotal,
		}
	}
	ds := q.dialect.Insert(tableOrderLineItems).Prepared(true).Rows(rows...)
	_, err := q.exec(ctx, db, ds)
	return err
}

func (q *Queries) GetOrderByID(ctx context.Context, db DBTX, id uuid.UUID) (Order, error) {
	ds := q.dialect.From(tableOrders).Prepared(true).
		Select(orderColumns...).
		Where(goqu.C("id").Eq(id.String()))
	row, err := q.queryRow(ctx, db, ds)
	if err != nil {
		return Order{}, err
	}
	return scanOrder(row)
}

type ListOrdersParams struct {
	OwnerID *uuid.UUID
	Status  *string
	After   *Keyset
	Limit   int32
}

func (q *Queries) ListOrders(ctx context.Context, db DBTX, arg ListOrdersParams) ([]Order, error) {
	ds := q.dialect.From(tableOrders).Prepared(true).
		Select(orderColumns...).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(uint(arg.Limit))

	var where []goqu.Expression
	if arg.OwnerID != nil {
		where = append(where, goqu.C("owner_id").Eq(arg.OwnerID.String()))
	}
	if arg.Status != nil {
		where = append(where, goqu.C("status").Eq(*arg.Status))
	}
	if arg.After != nil {
		where = append(where, keysetBefore("created_at", arg.After))
	}
	if len(where) > 0 {
		ds = ds.Where(where...)
	}

	rows, err := q.query(ctx, db, ds)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, o)
	}
	return items, rows.Err()
}

// ListOrderLineItems loads the items of several orders at once, grouped by order and ordered by position.
func (q *Queries) ListOrderLineItems(ctx context.Context, db DBTX, orderIDs []uuid.UUID) ([]OrderLineItem, error) {
	if len(orderIDs) == 0 {
		return nil, nil
	}
	ids := make([]string, len(orderIDs))
	for i, id := range orderIDs {
		ids[i] = id.String()
	}
	ds := q.dialect.From(goqu.T(tableOrderLineItems).As("li")).Prepared(true).
		Join(goqu.T(tableCatalogEntries).As("ce"), goqu.On(goqu.I("ce.id").Eq(goqu.I("li.catalog_entry_id")))).
		Select("li.order_id", "li.position", "li.catalog_entry_id", "ce.title", "li.quantity", "li.unit_price", "li.line_total").
		Where(goqu.I("li.order_id").In(ids)).
		Order(goqu.I("li.order_id").Asc(), goqu.I("li.position").Asc())

	rows, err := q.query(ctx, db, ds)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []OrderLineItem
	for rows.Next() {
		var li OrderLineItem
		if err := rows.Scan(&li.OrderID, &li.Position, &li.CatalogEntryID, &li.Title, &li.Quantity, &li.UnitPrice, &li.LineTotal); err != nil {
			return nil, err
		}
		items = append(items, li)
	}
	return items, rows.Err()
}

type UpdateOrderStatusParams struct {
	ID          uuid.UUID
	Status      string
	TrackingURL *string
	// SetTracking distinguishes "leave tracking url alone" from "store this value".
	SetTracking bool
	UpdatedAt   time.Time
}

func (q *Queries) UpdateOrderStatus(ctx context.Context, db DBTX, arg UpdateOrderStatusParams) (Order, error) {
	rec := goqu.Record{"status": arg.Status, "updated_at": arg.UpdatedAt}
	if arg.SetTracking {
		rec["tracking_url"] = arg.TrackingURL
	}
	ds := q.dialect.Update(tableOrders).Prepared(true).
		Set(rec).
		Where(goqu.C("id").Eq(arg.ID.String())).
		Returning(orderColumns...)
	row, err := q.queryRow(ctx, db, ds)
	if err != nil {
		return Order{}, err
	}
	return scanOrder(row)
}
