package readstore

import (
	"context"

	"bibliolights/internal/infra"
	"bibliolights/internal/infra/query"
	"bibliolights/internal/pkg/pgconv"
	"bibliolights/internal/usecase/queries"

	"github.com/google/uuid"
)

type OrderReadQueries interface {
	GetOrderByID(ctx context.Context, db query.DBTX, id uuid.UUID) (query.Order, error)
	ListOrders(ctx context.Context, db query.DBTX, arg query.ListOrdersParams) ([]query.Order, error)
	ListOrderLineItems(ctx context.Context, db query.DBTX, orderIDs []uuid.UUID) ([]query.OrderLineItem, error)
}

type OrderReadStore struct {
	queries OrderReadQueries
	db      query.DBTX
}

func NewOrderReadStore(queries OrderReadQueries, db query.DBTX) *OrderReadStore {
	return &OrderReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *OrderReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.OrderView, error) {
	return r.FindByIDWith(ctx, r.db, id)
}

// FindByIDWith runs the lookup on an explicit connection, typically an open transaction.
func (r *OrderReadStore) FindByIDWith(ctx context.Context, db query.DBTX, id uuid.UUID) (*queries.OrderView, error) {
	row, err := r.queries.GetOrderByID(ctx, db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get order by id", err)
	}
	views, err := r.withItems(ctx, db, []query.Order{row})
	if err != nil {
		return nil, err
	}
	return views[0], nil
}

func (r *OrderReadStore) List(ctx context.Context, filter queries.OrderFilter) ([]*queries.OrderView, error) {
	rows, err := r.queries.ListOrders(ctx, r.db, query.ListOrdersParams{
		OwnerID: filter.OwnerID,
		Status:  filter.Status,
		After:   toKeyset(filter.After),
		Limit:   filter.Limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list orders", err)
	}
	return r.withItems(ctx, r.db, rows)
}

// withItems attaches line items with a single follow-up query for the whole page.
func (r *OrderReadStore) withItems(ctx context.Context, db query.DBTX, rows []query.Order) ([]*queries.OrderView, error) {
	views := make([]*queries.OrderView, 0, len(rows))
	if len(rows) == 0 {
		return views, nil
	}
	ids := make([]uuid.UUID, len(rows))
	byID := make(map[uuid.UUID]*queries.OrderView, len(rows))
	for i, row := range rows {
		ids[i] = row.ID
		v := &queries.OrderView{
			ID:          row.ID,
			OwnerID:     row.OwnerID,
			Items:       []queries.OrderLineItemView{},
			TotalAmount: row.TotalAmount,
			Status:      row.Status,
			TrackingURL: row.TrackingURL,
			CreatedAt:   row.CreatedAt,
			UpdatedAt:   row.UpdatedAt,
		}
		byID[row.ID] = v
		views = append(views, v)
	}

	items, err := r.queries.ListOrderLineItems(ctx, db, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list order line items", err)
	}
	for _, li := range items {
		v, ok := byID[li.OrderID]
		if !ok {
			continue
		}
		v.Items = append(v.Items, queries.OrderLineItemView{
			CatalogEntryID: li.CatalogEntryID,
			Title:          li.Title,
			Quantity:       int(li.Quantity),
			UnitPrice:      li.UnitPrice,
			LineTotal:      li.LineTotal,
		})
	}
	return views, nil
}
