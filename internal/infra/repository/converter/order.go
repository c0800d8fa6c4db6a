package converter

import (
	"bibliolights/internal/domain/order"
	"bibliolights/internal/infra/query"
	"bibliolights/internal/pkg/pgconv"
)

func OrderToCreateParams(o *order.Order) (query.CreateOrderParams, []query.CreateOrderLineItemParams) {
	items := make([]query.CreateOrderLineItemParams, len(o.Items()))
	for i, li := range o.Items() {
		items[i] = query.CreateOrderLineItemParams{
			CatalogEntryID: li.CatalogEntryID(),
			Quantity:       pgconv.IntToInt32(li.Quantity()),
			UnitPrice:      li.UnitPrice(),
			LineTotal:      li.LineTotal(),
		}
	}
	return query.CreateOrderParams{
		ID:          o.ID(),
		OwnerID:     o.OwnerID(),
		TotalAmount: o.TotalAmount(),
		Status:      o.Status().String(),
		CreatedAt:   o.CreatedAt(),
	}, items
}
