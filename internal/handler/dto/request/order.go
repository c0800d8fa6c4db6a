package request

import (
	"bibliolights/internal/domain/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderItemRequest struct {
	CatalogEntryID uuid.UUID       `json:"catalogEntryId"`
	Quantity       int             `json:"quantity"`
	UnitPrice      decimal.Decimal `json:"unitPrice"`
}

type CreateOrderRequest struct {
	Items []OrderItemRequest `json:"items" binding:"required"`
}

func (r *CreateOrderRequest) ToDomain() []order.LineItemInput {
	items := make([]order.LineItemInput, len(r.Items))
	for i, it := range r.Items {
		items[i] = order.LineItemInput{
			CatalogEntryID: it.CatalogEntryID,
			Quantity:       it.Quantity,
			UnitPrice:      it.UnitPrice,
		}
	}
	return items
}

// UpdateOrderStatusRequest leaves the tracking url untouched when trackingUrl is omitted.
type UpdateOrderStatusRequest struct {
	Status      string  `json:"status" binding:"required"`
	TrackingURL *string `json:"trackingUrl"`
}
