package response

import (
	"time"

	"bibliolights/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderLineItemResponse struct {
	CatalogEntryID uuid.UUID       `json:"catalogEntryId"`
	Title          string          `json:"title"`
	Quantity       int             `json:"quantity"`
	UnitPrice      decimal.Decimal `json:"unitPrice"`
	LineTotal      decimal.Decimal `json:"lineTotal"`
}

type OrderResponse struct {
	ID          uuid.UUID               `json:"id"`
	OwnerID     uuid.UUID               `json:"ownerId"`
	Items       []OrderLineItemResponse `json:"items"`
	TotalAmount decimal.Decimal         `json:"totalAmount"`
	Status      string                  `json:"status"`
	TrackingURL *string                 `json:"trackingUrl"`
	CreatedAt   time.Time               `json:"createdAt"`
	UpdatedAt   time.Time               `json:"updatedAt"`
}

func FromOrderView(v *queries.OrderView) (*OrderResponse, error) {
	res := &OrderResponse{}
	if err := copyView(res, v, "order"); err != nil {
		return nil, err
	}
	if res.Items == nil {
		res.Items = []OrderLineItemResponse{}
	}
	return res, nil
}

func FromOrderList(items []*queries.OrderView) ([]*OrderResponse, error) {
	res := make([]*OrderResponse, len(items))
	for i, it := range items {
		r, err := FromOrderView(it)
		if err != nil {
			return nil, err
		}
		res[i] = r
	}
	return res, nil
}
