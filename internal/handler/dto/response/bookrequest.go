package response

import (
	"time"

	"bibliolights/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BookRequestResponse struct {
	ID                    uuid.UUID       `json:"id"`
	UserID                uuid.UUID       `json:"userId"`
	CatalogEntryID        uuid.UUID       `json:"catalogEntryId"`
	Title                 string          `json:"title"`
	Author                string          `json:"author"`
	DeliveryOption        string          `json:"deliveryOption"`
	PriceSnapshot         decimal.Decimal `json:"priceSnapshot"`
	Status                string          `json:"status"`
	EstimatedDeliveryDate time.Time       `json:"estimatedDeliveryDate"`
	Notes                 *string         `json:"notes"`
	RequestedAt           time.Time       `json:"requestedAt"`
	UpdatedAt             time.Time       `json:"updatedAt"`
}

func FromBookRequestView(v *queries.BookRequestView) (*BookRequestResponse, error) {
	res := &BookRequestResponse{}
	if err := copyView(res, v, "book request"); err != nil {
		return nil, err
	}
	return res, nil
}

func FromBookRequestList(items []*queries.BookRequestView) ([]*BookRequestResponse, error) {
	res := make([]*BookRequestResponse, len(items))
	for i, it := range items {
		r, err := FromBookRequestView(it)
		if err != nil {
			return nil, err
		}
		res[i] = r
	}
	return res, nil
}
