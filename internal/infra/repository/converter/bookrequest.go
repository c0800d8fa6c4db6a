package converter

import (
	"bibliolights/internal/domain/bookrequest"
	"bibliolights/internal/infra/query"
)

func BookRequestToCreateParams(r *bookrequest.BookRequest) query.CreateBookRequestParams {
	return query.CreateBookRequestParams{
		ID:                    r.ID(),
		UserID:                r.UserID(),
		CatalogEntryID:        r.CatalogEntryID(),
		DeliveryOption:        r.DeliveryOption(),
		PriceSnapshot:         r.PriceSnapshot(),
		Status:                r.Status().String(),
		EstimatedDeliveryDate: r.EstimatedDeliveryDate(),
		Notes:                 r.Notes(),
		RequestedAt:           r.RequestedAt(),
	}
}
