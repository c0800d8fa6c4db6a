package response

import (
	"time"

	"bibliolights/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CatalogEntryResponse struct {
	ID              uuid.UUID       `json:"id"`
	Title           string          `json:"title"`
	Author          string          `json:"author"`
	Description     *string         `json:"description"`
	CoverImage      *string         `json:"coverImage"`
	Price           decimal.Decimal `json:"price"`
	DeliveryOptions []string        `json:"deliveryOptions"`
	Quota           int             `json:"quota"`
	Reserved        int             `json:"reserved"`
	Remaining       int             `json:"remaining"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

func FromCatalogEntryView(v *queries.CatalogEntryView) (*CatalogEntryResponse, error) {
	res := &CatalogEntryResponse{}
	if err := copyView(res, v, "catalog entry"); err != nil {
		return nil, err
	}
	res.Remaining = max(v.Quota-v.Reserved, 0)
	return res, nil
}

func FromCatalogEntryList(items []*queries.CatalogEntryView) ([]*CatalogEntryResponse, error) {
	res := make([]*CatalogEntryResponse, len(items))
	for i, it := range items {
		r, err := FromCatalogEntryView(it)
		if err != nil {
			return nil, err
		}
		res[i] = r
	}
	return res, nil
}

type CatalogStatsResponse struct {
	CatalogEntryID   uuid.UUID        `json:"catalogEntryId"`
	Quota            int              `json:"quota"`
	Reserved         int              `json:"reserved"`
	RequestsByStatus map[string]int64 `json:"requestsByStatus"`
}

func FromCatalogStatsView(v *queries.CatalogStatsView) (*CatalogStatsResponse, error) {
	res := &CatalogStatsResponse{}
	if err := copyView(res, v, "catalog stats"); err != nil {
		return nil, err
	}
	return res, nil
}

// QuotaResponse reports the ledger counters after a quota change or an explicit release.
type QuotaResponse struct {
	CatalogEntryID uuid.UUID `json:"catalogEntryId"`
	Quota          int       `json:"quota"`
	Reserved       int       `json:"reserved"`
}
