package shared

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Counter is the ledger state of one catalog entry.
type Counter struct {
	EntryID  uuid.UUID
	Quota    int
	Reserved int
}

type CatalogEntrySnapshot struct {
	ID              uuid.UUID
	Title           string
	Author          string
	Description     *string
	CoverImage      *string
	Price           decimal.Decimal
	DeliveryOptions []string
	Quota           int
	Reserved        int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type BookRequestSnapshot struct {
	ID                    uuid.UUID
	UserID                uuid.UUID
	CatalogEntryID        uuid.UUID
	DeliveryOption        string
	PriceSnapshot         decimal.Decimal
	Status                string
	EstimatedDeliveryDate time.Time
	Notes                 *string
	RequestedAt           time.Time
	UpdatedAt             time.Time
}

type OrderLineItemSnapshot struct {
	CatalogEntryID uuid.UUID
	Quantity       int
	UnitPrice      decimal.Decimal
	LineTotal      decimal.Decimal
}

type OrderSnapshot struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Items       []OrderLineItemSnapshot
	TotalAmount decimal.Decimal
	Status      string
	TrackingURL *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
