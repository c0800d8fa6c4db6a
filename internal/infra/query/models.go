package query

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CatalogEntry struct {
	ID              uuid.UUID
	Title           string
	Author          string
	Description     *string
	CoverImage      *string
	Price           decimal.Decimal
	DeliveryOptions []string
	Quota           int32
	Reserved        int32
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// CatalogCounter is the ledger view of an entry.
type CatalogCounter struct {
	ID       uuid.UUID
	Quota    int32
	Reserved int32
}

type StatusCount struct {
	Status string
	Count  int64
}

type BookRequest struct {
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

// BookRequestView is a request joined with the title and author of its entry.
type BookRequestView struct {
	BookRequest
	Title  string
	Author string
}

type Order struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	TotalAmount decimal.Decimal
	Status      string
	TrackingURL *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type OrderLineItem struct {
	OrderID        uuid.UUID
	Position       int32
	CatalogEntryID uuid.UUID
	Title          string
	Quantity       int32
	UnitPrice      decimal.Decimal
	LineTotal      decimal.Decimal
}

type UserDetails struct {
	UserID      uuid.UUID
	FirstName   *string
	LastName    *string
	Address     *string
	City        *string
	Country     *string
	PhoneNumber *string
	DateOfBirth *time.Time
	UpdatedAt   time.Time
}

type FavoriteEntry struct {
	CatalogEntry
	FavoritedAt time.Time
}
