package queries

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CatalogEntryView struct {
	ID              uuid.UUID       `json:"id"`
	Title           string          `json:"title"`
	Author          string          `json:"author"`
	Description     *string         `json:"description"`
	CoverImage      *string         `json:"cover_image"`
	Price           decimal.Decimal `json:"price"`
	DeliveryOptions []string        `json:"delivery_options"`
	Quota           int             `json:"quota"`
	Reserved        int             `json:"reserved"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// CatalogStatsView is the admin summary of one entry's request activity.
type CatalogStatsView struct {
	CatalogEntryID   uuid.UUID        `json:"catalog_entry_id"`
	Quota            int              `json:"quota"`
	Reserved         int              `json:"reserved"`
	RequestsByStatus map[string]int64 `json:"requests_by_status"`
}

type BookRequestView struct {
	ID                    uuid.UUID       `json:"id"`
	UserID                uuid.UUID       `json:"user_id"`
	CatalogEntryID        uuid.UUID       `json:"catalog_entry_id"`
	Title                 string          `json:"title"`
	Author                string          `json:"author"`
	DeliveryOption        string          `json:"delivery_option"`
	PriceSnapshot         decimal.Decimal `json:"price_snapshot"`
	Status                string          `json:"status"`
	EstimatedDeliveryDate time.Time       `json:"estimated_delivery_date"`
	Notes                 *string         `json:"notes"`
	RequestedAt           time.Time       `json:"requested_at"`
	UpdatedAt             time.Time       `json:"updated_at"`
}

type BookRequestFilter struct {
	UserID *uuid.UUID
	Status *string
	After  *Position
	Limit  int32
}

type OrderLineItemView struct {
	CatalogEntryID uuid.UUID       `json:"catalog_entry_id"`
	Title          string          `json:"title"`
	Quantity       int             `json:"quantity"`
	UnitPrice      decimal.Decimal `json:"unit_price"`
	LineTotal      decimal.Decimal `json:"line_total"`
}

type OrderView struct {
	ID          uuid.UUID           `json:"id"`
	OwnerID     uuid.UUID           `json:"owner_id"`
	Items       []OrderLineItemView `json:"items"`
	TotalAmount decimal.Decimal     `json:"total_amount"`
	Status      string              `json:"status"`
	TrackingURL *string             `json:"tracking_url"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

type OrderFilter struct {
	OwnerID *uuid.UUID
	Status  *string
	After   *Position
	Limit   int32
}

type FavoriteView struct {
	CatalogEntryView
	FavoritedAt time.Time `json:"favorited_at"`
}

// UserDetailsView renders every absent field as null.
type UserDetailsView struct {
	UserID      uuid.UUID  `json:"user_id"`
	FirstName   *string    `json:"first_name"`
	LastName    *string    `json:"last_name"`
	Address     *string    `json:"address"`
	City        *string    `json:"city"`
	Country     *string    `json:"country"`
	PhoneNumber *string    `json:"phone_number"`
	DateOfBirth *time.Time `json:"date_of_birth"`
	UpdatedAt   *time.Time `json:"updated_at"`
}
