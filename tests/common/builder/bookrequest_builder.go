//go:build unit || e2e

package builder

import (
	"time"

	"bibliolights/internal/domain/bookrequest"
	reqdto "bibliolights/internal/handler/dto/request"
	"bibliolights/internal/infra/query"
	"bibliolights/internal/usecase/queries"
	"bibliolights/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BookRequestBuilder struct {
	ID                    uuid.UUID
	UserID                uuid.UUID
	CatalogEntryID        uuid.UUID
	Title                 string
	Author                string
	DeliveryOption        string
	PriceSnapshot         decimal.Decimal
	Status                bookrequest.Status
	EstimatedDeliveryDate time.Time
	Notes                 *string
	RequestedAt           time.Time
	UpdatedAt             time.Time
}

func NewBookRequestBuilder() *BookRequestBuilder {
	now := time.Date(2025, 3, 2, 9, 30, 0, 0, time.UTC)
	return &BookRequestBuilder{
		ID:                    uuid.New(),
		UserID:                uuid.New(),
		CatalogEntryID:        uuid.New(),
		Title:                 "Cien años de soledad",
		Author:                "Gabriel García Márquez",
		DeliveryOption:        "5 días",
		PriceSnapshot:         decimal.RequireFromString("19.90"),
		Status:                bookrequest.StatusPending,
		EstimatedDeliveryDate: now.AddDate(0, 0, 5),
		RequestedAt:           now,
		UpdatedAt:             now,
	}
}

func (b *BookRequestBuilder) With(mutate func(*BookRequestBuilder)) *BookRequestBuilder {
	mutate(b)
	return b
}

func (b *BookRequestBuilder) WithStatus(s bookrequest.Status) *BookRequestBuilder {
	b.Status = s
	return b
}

func (b *BookRequestBuilder) ForEntry(entry *CatalogEntryBuilder) *BookRequestBuilder {
	b.CatalogEntryID = entry.ID
	b.Title = entry.Title
	b.Author = entry.Author
	b.PriceSnapshot = entry.Price
	return b
}

// Build methods
func (b *BookRequestBuilder) BuildReconstructed() *bookrequest.BookRequest {
	return bookrequest.ReconstructBookRequest(b.ID, b.UserID, b.CatalogEntryID, b.DeliveryOption, b.PriceSnapshot,
		b.Status, b.EstimatedDeliveryDate, b.Notes, b.RequestedAt, b.UpdatedAt)
}

func (b *BookRequestBuilder) BuildSnapshot() *shared.BookRequestSnapshot {
	return &shared.BookRequestSnapshot{
		ID:                    b.ID,
		UserID:                b.UserID,
		CatalogEntryID:        b.CatalogEntryID,
		DeliveryOption:        b.DeliveryOption,
		PriceSnapshot:         b.PriceSnapshot,
		Status:                string(b.Status),
		EstimatedDeliveryDate: b.EstimatedDeliveryDate,
		Notes:                 b.Notes,
		RequestedAt:           b.RequestedAt,
		UpdatedAt:             b.UpdatedAt,
	}
}

func (b *BookRequestBuilder) BuildRow() query.BookRequestView {
	return query.BookRequestView{
		BookRequest: query.BookRequest{
			ID:                    b.ID,
			UserID:                b.UserID,
			CatalogEntryID:        b.CatalogEntryID,
			DeliveryOption:        b.DeliveryOption,
			PriceSnapshot:         b.PriceSnapshot,
			Status:                string(b.Status),
			EstimatedDeliveryDate: b.EstimatedDeliveryDate,
			Notes:                 b.Notes,
			RequestedAt:           b.RequestedAt,
			UpdatedAt:             b.UpdatedAt,
		},
		Title:  b.Title,
		Author: b.Author,
	}
}

func (b *BookRequestBuilder) BuildView() *queries.BookRequestView {
	return &queries.BookRequestView{
		ID:                    b.ID,
		UserID:                b.UserID,
		CatalogEntryID:        b.CatalogEntryID,
		Title:                 b.Title,
		Author:                b.Author,
		DeliveryOption:        b.DeliveryOption,
		PriceSnapshot:         b.PriceSnapshot,
		Status:                string(b.Status),
		EstimatedDeliveryDate: b.EstimatedDeliveryDate,
		Notes:                 b.Notes,
		RequestedAt:           b.RequestedAt,
		UpdatedAt:             b.UpdatedAt,
	}
}

func (b *BookRequestBuilder) BuildRequestDTO() reqdto.RequestBookRequest {
	return reqdto.RequestBookRequest{
		DeliveryOption: b.DeliveryOption,
		Notes:          b.Notes,
	}
}
