//go:build unit || e2e

package builder

import (
	"time"

	"bibliolights/internal/domain/catalog"
	reqdto "bibliolights/internal/handler/dto/request"
	"bibliolights/internal/infra/query"
	"bibliolights/internal/usecase/queries"
	"bibliolights/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CatalogEntryBuilder struct {
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

func NewCatalogEntryBuilder() *CatalogEntryBuilder {
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	description := "A multi-generational saga of the Buendía family."
	return &CatalogEntryBuilder{
		ID:              uuid.New(),
		Title:           "Cien años de soledad",
		Author:          "Gabriel García Márquez",
		Description:     &description,
		Price:           decimal.RequireFromString("19.90"),
		DeliveryOptions: []string{"5 días", "10 días"},
		Quota:           3,
		Reserved:        0,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func (b *CatalogEntryBuilder) With(mutate func(*CatalogEntryBuilder)) *CatalogEntryBuilder {
	mutate(b)
	return b
}

func (b *CatalogEntryBuilder) WithQuota(quota, reserved int) *CatalogEntryBuilder {
	b.Quota = quota
	b.Reserved = reserved
	return b
}

func (b *CatalogEntryBuilder) WithDeliveryOptions(opts ...string) *CatalogEntryBuilder {
	b.DeliveryOptions = opts
	return b
}

func (b *CatalogEntryBuilder) Input() catalog.EntryInput {
	return catalog.EntryInput{
		Title:           b.Title,
		Author:          b.Author,
		Description:     b.Description,
		CoverImage:      b.CoverImage,
		Price:           b.Price,
		DeliveryOptions: b.DeliveryOptions,
		Quota:           b.Quota,
	}
}

// Build methods
func (b *CatalogEntryBuilder) BuildDomain() (*catalog.Entry, error) {
	return catalog.NewEntry(b.Input(), b.CreatedAt)
}

func (b *CatalogEntryBuilder) BuildReconstructed() *catalog.Entry {
	return catalog.ReconstructEntry(b.ID, b.Title, b.Author, b.Description, b.CoverImage, b.Price,
		b.DeliveryOptions, b.Quota, b.Reserved, b.CreatedAt, b.UpdatedAt)
}

func (b *CatalogEntryBuilder) BuildSnapshot() *shared.CatalogEntrySnapshot {
	return &shared.CatalogEntrySnapshot{
		ID:              b.ID,
		Title:           b.Title,
		Author:          b.Author,
		Description:     b.Description,
		CoverImage:      b.CoverImage,
		Price:           b.Price,
		DeliveryOptions: b.DeliveryOptions,
		Quota:           b.Quota,
		Reserved:        b.Reserved,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

func (b *CatalogEntryBuilder) BuildRow() query.CatalogEntry {
	return query.CatalogEntry{
		ID:              b.ID,
		Title:           b.Title,
		Author:          b.Author,
		Description:     b.Description,
		CoverImage:      b.CoverImage,
		Price:           b.Price,
		DeliveryOptions: b.DeliveryOptions,
		Quota:           int32(b.Quota),
		Reserved:        int32(b.Reserved),
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

func (b *CatalogEntryBuilder) BuildCounter() query.CatalogCounter {
	return query.CatalogCounter{ID: b.ID, Quota: int32(b.Quota), Reserved: int32(b.Reserved)}
}

func (b *CatalogEntryBuilder) BuildView() *queries.CatalogEntryView {
	return &queries.CatalogEntryView{
		ID:              b.ID,
		Title:           b.Title,
		Author:          b.Author,
		Description:     b.Description,
		CoverImage:      b.CoverImage,
		Price:           b.Price,
		DeliveryOptions: b.DeliveryOptions,
		Quota:           b.Quota,
		Reserved:        b.Reserved,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

func (b *CatalogEntryBuilder) BuildCreateRequestDTO() reqdto.CreateCatalogEntryRequest {
	return reqdto.CreateCatalogEntryRequest{
		Title:           b.Title,
		Author:          b.Author,
		Description:     b.Description,
		CoverImage:      b.CoverImage,
		Price:           b.Price,
		DeliveryOptions: b.DeliveryOptions,
		Quota:           b.Quota,
	}
}
