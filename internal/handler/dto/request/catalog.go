package request

import (
	"bibliolights/internal/domain/catalog"
	"bibliolights/internal/usecase/commands"

	"github.com/shopspring/decimal"
)

type CreateCatalogEntryRequest struct {
	Title           string          `json:"title" binding:"required"`
	Author          string          `json:"author" binding:"required"`
	Description     *string         `json:"description"`
	CoverImage      *string         `json:"coverImage"`
	Price           decimal.Decimal `json:"price"`
	DeliveryOptions []string        `json:"deliveryOptions" binding:"required"`
	Quota           int             `json:"quota"`
}

func (r *CreateCatalogEntryRequest) ToDomain() catalog.EntryInput {
	return catalog.EntryInput{
		Title:           r.Title,
		Author:          r.Author,
		Description:     r.Description,
		CoverImage:      r.CoverImage,
		Price:           r.Price,
		DeliveryOptions: r.DeliveryOptions,
		Quota:           r.Quota,
	}
}

// UpdateCatalogEntryRequest is a partial update; omitted fields keep their stored value.
type UpdateCatalogEntryRequest struct {
	Title           *string          `json:"title"`
	Author          *string          `json:"author"`
	Description     *string          `json:"description"`
	CoverImage      *string          `json:"coverImage"`
	Price           *decimal.Decimal `json:"price"`
	DeliveryOptions *[]string        `json:"deliveryOptions"`
	Quota           *int             `json:"quota"`
}

func (r *UpdateCatalogEntryRequest) ToPatch() commands.CatalogPatch {
	return commands.CatalogPatch{
		Title:           r.Title,
		Author:          r.Author,
		Description:     r.Description,
		CoverImage:      r.CoverImage,
		Price:           r.Price,
		DeliveryOptions: r.DeliveryOptions,
		Quota:           r.Quota,
	}
}

type UpdateQuotaRequest struct {
	Quota *int `json:"quota" binding:"required"`
}
