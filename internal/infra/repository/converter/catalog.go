package converter

import (
	"bibliolights/internal/domain/catalog"
	"bibliolights/internal/infra/query"
	"bibliolights/internal/pkg/pgconv"
)

func CatalogEntryToCreateParams(e *catalog.Entry) query.CreateCatalogEntryParams {
	return query.CreateCatalogEntryParams{
		ID:              e.ID(),
		Title:           e.Title(),
		Author:          e.Author(),
		Description:     e.Description(),
		CoverImage:      e.CoverImage(),
		Price:           e.Price().Amount(),
		DeliveryOptions: e.DeliveryLabels(),
		Quota:           pgconv.IntToInt32(e.Quota()),
		CreatedAt:       e.CreatedAt(),
	}
}

func CatalogEntryToUpdateParams(e *catalog.Entry) query.UpdateCatalogEntryParams {
	return query.UpdateCatalogEntryParams{
		ID:              e.ID(),
		Title:           e.Title(),
		Author:          e.Author(),
		Description:     e.Description(),
		CoverImage:      e.CoverImage(),
		Price:           e.Price().Amount(),
		DeliveryOptions: e.DeliveryLabels(),
		Quota:           pgconv.IntToInt32(e.Quota()),
		UpdatedAt:       e.UpdatedAt(),
	}
}
