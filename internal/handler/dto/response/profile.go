package response

import (
	"time"

	"bibliolights/internal/usecase/queries"

	"github.com/google/uuid"
)

type FavoriteResponse struct {
	CatalogEntryResponse
	FavoritedAt time.Time `json:"favoritedAt"`
}

func FromFavoriteList(items []*queries.FavoriteView) ([]*FavoriteResponse, error) {
	res := make([]*FavoriteResponse, len(items))
	for i, it := range items {
		entry, err := FromCatalogEntryView(&it.CatalogEntryView)
		if err != nil {
			return nil, err
		}
		res[i] = &FavoriteResponse{CatalogEntryResponse: *entry, FavoritedAt: it.FavoritedAt}
	}
	return res, nil
}

type FavoriteToggleResponse struct {
	CatalogEntryID uuid.UUID `json:"catalogEntryId"`
	Favorited      bool      `json:"favorited"`
}

// UserDetailsResponse renders absent fields as null, never as an empty string.
type UserDetailsResponse struct {
	UserID      uuid.UUID  `json:"userId"`
	FirstName   *string    `json:"firstName"`
	LastName    *string    `json:"lastName"`
	Address     *string    `json:"address"`
	City        *string    `json:"city"`
	Country     *string    `json:"country"`
	PhoneNumber *string    `json:"phoneNumber"`
	Dob         *string    `json:"dob"`
	UpdatedAt   *time.Time `json:"updatedAt"`
}

func FromUserDetailsView(v *queries.UserDetailsView) (*UserDetailsResponse, error) {
	res := &UserDetailsResponse{}
	if err := copyView(res, v, "user details"); err != nil {
		return nil, err
	}
	if v.DateOfBirth != nil {
		dob := v.DateOfBirth.Format("2006-01-02")
		res.Dob = &dob
	}
	return res, nil
}
