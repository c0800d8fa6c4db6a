package queries

import (
	"context"

	"github.com/google/uuid"
)

type ProfileReadStore interface {
	Favorites(ctx context.Context, userID uuid.UUID) ([]*FavoriteView, error)
	// Details returns nil, nil when the user never saved a profile.
	Details(ctx context.Context, userID uuid.UUID) (*UserDetailsView, error)
}

type ProfileQueries interface {
	Favorites(ctx context.Context, userID uuid.UUID) ([]*FavoriteView, error)
	Details(ctx context.Context, userID uuid.UUID) (*UserDetailsView, error)
}

type profileQueriesImpl struct {
	store ProfileReadStore
}

func NewProfileQueries(store ProfileReadStore) ProfileQueries {
	return &profileQueriesImpl{store: store}
}

func (q *profileQueriesImpl) Favorites(ctx context.Context, userID uuid.UUID) ([]*FavoriteView, error) {
	items, err := q.store.Favorites(ctx, userID)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []*FavoriteView{}
	}
	return items, nil
}

// Details never fails for a user without a profile; every field is simply null.
func (q *profileQueriesImpl) Details(ctx context.Context, userID uuid.UUID) (*UserDetailsView, error) {
	d, err := q.store.Details(ctx, userID)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return &UserDetailsView{UserID: userID}, nil
	}
	return d, nil
}
