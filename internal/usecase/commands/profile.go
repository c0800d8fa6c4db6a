package commands

import (
	"context"

	"bibliolights/internal/domain/user"
	"bibliolights/internal/pkg/clock"
	"bibliolights/internal/usecase/shared"

	"github.com/google/uuid"
)

type ProfileCommands interface {
	// ToggleFavorite adds the entry when absent and removes it otherwise. It reports the new state.
	ToggleFavorite(ctx context.Context, userID, catalogEntryID uuid.UUID) (bool, error)
	SaveDetails(ctx context.Context, userID uuid.UUID, in user.DetailsInput) (*user.Details, error)
}

type profileCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewProfileCommands(uow shared.UnitOfWork, clk clock.Clock) ProfileCommands {
	return &profileCommandsImpl{uow: uow, clock: clk}
}

func (c *profileCommandsImpl) ToggleFavorite(ctx context.Context, userID, catalogEntryID uuid.UUID) (bool, error) {
	var favorited bool
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		removed, derr := tx.Favorites().Remove(ctx, tx.DB(), userID, catalogEntryID)
		if derr != nil {
			return derr
		}
		if removed {
			favorited = false
			return nil
		}
		if _, derr = tx.Favorites().Add(ctx, tx.DB(), userID, catalogEntryID, c.clock.Now()); derr != nil {
			return derr
		}
		favorited = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return favorited, nil
}

// SaveDetails replaces the whole profile. Omitted or blank fields are stored as NULL.
func (c *profileCommandsImpl) SaveDetails(ctx context.Context, userID uuid.UUID, in user.DetailsInput) (*user.Details, error) {
	d, err := user.NewDetails(userID, in, c.clock.Now())
	if err != nil {
		return nil, err
	}
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.UserDetails().Upsert(ctx, tx.DB(), d)
	})
	if err != nil {
		return nil, err
	}
	return d, nil
}
