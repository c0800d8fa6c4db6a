package commands

import (
	"context"

	"bibliolights/internal/domain/catalog"
	"bibliolights/internal/infra"
	"bibliolights/internal/pkg/clock"
	"bibliolights/internal/pkg/errs"
	"bibliolights/internal/pkg/patch"
	"bibliolights/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CatalogPatch carries a partial update; nil fields keep their stored value.
type CatalogPatch struct {
	Title           *string
	Author          *string
	Description     *string
	CoverImage      *string
	Price           *decimal.Decimal
	DeliveryOptions *[]string
	Quota           *int
}

type CatalogCommands interface {
	Create(ctx context.Context, in catalog.EntryInput) (*catalog.Entry, error)
	Update(ctx context.Context, id uuid.UUID, p CatalogPatch) (*catalog.Entry, error)
	// UpdateQuota applies only while the new quota still covers the reserved count.
	UpdateQuota(ctx context.Context, id uuid.UUID, quota int) (*shared.Counter, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type catalogCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewCatalogCommands(uow shared.UnitOfWork, clk clock.Clock) CatalogCommands {
	return &catalogCommandsImpl{uow: uow, clock: clk}
}

func (c *catalogCommandsImpl) Create(ctx context.Context, in catalog.EntryInput) (*catalog.Entry, error) {
	entry, err := catalog.NewEntry(in, c.clock.Now())
	if err != nil {
		return nil, err
	}
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.CatalogEntries().Create(ctx, tx.DB(), entry)
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

func (c *catalogCommandsImpl) Update(ctx context.Context, id uuid.UUID, p CatalogPatch) (*catalog.Entry, error) {
	var result *catalog.Entry
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().CatalogEntryByID(ctx, id)
		if derr != nil {
			return derr
		}
		entry := catalog.ReconstructEntry(snap.ID, snap.Title, snap.Author, snap.Description, snap.CoverImage,
			snap.Price, snap.DeliveryOptions, snap.Quota, snap.Reserved, snap.CreatedAt, snap.UpdatedAt)

		in := catalog.EntryInput{
			Title:           patch.Coalesce(p.Title, snap.Title),
			Author:          patch.Coalesce(p.Author, snap.Author),
			Description:     patch.CoalescePtr(p.Description, snap.Description),
			CoverImage:      patch.CoalescePtr(p.CoverImage, snap.CoverImage),
			Price:           patch.Coalesce(p.Price, snap.Price),
			DeliveryOptions: patch.Coalesce(p.DeliveryOptions, snap.DeliveryOptions),
			Quota:           patch.Coalesce(p.Quota, snap.Quota),
		}
		if derr = entry.Revise(in, c.clock.Now()); derr != nil {
			return derr
		}
		if derr = tx.CatalogEntries().Update(ctx, tx.DB(), entry); derr != nil {
			if !infra.IsKind(derr, infra.KindConditionNotMet) {
				return derr
			}
			return quotaConflict(ctx, tx, id)
		}
		result = entry
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (c *catalogCommandsImpl) UpdateQuota(ctx context.Context, id uuid.UUID, quota int) (*shared.Counter, error) {
	if quota < 0 {
		return nil, catalog.ErrNegativeQuota
	}
	var counter shared.Counter
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		updated, derr := tx.Inventory().SetQuota(ctx, tx.DB(), id, quota, c.clock.Now())
		if derr == nil {
			counter = updated
			return nil
		}
		if !infra.IsKind(derr, infra.KindConditionNotMet) {
			return derr
		}
		return quotaConflict(ctx, tx, id)
	})
	if err != nil {
		return nil, err
	}
	return &counter, nil
}

func (c *catalogCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.CatalogEntries().Delete(ctx, tx.DB(), id)
	})
}

// quotaConflict explains a failed conditional write: NotFound when the entry is gone,
// otherwise the new quota fell below the reserved count.
func quotaConflict(ctx context.Context, tx shared.Tx, id uuid.UUID) error {
	current, err := tx.Inventory().Counter(ctx, tx.DB(), id)
	if err != nil {
		return err
	}
	return errs.Wrapf(catalog.ErrQuotaBelowReserved, "catalog entry %s has %d reserved", id, current.Reserved)
}
