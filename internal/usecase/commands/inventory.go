package commands

import (
	"context"
	"time"

	"bibliolights/internal/infra"
	"bibliolights/internal/pkg/clock"
	"bibliolights/internal/pkg/errs"
	"bibliolights/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrQuotaExhausted  = errs.Mark(errs.New("catalog entry has no request quota left"), errs.ErrCapacityExceeded)
	ErrNothingReserved = errs.Validation("catalog entry has no reserved slot to release")
)

// ReservationToken is proof that one unit of an entry's quota was claimed.
type ReservationToken struct {
	CatalogEntryID uuid.UUID
	Reserved       int
	Quota          int
	ReservedAt     time.Time
}

// InventoryLedger is the only writer of an entry's reserved counter.
type InventoryLedger interface {
	TryReserve(ctx context.Context, catalogEntryID uuid.UUID) (*ReservationToken, error)
	Release(ctx context.Context, catalogEntryID uuid.UUID) (*shared.Counter, error)
}

type inventoryLedgerImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewInventoryLedger(uow shared.UnitOfWork, clk clock.Clock) InventoryLedger {
	return &inventoryLedgerImpl{uow: uow, clock: clk}
}

func (l *inventoryLedgerImpl) TryReserve(ctx context.Context, catalogEntryID uuid.UUID) (*ReservationToken, error) {
	var token *ReservationToken
	err := l.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := l.clock.Now()
		c, err := reserveIn(ctx, tx, catalogEntryID, now)
		if err != nil {
			return err
		}
		token = &ReservationToken{
			CatalogEntryID: c.EntryID,
			Reserved:       c.Reserved,
			Quota:          c.Quota,
			ReservedAt:     now,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return token, nil
}

func (l *inventoryLedgerImpl) Release(ctx context.Context, catalogEntryID uuid.UUID) (*shared.Counter, error) {
	var counter shared.Counter
	err := l.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		c, err := releaseIn(ctx, tx, catalogEntryID, l.clock.Now())
		if err != nil {
			return err
		}
		counter = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &counter, nil
}

// reserveIn claims a slot with one conditional increment. When nothing matched, a plain read of the counter
// tells a missing entry from an exhausted one.
func reserveIn(ctx context.Context, tx shared.Tx, entryID uuid.UUID, now time.Time) (shared.Counter, error) {
	c, err := tx.Inventory().Reserve(ctx, tx.DB(), entryID, now)
	if err == nil {
		return c, nil
	}
	if !infra.IsKind(err, infra.KindConditionNotMet) {
		return shared.Counter{}, err
	}
	current, perr := tx.Inventory().Counter(ctx, tx.DB(), entryID)
	if perr != nil {
		return shared.Counter{}, perr
	}
	return shared.Counter{}, errs.Wrapf(ErrQuotaExhausted, "catalog entry %s: %d/%d reserved", entryID, current.Reserved, current.Quota)
}

func releaseIn(ctx context.Context, tx shared.Tx, entryID uuid.UUID, now time.Time) (shared.Counter, error) {
	c, err := tx.Inventory().Release(ctx, tx.DB(), entryID, now)
	if err == nil {
		return c, nil
	}
	if !infra.IsKind(err, infra.KindConditionNotMet) {
		return shared.Counter{}, err
	}
	if _, perr := tx.Inventory().Counter(ctx, tx.DB(), entryID); perr != nil {
		return shared.Counter{}, perr
	}
	return shared.Counter{}, errs.Wrapf(ErrNothingReserved, "catalog entry %s", entryID)
}
