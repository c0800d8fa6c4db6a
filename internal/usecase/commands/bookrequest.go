package commands

import (
	"context"
	"log/slog"

	"bibliolights/internal/domain/bookrequest"
	"bibliolights/internal/pkg/clock"
	"bibliolights/internal/pkg/config"
	"bibliolights/internal/pkg/errs"
	"bibliolights/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateBookRequestInput struct {
	UserID         uuid.UUID
	Entry          *shared.CatalogEntrySnapshot
	DeliveryOption string
	PriceSnapshot  decimal.Decimal
	Notes          *string
}

// BookRequestCommands drives book requests through their status graph.
type BookRequestCommands interface {
	// Validate has no side effects; admission calls it before reserving.
	Validate(entry *shared.CatalogEntrySnapshot, deliveryOption string, notes *string) error
	Create(ctx context.Context, in CreateBookRequestInput) (*bookrequest.BookRequest, error)
	Transition(ctx context.Context, requestID uuid.UUID, target string) (*bookrequest.BookRequest, error)
}

type bookRequestCommandsImpl struct {
	uow             shared.UnitOfWork
	clock           clock.Clock
	releaseOnReject bool
}

func NewBookRequestCommands(uow shared.UnitOfWork, clk clock.Clock, cfg config.Config) BookRequestCommands {
	return &bookRequestCommandsImpl{
		uow:             uow,
		clock:           clk,
		releaseOnReject: cfg.Admission.ReleaseOnReject,
	}
}

func (c *bookRequestCommandsImpl) Validate(entry *shared.CatalogEntrySnapshot, deliveryOption string, notes *string) error {
	if _, err := bookrequest.Validate(entry.DeliveryOptions, deliveryOption); err != nil {
		return err
	}
	return bookrequest.CheckNotes(notes)
}

func (c *bookRequestCommandsImpl) Create(ctx context.Context, in CreateBookRequestInput) (*bookrequest.BookRequest, error) {
	req, err := bookrequest.NewBookRequest(in.UserID, in.Entry.ID, in.Entry.DeliveryOptions, in.DeliveryOption,
		in.PriceSnapshot, in.Notes, c.clock.Now())
	if err != nil {
		return nil, err
	}
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.BookRequests().Create(ctx, tx.DB(), req)
	})
	if err != nil {
		return nil, err
	}
	return req, nil
}

// Transition persists with a compare-and-set on the status it read, so of two concurrent admin
// decisions only one wins and the other sees InvalidStateTransition.
func (c *bookRequestCommandsImpl) Transition(ctx context.Context, requestID uuid.UUID, target string) (*bookrequest.BookRequest, error) {
	next, err := bookrequest.ParseStatus(target)
	if err != nil {
		return nil, err
	}

	var result *bookrequest.BookRequest
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().BookRequestByID(ctx, requestID)
		if derr != nil {
			return derr
		}
		req := bookrequest.ReconstructBookRequest(snap.ID, snap.UserID, snap.CatalogEntryID, snap.DeliveryOption,
			snap.PriceSnapshot, bookrequest.Status(snap.Status), snap.EstimatedDeliveryDate, snap.Notes,
			snap.RequestedAt, snap.UpdatedAt)

		now := c.clock.Now()
		prev, derr := req.TransitionTo(next, now)
		if derr != nil {
			return derr
		}
		ok, derr := tx.BookRequests().UpdateStatusIf(ctx, tx.DB(), requestID, prev, next, now)
		if derr != nil {
			return derr
		}
		if !ok {
			return errs.Wrapf(bookrequest.ErrIllegalTransition, "book request %s is no longer %s", requestID, prev)
		}

		if next == bookrequest.StatusRejected && c.releaseOnReject {
			// Any release failure other than an empty counter rolls the rejection back with it.
			_, rerr := releaseIn(ctx, tx, req.CatalogEntryID(), now)
			switch {
			case rerr == nil:
			case errs.Is(rerr, ErrNothingReserved):
				slog.WarnContext(ctx, "rejected request had no reserved slot to release",
					"book_request_id", requestID,
					"catalog_entry_id", req.CatalogEntryID())
			default:
				return errs.Wrapf(rerr, "releasing quota for rejected request %s", requestID)
			}
		}
		result = req
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
