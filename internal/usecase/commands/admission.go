package commands

import (
	"context"
	"log/slog"

	"bibliolights/internal/domain/bookrequest"
	"bibliolights/internal/usecase/shared"

	"github.com/google/uuid"
)

type RequestBookInput struct {
	UserID         uuid.UUID
	CatalogEntryID uuid.UUID
	DeliveryOption string
	Notes          *string
}

// AdmissionCommands composes the ledger and the request state machine into "request a book".
type AdmissionCommands interface {
	RequestBook(ctx context.Context, in RequestBookInput) (*bookrequest.BookRequest, error)
}

type admissionCommandsImpl struct {
	uow      shared.UnitOfWork
	ledger   InventoryLedger
	requests BookRequestCommands
}

func NewAdmissionCommands(uow shared.UnitOfWork, ledger InventoryLedger, requests BookRequestCommands) AdmissionCommands {
	return &admissionCommandsImpl{
		uow:      uow,
		ledger:   ledger,
		requests: requests,
	}
}

// RequestBook validates before reserving so an invalid request never consumes quota.
// A failed insert after a successful reservation leaves the slot consumed. It is logged and never retried here.
func (a *admissionCommandsImpl) RequestBook(ctx context.Context, in RequestBookInput) (*bookrequest.BookRequest, error) {
	entry, err := a.uow.CommandReads().CatalogEntryByID(ctx, in.CatalogEntryID)
	if err != nil {
		return nil, err
	}
	if err := a.requests.Validate(entry, in.DeliveryOption, in.Notes); err != nil {
		return nil, err
	}

	token, err := a.ledger.TryReserve(ctx, entry.ID)
	if err != nil {
		return nil, err
	}

	req, err := a.requests.Create(ctx, CreateBookRequestInput{
		UserID:         in.UserID,
		Entry:          entry,
		DeliveryOption: in.DeliveryOption,
		PriceSnapshot:  entry.Price,
		Notes:          in.Notes,
	})
	if err != nil {
		slog.WarnContext(ctx, "book request insert failed after reservation, slot stays consumed",
			"catalog_entry_id", entry.ID,
			"user_id", in.UserID,
			"reserved", token.Reserved,
			"error", err.Error())
		return nil, err
	}
	return req, nil
}
