package commands

import (
	"context"

	"bibliolights/internal/domain/order"
	"bibliolights/internal/pkg/clock"
	"bibliolights/internal/usecase/shared"

	"github.com/google/uuid"
)

type OrderCommands interface {
	CreateOrder(ctx context.Context, ownerID uuid.UUID, items []order.LineItemInput) (*order.Order, error)
	// UpdateStatus replaces the tracking url only when trackingURL is non-nil.
	UpdateStatus(ctx context.Context, orderID uuid.UUID, target string, trackingURL *string) (*order.Order, error)
}

type orderCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewOrderCommands(uow shared.UnitOfWork, clk clock.Clock) OrderCommands {
	return &orderCommandsImpl{uow: uow, clock: clk}
}

// CreateOrder does not touch the request quota; checkout is capacity-agnostic.
func (c *orderCommandsImpl) CreateOrder(ctx context.Context, ownerID uuid.UUID, items []order.LineItemInput) (*order.Order, error) {
	o, err := order.NewOrder(ownerID, items, c.clock.Now())
	if err != nil {
		return nil, err
	}
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Orders().Create(ctx, tx.DB(), o)
	})
	if err != nil {
		return nil, err
	}
	return o, nil
}

func (c *orderCommandsImpl) UpdateStatus(ctx context.Context, orderID uuid.UUID, target string, trackingURL *string) (*order.Order, error) {
	status, err := order.ParseStatus(target)
	if err != nil {
		return nil, err
	}
	if trackingURL != nil {
		if _, err := order.NormalizeTrackingURL(*trackingURL); err != nil {
			return nil, err
		}
	}

	var result *order.Order
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().OrderByID(ctx, orderID)
		if derr != nil {
			return derr
		}
		items := make([]order.LineItem, len(snap.Items))
		for i, it := range snap.Items {
			items[i] = order.ReconstructLineItem(it.CatalogEntryID, it.Quantity, it.UnitPrice, it.LineTotal)
		}
		o := order.ReconstructOrder(snap.ID, snap.OwnerID, items, snap.TotalAmount, order.Status(snap.Status),
			snap.TrackingURL, snap.CreatedAt, snap.UpdatedAt)
		if derr = o.ChangeStatus(status, trackingURL, c.clock.Now()); derr != nil {
			return derr
		}
		if derr = tx.Orders().UpdateStatus(ctx, tx.DB(), o, trackingURL != nil); derr != nil {
			return derr
		}
		result = o
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
