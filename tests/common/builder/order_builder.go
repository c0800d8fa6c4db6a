//go:build unit || e2e

package builder

import (
	"time"

	"bibliolights/internal/domain/order"
	reqdto "bibliolights/internal/handler/dto/request"
	"bibliolights/internal/infra/query"
	"bibliolights/internal/usecase/queries"
	"bibliolights/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderItemSpec struct {
	CatalogEntryID uuid.UUID
	Title          string
	Quantity       int
	UnitPrice      decimal.Decimal
}

type OrderBuilder struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Items       []OrderItemSpec
	Status      order.Status
	TrackingURL *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewOrderBuilder starts with two lines, 2 x 10 and 1 x 5, for a total of 25.
func NewOrderBuilder() *OrderBuilder {
	now := time.Date(2025, 3, 3, 15, 0, 0, 0, time.UTC)
	return &OrderBuilder{
		ID:      uuid.New(),
		OwnerID: uuid.New(),
		Items: []OrderItemSpec{
			{CatalogEntryID: uuid.New(), Title: "Rayuela", Quantity: 2, UnitPrice: decimal.NewFromInt(10)},
			{CatalogEntryID: uuid.New(), Title: "Ficciones", Quantity: 1, UnitPrice: decimal.NewFromInt(5)},
		},
		Status:    order.StatusCreated,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (b *OrderBuilder) With(mutate func(*OrderBuilder)) *OrderBuilder {
	mutate(b)
	return b
}

func (b *OrderBuilder) WithItems(items ...OrderItemSpec) *OrderBuilder {
	b.Items = items
	return b
}

func (b *OrderBuilder) Inputs() []order.LineItemInput {
	in := make([]order.LineItemInput, len(b.Items))
	for i, it := range b.Items {
		in[i] = order.LineItemInput{CatalogEntryID: it.CatalogEntryID, Quantity: it.Quantity, UnitPrice: it.UnitPrice}
	}
	return in
}

func (b *OrderBuilder) total() decimal.Decimal {
	total := decimal.Zero
	for _, it := range b.Items {
		total = total.Add(it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return total
}

// Build methods
func (b *OrderBuilder) BuildDomain() (*order.Order, error) {
	return order.NewOrder(b.OwnerID, b.Inputs(), b.CreatedAt)
}

func (b *OrderBuilder) BuildSnapshot() *shared.OrderSnapshot {
	items := make([]shared.OrderLineItemSnapshot, len(b.Items))
	for i, it := range b.Items {
		items[i] = shared.OrderLineItemSnapshot{
			CatalogEntryID: it.CatalogEntryID,
			Quantity:       it.Quantity,
			UnitPrice:      it.UnitPrice,
			LineTotal:      it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity))),
		}
	}
	return &shared.OrderSnapshot{
		ID:          b.ID,
		OwnerID:     b.OwnerID,
		Items:       items,
		TotalAmount: b.total(),
		Status:      string(b.Status),
		TrackingURL: b.TrackingURL,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

func (b *OrderBuilder) BuildRow() query.Order {
	return query.Order{
		ID:          b.ID,
		OwnerID:     b.OwnerID,
		TotalAmount: b.total(),
		Status:      string(b.Status),
		TrackingURL: b.TrackingURL,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

func (b *OrderBuilder) BuildLineItemRows() []query.OrderLineItem {
	rows := make([]query.OrderLineItem, len(b.Items))
	for i, it := range b.Items {
		rows[i] = query.OrderLineItem{
			OrderID:        b.ID,
			Position:       int32(i),
			CatalogEntryID: it.CatalogEntryID,
			Title:          it.Title,
			Quantity:       int32(it.Quantity),
			UnitPrice:      it.UnitPrice,
			LineTotal:      it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity))),
		}
	}
	return rows
}

func (b *OrderBuilder) BuildView() *queries.OrderView {
	items := make([]queries.OrderLineItemView, len(b.Items))
	for i, it := range b.Items {
		items[i] = queries.OrderLineItemView{
			CatalogEntryID: it.CatalogEntryID,
			Title:          it.Title,
			Quantity:       it.Quantity,
			UnitPrice:      it.UnitPrice,
			LineTotal:      it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity))),
		}
	}
	return &queries.OrderView{
		ID:          b.ID,
		OwnerID:     b.OwnerID,
		Items:       items,
		TotalAmount: b.total(),
		Status:      string(b.Status),
		TrackingURL: b.TrackingURL,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

func (b *OrderBuilder) BuildCreateRequestDTO() reqdto.CreateOrderRequest {
	items := make([]reqdto.OrderItemRequest, len(b.Items))
	for i, it := range b.Items {
		items[i] = reqdto.OrderItemRequest{CatalogEntryID: it.CatalogEntryID, Quantity: it.Quantity, UnitPrice: it.UnitPrice}
	}
	return reqdto.CreateOrderRequest{Items: items}
}
