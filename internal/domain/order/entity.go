package order

import (
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type LineItem struct {
	catalogEntryID uuid.UUID
	quantity       int
	unitPrice      decimal.Decimal
	lineTotal      decimal.Decimal
}

type LineItemInput struct {
	CatalogEntryID uuid.UUID
	Quantity       int
	UnitPrice      decimal.Decimal
}

func NewLineItem(in LineItemInput) (LineItem, error) {
	if in.CatalogEntryID == uuid.Nil {
		return LineItem{}, ErrMissingEntry
	}
	if in.Quantity <= 0 {
		return LineItem{}, ErrInvalidQuantity
	}
	if in.UnitPrice.IsNegative() {
		return LineItem{}, ErrNegativeUnitPrice
	}
	return LineItem{
		catalogEntryID: in.CatalogEntryID,
		quantity:       in.Quantity,
		unitPrice:      in.UnitPrice,
		lineTotal:      in.UnitPrice.Mul(decimal.NewFromInt(int64(in.Quantity))),
	}, nil
}

func ReconstructLineItem(catalogEntryID uuid.UUID, quantity int, unitPrice, lineTotal decimal.Decimal) LineItem {
	return LineItem{catalogEntryID: catalogEntryID, quantity: quantity, unitPrice: unitPrice, lineTotal: lineTotal}
}

func (li LineItem) CatalogEntryID() uuid.UUID  { return li.catalogEntryID }
func (li LineItem) Quantity() int              { return li.quantity }
func (li LineItem) UnitPrice() decimal.Decimal { return li.unitPrice }
func (li LineItem) LineTotal() decimal.Decimal { return li.lineTotal }

// Order totals are fixed at creation: lineTotal = unitPrice x quantity, totalAmount = sum of line totals.
type Order struct {
	id          uuid.UUID
	ownerID     uuid.UUID
	items       []LineItem
	totalAmount decimal.Decimal
	status      Status
	trackingURL *string
	createdAt   time.Time
	updatedAt   time.Time
}

func NewOrder(ownerID uuid.UUID, inputs []LineItemInput, now time.Time) (*Order, error) {
	if ownerID == uuid.Nil {
		return nil, ErrMissingOwner
	}
	if len(inputs) == 0 {
		return nil, ErrEmptyOrder
	}
	items := make([]LineItem, 0, len(inputs))
	for _, in := range inputs {
		li, err := NewLineItem(in)
		if err != nil {
			return nil, err
		}
		items = append(items, li)
	}
	return &Order{
		id:          uuid.New(),
		ownerID:     ownerID,
		items:       items,
		totalAmount: Total(items),
		status:      StatusCreated,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructOrder(id, ownerID uuid.UUID, items []LineItem, totalAmount decimal.Decimal, status Status,
	trackingURL *string, createdAt, updatedAt time.Time) *Order {
	return &Order{
		id:          id,
		ownerID:     ownerID,
		items:       items,
		totalAmount: totalAmount,
		status:      status,
		trackingURL: trackingURL,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func Total(items []LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, li := range items {
		total = total.Add(li.lineTotal)
	}
	return total
}

// ChangeStatus accepts any of the five statuses in any order.
// The tracking url is replaced only when one is supplied.
func (o *Order) ChangeStatus(target Status, trackingURL *string, now time.Time) error {
	if !target.IsValid() {
		return ErrInvalidStatus
	}
	if trackingURL != nil {
		u, err := NormalizeTrackingURL(*trackingURL)
		if err != nil {
			return err
		}
		o.trackingURL = u
	}
	o.status = target
	o.updatedAt = now
	return nil
}

// NormalizeTrackingURL returns nil for a blank url so that absence is always stored as NULL.
func NormalizeTrackingURL(raw string) (*string, error) {
	t := strings.TrimSpace(raw)
	if t == "" {
		return nil, nil
	}
	u, err := url.Parse(t)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, ErrInvalidTracking
	}
	return &t, nil
}

func (o *Order) ID() uuid.UUID                { return o.id }
func (o *Order) OwnerID() uuid.UUID           { return o.ownerID }
func (o *Order) Items() []LineItem            { return o.items }
func (o *Order) TotalAmount() decimal.Decimal { return o.totalAmount }
func (o *Order) Status() Status               { return o.status }
func (o *Order) TrackingURL() *string         { return o.trackingURL }
func (o *Order) CreatedAt() time.Time         { return o.createdAt }
func (o *Order) UpdatedAt() time.Time         { return o.updatedAt }
