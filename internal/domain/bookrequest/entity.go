package bookrequest

import (
	"strings"
	"time"
	"unicode/utf8"

	"bibliolights/internal/domain/catalog"
	"bibliolights/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BookRequest struct {
	id                    uuid.UUID
	userID                uuid.UUID
	catalogEntryID        uuid.UUID
	deliveryOption        string
	priceSnapshot         decimal.Decimal
	status                Status
	estimatedDeliveryDate time.Time
	notes                 *string
	requestedAt           time.Time
	updatedAt             time.Time
}

// Validate checks the chosen delivery label against the entry's configured labels.
// It is pure so admission can call it before touching the quota.
func Validate(deliveryLabels []string, deliveryOption string) (catalog.DeliveryOption, error) {
	return catalog.FindDeliveryOption(deliveryLabels, deliveryOption)
}

// NewBookRequest builds a pending request. The estimated delivery date is now plus the lead days of the chosen label.
func NewBookRequest(userID, catalogEntryID uuid.UUID, deliveryLabels []string, deliveryOption string,
	price decimal.Decimal, notes *string, now time.Time) (*BookRequest, error) {
	if userID == uuid.Nil {
		return nil, ErrMissingUser
	}
	opt, err := Validate(deliveryLabels, deliveryOption)
	if err != nil {
		return nil, err
	}
	n, err := normalizeNotes(notes)
	if err != nil {
		return nil, err
	}
	return &BookRequest{
		id:                    uuid.New(),
		userID:                userID,
		catalogEntryID:        catalogEntryID,
		deliveryOption:        opt.Label(),
		priceSnapshot:         price,
		status:                StatusPending,
		estimatedDeliveryDate: now.AddDate(0, 0, opt.LeadDays()),
		notes:                 n,
		requestedAt:           now,
		updatedAt:             now,
	}, nil
}

func ReconstructBookRequest(id, userID, catalogEntryID uuid.UUID, deliveryOption string, price decimal.Decimal,
	status Status, estimatedDeliveryDate time.Time, notes *string, requestedAt, updatedAt time.Time) *BookRequest {
	return &BookRequest{
		id:                    id,
		userID:                userID,
		catalogEntryID:        catalogEntryID,
		deliveryOption:        deliveryOption,
		priceSnapshot:         price,
		status:                status,
		estimatedDeliveryDate: estimatedDeliveryDate,
		notes:                 notes,
		requestedAt:           requestedAt,
		updatedAt:             updatedAt,
	}
}

// CheckNotes validates optional notes without building a request.
func CheckNotes(notes *string) error {
	_, err := normalizeNotes(notes)
	return err
}

func normalizeNotes(notes *string) (*string, error) {
	if notes == nil {
		return nil, nil
	}
	t := strings.TrimSpace(*notes)
	if t == "" {
		return nil, nil
	}
	if utf8.RuneCountInString(t) > MaxNotesLength {
		return nil, ErrNotesTooLong
	}
	return &t, nil
}

// TransitionTo moves the request along the status graph and returns the status it left.
func (r *BookRequest) TransitionTo(target Status, now time.Time) (Status, error) {
	if !target.IsValid() {
		return "", ErrInvalidStatus
	}
	if !r.status.CanTransitionTo(target) {
		return "", errs.Wrapf(ErrIllegalTransition, "%s -> %s", r.status, target)
	}
	prev := r.status
	r.status = target
	r.updatedAt = now
	return prev, nil
}

func (r *BookRequest) ID() uuid.UUID                    { return r.id }
func (r *BookRequest) UserID() uuid.UUID                { return r.userID }
func (r *BookRequest) CatalogEntryID() uuid.UUID        { return r.catalogEntryID }
func (r *BookRequest) DeliveryOption() string           { return r.deliveryOption }
func (r *BookRequest) PriceSnapshot() decimal.Decimal   { return r.priceSnapshot }
func (r *BookRequest) Status() Status                   { return r.status }
func (r *BookRequest) EstimatedDeliveryDate() time.Time { return r.estimatedDeliveryDate }
func (r *BookRequest) Notes() *string                   { return r.notes }
func (r *BookRequest) RequestedAt() time.Time           { return r.requestedAt }
func (r *BookRequest) UpdatedAt() time.Time             { return r.updatedAt }
