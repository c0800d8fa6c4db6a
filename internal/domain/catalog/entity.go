package catalog

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Entry is a requestable book. reserved is owned by the inventory ledger and only
// ever read here; 0 <= reserved <= quota holds for every persisted entry.
type Entry struct {
	id              uuid.UUID
	title           string
	author          string
	description     *string
	coverImage      *string
	price           Price
	deliveryOptions []DeliveryOption
	quota           int
	reserved        int
	createdAt       time.Time
	updatedAt       time.Time
}

type EntryInput struct {
	Title           string
	Author          string
	Description     *string
	CoverImage      *string
	Price           decimal.Decimal
	DeliveryOptions []string
	Quota           int
}

func NewEntry(in EntryInput, now time.Time) (*Entry, error) {
	e := &Entry{id: uuid.New(), createdAt: now}
	if err := e.apply(in, now); err != nil {
		return nil, err
	}
	return e, nil
}

// ReconstructEntry rebuilds an entry from storage without re-validating it.
func ReconstructEntry(id uuid.UUID, title, author string, description, coverImage *string, price decimal.Decimal,
	deliveryLabels []string, quota, reserved int, createdAt, updatedAt time.Time) *Entry {
	opts := make([]DeliveryOption, 0, len(deliveryLabels))
	for _, l := range deliveryLabels {
		if o, err := ParseDeliveryOption(l); err == nil {
			opts = append(opts, o)
		}
	}
	return &Entry{
		id:              id,
		title:           title,
		author:          author,
		description:     description,
		coverImage:      coverImage,
		price:           Price{amount: price},
		deliveryOptions: opts,
		quota:           quota,
		reserved:        reserved,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

// Revise replaces the editable attributes. The quota is validated against the current reservation count.
func (e *Entry) Revise(in EntryInput, now time.Time) error {
	if in.Quota < e.reserved {
		return ErrQuotaBelowReserved
	}
	return e.apply(in, now)
}

func (e *Entry) apply(in EntryInput, now time.Time) error {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return ErrEmptyTitle
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return ErrTitleTooLong
	}
	if in.Description != nil && utf8.RuneCountInString(*in.Description) > MaxDescriptionLength {
		return ErrDescriptionTooLong
	}
	author := strings.TrimSpace(in.Author)
	if author == "" {
		return ErrEmptyAuthor
	}
	price, err := NewPrice(in.Price)
	if err != nil {
		return err
	}
	if in.Quota < 0 {
		return ErrNegativeQuota
	}
	opts, err := parseDeliveryOptions(in.DeliveryOptions)
	if err != nil {
		return err
	}

	e.title = title
	e.author = author
	e.description = trimOptional(in.Description)
	e.coverImage = trimOptional(in.CoverImage)
	e.price = price
	e.deliveryOptions = opts
	e.quota = in.Quota
	e.updatedAt = now
	return nil
}

func parseDeliveryOptions(labels []string) ([]DeliveryOption, error) {
	if len(labels) == 0 {
		return nil, ErrNoDeliveryOptions
	}
	seen := make(map[string]struct{}, len(labels))
	opts := make([]DeliveryOption, 0, len(labels))
	for _, l := range labels {
		o, err := ParseDeliveryOption(l)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[o.label]; dup {
			return nil, ErrDuplicateDeliveryOption
		}
		seen[o.label] = struct{}{}
		opts = append(opts, o)
	}
	return opts, nil
}

func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}

// DeliveryOption looks up one of the configured labels verbatim.
func (e *Entry) DeliveryOption(label string) (DeliveryOption, error) {
	return FindDeliveryOption(e.DeliveryLabels(), label)
}

// FindDeliveryOption checks label against a list of configured labels. It has no side effects.
func FindDeliveryOption(configured []string, label string) (DeliveryOption, error) {
	want := strings.TrimSpace(label)
	for _, l := range configured {
		if l != want {
			continue
		}
		return ParseDeliveryOption(l)
	}
	return DeliveryOption{}, ErrUnknownDeliveryOption
}

func (e *Entry) DeliveryLabels() []string {
	labels := make([]string, len(e.deliveryOptions))
	for i, o := range e.deliveryOptions {
		labels[i] = o.label
	}
	return labels
}

func (e *Entry) Remaining() int {
	if e.reserved >= e.quota {
		return 0
	}
	return e.quota - e.reserved
}

func (e *Entry) ID() uuid.UUID                     { return e.id }
func (e *Entry) Title() string                     { return e.title }
func (e *Entry) Author() string                    { return e.author }
func (e *Entry) Description() *string              { return e.description }
func (e *Entry) CoverImage() *string               { return e.coverImage }
func (e *Entry) Price() Price                      { return e.price }
func (e *Entry) DeliveryOptions() []DeliveryOption { return e.deliveryOptions }
func (e *Entry) Quota() int                        { return e.quota }
func (e *Entry) Reserved() int                     { return e.reserved }
func (e *Entry) CreatedAt() time.Time              { return e.createdAt }
func (e *Entry) UpdatedAt() time.Time              { return e.updatedAt }
