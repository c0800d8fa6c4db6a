package catalog

import "bibliolights/internal/pkg/errs"

var (
	ErrEmptyTitle              = errs.Validation("title cannot be empty")
	ErrTitleTooLong            = errs.Validation("title exceeds maximum length")
	ErrDescriptionTooLong      = errs.Validation("description exceeds maximum length")
	ErrEmptyAuthor             = errs.Validation("author cannot be empty")
	ErrNegativePrice           = errs.Validation("price cannot be negative")
	ErrNegativeQuota           = errs.Validation("quota cannot be negative")
	ErrNoDeliveryOptions       = errs.Validation("at least one delivery option is required")
	ErrInvalidDeliveryOption   = errs.Validation("delivery option must look like '<days> días' or '<days> days'")
	ErrDuplicateDeliveryOption = errs.Validation("delivery option listed twice")
	ErrUnknownDeliveryOption   = errs.Validation("delivery option not offered for this book")
	ErrQuotaBelowReserved      = errs.Validation("quota cannot drop below the reserved count")
	ErrEntryInUse              = errs.Validation("catalog entry is still referenced by requests or orders")
)

const (
	MaxTitleLength       = 300
	MaxDescriptionLength = 5000
)
