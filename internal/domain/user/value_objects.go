package user

import (
	"bibliolights/internal/pkg/errs"
)

var (
	ErrInvalidRole   = errs.Validation("invalid role")
	ErrMissingUserID = errs.Validation("user id is required")
)
