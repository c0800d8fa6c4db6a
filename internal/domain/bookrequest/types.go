package bookrequest

import "bibliolights/internal/pkg/errs"

type Status string

const (
	StatusPending    Status = "pending"
	StatusApproved   Status = "approved"
	StatusRejected   Status = "rejected"
	StatusProcessing Status = "processing"
	StatusDelivered  Status = "delivered"
)

// transitions is the complete edge set; a status absent as a key is terminal.
var transitions = map[Status][]Status{
	StatusPending:    {StatusApproved, StatusRejected},
	StatusApproved:   {StatusProcessing},
	StatusProcessing: {StatusDelivered},
}

var (
	ErrInvalidStatus     = errs.Validation("unknown book request status")
	ErrIllegalTransition = errs.Mark(errs.New("book request cannot move to that status"), errs.ErrInvalidStateTransition)
	ErrMissingUser       = errs.Validation("book request requires a user")
	ErrNotesTooLong      = errs.Validation("notes exceed maximum length")
)

const MaxNotesLength = 1000

func (s Status) String() string { return string(s) }

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusProcessing, StatusDelivered:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	_, ok := transitions[s]
	return s.IsValid() && !ok
}

func (s Status) CanTransitionTo(target Status) bool {
	for _, next := range transitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}

func AllStatuses() []Status {
	return []Status{StatusPending, StatusApproved, StatusRejected, StatusProcessing, StatusDelivered}
}
