//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"bibliolights/internal/infra"
	"bibliolights/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	capacity := errs.Mark(errs.New("no quota left"), errs.ErrCapacityExceeded)

	cases := []struct {
		name string
		err  error
		want errs.Kind
		msg  string
	}{
		{name: "nil", err: nil, want: "", msg: ""},
		{name: "validation", err: errs.Validation("title cannot be empty"), want: errs.KindValidation, msg: "title cannot be empty"},
		{name: "wrapped validation", err: errs.Wrap(errs.Validation("bad quota"), "catalog entry x"), want: errs.KindValidation, msg: "bad quota"},
		{name: "capacity", err: errs.Wrapf(capacity, "entry %d", 7), want: errs.KindCapacityExceeded, msg: "no quota left"},
		{name: "transition", err: errs.Mark(errs.New("cannot move"), errs.ErrInvalidStateTransition), want: errs.KindInvalidStateTransition, msg: "cannot move"},
		{name: "repository not found", err: infra.WrapRepoErr("catalog entry not found", nil, infra.KindNotFound), want: errs.KindNotFound, msg: "catalog entry not found"},
		{name: "unclassified", err: errors.New("connection reset by peer"), want: errs.KindPersistence, msg: "Internal server error"},
		{name: "repository failure", err: infra.WrapRepoErr("failed to insert", errors.New("boom"), infra.KindDBFailure), want: errs.KindPersistence, msg: "Internal server error"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, errs.KindOf(c.err))
			assert.Equal(t, c.msg, errs.MessageOf(c.err))
		})
	}
}

func TestIs_FollowsMarks(t *testing.T) {
	err := errs.Wrap(errs.Validation("x"), "context")
	assert.True(t, errs.Is(err, errs.ErrValidation))
	assert.False(t, errs.Is(err, errs.ErrNotFound))
}
