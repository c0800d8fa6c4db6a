//go:build unit

package queries_test

import (
	"testing"
	"time"

	"bibliolights/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursorRoundTrip(t *testing.T) {
	at := time.Date(2025, 3, 2, 9, 30, 15, 123456000, time.UTC)
	id := uuid.New()

	pos, err := queries.DecodeAfterCursor(queries.EncodeAfterCursor(at, id))
	require.NoError(t, err)
	assert.True(t, at.Equal(pos.CreatedAt))
	assert.Equal(t, id, pos.ID)
}

func TestDecodeAfterCursor_Invalid(t *testing.T) {
	for _, in := range []string{"", "!!!", "djI6MTIz"} {
		_, err := queries.DecodeAfterCursor(in)
		assert.Error(t, err, in)
	}
}

func TestValidateLimit(t *testing.T) {
	assert.Equal(t, queries.DefaultListLimit, queries.ValidateLimit(0))
	assert.Equal(t, 5, queries.ValidateLimit(5))
	assert.Equal(t, queries.MaxListLimit, queries.ValidateLimit(10_000))
}
