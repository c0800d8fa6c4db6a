//go:build unit

package patch_test

import (
	"testing"

	"bibliolights/internal/pkg/patch"

	"github.com/stretchr/testify/assert"
)

func TestCoalesce(t *testing.T) {
	title := "Dune Messiah"

	assert.Equal(t, "Dune Messiah", patch.Coalesce(&title, "Dune"))
	assert.Equal(t, "Dune", patch.Coalesce[string](nil, "Dune"))
	assert.Equal(t, 0, patch.Coalesce(new(int), 7), "zero value that was sent wins")
}

func TestCoalescePtr(t *testing.T) {
	stored := "hardcover"
	sent := "paperback"
	empty := ""

	assert.Same(t, &sent, patch.CoalescePtr(&sent, &stored))
	assert.Same(t, &stored, patch.CoalescePtr(nil, &stored))
	assert.Same(t, &empty, patch.CoalescePtr(&empty, &stored), "empty value is passed on for clearing")
	assert.Nil(t, patch.CoalescePtr[string](nil, nil))
}
