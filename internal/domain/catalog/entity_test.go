//go:build unit

package catalog_test

import (
	"strings"
	"testing"
	"time"

	"bibliolights/internal/domain/catalog"
	"bibliolights/internal/pkg/errs"
	"bibliolights/tests/common/builder"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.CatalogEntryBuilder)
	errIs  error
}

func TestNewEntry(t *testing.T) {
	t.Run("valid entry", func(t *testing.T) {
		b := builder.NewCatalogEntryBuilder()
		actual, err := b.BuildDomain()
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, "Cien años de soledad", actual.Title())
		assert.Equal(t, []string{"5 días", "10 días"}, actual.DeliveryLabels())
		assert.Equal(t, 3, actual.Quota())
		assert.Equal(t, 0, actual.Reserved())
		assert.Equal(t, 3, actual.Remaining())
		assert.True(t, decimal.RequireFromString("19.90").Equal(actual.Price().Amount()))
		assert.Equal(t, b.CreatedAt, actual.CreatedAt())
	})

	t.Run("title", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "trimmed", mutate: func(b *builder.CatalogEntryBuilder) { b.Title = "  Rayuela  " }},
			{name: "empty", mutate: func(b *builder.CatalogEntryBuilder) { b.Title = "" }, errIs: catalog.ErrEmptyTitle},
			{name: "blank", mutate: func(b *builder.CatalogEntryBuilder) { b.Title = "   " }, errIs: catalog.ErrEmptyTitle},
			{name: "max length", mutate: func(b *builder.CatalogEntryBuilder) { b.Title = strings.Repeat("a", catalog.MaxTitleLength) }},
			{name: "too long", mutate: func(b *builder.CatalogEntryBuilder) { b.Title = strings.Repeat("a", catalog.MaxTitleLength+1) }, errIs: catalog.ErrTitleTooLong},
			{name: "max length in accented letters", mutate: func(b *builder.CatalogEntryBuilder) { b.Title = strings.Repeat("á", catalog.MaxTitleLength) }},
		})
	})

	t.Run("author", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "empty", mutate: func(b *builder.CatalogEntryBuilder) { b.Author = "" }, errIs: catalog.ErrEmptyAuthor},
		})
	})

	t.Run("price and quota", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "free", mutate: func(b *builder.CatalogEntryBuilder) { b.Price = decimal.Zero }},
			{name: "negative price", mutate: func(b *builder.CatalogEntryBuilder) { b.Price = decimal.NewFromInt(-1) }, errIs: catalog.ErrNegativePrice},
			{name: "zero quota", mutate: func(b *builder.CatalogEntryBuilder) { b.Quota = 0 }},
			{name: "negative quota", mutate: func(b *builder.CatalogEntryBuilder) { b.Quota = -1 }, errIs: catalog.ErrNegativeQuota},
		})
	})

	t.Run("delivery options", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "english label", mutate: func(b *builder.CatalogEntryBuilder) { b.DeliveryOptions = []string{"7 days"} }},
			{name: "singular label", mutate: func(b *builder.CatalogEntryBuilder) { b.DeliveryOptions = []string{"1 día"} }},
			{name: "none", mutate: func(b *builder.CatalogEntryBuilder) { b.DeliveryOptions = nil }, errIs: catalog.ErrNoDeliveryOptions},
			{name: "no number", mutate: func(b *builder.CatalogEntryBuilder) { b.DeliveryOptions = []string{"express"} }, errIs: catalog.ErrInvalidDeliveryOption},
			{name: "zero days", mutate: func(b *builder.CatalogEntryBuilder) { b.DeliveryOptions = []string{"0 días"} }, errIs: catalog.ErrInvalidDeliveryOption},
			{name: "duplicate", mutate: func(b *builder.CatalogEntryBuilder) { b.DeliveryOptions = []string{"5 días", "5 días"} }, errIs: catalog.ErrDuplicateDeliveryOption},
		})
	})

	t.Run("validation errors carry the validation kind", func(t *testing.T) {
		_, err := builder.NewCatalogEntryBuilder().With(func(b *builder.CatalogEntryBuilder) { b.Title = "" }).BuildDomain()
		assert.Equal(t, errs.KindValidation, errs.KindOf(err))
	})
}

func TestEntry_Revise(t *testing.T) {
	now := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)

	t.Run("quota may not drop below reserved", func(t *testing.T) {
		b := builder.NewCatalogEntryBuilder().WithQuota(5, 3)
		e := b.BuildReconstructed()
		in := b.Input()
		in.Quota = 2

		err := e.Revise(in, now)
		require.ErrorIs(t, err, catalog.ErrQuotaBelowReserved)
		assert.Equal(t, 5, e.Quota())
	})

	t.Run("quota equal to reserved is allowed", func(t *testing.T) {
		b := builder.NewCatalogEntryBuilder().WithQuota(5, 3)
		e := b.BuildReconstructed()
		in := b.Input()
		in.Quota = 3

		require.NoError(t, e.Revise(in, now))
		assert.Equal(t, 3, e.Quota())
		assert.Equal(t, 0, e.Remaining())
		assert.Equal(t, now, e.UpdatedAt())
	})

	t.Run("blank optional text is cleared", func(t *testing.T) {
		b := builder.NewCatalogEntryBuilder()
		e := b.BuildReconstructed()
		blank := "  "
		in := b.Input()
		in.Description = &blank

		require.NoError(t, e.Revise(in, now))
		assert.Nil(t, e.Description())
	})
}

func TestFindDeliveryOption(t *testing.T) {
	labels := []string{"5 días", "10 días"}

	opt, err := catalog.FindDeliveryOption(labels, "10 días")
	require.NoError(t, err)
	assert.Equal(t, "10 días", opt.Label())
	assert.Equal(t, 10, opt.LeadDays())

	_, err = catalog.FindDeliveryOption(labels, "7 días")
	require.ErrorIs(t, err, catalog.ErrUnknownDeliveryOption)
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {

			actual, err := builder.NewCatalogEntryBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NoError(t, err)
				require.NotNil(t, actual)
			} else {
				require.Nil(t, actual)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
