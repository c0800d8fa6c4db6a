//go:build unit

package commands_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"bibliolights/internal/domain/bookrequest"
	"bibliolights/internal/domain/catalog"
	"bibliolights/internal/pkg/clock"
	"bibliolights/internal/pkg/config"
	"bibliolights/internal/pkg/errs"
	"bibliolights/internal/usecase/commands"
	"bibliolights/tests/common/builder"
	"bibliolights/tests/common/memstore"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 3, 2, 9, 30, 0, 0, time.UTC)

type admissionFixture struct {
	store     *memstore.Store
	ledger    commands.InventoryLedger
	requests  commands.BookRequestCommands
	admission commands.AdmissionCommands
}

func newAdmissionFixture(cfg config.Config) *admissionFixture {
	store := memstore.New()
	clk := clock.NewMockClock(fixedNow)
	ledger := commands.NewInventoryLedger(store, clk)
	requests := commands.NewBookRequestCommands(store, clk, cfg)
	return &admissionFixture{
		store:     store,
		ledger:    ledger,
		requests:  requests,
		admission: commands.NewAdmissionCommands(store, ledger, requests),
	}
}

func TestRequestBook(t *testing.T) {
	ctx := context.Background()

	t.Run("admits and reserves one slot", func(t *testing.T) {
		f := newAdmissionFixture(config.Config{})
		entry := builder.NewCatalogEntryBuilder().WithQuota(3, 0)
		f.store.PutEntry(entry.BuildSnapshot())
		userID := uuid.New()

		req, err := f.admission.RequestBook(ctx, commands.RequestBookInput{
			UserID:         userID,
			CatalogEntryID: entry.ID,
			DeliveryOption: "5 días",
		})
		require.NoError(t, err)

		assert.Equal(t, bookrequest.StatusPending, req.Status())
		assert.Equal(t, userID, req.UserID())
		assert.True(t, entry.Price.Equal(req.PriceSnapshot()))
		assert.Equal(t, fixedNow.AddDate(0, 0, 5), req.EstimatedDeliveryDate())

		stored, _ := f.store.Entry(entry.ID)
		assert.Equal(t, 1, stored.Reserved)
		_, ok := f.store.Request(req.ID())
		assert.True(t, ok)
	})

	t.Run("unknown delivery option does not consume quota", func(t *testing.T) {
		f := newAdmissionFixture(config.Config{})
		entry := builder.NewCatalogEntryBuilder().WithQuota(3, 0)
		f.store.PutEntry(entry.BuildSnapshot())

		_, err := f.admission.RequestBook(ctx, commands.RequestBookInput{
			UserID:         uuid.New(),
			CatalogEntryID: entry.ID,
			DeliveryOption: "2 días",
		})
		require.ErrorIs(t, err, catalog.ErrUnknownDeliveryOption)

		stored, _ := f.store.Entry(entry.ID)
		assert.Equal(t, 0, stored.Reserved)
		assert.Equal(t, 0, f.store.RequestCount())
	})

	t.Run("exhausted quota is a capacity error", func(t *testing.T) {
		f := newAdmissionFixture(config.Config{})
		entry := builder.NewCatalogEntryBuilder().WithQuota(2, 2)
		f.store.PutEntry(entry.BuildSnapshot())

		_, err := f.admission.RequestBook(ctx, commands.RequestBookInput{
			UserID:         uuid.New(),
			CatalogEntryID: entry.ID,
			DeliveryOption: "5 días",
		})
		require.ErrorIs(t, err, commands.ErrQuotaExhausted)
		assert.Equal(t, errs.KindCapacityExceeded, errs.KindOf(err))

		stored, _ := f.store.Entry(entry.ID)
		assert.Equal(t, 2, stored.Reserved)
	})

	t.Run("zero quota admits nobody", func(t *testing.T) {
		f := newAdmissionFixture(config.Config{})
		entry := builder.NewCatalogEntryBuilder().WithQuota(0, 0)
		f.store.PutEntry(entry.BuildSnapshot())

		_, err := f.admission.RequestBook(ctx, commands.RequestBookInput{
			UserID:         uuid.New(),
			CatalogEntryID: entry.ID,
			DeliveryOption: "5 días",
		})
		assert.Equal(t, errs.KindCapacityExceeded, errs.KindOf(err))
	})

	t.Run("missing entry is not found", func(t *testing.T) {
		f := newAdmissionFixture(config.Config{})

		_, err := f.admission.RequestBook(ctx, commands.RequestBookInput{
			UserID:         uuid.New(),
			CatalogEntryID: uuid.New(),
			DeliveryOption: "5 días",
		})
		assert.Equal(t, errs.KindNotFound, errs.KindOf(err))
	})

	t.Run("failed insert leaves the slot consumed", func(t *testing.T) {
		f := newAdmissionFixture(config.Config{})
		entry := builder.NewCatalogEntryBuilder().WithQuota(3, 0)
		f.store.PutEntry(entry.BuildSnapshot())
		f.store.FailRequestInsert = errors.New("insert failed")

		_, err := f.admission.RequestBook(ctx, commands.RequestBookInput{
			UserID:         uuid.New(),
			CatalogEntryID: entry.ID,
			DeliveryOption: "5 días",
		})
		require.Error(t, err)

		stored, _ := f.store.Entry(entry.ID)
		assert.Equal(t, 1, stored.Reserved)
		assert.Equal(t, 0, f.store.RequestCount())
	})
}

func TestRequestBook_ConcurrentAdmissionsNeverOversell(t *testing.T) {
	const (
		quota    = 3
		attempts = 10
	)
	f := newAdmissionFixture(config.Config{})
	entry := builder.NewCatalogEntryBuilder().WithQuota(quota, 0)
	f.store.PutEntry(entry.BuildSnapshot())

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		capacity  int
	)
	for range attempts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.admission.RequestBook(context.Background(), commands.RequestBookInput{
				UserID:         uuid.New(),
				CatalogEntryID: entry.ID,
				DeliveryOption: "10 días",
			})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case errs.KindOf(err) == errs.KindCapacityExceeded:
				capacity++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, quota, succeeded)
	assert.Equal(t, attempts-quota, capacity)
	stored, _ := f.store.Entry(entry.ID)
	assert.Equal(t, quota, stored.Reserved)
	assert.Equal(t, quota, f.store.RequestCount())
}
