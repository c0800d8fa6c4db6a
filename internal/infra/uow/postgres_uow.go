package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"bibliolights/internal/infra/query"
	"bibliolights/internal/infra/readstore"
	"bibliolights/internal/infra/repository"
	"bibliolights/internal/pkg/errs"
	"bibliolights/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
	q    *query.Queries
}

func NewPostgresUoW(pool *pgxpool.Pool, q *query.Queries) shared.UnitOfWork {
	return &PostgresUoW{
		pool: pool,
		q:    q,
	}
}

// ReadCommitted. The quota counter and request status are guarded by conditional updates,
// not by the isolation level.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{uow: u, dbtx: u.pool}
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{
			dbtx: pgxTx,
			uow:  u,
		}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// Fallback to a simple calculation if crypto/rand fails
		return 0
	}
	// Safe conversion: mask high bit to ensure positive int64
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- Intentionally safe conversion after masking
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx query.DBTX
	uow  *PostgresUoW

	// Lazy-initialized repositories
	catalogRepo     shared.CatalogRepository
	inventoryRepo   shared.InventoryRepository
	bookRequestRepo shared.BookRequestRepository
	orderRepo       shared.OrderRepository
	favoriteRepo    shared.FavoriteRepository
	userDetailsRepo shared.UserDetailsRepository
	commandReads    shared.CommandReads
}

func (t *pgTx) DB() query.DBTX {
	return t.dbtx
}

func (t *pgTx) CatalogEntries() shared.CatalogRepository {
	if t.catalogRepo == nil {
		t.catalogRepo = repository.NewCatalogRepository(t.uow.q, t.dbtx)
	}
	return t.catalogRepo
}

func (t *pgTx) Inventory() shared.InventoryRepository {
	if t.inventoryRepo == nil {
		t.inventoryRepo = repository.NewInventoryRepository(t.uow.q, t.dbtx)
	}
	return t.inventoryRepo
}

func (t *pgTx) BookRequests() shared.BookRequestRepository {
	if t.bookRequestRepo == nil {
		t.bookRequestRepo = repository.NewBookRequestRepository(t.uow.q, t.dbtx)
	}
	return t.bookRequestRepo
}

func (t *pgTx) Orders() shared.OrderRepository {
	if t.orderRepo == nil {
		t.orderRepo = repository.NewOrderRepository(t.uow.q, t.dbtx)
	}
	return t.orderRepo
}

func (t *pgTx) Favorites() shared.FavoriteRepository {
	if t.favoriteRepo == nil {
		t.favoriteRepo = repository.NewFavoriteRepository(t.uow.q, t.dbtx)
	}
	return t.favoriteRepo
}

func (t *pgTx) UserDetails() shared.UserDetailsRepository {
	if t.userDetailsRepo == nil {
		t.userDetailsRepo = repository.NewUserDetailsRepository(t.uow.q, t.dbtx)
	}
	return t.userDetailsRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{
			uow:  t.uow,
			dbtx: t.dbtx,
		}
	}
	return t.commandReads
}

type commandReads struct {
	uow  *PostgresUoW
	dbtx query.DBTX

	// Lazy-initialized readstores
	catalogStore     *readstore.CatalogReadStore
	bookRequestStore *readstore.BookRequestReadStore
	orderStore       *readstore.OrderReadStore
}

func (r *commandReads) CatalogEntryByID(ctx context.Context, id uuid.UUID) (*shared.CatalogEntrySnapshot, error) {
	if r.catalogStore == nil {
		r.catalogStore = readstore.NewCatalogReadStore(r.uow.q, r.dbtx)
	}

	entry, err := r.catalogStore.FindByIDWith(ctx, r.dbtx, id)
	if err != nil {
		return nil, err
	}

	snapshot := &shared.CatalogEntrySnapshot{
		ID:              entry.ID,
		Title:           entry.Title,
		Author:          entry.Author,
		Description:     entry.Description,
		CoverImage:      entry.CoverImage,
		Price:           entry.Price,
		DeliveryOptions: entry.DeliveryOptions,
		Quota:           entry.Quota,
		Reserved:        entry.Reserved,
		CreatedAt:       entry.CreatedAt,
		UpdatedAt:       entry.UpdatedAt,
	}
	return snapshot, nil
}

func (r *commandReads) BookRequestByID(ctx context.Context, id uuid.UUID) (*shared.BookRequestSnapshot, error) {
	if r.bookRequestStore == nil {
		r.bookRequestStore = readstore.NewBookRequestReadStore(r.uow.q, r.dbtx)
	}

	req, err := r.bookRequestStore.FindByIDWith(ctx, r.dbtx, id)
	if err != nil {
		return nil, err
	}

	snapshot := &shared.BookRequestSnapshot{
		ID:                    req.ID,
		UserID:                req.UserID,
		CatalogEntryID:        req.CatalogEntryID,
		DeliveryOption:        req.DeliveryOption,
		PriceSnapshot:         req.PriceSnapshot,
		Status:                req.Status,
		EstimatedDeliveryDate: req.EstimatedDeliveryDate,
		Notes:                 req.Notes,
		RequestedAt:           req.RequestedAt,
		UpdatedAt:             req.UpdatedAt,
	}
	return snapshot, nil
}

func (r *commandReads) OrderByID(ctx context.Context, id uuid.UUID) (*shared.OrderSnapshot, error) {
	if r.orderStore == nil {
		r.orderStore = readstore.NewOrderReadStore(r.uow.q, r.dbtx)
	}

	o, err := r.orderStore.FindByIDWith(ctx, r.dbtx, id)
	if err != nil {
		return nil, err
	}

	items := make([]shared.OrderLineItemSnapshot, len(o.Items))
	for i, it := range o.Items {
		items[i] = shared.OrderLineItemSnapshot{
			CatalogEntryID: it.CatalogEntryID,
			Quantity:       it.Quantity,
			UnitPrice:      it.UnitPrice,
			LineTotal:      it.LineTotal,
		}
	}

	snapshot := &shared.OrderSnapshot{
		ID:          o.ID,
		OwnerID:     o.OwnerID,
		Items:       items,
		TotalAmount: o.TotalAmount,
		Status:      o.Status,
		TrackingURL: o.TrackingURL,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
	return snapshot, nil
}
