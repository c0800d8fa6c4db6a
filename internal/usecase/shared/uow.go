package shared

import (
	"context"
	"time"

	"bibliolights/internal/domain/bookrequest"
	"bibliolights/internal/domain/catalog"
	"bibliolights/internal/domain/order"
	"bibliolights/internal/domain/user"
	"bibliolights/internal/infra/query"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	CatalogEntries() CatalogRepository
	Inventory() InventoryRepository
	BookRequests() BookRequestRepository
	Orders() OrderRepository
	Favorites() FavoriteRepository
	UserDetails() UserDetailsRepository
	Reads() CommandReads
	DB() query.DBTX
}

type CommandReads interface {
	CatalogEntryByID(ctx context.Context, id uuid.UUID) (*CatalogEntrySnapshot, error)
	BookRequestByID(ctx context.Context, id uuid.UUID) (*BookRequestSnapshot, error)
	OrderByID(ctx context.Context, id uuid.UUID) (*OrderSnapshot, error)
}

type CatalogRepository interface {
	Create(ctx context.Context, tx query.DBTX, entry *catalog.Entry) error
	Update(ctx context.Context, tx query.DBTX, entry *catalog.Entry) error
	Delete(ctx context.Context, tx query.DBTX, id uuid.UUID) error
}

// InventoryRepository is the storage side of the quota ledger. Reserve and Release are single
// conditional updates; a failed condition surfaces as infra.KindConditionNotMet.
type InventoryRepository interface {
	Reserve(ctx context.Context, tx query.DBTX, entryID uuid.UUID, now time.Time) (Counter, error)
	Release(ctx context.Context, tx query.DBTX, entryID uuid.UUID, now time.Time) (Counter, error)
	SetQuota(ctx context.Context, tx query.DBTX, entryID uuid.UUID, quota int, now time.Time) (Counter, error)
	Counter(ctx context.Context, tx query.DBTX, entryID uuid.UUID) (Counter, error)
}

type BookRequestRepository interface {
	Create(ctx context.Context, tx query.DBTX, req *bookrequest.BookRequest) error
	// UpdateStatusIf only writes when the stored status still equals from.
	UpdateStatusIf(ctx context.Context, tx query.DBTX, id uuid.UUID, from, to bookrequest.Status, now time.Time) (bool, error)
}

type OrderRepository interface {
	Create(ctx context.Context, tx query.DBTX, o *order.Order) error
	UpdateStatus(ctx context.Context, tx query.DBTX, o *order.Order, trackingChanged bool) error
}

type FavoriteRepository interface {
	Add(ctx context.Context, tx query.DBTX, userID, entryID uuid.UUID, now time.Time) (bool, error)
	Remove(ctx context.Context, tx query.DBTX, userID, entryID uuid.UUID) (bool, error)
}

type UserDetailsRepository interface {
	Upsert(ctx context.Context, tx query.DBTX, d *user.Details) error
}
