//go:build unit || e2e

// Package memstore is an in-memory shared.UnitOfWork for usecase tests. Every repository call
// is atomic under one mutex; Within does not roll back writes made before a failure.
package memstore

import (
	"context"
	"sync"
	"time"

	"bibliolights/internal/domain/bookrequest"
	"bibliolights/internal/domain/catalog"
	"bibliolights/internal/domain/order"
	"bibliolights/internal/domain/user"
	"bibliolights/internal/infra"
	"bibliolights/internal/infra/query"
	"bibliolights/internal/usecase/shared"

	"github.com/google/uuid"
)

type favoriteKey struct {
	userID  uuid.UUID
	entryID uuid.UUID
}

type Store struct {
	mu        sync.Mutex
	entries   map[uuid.UUID]shared.CatalogEntrySnapshot
	requests  map[uuid.UUID]shared.BookRequestSnapshot
	orders    map[uuid.UUID]*order.Order
	favorites map[favoriteKey]time.Time
	details   map[uuid.UUID]*user.Details

	// FailRequestInsert makes every book request insert return this error.
	FailRequestInsert error
	// BeforeEntryUpdate runs just before a catalog entry update, outside the lock.
	BeforeEntryUpdate func(id uuid.UUID)
}

var _ shared.UnitOfWork = (*Store)(nil)

func New() *Store {
	return &Store{
		entries:   make(map[uuid.UUID]shared.CatalogEntrySnapshot),
		requests:  make(map[uuid.UUID]shared.BookRequestSnapshot),
		orders:    make(map[uuid.UUID]*order.Order),
		favorites: make(map[favoriteKey]time.Time),
		details:   make(map[uuid.UUID]*user.Details),
	}
}

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, &memTx{s: s})
}

func (s *Store) CommandReads() shared.CommandReads {
	return &reads{s: s}
}

// PutEntry stores a snapshot as-is, bypassing domain validation.
func (s *Store) PutEntry(e *shared.CatalogEntrySnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[e.ID] = *e
}

func (s *Store) PutRequest(r *shared.BookRequestSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests[r.ID] = *r
}

func (s *Store) Entry(id uuid.UUID) (shared.CatalogEntrySnapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[id]
	return e, ok
}

func (s *Store) RemoveEntry(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, id)
}

func (s *Store) Request(id uuid.UUID) (shared.BookRequestSnapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.requests[id]
	return r, ok
}

func (s *Store) RequestCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.requests)
}

func (s *Store) Order(id uuid.UUID) (*order.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[id]
	return o, ok
}

func (s *Store) Details(userID uuid.UUID) (*user.Details, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.details[userID]
	return d, ok
}

func (s *Store) IsFavorite(userID, entryID uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.favorites[favoriteKey{userID, entryID}]
	return ok
}

func notFound(what string) error {
	return infra.WrapRepoErr(what+" not found", nil, infra.KindNotFound)
}

type memTx struct {
	s *Store
}

func (t *memTx) CatalogEntries() shared.CatalogRepository   { return (*catalogRepo)(t.s) }
func (t *memTx) Inventory() shared.InventoryRepository      { return (*inventoryRepo)(t.s) }
func (t *memTx) BookRequests() shared.BookRequestRepository { return (*requestRepo)(t.s) }
func (t *memTx) Orders() shared.OrderRepository             { return (*orderRepo)(t.s) }
func (t *memTx) Favorites() shared.FavoriteRepository       { return (*favoriteRepo)(t.s) }
func (t *memTx) UserDetails() shared.UserDetailsRepository  { return (*detailsRepo)(t.s) }
func (t *memTx) Reads() shared.CommandReads                 { return &reads{s: t.s} }
func (t *memTx) DB() query.DBTX                             { return nil }

type reads struct {
	s *Store
}

func (r *reads) CatalogEntryByID(_ context.Context, id uuid.UUID) (*shared.CatalogEntrySnapshot, error) {
	e, ok := r.s.Entry(id)
	if !ok {
		return nil, notFound("catalog entry")
	}
	return &e, nil
}

func (r *reads) BookRequestByID(_ context.Context, id uuid.UUID) (*shared.BookRequestSnapshot, error) {
	req, ok := r.s.Request(id)
	if !ok {
		return nil, notFound("book request")
	}
	return &req, nil
}

func (r *reads) OrderByID(_ context.Context, id uuid.UUID) (*shared.OrderSnapshot, error) {
	o, ok := r.s.Order(id)
	if !ok {
		return nil, notFound("order")
	}
	items := make([]shared.OrderLineItemSnapshot, len(o.Items()))
	for i, it := range o.Items() {
		items[i] = shared.OrderLineItemSnapshot{
			CatalogEntryID: it.CatalogEntryID(),
			Quantity:       it.Quantity(),
			UnitPrice:      it.UnitPrice(),
			LineTotal:      it.LineTotal(),
		}
	}
	return &shared.OrderSnapshot{
		ID:          o.ID(),
		OwnerID:     o.OwnerID(),
		Items:       items,
		TotalAmount: o.TotalAmount(),
		Status:      string(o.Status()),
		TrackingURL: o.TrackingURL(),
		CreatedAt:   o.CreatedAt(),
		UpdatedAt:   o.UpdatedAt(),
	}, nil
}

type catalogRepo Store

func (r *catalogRepo) Create(_ context.Context, _ query.DBTX, e *catalog.Entry) error {
	s := (*Store)(r)
	s.PutEntry(snapshotOf(e))
	return nil
}

func (r *catalogRepo) Update(_ context.Context, _ query.DBTX, e *catalog.Entry) error {
	s := (*Store)(r)
	if s.BeforeEntryUpdate != nil {
		s.BeforeEntryUpdate(e.ID())
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.entries[e.ID()]
	if !ok || e.Quota() < cur.Reserved {
		return infra.WrapRepoErr("update catalog entry: condition not met", nil, infra.KindConditionNotMet)
	}
	next := *snapshotOf(e)
	next.Reserved = cur.Reserved
	s.entries[e.ID()] = next
	return nil
}

func (r *catalogRepo) Delete(_ context.Context, _ query.DBTX, id uuid.UUID) error {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.entries[id]; !ok {
		return notFound("catalog entry")
	}
	for _, req := range s.requests {
		if req.CatalogEntryID == id {
			return catalog.ErrEntryInUse
		}
	}
	delete(s.entries, id)
	return nil
}

func snapshotOf(e *catalog.Entry) *shared.CatalogEntrySnapshot {
	return &shared.CatalogEntrySnapshot{
		ID:              e.ID(),
		Title:           e.Title(),
		Author:          e.Author(),
		Description:     e.Description(),
		CoverImage:      e.CoverImage(),
		Price:           e.Price().Amount(),
		DeliveryOptions: e.DeliveryLabels(),
		Quota:           e.Quota(),
		Reserved:        e.Reserved(),
		CreatedAt:       e.CreatedAt(),
		UpdatedAt:       e.UpdatedAt(),
	}
}

type inventoryRepo Store

// update applies fn to the entry's counter only when cond holds, like a conditional UPDATE.
func (r *inventoryRepo) update(id uuid.UUID, op string, now time.Time, cond func(shared.CatalogEntrySnapshot) bool,
	fn func(*shared.CatalogEntrySnapshot)) (shared.Counter, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[id]
	if !ok || !cond(e) {
		return shared.Counter{}, infra.WrapRepoErr(op+": condition not met", nil, infra.KindConditionNotMet)
	}
	fn(&e)
	e.UpdatedAt = now
	s.entries[id] = e
	return shared.Counter{EntryID: e.ID, Quota: e.Quota, Reserved: e.Reserved}, nil
}

func (r *inventoryRepo) Reserve(_ context.Context, _ query.DBTX, id uuid.UUID, now time.Time) (shared.Counter, error) {
	return r.update(id, "reserve slot", now,
		func(e shared.CatalogEntrySnapshot) bool { return e.Reserved < e.Quota },
		func(e *shared.CatalogEntrySnapshot) { e.Reserved++ })
}

func (r *inventoryRepo) Release(_ context.Context, _ query.DBTX, id uuid.UUID, now time.Time) (shared.Counter, error) {
	return r.update(id, "release slot", now,
		func(e shared.CatalogEntrySnapshot) bool { return e.Reserved > 0 },
		func(e *shared.CatalogEntrySnapshot) { e.Reserved-- })
}

func (r *inventoryRepo) SetQuota(_ context.Context, _ query.DBTX, id uuid.UUID, quota int, now time.Time) (shared.Counter, error) {
	return r.update(id, "update quota", now,
		func(e shared.CatalogEntrySnapshot) bool { return quota >= e.Reserved },
		func(e *shared.CatalogEntrySnapshot) { e.Quota = quota })
}

func (r *inventoryRepo) Counter(_ context.Context, _ query.DBTX, id uuid.UUID) (shared.Counter, error) {
	e, ok := (*Store)(r).Entry(id)
	if !ok {
		return shared.Counter{}, notFound("catalog entry")
	}
	return shared.Counter{EntryID: e.ID, Quota: e.Quota, Reserved: e.Reserved}, nil
}

type requestRepo Store

func (r *requestRepo) Create(_ context.Context, _ query.DBTX, req *bookrequest.BookRequest) error {
	s := (*Store)(r)
	if s.FailRequestInsert != nil {
		return s.FailRequestInsert
	}
	s.PutRequest(&shared.BookRequestSnapshot{
		ID:                    req.ID(),
		UserID:                req.UserID(),
		CatalogEntryID:        req.CatalogEntryID(),
		DeliveryOption:        req.DeliveryOption(),
		PriceSnapshot:         req.PriceSnapshot(),
		Status:                string(req.Status()),
		EstimatedDeliveryDate: req.EstimatedDeliveryDate(),
		Notes:                 req.Notes(),
		RequestedAt:           req.RequestedAt(),
		UpdatedAt:             req.UpdatedAt(),
	})
	return nil
}

func (r *requestRepo) UpdateStatusIf(_ context.Context, _ query.DBTX, id uuid.UUID, from, to bookrequest.Status, now time.Time) (bool, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	req, ok := s.requests[id]
	if !ok || req.Status != string(from) {
		return false, nil
	}
	req.Status = string(to)
	req.UpdatedAt = now
	s.requests[id] = req
	return true, nil
}

type orderRepo Store

func (r *orderRepo) Create(_ context.Context, _ query.DBTX, o *order.Order) error {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders[o.ID()] = o
	return nil
}

func (r *orderRepo) UpdateStatus(_ context.Context, _ query.DBTX, o *order.Order, trackingChanged bool) error {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.orders[o.ID()]
	if !ok {
		return notFound("order")
	}
	tracking := cur.TrackingURL()
	if trackingChanged {
		tracking = o.TrackingURL()
	}
	s.orders[o.ID()] = order.ReconstructOrder(cur.ID(), cur.OwnerID(), cur.Items(), cur.TotalAmount(), o.Status(),
		tracking, cur.CreatedAt(), o.UpdatedAt())
	return nil
}

type favoriteRepo Store

func (r *favoriteRepo) Add(_ context.Context, _ query.DBTX, userID, entryID uuid.UUID, now time.Time) (bool, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.entries[entryID]; !ok {
		return false, notFound("catalog entry")
	}
	k := favoriteKey{userID, entryID}
	if _, ok := s.favorites[k]; ok {
		return false, nil
	}
	s.favorites[k] = now
	return true, nil
}

func (r *favoriteRepo) Remove(_ context.Context, _ query.DBTX, userID, entryID uuid.UUID) (bool, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	k := favoriteKey{userID, entryID}
	if _, ok := s.favorites[k]; !ok {
		return false, nil
	}
	delete(s.favorites, k)
	return true, nil
}

type detailsRepo Store

func (r *detailsRepo) Upsert(_ context.Context, _ query.DBTX, d *user.Details) error {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.details[d.UserID()] = d
	return nil
}
