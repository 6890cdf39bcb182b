package test

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	domainErrors "github.com/fadheel-alt/resi-checker/internal/domain/errors"
	"github.com/fadheel-alt/resi-checker/internal/domain/model"
)

// OrderRepositoryFake keeps orders in memory with the same semantics as
// the PostgreSQL repository, including the active-tracking uniqueness
// rule. Setting Err makes every call fail with it.
type OrderRepositoryFake struct {
	mu     sync.Mutex
	Orders map[uuid.UUID]*model.Order
	Err    error
	Now    func() time.Time
}

// NewOrderRepositoryFake constructs the fake with initialized state.
func NewOrderRepositoryFake() *OrderRepositoryFake {
	return &OrderRepositoryFake{
		Orders: make(map[uuid.UUID]*model.Order),
		Now:    time.Now,
	}
}

// Seed stores an order directly, bypassing uniqueness checks.
func (f *OrderRepositoryFake) Seed(order model.Order) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	stored := order
	f.Orders[order.ID] = &stored
}

// Get returns a copy of the stored order.
func (f *OrderRepositoryFake) Get(id uuid.UUID) (model.Order, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if o, ok := f.Orders[id]; ok {
		return *o, true
	}
	return model.Order{}, false
}

func (f *OrderRepositoryFake) GetActiveByTracking(ctx context.Context, trackingNumber string) (*model.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return nil, f.Err
	}
	for _, o := range f.Orders {
		if o.ArchivedAt == nil && o.TrackingNumber == trackingNumber {
			cp := *o
			return &cp, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

func (f *OrderRepositoryFake) GetArchivedByTracking(ctx context.Context, trackingNumber string) (*model.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return nil, f.Err
	}
	var newest *model.Order
	for _, o := range f.Orders {
		if o.ArchivedAt == nil || o.TrackingNumber != trackingNumber {
			continue
		}
		if newest == nil || o.ArchivedAt.After(*newest.ArchivedAt) {
			newest = o
		}
	}
	if newest == nil {
		return nil, domainErrors.ErrNotFound
	}
	cp := *newest
	return &cp, nil
}

func (f *OrderRepositoryFake) Insert(ctx context.Context, candidate model.ImportCandidate) (*model.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return nil, f.Err
	}
	for _, o := range f.Orders {
		if o.ArchivedAt == nil && o.TrackingNumber == candidate.TrackingNumber {
			return nil, domainErrors.ErrAlreadyExists
		}
	}
	order := &model.Order{
		ID:                uuid.New(),
		OrderID:           candidate.OrderID,
		TrackingNumber:    candidate.TrackingNumber,
		VariationName:     candidate.VariationName,
		ReceiverName:      candidate.ReceiverName,
		BuyerUserName:     candidate.BuyerUserName,
		Jumlah:            candidate.Jumlah,
		ShippingMethod:    candidate.ShippingMethod,
		OrderCreationDate: candidate.OrderCreationDate,
		Status:            model.OrderStatusPending,
		CreatedAt:         f.Now(),
	}
	f.Orders[order.ID] = order
	cp := *order
	return &cp, nil
}

func (f *OrderRepositoryFake) RestoreWithImport(ctx context.Context, id uuid.UUID, candidate model.ImportCandidate) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return f.Err
	}
	o, ok := f.Orders[id]
	if !ok || o.ArchivedAt == nil {
		return domainErrors.ErrNotFound
	}
	o.ArchivedAt = nil
	o.Status = model.OrderStatusPending
	o.ScannedAt = nil
	o.OrderID = candidate.OrderID
	o.VariationName = candidate.VariationName
	o.ReceiverName = candidate.ReceiverName
	o.BuyerUserName = candidate.BuyerUserName
	o.Jumlah = candidate.Jumlah
	o.ShippingMethod = candidate.ShippingMethod
	o.OrderCreationDate = candidate.OrderCreationDate
	return nil
}

func (f *OrderRepositoryFake) MarkScanned(ctx context.Context, id uuid.UUID, scannedAt time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return f.Err
	}
	o, ok := f.Orders[id]
	if !ok || o.ArchivedAt != nil {
		return domainErrors.ErrNotFound
	}
	o.Status = model.OrderStatusScanned
	at := scannedAt
	o.ScannedAt = &at
	return nil
}

func (f *OrderRepositoryFake) ResetScanAll(ctx context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return 0, f.Err
	}
	var count int64
	for _, o := range f.Orders {
		if o.ArchivedAt == nil && o.Status == model.OrderStatusScanned {
			o.Status = model.OrderStatusPending
			o.ScannedAt = nil
			count++
		}
	}
	return count, nil
}

func (f *OrderRepositoryFake) ResetScanByIDs(ctx context.Context, ids []uuid.UUID) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return 0, f.Err
	}
	var count int64
	for _, id := range ids {
		if o, ok := f.Orders[id]; ok && o.ArchivedAt == nil {
			o.Status = model.OrderStatusPending
			o.ScannedAt = nil
			count++
		}
	}
	return count, nil
}

func (f *OrderRepositoryFake) Stats(ctx context.Context) (*model.Stats, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return nil, f.Err
	}
	var stats model.Stats
	for _, o := range f.Orders {
		if o.ArchivedAt != nil {
			continue
		}
		stats.Total++
		if o.Status == model.OrderStatusScanned {
			stats.Scanned++
		}
	}
	stats.Pending = stats.Total - stats.Scanned
	return &stats, nil
}

func (f *OrderRepositoryFake) ListActive(ctx context.Context) ([]model.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return nil, f.Err
	}
	var result []model.Order
	for _, o := range f.Orders {
		if o.ArchivedAt == nil {
			result = append(result, *o)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Status != result[j].Status {
			return result[i].Status < result[j].Status
		}
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (f *OrderRepositoryFake) ListArchived(ctx context.Context, since time.Time) ([]model.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return nil, f.Err
	}
	var result []model.Order
	for _, o := range f.Orders {
		if o.ArchivedAt != nil && !o.ArchivedAt.Before(since) {
			result = append(result, *o)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ArchivedAt.After(*result[j].ArchivedAt)
	})
	return result, nil
}

func (f *OrderRepositoryFake) ArchiveAll(ctx context.Context, archivedAt time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return 0, f.Err
	}
	var count int64
	for _, o := range f.Orders {
		if o.ArchivedAt == nil {
			at := archivedAt
			o.ArchivedAt = &at
			count++
		}
	}
	return count, nil
}

func (f *OrderRepositoryFake) ArchiveByIDs(ctx context.Context, ids []uuid.UUID, scannedOnly bool, archivedAt time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return 0, f.Err
	}
	var count int64
	for _, id := range ids {
		o, ok := f.Orders[id]
		if !ok || o.ArchivedAt != nil {
			continue
		}
		if scannedOnly && o.Status != model.OrderStatusScanned {
			continue
		}
		at := archivedAt
		o.ArchivedAt = &at
		count++
	}
	return count, nil
}

func (f *OrderRepositoryFake) Restore(ctx context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return f.Err
	}
	o, ok := f.Orders[id]
	if !ok || o.ArchivedAt == nil {
		return domainErrors.ErrNotFound
	}
	o.ArchivedAt = nil
	o.Status = model.OrderStatusPending
	o.ScannedAt = nil
	return nil
}

func (f *OrderRepositoryFake) DeleteArchived(ctx context.Context, ids []uuid.UUID) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return 0, f.Err
	}
	var count int64
	for _, id := range ids {
		if o, ok := f.Orders[id]; ok && o.ArchivedAt != nil {
			delete(f.Orders, id)
			count++
		}
	}
	return count, nil
}

func (f *OrderRepositoryFake) PurgeOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return 0, f.Err
	}
	var count int64
	for id, o := range f.Orders {
		if o.ArchivedAt != nil && o.ArchivedAt.Before(cutoff) {
			delete(f.Orders, id)
			count++
		}
	}
	return count, nil
}

func (f *OrderRepositoryFake) DeleteAll(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return f.Err
	}
	f.Orders = make(map[uuid.UUID]*model.Order)
	return nil
}
