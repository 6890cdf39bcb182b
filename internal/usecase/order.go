package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	domainErrors "github.com/fadheel-alt/resi-checker/internal/domain/errors"
	"github.com/fadheel-alt/resi-checker/internal/domain/model"
	"github.com/fadheel-alt/resi-checker/internal/domain/repository"
)

const defaultHistoryDays = 7

// OrderUseCase covers reporting and lifecycle operations over the store:
// stats, listings, scan resets, archiving, restore, delete and purge.
type OrderUseCase struct {
	orders repository.OrderRepository
	now    func() time.Time
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository) *OrderUseCase {
	return &OrderUseCase{orders: orders, now: time.Now}
}

// Stats returns counters over the active set.
func (u *OrderUseCase) Stats(ctx context.Context) (*model.Stats, error) {
	return u.orders.Stats(ctx)
}

// ListActive returns active orders, pending first and newest on top,
// annotated with the computed ship deadline.
func (u *OrderUseCase) ListActive(ctx context.Context) ([]model.ActiveOrder, error) {
	orders, err := u.orders.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	now := u.now()
	result := make([]model.ActiveOrder, 0, len(orders))
	for _, o := range orders {
		deadline := Deadline(o.OrderCreationDate)
		result = append(result, model.ActiveOrder{
			Order:    o,
			Deadline: deadline,
			Late:     IsLate(deadline, o.Status, now),
		})
	}
	return result, nil
}

// ResetScan returns scanned orders to pending. An empty id set resets
// every active scanned order; explicit ids are restricted to the active
// set by storage.
func (u *OrderUseCase) ResetScan(ctx context.Context, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return u.orders.ResetScanAll(ctx)
	}
	return u.orders.ResetScanByIDs(ctx, ids)
}

// Archive moves active orders into history. An empty id set archives the
// whole active set; with scannedOnly, only scanned targets are moved. The
// returned count may be less than requested when targets were already
// archived or failed the filter.
func (u *OrderUseCase) Archive(ctx context.Context, ids []uuid.UUID, scannedOnly bool) (int64, error) {
	archivedAt := u.now()
	if len(ids) == 0 {
		return u.orders.ArchiveAll(ctx, archivedAt)
	}
	return u.orders.ArchiveByIDs(ctx, ids, scannedOnly, archivedAt)
}

// History lists orders archived within the last daysBack days, most
// recently archived first.
func (u *OrderUseCase) History(ctx context.Context, daysBack int) ([]model.Order, error) {
	if daysBack <= 0 {
		daysBack = defaultHistoryDays
	}
	since := u.now().AddDate(0, 0, -daysBack)
	return u.orders.ListArchived(ctx, since)
}

// Restore pulls one archived order back into the active set as pending.
func (u *OrderUseCase) Restore(ctx context.Context, id uuid.UUID) error {
	return u.orders.Restore(ctx, id)
}

// DeleteArchived permanently removes archived orders. Active orders never
// match regardless of the ids supplied.
func (u *OrderUseCase) DeleteArchived(ctx context.Context, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, domainErrors.ErrNoOrderIDs
	}
	return u.orders.DeleteArchived(ctx, ids)
}

// PurgeHistory permanently deletes archived orders older than the given
// number of days, defaulting to the standard retention window.
func (u *OrderUseCase) PurgeHistory(ctx context.Context, days int) (int64, error) {
	if days <= 0 {
		days = defaultHistoryDays
	}
	cutoff := u.now().AddDate(0, 0, -days)
	return u.orders.PurgeOlderThan(ctx, cutoff)
}

// ClearAll hard-deletes every order regardless of state. Legacy full-reset
// escape hatch; archiving is the preferred close-out.
func (u *OrderUseCase) ClearAll(ctx context.Context) error {
	return u.orders.DeleteAll(ctx)
}
