package usecase

import (
	"context"
	"strings"
	"time"

	domainErrors "github.com/fadheel-alt/resi-checker/internal/domain/errors"
	"github.com/fadheel-alt/resi-checker/internal/domain/model"
	"github.com/fadheel-alt/resi-checker/internal/domain/repository"
)

// ScanUseCase handles the scan hot path: one tracking number in, one
// status transition out.
type ScanUseCase struct {
	orders repository.OrderRepository
	now    func() time.Time
}

// NewScanUseCase constructs ScanUseCase.
func NewScanUseCase(orders repository.OrderRepository) *ScanUseCase {
	return &ScanUseCase{orders: orders, now: time.Now}
}

// MarkScanned transitions the active order with the given tracking number
// from pending to scanned. Returns ErrNotFound when no active order
// matches and ErrAlreadyScanned (together with the untouched order) when
// the order was scanned before; the original scannedAt stamp is kept.
func (u *ScanUseCase) MarkScanned(ctx context.Context, trackingNumber string) (*model.Order, error) {
	tracking := strings.TrimSpace(trackingNumber)
	if tracking == "" {
		return nil, domainErrors.ErrEmptyTrackingNumber
	}

	order, err := u.orders.GetActiveByTracking(ctx, tracking)
	if err != nil {
		return nil, err
	}

	if order.Status == model.OrderStatusScanned {
		return order, domainErrors.ErrAlreadyScanned
	}

	scannedAt := u.now()
	if err := u.orders.MarkScanned(ctx, order.ID, scannedAt); err != nil {
		return nil, err
	}

	order.Status = model.OrderStatusScanned
	order.ScannedAt = &scannedAt
	return order, nil
}
