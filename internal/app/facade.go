package app

import (
	"context"

	"github.com/google/uuid"

	"github.com/fadheel-alt/resi-checker/internal/domain/model"
	"github.com/fadheel-alt/resi-checker/internal/usecase"
)

// WarehouseFacade aggregates the use cases behind the operation set the
// collaborators (scan handler, import pipeline, reporting views, retention
// sweeper) are allowed to call.
type WarehouseFacade struct {
	scan    *usecase.ScanUseCase
	imports *usecase.ImportUseCase
	orders  *usecase.OrderUseCase
}

// NewWarehouseFacade constructs WarehouseFacade.
func NewWarehouseFacade(scan *usecase.ScanUseCase, imports *usecase.ImportUseCase, orders *usecase.OrderUseCase) *WarehouseFacade {
	return &WarehouseFacade{scan: scan, imports: imports, orders: orders}
}

func (f *WarehouseFacade) MarkScanned(ctx context.Context, trackingNumber string) (*model.Order, error) {
	return f.scan.MarkScanned(ctx, trackingNumber)
}

func (f *WarehouseFacade) ImportOrders(ctx context.Context, candidates []model.ImportCandidate) (*model.ImportSummary, error) {
	return f.imports.Import(ctx, candidates)
}

func (f *WarehouseFacade) ExtractCandidates(rows []map[string]string, trackingColumn, orderColumn string) ([]model.ImportCandidate, []model.RowError) {
	return usecase.ExtractCandidates(rows, trackingColumn, orderColumn)
}

func (f *WarehouseFacade) SuggestMapping(headers []string) (string, string) {
	return usecase.SuggestMapping(headers)
}

func (f *WarehouseFacade) Stats(ctx context.Context) (*model.Stats, error) {
	return f.orders.Stats(ctx)
}

func (f *WarehouseFacade) ActiveOrders(ctx context.Context) ([]model.ActiveOrder, error) {
	return f.orders.ListActive(ctx)
}

func (f *WarehouseFacade) ResetScan(ctx context.Context, ids []uuid.UUID) (int64, error) {
	return f.orders.ResetScan(ctx, ids)
}

func (f *WarehouseFacade) Archive(ctx context.Context, ids []uuid.UUID, scannedOnly bool) (int64, error) {
	return f.orders.Archive(ctx, ids, scannedOnly)
}

func (f *WarehouseFacade) History(ctx context.Context, daysBack int) ([]model.Order, error) {
	return f.orders.History(ctx, daysBack)
}

func (f *WarehouseFacade) Restore(ctx context.Context, id uuid.UUID) error {
	return f.orders.Restore(ctx, id)
}

func (f *WarehouseFacade) DeleteArchived(ctx context.Context, ids []uuid.UUID) (int64, error) {
	return f.orders.DeleteArchived(ctx, ids)
}

func (f *WarehouseFacade) PurgeHistory(ctx context.Context, days int) (int64, error) {
	return f.orders.PurgeHistory(ctx, days)
}

func (f *WarehouseFacade) ClearAll(ctx context.Context) error {
	return f.orders.ClearAll(ctx)
}
