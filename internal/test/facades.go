package test

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/fadheel-alt/resi-checker/internal/domain/model"
)

// ScanFacadeStub provides controllable behaviour for the scan endpoint.
type ScanFacadeStub struct {
	MarkScannedFn func(context.Context, string) (*model.Order, error)
}

// MarkScanned delegates to the provided function or returns a scanned order.
func (s ScanFacadeStub) MarkScanned(ctx context.Context, trackingNumber string) (*model.Order, error) {
	if s.MarkScannedFn != nil {
		return s.MarkScannedFn(ctx, trackingNumber)
	}
	now := time.Unix(0, 0)
	return &model.Order{ID: uuid.New(), TrackingNumber: trackingNumber, Status: model.OrderStatusScanned, ScannedAt: &now}, nil
}

// ImportFacadeStub simulates import pipeline operations.
type ImportFacadeStub struct {
	ImportFn  func(context.Context, []model.ImportCandidate) (*model.ImportSummary, error)
	ExtractFn func([]map[string]string, string, string) ([]model.ImportCandidate, []model.RowError)
	SuggestFn func([]string) (string, string)
}

// ImportOrders delegates or reports every candidate as inserted.
func (s ImportFacadeStub) ImportOrders(ctx context.Context, candidates []model.ImportCandidate) (*model.ImportSummary, error) {
	if s.ImportFn != nil {
		return s.ImportFn(ctx, candidates)
	}
	return &model.ImportSummary{Inserted: len(candidates)}, nil
}

// ExtractCandidates delegates or passes rows through unchanged.
func (s ImportFacadeStub) ExtractCandidates(rows []map[string]string, trackingColumn, orderColumn string) ([]model.ImportCandidate, []model.RowError) {
	if s.ExtractFn != nil {
		return s.ExtractFn(rows, trackingColumn, orderColumn)
	}
	candidates := make([]model.ImportCandidate, 0, len(rows))
	for _, row := range rows {
		candidates = append(candidates, model.ImportCandidate{
			TrackingNumber: row[trackingColumn],
			OrderID:        row[orderColumn],
		})
	}
	return candidates, nil
}

// SuggestMapping delegates or suggests nothing.
func (s ImportFacadeStub) SuggestMapping(headers []string) (string, string) {
	if s.SuggestFn != nil {
		return s.SuggestFn(headers)
	}
	return "", ""
}

// ReportFacadeStub serves canned reporting data.
type ReportFacadeStub struct {
	StatsFn        func(context.Context) (*model.Stats, error)
	ActiveOrdersFn func(context.Context) ([]model.ActiveOrder, error)
}

// Stats returns the configured summary or a fixed one.
func (s ReportFacadeStub) Stats(ctx context.Context) (*model.Stats, error) {
	if s.StatsFn != nil {
		return s.StatsFn(ctx)
	}
	return &model.Stats{Total: 2, Scanned: 1, Pending: 1}, nil
}

// ActiveOrders returns the configured listing or one pending order.
func (s ReportFacadeStub) ActiveOrders(ctx context.Context) ([]model.ActiveOrder, error) {
	if s.ActiveOrdersFn != nil {
		return s.ActiveOrdersFn(ctx)
	}
	return []model.ActiveOrder{{Order: model.Order{ID: uuid.New(), TrackingNumber: "RC1", Status: model.OrderStatusPending}}}, nil
}

// LifecycleFacadeStub simulates archive/restore/delete operations.
type LifecycleFacadeStub struct {
	ResetScanFn      func(context.Context, []uuid.UUID) (int64, error)
	ArchiveFn        func(context.Context, []uuid.UUID, bool) (int64, error)
	HistoryFn        func(context.Context, int) ([]model.Order, error)
	RestoreFn        func(context.Context, uuid.UUID) error
	DeleteArchivedFn func(context.Context, []uuid.UUID) (int64, error)
	PurgeFn          func(context.Context, int) (int64, error)
	ClearAllFn       func(context.Context) error
}

func (s LifecycleFacadeStub) ResetScan(ctx context.Context, ids []uuid.UUID) (int64, error) {
	if s.ResetScanFn != nil {
		return s.ResetScanFn(ctx, ids)
	}
	return int64(len(ids)), nil
}

func (s LifecycleFacadeStub) Archive(ctx context.Context, ids []uuid.UUID, scannedOnly bool) (int64, error) {
	if s.ArchiveFn != nil {
		return s.ArchiveFn(ctx, ids, scannedOnly)
	}
	return int64(len(ids)), nil
}

func (s LifecycleFacadeStub) History(ctx context.Context, daysBack int) ([]model.Order, error) {
	if s.HistoryFn != nil {
		return s.HistoryFn(ctx, daysBack)
	}
	archivedAt := time.Unix(0, 0)
	return []model.Order{{ID: uuid.New(), TrackingNumber: "RC1", ArchivedAt: &archivedAt}}, nil
}

func (s LifecycleFacadeStub) Restore(ctx context.Context, id uuid.UUID) error {
	if s.RestoreFn != nil {
		return s.RestoreFn(ctx, id)
	}
	return nil
}

func (s LifecycleFacadeStub) DeleteArchived(ctx context.Context, ids []uuid.UUID) (int64, error) {
	if s.DeleteArchivedFn != nil {
		return s.DeleteArchivedFn(ctx, ids)
	}
	return int64(len(ids)), nil
}

func (s LifecycleFacadeStub) PurgeHistory(ctx context.Context, days int) (int64, error) {
	if s.PurgeFn != nil {
		return s.PurgeFn(ctx, days)
	}
	return 0, nil
}

func (s LifecycleFacadeStub) ClearAll(ctx context.Context) error {
	if s.ClearAllFn != nil {
		return s.ClearAllFn(ctx)
	}
	return nil
}

// WarehouseFacadeStub aggregates all facade stubs for router-level tests.
type WarehouseFacadeStub struct {
	ScanFacadeStub
	ImportFacadeStub
	ReportFacadeStub
	LifecycleFacadeStub
}

// SweeperFacadeStub records retention purges triggered by the worker.
type SweeperFacadeStub struct {
	PurgeFn func(context.Context, int) (int64, error)

	mu    sync.Mutex
	calls []int
}

// PurgeHistory delegates or records the call.
func (s *SweeperFacadeStub) PurgeHistory(ctx context.Context, days int) (int64, error) {
	s.mu.Lock()
	s.calls = append(s.calls, days)
	s.mu.Unlock()
	if s.PurgeFn != nil {
		return s.PurgeFn(ctx, days)
	}
	return 1, nil
}

// Calls returns a snapshot of recorded purge invocations.
func (s *SweeperFacadeStub) Calls() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]int, len(s.calls))
	copy(out, s.calls)
	return out
}
