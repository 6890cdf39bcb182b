package handlers

import (
	"context"

	"github.com/google/uuid"

	"github.com/fadheel-alt/resi-checker/internal/domain/model"
)

// ScanFacade describes the scan hot path exposed via HTTP.
type ScanFacade interface {
	MarkScanned(ctx context.Context, trackingNumber string) (*model.Order, error)
}

// ImportFacade encapsulates batch reconciliation of parsed rows.
type ImportFacade interface {
	ImportOrders(ctx context.Context, candidates []model.ImportCandidate) (*model.ImportSummary, error)
	ExtractCandidates(rows []map[string]string, trackingColumn, orderColumn string) ([]model.ImportCandidate, []model.RowError)
	SuggestMapping(headers []string) (trackingColumn, orderColumn string)
}

// ReportFacade provides read-only views over the active set.
type ReportFacade interface {
	Stats(ctx context.Context) (*model.Stats, error)
	ActiveOrders(ctx context.Context) ([]model.ActiveOrder, error)
}

// LifecycleFacade covers archive/restore/delete/reset close-out operations.
type LifecycleFacade interface {
	ResetScan(ctx context.Context, ids []uuid.UUID) (int64, error)
	Archive(ctx context.Context, ids []uuid.UUID, scannedOnly bool) (int64, error)
	History(ctx context.Context, daysBack int) ([]model.Order, error)
	Restore(ctx context.Context, id uuid.UUID) error
	DeleteArchived(ctx context.Context, ids []uuid.UUID) (int64, error)
	PurgeHistory(ctx context.Context, days int) (int64, error)
	ClearAll(ctx context.Context) error
}

// WarehouseFacade aggregates the full operation set used across handlers.
type WarehouseFacade interface {
	ScanFacade
	ImportFacade
	ReportFacade
	LifecycleFacade
}
