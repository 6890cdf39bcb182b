package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/fadheel-alt/resi-checker/internal/domain/model"
)

// OrderRepository describes persistence operations over the order table.
// "Active" always means archived_at IS NULL; bulk mutations return the
// affected-row count reported by storage, which is the source of truth
// for how many rows actually matched the operation's filter.
type OrderRepository interface {
	GetActiveByTracking(ctx context.Context, trackingNumber string) (*model.Order, error)
	GetArchivedByTracking(ctx context.Context, trackingNumber string) (*model.Order, error)
	Insert(ctx context.Context, candidate model.ImportCandidate) (*model.Order, error)
	RestoreWithImport(ctx context.Context, id uuid.UUID, candidate model.ImportCandidate) error
	MarkScanned(ctx context.Context, id uuid.UUID, scannedAt time.Time) error
	ResetScanAll(ctx context.Context) (int64, error)
	ResetScanByIDs(ctx context.Context, ids []uuid.UUID) (int64, error)
	Stats(ctx context.Context) (*model.Stats, error)
	ListActive(ctx context.Context) ([]model.Order, error)
	ListArchived(ctx context.Context, since time.Time) ([]model.Order, error)
	ArchiveAll(ctx context.Context, archivedAt time.Time) (int64, error)
	ArchiveByIDs(ctx context.Context, ids []uuid.UUID, scannedOnly bool, archivedAt time.Time) (int64, error)
	Restore(ctx context.Context, id uuid.UUID) error
	DeleteArchived(ctx context.Context, ids []uuid.UUID) (int64, error)
	PurgeOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
	DeleteAll(ctx context.Context) error
}
