package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/fadheel-alt/resi-checker/internal/domain/errors"
	"github.com/fadheel-alt/resi-checker/internal/domain/model"
	"github.com/fadheel-alt/resi-checker/internal/domain/repository"
)

// pgxPool is the subset of pgxpool.Pool the storage uses. Keeping it as an
// interface lets tests substitute a pgxmock pool.
type pgxPool interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Close()
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pgxPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// Storage is the repository facade backed by PostgreSQL.
type Storage struct {
	pool   pgxPool
	logger *slog.Logger
}

type orderRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Orders returns the order repository adapter.
func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS orders (
            id UUID PRIMARY KEY,
            order_id TEXT,
            tracking_number TEXT NOT NULL,
            variation_name TEXT,
            receiver_name TEXT,
            buyer_user_name TEXT,
            jumlah TEXT,
            shipping_method TEXT,
            status TEXT NOT NULL DEFAULT 'pending',
            scanned_at TIMESTAMPTZ,
            order_creation_date TIMESTAMPTZ,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            archived_at TIMESTAMPTZ
        )`,
		// tracking_number must be unique among active orders only; archived
		// rows may share it with a later re-imported active row.
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_orders_active_tracking
            ON orders(tracking_number) WHERE archived_at IS NULL`,
		`CREATE INDEX IF NOT EXISTS idx_orders_archived_at
            ON orders(archived_at) WHERE archived_at IS NOT NULL`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

const orderColumns = `id, COALESCE(order_id, ''), tracking_number, COALESCE(variation_name, ''),
        COALESCE(receiver_name, ''), COALESCE(buyer_user_name, ''), COALESCE(jumlah, ''),
        COALESCE(shipping_method, ''), status, scanned_at, order_creation_date, created_at, archived_at`

func scanOrder(row pgx.Row) (*model.Order, error) {
	var o model.Order
	err := row.Scan(&o.ID, &o.OrderID, &o.TrackingNumber, &o.VariationName, &o.ReceiverName,
		&o.BuyerUserName, &o.Jumlah, &o.ShippingMethod, &o.Status, &o.ScannedAt,
		&o.OrderCreationDate, &o.CreatedAt, &o.ArchivedAt)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func collectOrders(rows pgx.Rows) ([]model.Order, error) {
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *orderRepository) GetActiveByTracking(ctx context.Context, trackingNumber string) (*model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE tracking_number=$1 AND archived_at IS NULL`
	order, err := scanOrder(r.storage.pool.QueryRow(ctx, query, trackingNumber))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return order, nil
}

func (r *orderRepository) GetArchivedByTracking(ctx context.Context, trackingNumber string) (*model.Order, error) {
	// Several archived rows may carry the same tracking number; restore
	// targets the most recently archived one.
	query := `SELECT ` + orderColumns + ` FROM orders
              WHERE tracking_number=$1 AND archived_at IS NOT NULL
              ORDER BY archived_at DESC LIMIT 1`
	order, err := scanOrder(r.storage.pool.QueryRow(ctx, query, trackingNumber))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return order, nil
}

func (r *orderRepository) Insert(ctx context.Context, candidate model.ImportCandidate) (*model.Order, error) {
	const query = `INSERT INTO orders (id, order_id, tracking_number, variation_name, receiver_name,
                       buyer_user_name, jumlah, shipping_method, order_creation_date, status)
                   VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
                   RETURNING created_at`

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
	}

	err := r.storage.pool.QueryRow(ctx, query,
		order.ID, order.OrderID, order.TrackingNumber, order.VariationName, order.ReceiverName,
		order.BuyerUserName, order.Jumlah, order.ShippingMethod, order.OrderCreationDate,
		order.Status,
	).Scan(&order.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return order, nil
}

func (r *orderRepository) RestoreWithImport(ctx context.Context, id uuid.UUID, candidate model.ImportCandidate) error {
	const query = `UPDATE orders SET archived_at=NULL, status=$2, scanned_at=NULL,
                       order_id=$3, variation_name=$4, receiver_name=$5, buyer_user_name=$6,
                       jumlah=$7, shipping_method=$8, order_creation_date=$9
                   WHERE id=$1 AND archived_at IS NOT NULL`

	tag, err := r.storage.pool.Exec(ctx, query, id, model.OrderStatusPending,
		candidate.OrderID, candidate.VariationName, candidate.ReceiverName,
		candidate.BuyerUserName, candidate.Jumlah, candidate.ShippingMethod,
		candidate.OrderCreationDate)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *orderRepository) MarkScanned(ctx context.Context, id uuid.UUID, scannedAt time.Time) error {
	const query = `UPDATE orders SET status=$2, scanned_at=$3 WHERE id=$1 AND archived_at IS NULL`
	tag, err := r.storage.pool.Exec(ctx, query, id, model.OrderStatusScanned, scannedAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *orderRepository) ResetScanAll(ctx context.Context) (int64, error) {
	const query = `UPDATE orders SET status=$1, scanned_at=NULL
                   WHERE status=$2 AND archived_at IS NULL`
	tag, err := r.storage.pool.Exec(ctx, query, model.OrderStatusPending, model.OrderStatusScanned)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *orderRepository) ResetScanByIDs(ctx context.Context, ids []uuid.UUID) (int64, error) {
	const query = `UPDATE orders SET status=$1, scanned_at=NULL
                   WHERE id = ANY($2) AND archived_at IS NULL`
	tag, err := r.storage.pool.Exec(ctx, query, model.OrderStatusPending, ids)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *orderRepository) Stats(ctx context.Context) (*model.Stats, error) {
	// One round trip so total and scanned are taken at the same instant.
	const query = `SELECT COUNT(*), COUNT(*) FILTER (WHERE status='scanned')
                   FROM orders WHERE archived_at IS NULL`
	var stats model.Stats
	if err := r.storage.pool.QueryRow(ctx, query).Scan(&stats.Total, &stats.Scanned); err != nil {
		return nil, err
	}
	stats.Pending = stats.Total - stats.Scanned
	return &stats, nil
}

func (r *orderRepository) ListActive(ctx context.Context) ([]model.Order, error) {
	// 'pending' sorts before 'scanned', so unscanned work surfaces first,
	// newest imports on top within each group.
	query := `SELECT ` + orderColumns + ` FROM orders WHERE archived_at IS NULL
              ORDER BY status ASC, created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	return collectOrders(rows)
}

func (r *orderRepository) ListArchived(ctx context.Context, since time.Time) ([]model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders
              WHERE archived_at IS NOT NULL AND archived_at >= $1
              ORDER BY archived_at DESC`
	rows, err := r.storage.pool.Query(ctx, query, since)
	if err != nil {
		return nil, err
	}
	return collectOrders(rows)
}

func (r *orderRepository) ArchiveAll(ctx context.Context, archivedAt time.Time) (int64, error) {
	const query = `UPDATE orders SET archived_at=$1 WHERE archived_at IS NULL`
	tag, err := r.storage.pool.Exec(ctx, query, archivedAt)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *orderRepository) ArchiveByIDs(ctx context.Context, ids []uuid.UUID, scannedOnly bool, archivedAt time.Time) (int64, error) {
	query := `UPDATE orders SET archived_at=$1 WHERE id = ANY($2) AND archived_at IS NULL`
	args := []any{archivedAt, ids}
	if scannedOnly {
		query += ` AND status=$3`
		args = append(args, model.OrderStatusScanned)
	}

	tag, err := r.storage.pool.Exec(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *orderRepository) Restore(ctx context.Context, id uuid.UUID) error {
	// An order pulled back from history is never pre-marked scanned; its
	// prior scan context is retired together with the archive entry.
	const query = `UPDATE orders SET archived_at=NULL, status=$2, scanned_at=NULL
                   WHERE id=$1 AND archived_at IS NOT NULL`
	tag, err := r.storage.pool.Exec(ctx, query, id, model.OrderStatusPending)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *orderRepository) DeleteArchived(ctx context.Context, ids []uuid.UUID) (int64, error) {
	// Active rows never match, regardless of the ids supplied.
	const query = `DELETE FROM orders WHERE id = ANY($1) AND archived_at IS NOT NULL`
	tag, err := r.storage.pool.Exec(ctx, query, ids)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *orderRepository) PurgeOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	const query = `DELETE FROM orders WHERE archived_at IS NOT NULL AND archived_at < $1`
	tag, err := r.storage.pool.Exec(ctx, query, cutoff)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *orderRepository) DeleteAll(ctx context.Context) error {
	_, err := r.storage.pool.Exec(ctx, `DELETE FROM orders`)
	return err
}
