package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	domainErrors "github.com/fadheel-alt/resi-checker/internal/domain/errors"
	"github.com/fadheel-alt/resi-checker/internal/domain/model"
	testhelpers "github.com/fadheel-alt/resi-checker/internal/test"
)

func TestStatsCountsActiveOnly(t *testing.T) {
	repo := testhelpers.NewOrderRepositoryFake()
	archivedAt := time.Now()
	repo.Seed(model.Order{TrackingNumber: "RC1", Status: model.OrderStatusPending})
	repo.Seed(model.Order{TrackingNumber: "RC2", Status: model.OrderStatusScanned})
	repo.Seed(model.Order{TrackingNumber: "RC3", Status: model.OrderStatusScanned, ArchivedAt: &archivedAt})

	uc := NewOrderUseCase(repo)
	stats, err := uc.Stats(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.Total != 2 || stats.Scanned != 1 || stats.Pending != 1 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

func TestListActiveAnnotatesDeadline(t *testing.T) {
	repo := testhelpers.NewOrderRepositoryFake()
	created := time.Date(2024, 1, 15, 10, 0, 0, 0, time.Local)
	repo.Seed(model.Order{TrackingNumber: "RC1", Status: model.OrderStatusPending, OrderCreationDate: &created})

	uc := NewOrderUseCase(repo)
	uc.now = func() time.Time { return time.Date(2024, 1, 16, 8, 0, 0, 0, time.Local) }

	orders, err := uc.ListActive(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(orders) != 1 {
		t.Fatalf("expected 1 active order, got %d", len(orders))
	}

	want := time.Date(2024, 1, 15, 23, 59, 59, int(999*time.Millisecond), time.Local)
	if orders[0].Deadline == nil || !orders[0].Deadline.Equal(want) {
		t.Fatalf("expected deadline %v, got %v", want, orders[0].Deadline)
	}
	if !orders[0].Late {
		t.Fatal("pending order past its deadline must be flagged late")
	}
}

func TestResetScanAllVersusIDs(t *testing.T) {
	repo := testhelpers.NewOrderRepositoryFake()
	scannedAt := time.Now()
	repo.Seed(model.Order{ID: uuid.New(), TrackingNumber: "RC1", Status: model.OrderStatusScanned, ScannedAt: &scannedAt})
	repo.Seed(model.Order{ID: uuid.New(), TrackingNumber: "RC2", Status: model.OrderStatusScanned, ScannedAt: &scannedAt})

	uc := NewOrderUseCase(repo)
	count, err := uc.ResetScan(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 2 {
		t.Fatalf("empty id set must reset everything, got %d", count)
	}

	id := uuid.New()
	repo.Seed(model.Order{ID: id, TrackingNumber: "RC3", Status: model.OrderStatusScanned, ScannedAt: &scannedAt})
	count, err = uc.ResetScan(context.Background(), []uuid.UUID{id})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected single targeted reset, got %d", count)
	}
	if o, _ := repo.Get(id); o.Status != model.OrderStatusPending || o.ScannedAt != nil {
		t.Fatalf("reset must return the order to pending: %+v", o)
	}
}

func TestArchiveStampsInjectedTime(t *testing.T) {
	repo := testhelpers.NewOrderRepositoryFake()
	id := uuid.New()
	repo.Seed(model.Order{ID: id, TrackingNumber: "RC1", Status: model.OrderStatusScanned})

	uc := NewOrderUseCase(repo)
	archivedAt := time.Date(2024, 1, 15, 18, 0, 0, 0, time.Local)
	uc.now = func() time.Time { return archivedAt }

	count, err := uc.Archive(context.Background(), nil, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 archived, got %d", count)
	}
	o, _ := repo.Get(id)
	if o.ArchivedAt == nil || !o.ArchivedAt.Equal(archivedAt) {
		t.Fatalf("expected archivedAt %v, got %v", archivedAt, o.ArchivedAt)
	}
}

func TestArchiveScannedOnlySkipsPending(t *testing.T) {
	repo := testhelpers.NewOrderRepositoryFake()
	scannedID, pendingID := uuid.New(), uuid.New()
	repo.Seed(model.Order{ID: scannedID, TrackingNumber: "RC1", Status: model.OrderStatusScanned})
	repo.Seed(model.Order{ID: pendingID, TrackingNumber: "RC2", Status: model.OrderStatusPending})

	uc := NewOrderUseCase(repo)
	count, err := uc.Archive(context.Background(), []uuid.UUID{scannedID, pendingID}, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 1 {
		t.Fatalf("scannedOnly must skip pending targets, got %d", count)
	}
	if o, _ := repo.Get(pendingID); o.ArchivedAt != nil {
		t.Fatal("pending order must stay active under scannedOnly")
	}
}

func TestHistoryDefaultsAndFiltersWindow(t *testing.T) {
	repo := testhelpers.NewOrderRepositoryFake()
	now := time.Date(2024, 1, 15, 12, 0, 0, 0, time.Local)
	recent := now.AddDate(0, 0, -3)
	old := now.AddDate(0, 0, -10)
	repo.Seed(model.Order{TrackingNumber: "RCRECENT", Status: model.OrderStatusScanned, ArchivedAt: &recent})
	repo.Seed(model.Order{TrackingNumber: "RCOLD", Status: model.OrderStatusScanned, ArchivedAt: &old})

	uc := NewOrderUseCase(repo)
	uc.now = func() time.Time { return now }

	orders, err := uc.History(context.Background(), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(orders) != 1 || orders[0].TrackingNumber != "RCRECENT" {
		t.Fatalf("default 7-day window must exclude older rows, got %+v", orders)
	}

	orders, err = uc.History(context.Background(), 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(orders) != 2 {
		t.Fatalf("expected both rows in 30-day window, got %d", len(orders))
	}
}

func TestDeleteArchivedRequiresIDs(t *testing.T) {
	uc := NewOrderUseCase(testhelpers.NewOrderRepositoryFake())

	if _, err := uc.DeleteArchived(context.Background(), nil); !errors.Is(err, domainErrors.ErrNoOrderIDs) {
		t.Fatalf("expected ErrNoOrderIDs, got %v", err)
	}
}

func TestDeleteArchivedSkipsActiveOrders(t *testing.T) {
	repo := testhelpers.NewOrderRepositoryFake()
	activeID := uuid.New()
	archivedID := uuid.New()
	archivedAt := time.Now()
	repo.Seed(model.Order{ID: activeID, TrackingNumber: "RC1", Status: model.OrderStatusPending})
	repo.Seed(model.Order{ID: archivedID, TrackingNumber: "RC2", Status: model.OrderStatusScanned, ArchivedAt: &archivedAt})

	uc := NewOrderUseCase(repo)
	count, err := uc.DeleteArchived(context.Background(), []uuid.UUID{activeID, archivedID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 1 {
		t.Fatalf("active orders must not be deleted, got count %d", count)
	}
	if _, ok := repo.Get(activeID); !ok {
		t.Fatal("active order must survive a delete-archived call")
	}
}

func TestPurgeHistoryCutoff(t *testing.T) {
	repo := testhelpers.NewOrderRepositoryFake()
	now := time.Date(2024, 1, 15, 12, 0, 0, 0, time.Local)
	inside := now.AddDate(0, 0, -5)
	outside := now.AddDate(0, 0, -9)
	repo.Seed(model.Order{TrackingNumber: "RCKEEP", Status: model.OrderStatusScanned, ArchivedAt: &inside})
	repo.Seed(model.Order{TrackingNumber: "RCPURGE", Status: model.OrderStatusScanned, ArchivedAt: &outside})

	uc := NewOrderUseCase(repo)
	uc.now = func() time.Time { return now }

	count, err := uc.PurgeHistory(context.Background(), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected only rows past the retention window purged, got %d", count)
	}
	if _, err := repo.GetArchivedByTracking(context.Background(), "RCKEEP"); err != nil {
		t.Fatalf("row inside the window must survive: %v", err)
	}
}

func TestClearAllRemovesEverything(t *testing.T) {
	repo := testhelpers.NewOrderRepositoryFake()
	archivedAt := time.Now()
	repo.Seed(model.Order{TrackingNumber: "RC1", Status: model.OrderStatusPending})
	repo.Seed(model.Order{TrackingNumber: "RC2", Status: model.OrderStatusScanned, ArchivedAt: &archivedAt})

	uc := NewOrderUseCase(repo)
	if err := uc.ClearAll(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	stats, err := uc.Stats(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.Total != 0 {
		t.Fatalf("expected empty store, got %+v", stats)
	}
	if orders, _ := uc.History(context.Background(), 365); len(orders) != 0 {
		t.Fatalf("expected empty history, got %d rows", len(orders))
	}
}
