package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fadheel-alt/resi-checker/internal/domain/model"
	testhelpers "github.com/fadheel-alt/resi-checker/internal/test"
)

func TestSuggestMapping(t *testing.T) {
	tests := []struct {
		name         string
		headers      []string
		wantTracking string
		wantOrder    string
	}{
		{
			name:         "shopee export headers",
			headers:      []string{"No. Pesanan", "no_resi", "order_sn"},
			wantTracking: "no_resi",
			wantOrder:    "order_sn",
		},
		{
			name:         "case insensitive with padding",
			headers:      []string{" Tracking_Number ", "OrderID"},
			wantTracking: " Tracking_Number ",
			wantOrder:    "OrderID",
		},
		{
			name:    "nothing recognized",
			headers: []string{"name", "address"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tracking, order := SuggestMapping(tt.headers)
			if tracking != tt.wantTracking || order != tt.wantOrder {
				t.Fatalf("SuggestMapping() = (%q, %q), want (%q, %q)", tracking, order, tt.wantTracking, tt.wantOrder)
			}
		})
	}
}

func TestExtractCandidates(t *testing.T) {
	rows := []map[string]string{
		{"resi": " RC001 ", "order_sn": "SN1"},
		{"resi": "", "order_sn": "SN2"},
		{"resi": "RC001", "order_sn": "SN3"},
		{"resi": "RC002", "order_sn": " SN4 "},
	}

	candidates, rowErrors := ExtractCandidates(rows, "resi", "order_sn")

	if len(candidates) != 2 {
		t.Fatalf("expected 2 candidates, got %d", len(candidates))
	}
	if candidates[0].TrackingNumber != "RC001" || candidates[0].OrderID != "SN1" {
		t.Fatalf("first candidate not trimmed or first occurrence lost: %+v", candidates[0])
	}
	if candidates[1].TrackingNumber != "RC002" || candidates[1].OrderID != "SN4" {
		t.Fatalf("unexpected second candidate: %+v", candidates[1])
	}

	if len(rowErrors) != 2 {
		t.Fatalf("expected 2 row errors, got %d: %+v", len(rowErrors), rowErrors)
	}
	// First data row is row 2; the empty tracking sits in row 3, the
	// duplicate in row 4.
	if rowErrors[0].Row != 3 {
		t.Fatalf("empty tracking attributed to row %d, want 3", rowErrors[0].Row)
	}
	if rowErrors[1].Row != 4 {
		t.Fatalf("duplicate attributed to row %d, want 4", rowErrors[1].Row)
	}
}

func TestImportClassifiesCandidates(t *testing.T) {
	repo := testhelpers.NewOrderRepositoryFake()
	archivedAt := time.Now().Add(-time.Hour)
	repo.Seed(model.Order{TrackingNumber: "RCDUP", Status: model.OrderStatusPending})
	repo.Seed(model.Order{TrackingNumber: "RCARCH", Status: model.OrderStatusScanned, ArchivedAt: &archivedAt})

	uc := NewImportUseCase(repo)
	summary, err := uc.Import(context.Background(), []model.ImportCandidate{
		{TrackingNumber: "RCNEW", OrderID: "SN1"},
		{TrackingNumber: "RCDUP", OrderID: "SN2"},
		{TrackingNumber: "RCARCH", OrderID: "SN3", ReceiverName: "Budi"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if summary.Inserted != 1 {
		t.Fatalf("expected 1 inserted, got %d", summary.Inserted)
	}
	if summary.Restored != 1 {
		t.Fatalf("expected 1 restored, got %d", summary.Restored)
	}
	if len(summary.Duplicates) != 1 || summary.Duplicates[0] != "RCDUP" {
		t.Fatalf("unexpected duplicates: %v", summary.Duplicates)
	}
	if len(summary.Errors) != 0 {
		t.Fatalf("unexpected errors: %+v", summary.Errors)
	}

	restored, err := repo.GetActiveByTracking(context.Background(), "RCARCH")
	if err != nil {
		t.Fatalf("restored order must be active again: %v", err)
	}
	if restored.Status != model.OrderStatusPending {
		t.Fatalf("restore must reset status to pending, got %s", restored.Status)
	}
	if restored.ReceiverName != "Budi" {
		t.Fatalf("restore must overwrite fields from the import, got %q", restored.ReceiverName)
	}
}

func TestImportDeduplicatesWithinBatch(t *testing.T) {
	repo := testhelpers.NewOrderRepositoryFake()
	uc := NewImportUseCase(repo)

	summary, err := uc.Import(context.Background(), []model.ImportCandidate{
		{TrackingNumber: "RC001", OrderID: "SN1"},
		{TrackingNumber: "RC001", OrderID: "SN2"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if summary.Inserted != 1 {
		t.Fatalf("expected first occurrence inserted, got %d", summary.Inserted)
	}
	if len(summary.Errors) != 1 || summary.Errors[0].TrackingNumber != "RC001" {
		t.Fatalf("expected one in-batch duplicate error, got %+v", summary.Errors)
	}

	stored, err := repo.GetActiveByTracking(context.Background(), "RC001")
	if err != nil {
		t.Fatalf("inserted order missing: %v", err)
	}
	if stored.OrderID != "SN1" {
		t.Fatalf("first occurrence must win, got order id %q", stored.OrderID)
	}
}

func TestImportReportsEmptyTracking(t *testing.T) {
	uc := NewImportUseCase(testhelpers.NewOrderRepositoryFake())

	summary, err := uc.Import(context.Background(), []model.ImportCandidate{
		{TrackingNumber: "   "},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.Inserted != 0 || len(summary.Errors) != 1 {
		t.Fatalf("expected one error and no inserts, got %+v", summary)
	}
}

func TestImportContinuesPastStorageFailures(t *testing.T) {
	repo := testhelpers.NewOrderRepositoryFake()
	repo.Err = errors.New("connection refused")

	uc := NewImportUseCase(repo)
	summary, err := uc.Import(context.Background(), []model.ImportCandidate{
		{TrackingNumber: "RC001"},
		{TrackingNumber: "RC002"},
	})
	if err != nil {
		t.Fatalf("batch must not abort on storage failures: %v", err)
	}
	if len(summary.Errors) != 2 {
		t.Fatalf("expected every candidate reported, got %+v", summary.Errors)
	}
}
