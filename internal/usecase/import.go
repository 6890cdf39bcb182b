package usecase

import (
	"context"
	"errors"
	"strings"

	domainErrors "github.com/fadheel-alt/resi-checker/internal/domain/errors"
	"github.com/fadheel-alt/resi-checker/internal/domain/model"
	"github.com/fadheel-alt/resi-checker/internal/domain/repository"
)

// Header aliases recognized by column auto-detection, covering the export
// formats the warehouse receives (Shopee order sheets among them).
var (
	trackingColumnNames = []string{"tracking_number", "tracking_no", "no_resi", "resi", "awb"}
	orderColumnNames    = []string{"order_sn", "order_id", "orderid", "no_pesanan"}
)

// ImportUseCase reconciles parsed order rows against the store.
type ImportUseCase struct {
	orders repository.OrderRepository
}

// NewImportUseCase constructs ImportUseCase.
func NewImportUseCase(orders repository.OrderRepository) *ImportUseCase {
	return &ImportUseCase{orders: orders}
}

// SuggestMapping guesses the tracking and order columns from file headers.
// Returns the matching original header names, or "" when nothing matches.
func SuggestMapping(headers []string) (trackingColumn, orderColumn string) {
	return findColumn(headers, trackingColumnNames), findColumn(headers, orderColumnNames)
}

func findColumn(headers []string, candidates []string) string {
	for _, want := range candidates {
		for _, h := range headers {
			if strings.EqualFold(strings.TrimSpace(h), want) {
				return h
			}
		}
	}
	return ""
}

// ExtractCandidates turns parsed tabular rows into import candidates using
// the given column mapping. Rows with an empty tracking number and later
// occurrences of an already-seen tracking number are reported as row
// errors, never silently merged; the first occurrence wins. Row numbers
// are 1-based file positions where row 1 is the header.
func ExtractCandidates(rows []map[string]string, trackingColumn, orderColumn string) ([]model.ImportCandidate, []model.RowError) {
	var (
		candidates []model.ImportCandidate
		rowErrors  []model.RowError
	)
	seen := make(map[string]struct{}, len(rows))

	for i, row := range rows {
		rowNum := i + 2
		tracking := strings.TrimSpace(row[trackingColumn])
		if tracking == "" {
			rowErrors = append(rowErrors, model.RowError{Row: rowNum, Reason: "empty tracking number"})
			continue
		}
		if _, dup := seen[tracking]; dup {
			rowErrors = append(rowErrors, model.RowError{Row: rowNum, Reason: "duplicate tracking number " + tracking})
			continue
		}
		seen[tracking] = struct{}{}
		candidates = append(candidates, model.ImportCandidate{
			TrackingNumber: tracking,
			OrderID:        strings.TrimSpace(row[orderColumn]),
		})
	}

	return candidates, rowErrors
}

// Import reconciles candidates against the store one at a time in input
// order, so every failure stays attributed to its row. An active order
// with the same tracking number is a duplicate; an archived one is
// restored with the fresh field values; otherwise a new pending order is
// inserted. A storage failure on one candidate never aborts the batch.
func (u *ImportUseCase) Import(ctx context.Context, candidates []model.ImportCandidate) (*model.ImportSummary, error) {
	summary := &model.ImportSummary{}
	seen := make(map[string]struct{}, len(candidates))

	for _, candidate := range candidates {
		tracking := strings.TrimSpace(candidate.TrackingNumber)
		if tracking == "" {
			summary.Errors = append(summary.Errors, model.ImportError{
				Reason: domainErrors.ErrEmptyTrackingNumber.Error(),
			})
			continue
		}
		candidate.TrackingNumber = tracking

		// First occurrence wins inside one batch; repeats are reported
		// before storage is touched.
		if _, dup := seen[tracking]; dup {
			summary.Errors = append(summary.Errors, model.ImportError{
				TrackingNumber: tracking,
				Reason:         domainErrors.ErrDuplicateInBatch.Error(),
			})
			continue
		}
		seen[tracking] = struct{}{}

		u.importOne(ctx, candidate, summary)
	}

	return summary, nil
}

func (u *ImportUseCase) importOne(ctx context.Context, candidate model.ImportCandidate, summary *model.ImportSummary) {
	tracking := candidate.TrackingNumber

	_, err := u.orders.GetActiveByTracking(ctx, tracking)
	switch {
	case err == nil:
		summary.Duplicates = append(summary.Duplicates, tracking)
		return
	case !errors.Is(err, domainErrors.ErrNotFound):
		summary.Errors = append(summary.Errors, model.ImportError{TrackingNumber: tracking, Reason: err.Error()})
		return
	}

	archived, err := u.orders.GetArchivedByTracking(ctx, tracking)
	switch {
	case err == nil:
		if err := u.orders.RestoreWithImport(ctx, archived.ID, candidate); err != nil {
			summary.Errors = append(summary.Errors, model.ImportError{TrackingNumber: tracking, Reason: err.Error()})
			return
		}
		summary.Restored++
		return
	case !errors.Is(err, domainErrors.ErrNotFound):
		summary.Errors = append(summary.Errors, model.ImportError{TrackingNumber: tracking, Reason: err.Error()})
		return
	}

	if _, err := u.orders.Insert(ctx, candidate); err != nil {
		summary.Errors = append(summary.Errors, model.ImportError{TrackingNumber: tracking, Reason: err.Error()})
		return
	}
	summary.Inserted++
}
