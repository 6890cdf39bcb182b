package usecase

import (
	"time"

	"github.com/fadheel-alt/resi-checker/internal/domain/model"
)

// Orders created before noon ship the same day; later ones ship next day.
const shipCutoffHour = 12

// Deadline computes the latest acceptable ship time for an order created at
// the given instant: 23:59:59.999 of the creation day when created before
// the noon cutoff, the next day otherwise. A nil creation date has no
// deadline.
func Deadline(orderCreationDate *time.Time) *time.Time {
	if orderCreationDate == nil {
		return nil
	}

	created := *orderCreationDate
	deadline := time.Date(created.Year(), created.Month(), created.Day(),
		23, 59, 59, int(999*time.Millisecond), created.Location())
	if created.Hour() >= shipCutoffHour {
		deadline = deadline.AddDate(0, 0, 1)
	}
	return &deadline
}

// IsLate reports whether a still-pending order has missed its deadline.
// A scanned order is never late: completion supersedes timeliness.
func IsLate(deadline *time.Time, status model.OrderStatus, now time.Time) bool {
	if deadline == nil {
		return false
	}
	if status != model.OrderStatusPending {
		return false
	}
	return now.After(*deadline)
}
