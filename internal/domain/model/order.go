package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus describes the scan lifecycle of an active order.
type OrderStatus string

const (
	OrderStatusPending OrderStatus = "pending"
	OrderStatusScanned OrderStatus = "scanned"
)

// Order describes a shipped-order row reconciled against barcode scans.
// Archived orders keep their identity so a later re-import restores them
// instead of inserting a second row with the same tracking number.
type Order struct {
	ID                uuid.UUID
	OrderID           string
	TrackingNumber    string
	VariationName     string
	ReceiverName      string
	BuyerUserName     string
	Jumlah            string
	ShippingMethod    string
	Status            OrderStatus
	ScannedAt         *time.Time
	OrderCreationDate *time.Time
	CreatedAt         time.Time
	ArchivedAt        *time.Time
}

// Active reports whether the order participates in scanning, stats and
// the pending list.
func (o *Order) Active() bool {
	return o.ArchivedAt == nil
}

// ActiveOrder pairs an active order with its computed ship deadline.
type ActiveOrder struct {
	Order
	Deadline *time.Time
	Late     bool
}

// Stats summarizes the active set. Pending is always Total-Scanned so all
// three numbers come from a single storage read.
type Stats struct {
	Total   int
	Scanned int
	Pending int
}
