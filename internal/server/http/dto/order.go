package dto

import (
	"time"

	"github.com/google/uuid"
)

// OrderResponse is the wire form of one order record.
type OrderResponse struct {
	ID                uuid.UUID  `json:"id"`
	OrderID           string     `json:"orderId,omitempty"`
	TrackingNumber    string     `json:"trackingNumber"`
	VariationName     string     `json:"variationName,omitempty"`
	ReceiverName      string     `json:"receiverName,omitempty"`
	BuyerUserName     string     `json:"buyerUserName,omitempty"`
	Jumlah            string     `json:"jumlah,omitempty"`
	ShippingMethod    string     `json:"shippingMethod,omitempty"`
	Status            string     `json:"status"`
	ScannedAt         *time.Time `json:"scannedAt,omitempty"`
	OrderCreationDate *time.Time `json:"orderCreationDate,omitempty"`
	CreatedAt         time.Time  `json:"createdAt"`
	ArchivedAt        *time.Time `json:"archivedAt,omitempty"`
	Deadline          *time.Time `json:"deadline,omitempty"`
	Late              bool       `json:"late,omitempty"`
}

// StatsResponse summarizes the active worklist.
type StatsResponse struct {
	Total   int `json:"total"`
	Scanned int `json:"scanned"`
	Pending int `json:"pending"`
}

// IDsRequest targets a set of orders by identifier.
type IDsRequest struct {
	IDs []uuid.UUID `json:"ids"`
}

// ArchiveRequest targets orders to move into history. Empty IDs archive
// the whole active set.
type ArchiveRequest struct {
	IDs         []uuid.UUID `json:"ids"`
	ScannedOnly bool        `json:"scannedOnly"`
}

// PurgeRequest optionally overrides the retention window.
type PurgeRequest struct {
	Days int `json:"days"`
}

// CountResponse reports how many rows a bulk operation actually changed.
type CountResponse struct {
	Count int64 `json:"count"`
}
