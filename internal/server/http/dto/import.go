package dto

import (
	"strings"
	"time"

	"github.com/fadheel-alt/resi-checker/internal/domain/model"
)

// ImportOrderPayload is one candidate row as posted by the import pipeline.
// OrderCreationDate is an ISO-8601 string; an unparseable value is treated
// as absent, which simply means the order gets no ship deadline.
type ImportOrderPayload struct {
	TrackingNumber    string `json:"trackingNumber"`
	OrderID           string `json:"orderId"`
	VariationName     string `json:"variationName"`
	ReceiverName      string `json:"receiverName"`
	BuyerUserName     string `json:"buyerUserName"`
	Jumlah            string `json:"jumlah"`
	ShippingMethod    string `json:"shippingMethod"`
	OrderCreationDate string `json:"orderCreationDate"`
}

// ImportRequest carries one parsed batch.
type ImportRequest struct {
	Orders []ImportOrderPayload `json:"orders" binding:"required"`
}

// ImportErrorResponse reports one candidate that could not be stored.
type ImportErrorResponse struct {
	TrackingNumber string `json:"trackingNumber,omitempty"`
	Reason         string `json:"reason"`
}

// ImportResponse aggregates the fate of every row in the batch.
type ImportResponse struct {
	Inserted   int                   `json:"inserted"`
	Restored   int                   `json:"restored"`
	Duplicates []string              `json:"duplicates"`
	Errors     []ImportErrorResponse `json:"errors"`
}

// ExtractRequest carries parsed tabular rows plus the column mapping to
// pull candidates from. Headers are used for mapping suggestions when the
// mapping fields are left empty.
type ExtractRequest struct {
	Headers        []string            `json:"headers"`
	Rows           []map[string]string `json:"rows" binding:"required"`
	TrackingColumn string              `json:"trackingColumn"`
	OrderColumn    string              `json:"orderColumn"`
}

// RowErrorResponse attributes an extraction problem to a source file row.
type RowErrorResponse struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}

// ExtractResponse returns deduplicated candidates plus per-row errors and
// the column mapping that was applied.
type ExtractResponse struct {
	Orders         []ImportOrderPayload `json:"orders"`
	Errors         []RowErrorResponse   `json:"errors"`
	TrackingColumn string               `json:"trackingColumn"`
	OrderColumn    string               `json:"orderColumn"`
}

// Layouts accepted for orderCreationDate. Order sheets come both with and
// without a zone offset; zone-less stamps are read as local warehouse time.
var creationDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseCreationDate interprets an ISO-8601-ish timestamp, returning nil
// for empty or unparseable input.
func ParseCreationDate(value string) *time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	for _, layout := range creationDateLayouts {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return &t
		}
	}
	return nil
}

// ToCandidate converts the wire payload into a validated import candidate.
func (p ImportOrderPayload) ToCandidate() model.ImportCandidate {
	return model.ImportCandidate{
		TrackingNumber:    strings.TrimSpace(p.TrackingNumber),
		OrderID:           strings.TrimSpace(p.OrderID),
		VariationName:     p.VariationName,
		ReceiverName:      p.ReceiverName,
		BuyerUserName:     p.BuyerUserName,
		Jumlah:            p.Jumlah,
		ShippingMethod:    p.ShippingMethod,
		OrderCreationDate: ParseCreationDate(p.OrderCreationDate),
	}
}
