package model

import "time"

// ImportCandidate is one validated row extracted from an imported file,
// ready to be reconciled against the store.
type ImportCandidate struct {
	TrackingNumber    string
	OrderID           string
	VariationName     string
	ReceiverName      string
	BuyerUserName     string
	Jumlah            string
	ShippingMethod    string
	OrderCreationDate *time.Time
}

// ImportError records the fate of a candidate that could not be stored.
type ImportError struct {
	TrackingNumber string
	Reason         string
}

// ImportSummary aggregates the outcome of one import batch. Every row of
// the batch is accounted for in exactly one of the four buckets.
type ImportSummary struct {
	Inserted   int
	Restored   int
	Duplicates []string
	Errors     []ImportError
}

// RowError reports an extraction problem attributed to a source row.
// Row numbering starts at 2: row 1 is the header line.
type RowError struct {
	Row    int
	Reason string
}
