package dto

// Scan outcome values returned to the scan handler collaborator.
const (
	ScanOutcomeSuccess        = "success"
	ScanOutcomeNotFound       = "notFound"
	ScanOutcomeAlreadyScanned = "alreadyScanned"
	ScanOutcomeError          = "error"
)

// ScanRequest carries one tracking number from manual input or camera decode.
type ScanRequest struct {
	TrackingNumber string `json:"trackingNumber" binding:"required"`
}

// ScanResponse reports the scan outcome plus the matched order, if any.
type ScanResponse struct {
	Outcome string         `json:"outcome"`
	Order   *OrderResponse `json:"order,omitempty"`
}
