package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/fadheel-alt/resi-checker/internal/domain/errors"
	"github.com/fadheel-alt/resi-checker/internal/server/http/dto"
)

// ScanHandler manages the scan endpoint.
type ScanHandler struct {
	facade ScanFacade
}

// NewScanHandler constructs ScanHandler.
func NewScanHandler(facade ScanFacade) *ScanHandler {
	return &ScanHandler{facade: facade}
}

// Scan handles POST /api/scan. Expected domain outcomes (not found,
// already scanned) come back as discriminated results, never as opaque
// server errors.
func (h *ScanHandler) Scan(c *gin.Context) {
	var req dto.ScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	order, err := h.facade.MarkScanned(c.Request.Context(), req.TrackingNumber)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrEmptyTrackingNumber):
			c.Status(http.StatusBadRequest)
		case errors.Is(err, domainErrors.ErrNotFound):
			c.JSON(http.StatusNotFound, dto.ScanResponse{Outcome: dto.ScanOutcomeNotFound})
		case errors.Is(err, domainErrors.ErrAlreadyScanned):
			resp := toOrderResponse(*order)
			c.JSON(http.StatusConflict, dto.ScanResponse{Outcome: dto.ScanOutcomeAlreadyScanned, Order: &resp})
		default:
			c.JSON(http.StatusInternalServerError, dto.ScanResponse{Outcome: dto.ScanOutcomeError})
		}
		return
	}

	resp := toOrderResponse(*order)
	c.JSON(http.StatusOK, dto.ScanResponse{Outcome: dto.ScanOutcomeSuccess, Order: &resp})
}
