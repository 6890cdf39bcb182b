package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fadheel-alt/resi-checker/internal/domain/model"
	"github.com/fadheel-alt/resi-checker/internal/server/http/dto"
)

// ImportHandler manages import pipeline endpoints.
type ImportHandler struct {
	facade ImportFacade
}

// NewImportHandler constructs ImportHandler.
func NewImportHandler(facade ImportFacade) *ImportHandler {
	return &ImportHandler{facade: facade}
}

// Import handles POST /api/orders/import. Batch endpoints always answer
// 200 with a per-row summary; individual row failures never abort.
func (h *ImportHandler) Import(c *gin.Context) {
	var req dto.ImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	candidates := make([]model.ImportCandidate, 0, len(req.Orders))
	for _, payload := range req.Orders {
		candidates = append(candidates, payload.ToCandidate())
	}

	summary, err := h.facade.ImportOrders(c.Request.Context(), candidates)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, toImportResponse(summary))
}

// Extract handles POST /api/orders/extract: pulls candidates out of parsed
// tabular rows, auto-detecting columns when no mapping is supplied.
func (h *ImportHandler) Extract(c *gin.Context) {
	var req dto.ExtractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	trackingColumn, orderColumn := req.TrackingColumn, req.OrderColumn
	if trackingColumn == "" {
		suggestedTracking, suggestedOrder := h.facade.SuggestMapping(req.Headers)
		trackingColumn = suggestedTracking
		if orderColumn == "" {
			orderColumn = suggestedOrder
		}
	}
	if trackingColumn == "" {
		c.Status(http.StatusBadRequest)
		return
	}

	candidates, rowErrors := h.facade.ExtractCandidates(req.Rows, trackingColumn, orderColumn)

	resp := dto.ExtractResponse{
		Orders:         make([]dto.ImportOrderPayload, 0, len(candidates)),
		Errors:         make([]dto.RowErrorResponse, 0, len(rowErrors)),
		TrackingColumn: trackingColumn,
		OrderColumn:    orderColumn,
	}
	for _, candidate := range candidates {
		resp.Orders = append(resp.Orders, dto.ImportOrderPayload{
			TrackingNumber: candidate.TrackingNumber,
			OrderID:        candidate.OrderID,
		})
	}
	for _, rowErr := range rowErrors {
		resp.Errors = append(resp.Errors, dto.RowErrorResponse{Row: rowErr.Row, Reason: rowErr.Reason})
	}

	c.JSON(http.StatusOK, resp)
}

func toImportResponse(summary *model.ImportSummary) dto.ImportResponse {
	resp := dto.ImportResponse{
		Inserted:   summary.Inserted,
		Restored:   summary.Restored,
		Duplicates: make([]string, 0, len(summary.Duplicates)),
		Errors:     make([]dto.ImportErrorResponse, 0, len(summary.Errors)),
	}
	resp.Duplicates = append(resp.Duplicates, summary.Duplicates...)
	for _, importErr := range summary.Errors {
		resp.Errors = append(resp.Errors, dto.ImportErrorResponse{
			TrackingNumber: importErr.TrackingNumber,
			Reason:         importErr.Reason,
		})
	}
	return resp
}
