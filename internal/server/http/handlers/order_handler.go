package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fadheel-alt/resi-checker/internal/server/http/dto"
)

// OrderHandler serves the active worklist: listings, stats, scan resets,
// archiving and the legacy full clear.
type OrderHandler struct {
	reports   ReportFacade
	lifecycle LifecycleFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(reports ReportFacade, lifecycle LifecycleFacade) *OrderHandler {
	return &OrderHandler{reports: reports, lifecycle: lifecycle}
}

// List handles GET /api/orders.
func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.reports.ActiveOrders(c.Request.Context())
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	response := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, toActiveOrderResponse(o))
	}

	c.JSON(http.StatusOK, response)
}

// Stats handles GET /api/orders/stats.
func (h *OrderHandler) Stats(c *gin.Context) {
	stats, err := h.reports.Stats(c.Request.Context())
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, dto.StatsResponse{
		Total:   stats.Total,
		Scanned: stats.Scanned,
		Pending: stats.Pending,
	})
}

// ResetScan handles POST /api/orders/reset-scan. An empty or omitted id
// list resets every active scanned order.
func (h *OrderHandler) ResetScan(c *gin.Context) {
	var req dto.IDsRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
	}

	count, err := h.lifecycle.ResetScan(c.Request.Context(), req.IDs)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, dto.CountResponse{Count: count})
}

// Archive handles POST /api/orders/archive. Empty ids archive the whole
// active set; scannedOnly narrows explicit targets to completed orders.
func (h *OrderHandler) Archive(c *gin.Context) {
	var req dto.ArchiveRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
	}

	count, err := h.lifecycle.Archive(c.Request.Context(), req.IDs, req.ScannedOnly)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, dto.CountResponse{Count: count})
}

// ClearAll handles DELETE /api/orders, the legacy full-reset escape hatch.
func (h *OrderHandler) ClearAll(c *gin.Context) {
	if err := h.lifecycle.ClearAll(c.Request.Context()); err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Status(http.StatusNoContent)
}
