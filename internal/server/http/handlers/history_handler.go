package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainErrors "github.com/fadheel-alt/resi-checker/internal/domain/errors"
	"github.com/fadheel-alt/resi-checker/internal/server/http/dto"
)

// HistoryHandler serves archived orders: listing, restore, permanent
// delete and the manual retention purge.
type HistoryHandler struct {
	facade LifecycleFacade
}

// NewHistoryHandler constructs HistoryHandler.
func NewHistoryHandler(facade LifecycleFacade) *HistoryHandler {
	return &HistoryHandler{facade: facade}
}

// List handles GET /api/history?days=N.
func (h *HistoryHandler) List(c *gin.Context) {
	days, _ := strconv.Atoi(c.DefaultQuery("days", "7"))

	orders, err := h.facade.History(c.Request.Context(), days)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	response := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, toOrderResponse(o))
	}

	c.JSON(http.StatusOK, response)
}

// Restore handles POST /api/history/:id/restore. The order returns to the
// active set as pending; its prior scan state is retired.
func (h *HistoryHandler) Restore(c *gin.Context) {
	id, ok := OrderIDParam(c)
	if !ok {
		return
	}

	if err := h.facade.Restore(c.Request.Context(), id); err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}

	c.Status(http.StatusNoContent)
}

// Delete handles DELETE /api/history/:id. Only archived orders can be
// hard-deleted; an active or unknown id yields 404.
func (h *HistoryHandler) Delete(c *gin.Context) {
	id, ok := OrderIDParam(c)
	if !ok {
		return
	}

	count, err := h.facade.DeleteArchived(c.Request.Context(), []uuid.UUID{id})
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	if count == 0 {
		c.Status(http.StatusNotFound)
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteBatch handles DELETE /api/history with an explicit id set.
func (h *HistoryHandler) DeleteBatch(c *gin.Context) {
	var req dto.IDsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	count, err := h.facade.DeleteArchived(c.Request.Context(), req.IDs)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNoOrderIDs) {
			c.Status(http.StatusBadRequest)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, dto.CountResponse{Count: count})
}

// Purge handles POST /api/history/purge, the manual retention sweep.
func (h *HistoryHandler) Purge(c *gin.Context) {
	var req dto.PurgeRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
	}

	count, err := h.facade.PurgeHistory(c.Request.Context(), req.Days)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, dto.CountResponse{Count: count})
}
