package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/fadheel-alt/resi-checker/internal/domain/model"
	"github.com/fadheel-alt/resi-checker/internal/server/http/dto"
)

func toOrderResponse(order model.Order) dto.OrderResponse {
	return dto.OrderResponse{
		ID:                order.ID,
		OrderID:           order.OrderID,
		TrackingNumber:    order.TrackingNumber,
		VariationName:     order.VariationName,
		ReceiverName:      order.ReceiverName,
		BuyerUserName:     order.BuyerUserName,
		Jumlah:            order.Jumlah,
		ShippingMethod:    order.ShippingMethod,
		Status:            string(order.Status),
		ScannedAt:         order.ScannedAt,
		OrderCreationDate: order.OrderCreationDate,
		CreatedAt:         order.CreatedAt,
		ArchivedAt:        order.ArchivedAt,
	}
}

func toActiveOrderResponse(order model.ActiveOrder) dto.OrderResponse {
	resp := toOrderResponse(order.Order)
	resp.Deadline = order.Deadline
	resp.Late = order.Late
	return resp
}

// OrderIDParam parses the :id route parameter as UUID; false means the
// handler already wrote a 400 response.
func OrderIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Status(http.StatusBadRequest)
		return uuid.Nil, false
	}
	return id, true
}
