package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/airgourmethellas/catering-api/internal/pricing"
	"github.com/airgourmethellas/catering-api/internal/usecase"
)

type OrderHandler struct {
	submit *usecase.SubmitOrder
	query  usecase.OrderRepo
}

func NewOrderHandler(submit *usecase.SubmitOrder, query usecase.OrderRepo) *OrderHandler {
	return &OrderHandler{submit: submit, query: query}
}

type submitOrderReq struct {
	SessionID  string `json:"sessionId" binding:"required"`
	CustomerID string `json:"customerId" binding:"required"`
}

type submitOrderResp struct {
	OrderID        string `json:"orderId"`
	Status         string `json:"status"`
	TotalCents     int64  `json:"totalCents"`
	TotalFormatted string `json:"totalFormatted"`
}

// SubmitOrder freezes a pricing session into a persisted order.
func (h *OrderHandler) SubmitOrder(c *gin.Context) {
	var req submitOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request"})
		return
	}

	idemKey := c.GetHeader("X-Idempotency-Key") // prevent duplicated requests

	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	out, err := h.submit.Execute(ctx, usecase.SubmitOrderInput{
		SessionID:      req.SessionID,
		CustomerID:     req.CustomerID,
		IdempotencyKey: idemKey,
	})

	if err != nil {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, usecase.ErrDuplicate):
			status = http.StatusConflict
		case errors.Is(err, usecase.ErrSessionNotFound):
			status = http.StatusNotFound
		case errors.Is(err, usecase.ErrEmptyOrder):
			status = http.StatusUnprocessableEntity
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusAccepted, submitOrderResp{
		OrderID:        out.OrderID,
		Status:         out.Status,
		TotalCents:     out.TotalCents,
		TotalFormatted: pricing.FormatMinorUnits(out.TotalCents),
	})
}

func (h *OrderHandler) GetOrderByID(c *gin.Context) {
	id := c.Param("id")
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	rec, err := h.query.GetByID(ctx, id)
	if err != nil || rec == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not_found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"id":                 rec.ID,
		"customer_id":        rec.CustomerID,
		"location":           rec.Location,
		"status":             rec.Status,
		"subtotal_cents":     rec.SubtotalCents,
		"delivery_fee_cents": rec.DeliveryFeeCents,
		"total_cents":        rec.TotalCents,
		"items_json":         rec.ItemsJSON,
	})
}
