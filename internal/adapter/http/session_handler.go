package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/airgourmethellas/catering-api/internal/pricing"
	"github.com/airgourmethellas/catering-api/internal/usecase"
)

// SessionHandler exposes the pricing-session lifecycle to the portal: start,
// pick a location, build the cart, read the quote. Every price the UI shows
// comes from these responses; the client never computes one.
type SessionHandler struct {
	sessions *usecase.Sessions
}

func NewSessionHandler(sessions *usecase.Sessions) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

type startSessionReq struct {
	Location string `json:"location"`
}

type setLocationReq struct {
	Location string `json:"location" binding:"required"`
}

type addLineItemReq struct {
	MenuItemID          string `json:"menuItemId" binding:"required"`
	Quantity            int64  `json:"quantity" binding:"required"`
	SpecialInstructions string `json:"specialInstructions"`
}

type updateQuantityReq struct {
	Quantity int64 `json:"quantity" binding:"required"`
}

type lineItemView struct {
	MenuItemID          string `json:"menuItemId"`
	Name                string `json:"name"`
	Quantity            int64  `json:"quantity"`
	PriceCents          int64  `json:"priceCents"`
	PriceFormatted      string `json:"priceFormatted"`
	SpecialInstructions string `json:"specialInstructions,omitempty"`
}

type sessionView struct {
	SessionID            string         `json:"sessionId"`
	Location             string         `json:"location"`
	LineItems            []lineItemView `json:"lineItems"`
	SubtotalCents        int64          `json:"subtotalCents"`
	SubtotalFormatted    string         `json:"subtotalFormatted"`
	DeliveryFeeCents     int64          `json:"deliveryFeeCents"`
	DeliveryFeeFormatted string         `json:"deliveryFeeFormatted"`
	TotalCents           int64          `json:"totalCents"`
	TotalFormatted       string         `json:"totalFormatted"`
}

func viewOf(s *pricing.Session) sessionView {
	items := s.LineItems()
	lines := make([]lineItemView, 0, len(items))
	for _, li := range items {
		lines = append(lines, lineItemView{
			MenuItemID:          li.MenuItemID,
			Name:                li.Name,
			Quantity:            li.Quantity,
			PriceCents:          li.ResolvedPriceCents,
			PriceFormatted:      pricing.FormatMinorUnits(li.ResolvedPriceCents),
			SpecialInstructions: li.SpecialInstructions,
		})
	}
	return sessionView{
		SessionID:            s.ID(),
		Location:             string(s.Location()),
		LineItems:            lines,
		SubtotalCents:        s.SubtotalCents(),
		SubtotalFormatted:    pricing.FormatMinorUnits(s.SubtotalCents()),
		DeliveryFeeCents:     s.DeliveryFeeCents(),
		DeliveryFeeFormatted: pricing.FormatMinorUnits(s.DeliveryFeeCents()),
		TotalCents:           s.TotalCents(),
		TotalFormatted:       pricing.FormatMinorUnits(s.TotalCents()),
	}
}

func sessionCtx(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), 2*time.Second)
}

func writeSessionErr(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, usecase.ErrSessionNotFound):
		status = http.StatusNotFound
	case errors.Is(err, pricing.ErrInvalidLocation),
		errors.Is(err, pricing.ErrInvalidQuantity),
		errors.Is(err, pricing.ErrNoSuchLineItem):
		status = http.StatusBadRequest
	case errors.Is(err, pricing.ErrUnknownMenuItem):
		status = http.StatusUnprocessableEntity
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func (h *SessionHandler) Start(c *gin.Context) {
	var req startSessionReq
	_ = c.ShouldBindJSON(&req) // body optional: default location applies

	ctx, cancel := sessionCtx(c)
	defer cancel()

	sess, err := h.sessions.Start(ctx, req.Location)
	if err != nil {
		writeSessionErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, viewOf(sess))
}

func (h *SessionHandler) SetLocation(c *gin.Context) {
	var req setLocationReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request"})
		return
	}

	ctx, cancel := sessionCtx(c)
	defer cancel()

	sess, err := h.sessions.SetLocation(ctx, c.Param("id"), req.Location)
	if err != nil {
		writeSessionErr(c, err)
		return
	}
	c.JSON(http.StatusOK, viewOf(sess))
}

func (h *SessionHandler) AddLineItem(c *gin.Context) {
	var req addLineItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request"})
		return
	}

	ctx, cancel := sessionCtx(c)
	defer cancel()

	sess, err := h.sessions.AddLineItem(ctx, c.Param("id"), req.MenuItemID, req.Quantity, req.SpecialInstructions)
	if err != nil {
		writeSessionErr(c, err)
		return
	}
	c.JSON(http.StatusOK, viewOf(sess))
}

func (h *SessionHandler) UpdateQuantity(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request"})
		return
	}
	var req updateQuantityReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request"})
		return
	}

	ctx, cancel := sessionCtx(c)
	defer cancel()

	sess, err := h.sessions.UpdateQuantity(ctx, c.Param("id"), index, req.Quantity)
	if err != nil {
		writeSessionErr(c, err)
		return
	}
	c.JSON(http.StatusOK, viewOf(sess))
}

func (h *SessionHandler) RemoveLineItem(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request"})
		return
	}

	ctx, cancel := sessionCtx(c)
	defer cancel()

	sess, err := h.sessions.RemoveLineItem(ctx, c.Param("id"), index)
	if err != nil {
		writeSessionErr(c, err)
		return
	}
	c.JSON(http.StatusOK, viewOf(sess))
}

// Quote serves the review/payment screens; read-only.
func (h *SessionHandler) Quote(c *gin.Context) {
	ctx, cancel := sessionCtx(c)
	defer cancel()

	sess, err := h.sessions.Quote(ctx, c.Param("id"))
	if err != nil {
		writeSessionErr(c, err)
		return
	}
	c.JSON(http.StatusOK, viewOf(sess))
}
