package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/airgourmethellas/catering-api/internal/pricing"
	"github.com/airgourmethellas/catering-api/internal/usecase"
)

type CatalogHandler struct {
	catalog *usecase.Catalog
}

func NewCatalogHandler(catalog *usecase.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

type priceView struct {
	Cents     int64  `json:"cents"`
	Formatted string `json:"formatted"`
}

type menuItemView struct {
	ID     string               `json:"id"`
	Name   string               `json:"name"`
	Unit   string               `json:"unit,omitempty"`
	Prices map[string]priceView `json:"prices"`
}

// ListMenu serves the browse screen; prices for both locations so the portal
// can render the picker without a second round trip.
func (h *CatalogHandler) ListMenu(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	items, err := h.catalog.List(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server_error"})
		return
	}

	views := make([]menuItemView, 0, len(items))
	for _, it := range items {
		v := menuItemView{ID: it.ID, Name: it.Name, Unit: it.Unit, Prices: map[string]priceView{}}
		for loc, cents := range it.PriceByLocation {
			v.Prices[string(loc)] = priceView{Cents: cents, Formatted: pricing.FormatMinorUnits(cents)}
		}
		views = append(views, v)
	}
	c.JSON(http.StatusOK, gin.H{"items": views})
}

type upsertMenuItemReq struct {
	ID          string `json:"id" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Unit        string `json:"unit"`
	PriceACents int64  `json:"priceACents" binding:"min=0"`
	PriceBCents int64  `json:"priceBCents" binding:"min=0"`
}

// UpsertMenuItem is the admin write path; it drops the menu cache so the next
// browse sees the new numbers. Sessions in flight keep their resolved prices.
func (h *CatalogHandler) UpsertMenuItem(c *gin.Context) {
	var req upsertMenuItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	err := h.catalog.Upsert(ctx, pricing.MenuItem{
		ID:   req.ID,
		Name: req.Name,
		Unit: req.Unit,
		PriceByLocation: map[pricing.Location]int64{
			pricing.LocationThessaloniki: req.PriceACents,
			pricing.LocationMykonos:      req.PriceBCents,
		},
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server_error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": req.ID})
}
