package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/airgourmethellas/catering-api/internal/pricing"
	"github.com/airgourmethellas/catering-api/internal/usecase"
)

type memSessionStore struct {
	states map[string]pricing.State
}

func (s *memSessionStore) Save(_ context.Context, st pricing.State) error {
	s.states[st.ID] = st
	return nil
}

func (s *memSessionStore) Load(_ context.Context, id string) (pricing.State, bool, error) {
	st, ok := s.states[id]
	return st, ok, nil
}

func (s *memSessionStore) Delete(_ context.Context, id string) error {
	delete(s.states, id)
	return nil
}

type memCatalogRepo struct{ items []pricing.MenuItem }

func (r *memCatalogRepo) List(context.Context) ([]pricing.MenuItem, error) { return r.items, nil }
func (r *memCatalogRepo) Upsert(context.Context, pricing.MenuItem) error   { return nil }

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	repo := &memCatalogRepo{items: []pricing.MenuItem{
		{
			ID:   "7",
			Name: "Greek salad",
			PriceByLocation: map[pricing.Location]int64{
				pricing.LocationThessaloniki: 300,
				pricing.LocationMykonos:      500,
			},
		},
	}}
	catalog := usecase.NewCatalog(repo, nil)
	sessions := usecase.NewSessions(&memSessionStore{states: map[string]pricing.State{}}, catalog, pricing.LocationThessaloniki)
	h := NewSessionHandler(sessions)

	r := gin.New()
	r.POST("/v1/sessions", h.Start)
	r.PUT("/v1/sessions/:id/location", h.SetLocation)
	r.POST("/v1/sessions/:id/items", h.AddLineItem)
	r.PUT("/v1/sessions/:id/items/:index", h.UpdateQuantity)
	r.DELETE("/v1/sessions/:id/items/:index", h.RemoveLineItem)
	r.GET("/v1/sessions/:id/quote", h.Quote)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var out map[string]any
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	}
	return w, out
}

func TestSessionFlowOverHTTP(t *testing.T) {
	r := newTestRouter()

	w, out := doJSON(t, r, http.MethodPost, "/v1/sessions", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	id := out["sessionId"].(string)
	require.NotEmpty(t, id)
	assert.Equal(t, "A", out["location"])

	w, out = doJSON(t, r, http.MethodPost, "/v1/sessions/"+id+"/items",
		gin.H{"menuItemId": "7", "quantity": 2})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(600), out["subtotalCents"])
	assert.Equal(t, float64(10600), out["totalCents"])
	assert.Equal(t, "€106.00", out["totalFormatted"])

	// Location switch reprices the cart and the fee.
	w, out = doJSON(t, r, http.MethodPut, "/v1/sessions/"+id+"/location", gin.H{"location": "B"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1000), out["subtotalCents"])
	assert.Equal(t, float64(15000), out["deliveryFeeCents"])

	w, out = doJSON(t, r, http.MethodGet, "/v1/sessions/"+id+"/quote", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(16000), out["totalCents"])
}

func TestSessionHTTPValidation(t *testing.T) {
	r := newTestRouter()

	_, out := doJSON(t, r, http.MethodPost, "/v1/sessions", nil)
	id := out["sessionId"].(string)

	w, _ := doJSON(t, r, http.MethodPut, "/v1/sessions/"+id+"/location", gin.H{"location": "C"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = doJSON(t, r, http.MethodPost, "/v1/sessions/"+id+"/items",
		gin.H{"menuItemId": "7", "quantity": -1})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = doJSON(t, r, http.MethodPost, "/v1/sessions/"+id+"/items",
		gin.H{"menuItemId": "9999", "quantity": 1})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w, _ = doJSON(t, r, http.MethodGet, "/v1/sessions/missing/quote", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = doJSON(t, r, http.MethodDelete, "/v1/sessions/"+id+"/items/0", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code, "empty cart has no row 0")
}
