package usecase

import (
	"context"

	"github.com/airgourmethellas/catering-api/internal/pricing"
)

type fakeOrderRepo struct {
	orders map[string]*OrderRecord
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: map[string]*OrderRecord{}}
}

func (r *fakeOrderRepo) Create(_ context.Context, o *OrderRecord) error {
	cp := *o
	r.orders[o.ID] = &cp
	return nil
}

func (r *fakeOrderRepo) GetByID(_ context.Context, id string) (*OrderRecord, error) {
	rec, ok := r.orders[id]
	if !ok {
		return nil, ErrOrderNotFound
	}
	cp := *rec
	return &cp, nil
}

func (r *fakeOrderRepo) UpdateStatus(_ context.Context, id, toStatus string) error {
	rec, ok := r.orders[id]
	if !ok {
		return ErrOrderNotFound
	}
	rec.Status = toStatus
	return nil
}

func (r *fakeOrderRepo) UpdateStatusIf(_ context.Context, id, fromStatus, toStatus string) (bool, error) {
	rec, ok := r.orders[id]
	if !ok || rec.Status != fromStatus {
		return false, nil
	}
	rec.Status = toStatus
	return true, nil
}

type fakeSessionStore struct {
	states map[string]pricing.State
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{states: map[string]pricing.State{}}
}

func (s *fakeSessionStore) Save(_ context.Context, st pricing.State) error {
	s.states[st.ID] = st
	return nil
}

func (s *fakeSessionStore) Load(_ context.Context, id string) (pricing.State, bool, error) {
	st, ok := s.states[id]
	return st, ok, nil
}

func (s *fakeSessionStore) Delete(_ context.Context, id string) error {
	delete(s.states, id)
	return nil
}

type fakeIdemStore struct {
	locked map[string]bool
	known  map[string]string
}

func newFakeIdemStore() *fakeIdemStore {
	return &fakeIdemStore{locked: map[string]bool{}, known: map[string]string{}}
}

func (s *fakeIdemStore) TryLock(_ context.Context, scope, key string) (bool, error) {
	k := scope + ":" + key
	if s.locked[k] {
		return false, nil
	}
	s.locked[k] = true
	return true, nil
}

func (s *fakeIdemStore) Remember(_ context.Context, scope, key, value string) error {
	s.known[scope+":"+key] = value
	return nil
}

func (s *fakeIdemStore) Recall(_ context.Context, scope, key string) (string, bool, error) {
	v, ok := s.known[scope+":"+key]
	return v, ok, nil
}

type fakeOutbox struct {
	payloads [][]byte
}

func (o *fakeOutbox) InsertOrderSubmitted(_ context.Context, payload []byte) error {
	o.payloads = append(o.payloads, payload)
	return nil
}

type fakeQueue struct {
	published []SubmittedMsg
}

func (q *fakeQueue) PublishSubmitted(_ context.Context, msg SubmittedMsg) error {
	q.published = append(q.published, msg)
	return nil
}

type fakeCatalogRepo struct {
	items []pricing.MenuItem
	lists int
}

func (r *fakeCatalogRepo) List(_ context.Context) ([]pricing.MenuItem, error) {
	r.lists++
	return r.items, nil
}

func (r *fakeCatalogRepo) Upsert(_ context.Context, item pricing.MenuItem) error {
	for i := range r.items {
		if r.items[i].ID == item.ID {
			r.items[i] = item
			return nil
		}
	}
	r.items = append(r.items, item)
	return nil
}

type fakeCatalogCache struct {
	items []pricing.MenuItem
	valid bool
}

func (c *fakeCatalogCache) Get(_ context.Context) ([]pricing.MenuItem, bool, error) {
	return c.items, c.valid, nil
}

func (c *fakeCatalogCache) Set(_ context.Context, items []pricing.MenuItem) error {
	c.items, c.valid = items, true
	return nil
}

func (c *fakeCatalogCache) Invalidate(_ context.Context) error {
	c.items, c.valid = nil, false
	return nil
}

type fakeInvoiceRepo struct {
	byOrder map[string]*InvoiceRecord
}

func newFakeInvoiceRepo() *fakeInvoiceRepo {
	return &fakeInvoiceRepo{byOrder: map[string]*InvoiceRecord{}}
}

func (r *fakeInvoiceRepo) Create(_ context.Context, inv *InvoiceRecord) error {
	cp := *inv
	r.byOrder[inv.OrderID] = &cp
	return nil
}

func (r *fakeInvoiceRepo) GetByOrderID(_ context.Context, orderID string) (*InvoiceRecord, error) {
	inv, ok := r.byOrder[orderID]
	if !ok {
		return nil, ErrOrderNotFound
	}
	cp := *inv
	return &cp, nil
}

type fakeInventoryRepo struct {
	stock    map[string]int64
	deducted map[string]bool
}

func (r *fakeInventoryRepo) MarkDeducted(_ context.Context, orderID string) (bool, error) {
	if r.deducted == nil {
		r.deducted = map[string]bool{}
	}
	if r.deducted[orderID] {
		return false, nil
	}
	r.deducted[orderID] = true
	return true, nil
}

func (r *fakeInventoryRepo) Deduct(_ context.Context, menuItemID string, quantity int64) (bool, error) {
	if r.stock[menuItemID] < quantity {
		return false, nil
	}
	r.stock[menuItemID] -= quantity
	return true, nil
}

func menuFixture() []pricing.MenuItem {
	return []pricing.MenuItem{
		{
			ID:   "7",
			Name: "Greek salad",
			PriceByLocation: map[pricing.Location]int64{
				pricing.LocationThessaloniki: 300,
				pricing.LocationMykonos:      500,
			},
		},
		{
			ID:   "12",
			Name: "Club sandwich",
			PriceByLocation: map[pricing.Location]int64{
				pricing.LocationThessaloniki: 1250,
				pricing.LocationMykonos:      1400,
			},
		},
	}
}
