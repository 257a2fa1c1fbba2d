package pricing

import (
	"errors"
	"fmt"
)

// Location is one of the two kitchen/delivery origins. Each location carries
// its own flat price list and delivery fee.
type Location string

const (
	LocationThessaloniki Location = "A"
	LocationMykonos      Location = "B"
)

// Flat delivery fee per location, minor units.
var deliveryFeeCents = map[Location]int64{
	LocationThessaloniki: 10000,
	LocationMykonos:      15000,
}

var (
	ErrInvalidLocation = errors.New("invalid location")
	ErrUnknownMenuItem = errors.New("unknown menu item")
	ErrInvalidQuantity = errors.New("invalid quantity")
	ErrNoSuchLineItem  = errors.New("no such line item")
)

// MenuItem is catalog reference data. Prices are integers in minor units,
// one entry per location.
type MenuItem struct {
	ID              string             `json:"id"`
	Name            string             `json:"name"`
	Unit            string             `json:"unit,omitempty"`
	PriceByLocation map[Location]int64 `json:"price_by_location"`
}

func (m MenuItem) validate() error {
	if m.ID == "" {
		return fmt.Errorf("menu item without id")
	}
	for _, loc := range []Location{LocationThessaloniki, LocationMykonos} {
		p, ok := m.PriceByLocation[loc]
		if !ok {
			return fmt.Errorf("menu item %s: missing price for location %s", m.ID, loc)
		}
		if p < 0 {
			return fmt.Errorf("menu item %s: negative price for location %s", m.ID, loc)
		}
	}
	return nil
}

// LineItem is one cart row. ResolvedPriceCents is set when the item is added
// (or when the session location changes) and is otherwise never recomputed.
type LineItem struct {
	MenuItemID          string `json:"menu_item_id"`
	Name                string `json:"name"`
	Quantity            int64  `json:"quantity"`
	ResolvedPriceCents  int64  `json:"resolved_price_cents"`
	SpecialInstructions string `json:"special_instructions,omitempty"`
}

// Session is the per-order pricing state. It is the single authority on what
// a line item and an order cost at every step of the order flow; nothing else
// in the service computes a price.
//
// A Session holds plain in-memory state with no locks and no globals: one
// instance belongs to exactly one in-progress order. Concurrent order flows
// each get their own instance (see the cache adapter, which serializes state
// per session key).
type Session struct {
	id        string
	location  Location
	catalog   map[string]MenuItem
	resolved  map[string]int64 // menu item id -> price frozen for this location
	lineItems []LineItem
}

// NewSession starts an empty session at the given location.
func NewSession(id string, loc Location) (*Session, error) {
	if _, ok := deliveryFeeCents[loc]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidLocation, loc)
	}
	return &Session{
		id:       id,
		location: loc,
		catalog:  map[string]MenuItem{},
		resolved: map[string]int64{},
	}, nil
}

func (s *Session) ID() string         { return s.id }
func (s *Session) Location() Location { return s.location }

// LineItems returns a copy; mutations go through the Session methods.
func (s *Session) LineItems() []LineItem {
	out := make([]LineItem, len(s.lineItems))
	copy(out, s.lineItems)
	return out
}

// LoadCatalog replaces the catalog used for lookups. Prices already resolved
// in this session stay frozen: a customer keeps the price they saw even if
// the menu was edited mid-session. Fresh resolutions see the new numbers.
func (s *Session) LoadCatalog(items []MenuItem) error {
	next := make(map[string]MenuItem, len(items))
	for _, it := range items {
		if err := it.validate(); err != nil {
			return err
		}
		next[it.ID] = it
	}
	s.catalog = next
	return nil
}

// SetLocation switches the session to loc, wipes the resolved-price cache and
// reprices every existing line item. New prices are computed before anything
// is committed: if any line's menu item is missing from the catalog the call
// fails and the session is left exactly as it was.
func (s *Session) SetLocation(loc Location) error {
	if _, ok := deliveryFeeCents[loc]; !ok {
		return fmt.Errorf("%w: %q", ErrInvalidLocation, loc)
	}
	repriced := make([]int64, len(s.lineItems))
	for i, li := range s.lineItems {
		item, ok := s.catalog[li.MenuItemID]
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownMenuItem, li.MenuItemID)
		}
		repriced[i] = item.PriceByLocation[loc]
	}

	s.location = loc
	s.resolved = map[string]int64{}
	for i := range s.lineItems {
		s.lineItems[i].ResolvedPriceCents = repriced[i]
		s.resolved[s.lineItems[i].MenuItemID] = repriced[i]
	}
	return nil
}

// ResolvePrice returns the minor-unit price of a menu item at the current
// location. The first resolution per item is looked up in the catalog and
// cached; later calls return the cached value, so the same item always quotes
// the same price within a session regardless of catalog reloads.
func (s *Session) ResolvePrice(menuItemID string) (int64, error) {
	if p, ok := s.resolved[menuItemID]; ok {
		return p, nil
	}
	item, ok := s.catalog[menuItemID]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownMenuItem, menuItemID)
	}
	p := item.PriceByLocation[s.location]
	s.resolved[menuItemID] = p
	return p, nil
}

// AddLineItem appends a cart row priced via ResolvePrice.
func (s *Session) AddLineItem(menuItemID string, quantity int64, specialInstructions string) error {
	if quantity <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidQuantity, quantity)
	}
	price, err := s.ResolvePrice(menuItemID)
	if err != nil {
		return err
	}
	name := s.catalog[menuItemID].Name
	s.lineItems = append(s.lineItems, LineItem{
		MenuItemID:          menuItemID,
		Name:                name,
		Quantity:            quantity,
		ResolvedPriceCents:  price,
		SpecialInstructions: specialInstructions,
	})
	return nil
}

func (s *Session) RemoveLineItem(index int) error {
	if index < 0 || index >= len(s.lineItems) {
		return fmt.Errorf("%w: index %d", ErrNoSuchLineItem, index)
	}
	s.lineItems = append(s.lineItems[:index], s.lineItems[index+1:]...)
	return nil
}

// UpdateQuantity changes a row's quantity. It never touches the resolved
// price: quantity changes are not a repricing event.
func (s *Session) UpdateQuantity(index int, quantity int64) error {
	if index < 0 || index >= len(s.lineItems) {
		return fmt.Errorf("%w: index %d", ErrNoSuchLineItem, index)
	}
	if quantity <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidQuantity, quantity)
	}
	s.lineItems[index].Quantity = quantity
	return nil
}

// SubtotalCents sums resolved price * quantity over all rows. Recomputed on
// every call; never memoized.
func (s *Session) SubtotalCents() int64 {
	var sum int64
	for _, li := range s.lineItems {
		sum += li.ResolvedPriceCents * li.Quantity
	}
	return sum
}

func (s *Session) DeliveryFeeCents() int64 {
	return deliveryFeeCents[s.location]
}

func (s *Session) TotalCents() int64 {
	return s.SubtotalCents() + s.DeliveryFeeCents()
}
