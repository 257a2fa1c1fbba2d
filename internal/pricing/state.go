package pricing

import "fmt"

// State is the serializable form of a Session: everything that must survive
// between requests. The catalog is not part of it; callers load a fresh
// catalog into the restored Session (resolved prices stay frozen either way).
type State struct {
	ID        string           `json:"id"`
	Location  Location         `json:"location"`
	LineItems []LineItem       `json:"line_items"`
	Resolved  map[string]int64 `json:"resolved"`
}

func (s *Session) State() State {
	resolved := make(map[string]int64, len(s.resolved))
	for k, v := range s.resolved {
		resolved[k] = v
	}
	return State{
		ID:        s.id,
		Location:  s.location,
		LineItems: s.LineItems(),
		Resolved:  resolved,
	}
}

// FromState rebuilds a Session. The catalog starts empty.
func FromState(st State) (*Session, error) {
	if _, ok := deliveryFeeCents[st.Location]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidLocation, st.Location)
	}
	s := &Session{
		id:       st.ID,
		location: st.Location,
		catalog:  map[string]MenuItem{},
		resolved: make(map[string]int64, len(st.Resolved)),
	}
	for k, v := range st.Resolved {
		s.resolved[k] = v
	}
	s.lineItems = make([]LineItem, len(st.LineItems))
	copy(s.lineItems, st.LineItems)
	return s, nil
}
