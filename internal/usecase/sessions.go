package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/airgourmethellas/catering-api/internal/pricing"
)

var ErrSessionNotFound = errors.New("pricing session not found")

// Sessions owns the pricing-session lifecycle for callers that multiplex many
// concurrent order flows: each session is rebuilt from its own stored state,
// given a fresh catalog, mutated, and saved back. No pricing state is ever
// shared between sessions.
type Sessions struct {
	store           SessionStore
	catalog         *Catalog
	defaultLocation pricing.Location
}

func NewSessions(store SessionStore, catalog *Catalog, defaultLocation pricing.Location) *Sessions {
	return &Sessions{store: store, catalog: catalog, defaultLocation: defaultLocation}
}

// Start opens a new session. An empty location means the configured default;
// anything else outside the valid set is rejected, never silently defaulted.
func (s *Sessions) Start(ctx context.Context, location string) (*pricing.Session, error) {
	loc := s.defaultLocation
	if location != "" {
		loc = pricing.Location(location)
	}
	sess, err := pricing.NewSession(uuid.NewString(), loc)
	if err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, sess.State()); err != nil {
		return nil, err
	}
	return sess, nil
}

func (s *Sessions) load(ctx context.Context, id string) (*pricing.Session, error) {
	st, ok, err := s.store.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrSessionNotFound
	}
	sess, err := restoreSession(st)
	if err != nil {
		return nil, err
	}
	items, err := s.catalog.List(ctx)
	if err != nil {
		return nil, err
	}
	if err := sess.LoadCatalog(items); err != nil {
		return nil, err
	}
	return sess, nil
}

func (s *Sessions) mutate(ctx context.Context, id string, fn func(*pricing.Session) error) (*pricing.Session, error) {
	sess, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := fn(sess); err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, sess.State()); err != nil {
		return nil, err
	}
	return sess, nil
}

func (s *Sessions) SetLocation(ctx context.Context, id, location string) (*pricing.Session, error) {
	return s.mutate(ctx, id, func(sess *pricing.Session) error {
		return sess.SetLocation(pricing.Location(location))
	})
}

func (s *Sessions) AddLineItem(ctx context.Context, id, menuItemID string, quantity int64, specialInstructions string) (*pricing.Session, error) {
	return s.mutate(ctx, id, func(sess *pricing.Session) error {
		return sess.AddLineItem(menuItemID, quantity, specialInstructions)
	})
}

func (s *Sessions) RemoveLineItem(ctx context.Context, id string, index int) (*pricing.Session, error) {
	return s.mutate(ctx, id, func(sess *pricing.Session) error {
		return sess.RemoveLineItem(index)
	})
}

func (s *Sessions) UpdateQuantity(ctx context.Context, id string, index int, quantity int64) (*pricing.Session, error) {
	return s.mutate(ctx, id, func(sess *pricing.Session) error {
		return sess.UpdateQuantity(index, quantity)
	})
}

// Quote returns the session read-only for the review/payment screens.
func (s *Sessions) Quote(ctx context.Context, id string) (*pricing.Session, error) {
	return s.load(ctx, id)
}

func restoreSession(st pricing.State) (*pricing.Session, error) {
	return pricing.FromState(st)
}
