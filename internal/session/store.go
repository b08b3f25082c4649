// Package session holds per-visitor storefront state in memory: the logged
// in user, the cart and the order history. Every change goes through a
// reducer applied under the store lock.
package session

import (
	"context"
	"sync"
	"time"

	"bazaar-be/internal/cart"
	"bazaar-be/internal/logger"
	"bazaar-be/internal/metrics"
	"bazaar-be/internal/order"
	"bazaar-be/internal/user"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type State struct {
	User      *user.User    `json:"user"`
	Cart      cart.Cart     `json:"cart"`
	Orders    order.History `json:"orders"`
	CreatedAt time.Time     `json:"createdAt"`
	LastSeen  time.Time     `json:"lastSeen"`
}

func (s State) clone() State {
	out := s
	if s.User != nil {
		u := *s.User
		out.User = &u
	}
	out.Cart = s.Cart.Clone()
	out.Orders = s.Orders.Clone()
	return out
}

// CustomerID is the id recorded on orders placed from this state.
func (s State) CustomerID() string {
	if s.User == nil {
		return order.GuestCustomerID
	}
	return s.User.ID
}

type Options struct {
	TTL time.Duration
	// Seed returns the order history a new session starts with.
	Seed func() order.History
}

type Store struct {
	mu       sync.Mutex
	sessions map[string]*State
	ttl      time.Duration
	seed     func() order.History
	now      func() time.Time
}

func NewStore(opts Options) *Store {
	if opts.TTL <= 0 {
		opts.TTL = 2 * time.Hour
	}
	return &Store{
		sessions: make(map[string]*State),
		ttl:      opts.TTL,
		seed:     opts.Seed,
		now:      time.Now,
	}
}

// Create opens a new guest session and returns its id.
func (s *Store) Create(ctx context.Context) string {
	id := uuid.NewString()
	now := s.now()

	st := &State{CreatedAt: now, LastSeen: now}
	if s.seed != nil {
		st.Orders = s.seed()
	}

	s.mu.Lock()
	s.sessions[id] = st
	n := len(s.sessions)
	s.mu.Unlock()

	metrics.ActiveSessions.Set(float64(n))
	logger.FromCtx(ctx).Debug("session created", zap.String("session_id", id))
	return id
}

// Touch reports whether the session is live and refreshes its idle timer.
func (s *Store) Touch(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.live(id)
	if !ok {
		return false
	}
	st.LastSeen = s.now()
	return true
}

// Snapshot returns a copy of the session state.
func (s *Store) Snapshot(ctx context.Context, id string) (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.live(id)
	if !ok {
		return State{}, ErrSessionNotFound
	}
	return st.clone(), nil
}

// Update applies fn to a copy of the state and stores the copy only when
// fn succeeds, so a failed reducer leaves the session untouched.
func (s *Store) Update(ctx context.Context, id string, fn func(*State) error) (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.live(id)
	if !ok {
		return State{}, ErrSessionNotFound
	}

	next := st.clone()
	if err := fn(&next); err != nil {
		return State{}, err
	}
	next.LastSeen = s.now()
	s.sessions[id] = &next
	return next.clone(), nil
}

// live must be called with mu held.
func (s *Store) live(id string) (*State, bool) {
	st, ok := s.sessions[id]
	if !ok {
		return nil, false
	}
	if s.now().Sub(st.LastSeen) > s.ttl {
		delete(s.sessions, id)
		return nil, false
	}
	return st, true
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// EvictExpired drops sessions idle for longer than the TTL and returns how
// many were removed.
func (s *Store) EvictExpired() int {
	s.mu.Lock()
	removed := 0
	now := s.now()
	for id, st := range s.sessions {
		if now.Sub(st.LastSeen) > s.ttl {
			delete(s.sessions, id)
			removed++
		}
	}
	n := len(s.sessions)
	s.mu.Unlock()

	metrics.ActiveSessions.Set(float64(n))
	return removed
}

// RunJanitor evicts expired sessions every interval until ctx is done.
func (s *Store) RunJanitor(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.EvictExpired(); n > 0 {
				logger.L().Info("expired sessions evicted", zap.Int("count", n))
			}
		}
	}
}
