// Package dashboard holds the read model behind the admin console: the
// snapshot store, the sync controller that fills it from the backend
// services, and the pure aggregation/filter functions the view endpoints
// consume.
package dashboard

import (
	"sync"
	"time"

	"github.com/kdiallo/shop-admin-gateway/internal/catalog"
)

// Snapshot is the most recently loaded, complete copy of the four entity
// collections. Collections are replaced wholesale on reload, never patched
// in place; readers treat the slices as immutable.
type Snapshot struct {
	Products     []catalog.Product
	Users        []catalog.User
	Orders       []catalog.Order
	Payments     []catalog.Payment
	PaymentStats *catalog.PaymentStats // nil when the stats call failed

	Version  uint64
	LoadedAt time.Time
}

// Store owns the snapshot. Only the sync controller writes to it; handlers
// and the aggregator are read-only observers.
type Store struct {
	mu   sync.RWMutex
	snap Snapshot

	statsVersion uint64
	stats        Stats
}

func NewStore() *Store { return &Store{} }

// Current returns a shallow copy of the snapshot. The slices inside are
// shared with the store and must not be mutated.
func (s *Store) Current() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

// Stats returns the aggregated statistics for the current snapshot,
// recomputing only when the snapshot version changed since the last call.
func (s *Store) Stats() Stats {
	s.mu.RLock()
	if s.snap.Version != 0 && s.statsVersion == s.snap.Version {
		st := s.stats
		s.mu.RUnlock()
		return st
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.snap.Version == 0 || s.statsVersion != s.snap.Version {
		s.stats = ComputeStats(s.snap)
		s.statsVersion = s.snap.Version
	}
	return s.stats
}

func (s *Store) SetProducts(items []catalog.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.Products = items
	s.bumpLocked()
}

func (s *Store) SetUsers(items []catalog.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.Users = items
	s.bumpLocked()
}

func (s *Store) SetOrders(items []catalog.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.Orders = items
	s.bumpLocked()
}

func (s *Store) SetPayments(items []catalog.Payment, stats *catalog.PaymentStats) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.Payments = items
	s.snap.PaymentStats = stats
	s.bumpLocked()
}

func (s *Store) bumpLocked() {
	s.snap.Version++
	s.snap.LoadedAt = time.Now()
}
