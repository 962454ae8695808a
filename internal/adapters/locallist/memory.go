package locallist

import (
	"context"
	"sync"
	"sync/atomic"
)

// Option applies a configuration option to the InMemoryStore.
type Option func(*InMemoryStore)

// WithMaxPerList caps how many ids one list may hold. When the cap is hit,
// the oldest id is evicted first. A non-positive cap means unbounded.
func WithMaxPerList(maxPerList int) Option {
	return func(s *InMemoryStore) {
		s.maxPerList = maxPerList
	}
}

// InMemoryStore implements Store with per-list ordered sets. Insertion
// order is preserved so "my tickets" style views render in purchase order.
type InMemoryStore struct {
	mu         sync.RWMutex
	lists      map[string]*orderedSet
	maxPerList int
	size       atomic.Int64
}

// orderedSet is a set of ids that remembers insertion order.
type orderedSet struct {
	index map[string]int
	order []string
}

// NewInMemoryStore creates a store with configuration options.
func NewInMemoryStore(opts ...Option) *InMemoryStore {
	s := &InMemoryStore{
		lists: make(map[string]*orderedSet),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Add records id under list.
func (s *InMemoryStore) Add(_ context.Context, list, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	set, ok := s.lists[list]
	if !ok {
		set = &orderedSet{index: make(map[string]int)}
		s.lists[list] = set
	}
	if _, exists := set.index[id]; exists {
		return false
	}
	if s.maxPerList > 0 && len(set.order) >= s.maxPerList {
		s.evictOldestLocked(set)
	}
	set.index[id] = len(set.order)
	set.order = append(set.order, id)
	s.size.Add(1)
	return true
}

// evictOldestLocked drops the first id still present in set.order.
// Callers hold the write lock.
func (s *InMemoryStore) evictOldestLocked(set *orderedSet) {
	if len(set.order) == 0 {
		return
	}
	oldest := set.order[0]
	set.order = set.order[1:]
	delete(set.index, oldest)
	for i, id := range set.order {
		set.index[id] = i
	}
	s.size.Add(-1)
}

// Remove drops id from list.
func (s *InMemoryStore) Remove(_ context.Context, list, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	set, ok := s.lists[list]
	if !ok {
		return
	}
	pos, exists := set.index[id]
	if !exists {
		return
	}
	set.order = append(set.order[:pos], set.order[pos+1:]...)
	delete(set.index, id)
	for i := pos; i < len(set.order); i++ {
		set.index[set.order[i]] = i
	}
	s.size.Add(-1)
}

// Has reports membership.
func (s *InMemoryStore) Has(_ context.Context, list, id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	set, ok := s.lists[list]
	if !ok {
		return false
	}
	_, exists := set.index[id]
	return exists
}

// Members returns the ids in insertion order.
func (s *InMemoryStore) Members(_ context.Context, list string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	set, ok := s.lists[list]
	if !ok {
		return []string{}
	}
	out := make([]string, len(set.order))
	copy(out, set.order)
	return out
}

// Size returns the total id count across lists.
func (s *InMemoryStore) Size() int64 {
	return s.size.Load()
}
