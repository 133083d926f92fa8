package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	// DefaultTTL is how long an idle visitor is kept before being dropped
	DefaultTTL = 30 * time.Minute

	// CleanupInterval is how often the background cleanup runs
	CleanupInterval = time.Minute
)

// MemoryStore implements Store with in-memory storage. Nothing survives a
// restart.
type MemoryStore struct {
	mu       sync.RWMutex
	visitors map[string]*Visitor
	ttl      time.Duration
	now      func() time.Time

	stopCleanup chan struct{}
	stopOnce    sync.Once
	wg          sync.WaitGroup
}

// NewMemoryStore creates a new in-memory session store
func NewMemoryStore(ttl, cleanupInterval time.Duration) *MemoryStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if cleanupInterval <= 0 {
		cleanupInterval = CleanupInterval
	}

	s := &MemoryStore{
		visitors:    make(map[string]*Visitor),
		ttl:         ttl,
		now:         time.Now,
		stopCleanup: make(chan struct{}),
	}

	// Start background cleanup goroutine
	s.wg.Add(1)
	go s.cleanupLoop(cleanupInterval)

	return s
}

// cleanupLoop periodically drops idle visitors
func (s *MemoryStore) cleanupLoop(interval time.Duration) {
	defer s.wg.Done()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.expireIdle()
		case <-s.stopCleanup:
			return
		}
	}
}

func (s *MemoryStore) expireIdle() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	expired := 0
	for id, v := range s.visitors {
		if s.isExpired(v) {
			delete(s.visitors, id)
			expired++
		}
	}
	return expired
}

func (s *MemoryStore) isExpired(v *Visitor) bool {
	return s.now().Sub(v.LastSeen) > s.ttl
}

func (s *MemoryStore) Create() (Visitor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := &Visitor{
		ID:       uuid.New().String(),
		LastSeen: s.now(),
	}
	s.visitors[v.ID] = v
	return snapshot(v), nil
}

func (s *MemoryStore) Get(id string) (Visitor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, exists := s.visitors[id]
	if !exists || s.isExpired(v) {
		return Visitor{}, ErrSessionNotFound
	}
	return snapshot(v), nil
}

func (s *MemoryStore) Update(id string, fn func(v *Visitor) error) (Visitor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, exists := s.visitors[id]
	if !exists || s.isExpired(v) {
		return Visitor{}, ErrSessionNotFound
	}

	working := snapshot(v)
	if err := fn(&working); err != nil {
		return Visitor{}, err
	}

	working.ID = v.ID
	working.LastSeen = s.now()
	s.visitors[id] = &working
	return snapshot(&working), nil
}

func (s *MemoryStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.visitors[id]; !exists {
		return ErrSessionNotFound
	}
	delete(s.visitors, id)
	return nil
}

// Len reports how many visitors are held, expired or not.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.visitors)
}

// Close stops the background cleanup and waits for it to finish
func (s *MemoryStore) Close() error {
	s.stopOnce.Do(func() { close(s.stopCleanup) })
	s.wg.Wait()
	return nil
}

// snapshot copies v so callers never share the stored checkout pointer.
// Cart lines are replaced wholesale by cart operations, so sharing them is safe.
func snapshot(v *Visitor) Visitor {
	out := *v
	if v.Checkout != nil {
		co := *v.Checkout
		out.Checkout = &co
	}
	return out
}
