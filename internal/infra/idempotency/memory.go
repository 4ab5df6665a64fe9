// internal/infra/idempotency/memory.go
package idempotency

import (
	"log"
	"sync"
	"time"

	mintdom "github.com/rakess70/mintomatic/internal/domain/mint"
)

// State of one idempotency entry.
type State int

const (
	StateProcessing State = iota
	StateComplete
)

// Entry tracks one mint intent. While a mint is in flight the entry holds
// StateProcessing; once the transaction confirms the result is cached so a
// duplicate submit within the TTL replays it instead of minting twice.
type Entry struct {
	State     State
	Result    *mintdom.Result
	CreatedAt time.Time
}

// MemoryStore is a short-lived in-process dedup store for mint intents.
// Nothing here survives a restart; the TTL only has to cover the window in
// which a flaky client can re-send the same intent.
type MemoryStore struct {
	mu   sync.Mutex
	data map[string]*Entry
	ttl  time.Duration

	stopOnce sync.Once
	stop     chan struct{}
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		data: make(map[string]*Entry),
		ttl:  ttl,
		stop: make(chan struct{}),
	}
}

// Begin claims the key for a new mint. It returns the existing entry and
// ok=false when the key is already claimed and not expired.
func (s *MemoryStore) Begin(key string) (*Entry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e, exists := s.data[key]; exists && time.Since(e.CreatedAt) <= s.ttl {
		return e, false
	}

	e := &Entry{State: StateProcessing, CreatedAt: time.Now()}
	s.data[key] = e
	return e, true
}

// Complete caches the result for replay.
func (s *MemoryStore) Complete(key string, res *mintdom.Result) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = &Entry{State: StateComplete, Result: res, CreatedAt: time.Now()}
}

// Release drops a claimed key after a failed mint so the caller may retry.
func (s *MemoryStore) Release(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
}

// StartSweeper launches a background goroutine that evicts expired entries.
// Without it every key ever used would stay in memory until restart.
// StopSweeper ends the goroutine.
func (s *MemoryStore) StartSweeper(interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-s.stop:
				return
			case <-ticker.C:
				s.sweep()
			}
		}
	}()
}

// StopSweeper terminates the sweeper goroutine. Safe to call more than once,
// with or without a prior StartSweeper.
func (s *MemoryStore) StopSweeper() {
	s.stopOnce.Do(func() { close(s.stop) })
}

func (s *MemoryStore) sweep() {
	s.mu.Lock()
	defer s.mu.Unlock()

	evicted := 0
	for key, e := range s.data {
		if time.Since(e.CreatedAt) > s.ttl {
			delete(s.data, key)
			evicted++
		}
	}
	if evicted > 0 {
		log.Printf("[idempotency] sweeper evicted %d expired keys", evicted)
	}
}
