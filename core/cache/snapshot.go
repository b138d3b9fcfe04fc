package cache

import (
	"context"
	"strconv"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// LoadFunc reads a fresh value from the source of truth.
type LoadFunc[T any] func(ctx context.Context) (T, error)

// Snapshot caches a single value for a TTL. Invalidate bumps a generation
// counter so loads that began before the invalidation are never stored, and
// callers arriving after it never join them.
type Snapshot[T any] struct {
	ttl  time.Duration
	load LoadFunc[T]

	mu    sync.RWMutex
	value T
	built time.Time
	valid bool
	gen   uint64

	sf singleflight.Group
}

// NewSnapshot creates a cache around load. A ttl <= 0 disables caching: every
// Get reads through.
func NewSnapshot[T any](ttl time.Duration, load LoadFunc[T]) *Snapshot[T] {
	return &Snapshot[T]{ttl: ttl, load: load}
}

// Enabled reports whether values are retained between calls.
func (s *Snapshot[T]) Enabled() bool {
	return s.ttl > 0
}

// Get returns the cached value if fresh, otherwise loads it. Concurrent
// misses within one generation share a single load.
func (s *Snapshot[T]) Get(ctx context.Context) (T, error) {
	if !s.Enabled() {
		return s.load(ctx)
	}

	s.mu.RLock()
	if s.valid && time.Since(s.built) <= s.ttl {
		v := s.value
		s.mu.RUnlock()
		return v, nil
	}
	gen := s.gen
	s.mu.RUnlock()

	res, err, _ := s.sf.Do(strconv.FormatUint(gen, 10), func() (any, error) {
		v, err := s.load(ctx)
		if err != nil {
			return v, err
		}

		s.mu.Lock()
		if s.gen == gen {
			s.value = v
			s.built = time.Now()
			s.valid = true
		}
		s.mu.Unlock()
		return v, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return res.(T), nil
}

// Invalidate drops the cached value.
func (s *Snapshot[T]) Invalidate() {
	s.mu.Lock()
	s.gen++
	s.valid = false
	var zero T
	s.value = zero
	s.mu.Unlock()
}
