// Package cache is an in-process TTL cache with a singleflight loader,
// used to shield hot leaderboard queries from request stampedes.
package cache

import (
	"context"
	"sync"
	"time"
)

type entry struct {
	value     any
	expiresAt time.Time
}

func (e entry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && !e.expiresAt.After(now)
}

type flight struct {
	done  chan struct{}
	value any
	err   error
}

type Store struct {
	ttl time.Duration

	mu      sync.RWMutex
	entries map[string]entry

	flightMu sync.Mutex
	flights  map[string]*flight
}

// NewStore builds a cache whose entries live for ttl; ttl <= 0 means
// entries never expire.
func NewStore(ttl time.Duration) *Store {
	return &Store{
		ttl:     ttl,
		entries: make(map[string]entry),
		flights: make(map[string]*flight),
	}
}

func (s *Store) Get(_ context.Context, key string) (any, bool) {
	if key == "" {
		return nil, false
	}

	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()

	switch {
	case !ok:
		return nil, false
	case e.expired(time.Now()):
		s.mu.Lock()
		delete(s.entries, key)
		s.mu.Unlock()
		return nil, false
	}
	return e.value, true
}

func (s *Store) Set(_ context.Context, key string, value any) {
	if key == "" {
		return
	}

	e := entry{value: value}
	if s.ttl > 0 {
		e.expiresAt = time.Now().Add(s.ttl)
	}

	s.mu.Lock()
	s.entries[key] = e
	s.mu.Unlock()
}

// GetOrLoad returns the cached value for key, calling load at most once
// across concurrent callers when the key is absent. Load errors are not
// cached.
func (s *Store) GetOrLoad(ctx context.Context, key string, load func(context.Context) (any, error)) (any, error) {
	if value, ok := s.Get(ctx, key); ok {
		return value, nil
	}

	s.flightMu.Lock()
	if inflight, ok := s.flights[key]; ok {
		s.flightMu.Unlock()
		<-inflight.done
		return inflight.value, inflight.err
	}
	f := &flight{done: make(chan struct{})}
	s.flights[key] = f
	s.flightMu.Unlock()

	f.value, f.err = load(ctx)
	if f.err == nil {
		s.Set(ctx, key, f.value)
	}
	close(f.done)

	s.flightMu.Lock()
	delete(s.flights, key)
	s.flightMu.Unlock()

	return f.value, f.err
}
