package storage

import (
	"context"
	"sync"
	"time"

	"github.com/golang/groupcache/lru"
)

const defaultCapacity = 1024

type memoryEntry struct {
	value     string
	expiresAt time.Time
}

// Memory is a bounded in-process store. The least recently used key is evicted
// once capacity is reached, and entries older than the TTL read as absent.
type Memory struct {
	mu     sync.Mutex
	cache  *lru.Cache
	ttl    time.Duration
	now    func() time.Time
	closed bool
}

// MemoryOption configures a Memory store.
type MemoryOption func(*Memory)

// WithTTL expires entries d after they were written. Zero disables expiry.
func WithTTL(d time.Duration) MemoryOption {
	return func(m *Memory) {
		m.ttl = d
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) MemoryOption {
	return func(m *Memory) {
		m.now = now
	}
}

// NewMemory creates a store holding at most capacity keys.
func NewMemory(capacity int, opts ...MemoryOption) *Memory {
	if capacity <= 0 {
		capacity = defaultCapacity
	}
	m := &Memory{
		cache: lru.New(capacity),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Memory) GetItem(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return "", false, ErrClosed
	}
	raw, ok := m.cache.Get(key)
	if !ok {
		return "", false, nil
	}
	e := raw.(memoryEntry)
	if !e.expiresAt.IsZero() && !m.now().Before(e.expiresAt) {
		m.cache.Remove(key)
		return "", false, nil
	}
	return e.value, true, nil
}

func (m *Memory) SetItem(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrClosed
	}
	e := memoryEntry{value: value}
	if m.ttl > 0 {
		e.expiresAt = m.now().Add(m.ttl)
	}
	m.cache.Add(key, e)
	return nil
}

func (m *Memory) RemoveItem(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrClosed
	}
	m.cache.Remove(key)
	return nil
}

// Len returns the number of stored keys, expired ones included until read.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cache.Len()
}

// Close drops every entry. Later calls fail with ErrClosed.
func (m *Memory) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cache.Clear()
	m.closed = true
	return nil
}
