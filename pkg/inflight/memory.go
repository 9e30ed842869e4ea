package inflight

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

type lease struct {
	expiresAt time.Time
	token     string
}

// Memory is a process-local Locker.
type Memory struct {
	leases map[string]lease
	done   chan struct{}
	ttl    time.Duration
	mu     sync.Mutex
	closed bool
}

// NewMemory creates an in-process Locker.
func NewMemory(opts ...Option) *Memory {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	m := &Memory{
		leases: make(map[string]lease),
		done:   make(chan struct{}),
		ttl:    o.ttl,
	}

	if o.cleanupInterval > 0 {
		go m.janitor(o.cleanupInterval)
	}

	return m
}

func (m *Memory) Acquire(_ context.Context, key string) (Release, error) {
	if key == "" {
		return nil, ErrEmptyKey
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil, ErrClosed
	}

	now := time.Now()
	if l, ok := m.leases[key]; ok && now.Before(l.expiresAt) {
		return nil, ErrLocked
	}

	token := uuid.NewString()
	m.leases[key] = lease{token: token, expiresAt: now.Add(m.ttl)}

	return func(context.Context) error {
		m.mu.Lock()
		defer m.mu.Unlock()
		if l, ok := m.leases[key]; ok && l.token == token {
			delete(m.leases, key)
		}
		return nil
	}, nil
}

// Len returns the number of held, unexpired locks.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	n := 0
	for _, l := range m.leases {
		if now.Before(l.expiresAt) {
			n++
		}
	}
	return n
}

// Close stops the janitor. Acquire fails afterwards.
func (m *Memory) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.closed {
		m.closed = true
		close(m.done)
		clear(m.leases)
	}
	return nil
}

func (m *Memory) janitor(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-m.done:
			return
		case <-ticker.C:
			m.deleteExpired()
		}
	}
}

func (m *Memory) deleteExpired() {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	for k, l := range m.leases {
		if !now.Before(l.expiresAt) {
			delete(m.leases, k)
		}
	}
}

var _ Locker = (*Memory)(nil)
