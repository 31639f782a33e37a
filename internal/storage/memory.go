package storage

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/garrettladley/lumi/internal/color"
)

var _ Backend = (*MemoryBackend)(nil)

const limiterIdleTTL = 10 * time.Minute

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type MemoryBackend struct {
	// Rate limiting
	limiters  map[string]*limiterEntry
	limiterMu sync.Mutex
	rateLimit rate.Limit
	rateBurst int

	// Device state
	state   DeviceState
	stateMu sync.RWMutex

	// Cleanup
	done      chan struct{}
	closeOnce sync.Once
}

func NewMemoryBackend(ratePerSec float64, burst int) *MemoryBackend {
	m := &MemoryBackend{
		limiters:  make(map[string]*limiterEntry),
		rateLimit: rate.Limit(ratePerSec),
		rateBurst: burst,
		done:      make(chan struct{}),
	}

	go m.cleanupLoop()

	return m
}

func (m *MemoryBackend) Allow(_ context.Context, key string) (RateLimitResult, error) {
	m.limiterMu.Lock()
	entry, ok := m.limiters[key]
	if !ok {
		entry = &limiterEntry{limiter: rate.NewLimiter(m.rateLimit, m.rateBurst)}
		m.limiters[key] = entry
	}
	entry.lastSeen = time.Now()
	m.limiterMu.Unlock()

	r := entry.limiter.Reserve()
	if !r.OK() {
		return RateLimitResult{Allowed: false, RetryAfter: time.Second}, nil
	}
	if delay := r.Delay(); delay > 0 {
		r.Cancel()
		return RateLimitResult{Allowed: false, RetryAfter: delay}, nil
	}
	return RateLimitResult{Allowed: true}, nil
}

func (m *MemoryBackend) State(_ context.Context) (DeviceState, error) {
	m.stateMu.RLock()
	defer m.stateMu.RUnlock()

	s := m.state
	if s.Pattern != nil {
		p := *s.Pattern
		s.Pattern = &p
	}
	return s, nil
}

func (m *MemoryBackend) SetFace(_ context.Context, face int, c color.RGB) error {
	if err := checkFace(face); err != nil {
		return err
	}
	m.stateMu.Lock()
	m.state.Faces[face] = c
	m.stateMu.Unlock()
	return nil
}

func (m *MemoryBackend) Fill(_ context.Context, c color.RGB) error {
	m.stateMu.Lock()
	for i := range m.state.Faces {
		m.state.Faces[i] = c
	}
	m.stateMu.Unlock()
	return nil
}

func (m *MemoryBackend) SetPattern(_ context.Context, p *Pattern) error {
	m.stateMu.Lock()
	defer m.stateMu.Unlock()

	if p == nil {
		m.state.Pattern = nil
		return nil
	}
	cp := *p
	m.state.Pattern = &cp
	return nil
}

func (m *MemoryBackend) Close() error {
	m.closeOnce.Do(func() { close(m.done) })
	return nil
}

func (m *MemoryBackend) Ping(_ context.Context) error {
	return nil
}

func (m *MemoryBackend) cleanupLoop() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.evictIdle(time.Now())
		case <-m.done:
			return
		}
	}
}

func (m *MemoryBackend) evictIdle(now time.Time) {
	m.limiterMu.Lock()
	defer m.limiterMu.Unlock()

	for key, e := range m.limiters {
		if now.Sub(e.lastSeen) > limiterIdleTTL {
			delete(m.limiters, key)
		}
	}
}
