package studio

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/qrkitchen/qr-kitchen/internal/metrics"
)

// Registry maps client ids to sessions.
type Registry struct {
	mu       sync.Mutex
	cfg      Config
	deps     Deps
	sessions map[string]*Session
	lastUsed map[string]time.Time
	now      func() time.Time
}

// NewRegistry creates an empty registry.
func NewRegistry(cfg Config, deps Deps) *Registry {
	now := deps.Now
	if now == nil {
		now = time.Now
	}

	return &Registry{
		cfg:      cfg,
		deps:     deps,
		sessions: make(map[string]*Session),
		lastUsed: make(map[string]time.Time),
		now:      now,
	}
}

// Get returns the session of clientID, creating it on first use.
func (r *Registry) Get(clientID string) *Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lastUsed[clientID] = r.now()

	if s, ok := r.sessions[clientID]; ok {
		return s
	}

	s := New(clientID, r.cfg, r.deps)
	r.sessions[clientID] = s

	metrics.Sessions.Inc()

	return s
}

// Len returns the number of sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.sessions)
}

// Sweep drops the sessions nobody asked for during the idle TTL and returns
// how many were dropped. History and working design stay in storage, so a
// returning client gets them back from Get. A zero TTL keeps every session.
func (r *Registry) Sweep() int {
	if r.cfg.IdleTTL <= 0 {
		return 0
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := r.now().Add(-r.cfg.IdleTTL)
	dropped := 0

	for id, s := range r.sessions {
		if r.lastUsed[id].After(cutoff) {
			continue
		}

		r.drop(id, s)
		dropped++
	}

	return dropped
}

// Run sweeps idle sessions every interval until ctx is done.
func (r *Registry) Run(ctx context.Context, interval time.Duration) {
	if r.cfg.IdleTTL <= 0 || interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := r.Sweep(); n > 0 {
				log.Debug().Int("dropped", n).Int("left", r.Len()).Msg("swept idle studio sessions")
			}
		}
	}
}

// Close releases the scan sessions of every studio.
func (r *Registry) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, s := range r.sessions {
		r.drop(id, s)
	}
}

func (r *Registry) drop(id string, s *Session) {
	s.Close()
	delete(r.sessions, id)
	delete(r.lastUsed, id)
	metrics.Sessions.Dec()
}
