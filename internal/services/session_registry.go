package services

import (
	"context"
	"sync"
	"time"

	"top-sales-tracker/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ControllerFactory builds the controller for a new session
type ControllerFactory func() *SalesQueryController

type session struct {
	controller *SalesQueryController
	lastAccess time.Time
}

// SessionRegistry keeps one controller per UI session in memory. Nothing is persisted;
// sessions that stay idle longer than the idle TTL are evicted.
type SessionRegistry struct {
	factory ControllerFactory
	idleTTL time.Duration
	now     func() time.Time

	mu       sync.RWMutex
	sessions map[uuid.UUID]*session
}

func NewSessionRegistry(factory ControllerFactory, idleTTL time.Duration) *SessionRegistry {
	return &SessionRegistry{
		factory:  factory,
		idleTTL:  idleTTL,
		now:      time.Now,
		sessions: make(map[uuid.UUID]*session),
	}
}

// Create starts a new session with a fresh controller
func (r *SessionRegistry) Create() (uuid.UUID, *SalesQueryController) {
	id := uuid.New()
	controller := r.factory()

	r.mu.Lock()
	r.sessions[id] = &session{controller: controller, lastAccess: r.now()}
	r.mu.Unlock()

	logger.Debug("Session created", zap.String("session_id", id.String()))
	return id, controller
}

// Get returns the session's controller and marks the session as used
func (r *SessionRegistry) Get(id uuid.UUID) (*SalesQueryController, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[id]
	if !ok {
		return nil, false
	}
	s.lastAccess = r.now()
	return s.controller, true
}

// Delete ends a session. It reports whether the session existed.
func (r *SessionRegistry) Delete(id uuid.UUID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[id]; !ok {
		return false
	}
	delete(r.sessions, id)
	return true
}

// Len returns the number of live sessions
func (r *SessionRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// EvictIdle removes sessions idle for longer than the idle TTL and returns how many went
func (r *SessionRegistry) EvictIdle() int {
	if r.idleTTL <= 0 {
		return 0
	}

	cutoff := r.now().Add(-r.idleTTL)
	evicted := 0

	r.mu.Lock()
	for id, s := range r.sessions {
		if s.lastAccess.Before(cutoff) {
			delete(r.sessions, id)
			evicted++
		}
	}
	r.mu.Unlock()

	return evicted
}

// StartJanitor evicts idle sessions every interval until ctx is done
func (r *SessionRegistry) StartJanitor(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if n := r.EvictIdle(); n > 0 {
					logger.Info("Evicted idle sessions", zap.Int("count", n), zap.Int("remaining", r.Len()))
				}
			}
		}
	}()
}
