package importer

import (
	"context"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
)

type session struct {
	path       string
	importType string
	createdAt  time.Time
}

// Sessions tracks staged uploads between preview and confirm/cancel. Each
// preview gets an opaque id; expired sessions are swept and their temp
// files unlinked, so an abandoned preview cannot leak staged files.
type Sessions struct {
	mu  sync.Mutex
	m   map[string]session
	ttl time.Duration
	now func() time.Time
}

func NewSessions(ttl time.Duration) *Sessions {
	return &Sessions{
		m:   make(map[string]session),
		ttl: ttl,
		now: time.Now,
	}
}

// Create registers a staged file and returns its session id.
func (s *Sessions) Create(path, importType string) string {
	id := uuid.NewString()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[id] = session{path: path, importType: importType, createdAt: s.now()}
	return id
}

// Resolve maps a session id to its staged path and import type.
func (s *Sessions) Resolve(id string) (path, importType string, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.m[id]
	if !ok || s.expired(sess) {
		return "", "", false
	}
	return sess.path, sess.importType, true
}

// Remove forgets a session without touching its file. Removing an unknown
// id is a no-op.
func (s *Sessions) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.m, id)
}

// Sweep drops expired sessions and unlinks their staged files. Returns the
// number of sessions removed.
func (s *Sessions) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, sess := range s.m {
		if !s.expired(sess) {
			continue
		}
		os.Remove(sess.path)
		delete(s.m, id)
		removed++
	}
	return removed
}

// Len reports the number of live sessions.
func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.m)
}

func (s *Sessions) expired(sess session) bool {
	return s.ttl > 0 && s.now().Sub(sess.createdAt) > s.ttl
}

// StartSweeper sweeps expired sessions on the given interval until ctx is
// cancelled. Intended to be called with `go`.
func (s *Sessions) StartSweeper(ctx context.Context, interval time.Duration, logger *slog.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if n := s.Sweep(); n > 0 {
				logger.Info("Import sessions expired", "count", n)
			}
		case <-ctx.Done():
			return
		}
	}
}
