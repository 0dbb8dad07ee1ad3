// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/quickly-rank/editor"
	"github.com/danielhkuo/quickly-rank/models"
)

var ErrNotFound = errors.New("session not found")

// Session is one voter's editor held on behalf of a remote projector.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu       sync.Mutex
	ed       *editor.Editor
	lastUsed time.Time
	closed   bool
	now      func() time.Time
}

// Do runs fn with exclusive access to the session's editor. It returns
// ErrNotFound if the session was deleted or swept meanwhile.
func (s *Session) Do(fn func(ed *editor.Editor)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrNotFound
	}
	s.lastUsed = s.now()
	fn(s.ed)
	return nil
}

func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastUsed
}

func (s *Session) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.ed.Teardown()
}

type Option func(*Store)

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Store) { s.log = l }
}

// Store keeps editing sessions in memory. Nothing survives a restart.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session

	now func() time.Time
	log *slog.Logger
}

func NewStore(opts ...Option) *Store {
	s := &Store{
		sessions: make(map[string]*Session),
		now:      time.Now,
		log:      slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create starts a session editing candidates from initial. editorOpts are
// passed through to editor.New.
func (s *Store) Create(candidates []string, initial models.FlatSelection, editorOpts ...editor.Option) *Session {
	now := s.now()
	editorOpts = append([]editor.Option{editor.WithLogger(s.log)}, editorOpts...)
	sess := &Session{
		ID:        uuid.NewString(),
		CreatedAt: now,
		ed:        editor.New(candidates, initial, editorOpts...),
		lastUsed:  now,
		now:       s.now,
	}

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	s.log.Debug("session created", "session_id", sess.ID, "candidates", len(candidates))
	return sess
}

func (s *Store) Get(id string) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return sess, nil
}

// Delete removes a session and tears its editor down.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	sess, ok := s.sessions[id]
	delete(s.sessions, id)
	s.mu.Unlock()

	if !ok {
		return ErrNotFound
	}
	sess.close()
	s.log.Info("session deleted", "session_id", id)
	return nil
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Sweep deletes sessions unused for longer than idle and returns how many
// were removed.
func (s *Store) Sweep(idle time.Duration) int {
	cutoff := s.now().Add(-idle)

	s.mu.Lock()
	var expired []*Session
	for id, sess := range s.sessions {
		if sess.idleSince().Before(cutoff) {
			expired = append(expired, sess)
			delete(s.sessions, id)
		}
	}
	s.mu.Unlock()

	for _, sess := range expired {
		sess.close()
	}
	if len(expired) > 0 {
		s.log.Info("swept idle sessions", "count", len(expired), "idle", idle)
	}
	return len(expired)
}

// RunSweeper sweeps every interval until ctx is done.
func (s *Store) RunSweeper(ctx context.Context, interval, idle time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			s.Sweep(idle)
		}
	}
}
