package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"julianmorley.ca/con-plar/shopvibe/pkg/catalog"
)

const DefaultTTL = 1 * time.Hour

// Store keeps live sessions in memory. Sessions idle longer than the TTL are
// dropped; nothing survives a restart.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Controller
	source   catalog.Source
	ttl      time.Duration
	log      logrus.FieldLogger
	now      func() time.Time
}

type Option func(*Store)

func WithTTL(ttl time.Duration) Option {
	return func(s *Store) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

func WithLogger(log logrus.FieldLogger) Option {
	return func(s *Store) {
		if log != nil {
			s.log = log
		}
	}
}

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

func NewStore(source catalog.Source, opts ...Option) *Store {
	s := &Store{
		sessions: make(map[string]*Controller),
		source:   source,
		ttl:      DefaultTTL,
		log:      logrus.StandardLogger(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) Create() *Controller {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweepLocked()

	c := newController(uuid.NewString(), s.source, s.log, s.now)
	s.sessions[c.ID()] = c
	s.log.WithField("session_id", c.ID()).Info("session created")
	return c
}

// Get returns a live session. Expired sessions are removed and reported as
// ErrSessionNotFound.
func (s *Store) Get(id string) (*Controller, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if s.expired(c) {
		delete(s.sessions, id)
		return nil, ErrSessionNotFound
	}
	return c, nil
}

func (s *Store) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

// Sweep drops every expired session and returns how many were removed.
func (s *Store) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sweepLocked()
}

func (s *Store) sweepLocked() int {
	removed := 0
	for id, c := range s.sessions {
		if s.expired(c) {
			delete(s.sessions, id)
			removed++
		}
	}
	if removed > 0 {
		s.log.WithField("removed", removed).Debug("expired sessions swept")
	}
	return removed
}

func (s *Store) expired(c *Controller) bool {
	return s.now().Sub(c.idleSince()) > s.ttl
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
