package service

import (
	"math/rand/v2"
	"sync"
	"time"

	"github.com/google/uuid"

	"logo-banner/models"
	"logo-banner/utils"
)

// SessionServiceInterface defines the operations for managing banner sessions
type SessionServiceInterface interface {
	Create() *Session
	Get(id string) (*Session, error)
	Delete(id string) error
	Len() int
	Close()
}

type sessionEntry struct {
	session  *Session
	lastSeen time.Time
}

// SessionService keeps the live sessions and expires idle ones
type SessionService struct {
	catalog  *CatalogStore
	presets  *PresetProvider
	notifier NotifierInterface
	debounce time.Duration
	ttl      time.Duration

	mu       sync.Mutex
	sessions map[string]*sessionEntry
	now      func() time.Time
	newRand  func() *rand.Rand

	stop     chan struct{}
	stopOnce sync.Once
}

// NewSessionService creates a session service.
// A positive ttl starts a background sweep of idle sessions.
func NewSessionService(catalog *CatalogStore, presets *PresetProvider, notifier NotifierInterface, debounce, ttl time.Duration) *SessionService {
	s := &SessionService{
		catalog:  catalog,
		presets:  presets,
		notifier: notifier,
		debounce: debounce,
		ttl:      ttl,
		sessions: make(map[string]*sessionEntry),
		now:      time.Now,
		stop:     make(chan struct{}),
	}

	if ttl > 0 {
		go s.sweepLoop(sweepInterval(ttl))
	}
	return s
}

func sweepInterval(ttl time.Duration) time.Duration {
	interval := ttl / 4
	if interval < time.Second {
		interval = time.Second
	}
	return interval
}

// Create starts a new session with a fresh id
func (s *SessionService) Create() *Session {
	id := uuid.NewString()

	var rng *rand.Rand
	if s.newRand != nil {
		rng = s.newRand()
	}
	session := NewSession(id, s.catalog, s.presets, SessionOptions{
		Debounce: s.debounce,
		Notifier: s.notifier,
		Rand:     rng,
	})

	s.mu.Lock()
	s.sessions[id] = &sessionEntry{session: session, lastSeen: s.now()}
	count := len(s.sessions)
	s.mu.Unlock()

	utils.Log().Infof("✓ Session created: %s (%d active)", id, count)
	return session
}

// Get returns a live session and marks it as used
func (s *SessionService) Get(id string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.sessions[id]
	if !ok {
		return nil, models.ErrSessionNotFound
	}
	entry.lastSeen = s.now()
	return entry.session, nil
}

// Delete ends a session
func (s *SessionService) Delete(id string) error {
	s.mu.Lock()
	entry, ok := s.sessions[id]
	delete(s.sessions, id)
	s.mu.Unlock()

	if !ok {
		return models.ErrSessionNotFound
	}
	entry.session.Close()
	utils.Log().Infof("🗑️  Session deleted: %s", id)
	return nil
}

func (s *SessionService) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Sweep removes sessions idle for longer than the ttl and returns how many were removed
func (s *SessionService) Sweep() int {
	if s.ttl <= 0 {
		return 0
	}

	cutoff := s.now().Add(-s.ttl)
	var expired []*Session

	s.mu.Lock()
	for id, entry := range s.sessions {
		if entry.lastSeen.Before(cutoff) {
			expired = append(expired, entry.session)
			delete(s.sessions, id)
		}
	}
	s.mu.Unlock()

	for _, session := range expired {
		session.Close()
	}
	if len(expired) > 0 {
		utils.Log().Infof("🧹 Expired %d idle sessions", len(expired))
	}
	return len(expired)
}

func (s *SessionService) sweepLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.Sweep()
		case <-s.stop:
			return
		}
	}
}

// Close stops the sweeper and ends every session
func (s *SessionService) Close() {
	s.stopOnce.Do(func() { close(s.stop) })

	s.mu.Lock()
	sessions := s.sessions
	s.sessions = make(map[string]*sessionEntry)
	s.mu.Unlock()

	for _, entry := range sessions {
		entry.session.Close()
	}
}

var _ SessionServiceInterface = (*SessionService)(nil)
