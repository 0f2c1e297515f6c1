package session

import (
	"sync"
	"time"

	"erc20_indexer/internal/app/view"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// Session holds the page state of one browser. All mutations go through Dispatch.
type Session struct {
	ID string

	mu    sync.Mutex
	state view.State
}

// Dispatch reduces e into the session state and returns the result.
func (s *Session) Dispatch(e view.Event) view.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = view.Reduce(s.state, e)
	return s.state
}

// Snapshot returns the current state without changing it.
func (s *Session) Snapshot() view.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Render returns the state to draw and consumes its pending notification.
func (s *Session) Render() view.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	current := s.state
	s.state = view.Reduce(s.state, view.NotificationShown{})
	return current
}

// Store keeps sessions in memory. A session expires ttl after its last use.
type Store struct {
	sessions *cache.Cache
}

// NewStore creates an empty Store.
func NewStore(ttl time.Duration) *Store {
	return &Store{sessions: cache.New(ttl, ttl)}
}

// Get returns the live session with the given id and extends its lifetime.
func (s *Store) Get(id string) (*Session, bool) {
	if id == "" {
		return nil, false
	}
	v, found := s.sessions.Get(id)
	if !found {
		return nil, false
	}
	sess := v.(*Session)
	s.sessions.Set(id, sess, cache.DefaultExpiration)
	return sess, true
}

// GetOrCreate returns the session for id, or a new one when id is unknown or expired.
func (s *Store) GetOrCreate(id string) *Session {
	if sess, ok := s.Get(id); ok {
		return sess
	}
	sess := &Session{ID: uuid.NewString()}
	s.sessions.Set(sess.ID, sess, cache.DefaultExpiration)
	return sess
}
