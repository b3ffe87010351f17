package session

import (
	"errors"
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// ErrSessionNotFound indicates no open session exists for the given id,
// either because it never existed or because it expired.
var ErrSessionNotFound = errors.New("session not found")

// IsSessionNotFound checks if an error indicates a missing session.
func IsSessionNotFound(err error) bool {
	return errors.Is(err, ErrSessionNotFound)
}

// StoreError wraps store operations with context.
type StoreError struct {
	Op        string
	SessionID string
	Err       error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s operation failed for session %s: %v", e.Op, e.SessionID, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// DefaultTTL is how long an idle session stays open before it is discarded.
const DefaultTTL = 30 * time.Minute

// Store holds open sessions in process memory with TTL eviction. Expiry is
// the "navigating away" of this service: an expired session is simply gone,
// together with all of its state.
type Store struct {
	cache *gocache.Cache
	ttl   time.Duration
}

// NewStore creates a store evicting sessions idle longer than ttl.
// A non-positive ttl falls back to DefaultTTL.
func NewStore(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &Store{
		cache: gocache.New(ttl, 2*ttl),
		ttl:   ttl,
	}
}

// Save stores the session and refreshes its expiry.
func (s *Store) Save(sess *Session) {
	s.cache.Set(sess.ID, sess, s.ttl)
}

// Get returns the open session with the given id. The expiry is refreshed,
// so an actively used session stays alive.
func (s *Store) Get(id string) (*Session, error) {
	v, ok := s.cache.Get(id)
	if !ok {
		return nil, &StoreError{Op: "Get", SessionID: id, Err: ErrSessionNotFound}
	}

	sess, ok := v.(*Session)
	if !ok {
		return nil, &StoreError{Op: "Get", SessionID: id, Err: ErrSessionNotFound}
	}

	s.cache.Set(id, sess, s.ttl)

	return sess, nil
}

// Delete discards a session. Deleting an unknown id is a no-op.
func (s *Store) Delete(id string) {
	s.cache.Delete(id)
}

// Count returns the number of open sessions.
func (s *Store) Count() int {
	return s.cache.ItemCount()
}
