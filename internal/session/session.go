package session

import (
	"errors"
	"sync"
)

// ErrNoSession is returned when an operation requires a logged-in user and no
// session is active.
var ErrNoSession = errors.New("no active session")

// Store holds the app session: a single mutable slot carrying the logged-in
// user's identifier. The auth flow writes it at login and clears it at logout;
// every other consumer only reads.
type Store struct {
	mu     sync.RWMutex
	userID string
}

// NewStore creates an empty session store.
func NewStore() *Store {
	return &Store{}
}

// Login records the user identifier for the session.
func (s *Store) Login(userID string) error {
	if userID == "" {
		return errors.New("user id is required")
	}
	s.mu.Lock()
	s.userID = userID
	s.mu.Unlock()
	return nil
}

// Logout clears the session slot.
func (s *Store) Logout() {
	s.mu.Lock()
	s.userID = ""
	s.mu.Unlock()
}

// Current returns the logged-in user identifier, or ErrNoSession when the
// slot is empty.
func (s *Store) Current() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.userID == "" {
		return "", ErrNoSession
	}
	return s.userID, nil
}

// Active reports whether a user is logged in.
func (s *Store) Active() bool {
	_, err := s.Current()
	return err == nil
}
