// Package session holds the client-side session: the injectable in-memory
// State and the durable key/value stores session artifacts are written to.
package session

import (
	"sync"

	"github.com/atinyakov/StorePortal/internal/models"
)

// Snapshot is a copy of State at one point in time.
type Snapshot struct {
	LoggedIn    bool
	User        *models.User
	StoreID     string
	StoreStatus models.StoreStatus
}

// State is the application's in-memory session. The zero value is anonymous
// and safe for concurrent use.
type State struct {
	mu   sync.RWMutex
	snap Snapshot
}

// NewState returns an anonymous State.
func NewState() *State {
	return &State{}
}

// Login marks the session as authenticated and caches the store id and status.
func (s *State) Login(user *models.User, storeID string, status models.StoreStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap = Snapshot{
		LoggedIn:    true,
		User:        user,
		StoreID:     storeID,
		StoreStatus: status,
	}
}

// Logout returns the session to anonymous.
func (s *State) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap = Snapshot{}
}

// LoggedIn reports whether Login has been called since the last Logout.
func (s *State) LoggedIn() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap.LoggedIn
}

// Snapshot returns a copy of the current state.
func (s *State) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}
