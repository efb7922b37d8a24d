// Package memstore implements the repository ports over plain in-memory
// collections. There is no persistence in this system: the store is seeded
// at boot and lives for the process lifetime.
//
// The rules layer is single-writer by design, but the HTTP adapter serves
// requests concurrently, so the store guards itself with one RWMutex shared
// by all repositories.
package memstore

import (
	"sync"

	"github.com/dayflow-hr/dayflow-api/internal/domain/entity"
)

// Store owns every in-memory collection plus the active-session slot. It is
// dependency-injected: tests create their own instances.
type Store struct {
	mu sync.RWMutex

	users      []*entity.User
	leaves     []*entity.LeaveRequest // insertion order, never reordered
	attendance []*entity.AttendanceRecord
	payroll    []*entity.PayrollRecord

	activeUserID string
}

// New creates an empty store.
func New() *Store {
	return &Store{}
}

// SetActive records the logged-in user. Implements repository.SessionStore.
func (s *Store) SetActive(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activeUserID = userID
}

// ClearActive drops the active-user reference. The user record stays.
func (s *Store) ClearActive() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activeUserID = ""
}

// ActiveUserID returns the logged-in user's ID, or "" when nobody is.
func (s *Store) ActiveUserID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.activeUserID
}
