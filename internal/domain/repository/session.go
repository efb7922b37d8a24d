package repository

// SessionStore holds the single active-user reference of the Session
// component. It is an explicitly owned slot on the injected store, not a
// package-level global, so tests can run independent instances.
type SessionStore interface {
	SetActive(userID string)
	ClearActive()
	ActiveUserID() string
}
