package domain

import "errors"

// Domain errors (no external dependencies). Every failure in the rules layer
// is one of these sentinels returned to the caller; nothing here panics.
var (
	ErrNotFound     = errors.New("resource not found")
	ErrUserNotFound = errors.New("user not found")
	ErrValidation   = errors.New("invalid input")
	ErrForbidden    = errors.New("access denied")

	// Session/Identity
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Leave lifecycle
	ErrInvalidRange  = errors.New("end date precedes start date")
	ErrMissingReason = errors.New("reason is required")
	ErrNotPending    = errors.New("leave request already decided")

	// Attendance
	ErrAlreadyCheckedIn = errors.New("already checked in today")
	ErrNotCheckedIn     = errors.New("not checked in today")
)
