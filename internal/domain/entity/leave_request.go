package entity

import "time"

// Leave types.
const (
	LeavePaid   = "paid"
	LeaveSick   = "sick"
	LeaveUnpaid = "unpaid"
)

// Leave request statuses. Pending is the only non-terminal state.
const (
	LeavePending  = "pending"
	LeaveApproved = "approved"
	LeaveRejected = "rejected"
)

// LeaveRequest is an employee's ask for time off. It is created pending,
// decided at most once by an admin, and never deleted.
type LeaveRequest struct {
	ID           string
	UserID       string
	UserName     string // denormalized display copy
	LeaveType    string // paid, sick, unpaid
	StartDate    time.Time
	EndDate      time.Time // inclusive
	Reason       string
	Status       string // pending, approved, rejected
	AdminComment string // optional, set by the deciding admin
	CreatedAt    time.Time
}

// Terminal reports whether the request has been decided. A terminal request
// is immutable.
func (r *LeaveRequest) Terminal() bool {
	return r.Status == LeaveApproved || r.Status == LeaveRejected
}

// DurationDays is the inclusive day count of the leave:
// floor((end-start) in days) + 1, so a same-day leave is 1 day.
// Callers must not invoke it on an inverted range.
func (r *LeaveRequest) DurationDays() int {
	start := midnight(r.StartDate)
	end := midnight(r.EndDate)
	return int(end.Sub(start).Hours()/24) + 1
}

// midnight truncates t to its calendar date in UTC.
func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
