package entity

import "time"

// Attendance statuses for a working day.
const (
	AttendancePresent = "present"
	AttendanceAbsent  = "absent"
	AttendanceHalfDay = "half-day"
	AttendanceLeave   = "leave"
)

// AttendanceRecord is one user's attendance for one calendar day.
// Weekends and future days have no record at all.
type AttendanceRecord struct {
	ID       string
	UserID   string
	Date     time.Time // calendar date
	CheckIn  *time.Time
	CheckOut *time.Time
	Status   string // present, absent, half-day, leave
}

// HoursWorked returns the hours between check-in and check-out, zero when
// either is missing.
func (r *AttendanceRecord) HoursWorked() float64 {
	if r.CheckIn == nil || r.CheckOut == nil {
		return 0
	}
	return r.CheckOut.Sub(*r.CheckIn).Hours()
}
