package dto

// CheckResponse result of a check-in or check-out.
type CheckResponse struct {
	Date     string  `json:"date"`
	CheckIn  string  `json:"check_in,omitempty"`
	CheckOut string  `json:"check_out,omitempty"`
	Status   string  `json:"status"`
	Hours    float64 `json:"hours_worked,omitempty"`
}

// DayAttendance one day in the month calendar. Days without a record (weekends,
// future days) have an empty status.
type DayAttendance struct {
	Date     string `json:"date"` // YYYY-MM-DD
	Status   string `json:"status,omitempty"`
	CheckIn  string `json:"check_in,omitempty"`
	CheckOut string `json:"check_out,omitempty"`
}

// MonthSummaryResponse calendar plus the stat counters shown above it.
type MonthSummaryResponse struct {
	Month       string          `json:"month"` // e.g. "January 2026"
	Days        []DayAttendance `json:"days"`
	PresentDays int             `json:"present_days"`
	HalfDays    int             `json:"half_days"`
	LeaveDays   int             `json:"leave_days"`
	WorkingDays int             `json:"working_days"`
}
