package dto

// SubmitLeaveRequest input for a new leave request. Dates are YYYY-MM-DD.
type SubmitLeaveRequest struct {
	LeaveType string `json:"leave_type" validate:"required,oneof=paid sick unpaid"`
	StartDate string `json:"start_date" validate:"required"`
	EndDate   string `json:"end_date" validate:"required"`
	Reason    string `json:"reason" validate:"required"`
}

// DecisionRequest input for an admin decision on a pending request.
type DecisionRequest struct {
	Decision string `json:"decision" validate:"required,oneof=approve reject"`
	Comment  string `json:"comment"`
}

// LeaveResponse a leave request for the client.
type LeaveResponse struct {
	ID           string `json:"id"`
	UserID       string `json:"user_id"`
	UserName     string `json:"user_name"`
	LeaveType    string `json:"leave_type"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	DurationDays int    `json:"duration_days"`
	Reason       string `json:"reason"`
	Status       string `json:"status"`
	AdminComment string `json:"admin_comment,omitempty"`
	CreatedAt    string `json:"created_at"`
}

// LeaveBalanceResponse the static per-type balance ledger. Unlimited types
// report -1 remaining.
type LeaveBalanceResponse struct {
	Paid   int `json:"paid"`
	Sick   int `json:"sick"`
	Unpaid int `json:"unpaid"` // -1 = unlimited, as per policy
}
