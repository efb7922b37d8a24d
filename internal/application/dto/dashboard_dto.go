package dto

import "github.com/shopspring/decimal"

// AdminDashboardDTO organization-wide stats for the admin home view.
type AdminDashboardDTO struct {
	TotalEmployees   int             `json:"total_employees"`
	PresentToday     int             `json:"present_today"`
	PendingLeaves    int             `json:"pending_leaves"`
	PayrollThisMonth decimal.Decimal `json:"payroll_this_month"`
}

// EmployeeDashboardDTO personal stats for the employee home view.
type EmployeeDashboardDTO struct {
	DaysWorked      int `json:"days_worked"`
	LeaveBalance    int `json:"leave_balance"`
	PendingRequests int `json:"pending_requests"`
}

// DashboardDTO role-split summary; exactly one of Admin/Employee is set.
type DashboardDTO struct {
	Role     string                `json:"role"`
	Greeting string                `json:"greeting"`
	Admin    *AdminDashboardDTO    `json:"admin,omitempty"`
	Employee *EmployeeDashboardDTO `json:"employee,omitempty"`
}
