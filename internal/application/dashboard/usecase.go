// Package dashboard builds the role-split home view summary: organization
// stats for admins, personal stats for employees. The split mirrors the
// capability sets, so an employee's dashboard never aggregates other users.
package dashboard

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/dayflow-hr/dayflow-api/internal/application/dto"
	appleave "github.com/dayflow-hr/dayflow-api/internal/application/leave"
	"github.com/dayflow-hr/dayflow-api/internal/domain/entity"
	"github.com/dayflow-hr/dayflow-api/internal/domain/repository"
)

// DashboardUseCase aggregates the stores into the home view numbers.
type DashboardUseCase struct {
	users      repository.UserRepository
	leaves     repository.LeaveRepository
	attendance repository.AttendanceRepository
	payroll    repository.PayrollRepository
}

// NewDashboardUseCase builds the dashboard use case.
func NewDashboardUseCase(
	users repository.UserRepository,
	leaves repository.LeaveRepository,
	attendance repository.AttendanceRepository,
	payroll repository.PayrollRepository,
) *DashboardUseCase {
	return &DashboardUseCase{users: users, leaves: leaves, attendance: attendance, payroll: payroll}
}

// Summary builds the dashboard for the given user according to their role.
func (uc *DashboardUseCase) Summary(user *entity.User) (*dto.DashboardDTO, error) {
	out := &dto.DashboardDTO{
		Role:     user.Role,
		Greeting: greeting(time.Now().Hour()) + ", " + user.FirstName + "!",
	}
	if user.Role == entity.RoleAdmin {
		admin, err := uc.adminSummary()
		if err != nil {
			return nil, err
		}
		out.Admin = admin
		return out, nil
	}
	emp, err := uc.employeeSummary(user.ID)
	if err != nil {
		return nil, err
	}
	out.Employee = emp
	return out, nil
}

func (uc *DashboardUseCase) adminSummary() (*dto.AdminDashboardDTO, error) {
	users, err := uc.users.List()
	if err != nil {
		return nil, err
	}
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	present, err := uc.attendance.CountByStatusOn(today, entity.AttendancePresent)
	if err != nil {
		return nil, err
	}
	pending, err := uc.leaves.ListPending()
	if err != nil {
		return nil, err
	}
	monthRecs, err := uc.payroll.ListForMonth(now.Year(), now.Month())
	if err != nil {
		return nil, err
	}
	total := decimal.Zero
	for _, r := range monthRecs {
		total = total.Add(r.Salary.Net)
	}
	return &dto.AdminDashboardDTO{
		TotalEmployees:   len(users),
		PresentToday:     present,
		PendingLeaves:    len(pending),
		PayrollThisMonth: total,
	}, nil
}

func (uc *DashboardUseCase) employeeSummary(userID string) (*dto.EmployeeDashboardDTO, error) {
	now := time.Now()
	recs, err := uc.attendance.ListByUserMonth(userID, now.Year(), now.Month())
	if err != nil {
		return nil, err
	}
	worked := 0
	for _, r := range recs {
		if r.Status == entity.AttendancePresent || r.Status == entity.AttendanceHalfDay {
			worked++
		}
	}
	own, err := uc.leaves.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	pending := 0
	for _, r := range own {
		if r.Status == entity.LeavePending {
			pending++
		}
	}
	return &dto.EmployeeDashboardDTO{
		DaysWorked:      worked,
		LeaveBalance:    appleave.DefaultPaidBalance,
		PendingRequests: pending,
	}, nil
}

func greeting(hour int) string {
	switch {
	case hour < 12:
		return "Good morning"
	case hour < 18:
		return "Good afternoon"
	default:
		return "Good evening"
	}
}
