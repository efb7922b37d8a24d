package memstore

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/dayflow-hr/dayflow-api/internal/domain/entity"
)

// demoPassword is the shared password for all seeded accounts. Login only
// validates password length, but the hash is stored like any real signup
// would store it.
const demoPassword = "dayflow123"

// Seed populates the store with the demo workforce: one HR admin, one
// employee with full leave/attendance/payroll history, and four directory
// entries. Dates are anchored to now so the dashboard and month summaries
// have data regardless of when the process starts.
func Seed(s *Store, now time.Time) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	users := NewUserRepository(s)
	leaves := NewLeaveRepository(s)
	attendance := NewAttendanceRepository(s)
	payroll := NewPayrollRepository(s)

	admin := &entity.User{
		ID:           uuid.NewString(),
		Email:        "admin@dayflow.com",
		PasswordHash: string(hash),
		EmployeeID:   "EMP001",
		Role:         entity.RoleAdmin,
		FirstName:    "Sarah",
		LastName:     "Johnson",
		Department:   "Human Resources",
		Position:     "HR Manager",
		Phone:        "+1 555-0101",
		Address:      "123 Corporate Ave, Suite 100",
		JoinDate:     date(2022, time.January, 15),
		Status:       entity.StatusActive,
	}
	employee := &entity.User{
		ID:           uuid.NewString(),
		Email:        "employee@dayflow.com",
		PasswordHash: string(hash),
		EmployeeID:   "EMP002",
		Role:         entity.RoleEmployee,
		FirstName:    "Michael",
		LastName:     "Chen",
		Department:   "Engineering",
		Position:     "Software Developer",
		Phone:        "+1 555-0102",
		Address:      "456 Maple Street, Apt 12",
		JoinDate:     date(2023, time.March, 20),
		Status:       entity.StatusActive,
	}
	emily := directoryUser(hash, "emily.davis@dayflow.com", "EMP003", "Emily", "Davis",
		"Design", "UI/UX Designer", "+1 555-0103", date(2023, time.June, 5), entity.StatusActive)
	james := directoryUser(hash, "james.wilson@dayflow.com", "EMP004", "James", "Wilson",
		"Marketing", "Marketing Lead", "+1 555-0104", date(2021, time.September, 12), entity.StatusOnLeave)
	lisa := directoryUser(hash, "lisa.anderson@dayflow.com", "EMP005", "Lisa", "Anderson",
		"Engineering", "Senior Developer", "+1 555-0105", date(2020, time.November, 3), entity.StatusActive)
	david := directoryUser(hash, "david.brown@dayflow.com", "EMP006", "David", "Brown",
		"Operations", "Operations Manager", "+1 555-0106", date(2022, time.April, 25), entity.StatusActive)

	for _, u := range []*entity.User{admin, employee, emily, james, lisa, david} {
		if err := users.Create(u); err != nil {
			return err
		}
	}

	seedLeaves(leaves, now, employee, emily, james, lisa)
	seedAttendance(attendance, now, employee)
	seedPayroll(payroll, now, employee, admin, emily, james, lisa, david)
	return nil
}

// seedLeaves writes a mix of decided history and an open approvals queue.
func seedLeaves(repo *LeaveRepository, now time.Time, michael, emily, james, lisa *entity.User) {
	today := midnightUTC(now)

	// Michael's history: a decided vacation, a decided sick day, one pending.
	repo.Create(&entity.LeaveRequest{
		ID:           uuid.NewString(),
		UserID:       michael.ID,
		UserName:     michael.FullName(),
		LeaveType:    entity.LeavePaid,
		StartDate:    today.AddDate(0, 0, -30),
		EndDate:      today.AddDate(0, 0, -28),
		Reason:       "Family vacation",
		Status:       entity.LeaveApproved,
		AdminComment: "Approved. Enjoy your time off!",
		CreatedAt:    today.AddDate(0, 0, -40),
	})
	repo.Create(&entity.LeaveRequest{
		ID:        uuid.NewString(),
		UserID:    michael.ID,
		UserName:  michael.FullName(),
		LeaveType: entity.LeaveSick,
		StartDate: today.AddDate(0, 0, -14),
		EndDate:   today.AddDate(0, 0, -14),
		Reason:    "Flu, doctor advised rest",
		Status:    entity.LeaveApproved,
		CreatedAt: today.AddDate(0, 0, -14),
	})
	repo.Create(&entity.LeaveRequest{
		ID:        uuid.NewString(),
		UserID:    michael.ID,
		UserName:  michael.FullName(),
		LeaveType: entity.LeavePaid,
		StartDate: today.AddDate(0, 0, 14),
		EndDate:   today.AddDate(0, 0, 16),
		Reason:    "Personal work",
		Status:    entity.LeavePending,
		CreatedAt: today.AddDate(0, 0, -2),
	})

	// The approvals queue the admin sees on first login.
	repo.Create(&entity.LeaveRequest{
		ID:        uuid.NewString(),
		UserID:    emily.ID,
		UserName:  emily.FullName(),
		LeaveType: entity.LeaveSick,
		StartDate: today.AddDate(0, 0, 3),
		EndDate:   today.AddDate(0, 0, 3),
		Reason:    "Doctor appointment for annual checkup",
		Status:    entity.LeavePending,
		CreatedAt: today.AddDate(0, 0, -1),
	})
	repo.Create(&entity.LeaveRequest{
		ID:        uuid.NewString(),
		UserID:    james.ID,
		UserName:  james.FullName(),
		LeaveType: entity.LeaveUnpaid,
		StartDate: today.AddDate(0, 0, 7),
		EndDate:   today.AddDate(0, 0, 10),
		Reason:    "Extended family event out of town",
		Status:    entity.LeavePending,
		CreatedAt: today,
	})
	repo.Create(&entity.LeaveRequest{
		ID:           uuid.NewString(),
		UserID:       lisa.ID,
		UserName:     lisa.FullName(),
		LeaveType:    entity.LeavePaid,
		StartDate:    today.AddDate(0, 0, -7),
		EndDate:      today.AddDate(0, 0, -6),
		Reason:       "Wedding anniversary trip",
		Status:       entity.LeaveApproved,
		AdminComment: "Enjoy your celebration!",
		CreatedAt:    today.AddDate(0, 0, -12),
	})
}

// seedAttendance fills the current month's past weekdays for one user. A
// deterministic pattern stands in for real punches: mostly full days, the
// occasional half day, one leave day.
func seedAttendance(repo *AttendanceRepository, now time.Time, u *entity.User) {
	loc := now.Location()
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	weekday := 0
	for d := first; d.Before(today); d = d.AddDate(0, 0, 1) {
		if d.Weekday() == time.Saturday || d.Weekday() == time.Sunday {
			continue
		}
		weekday++
		rec := &entity.AttendanceRecord{
			ID:     uuid.NewString(),
			UserID: u.ID,
			Date:   d,
			Status: entity.AttendancePresent,
		}
		switch {
		case weekday%9 == 0:
			rec.Status = entity.AttendanceLeave
		case weekday%5 == 0:
			rec.Status = entity.AttendanceHalfDay
			in := d.Add(9 * time.Hour)
			out := d.Add(13 * time.Hour)
			rec.CheckIn, rec.CheckOut = &in, &out
		default:
			in := d.Add(9 * time.Hour)
			out := d.Add(17*time.Hour + 30*time.Minute)
			rec.CheckIn, rec.CheckOut = &in, &out
		}
		repo.Create(rec)
	}
}

// seedPayroll writes six months of paid history for the demo employee and a
// pending current-month run for everyone, so the admin's aggregate view has
// one row per user.
func seedPayroll(repo *PayrollRepository, now time.Time, michael *entity.User, others ...*entity.User) {
	history := []struct {
		monthsAgo  int
		basic      string
		allowances string
		deductions string
	}{
		{1, "5000", "800", "500"},
		{2, "5000", "800", "500"},
		{3, "5000", "750", "500"},
		{4, "5000", "750", "500"},
		{5, "4800", "700", "480"},
		{6, "4800", "700", "480"},
	}
	for _, h := range history {
		m := now.AddDate(0, -h.monthsAgo, 0)
		paid := time.Date(m.Year(), m.Month(), 28, 0, 0, 0, 0, time.UTC)
		repo.Create(payrollRecord(michael.ID, m, h.basic, h.allowances, h.deductions, entity.PayrollPaid, &paid))
	}

	repo.Create(payrollRecord(michael.ID, now, "5000", "800", "500", entity.PayrollPending, nil))
	salaries := []struct {
		basic      string
		allowances string
		deductions string
	}{
		{"6500", "1100", "650"},
		{"4500", "600", "450"},
		{"5200", "900", "520"},
		{"6000", "1000", "600"},
		{"5500", "850", "550"},
	}
	for i, u := range others {
		sal := salaries[i%len(salaries)]
		repo.Create(payrollRecord(u.ID, now, sal.basic, sal.allowances, sal.deductions, entity.PayrollPending, nil))
	}
}

func payrollRecord(userID string, month time.Time, basic, allowances, deductions, status string, paymentDate *time.Time) *entity.PayrollRecord {
	sal := entity.SalaryStructure{
		Basic:      decimal.RequireFromString(basic),
		Allowances: decimal.RequireFromString(allowances),
		Deductions: decimal.RequireFromString(deductions),
	}
	sal.ComputeNet()
	return &entity.PayrollRecord{
		ID:          uuid.NewString(),
		UserID:      userID,
		Month:       month.Month(),
		Year:        month.Year(),
		Salary:      sal,
		PaymentDate: paymentDate,
		Status:      status,
	}
}

func directoryUser(hash []byte, email, employeeID, first, last, department, position, phone string, joined time.Time, status string) *entity.User {
	return &entity.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		EmployeeID:   employeeID,
		Role:         entity.RoleEmployee,
		FirstName:    first,
		LastName:     last,
		Department:   department,
		Position:     position,
		Phone:        phone,
		JoinDate:     joined,
		Status:       status,
	}
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func midnightUTC(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
