package payroll_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dayflow-hr/dayflow-api/internal/application/payroll"
	"github.com/dayflow-hr/dayflow-api/internal/domain"
	"github.com/dayflow-hr/dayflow-api/internal/domain/entity"
	"github.com/dayflow-hr/dayflow-api/internal/infrastructure/memstore"
)

// stubGenerator returns fixed bytes so tests don't render real PDFs.
type stubGenerator struct{}

func (stubGenerator) GeneratePayslip(*entity.User, *entity.PayrollRecord) ([]byte, error) {
	return []byte("%PDF-stub"), nil
}

type fixture struct {
	uc      *payroll.PayrollUseCase
	payroll *memstore.PayrollRepository
	users   *memstore.UserRepository
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memstore.New()
	users := memstore.NewUserRepository(store)
	require.NoError(t, users.Create(&entity.User{
		ID: "u1", EmployeeID: "EMP002", FirstName: "Michael", LastName: "Chen",
		Role: entity.RoleEmployee, Status: entity.StatusActive,
	}))
	repo := memstore.NewPayrollRepository(store)
	return &fixture{
		uc:      payroll.NewPayrollUseCase(repo, users, stubGenerator{}),
		payroll: repo,
		users:   users,
	}
}

func record(id, userID string, year int, month time.Month, basic, allowances, deductions int64, status string) *entity.PayrollRecord {
	sal := entity.SalaryStructure{
		Basic:      decimal.NewFromInt(basic),
		Allowances: decimal.NewFromInt(allowances),
		Deductions: decimal.NewFromInt(deductions),
	}
	sal.ComputeNet()
	return &entity.PayrollRecord{
		ID: id, UserID: userID, Year: year, Month: month, Salary: sal, Status: status,
	}
}

func TestCurrentAndHistory_NewestFirst(t *testing.T) {
	f := newFixture(t)
	now := time.Now()
	prev := now.AddDate(0, -1, 0)
	require.NoError(t, f.payroll.Create(record("old", "u1", prev.Year(), prev.Month(), 4800, 700, 480, entity.PayrollPaid)))
	require.NoError(t, f.payroll.Create(record("new", "u1", now.Year(), now.Month(), 5000, 800, 500, entity.PayrollPending)))

	cur, err := f.uc.Current("u1")
	require.NoError(t, err)
	assert.Equal(t, "new", cur.ID)
	assert.True(t, cur.Salary.Net.Equal(decimal.NewFromInt(5300)))

	hist, err := f.uc.History("u1")
	require.NoError(t, err)
	require.Len(t, hist, 2)
	assert.Equal(t, "new", hist[0].ID)
	assert.Equal(t, "old", hist[1].ID)
}

func TestCurrent_NoRecords(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.Current("u1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// YearToDate sums only this year's paid records: pending months and other
// years stay out.
func TestYearToDate(t *testing.T) {
	f := newFixture(t)
	year := time.Now().Year()
	require.NoError(t, f.payroll.Create(record("jan", "u1", year, time.January, 5000, 800, 500, entity.PayrollPaid)))
	require.NoError(t, f.payroll.Create(record("feb", "u1", year, time.February, 5000, 800, 500, entity.PayrollPaid)))
	require.NoError(t, f.payroll.Create(record("pending", "u1", year, time.March, 5000, 800, 500, entity.PayrollPending)))
	require.NoError(t, f.payroll.Create(record("lastyear", "u1", year-1, time.December, 5000, 800, 500, entity.PayrollPaid)))

	ytd, err := f.uc.YearToDate("u1")
	require.NoError(t, err)
	assert.Equal(t, year, ytd.Year)
	assert.True(t, ytd.TotalEarnings.Equal(decimal.NewFromInt(11600)), "earnings = 2 x (5000+800)")
	assert.True(t, ytd.TotalDeductions.Equal(decimal.NewFromInt(1000)))
	assert.True(t, ytd.NetPaid.Equal(decimal.NewFromInt(10600)))
}

func TestAggregateMonth_SumsAcrossUsers(t *testing.T) {
	f := newFixture(t)
	now := time.Now()
	require.NoError(t, f.payroll.Create(record("a", "u1", now.Year(), now.Month(), 5000, 800, 500, entity.PayrollPending)))
	require.NoError(t, f.payroll.Create(record("b", "u2", now.Year(), now.Month(), 4500, 600, 450, entity.PayrollPending)))
	prev := now.AddDate(0, -1, 0)
	require.NoError(t, f.payroll.Create(record("c", "u1", prev.Year(), prev.Month(), 5000, 800, 500, entity.PayrollPaid)))

	agg, err := f.uc.AggregateMonth()
	require.NoError(t, err)
	assert.Equal(t, 2, agg.Employees)
	assert.True(t, agg.TotalNet.Equal(decimal.NewFromInt(9950)))
}

func TestPayslip_OwnerAndAdminOnly(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.payroll.Create(record("rec1", "u1", 2026, time.January, 5000, 800, 500, entity.PayrollPaid)))

	pdf, filename, err := f.uc.Payslip("u1", entity.RoleEmployee, "rec1")
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-stub"), pdf)
	assert.Equal(t, "payslip-EMP002-2026-01.pdf", filename)

	_, _, err = f.uc.Payslip("someone-else", entity.RoleEmployee, "rec1")
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, _, err = f.uc.Payslip("someone-else", entity.RoleAdmin, "rec1")
	assert.NoError(t, err, "admins may fetch any payslip")

	_, _, err = f.uc.Payslip("u1", entity.RoleEmployee, "ghost")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
