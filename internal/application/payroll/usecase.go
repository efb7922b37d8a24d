package payroll

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dayflow-hr/dayflow-api/internal/application/dto"
	"github.com/dayflow-hr/dayflow-api/internal/domain"
	"github.com/dayflow-hr/dayflow-api/internal/domain/entity"
	"github.com/dayflow-hr/dayflow-api/internal/domain/repository"
)

const dateLayout = "2006-01-02"

// PayrollUseCase serves salary structures, payment history, year-to-date
// totals, the admin aggregate, and payslip generation.
type PayrollUseCase struct {
	payroll repository.PayrollRepository
	users   repository.UserRepository
	slips   PayslipGenerator
}

// NewPayrollUseCase builds the payroll use case.
func NewPayrollUseCase(payroll repository.PayrollRepository, users repository.UserRepository, slips PayslipGenerator) *PayrollUseCase {
	return &PayrollUseCase{payroll: payroll, users: users, slips: slips}
}

// Current returns the user's most recent payroll record.
func (uc *PayrollUseCase) Current(userID string) (*dto.PayrollRecordDTO, error) {
	recs, err := uc.payroll.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, domain.ErrNotFound
	}
	out := toPayrollDTO(recs[0])
	return &out, nil
}

// History returns the user's payment history, newest month first.
func (uc *PayrollUseCase) History(userID string) ([]dto.PayrollRecordDTO, error) {
	recs, err := uc.payroll.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PayrollRecordDTO, 0, len(recs))
	for _, r := range recs {
		out = append(out, toPayrollDTO(r))
	}
	return out, nil
}

// YearToDate sums the user's paid records for the current year. Earnings are
// basic + allowances; net is the sum of net pays.
func (uc *PayrollUseCase) YearToDate(userID string) (*dto.YearToDateDTO, error) {
	recs, err := uc.payroll.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	year := time.Now().Year()
	out := &dto.YearToDateDTO{
		Year:            year,
		TotalEarnings:   decimal.Zero,
		TotalDeductions: decimal.Zero,
		NetPaid:         decimal.Zero,
	}
	for _, r := range recs {
		if r.Year != year || r.Status != entity.PayrollPaid {
			continue
		}
		out.TotalEarnings = out.TotalEarnings.Add(r.Salary.Basic).Add(r.Salary.Allowances)
		out.TotalDeductions = out.TotalDeductions.Add(r.Salary.Deductions)
		out.NetPaid = out.NetPaid.Add(r.Salary.Net)
	}
	return out, nil
}

// AggregateMonth totals the current month's payroll across all employees
// (admin view).
func (uc *PayrollUseCase) AggregateMonth() (*dto.AggregatePayrollDTO, error) {
	now := time.Now()
	recs, err := uc.payroll.ListForMonth(now.Year(), now.Month())
	if err != nil {
		return nil, err
	}
	total := decimal.Zero
	for _, r := range recs {
		total = total.Add(r.Salary.Net)
	}
	return &dto.AggregatePayrollDTO{
		Month:     fmt.Sprintf("%s %d", now.Month().String(), now.Year()),
		Employees: len(recs),
		TotalNet:  total,
	}, nil
}

// Payslip renders the PDF payslip for one payroll record. Only the owner or
// an admin may fetch it; anyone else gets ErrForbidden.
func (uc *PayrollUseCase) Payslip(requesterID, requesterRole, recordID string) ([]byte, string, error) {
	rec, err := uc.payroll.GetByID(recordID)
	if err != nil {
		return nil, "", err
	}
	if rec == nil {
		return nil, "", domain.ErrNotFound
	}
	if rec.UserID != requesterID && requesterRole != entity.RoleAdmin {
		return nil, "", domain.ErrForbidden
	}
	user, err := uc.users.GetByID(rec.UserID)
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		return nil, "", domain.ErrUserNotFound
	}
	pdf, err := uc.slips.GeneratePayslip(user, rec)
	if err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("payslip-%s-%04d-%02d.pdf", user.EmployeeID, rec.Year, int(rec.Month))
	return pdf, filename, nil
}

func toPayrollDTO(r *entity.PayrollRecord) dto.PayrollRecordDTO {
	out := dto.PayrollRecordDTO{
		ID:    r.ID,
		Month: r.MonthLabel(),
		Salary: dto.SalaryDTO{
			Basic:      r.Salary.Basic,
			Allowances: r.Salary.Allowances,
			Deductions: r.Salary.Deductions,
			Net:        r.Salary.Net,
		},
		Status: r.Status,
	}
	if r.PaymentDate != nil {
		out.PaymentDate = r.PaymentDate.Format(dateLayout)
	}
	return out
}
