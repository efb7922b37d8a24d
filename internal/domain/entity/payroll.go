package entity

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// Payroll statuses.
const (
	PayrollPending = "pending"
	PayrollPaid    = "paid"
)

// SalaryStructure breaks a month's pay into its components. All amounts are
// decimals; Net = Basic + Allowances - Deductions.
type SalaryStructure struct {
	Basic      decimal.Decimal
	Allowances decimal.Decimal
	Deductions decimal.Decimal
	Net        decimal.Decimal
}

// ComputeNet recalculates Net from the components.
func (s *SalaryStructure) ComputeNet() {
	s.Net = s.Basic.Add(s.Allowances).Sub(s.Deductions)
}

// PayrollRecord is one user's pay for one month.
type PayrollRecord struct {
	ID          string
	UserID      string
	Month       time.Month
	Year        int
	Salary      SalaryStructure
	PaymentDate *time.Time
	Status      string // pending, paid
}

// MonthLabel returns a display label such as "December 2025".
func (r *PayrollRecord) MonthLabel() string {
	return r.Month.String() + " " + strconv.Itoa(r.Year)
}
