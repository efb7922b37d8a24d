package dto

import "github.com/shopspring/decimal"

// SalaryDTO one month's salary breakdown.
type SalaryDTO struct {
	Basic      decimal.Decimal `json:"basic"`
	Allowances decimal.Decimal `json:"allowances"`
	Deductions decimal.Decimal `json:"deductions"`
	Net        decimal.Decimal `json:"net"`
}

// PayrollRecordDTO one payroll history row.
type PayrollRecordDTO struct {
	ID          string    `json:"id"`
	Month       string    `json:"month"` // e.g. "December 2025"
	Salary      SalaryDTO `json:"salary"`
	PaymentDate string    `json:"payment_date,omitempty"`
	Status      string    `json:"status"`
}

// YearToDateDTO summed figures for the current year.
type YearToDateDTO struct {
	Year            int             `json:"year"`
	TotalEarnings   decimal.Decimal `json:"total_earnings"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`
	NetPaid         decimal.Decimal `json:"net_paid"`
}

// AggregatePayrollDTO admin view: total payroll across employees for a month.
type AggregatePayrollDTO struct {
	Month     string          `json:"month"`
	Employees int             `json:"employees"`
	TotalNet  decimal.Decimal `json:"total_net"`
}
