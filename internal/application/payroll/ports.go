package payroll

import "github.com/dayflow-hr/dayflow-api/internal/domain/entity"

// PayslipGenerator renders a payslip document for one payroll record. The
// maroto adapter in infrastructure/pdf implements it.
type PayslipGenerator interface {
	GeneratePayslip(user *entity.User, rec *entity.PayrollRecord) ([]byte, error)
}
