package entity

// Capability is a UI-level permission derived from a role. Capabilities are
// advisory: they tell the client what to render, they are not a security
// boundary. Route enforcement happens separately in the HTTP middleware.
type Capability string

const (
	CapViewAllEmployees     Capability = "view-all-employees"
	CapApproveLeave         Capability = "approve-leave"
	CapViewReports          Capability = "view-reports"
	CapViewAggregatePayroll Capability = "view-aggregate-payroll"

	CapViewOwnAttendance Capability = "view-own-attendance"
	CapRequestLeave      Capability = "request-leave"
	CapViewOwnPayslip    Capability = "view-own-payslip"
)

// CapabilitiesForRole is a pure derivation from role to capability set.
// Unknown roles get no capabilities.
func CapabilitiesForRole(role string) []Capability {
	switch role {
	case RoleAdmin:
		return []Capability{
			CapViewAllEmployees,
			CapApproveLeave,
			CapViewReports,
			CapViewAggregatePayroll,
		}
	case RoleEmployee:
		return []Capability{
			CapViewOwnAttendance,
			CapRequestLeave,
			CapViewOwnPayslip,
		}
	default:
		return nil
	}
}
