package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/dayflow-hr/dayflow-api/internal/application/attendance"
	"github.com/dayflow-hr/dayflow-api/internal/application/auth"
	"github.com/dayflow-hr/dayflow-api/internal/application/dashboard"
	"github.com/dayflow-hr/dayflow-api/internal/application/directory"
	"github.com/dayflow-hr/dayflow-api/internal/application/leave"
	"github.com/dayflow-hr/dayflow-api/internal/application/payroll"
	"github.com/dayflow-hr/dayflow-api/internal/application/profile"
	"github.com/dayflow-hr/dayflow-api/internal/domain/entity"
	"github.com/dayflow-hr/dayflow-api/internal/domain/repository"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	LeaveUC      *leave.LeaveUseCase
	AttendanceUC *attendance.AttendanceUseCase
	PayrollUC    *payroll.PayrollUseCase
	DirectoryUC  *directory.DirectoryUseCase
	DashboardUC  *dashboard.DashboardUseCase
	ProfileUC    *profile.ProfileUseCase
	Users        repository.UserRepository
	JWTSecret    string
	LoginDelay   time.Duration
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (public except logout/me/capabilities, which need a session)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.LoginDelay)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/signup", authHandler.Signup)
	authGroup.Post("/logout", AuthMiddleware(deps.JWTSecret), authHandler.Logout)
	authGroup.Get("/me", AuthMiddleware(deps.JWTSecret), authHandler.Me)
	authGroup.Get("/capabilities", AuthMiddleware(deps.JWTSecret), authHandler.Capabilities)

	// Everything below requires a Bearer token.
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	adminOnly := RequireRole(entity.RoleAdmin)

	// Leave lifecycle
	leaves := protected.Group("/leaves")
	leaveHandler := NewLeaveHandler(deps.LeaveUC, deps.Users)
	leaves.Post("/", leaveHandler.Submit)
	leaves.Get("/", leaveHandler.ListOwn)
	leaves.Get("/balance", leaveHandler.Balance)
	leaves.Get("/pending", adminOnly, leaveHandler.ListPending)
	leaves.Get("/decided", adminOnly, leaveHandler.ListDecided)
	leaves.Post("/:id/decision", adminOnly, leaveHandler.Decide)

	// Attendance
	att := protected.Group("/attendance")
	attendanceHandler := NewAttendanceHandler(deps.AttendanceUC)
	att.Post("/check-in", attendanceHandler.CheckIn)
	att.Post("/check-out", attendanceHandler.CheckOut)
	att.Get("/summary", attendanceHandler.MonthSummary)

	// Payroll
	pay := protected.Group("/payroll")
	payrollHandler := NewPayrollHandler(deps.PayrollUC)
	pay.Get("/current", payrollHandler.Current)
	pay.Get("/history", payrollHandler.History)
	pay.Get("/ytd", payrollHandler.YearToDate)
	pay.Get("/aggregate", adminOnly, payrollHandler.AggregateMonth)
	pay.Get("/:id/payslip", payrollHandler.Payslip)

	// Employee directory (admin)
	employees := protected.Group("/employees", adminOnly)
	directoryHandler := NewDirectoryHandler(deps.DirectoryUC)
	employees.Get("/", directoryHandler.List)
	employees.Get("/stats", directoryHandler.Stats)
	employees.Get("/departments", directoryHandler.Departments)

	// Dashboard and profile
	dashboardHandler := NewDashboardHandler(deps.DashboardUC, deps.Users)
	protected.Get("/dashboard", dashboardHandler.Summary)

	profileHandler := NewProfileHandler(deps.ProfileUC)
	protected.Get("/profile", profileHandler.Get)
	protected.Put("/profile", profileHandler.Update)
}
