package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/dayflow-hr/dayflow-api/internal/application/attendance"
	"github.com/dayflow-hr/dayflow-api/internal/application/auth"
	"github.com/dayflow-hr/dayflow-api/internal/application/dashboard"
	"github.com/dayflow-hr/dayflow-api/internal/application/directory"
	"github.com/dayflow-hr/dayflow-api/internal/application/leave"
	"github.com/dayflow-hr/dayflow-api/internal/application/payroll"
	"github.com/dayflow-hr/dayflow-api/internal/application/profile"
	"github.com/dayflow-hr/dayflow-api/internal/infrastructure/memstore"
	infrapdf "github.com/dayflow-hr/dayflow-api/internal/infrastructure/pdf"
	httpRouter "github.com/dayflow-hr/dayflow-api/internal/interfaces/http"
	"github.com/dayflow-hr/dayflow-api/pkg/config"
	"github.com/dayflow-hr/dayflow-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	store := memstore.New()
	if cfg.Auth.SeedDemoData {
		if err := memstore.Seed(store, time.Now()); err != nil {
			log.Fatal().Err(err).Msg("seed demo data")
		}
		log.Info().Msg("demo workforce seeded")
	}

	userRepo := memstore.NewUserRepository(store)
	leaveRepo := memstore.NewLeaveRepository(store)
	attendanceRepo := memstore.NewAttendanceRepository(store)
	payrollRepo := memstore.NewPayrollRepository(store)

	authUC := auth.NewAuthUseCase(userRepo, store, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	leaveUC := leave.NewLeaveUseCase(leaveRepo)
	attendanceUC := attendance.NewAttendanceUseCase(attendanceRepo)
	payslipGen := infrapdf.NewMarotoPayslipGenerator()
	payrollUC := payroll.NewPayrollUseCase(payrollRepo, userRepo, payslipGen)
	directoryUC := directory.NewDirectoryUseCase(userRepo)
	dashboardUC := dashboard.NewDashboardUseCase(userRepo, leaveRepo, attendanceRepo, payrollRepo)
	profileUC := profile.NewProfileUseCase(userRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI locally: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Dayflow API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		LeaveUC:      leaveUC,
		AttendanceUC: attendanceUC,
		PayrollUC:    payrollUC,
		DirectoryUC:  directoryUC,
		DashboardUC:  dashboardUC,
		ProfileUC:    profileUC,
		Users:        userRepo,
		JWTSecret:    cfg.JWT.Secret,
		LoginDelay:   time.Duration(cfg.Auth.SimulatedDelayMS) * time.Millisecond,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, closing server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
