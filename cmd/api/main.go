package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/staffly-hq/hr-backend-go/internal/config"
	"github.com/staffly-hq/hr-backend-go/internal/domain/attendance"
	"github.com/staffly-hq/hr-backend-go/internal/domain/dashboard"
	"github.com/staffly-hq/hr-backend-go/internal/domain/employee"
	"github.com/staffly-hq/hr-backend-go/internal/domain/payslip"
	appHTTP "github.com/staffly-hq/hr-backend-go/internal/handler/http"
	"github.com/staffly-hq/hr-backend-go/internal/pkg/cron"
	"github.com/staffly-hq/hr-backend-go/internal/pkg/database"
	"github.com/staffly-hq/hr-backend-go/internal/repository/memory"
	"github.com/staffly-hq/hr-backend-go/internal/repository/postgresql"
	attendanceService "github.com/staffly-hq/hr-backend-go/internal/service/attendance"
	dashboardService "github.com/staffly-hq/hr-backend-go/internal/service/dashboard"
	employeeService "github.com/staffly-hq/hr-backend-go/internal/service/employee"
	payslipService "github.com/staffly-hq/hr-backend-go/internal/service/payslip"
	reportService "github.com/staffly-hq/hr-backend-go/internal/service/report"
)

type repositories struct {
	employee   employee.EmployeeRepository
	attendance attendance.AttendanceRepository
	payslip    payslip.PayslipRepository
	dashboard  dashboard.DashboardRepository
}

// newRepositories builds the store driver named by STORE_DRIVER.
func newRepositories(cfg *config.Config) (repositories, error) {
	switch cfg.Store.Driver {
	case "postgres":
		db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
		if err != nil {
			return repositories{}, fmt.Errorf("failed to connect to database: %w", err)
		}
		if cfg.Store.Seed {
			if err := postgresql.SeedDefaultEmployees(context.Background(), db); err != nil {
				return repositories{}, fmt.Errorf("failed to seed database: %w", err)
			}
			slog.Info("Database seeded with sample roster")
		}
		return repositories{
			employee:   postgresql.NewEmployeeRepository(db),
			attendance: postgresql.NewAttendanceRepository(db),
			payslip:    postgresql.NewPayslipRepository(db),
			dashboard:  postgresql.NewDashboardRepository(db),
		}, nil

	case "memory":
		store := memory.NewStore()
		if cfg.Store.Seed {
			store.Seed()
			slog.Info("Memory store seeded with sample roster")
		}
		return repositories{
			employee:   memory.NewEmployeeRepository(store),
			attendance: memory.NewAttendanceRepository(store),
			payslip:    memory.NewPayslipRepository(store),
			dashboard:  memory.NewDashboardRepository(store),
		}, nil

	default:
		return repositories{}, fmt.Errorf("unsupported store driver: %s", cfg.Store.Driver)
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	repos, err := newRepositories(cfg)
	if err != nil {
		fmt.Println("Error initializing store:", err)
		return
	}

	employeeSvc := employeeService.NewEmployeeService(repos.employee)
	attendanceSvc := attendanceService.NewAttendanceService(repos.attendance, repos.employee, cfg.Payroll.LateCutoffHour)
	payslipSvc := payslipService.NewPayslipService(repos.payslip, repos.employee, repos.attendance, cfg.Payroll)
	dashboardSvc := dashboardService.NewDashboardService(repos.dashboard, cfg.Payroll)
	reportSvc := reportService.NewReportService(repos.payslip, repos.employee, repos.attendance, cfg.Payroll)

	router := appHTTP.NewRouter(cfg, appHTTP.Handlers{
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Payslip:    appHTTP.NewPayslipHandler(payslipSvc),
		Dashboard:  appHTTP.NewDashboardHandler(dashboardSvc),
		Report:     appHTTP.NewReportHandler(reportSvc),
	})

	scheduler := cron.NewScheduler()
	cron.NewAttendanceJobs(attendanceSvc).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("Starting server", "addr", addr, "store", cfg.Store.Driver, "env", cfg.App.Env)
	if err := http.ListenAndServe(addr, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
