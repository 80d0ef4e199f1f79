package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"

	"github.com/staffly-hq/hr-backend-go/internal/config"
)

type Handlers struct {
	Employee   EmployeeHandler
	Attendance AttendanceHandler
	Payslip    PayslipHandler
	Dashboard  DashboardHandler
	Report     ReportHandler
}

func NewRouter(cfg *config.Config, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hr-backend"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok\n"))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/employees", func(r chi.Router) {
			r.Get("/", h.Employee.List)
			r.Post("/", h.Employee.Create)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.Employee.Get)
				r.Put("/", h.Employee.Update)
				r.Delete("/", h.Employee.Deactivate)
			})
		})

		r.Route("/attendance", func(r chi.Router) {
			r.Post("/mark", h.Attendance.Mark)
			r.Post("/punch", h.Attendance.RecordPunches)
			r.Post("/toggle", h.Attendance.Toggle)
			r.Post("/bulk", h.Attendance.BulkMark)
			r.Get("/summary", h.Attendance.Summary)
			r.Get("/employee/{employeeID}", h.Attendance.ListByEmployee)
		})

		r.Route("/payslips", func(r chi.Router) {
			r.Get("/", h.Payslip.List)
			r.Post("/generate", h.Payslip.Generate)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.Payslip.Get)
				r.Post("/approve", h.Payslip.Approve)
				r.Post("/pay", h.Payslip.MarkPaid)
			})
		})

		r.Post("/payroll/run", h.Payslip.RunPayroll)

		r.Get("/dashboard/stats", h.Dashboard.GetStats)

		r.Route("/reports", func(r chi.Router) {
			r.Get("/payroll.xlsx", h.Report.PayrollXLSX)
			r.Get("/attendance.xlsx", h.Report.AttendanceXLSX)
		})
	})

	return r
}
