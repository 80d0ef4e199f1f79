package report

import "context"

// ReportService renders XLSX exports for the admin frontend. Each method
// returns the workbook bytes and a download filename.
type ReportService interface {
	// PayrollXLSX exports the payslips of the cycle derived from the
	// target month (zero-based) and year.
	PayrollXLSX(ctx context.Context, month, year int) ([]byte, string, error)

	// AttendanceXLSX exports the attendance register for a date period.
	AttendanceXLSX(ctx context.Context, startDate, endDate string) ([]byte, string, error)
}
