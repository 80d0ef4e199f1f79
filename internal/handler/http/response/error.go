package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/staffly-hq/hr-backend-go/internal/domain/attendance"
	"github.com/staffly-hq/hr-backend-go/internal/domain/employee"
	"github.com/staffly-hq/hr-backend-go/internal/domain/payslip"
	"github.com/staffly-hq/hr-backend-go/internal/pkg/paycalc"
	"github.com/staffly-hq/hr-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		Conflict(w, "Employee code already exists")
	case errors.Is(err, employee.ErrInvalidBranch):
		BadRequest(w, "Unknown branch", nil)
	case errors.Is(err, employee.ErrEmployeeInactive):
		Conflict(w, "Employee is inactive")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrInvalidStatus):
		BadRequest(w, "Invalid attendance status", nil)
	case errors.Is(err, attendance.ErrInvalidDate):
		BadRequest(w, "Invalid date, expected YYYY-MM-DD", nil)

	// Payslip domain errors
	case errors.Is(err, payslip.ErrPayslipNotFound):
		NotFound(w, "Payslip not found")
	case errors.Is(err, payslip.ErrPayslipAlreadyPaid):
		Conflict(w, "Payslip already paid and is immutable")
	case errors.Is(err, payslip.ErrEmployeeNotPayable):
		BadRequest(w, "Employee has no base salary configured", nil)
	case errors.Is(err, payslip.ErrInvalidStatusMove):
		Conflict(w, "Invalid payslip status transition")

	// Calculation errors
	case errors.Is(err, paycalc.ErrDivisionByZero):
		BadRequest(w, "Cycle has no working days", nil)
	case errors.Is(err, paycalc.ErrInvalidInput):
		BadRequest(w, "Invalid calculation input", nil)
	case errors.Is(err, paycalc.ErrInvalidRange):
		BadRequest(w, "End date precedes start date", nil)

	// Default
	default:
		slog.Error("unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
