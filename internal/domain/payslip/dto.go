package payslip

import (
	"github.com/shopspring/decimal"

	"github.com/staffly-hq/hr-backend-go/internal/pkg/paycalc"
	"github.com/staffly-hq/hr-backend-go/internal/pkg/validator"
)

// GeneratePayslipRequest drives the legacy single-employee flow over an
// explicit custom cycle.
type GeneratePayslipRequest struct {
	EmployeeID string `json:"employee_id"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
}

func (r *GeneratePayslipRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be YYYY-MM-DD"})
	}
	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be YYYY-MM-DD"})
	}
	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must not precede start_date"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// RunPayrollRequest drives a full payroll run for a target month.
// Month is zero-based (0 = January), the same convention the pay-cycle
// derivation uses.
type RunPayrollRequest struct {
	Month int `json:"month"`
	Year  int `json:"year"`

	// Mode selects the calculation strategy; defaults to proportional.
	Mode string `json:"mode,omitempty"`

	AbsentDeduction  *bool `json:"absent_deduction,omitempty"`
	LateDeduction    *bool `json:"late_deduction,omitempty"`
	HalfDayDeduction *bool `json:"half_day_deduction,omitempty"`
	IncludeHalfDays  *bool `json:"include_half_days,omitempty"`

	// MinimumDays excludes employees below the working-day-equivalent
	// threshold from the run entirely. An explicit zero disables the
	// filter; omitting the field falls back to the configured default.
	MinimumDays *int `json:"minimum_days,omitempty"`

	// EmployeeIDs limits the run; empty means all payable employees.
	EmployeeIDs []string `json:"employee_ids,omitempty"`
}

func (r *RunPayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Month < 0 || r.Month > 11 {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be between 0 and 11"})
	}
	if r.Year < 2020 {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "must be 2020 or later"})
	}
	if r.Mode != "" && r.Mode != string(paycalc.ModeProportional) && r.Mode != string(paycalc.ModeFlatThenDeduct) {
		errs = append(errs, validator.ValidationError{Field: "mode", Message: "must be 'proportional' or 'flat_then_deduct'"})
	}
	if r.MinimumDays != nil && *r.MinimumDays < 0 {
		errs = append(errs, validator.ValidationError{Field: "minimum_days", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PayslipResponse struct {
	ID            string          `json:"id"`
	EmployeeID    string          `json:"employee_id"`
	EmployeeName  *string         `json:"employee_name,omitempty"`
	EmployeeCode  *string         `json:"employee_code,omitempty"`
	Branch        *string         `json:"branch,omitempty"`
	PayCycleStart string          `json:"pay_cycle_start"`
	PayCycleEnd   string          `json:"pay_cycle_end"`
	CreditDate    string          `json:"credit_date"`
	BaseSalary    decimal.Decimal `json:"base_salary"`
	WorkingDays   int             `json:"working_days"`
	PresentDays   int             `json:"present_days"`
	AbsentDays    int             `json:"absent_days"`
	PerDaySalary  decimal.Decimal `json:"per_day_salary"`
	GrossSalary   decimal.Decimal `json:"gross_salary"`
	Deductions    decimal.Decimal `json:"deductions"`
	NetSalary     decimal.Decimal `json:"net_salary"`
	GeneratedAt   string          `json:"generated_at"`
	Status        string          `json:"status"`
}

type ListPayslipResponse struct {
	Data       []PayslipResponse `json:"data"`
	TotalCount int               `json:"total_count"`
}

// RunFailure reports one employee whose payslip could not be computed.
// Failures never abort the rest of the run.
type RunFailure struct {
	EmployeeID string `json:"employee_id"`
	Reason     string `json:"reason"`
}

type RunPayrollResponse struct {
	CycleStart     string            `json:"cycle_start"`
	CycleEnd       string            `json:"cycle_end"`
	CreditDate     string            `json:"credit_date"`
	WorkingDays    int               `json:"working_days"`
	Generated      int               `json:"generated"`
	SkippedNoPay   int               `json:"skipped_not_payable"`
	BelowThreshold int               `json:"skipped_below_threshold"`
	Failures       []RunFailure      `json:"failures,omitempty"`
	Payslips       []PayslipResponse `json:"payslips"`
}

type PayslipFilter struct {
	EmployeeID *string
	CycleStart *string // YYYY-MM-DD
	Status     *string
}
