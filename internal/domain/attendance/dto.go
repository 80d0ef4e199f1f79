package attendance

import (
	"github.com/staffly-hq/hr-backend-go/internal/pkg/paycalc"
	"github.com/staffly-hq/hr-backend-go/internal/pkg/validator"
)

type MarkAttendanceRequest struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"` // YYYY-MM-DD
	Status     string `json:"status"`
	MarkedBy   string `json:"marked_by,omitempty"`
}

func (r *MarkAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be YYYY-MM-DD"})
	}
	if !paycalc.Status(r.Status).Valid() {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be a known status"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// RecordPunchesRequest carries one day's raw clock punches, as imported
// from the punch terminal. The status is derived, not supplied.
type RecordPunchesRequest struct {
	EmployeeID string  `json:"employee_id"`
	Date       string  `json:"date"`
	ClockIn    *string `json:"clock_in,omitempty"`  // HH:MM:SS
	ClockOut   *string `json:"clock_out,omitempty"` // HH:MM:SS
	MarkedBy   string  `json:"marked_by,omitempty"`
}

func (r *RecordPunchesRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be YYYY-MM-DD"})
	}
	if r.ClockIn != nil {
		if _, ok := validator.IsValidClockTime(*r.ClockIn); !ok {
			errs = append(errs, validator.ValidationError{Field: "clock_in", Message: "must be HH:MM:SS"})
		}
	}
	if r.ClockOut != nil {
		if _, ok := validator.IsValidClockTime(*r.ClockOut); !ok {
			errs = append(errs, validator.ValidationError{Field: "clock_out", Message: "must be HH:MM:SS"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ToggleAttendanceRequest struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	MarkedBy   string `json:"marked_by,omitempty"`
}

func (r *ToggleAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be YYYY-MM-DD"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type BulkMarkRequest struct {
	EmployeeIDs []string `json:"employee_ids"`
	StartDate   string   `json:"start_date"`
	EndDate     string   `json:"end_date"`
	Status      string   `json:"status"`
	MarkedBy    string   `json:"marked_by,omitempty"`
}

func (r *BulkMarkRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.EmployeeIDs) == 0 {
		errs = append(errs, validator.ValidationError{Field: "employee_ids", Message: "at least one employee is required"})
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
	if !paycalc.Status(r.Status).Valid() {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be a known status"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AttendanceResponse struct {
	ID         string   `json:"id"`
	EmployeeID string   `json:"employee_id"`
	Date       string   `json:"date"`
	Status     string   `json:"status"`
	ClockIn    *string  `json:"clock_in,omitempty"`
	ClockOut   *string  `json:"clock_out,omitempty"`
	TotalHours *float64 `json:"total_hours,omitempty"`
	MarkedAt   string   `json:"marked_at"`
	MarkedBy   *string  `json:"marked_by,omitempty"`
}

type ListAttendanceResponse struct {
	Data       []AttendanceResponse `json:"data"`
	TotalCount int                  `json:"total_count"`
}

// SummaryResponse is the period roll-up used by the admin dashboard.
type SummaryResponse struct {
	StartDate      string  `json:"start_date"`
	EndDate        string  `json:"end_date"`
	Total          int     `json:"total"`
	Present        int     `json:"present"`
	Absent         int     `json:"absent"`
	HalfDay        int     `json:"half_day"`
	Late           int     `json:"late"`
	WeekOff        int     `json:"week_off"`
	AttendanceRate float64 `json:"attendance_rate"`
}
