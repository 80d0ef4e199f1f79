// Package paycalc is the payroll/attendance calculation core: pure functions
// that turn a pay-cycle window, attendance records and a base salary into
// per-day rate, gross salary, deductions and net salary. It never touches
// storage, HTTP or the wall clock.
package paycalc

// Status classifies one employee-day.
type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
	StatusHalfDay Status = "half_day"
	StatusLate    Status = "late"
	StatusWeekOff Status = "week_off"
	StatusHoliday Status = "holiday"
)

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusPresent, StatusAbsent, StatusHalfDay, StatusLate, StatusWeekOff, StatusHoliday:
		return true
	}
	return false
}

// NextToggleStatus returns the next status in the manual marking cycle
// absent -> present -> half_day -> late -> absent. Week-off and holiday
// days toggle to present, same as an unmarked day. This is a UI-level
// convenience layered on top of ClassifyDay, not a replacement for it.
func NextToggleStatus(s Status) Status {
	switch s {
	case StatusPresent:
		return StatusHalfDay
	case StatusHalfDay:
		return StatusLate
	case StatusLate:
		return StatusAbsent
	default:
		return StatusPresent
	}
}
