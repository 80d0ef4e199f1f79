package attendance

import (
	"time"

	"github.com/staffly-hq/hr-backend-go/internal/pkg/paycalc"
)

// Attendance is one employee's status for one calendar day. At most one
// record exists per (employee, date); marking an already-marked date
// overwrites the prior status.
type Attendance struct {
	ID         string
	EmployeeID string
	Date       time.Time
	Status     paycalc.Status
	ClockIn    *time.Time
	ClockOut   *time.Time
	TotalHours *float64
	MarkedAt   time.Time
	MarkedBy   *string
	CreatedAt  time.Time
}

// EffectiveStatus is the status used for rate purposes: Sundays read as
// week_off regardless of what is stored for the day.
func (a Attendance) EffectiveStatus() paycalc.Status {
	if a.Date.Weekday() == time.Sunday {
		return paycalc.StatusWeekOff
	}
	return a.Status
}
