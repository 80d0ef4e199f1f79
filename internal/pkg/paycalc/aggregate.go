package paycalc

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// DayRecord is the slice of an attendance record this package needs:
// one status for one employee-day.
type DayRecord struct {
	Date   time.Time
	Status Status
}

// Tally holds per-status counts for one employee over a period, plus the
// working-day-equivalent those counts credit the employee with.
type Tally struct {
	Present int
	Absent  int
	HalfDay int
	Late    int
	WeekOff int
	Holiday int

	// WorkingDayEquivalent = present + late + half_day weighted by the
	// half-day policy. Fractional when half days count as half.
	WorkingDayEquivalent decimal.Decimal
}

var halfDayWeight = decimal.NewFromFloat(0.5)

// Aggregate filters records to [start, end] and tallies counts per status.
// Days in the period with no record are treated as absent unless the day is
// a Sunday, which is week_off regardless of any stored record. With
// includeHalfDays a half day contributes 0.5 to the working-day equivalent;
// without it a half day contributes a full day (and is expected to be
// penalized through the half-day deduction rule instead).
func Aggregate(records []DayRecord, start, end time.Time, includeHalfDays bool) (Tally, error) {
	dates, err := EnumerateDates(start, end)
	if err != nil {
		return Tally{}, err
	}

	byDate := make(map[time.Time]Status, len(records))
	for _, r := range records {
		byDate[DateOnly(r.Date)] = r.Status
	}

	var t Tally
	for _, d := range dates {
		if d.Weekday() == time.Sunday {
			t.WeekOff++
			continue
		}

		status, ok := byDate[d]
		if !ok {
			t.Absent++
			continue
		}

		switch status {
		case StatusPresent:
			t.Present++
		case StatusLate:
			t.Late++
		case StatusHalfDay:
			t.HalfDay++
		case StatusWeekOff:
			t.WeekOff++
		case StatusHoliday:
			t.Holiday++
		default:
			t.Absent++
		}
	}

	wde := decimal.NewFromInt(int64(t.Present + t.Late))
	half := decimal.NewFromInt(int64(t.HalfDay))
	if includeHalfDays {
		half = half.Mul(halfDayWeight)
	}
	t.WorkingDayEquivalent = wde.Add(half)

	return t, nil
}

// AttendanceRate returns present/total as a percentage rounded to one
// decimal place, for dashboard display. A total of zero yields 0, not NaN.
func AttendanceRate(present, total int) float64 {
	if total <= 0 {
		return 0
	}
	return math.Round(float64(present)/float64(total)*1000) / 10
}
