package paycalc

import "time"

// DefaultLateCutoffHour is the 24-hour clock hour at or after which a
// clock-in with no clock-out counts as late rather than half-day.
const DefaultLateCutoffHour = 10

// ClassifyDay maps a day's raw punches to a status. The check order is
// significant: the Sunday rule wins over any punches, and the both-punches
// case is decided before the single-punch cases.
//
//   - Sunday: week_off, unconditionally. Punches on Sunday are
//     informational only.
//   - Both punches: present.
//   - Clock-in only: late when the in-hour >= lateCutoffHour, else half_day.
//   - Clock-out only: half_day. An out-only day may be a data-entry artifact
//     rather than deliberate policy; it is kept visible as a half day
//     instead of being dropped, pending product clarification.
//   - No punches: absent.
//
// Holiday is never produced here; it exists only as a manual override.
func ClassifyDay(date time.Time, clockIn, clockOut *time.Time, lateCutoffHour int) Status {
	if date.Weekday() == time.Sunday {
		return StatusWeekOff
	}

	switch {
	case clockIn != nil && clockOut != nil:
		return StatusPresent
	case clockIn != nil:
		if clockIn.Hour() >= lateCutoffHour {
			return StatusLate
		}
		return StatusHalfDay
	case clockOut != nil:
		return StatusHalfDay
	default:
		return StatusAbsent
	}
}
