package paycalc

import "time"

// Pay-cycle boundary defaults. The organization pays on a mid-month cycle:
// the 25th of the preceding month through the 24th of the target month, with
// salary credited on the 5th. These are business rules, not approximations;
// deployments may override them via config.
const (
	DefaultCycleStartDay = 25
	DefaultCycleEndDay   = 24
	DefaultCreditDay     = 5
)

// PayCycle is the date window payroll is computed over, plus its
// disbursement date.
type PayCycle struct {
	Start      time.Time
	End        time.Time
	CreditDate time.Time
}

// DerivePayCycle returns the pay cycle for a target month and year using
// the default cycle boundaries. month is zero-based (0 = January), matching
// the wire format used by the admin frontend. January rolls the cycle start
// back into December of the previous year.
func DerivePayCycle(month, year int) (PayCycle, error) {
	return DeriveCycle(month, year, DefaultCycleStartDay, DefaultCycleEndDay, DefaultCreditDay)
}

// DeriveCycle is DerivePayCycle with explicit boundary days, for
// deployments that override the standing policy.
func DeriveCycle(month, year, startDay, endDay, creditDay int) (PayCycle, error) {
	if month < 0 || month > 11 {
		return PayCycle{}, ErrInvalidInput
	}
	if startDay < 1 || startDay > 28 || endDay < 1 || endDay > 28 || creditDay < 1 || creditDay > 28 {
		return PayCycle{}, ErrInvalidInput
	}

	startMonth := month - 1
	startYear := year
	if month == 0 {
		startMonth = 11
		startYear = year - 1
	}

	return PayCycle{
		Start:      time.Date(startYear, time.Month(startMonth+1), startDay, 0, 0, 0, 0, time.UTC),
		End:        time.Date(year, time.Month(month+1), endDay, 0, 0, 0, 0, time.UTC),
		CreditDate: time.Date(year, time.Month(month+1), creditDay, 0, 0, 0, 0, time.UTC),
	}, nil
}

// NewPayCycle builds a custom cycle from an explicit start/end pair,
// bypassing the mid-month derivation rule. The credit date is left zero;
// callers that disburse custom cycles set it themselves.
func NewPayCycle(start, end time.Time) (PayCycle, error) {
	start, end = DateOnly(start), DateOnly(end)
	if end.Before(start) {
		return PayCycle{}, ErrInvalidRange
	}
	return PayCycle{Start: start, End: end}, nil
}

// DateOnly strips the clock from t, keeping year/month/day in UTC.
// All calendar arithmetic in this package works on day granularity.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// EnumerateDates returns every calendar date from start to end inclusive,
// in ascending order. Returns ErrInvalidRange when end precedes start.
func EnumerateDates(start, end time.Time) ([]time.Time, error) {
	start, end = DateOnly(start), DateOnly(end)
	if end.Before(start) {
		return nil, ErrInvalidRange
	}

	var dates []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates, nil
}

// CountWorkingDays counts the dates in [start, end] whose weekday is not
// Sunday. Sunday is the sole fixed non-working day; holidays are a manual
// marking concern, never part of this count. An inverted range counts zero.
func CountWorkingDays(start, end time.Time) int {
	start, end = DateOnly(start), DateOnly(end)

	working := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if d.Weekday() != time.Sunday {
			working++
		}
	}
	return working
}
