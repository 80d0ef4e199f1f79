package paycalc

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestEnumerateDates_InclusiveAscending(t *testing.T) {
	t.Parallel()

	dates, err := EnumerateDates(date(2025, time.June, 1), date(2025, time.June, 5))
	require.NoError(t, err)

	require.Len(t, dates, 5)
	assert.Equal(t, date(2025, time.June, 1), dates[0])
	assert.Equal(t, date(2025, time.June, 5), dates[4])
}

func TestEnumerateDates_SingleDay(t *testing.T) {
	t.Parallel()

	dates, err := EnumerateDates(date(2025, time.June, 1), date(2025, time.June, 1))
	require.NoError(t, err)
	assert.Len(t, dates, 1)
}

func TestEnumerateDates_LengthMatchesSpan(t *testing.T) {
	t.Parallel()

	// len == (end - start in days) + 1, across a month boundary.
	start := date(2025, time.May, 25)
	end := date(2025, time.June, 24)

	dates, err := EnumerateDates(start, end)
	require.NoError(t, err)
	assert.Len(t, dates, int(end.Sub(start).Hours()/24)+1)
}

func TestEnumerateDates_InvertedRange(t *testing.T) {
	t.Parallel()

	_, err := EnumerateDates(date(2025, time.June, 5), date(2025, time.June, 1))
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestCountWorkingDays_FullWeekIsSix(t *testing.T) {
	t.Parallel()

	// Any full 7-day window contains exactly one Sunday.
	for offset := 0; offset < 7; offset++ {
		start := date(2025, time.June, 2).AddDate(0, 0, offset)
		assert.Equal(t, 6, CountWorkingDays(start, start.AddDate(0, 0, 6)))
	}
}

func TestCountWorkingDays_ExcludesSundays(t *testing.T) {
	t.Parallel()

	// 2025-06-01 is a Sunday.
	assert.Equal(t, 0, CountWorkingDays(date(2025, time.June, 1), date(2025, time.June, 1)))
	assert.Equal(t, 1, CountWorkingDays(date(2025, time.June, 2), date(2025, time.June, 2)))
}

func TestCountWorkingDays_InvertedRangeIsZero(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, CountWorkingDays(date(2025, time.June, 5), date(2025, time.June, 1)))
}

func TestDerivePayCycle_June(t *testing.T) {
	t.Parallel()

	cycle, err := DerivePayCycle(5, 2025)
	require.NoError(t, err)

	assert.Equal(t, date(2025, time.May, 25), cycle.Start)
	assert.Equal(t, date(2025, time.June, 24), cycle.End)
	assert.Equal(t, date(2025, time.June, 5), cycle.CreditDate)
}

func TestDerivePayCycle_JanuaryRollsBackToDecember(t *testing.T) {
	t.Parallel()

	cycle, err := DerivePayCycle(0, 2025)
	require.NoError(t, err)

	assert.Equal(t, date(2024, time.December, 25), cycle.Start)
	assert.Equal(t, date(2025, time.January, 24), cycle.End)
	assert.Equal(t, date(2025, time.January, 5), cycle.CreditDate)
}

func TestDerivePayCycle_MonthOutOfRange(t *testing.T) {
	t.Parallel()

	_, err := DerivePayCycle(12, 2025)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = DerivePayCycle(-1, 2025)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestNewPayCycle_Custom(t *testing.T) {
	t.Parallel()

	cycle, err := NewPayCycle(date(2025, time.June, 1), date(2025, time.June, 30))
	require.NoError(t, err)
	assert.Equal(t, date(2025, time.June, 1), cycle.Start)
	assert.True(t, cycle.CreditDate.IsZero())

	_, err = NewPayCycle(date(2025, time.June, 30), date(2025, time.June, 1))
	assert.ErrorIs(t, err, ErrInvalidRange)
}
