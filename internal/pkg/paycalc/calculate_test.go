package paycalc

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func flatConfig() DeductionConfig {
	return DeductionConfig{
		Mode:                 ModeFlatThenDeduct,
		AbsentDeduction:      true,
		IncludeHalfDays:      true,
		LateDeductionRate:    DefaultLateDeductionRate,
		HalfDayDeductionRate: DefaultHalfDayDeductionRate,
	}
}

func tallyWith(present, absent, half, late int, includeHalfDays bool) Tally {
	wde := decimal.NewFromInt(int64(present + late))
	h := decimal.NewFromInt(int64(half))
	if includeHalfDays {
		h = h.Mul(decimal.NewFromFloat(0.5))
	}
	return Tally{
		Present:              present,
		Absent:               absent,
		HalfDay:              half,
		Late:                 late,
		WorkingDayEquivalent: wde.Add(h),
	}
}

func TestCalculate_FlatThenDeduct(t *testing.T) {
	t.Parallel()

	// 30000 base over 26 working days, 20 worked, 6 absent.
	figures, err := Calculate(decimal.NewFromInt(30000), tallyWith(20, 6, 0, 0, true), 26, flatConfig())
	require.NoError(t, err)

	assert.Equal(t, "1154", figures.PerDaySalary.String())
	assert.Equal(t, "30000", figures.GrossSalary.String())
	assert.Equal(t, "6923", figures.Deductions.String())
	assert.Equal(t, "23077", figures.NetSalary.String())
}

func TestCalculate_Proportional(t *testing.T) {
	t.Parallel()

	cfg := DefaultDeductionConfig(ModeProportional)
	figures, err := Calculate(decimal.NewFromInt(30000), tallyWith(20, 6, 0, 0, true), 26, cfg)
	require.NoError(t, err)

	// Gross scales with attendance; absence is not deducted again.
	assert.Equal(t, "23077", figures.GrossSalary.String())
	assert.Equal(t, "0", figures.Deductions.String())
	assert.Equal(t, "23077", figures.NetSalary.String())
}

func TestCalculate_LateDeduction(t *testing.T) {
	t.Parallel()

	cfg := flatConfig()
	cfg.LateDeduction = true

	// 26000 over 26 days: perDay 1000. 2 late days at 10% = 200.
	figures, err := Calculate(decimal.NewFromInt(26000), tallyWith(20, 4, 0, 2, true), 26, cfg)
	require.NoError(t, err)

	assert.Equal(t, "1000", figures.PerDaySalary.String())
	// 4 absent * 1000 + 2 late * 100
	assert.Equal(t, "4200", figures.Deductions.String())
	assert.Equal(t, "21800", figures.NetSalary.String())
}

func TestCalculate_ZeroRateDeductsNothing(t *testing.T) {
	t.Parallel()

	cfg := flatConfig()
	cfg.LateDeduction = true
	cfg.LateDeductionRate = decimal.Zero

	// An explicit 0% late rate deducts nothing; only the 4 absences do.
	figures, err := Calculate(decimal.NewFromInt(26000), tallyWith(20, 4, 0, 2, true), 26, cfg)
	require.NoError(t, err)

	assert.Equal(t, "4000", figures.Deductions.String())
	assert.Equal(t, "22000", figures.NetSalary.String())
}

func TestCalculate_HalfDayDeductionMutuallyExclusive(t *testing.T) {
	t.Parallel()

	base := decimal.NewFromInt(26000)

	// Half days counted as half working days: no half-day deduction even
	// when the rule is enabled.
	cfg := flatConfig()
	cfg.HalfDayDeduction = true
	figures, err := Calculate(base, tallyWith(20, 0, 4, 0, true), 26, cfg)
	require.NoError(t, err)
	assert.Equal(t, "0", figures.Deductions.String())

	// Half days counted as full working days: deduct 50% per half day.
	cfg.IncludeHalfDays = false
	figures, err = Calculate(base, tallyWith(20, 0, 4, 0, false), 26, cfg)
	require.NoError(t, err)
	assert.Equal(t, "2000", figures.Deductions.String())
}

func TestCalculate_NetFlooredAtZero(t *testing.T) {
	t.Parallel()

	cfg := flatConfig()
	cfg.Mode = ModeProportional // tiny gross
	cfg.AbsentDeduction = true  // large deduction on top

	figures, err := Calculate(decimal.NewFromInt(30000), tallyWith(1, 25, 0, 0, true), 26, cfg)
	require.NoError(t, err)

	assert.True(t, figures.Deductions.GreaterThan(figures.GrossSalary))
	assert.Equal(t, "0", figures.NetSalary.String())
}

func TestCalculate_ZeroWorkingDays(t *testing.T) {
	t.Parallel()

	_, err := Calculate(decimal.NewFromInt(30000), tallyWith(0, 0, 0, 0, true), 0, flatConfig())
	assert.ErrorIs(t, err, ErrDivisionByZero)
}

func TestCalculate_InvalidInputs(t *testing.T) {
	t.Parallel()

	_, err := Calculate(decimal.NewFromInt(-1), tallyWith(0, 0, 0, 0, true), 26, flatConfig())
	assert.ErrorIs(t, err, ErrInvalidInput)

	bad := tallyWith(0, 0, 0, 0, true)
	bad.Absent = -1
	_, err = Calculate(decimal.NewFromInt(30000), bad, 26, flatConfig())
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = Calculate(decimal.NewFromInt(30000), tallyWith(1, 0, 0, 0, true), -5, flatConfig())
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = Calculate(decimal.NewFromInt(30000), tallyWith(1, 0, 0, 0, true), 26, DeductionConfig{Mode: "weekly"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCalculate_Idempotent(t *testing.T) {
	t.Parallel()

	tally := tallyWith(18, 5, 3, 2, true)
	a, err := Calculate(decimal.NewFromInt(28600), tally, 26, DefaultDeductionConfig(ModeFlatThenDeduct))
	require.NoError(t, err)
	b, err := Calculate(decimal.NewFromInt(28600), tally, 26, DefaultDeductionConfig(ModeFlatThenDeduct))
	require.NoError(t, err)

	assert.True(t, a.PerDaySalary.Equal(b.PerDaySalary))
	assert.True(t, a.GrossSalary.Equal(b.GrossSalary))
	assert.True(t, a.Deductions.Equal(b.Deductions))
	assert.True(t, a.NetSalary.Equal(b.NetSalary))
}

func TestCalculate_NetMonotonicInEquivalent(t *testing.T) {
	t.Parallel()

	cfg := DefaultDeductionConfig(ModeProportional)
	prev := decimal.NewFromInt(-1)

	for wde := 0; wde <= 26; wde++ {
		tally := Tally{WorkingDayEquivalent: decimal.NewFromInt(int64(wde))}
		figures, err := Calculate(decimal.NewFromInt(30000), tally, 26, cfg)
		require.NoError(t, err)

		assert.True(t, figures.NetSalary.GreaterThanOrEqual(prev),
			"net %s decreased below %s at wde=%d", figures.NetSalary, prev, wde)
		prev = figures.NetSalary
	}
}

func TestCalculatePayslip_Legacy(t *testing.T) {
	t.Parallel()

	figures, err := CalculatePayslip(decimal.NewFromInt(30000), 20, 26)
	require.NoError(t, err)

	// Two-decimal rounding, distinct from the advanced calculator.
	assert.Equal(t, "1153.85", figures.PerDaySalary.String())
	assert.Equal(t, 6, figures.AbsentDays)
	assert.Equal(t, "30000", figures.GrossSalary.Round(0).String())
	assert.Equal(t, "6923.08", figures.Deductions.String())
	assert.Equal(t, "23076.92", figures.NetSalary.String())
}

func TestCalculatePayslip_FullAttendance(t *testing.T) {
	t.Parallel()

	figures, err := CalculatePayslip(decimal.NewFromInt(26000), 26, 26)
	require.NoError(t, err)

	assert.Equal(t, 0, figures.AbsentDays)
	assert.True(t, figures.Deductions.IsZero())
	assert.True(t, figures.NetSalary.Equal(decimal.NewFromInt(26000)))
}

func TestCalculatePayslip_Errors(t *testing.T) {
	t.Parallel()

	_, err := CalculatePayslip(decimal.NewFromInt(30000), 0, 0)
	assert.ErrorIs(t, err, ErrDivisionByZero)

	_, err = CalculatePayslip(decimal.NewFromInt(30000), 27, 26)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = CalculatePayslip(decimal.NewFromInt(30000), -1, 26)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestMeetsThreshold(t *testing.T) {
	t.Parallel()

	assert.True(t, MeetsThreshold(decimal.NewFromInt(15), 15))
	assert.True(t, MeetsThreshold(decimal.NewFromFloat(15.5), 15))
	assert.False(t, MeetsThreshold(decimal.NewFromFloat(14.5), 15))
	// No threshold configured: everyone passes.
	assert.True(t, MeetsThreshold(decimal.Zero, 0))
}
