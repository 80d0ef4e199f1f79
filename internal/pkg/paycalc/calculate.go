package paycalc

import "github.com/shopspring/decimal"

// Mode selects how gross salary is derived. The two modes are not
// interchangeable: call sites must declare which one they intend.
type Mode string

const (
	// ModeProportional scales gross with workingDayEquivalent/totalWorkingDays.
	// Absence is already reflected in gross, so absence deductions on top of
	// it double-count; they default off in this mode.
	ModeProportional Mode = "proportional"

	// ModeFlatThenDeduct pays the full base salary as gross and deducts
	// absent days explicitly at the per-day rate. The legacy mode.
	ModeFlatThenDeduct Mode = "flat_then_deduct"
)

// Default deduction rates. Overridable per deployment via config.
var (
	DefaultLateDeductionRate    = decimal.NewFromFloat(0.10)
	DefaultHalfDayDeductionRate = decimal.NewFromFloat(0.50)
)

// DeductionConfig declares the calculation mode and which deduction rules
// apply. Each rule is independently toggleable.
type DeductionConfig struct {
	Mode Mode

	// AbsentDeduction adds absentDays * perDaySalary.
	AbsentDeduction bool
	// LateDeduction adds lateDays * perDaySalary * LateDeductionRate.
	LateDeduction bool
	// HalfDayDeduction adds halfDays * perDaySalary * HalfDayDeductionRate.
	// Ignored while IncludeHalfDays is set: weighting half days to 0.5 in
	// the working-day equivalent and deducting for them again would
	// double-penalize.
	HalfDayDeduction bool

	// IncludeHalfDays mirrors the aggregation policy the tally was built
	// with: half days already weighted to 0.5 working days.
	IncludeHalfDays bool

	// Rates apply exactly as given; a zero rate deducts nothing even with
	// the rule enabled. DefaultDeductionConfig supplies the standard rates.
	LateDeductionRate    decimal.Decimal
	HalfDayDeductionRate decimal.Decimal
}

// DefaultDeductionConfig returns the standard rule set for a mode.
func DefaultDeductionConfig(mode Mode) DeductionConfig {
	return DeductionConfig{
		Mode:                 mode,
		AbsentDeduction:      mode == ModeFlatThenDeduct,
		LateDeduction:        true,
		HalfDayDeduction:     true,
		IncludeHalfDays:      true,
		LateDeductionRate:    DefaultLateDeductionRate,
		HalfDayDeductionRate: DefaultHalfDayDeductionRate,
	}
}

// Figures is the advanced calculator output. All figures are rounded to the
// nearest whole currency unit.
type Figures struct {
	PerDaySalary decimal.Decimal
	GrossSalary  decimal.Decimal
	Deductions   decimal.Decimal
	NetSalary    decimal.Decimal
}

// Calculate computes payslip figures for one employee over one cycle.
// Pure and idempotent: identical inputs yield identical outputs.
//
// totalWorkingDays of zero is a degenerate cycle and fails with
// ErrDivisionByZero. Negative salary or day counts fail with
// ErrInvalidInput. Net salary is floored at zero.
func Calculate(baseSalary decimal.Decimal, tally Tally, totalWorkingDays int, cfg DeductionConfig) (Figures, error) {
	if totalWorkingDays == 0 {
		return Figures{}, ErrDivisionByZero
	}
	if totalWorkingDays < 0 || baseSalary.IsNegative() {
		return Figures{}, ErrInvalidInput
	}
	if tally.Present < 0 || tally.Absent < 0 || tally.HalfDay < 0 || tally.Late < 0 ||
		tally.WorkingDayEquivalent.IsNegative() {
		return Figures{}, ErrInvalidInput
	}

	perDay := baseSalary.Div(decimal.NewFromInt(int64(totalWorkingDays)))

	var gross decimal.Decimal
	switch cfg.Mode {
	case ModeFlatThenDeduct:
		gross = baseSalary
	case ModeProportional:
		gross = perDay.Mul(tally.WorkingDayEquivalent)
	default:
		return Figures{}, ErrInvalidInput
	}

	deductions := decimal.Zero
	if cfg.AbsentDeduction {
		deductions = deductions.Add(perDay.Mul(decimal.NewFromInt(int64(tally.Absent))))
	}
	if cfg.LateDeduction {
		deductions = deductions.Add(perDay.Mul(cfg.LateDeductionRate).Mul(decimal.NewFromInt(int64(tally.Late))))
	}
	if cfg.HalfDayDeduction && !cfg.IncludeHalfDays {
		deductions = deductions.Add(perDay.Mul(cfg.HalfDayDeductionRate).Mul(decimal.NewFromInt(int64(tally.HalfDay))))
	}

	net := gross.Sub(deductions)
	if net.IsNegative() {
		net = decimal.Zero
	}

	return Figures{
		PerDaySalary: perDay.Round(0),
		GrossSalary:  gross.Round(0),
		Deductions:   deductions.Round(0),
		NetSalary:    net.Round(0),
	}, nil
}

// LegacyFigures is the simple calculator output, rounded to two decimals.
type LegacyFigures struct {
	PerDaySalary decimal.Decimal
	AbsentDays   int
	GrossSalary  decimal.Decimal
	Deductions   decimal.Decimal
	NetSalary    decimal.Decimal
}

// CalculatePayslip is the legacy flat-then-deduct entry point: gross is the
// full base salary, every working day not present is deducted at the
// per-day rate, and figures round to two decimals. The two-decimal rounding
// here is intentional and distinct from Calculate's whole-unit rounding;
// the two stay separate operations.
func CalculatePayslip(baseSalary decimal.Decimal, presentDays, workingDays int) (LegacyFigures, error) {
	if workingDays == 0 {
		return LegacyFigures{}, ErrDivisionByZero
	}
	if workingDays < 0 || presentDays < 0 || presentDays > workingDays || baseSalary.IsNegative() {
		return LegacyFigures{}, ErrInvalidInput
	}

	perDay := baseSalary.Div(decimal.NewFromInt(int64(workingDays)))
	absent := workingDays - presentDays
	deductions := perDay.Mul(decimal.NewFromInt(int64(absent)))

	net := baseSalary.Sub(deductions)
	if net.IsNegative() {
		net = decimal.Zero
	}

	return LegacyFigures{
		PerDaySalary: perDay.Round(2),
		AbsentDays:   absent,
		GrossSalary:  baseSalary.Round(2),
		Deductions:   deductions.Round(2),
		NetSalary:    net.Round(2),
	}, nil
}

// MeetsThreshold reports whether a working-day equivalent satisfies the
// minimum-working-days filter. Employees below the threshold are excluded
// from the payroll run entirely rather than paid a reduced amount.
func MeetsThreshold(workingDayEquivalent decimal.Decimal, minimumDays int) bool {
	if minimumDays <= 0 {
		return true
	}
	return workingDayEquivalent.GreaterThanOrEqual(decimal.NewFromInt(int64(minimumDays)))
}
