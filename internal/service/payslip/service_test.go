package payslip

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffly-hq/hr-backend-go/internal/config"
	"github.com/staffly-hq/hr-backend-go/internal/domain/attendance"
	"github.com/staffly-hq/hr-backend-go/internal/domain/employee"
	"github.com/staffly-hq/hr-backend-go/internal/domain/payslip"
	"github.com/staffly-hq/hr-backend-go/internal/pkg/paycalc"
	"github.com/staffly-hq/hr-backend-go/internal/repository/memory"
)

var testPayrollConfig = config.PayrollConfig{
	CycleStartDay:        25,
	CycleEndDay:          24,
	CreditDay:            5,
	LateCutoffHour:       10,
	LateDeductionRate:    0.10,
	HalfDayDeductionRate: 0.50,
	MinimumWorkingDays:   15,
}

type payslipTestEnv struct {
	svc            payslip.PayslipService
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
}

func newPayslipTestEnv() payslipTestEnv {
	store := memory.NewStore()
	employeeRepo := memory.NewEmployeeRepository(store)
	attendanceRepo := memory.NewAttendanceRepository(store)
	payslipRepo := memory.NewPayslipRepository(store)
	return payslipTestEnv{
		svc:            NewPayslipService(payslipRepo, employeeRepo, attendanceRepo, testPayrollConfig),
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
	}
}

func (env payslipTestEnv) createEmployee(t *testing.T, code string, salary int64) employee.Employee {
	t.Helper()
	emp, err := env.employeeRepo.Create(context.Background(), employee.Employee{
		EmployeeCode: code,
		Name:         "Test Employee " + code,
		Branch:       employee.BranchHyderabad,
		BaseSalary:   decimal.NewFromInt(salary),
		IsActive:     true,
	})
	require.NoError(t, err)
	return emp
}

// markWorkingDays marks the first n non-Sunday days of [start, end] with a
// status.
func (env payslipTestEnv) markWorkingDays(t *testing.T, employeeID string, start, end time.Time, n int, status paycalc.Status) {
	t.Helper()
	dates, err := paycalc.EnumerateDates(start, end)
	require.NoError(t, err)

	marked := 0
	for _, date := range dates {
		if marked == n {
			return
		}
		if date.Weekday() == time.Sunday {
			continue
		}
		_, err := env.attendanceRepo.Upsert(context.Background(), attendance.Attendance{
			EmployeeID: employeeID,
			Date:       date,
			Status:     status,
		})
		require.NoError(t, err)
		marked++
	}
}

// The standing mid-month cycle for June 2025: 26 working days.
var (
	juneCycleStart = time.Date(2025, time.May, 25, 0, 0, 0, 0, time.UTC)
	juneCycleEnd   = time.Date(2025, time.June, 24, 0, 0, 0, 0, time.UTC)
)

func TestPayslipService_Generate_LegacyFigures(t *testing.T) {
	t.Parallel()
	env := newPayslipTestEnv()
	emp := env.createEmployee(t, "HYD0001", 30000)

	env.markWorkingDays(t, emp.ID, juneCycleStart, juneCycleEnd, 20, paycalc.StatusPresent)

	resp, err := env.svc.Generate(context.Background(), payslip.GeneratePayslipRequest{
		EmployeeID: emp.ID,
		StartDate:  "2025-05-25",
		EndDate:    "2025-06-24",
	})
	require.NoError(t, err)

	assert.Equal(t, 26, resp.WorkingDays)
	assert.Equal(t, 20, resp.PresentDays)
	assert.Equal(t, 6, resp.AbsentDays)
	assert.Equal(t, "1153.85", resp.PerDaySalary.StringFixed(2))
	assert.Equal(t, "30000.00", resp.GrossSalary.StringFixed(2))
	assert.Equal(t, "6923.08", resp.Deductions.StringFixed(2))
	assert.Equal(t, "23076.92", resp.NetSalary.StringFixed(2))
	assert.Equal(t, string(payslip.StatusDraft), resp.Status)
	assert.Equal(t, "2025-06-05", resp.CreditDate)
}

func TestPayslipService_Generate_NotPayable(t *testing.T) {
	t.Parallel()
	env := newPayslipTestEnv()
	emp := env.createEmployee(t, "HYD0001", 0)

	_, err := env.svc.Generate(context.Background(), payslip.GeneratePayslipRequest{
		EmployeeID: emp.ID,
		StartDate:  "2025-05-25",
		EndDate:    "2025-06-24",
	})
	assert.ErrorIs(t, err, payslip.ErrEmployeeNotPayable)
}

func TestPayslipService_Generate_Idempotent(t *testing.T) {
	t.Parallel()
	env := newPayslipTestEnv()
	emp := env.createEmployee(t, "HYD0001", 30000)

	env.markWorkingDays(t, emp.ID, juneCycleStart, juneCycleEnd, 26, paycalc.StatusPresent)

	req := payslip.GeneratePayslipRequest{
		EmployeeID: emp.ID, StartDate: "2025-05-25", EndDate: "2025-06-24",
	}

	first, err := env.svc.Generate(context.Background(), req)
	require.NoError(t, err)
	second, err := env.svc.Generate(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.NetSalary, second.NetSalary)

	list, err := env.svc.ListPayslips(context.Background(), payslip.PayslipFilter{})
	require.NoError(t, err)
	assert.Equal(t, 1, list.TotalCount)
}

func TestPayslipService_RunPayroll_Proportional(t *testing.T) {
	t.Parallel()
	env := newPayslipTestEnv()
	emp := env.createEmployee(t, "HYD0001", 30000)

	env.markWorkingDays(t, emp.ID, juneCycleStart, juneCycleEnd, 20, paycalc.StatusPresent)

	resp, err := env.svc.RunPayroll(context.Background(), payslip.RunPayrollRequest{
		Month: 5, Year: 2025,
	})
	require.NoError(t, err)

	assert.Equal(t, "2025-05-25", resp.CycleStart)
	assert.Equal(t, "2025-06-24", resp.CycleEnd)
	assert.Equal(t, "2025-06-05", resp.CreditDate)
	assert.Equal(t, 26, resp.WorkingDays)
	assert.Equal(t, 1, resp.Generated)
	require.Len(t, resp.Payslips, 1)

	p := resp.Payslips[0]
	assert.Equal(t, "23077", p.GrossSalary.String())
	assert.Equal(t, "0", p.Deductions.String())
	assert.Equal(t, "23077", p.NetSalary.String())
}

func TestPayslipService_RunPayroll_FlatThenDeduct(t *testing.T) {
	t.Parallel()
	env := newPayslipTestEnv()
	emp := env.createEmployee(t, "HYD0001", 30000)

	env.markWorkingDays(t, emp.ID, juneCycleStart, juneCycleEnd, 20, paycalc.StatusPresent)

	resp, err := env.svc.RunPayroll(context.Background(), payslip.RunPayrollRequest{
		Month: 5, Year: 2025, Mode: string(paycalc.ModeFlatThenDeduct),
	})
	require.NoError(t, err)
	require.Len(t, resp.Payslips, 1)

	p := resp.Payslips[0]
	assert.Equal(t, "1154", p.PerDaySalary.String())
	assert.Equal(t, "30000", p.GrossSalary.String())
	assert.Equal(t, "6923", p.Deductions.String())
	assert.Equal(t, "23077", p.NetSalary.String())
}

func TestPayslipService_RunPayroll_SkipsAndThresholds(t *testing.T) {
	t.Parallel()
	env := newPayslipTestEnv()
	full := env.createEmployee(t, "HYD0001", 30000)
	unpaid := env.createEmployee(t, "HYD0002", 0)
	sparse := env.createEmployee(t, "HYD0003", 25000)

	env.markWorkingDays(t, full.ID, juneCycleStart, juneCycleEnd, 26, paycalc.StatusPresent)
	// Below the 15-day minimum.
	env.markWorkingDays(t, sparse.ID, juneCycleStart, juneCycleEnd, 5, paycalc.StatusPresent)

	resp, err := env.svc.RunPayroll(context.Background(), payslip.RunPayrollRequest{
		Month: 5, Year: 2025,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, resp.Generated)
	assert.Equal(t, 1, resp.SkippedNoPay)
	assert.Equal(t, 1, resp.BelowThreshold)
	assert.Empty(t, resp.Failures)
	require.Len(t, resp.Payslips, 1)
	assert.Equal(t, full.ID, resp.Payslips[0].EmployeeID)
	assert.Equal(t, "30000", resp.Payslips[0].NetSalary.String())
	_ = unpaid
}

func TestPayslipService_RunPayroll_ZeroMinimumDaysDisablesThreshold(t *testing.T) {
	t.Parallel()
	env := newPayslipTestEnv()
	emp := env.createEmployee(t, "HYD0001", 30000)

	// Well below the configured 15-day default.
	env.markWorkingDays(t, emp.ID, juneCycleStart, juneCycleEnd, 5, paycalc.StatusPresent)

	zero := 0
	resp, err := env.svc.RunPayroll(context.Background(), payslip.RunPayrollRequest{
		Month: 5, Year: 2025, MinimumDays: &zero,
	})
	require.NoError(t, err)

	assert.Equal(t, 0, resp.BelowThreshold)
	assert.Equal(t, 1, resp.Generated)
	require.Len(t, resp.Payslips, 1)
	assert.Equal(t, emp.ID, resp.Payslips[0].EmployeeID)
}

func TestPayslipService_RunPayroll_EmployeeSubset(t *testing.T) {
	t.Parallel()
	env := newPayslipTestEnv()
	a := env.createEmployee(t, "HYD0001", 30000)
	b := env.createEmployee(t, "HYD0002", 25000)

	env.markWorkingDays(t, a.ID, juneCycleStart, juneCycleEnd, 26, paycalc.StatusPresent)
	env.markWorkingDays(t, b.ID, juneCycleStart, juneCycleEnd, 26, paycalc.StatusPresent)

	resp, err := env.svc.RunPayroll(context.Background(), payslip.RunPayrollRequest{
		Month: 5, Year: 2025, EmployeeIDs: []string{b.ID},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, resp.Generated)
	require.Len(t, resp.Payslips, 1)
	assert.Equal(t, b.ID, resp.Payslips[0].EmployeeID)
}

func TestPayslipService_StatusLifecycle(t *testing.T) {
	t.Parallel()
	env := newPayslipTestEnv()
	emp := env.createEmployee(t, "HYD0001", 30000)

	env.markWorkingDays(t, emp.ID, juneCycleStart, juneCycleEnd, 26, paycalc.StatusPresent)

	resp, err := env.svc.RunPayroll(context.Background(), payslip.RunPayrollRequest{Month: 5, Year: 2025})
	require.NoError(t, err)
	require.Len(t, resp.Payslips, 1)
	id := resp.Payslips[0].ID

	// Cannot pay a draft.
	_, err = env.svc.MarkPaid(context.Background(), id)
	assert.ErrorIs(t, err, payslip.ErrInvalidStatusMove)

	approved, err := env.svc.Approve(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, string(payslip.StatusApproved), approved.Status)

	// Cannot approve twice.
	_, err = env.svc.Approve(context.Background(), id)
	assert.ErrorIs(t, err, payslip.ErrInvalidStatusMove)

	paid, err := env.svc.MarkPaid(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, string(payslip.StatusPaid), paid.Status)
}

func TestPayslipService_RunPayroll_PaidIsImmutable(t *testing.T) {
	t.Parallel()
	env := newPayslipTestEnv()
	emp := env.createEmployee(t, "HYD0001", 30000)

	env.markWorkingDays(t, emp.ID, juneCycleStart, juneCycleEnd, 26, paycalc.StatusPresent)

	resp, err := env.svc.RunPayroll(context.Background(), payslip.RunPayrollRequest{Month: 5, Year: 2025})
	require.NoError(t, err)
	id := resp.Payslips[0].ID

	_, err = env.svc.Approve(context.Background(), id)
	require.NoError(t, err)
	_, err = env.svc.MarkPaid(context.Background(), id)
	require.NoError(t, err)

	rerun, err := env.svc.RunPayroll(context.Background(), payslip.RunPayrollRequest{Month: 5, Year: 2025})
	require.NoError(t, err)

	assert.Equal(t, 0, rerun.Generated)
	require.Len(t, rerun.Failures, 1)
	assert.Equal(t, emp.ID, rerun.Failures[0].EmployeeID)

	got, err := env.svc.GetPayslip(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, string(payslip.StatusPaid), got.Status)
}

func TestPayslipService_RunPayroll_InvalidMonth(t *testing.T) {
	t.Parallel()
	env := newPayslipTestEnv()

	_, err := env.svc.RunPayroll(context.Background(), payslip.RunPayrollRequest{Month: 12, Year: 2025})
	assert.Error(t, err)
}
