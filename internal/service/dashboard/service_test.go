package dashboard

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

// frozen to a Tuesday inside the June 2025 cycle
var testNow = time.Date(2025, time.June, 10, 11, 30, 0, 0, time.UTC)

type dashboardTestEnv struct {
	svc            *DashboardServiceImpl
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
	payslipRepo    payslip.PayslipRepository
}

func newDashboardTestEnv() dashboardTestEnv {
	store := memory.NewStore()
	svc := NewDashboardService(memory.NewDashboardRepository(store), testPayrollConfig).(*DashboardServiceImpl)
	svc.now = func() time.Time { return testNow }
	return dashboardTestEnv{
		svc:            svc,
		employeeRepo:   memory.NewEmployeeRepository(store),
		attendanceRepo: memory.NewAttendanceRepository(store),
		payslipRepo:    memory.NewPayslipRepository(store),
	}
}

func (env dashboardTestEnv) createEmployee(t *testing.T, code string, active bool) employee.Employee {
	t.Helper()
	emp, err := env.employeeRepo.Create(context.Background(), employee.Employee{
		EmployeeCode: code,
		Name:         "Test Employee " + code,
		Branch:       employee.BranchHyderabad,
		BaseSalary:   decimal.NewFromInt(30000),
		IsActive:     true,
	})
	require.NoError(t, err)
	if !active {
		require.NoError(t, env.employeeRepo.SetActive(context.Background(), emp.ID, false))
	}
	return emp
}

func TestDashboardService_GetStats(t *testing.T) {
	t.Parallel()
	env := newDashboardTestEnv()
	ctx := context.Background()

	a := env.createEmployee(t, "HYD0001", true)
	b := env.createEmployee(t, "HYD0002", true)
	env.createEmployee(t, "HYD0003", true)
	env.createEmployee(t, "HYD0004", false)

	for _, id := range []string{a.ID, b.ID} {
		_, err := env.attendanceRepo.Upsert(ctx, attendance.Attendance{
			EmployeeID: id,
			Date:       testNow,
			Status:     paycalc.StatusPresent,
		})
		require.NoError(t, err)
	}

	_, err := env.payslipRepo.Upsert(ctx, payslip.Payslip{
		EmployeeID:    a.ID,
		PayCycleStart: time.Date(2025, time.May, 25, 0, 0, 0, 0, time.UTC),
		PayCycleEnd:   time.Date(2025, time.June, 24, 0, 0, 0, 0, time.UTC),
		NetSalary:     decimal.NewFromInt(23077),
	})
	require.NoError(t, err)

	stats, err := env.svc.GetStats(ctx)
	require.NoError(t, err)

	assert.Equal(t, 4, stats.TotalEmployees)
	assert.Equal(t, 3, stats.ActiveEmployees)
	assert.Equal(t, 2, stats.PresentToday)
	assert.Equal(t, 1, stats.AbsentToday)
	assert.Equal(t, 66.7, stats.AttendanceRate)
	assert.Equal(t, "2025-05-25", stats.CycleStart)
	assert.Equal(t, "2025-06-24", stats.CycleEnd)
	assert.Equal(t, 1, stats.DraftPayslips)
	assert.Equal(t, 0, stats.PaidPayslips)
	assert.Equal(t, "23077", stats.TotalNetPay.String())
}

func TestDashboardService_GetStats_Empty(t *testing.T) {
	t.Parallel()
	env := newDashboardTestEnv()

	stats, err := env.svc.GetStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, stats.TotalEmployees)
	assert.Equal(t, 0, stats.PresentToday)
	assert.Equal(t, 0.0, stats.AttendanceRate)
	assert.True(t, stats.TotalNetPay.IsZero())
}

func TestDashboardService_GetStats_SundayPresentMarksIgnored(t *testing.T) {
	t.Parallel()
	env := newDashboardTestEnv()
	ctx := context.Background()

	// 2025-06-08 is a Sunday.
	sunday := time.Date(2025, time.June, 8, 11, 30, 0, 0, time.UTC)
	env.svc.now = func() time.Time { return sunday }

	emp := env.createEmployee(t, "HYD0001", true)
	_, err := env.attendanceRepo.Upsert(ctx, attendance.Attendance{
		EmployeeID: emp.ID,
		Date:       sunday,
		Status:     paycalc.StatusPresent,
	})
	require.NoError(t, err)

	stats, err := env.svc.GetStats(ctx)
	require.NoError(t, err)

	assert.Equal(t, 0, stats.PresentToday)
	assert.Equal(t, 0, stats.AbsentToday)
	assert.Equal(t, 0.0, stats.AttendanceRate)
}

func TestDashboardService_CurrentCycle_BeforeAndAfterBoundary(t *testing.T) {
	t.Parallel()
	env := newDashboardTestEnv()

	// June 10 is inside the cycle that closes June 24.
	cycle, err := env.svc.currentCycle()
	require.NoError(t, err)
	assert.Equal(t, "2025-05-25", cycle.Start.Format(time.DateOnly))

	// From the 25th the next cycle has begun.
	env.svc.now = func() time.Time { return time.Date(2025, time.June, 25, 8, 0, 0, 0, time.UTC) }
	cycle, err = env.svc.currentCycle()
	require.NoError(t, err)
	assert.Equal(t, "2025-06-25", cycle.Start.Format(time.DateOnly))
	assert.Equal(t, "2025-07-24", cycle.End.Format(time.DateOnly))

	// December 26 rolls into the January cycle of the next year.
	env.svc.now = func() time.Time { return time.Date(2025, time.December, 26, 8, 0, 0, 0, time.UTC) }
	cycle, err = env.svc.currentCycle()
	require.NoError(t, err)
	assert.Equal(t, "2025-12-25", cycle.Start.Format(time.DateOnly))
	assert.Equal(t, "2026-01-24", cycle.End.Format(time.DateOnly))
}
