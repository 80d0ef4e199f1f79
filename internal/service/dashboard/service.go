package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/staffly-hq/hr-backend-go/internal/config"
	"github.com/staffly-hq/hr-backend-go/internal/domain/dashboard"
	"github.com/staffly-hq/hr-backend-go/internal/pkg/paycalc"
)

type DashboardServiceImpl struct {
	dashboardRepo dashboard.DashboardRepository
	payrollCfg    config.PayrollConfig
	now           func() time.Time
}

func NewDashboardService(dashboardRepo dashboard.DashboardRepository, payrollCfg config.PayrollConfig) dashboard.DashboardService {
	return &DashboardServiceImpl{
		dashboardRepo: dashboardRepo,
		payrollCfg:    payrollCfg,
		now:           time.Now,
	}
}

// currentCycle is the pay cycle the wall clock falls in: before the cycle
// start day the current month's cycle is still open, on or after it the
// next month's cycle has begun.
func (s *DashboardServiceImpl) currentCycle() (paycalc.PayCycle, error) {
	today := paycalc.DateOnly(s.now())

	month := int(today.Month()) - 1
	year := today.Year()
	if today.Day() >= s.payrollCfg.CycleStartDay {
		month++
		if month > 11 {
			month = 0
			year++
		}
	}

	return paycalc.DeriveCycle(month, year,
		s.payrollCfg.CycleStartDay, s.payrollCfg.CycleEndDay, s.payrollCfg.CreditDay)
}

func (s *DashboardServiceImpl) GetStats(ctx context.Context) (dashboard.StatsResponse, error) {
	counts, err := s.dashboardRepo.CountEmployees(ctx)
	if err != nil {
		return dashboard.StatsResponse{}, fmt.Errorf("failed to count employees: %w", err)
	}

	today := paycalc.DateOnly(s.now())
	present, err := s.dashboardRepo.CountPresentOn(ctx, today)
	if err != nil {
		return dashboard.StatsResponse{}, fmt.Errorf("failed to count today's attendance: %w", err)
	}

	cycle, err := s.currentCycle()
	if err != nil {
		return dashboard.StatsResponse{}, err
	}

	totals, err := s.dashboardRepo.PayrollTotalsForCycle(ctx, cycle.Start)
	if err != nil {
		return dashboard.StatsResponse{}, fmt.Errorf("failed to total payroll: %w", err)
	}

	absent := counts.Active - present
	if today.Weekday() == time.Sunday || absent < 0 {
		absent = 0
	}

	return dashboard.StatsResponse{
		TotalEmployees:  counts.Total,
		ActiveEmployees: counts.Active,
		PresentToday:    present,
		AbsentToday:     absent,
		AttendanceRate:  paycalc.AttendanceRate(present, counts.Active),
		CycleStart:      cycle.Start.Format(time.DateOnly),
		CycleEnd:        cycle.End.Format(time.DateOnly),
		DraftPayslips:   totals.Draft,
		PaidPayslips:    totals.Paid,
		TotalNetPay:     totals.TotalNet,
	}, nil
}
