package memory

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/staffly-hq/hr-backend-go/internal/domain/dashboard"
	"github.com/staffly-hq/hr-backend-go/internal/domain/payslip"
	"github.com/staffly-hq/hr-backend-go/internal/pkg/paycalc"
)

type dashboardRepository struct {
	store *Store
}

func NewDashboardRepository(store *Store) dashboard.DashboardRepository {
	return &dashboardRepository{store: store}
}

func (r *dashboardRepository) CountEmployees(ctx context.Context) (dashboard.EmployeeCounts, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var counts dashboard.EmployeeCounts
	for _, emp := range r.store.employees {
		counts.Total++
		if emp.IsActive {
			counts.Active++
		}
	}

	return counts, nil
}

func (r *dashboardRepository) CountPresentOn(ctx context.Context, date time.Time) (int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	date = paycalc.DateOnly(date)

	var present int
	for _, att := range r.store.attendance {
		if !att.Date.Equal(date) || att.EffectiveStatus() != paycalc.StatusPresent {
			continue
		}
		if emp, ok := r.store.employees[att.EmployeeID]; ok && emp.IsActive {
			present++
		}
	}

	return present, nil
}

func (r *dashboardRepository) PayrollTotalsForCycle(ctx context.Context, cycleStart time.Time) (dashboard.PayrollTotals, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	cycleStart = paycalc.DateOnly(cycleStart)

	totals := dashboard.PayrollTotals{TotalNet: decimal.Zero}
	for _, p := range r.store.payslips {
		if !p.PayCycleStart.Equal(cycleStart) {
			continue
		}
		switch p.Status {
		case payslip.StatusDraft:
			totals.Draft++
		case payslip.StatusApproved:
			totals.Approved++
		case payslip.StatusPaid:
			totals.Paid++
		}
		totals.TotalNet = totals.TotalNet.Add(p.NetSalary)
	}

	return totals, nil
}
