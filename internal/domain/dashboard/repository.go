package dashboard

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// EmployeeCounts is the headcount split used by the stats endpoint.
type EmployeeCounts struct {
	Total  int
	Active int
}

// PayrollTotals aggregates payslips for one cycle.
type PayrollTotals struct {
	Draft    int
	Approved int
	Paid     int
	TotalNet decimal.Decimal
}

// DashboardRepository defines the aggregate queries behind the stats
// endpoint. Both store drivers implement it.
type DashboardRepository interface {
	CountEmployees(ctx context.Context) (EmployeeCounts, error)

	// CountPresentOn counts active employees whose stored status for the
	// day is present.
	CountPresentOn(ctx context.Context, date time.Time) (int, error)

	PayrollTotalsForCycle(ctx context.Context, cycleStart time.Time) (PayrollTotals, error)
}

// DashboardService assembles the stats response.
type DashboardService interface {
	GetStats(ctx context.Context) (StatsResponse, error)
}
