package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/staffly-hq/hr-backend-go/internal/domain/dashboard"
	"github.com/staffly-hq/hr-backend-go/internal/pkg/database"
)

type dashboardRepository struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.DashboardRepository {
	return &dashboardRepository{db: db}
}

func (r *dashboardRepository) CountEmployees(ctx context.Context) (dashboard.EmployeeCounts, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT COUNT(*), COUNT(*) FILTER (WHERE is_active) FROM employees`

	var counts dashboard.EmployeeCounts
	if err := q.QueryRow(ctx, query).Scan(&counts.Total, &counts.Active); err != nil {
		return dashboard.EmployeeCounts{}, fmt.Errorf("failed to count employees: %w", err)
	}

	return counts, nil
}

func (r *dashboardRepository) CountPresentOn(ctx context.Context, date time.Time) (int, error) {
	q := GetQuerier(ctx, r.db)

	// A record marked present on a Sunday reads as week_off, so it never
	// counts here.
	query := `
		SELECT COUNT(*)
		FROM attendance a
		JOIN employees e ON e.id = a.employee_id
		WHERE a.attendance_date = $1 AND a.status = 'present' AND e.is_active
			AND EXTRACT(DOW FROM a.attendance_date) <> 0
	`

	var present int
	if err := q.QueryRow(ctx, query, date).Scan(&present); err != nil {
		return 0, fmt.Errorf("failed to count present employees: %w", err)
	}

	return present, nil
}

func (r *dashboardRepository) PayrollTotalsForCycle(ctx context.Context, cycleStart time.Time) (dashboard.PayrollTotals, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COUNT(*) FILTER (WHERE status = 'draft'),
			COUNT(*) FILTER (WHERE status = 'approved'),
			COUNT(*) FILTER (WHERE status = 'paid'),
			COALESCE(SUM(net_salary), 0)
		FROM payslips
		WHERE pay_cycle_start = $1
	`

	var totals dashboard.PayrollTotals
	err := q.QueryRow(ctx, query, cycleStart).Scan(
		&totals.Draft, &totals.Approved, &totals.Paid, &totals.TotalNet,
	)
	if err != nil {
		return dashboard.PayrollTotals{}, fmt.Errorf("failed to total payslips: %w", err)
	}

	return totals, nil
}
