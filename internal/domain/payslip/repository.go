package payslip

import (
	"context"
	"time"
)

// PayslipRepository defines data access methods for payslips.
type PayslipRepository interface {
	// Upsert inserts or updates the payslip keyed by
	// (employee, cycle start). Recomputation never duplicates.
	Upsert(ctx context.Context, p Payslip) (Payslip, error)

	GetByID(ctx context.Context, id string) (Payslip, error)
	GetByEmployeeAndCycle(ctx context.Context, employeeID string, cycleStart time.Time) (Payslip, error)
	List(ctx context.Context, filter PayslipFilter) ([]Payslip, error)

	// UpdateStatus moves a payslip through draft -> approved -> paid.
	UpdateStatus(ctx context.Context, id string, status Status) (Payslip, error)
}
