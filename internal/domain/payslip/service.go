package payslip

import "context"

// PayslipService defines business logic for payroll processing.
type PayslipService interface {
	// Generate computes one payslip over a custom cycle using the legacy
	// flat-then-deduct calculation.
	Generate(ctx context.Context, req GeneratePayslipRequest) (PayslipResponse, error)

	// RunPayroll computes payslips for every payable employee over the
	// derived mid-month cycle. Per-employee failures are collected in the
	// response; one bad record never aborts the batch.
	RunPayroll(ctx context.Context, req RunPayrollRequest) (RunPayrollResponse, error)

	GetPayslip(ctx context.Context, id string) (PayslipResponse, error)
	ListPayslips(ctx context.Context, filter PayslipFilter) (ListPayslipResponse, error)

	// Approve moves draft -> approved. MarkPaid moves approved -> paid;
	// paid payslips are immutable afterwards.
	Approve(ctx context.Context, id string) (PayslipResponse, error)
	MarkPaid(ctx context.Context, id string) (PayslipResponse, error)
}
