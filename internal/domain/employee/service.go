package employee

import "context"

// EmployeeService defines business logic for employee administration.
type EmployeeService interface {
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetEmployee(ctx context.Context, id string) (EmployeeResponse, error)
	UpdateEmployee(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)
	ListEmployees(ctx context.Context, filter EmployeeFilter) (ListEmployeeResponse, error)

	// DeactivateEmployee soft-deactivates; the record stays referenced by
	// attendance and payslips.
	DeactivateEmployee(ctx context.Context, id string) error
}
