package employee

import "context"

// EmployeeRepository defines data access methods for employee records.
type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByCode(ctx context.Context, code string) (Employee, error)
	Update(ctx context.Context, emp Employee) (Employee, error)
	List(ctx context.Context, filter EmployeeFilter) ([]Employee, error)

	// SetActive flips the soft-deactivation flag. Employees are never hard
	// deleted while payslips reference them.
	SetActive(ctx context.Context, id string, active bool) error
}
