package memory

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/staffly-hq/hr-backend-go/internal/domain/employee"
)

type employeeRepository struct {
	store *Store
}

func NewEmployeeRepository(store *Store) employee.EmployeeRepository {
	return &employeeRepository{store: store}
}

func (r *employeeRepository) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if emp.EmployeeCode != "" {
		if _, exists := r.store.employeeByCode[emp.EmployeeCode]; exists {
			return employee.Employee{}, employee.ErrEmployeeCodeExists
		}
	}

	now := time.Now()
	emp.ID = uuid.NewString()
	emp.CreatedAt = now
	emp.UpdatedAt = now

	r.store.employees[emp.ID] = emp
	if emp.EmployeeCode != "" {
		r.store.employeeByCode[emp.EmployeeCode] = emp.ID
	}

	return emp, nil
}

func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	emp, ok := r.store.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (r *employeeRepository) GetByCode(ctx context.Context, code string) (employee.Employee, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	id, ok := r.store.employeeByCode[code]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return r.store.employees[id], nil
}

func (r *employeeRepository) Update(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	current, ok := r.store.employees[emp.ID]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}

	if emp.EmployeeCode != current.EmployeeCode {
		if owner, exists := r.store.employeeByCode[emp.EmployeeCode]; exists && owner != emp.ID {
			return employee.Employee{}, employee.ErrEmployeeCodeExists
		}
		delete(r.store.employeeByCode, current.EmployeeCode)
		if emp.EmployeeCode != "" {
			r.store.employeeByCode[emp.EmployeeCode] = emp.ID
		}
	}

	emp.CreatedAt = current.CreatedAt
	emp.UpdatedAt = time.Now()
	r.store.employees[emp.ID] = emp

	return emp, nil
}

func (r *employeeRepository) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	employees := make([]employee.Employee, 0, len(r.store.employees))
	for _, emp := range r.store.employees {
		if filter.ActiveOnly && !emp.IsActive {
			continue
		}
		if filter.Branch != nil && string(emp.Branch) != *filter.Branch {
			continue
		}
		if filter.Search != "" {
			needle := strings.ToLower(filter.Search)
			if !strings.Contains(strings.ToLower(emp.Name), needle) &&
				!strings.Contains(strings.ToLower(emp.EmployeeCode), needle) {
				continue
			}
		}
		employees = append(employees, emp)
	}

	sort.Slice(employees, func(i, j int) bool {
		return employees[i].Name < employees[j].Name
	})

	return employees, nil
}

func (r *employeeRepository) SetActive(ctx context.Context, id string, active bool) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	emp, ok := r.store.employees[id]
	if !ok {
		return employee.ErrEmployeeNotFound
	}

	emp.IsActive = active
	emp.UpdatedAt = time.Now()
	r.store.employees[id] = emp

	return nil
}
