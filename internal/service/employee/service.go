package employee

import (
	"context"
	"fmt"

	"github.com/staffly-hq/hr-backend-go/internal/domain/employee"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{employeeRepo: employeeRepo}
}

func mapEmployeeToResponse(emp employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:           emp.ID,
		CardNo:       emp.CardNo,
		EmployeeCode: emp.EmployeeCode,
		Name:         emp.Name,
		Branch:       string(emp.Branch),
		BaseSalary:   emp.BaseSalary,
		IsActive:     emp.IsActive,
		Payable:      emp.Payable(),
	}
}

func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp := employee.Employee{
		CardNo:       req.CardNo,
		EmployeeCode: req.EmployeeCode,
		Name:         req.Name,
		Branch:       employee.Branch(req.Branch),
		BaseSalary:   req.BaseSalary,
		IsActive:     true,
	}

	created, err := s.employeeRepo.Create(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return mapEmployeeToResponse(created), nil
}

func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return mapEmployeeToResponse(emp), nil
}

func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.CardNo != nil {
		emp.CardNo = *req.CardNo
	}
	if req.EmployeeCode != nil {
		emp.EmployeeCode = *req.EmployeeCode
	}
	if req.Name != nil {
		emp.Name = *req.Name
	}
	if req.Branch != nil {
		emp.Branch = employee.Branch(*req.Branch)
	}
	if req.BaseSalary != nil {
		emp.BaseSalary = *req.BaseSalary
	}
	if req.IsActive != nil {
		emp.IsActive = *req.IsActive
	}

	updated, err := s.employeeRepo.Update(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to update employee: %w", err)
	}

	return mapEmployeeToResponse(updated), nil
}

func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context, filter employee.EmployeeFilter) (employee.ListEmployeeResponse, error) {
	employees, err := s.employeeRepo.List(ctx, filter)
	if err != nil {
		return employee.ListEmployeeResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, mapEmployeeToResponse(emp))
	}

	return employee.ListEmployeeResponse{
		Data:       responses,
		TotalCount: len(responses),
	}, nil
}

func (s *EmployeeServiceImpl) DeactivateEmployee(ctx context.Context, id string) error {
	return s.employeeRepo.SetActive(ctx, id, false)
}
