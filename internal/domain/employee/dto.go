package employee

import (
	"github.com/shopspring/decimal"

	"github.com/staffly-hq/hr-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	CardNo       string          `json:"card_no"`
	EmployeeCode string          `json:"employee_code"`
	Name         string          `json:"name"`
	Branch       string          `json:"branch"`
	BaseSalary   decimal.Decimal `json:"base_salary"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if !Branch(r.Branch).Valid() {
		errs = append(errs, validator.ValidationError{Field: "branch", Message: "must be a known branch"})
	}
	if r.BaseSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "base_salary", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID           string           `json:"-"`
	CardNo       *string          `json:"card_no,omitempty"`
	EmployeeCode *string          `json:"employee_code,omitempty"`
	Name         *string          `json:"name,omitempty"`
	Branch       *string          `json:"branch,omitempty"`
	BaseSalary   *decimal.Decimal `json:"base_salary,omitempty"`
	IsActive     *bool            `json:"is_active,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "must not be empty"})
	}
	if r.Branch != nil && !Branch(*r.Branch).Valid() {
		errs = append(errs, validator.ValidationError{Field: "branch", Message: "must be a known branch"})
	}
	if r.BaseSalary != nil && r.BaseSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "base_salary", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeFilter struct {
	Branch     *string
	Search     string
	ActiveOnly bool
}

type EmployeeResponse struct {
	ID           string          `json:"id"`
	CardNo       string          `json:"card_no"`
	EmployeeCode string          `json:"employee_code"`
	Name         string          `json:"name"`
	Branch       string          `json:"branch"`
	BaseSalary   decimal.Decimal `json:"base_salary"`
	IsActive     bool            `json:"is_active"`
	Payable      bool            `json:"payable"`
}

type ListEmployeeResponse struct {
	Data       []EmployeeResponse `json:"data"`
	TotalCount int                `json:"total_count"`
}
