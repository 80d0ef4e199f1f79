// Package fixtures provides the default data loaded when seeding is
// enabled, shared by every store driver.
package fixtures

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/staffly-hq/hr-backend-go/internal/domain/employee"
)

// GetDefaultEmployees returns the sample roster used for demos and local
// development. IDs are generated per call.
func GetDefaultEmployees() []employee.Employee {
	roster := []struct {
		cardNo string
		code   string
		name   string
		branch employee.Branch
		salary int64
	}{
		{"1001", "HYD0001", "Rajesh Kumar", employee.BranchHyderabad, 30000},
		{"1002", "HYD0002", "Priya Sharma", employee.BranchHyderabad, 25000},
		{"1003", "HYD0003", "Amit Patel", employee.BranchHyderabad, 28000},
		{"1004", "HYD0004", "Sneha Reddy", employee.BranchHyderabad, 22000},
		{"2001", "DEL0001", "Vikram Singh", employee.BranchDelhi, 32000},
		{"2002", "DEL0002", "Anita Verma", employee.BranchDelhi, 26000},
		{"2003", "DEL0003", "Rohit Gupta", employee.BranchDelhi, 24000},
	}

	now := time.Now()
	employees := make([]employee.Employee, 0, len(roster))
	for _, r := range roster {
		employees = append(employees, employee.Employee{
			ID:           uuid.NewString(),
			CardNo:       r.cardNo,
			EmployeeCode: r.code,
			Name:         r.name,
			Branch:       r.branch,
			BaseSalary:   decimal.NewFromInt(r.salary),
			IsActive:     true,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
	}
	return employees
}
