package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID           string
	CardNo       string
	EmployeeCode string
	Name         string
	Branch       Branch
	BaseSalary   decimal.Decimal
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Branch string

const (
	BranchHyderabad Branch = "Hyderabad"
	BranchDelhi     Branch = "Delhi"
)

// Branches is the fixed set of organization branches.
var Branches = []Branch{BranchHyderabad, BranchDelhi}

func (b Branch) Valid() bool {
	for _, known := range Branches {
		if b == known {
			return true
		}
	}
	return false
}

// Payable reports whether the employee participates in payroll runs.
// A zero base salary means the employee is not yet configured for pay.
func (e Employee) Payable() bool {
	return e.IsActive && e.BaseSalary.IsPositive()
}
