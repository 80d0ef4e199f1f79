package payslip

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusDraft    Status = "draft"
	StatusApproved Status = "approved"
	StatusPaid     Status = "paid"
)

func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusApproved, StatusPaid:
		return true
	}
	return false
}

// Payslip is the computed payroll output for one employee over one pay
// cycle. At most one exists per (employee, cycle start); regeneration
// updates the existing row. Once paid it is immutable.
type Payslip struct {
	ID            string
	EmployeeID    string
	PayCycleStart time.Time
	PayCycleEnd   time.Time
	CreditDate    time.Time
	BaseSalary    decimal.Decimal
	WorkingDays   int
	PresentDays   int
	AbsentDays    int
	PerDaySalary  decimal.Decimal
	GrossSalary   decimal.Decimal
	Deductions    decimal.Decimal
	NetSalary     decimal.Decimal
	GeneratedAt   time.Time
	Status        Status
	CreatedAt     time.Time

	// Joined fields
	EmployeeName *string
	EmployeeCode *string
	Branch       *string
}
