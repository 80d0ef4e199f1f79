package payslip

import "errors"

var (
	ErrPayslipNotFound    = errors.New("payslip not found")
	ErrPayslipAlreadyPaid = errors.New("payslip already paid, cannot modify")
	ErrEmployeeNotPayable = errors.New("employee has no base salary configured")
	ErrInvalidStatusMove  = errors.New("invalid payslip status transition")
)
