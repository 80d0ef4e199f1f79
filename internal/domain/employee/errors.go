package employee

import "errors"

var (
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrEmployeeCodeExists = errors.New("employee code already exists")
	ErrInvalidBranch      = errors.New("unknown branch")
	ErrEmployeeInactive   = errors.New("employee is inactive")
)
