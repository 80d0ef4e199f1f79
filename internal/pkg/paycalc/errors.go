package paycalc

import "errors"

// Calculation errors. All are local to a single call and propagate
// synchronously; this package has no retries and no partial-failure state.
var (
	ErrInvalidRange   = errors.New("invalid date range: end before start")
	ErrInvalidInput   = errors.New("invalid input")
	ErrDivisionByZero = errors.New("total working days is zero")
)
