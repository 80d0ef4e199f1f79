package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance records.
type AttendanceRepository interface {
	// Upsert inserts or overwrites the record keyed by (employee, date).
	Upsert(ctx context.Context, att Attendance) (Attendance, error)

	// GetByEmployeeAndDate returns the record for one employee-day, or
	// ErrAttendanceNotFound.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (Attendance, error)

	// ListByEmployee returns an employee's records with date in
	// [start, end], ascending by date.
	ListByEmployee(ctx context.Context, employeeID string, start, end time.Time) ([]Attendance, error)

	// ListByDate returns all records for one calendar day.
	ListByDate(ctx context.Context, date time.Time) ([]Attendance, error)

	// CountByStatus tallies records per raw stored status over a period.
	CountByStatus(ctx context.Context, start, end time.Time) (map[string]int, error)
}
