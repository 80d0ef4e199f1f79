package attendance

import "context"

// AttendanceService defines business logic for attendance marking.
type AttendanceService interface {
	// Mark upserts an explicit status for one employee-day, filling the
	// canonical punch times for the status.
	Mark(ctx context.Context, req MarkAttendanceRequest) (AttendanceResponse, error)

	// RecordPunches classifies a day from its raw clock punches and
	// upserts the derived status.
	RecordPunches(ctx context.Context, req RecordPunchesRequest) (AttendanceResponse, error)

	// Toggle advances the day through the manual marking cycle
	// absent -> present -> half_day -> late -> absent.
	Toggle(ctx context.Context, req ToggleAttendanceRequest) (AttendanceResponse, error)

	// BulkMark marks a date range for many employees, skipping Sundays.
	BulkMark(ctx context.Context, req BulkMarkRequest) (int, error)

	// ListByEmployee returns an employee's records over a period.
	ListByEmployee(ctx context.Context, employeeID, startDate, endDate string) (ListAttendanceResponse, error)

	// Summary rolls up stored statuses over a period.
	Summary(ctx context.Context, startDate, endDate string) (SummaryResponse, error)

	// MarkAbsentees inserts absent records for active employees with no
	// record on the given day. No-op on Sundays. Returns how many records
	// were written. Run daily by the scheduler.
	MarkAbsentees(ctx context.Context, dateStr string) (int, error)
}
