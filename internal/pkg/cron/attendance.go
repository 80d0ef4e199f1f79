package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/staffly-hq/hr-backend-go/internal/domain/attendance"
)

type AttendanceJobs struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceJobs(attendanceService attendance.AttendanceService) *AttendanceJobs {
	return &AttendanceJobs{
		attendanceService: attendanceService,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("mark_absent_employees", 1*time.Hour, j.MarkAbsentEmployees)
}

// MarkAbsentEmployees backfills absent records for the previous day so
// unpunched days show up in aggregates without waiting for payroll to
// treat them as implicitly absent.
func (j *AttendanceJobs) MarkAbsentEmployees(ctx context.Context) error {
	// Only run in the first hour after midnight.
	if time.Now().UTC().Hour() != 0 {
		return nil
	}

	yesterday := time.Now().UTC().AddDate(0, 0, -1).Format(time.DateOnly)

	marked, err := j.attendanceService.MarkAbsentees(ctx, yesterday)
	if err != nil {
		return fmt.Errorf("failed to mark absentees for %s: %w", yesterday, err)
	}

	if marked > 0 {
		slog.Info("Cron: marked absent employees", "date", yesterday, "count", marked)
	}
	return nil
}
