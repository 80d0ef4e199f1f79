package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/staffly-hq/hr-backend-go/internal/domain/attendance"
	"github.com/staffly-hq/hr-backend-go/internal/domain/employee"
	"github.com/staffly-hq/hr-backend-go/internal/pkg/paycalc"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	lateCutoffHour int
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	lateCutoffHour int,
) attendance.AttendanceService {
	if lateCutoffHour <= 0 {
		lateCutoffHour = paycalc.DefaultLateCutoffHour
	}
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		lateCutoffHour: lateCutoffHour,
	}
}

// canonicalPunches returns the punch times a manual mark records for a
// status. These match what the punch-machine import would have produced
// for a typical day of that status; statuses without work get none.
func canonicalPunches(status paycalc.Status, date time.Time) (clockIn, clockOut *time.Time, totalHours *float64) {
	at := func(hour int) *time.Time {
		t := time.Date(date.Year(), date.Month(), date.Day(), hour, 0, 0, 0, date.Location())
		return &t
	}
	hours := func(h float64) *float64 { return &h }

	switch status {
	case paycalc.StatusPresent:
		return at(9), at(18), hours(8)
	case paycalc.StatusHalfDay:
		return at(9), at(13), hours(4)
	case paycalc.StatusLate:
		return at(10), at(18), hours(7)
	}
	return nil, nil, nil
}

func mapAttendanceToResponse(att attendance.Attendance) attendance.AttendanceResponse {
	resp := attendance.AttendanceResponse{
		ID:         att.ID,
		EmployeeID: att.EmployeeID,
		Date:       att.Date.Format(time.DateOnly),
		Status:     string(att.Status),
		TotalHours: att.TotalHours,
		MarkedAt:   att.MarkedAt.Format(time.RFC3339),
		MarkedBy:   att.MarkedBy,
	}
	if att.ClockIn != nil {
		s := att.ClockIn.Format("15:04:05")
		resp.ClockIn = &s
	}
	if att.ClockOut != nil {
		s := att.ClockOut.Format("15:04:05")
		resp.ClockOut = &s
	}
	return resp
}

func (s *AttendanceServiceImpl) mark(ctx context.Context, employeeID string, date time.Time, status paycalc.Status, markedBy string) (attendance.Attendance, error) {
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return attendance.Attendance{}, err
	}

	clockIn, clockOut, totalHours := canonicalPunches(status, date)

	att := attendance.Attendance{
		EmployeeID: employeeID,
		Date:       paycalc.DateOnly(date),
		Status:     status,
		ClockIn:    clockIn,
		ClockOut:   clockOut,
		TotalHours: totalHours,
	}
	if markedBy != "" {
		att.MarkedBy = &markedBy
	}

	saved, err := s.attendanceRepo.Upsert(ctx, att)
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to upsert attendance: %w", err)
	}
	return saved, nil
}

func (s *AttendanceServiceImpl) Mark(ctx context.Context, req attendance.MarkAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	date, _ := time.Parse(time.DateOnly, req.Date)

	saved, err := s.mark(ctx, req.EmployeeID, date, paycalc.Status(req.Status), req.MarkedBy)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return mapAttendanceToResponse(saved), nil
}

func (s *AttendanceServiceImpl) RecordPunches(ctx context.Context, req attendance.RecordPunchesRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	date, _ := time.Parse(time.DateOnly, req.Date)

	onDate := func(punch *string) *time.Time {
		if punch == nil {
			return nil
		}
		p, _ := time.Parse("15:04:05", *punch)
		t := time.Date(date.Year(), date.Month(), date.Day(), p.Hour(), p.Minute(), p.Second(), 0, time.UTC)
		return &t
	}
	clockIn := onDate(req.ClockIn)
	clockOut := onDate(req.ClockOut)

	att := attendance.Attendance{
		EmployeeID: req.EmployeeID,
		Date:       paycalc.DateOnly(date),
		Status:     paycalc.ClassifyDay(date, clockIn, clockOut, s.lateCutoffHour),
		ClockIn:    clockIn,
		ClockOut:   clockOut,
	}
	if clockIn != nil && clockOut != nil && clockOut.After(*clockIn) {
		hours := clockOut.Sub(*clockIn).Hours()
		att.TotalHours = &hours
	}
	if req.MarkedBy != "" {
		att.MarkedBy = &req.MarkedBy
	}

	saved, err := s.attendanceRepo.Upsert(ctx, att)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to upsert attendance: %w", err)
	}

	return mapAttendanceToResponse(saved), nil
}

func (s *AttendanceServiceImpl) Toggle(ctx context.Context, req attendance.ToggleAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	date, _ := time.Parse(time.DateOnly, req.Date)

	var current paycalc.Status
	existing, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, req.EmployeeID, date)
	switch {
	case err == nil:
		current = existing.Status
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		// Unmarked day toggles to present.
	default:
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to read attendance: %w", err)
	}

	next := paycalc.NextToggleStatus(current)

	saved, err := s.mark(ctx, req.EmployeeID, date, next, req.MarkedBy)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return mapAttendanceToResponse(saved), nil
}

func (s *AttendanceServiceImpl) BulkMark(ctx context.Context, req attendance.BulkMarkRequest) (int, error) {
	if err := req.Validate(); err != nil {
		return 0, err
	}

	start, _ := time.Parse(time.DateOnly, req.StartDate)
	end, _ := time.Parse(time.DateOnly, req.EndDate)

	dates, err := paycalc.EnumerateDates(start, end)
	if err != nil {
		return 0, err
	}

	status := paycalc.Status(req.Status)

	marked := 0
	for _, employeeID := range req.EmployeeIDs {
		for _, date := range dates {
			if date.Weekday() == time.Sunday {
				continue
			}
			if _, err := s.mark(ctx, employeeID, date, status, req.MarkedBy); err != nil {
				return marked, err
			}
			marked++
		}
	}

	return marked, nil
}

func (s *AttendanceServiceImpl) ListByEmployee(ctx context.Context, employeeID, startDate, endDate string) (attendance.ListAttendanceResponse, error) {
	start, err := time.Parse(time.DateOnly, startDate)
	if err != nil {
		return attendance.ListAttendanceResponse{}, attendance.ErrInvalidDate
	}
	end, err := time.Parse(time.DateOnly, endDate)
	if err != nil {
		return attendance.ListAttendanceResponse{}, attendance.ErrInvalidDate
	}

	records, err := s.attendanceRepo.ListByEmployee(ctx, employeeID, start, end)
	if err != nil {
		return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to list attendance: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, att := range records {
		responses = append(responses, mapAttendanceToResponse(att))
	}

	return attendance.ListAttendanceResponse{
		Data:       responses,
		TotalCount: len(responses),
	}, nil
}

func (s *AttendanceServiceImpl) Summary(ctx context.Context, startDate, endDate string) (attendance.SummaryResponse, error) {
	start, err := time.Parse(time.DateOnly, startDate)
	if err != nil {
		return attendance.SummaryResponse{}, attendance.ErrInvalidDate
	}
	end, err := time.Parse(time.DateOnly, endDate)
	if err != nil {
		return attendance.SummaryResponse{}, attendance.ErrInvalidDate
	}

	counts, err := s.attendanceRepo.CountByStatus(ctx, start, end)
	if err != nil {
		return attendance.SummaryResponse{}, fmt.Errorf("failed to count attendance: %w", err)
	}

	resp := attendance.SummaryResponse{
		StartDate: startDate,
		EndDate:   endDate,
		Present:   counts[string(paycalc.StatusPresent)],
		Absent:    counts[string(paycalc.StatusAbsent)],
		HalfDay:   counts[string(paycalc.StatusHalfDay)],
		Late:      counts[string(paycalc.StatusLate)],
		WeekOff:   counts[string(paycalc.StatusWeekOff)],
	}
	for _, n := range counts {
		resp.Total += n
	}

	// The rate reads over days that could have been worked.
	workable := resp.Present + resp.Absent + resp.HalfDay + resp.Late
	resp.AttendanceRate = paycalc.AttendanceRate(resp.Present, workable)

	return resp, nil
}

func (s *AttendanceServiceImpl) MarkAbsentees(ctx context.Context, dateStr string) (int, error) {
	date, err := time.Parse(time.DateOnly, dateStr)
	if err != nil {
		return 0, attendance.ErrInvalidDate
	}
	if date.Weekday() == time.Sunday {
		return 0, nil
	}

	employees, err := s.employeeRepo.List(ctx, employee.EmployeeFilter{ActiveOnly: true})
	if err != nil {
		return 0, fmt.Errorf("failed to list active employees: %w", err)
	}

	recorded, err := s.attendanceRepo.ListByDate(ctx, date)
	if err != nil {
		return 0, fmt.Errorf("failed to list attendance: %w", err)
	}
	seen := make(map[string]bool, len(recorded))
	for _, att := range recorded {
		seen[att.EmployeeID] = true
	}

	marked := 0
	for _, emp := range employees {
		if seen[emp.ID] {
			continue
		}
		if _, err := s.mark(ctx, emp.ID, date, paycalc.StatusAbsent, "system"); err != nil {
			slog.Error("failed to mark absentee", "employee_id", emp.ID, "date", dateStr, "error", err)
			continue
		}
		marked++
	}

	return marked, nil
}
