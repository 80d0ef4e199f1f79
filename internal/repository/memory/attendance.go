package memory

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/staffly-hq/hr-backend-go/internal/domain/attendance"
	"github.com/staffly-hq/hr-backend-go/internal/pkg/paycalc"
)

type attendanceRepository struct {
	store *Store
}

func NewAttendanceRepository(store *Store) attendance.AttendanceRepository {
	return &attendanceRepository{store: store}
}

func (r *attendanceRepository) Upsert(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	att.Date = paycalc.DateOnly(att.Date)
	key := attendanceKey(att.EmployeeID, att.Date)

	if existing, ok := r.store.attendance[key]; ok {
		att.ID = existing.ID
		att.CreatedAt = existing.CreatedAt
	} else {
		att.ID = uuid.NewString()
		att.CreatedAt = time.Now()
	}
	att.MarkedAt = time.Now()

	r.store.attendance[key] = att

	return att, nil
}

func (r *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (attendance.Attendance, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	att, ok := r.store.attendance[attendanceKey(employeeID, paycalc.DateOnly(date))]
	if !ok {
		return attendance.Attendance{}, attendance.ErrAttendanceNotFound
	}
	return att, nil
}

func (r *attendanceRepository) ListByEmployee(ctx context.Context, employeeID string, start, end time.Time) ([]attendance.Attendance, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	start = paycalc.DateOnly(start)
	end = paycalc.DateOnly(end)

	var records []attendance.Attendance
	for _, att := range r.store.attendance {
		if att.EmployeeID != employeeID {
			continue
		}
		if att.Date.Before(start) || att.Date.After(end) {
			continue
		}
		records = append(records, att)
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].Date.Before(records[j].Date)
	})

	return records, nil
}

func (r *attendanceRepository) ListByDate(ctx context.Context, date time.Time) ([]attendance.Attendance, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	date = paycalc.DateOnly(date)

	var records []attendance.Attendance
	for _, att := range r.store.attendance {
		if att.Date.Equal(date) {
			records = append(records, att)
		}
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].EmployeeID < records[j].EmployeeID
	})

	return records, nil
}

func (r *attendanceRepository) CountByStatus(ctx context.Context, start, end time.Time) (map[string]int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	start = paycalc.DateOnly(start)
	end = paycalc.DateOnly(end)

	// Sundays count as week_off regardless of the stored status, the same
	// reading the payroll tally uses.
	counts := make(map[string]int)
	for _, att := range r.store.attendance {
		if att.Date.Before(start) || att.Date.After(end) {
			continue
		}
		counts[string(att.EffectiveStatus())]++
	}

	return counts, nil
}
