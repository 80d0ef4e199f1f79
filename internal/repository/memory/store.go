// Package memory implements every repository interface over in-process
// maps. It backs local development and the service test suites; the
// postgres driver is the production counterpart, selected at startup.
package memory

import (
	"fmt"
	"sync"
	"time"

	"github.com/staffly-hq/hr-backend-go/internal/domain/attendance"
	"github.com/staffly-hq/hr-backend-go/internal/domain/employee"
	"github.com/staffly-hq/hr-backend-go/internal/domain/payslip"
	"github.com/staffly-hq/hr-backend-go/internal/fixtures"
)

// Store holds all in-memory state behind a single lock. Attendance is
// keyed by (employee, date) and payslips by (employee, cycle start), the
// same uniques the SQL schema enforces.
type Store struct {
	mu sync.RWMutex

	employees      map[string]employee.Employee
	employeeByCode map[string]string

	attendance map[string]attendance.Attendance

	payslips     map[string]payslip.Payslip
	payslipByKey map[string]string
}

func NewStore() *Store {
	return &Store{
		employees:      make(map[string]employee.Employee),
		employeeByCode: make(map[string]string),
		attendance:     make(map[string]attendance.Attendance),
		payslips:       make(map[string]payslip.Payslip),
		payslipByKey:   make(map[string]string),
	}
}

func attendanceKey(employeeID string, date time.Time) string {
	return fmt.Sprintf("%s|%s", employeeID, date.Format(time.DateOnly))
}

func payslipKey(employeeID string, cycleStart time.Time) string {
	return fmt.Sprintf("%s|%s", employeeID, cycleStart.Format(time.DateOnly))
}

// Seed loads the default roster from fixtures. Codes already present are
// left untouched so reseeding is safe.
func (s *Store) Seed() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, emp := range fixtures.GetDefaultEmployees() {
		if _, exists := s.employeeByCode[emp.EmployeeCode]; exists {
			continue
		}
		s.employees[emp.ID] = emp
		s.employeeByCode[emp.EmployeeCode] = emp.ID
	}
}
