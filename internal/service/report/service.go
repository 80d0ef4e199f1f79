package report

import (
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/staffly-hq/hr-backend-go/internal/config"
	"github.com/staffly-hq/hr-backend-go/internal/domain/attendance"
	"github.com/staffly-hq/hr-backend-go/internal/domain/employee"
	"github.com/staffly-hq/hr-backend-go/internal/domain/payslip"
	"github.com/staffly-hq/hr-backend-go/internal/domain/report"
	"github.com/staffly-hq/hr-backend-go/internal/pkg/paycalc"
)

type ReportServiceImpl struct {
	payslipRepo    payslip.PayslipRepository
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
	payrollCfg     config.PayrollConfig
}

func NewReportService(
	payslipRepo payslip.PayslipRepository,
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	payrollCfg config.PayrollConfig,
) report.ReportService {
	return &ReportServiceImpl{
		payslipRepo:    payslipRepo,
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		payrollCfg:     payrollCfg,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func (s *ReportServiceImpl) PayrollXLSX(ctx context.Context, month, year int) ([]byte, string, error) {
	cycle, err := paycalc.DeriveCycle(month, year,
		s.payrollCfg.CycleStartDay, s.payrollCfg.CycleEndDay, s.payrollCfg.CreditDay)
	if err != nil {
		return nil, "", err
	}

	cycleStart := cycle.Start.Format(time.DateOnly)
	payslips, err := s.payslipRepo.List(ctx, payslip.PayslipFilter{CycleStart: &cycleStart})
	if err != nil {
		return nil, "", fmt.Errorf("failed to list payslips: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Payroll"
	f.SetSheetName("Sheet1", sheet)

	f.SetCellValue(sheet, "A1", "Payroll Report")
	f.SetCellValue(sheet, "A2", fmt.Sprintf("Cycle: %s to %s", cycleStart, cycle.End.Format(time.DateOnly)))
	f.SetCellValue(sheet, "A3", fmt.Sprintf("Credit Date: %s", cycle.CreditDate.Format(time.DateOnly)))

	headers := []string{
		"Employee Code", "Name", "Branch", "Base Salary", "Working Days",
		"Present Days", "Absent Days", "Per Day", "Gross", "Deductions", "Net", "Status",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 5)
		f.SetCellValue(sheet, cell, h)
	}

	row := 6
	for _, p := range payslips {
		values := []any{
			deref(p.EmployeeCode), deref(p.EmployeeName), deref(p.Branch),
			p.BaseSalary.InexactFloat64(), p.WorkingDays, p.PresentDays, p.AbsentDays,
			p.PerDaySalary.InexactFloat64(), p.GrossSalary.InexactFloat64(),
			p.Deductions.InexactFloat64(), p.NetSalary.InexactFloat64(), string(p.Status),
		}
		for i, v := range values {
			cell, _ := excelize.CoordinatesToCellName(i+1, row)
			f.SetCellValue(sheet, cell, v)
		}
		row++
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("failed to render workbook: %w", err)
	}

	filename := fmt.Sprintf("payroll_%s.xlsx", cycle.End.Format("2006_01"))
	return buf.Bytes(), filename, nil
}

func (s *ReportServiceImpl) AttendanceXLSX(ctx context.Context, startDate, endDate string) ([]byte, string, error) {
	start, err := time.Parse(time.DateOnly, startDate)
	if err != nil {
		return nil, "", attendance.ErrInvalidDate
	}
	end, err := time.Parse(time.DateOnly, endDate)
	if err != nil {
		return nil, "", attendance.ErrInvalidDate
	}

	employees, err := s.employeeRepo.List(ctx, employee.EmployeeFilter{ActiveOnly: true})
	if err != nil {
		return nil, "", fmt.Errorf("failed to list employees: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Attendance"
	f.SetSheetName("Sheet1", sheet)

	f.SetCellValue(sheet, "A1", "Attendance Register")
	f.SetCellValue(sheet, "A2", fmt.Sprintf("Period: %s to %s", startDate, endDate))

	headers := []string{
		"Employee Code", "Name", "Branch",
		"Present", "Absent", "Half Day", "Late", "Week Off", "Working Day Equivalent",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 4)
		f.SetCellValue(sheet, cell, h)
	}

	row := 5
	for _, emp := range employees {
		records, err := s.attendanceRepo.ListByEmployee(ctx, emp.ID, start, end)
		if err != nil {
			return nil, "", fmt.Errorf("failed to list attendance: %w", err)
		}

		days := make([]paycalc.DayRecord, 0, len(records))
		for _, att := range records {
			days = append(days, paycalc.DayRecord{Date: att.Date, Status: att.EffectiveStatus()})
		}
		tally, err := paycalc.Aggregate(days, start, end, true)
		if err != nil {
			return nil, "", err
		}

		values := []any{
			emp.EmployeeCode, emp.Name, string(emp.Branch),
			tally.Present, tally.Absent, tally.HalfDay, tally.Late, tally.WeekOff,
			tally.WorkingDayEquivalent.InexactFloat64(),
		}
		for i, v := range values {
			cell, _ := excelize.CoordinatesToCellName(i+1, row)
			f.SetCellValue(sheet, cell, v)
		}
		row++
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("failed to render workbook: %w", err)
	}

	filename := fmt.Sprintf("attendance_%s_%s.xlsx", startDate, endDate)
	return buf.Bytes(), filename, nil
}
