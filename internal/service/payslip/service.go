package payslip

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/staffly-hq/hr-backend-go/internal/config"
	"github.com/staffly-hq/hr-backend-go/internal/domain/attendance"
	"github.com/staffly-hq/hr-backend-go/internal/domain/employee"
	"github.com/staffly-hq/hr-backend-go/internal/domain/payslip"
	"github.com/staffly-hq/hr-backend-go/internal/pkg/paycalc"
)

// maxConcurrentComputations bounds the per-employee goroutines in a
// payroll run.
const maxConcurrentComputations = 8

type PayslipServiceImpl struct {
	payslipRepo    payslip.PayslipRepository
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
	payrollCfg     config.PayrollConfig
}

func NewPayslipService(
	payslipRepo payslip.PayslipRepository,
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	payrollCfg config.PayrollConfig,
) payslip.PayslipService {
	return &PayslipServiceImpl{
		payslipRepo:    payslipRepo,
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		payrollCfg:     payrollCfg,
	}
}

func mapPayslipToResponse(p payslip.Payslip) payslip.PayslipResponse {
	return payslip.PayslipResponse{
		ID:            p.ID,
		EmployeeID:    p.EmployeeID,
		EmployeeName:  p.EmployeeName,
		EmployeeCode:  p.EmployeeCode,
		Branch:        p.Branch,
		PayCycleStart: p.PayCycleStart.Format(time.DateOnly),
		PayCycleEnd:   p.PayCycleEnd.Format(time.DateOnly),
		CreditDate:    p.CreditDate.Format(time.DateOnly),
		BaseSalary:    p.BaseSalary,
		WorkingDays:   p.WorkingDays,
		PresentDays:   p.PresentDays,
		AbsentDays:    p.AbsentDays,
		PerDaySalary:  p.PerDaySalary,
		GrossSalary:   p.GrossSalary,
		Deductions:    p.Deductions,
		NetSalary:     p.NetSalary,
		GeneratedAt:   p.GeneratedAt.Format(time.RFC3339),
		Status:        string(p.Status),
	}
}

// tallyFor loads one employee's attendance over a cycle and aggregates it.
// Sundays read as week_off regardless of stored status.
func (s *PayslipServiceImpl) tallyFor(ctx context.Context, employeeID string, cycle paycalc.PayCycle, includeHalfDays bool) (paycalc.Tally, error) {
	records, err := s.attendanceRepo.ListByEmployee(ctx, employeeID, cycle.Start, cycle.End)
	if err != nil {
		return paycalc.Tally{}, fmt.Errorf("failed to list attendance: %w", err)
	}

	days := make([]paycalc.DayRecord, 0, len(records))
	for _, att := range records {
		days = append(days, paycalc.DayRecord{Date: att.Date, Status: att.EffectiveStatus()})
	}

	return paycalc.Aggregate(days, cycle.Start, cycle.End, includeHalfDays)
}

func (s *PayslipServiceImpl) Generate(ctx context.Context, req payslip.GeneratePayslipRequest) (payslip.PayslipResponse, error) {
	if err := req.Validate(); err != nil {
		return payslip.PayslipResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return payslip.PayslipResponse{}, err
	}
	if !emp.Payable() {
		return payslip.PayslipResponse{}, payslip.ErrEmployeeNotPayable
	}

	start, _ := time.Parse(time.DateOnly, req.StartDate)
	end, _ := time.Parse(time.DateOnly, req.EndDate)

	cycle, err := paycalc.NewPayCycle(start, end)
	if err != nil {
		return payslip.PayslipResponse{}, err
	}
	// Custom cycles credit on the configured day of the closing month.
	cycle.CreditDate = time.Date(cycle.End.Year(), cycle.End.Month(), s.payrollCfg.CreditDay, 0, 0, 0, 0, time.UTC)

	workingDays := paycalc.CountWorkingDays(cycle.Start, cycle.End)

	tally, err := s.tallyFor(ctx, emp.ID, cycle, false)
	if err != nil {
		return payslip.PayslipResponse{}, err
	}
	// The legacy calculation predates half-day and late statuses: any day
	// with a punch counts as present.
	presentDays := tally.Present + tally.Late + tally.HalfDay

	figures, err := paycalc.CalculatePayslip(emp.BaseSalary, presentDays, workingDays)
	if err != nil {
		return payslip.PayslipResponse{}, err
	}

	saved, err := s.payslipRepo.Upsert(ctx, payslip.Payslip{
		EmployeeID:    emp.ID,
		PayCycleStart: cycle.Start,
		PayCycleEnd:   cycle.End,
		CreditDate:    cycle.CreditDate,
		BaseSalary:    emp.BaseSalary,
		WorkingDays:   workingDays,
		PresentDays:   presentDays,
		AbsentDays:    figures.AbsentDays,
		PerDaySalary:  figures.PerDaySalary,
		GrossSalary:   figures.GrossSalary,
		Deductions:    figures.Deductions,
		NetSalary:     figures.NetSalary,
	})
	if err != nil {
		return payslip.PayslipResponse{}, err
	}

	return mapPayslipToResponse(saved), nil
}

// deductionConfig builds the advanced calculator config from a run request,
// starting from the mode's defaults and applying the request's overrides.
func (s *PayslipServiceImpl) deductionConfig(req payslip.RunPayrollRequest) paycalc.DeductionConfig {
	mode := paycalc.Mode(req.Mode)
	if mode == "" {
		mode = paycalc.ModeProportional
	}

	cfg := paycalc.DefaultDeductionConfig(mode)
	cfg.LateDeductionRate = decimal.NewFromFloat(s.payrollCfg.LateDeductionRate)
	cfg.HalfDayDeductionRate = decimal.NewFromFloat(s.payrollCfg.HalfDayDeductionRate)

	if req.AbsentDeduction != nil {
		cfg.AbsentDeduction = *req.AbsentDeduction
	}
	if req.LateDeduction != nil {
		cfg.LateDeduction = *req.LateDeduction
	}
	if req.HalfDayDeduction != nil {
		cfg.HalfDayDeduction = *req.HalfDayDeduction
	}
	if req.IncludeHalfDays != nil {
		cfg.IncludeHalfDays = *req.IncludeHalfDays
	}

	return cfg
}

func (s *PayslipServiceImpl) RunPayroll(ctx context.Context, req payslip.RunPayrollRequest) (payslip.RunPayrollResponse, error) {
	if err := req.Validate(); err != nil {
		return payslip.RunPayrollResponse{}, err
	}

	cycle, err := paycalc.DeriveCycle(
		req.Month, req.Year,
		s.payrollCfg.CycleStartDay, s.payrollCfg.CycleEndDay, s.payrollCfg.CreditDay,
	)
	if err != nil {
		return payslip.RunPayrollResponse{}, err
	}
	workingDays := paycalc.CountWorkingDays(cycle.Start, cycle.End)

	cfg := s.deductionConfig(req)

	minimumDays := s.payrollCfg.MinimumWorkingDays
	if req.MinimumDays != nil {
		minimumDays = *req.MinimumDays
	}

	employees, err := s.employeeRepo.List(ctx, employee.EmployeeFilter{ActiveOnly: true})
	if err != nil {
		return payslip.RunPayrollResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}
	if len(req.EmployeeIDs) > 0 {
		wanted := make(map[string]bool, len(req.EmployeeIDs))
		for _, id := range req.EmployeeIDs {
			wanted[id] = true
		}
		filtered := employees[:0]
		for _, emp := range employees {
			if wanted[emp.ID] {
				filtered = append(filtered, emp)
			}
		}
		employees = filtered
	}

	resp := payslip.RunPayrollResponse{
		CycleStart:  cycle.Start.Format(time.DateOnly),
		CycleEnd:    cycle.End.Format(time.DateOnly),
		CreditDate:  cycle.CreditDate.Format(time.DateOnly),
		WorkingDays: workingDays,
	}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentComputations)

	for _, emp := range employees {
		g.Go(func() error {
			if !emp.Payable() {
				mu.Lock()
				resp.SkippedNoPay++
				mu.Unlock()
				return nil
			}

			tally, err := s.tallyFor(gctx, emp.ID, cycle, cfg.IncludeHalfDays)
			if err != nil {
				mu.Lock()
				resp.Failures = append(resp.Failures, payslip.RunFailure{EmployeeID: emp.ID, Reason: err.Error()})
				mu.Unlock()
				return nil
			}

			if !paycalc.MeetsThreshold(tally.WorkingDayEquivalent, minimumDays) {
				mu.Lock()
				resp.BelowThreshold++
				mu.Unlock()
				return nil
			}

			figures, err := paycalc.Calculate(emp.BaseSalary, tally, workingDays, cfg)
			if err != nil {
				mu.Lock()
				resp.Failures = append(resp.Failures, payslip.RunFailure{EmployeeID: emp.ID, Reason: err.Error()})
				mu.Unlock()
				return nil
			}

			saved, err := s.payslipRepo.Upsert(gctx, payslip.Payslip{
				EmployeeID:    emp.ID,
				PayCycleStart: cycle.Start,
				PayCycleEnd:   cycle.End,
				CreditDate:    cycle.CreditDate,
				BaseSalary:    emp.BaseSalary,
				WorkingDays:   workingDays,
				PresentDays:   tally.Present + tally.Late,
				AbsentDays:    tally.Absent,
				PerDaySalary:  figures.PerDaySalary,
				GrossSalary:   figures.GrossSalary,
				Deductions:    figures.Deductions,
				NetSalary:     figures.NetSalary,
			})
			if err != nil {
				mu.Lock()
				resp.Failures = append(resp.Failures, payslip.RunFailure{EmployeeID: emp.ID, Reason: err.Error()})
				mu.Unlock()
				return nil
			}

			mu.Lock()
			resp.Generated++
			resp.Payslips = append(resp.Payslips, mapPayslipToResponse(saved))
			mu.Unlock()
			return nil
		})
	}

	// Workers report per-employee failures through the response instead of
	// returning errors, so this only propagates context cancellation.
	if err := g.Wait(); err != nil {
		return payslip.RunPayrollResponse{}, err
	}

	sort.Slice(resp.Payslips, func(i, j int) bool {
		return resp.Payslips[i].EmployeeID < resp.Payslips[j].EmployeeID
	})

	slog.Info("payroll run complete",
		"cycle_start", resp.CycleStart,
		"generated", resp.Generated,
		"skipped_not_payable", resp.SkippedNoPay,
		"skipped_below_threshold", resp.BelowThreshold,
		"failures", len(resp.Failures),
	)

	return resp, nil
}

func (s *PayslipServiceImpl) GetPayslip(ctx context.Context, id string) (payslip.PayslipResponse, error) {
	p, err := s.payslipRepo.GetByID(ctx, id)
	if err != nil {
		return payslip.PayslipResponse{}, err
	}
	return mapPayslipToResponse(p), nil
}

func (s *PayslipServiceImpl) ListPayslips(ctx context.Context, filter payslip.PayslipFilter) (payslip.ListPayslipResponse, error) {
	payslips, err := s.payslipRepo.List(ctx, filter)
	if err != nil {
		return payslip.ListPayslipResponse{}, fmt.Errorf("failed to list payslips: %w", err)
	}

	responses := make([]payslip.PayslipResponse, 0, len(payslips))
	for _, p := range payslips {
		responses = append(responses, mapPayslipToResponse(p))
	}

	return payslip.ListPayslipResponse{
		Data:       responses,
		TotalCount: len(responses),
	}, nil
}

func (s *PayslipServiceImpl) Approve(ctx context.Context, id string) (payslip.PayslipResponse, error) {
	current, err := s.payslipRepo.GetByID(ctx, id)
	if err != nil {
		return payslip.PayslipResponse{}, err
	}
	if current.Status != payslip.StatusDraft {
		return payslip.PayslipResponse{}, payslip.ErrInvalidStatusMove
	}

	updated, err := s.payslipRepo.UpdateStatus(ctx, id, payslip.StatusApproved)
	if err != nil {
		return payslip.PayslipResponse{}, err
	}
	return mapPayslipToResponse(updated), nil
}

func (s *PayslipServiceImpl) MarkPaid(ctx context.Context, id string) (payslip.PayslipResponse, error) {
	current, err := s.payslipRepo.GetByID(ctx, id)
	if err != nil {
		return payslip.PayslipResponse{}, err
	}
	if current.Status != payslip.StatusApproved {
		return payslip.PayslipResponse{}, payslip.ErrInvalidStatusMove
	}

	updated, err := s.payslipRepo.UpdateStatus(ctx, id, payslip.StatusPaid)
	if err != nil {
		return payslip.PayslipResponse{}, err
	}
	return mapPayslipToResponse(updated), nil
}
