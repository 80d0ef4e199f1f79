package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/staffly-hq/hr-backend-go/internal/domain/payslip"
	"github.com/staffly-hq/hr-backend-go/internal/pkg/database"
)

type payslipRepository struct {
	db *database.DB
}

func NewPayslipRepository(db *database.DB) payslip.PayslipRepository {
	return &payslipRepository{db: db}
}

const payslipColumns = `
	p.id, p.employee_id, p.pay_cycle_start, p.pay_cycle_end, p.credit_date,
	p.base_salary, p.working_days, p.present_days, p.absent_days,
	p.per_day_salary, p.gross_salary, p.deductions, p.net_salary,
	p.generated_at, p.status, p.created_at,
	e.name, e.employee_code, e.branch`

func scanPayslip(row pgx.Row) (payslip.Payslip, error) {
	var p payslip.Payslip
	err := row.Scan(
		&p.ID, &p.EmployeeID, &p.PayCycleStart, &p.PayCycleEnd, &p.CreditDate,
		&p.BaseSalary, &p.WorkingDays, &p.PresentDays, &p.AbsentDays,
		&p.PerDaySalary, &p.GrossSalary, &p.Deductions, &p.NetSalary,
		&p.GeneratedAt, &p.Status, &p.CreatedAt,
		&p.EmployeeName, &p.EmployeeCode, &p.Branch,
	)
	return p, err
}

func (r *payslipRepository) Upsert(ctx context.Context, p payslip.Payslip) (payslip.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	// One payslip per (employee, cycle start): recomputation updates in
	// place. A paid payslip is never overwritten.
	query := `
		WITH upserted AS (
			INSERT INTO payslips (
				employee_id, pay_cycle_start, pay_cycle_end, credit_date,
				base_salary, working_days, present_days, absent_days,
				per_day_salary, gross_salary, deductions, net_salary,
				generated_at, status
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW(), 'draft')
			ON CONFLICT (employee_id, pay_cycle_start) DO UPDATE SET
				pay_cycle_end = EXCLUDED.pay_cycle_end,
				credit_date = EXCLUDED.credit_date,
				base_salary = EXCLUDED.base_salary,
				working_days = EXCLUDED.working_days,
				present_days = EXCLUDED.present_days,
				absent_days = EXCLUDED.absent_days,
				per_day_salary = EXCLUDED.per_day_salary,
				gross_salary = EXCLUDED.gross_salary,
				deductions = EXCLUDED.deductions,
				net_salary = EXCLUDED.net_salary,
				generated_at = EXCLUDED.generated_at
			WHERE payslips.status != 'paid'
			RETURNING *
		)
		SELECT ` + payslipColumns + `
		FROM upserted p
		JOIN employees e ON e.id = p.employee_id
	`

	saved, err := scanPayslip(q.QueryRow(ctx, query,
		p.EmployeeID, p.PayCycleStart, p.PayCycleEnd, p.CreditDate,
		p.BaseSalary, p.WorkingDays, p.PresentDays, p.AbsentDays,
		p.PerDaySalary, p.GrossSalary, p.Deductions, p.NetSalary,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payslip.Payslip{}, payslip.ErrPayslipAlreadyPaid
		}
		return payslip.Payslip{}, fmt.Errorf("failed to upsert payslip: %w", err)
	}

	return saved, nil
}

func (r *payslipRepository) GetByID(ctx context.Context, id string) (payslip.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payslipColumns + `
		FROM payslips p
		JOIN employees e ON e.id = p.employee_id
		WHERE p.id = $1
	`

	p, err := scanPayslip(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payslip.Payslip{}, payslip.ErrPayslipNotFound
		}
		return payslip.Payslip{}, fmt.Errorf("failed to get payslip: %w", err)
	}

	return p, nil
}

func (r *payslipRepository) GetByEmployeeAndCycle(ctx context.Context, employeeID string, cycleStart time.Time) (payslip.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payslipColumns + `
		FROM payslips p
		JOIN employees e ON e.id = p.employee_id
		WHERE p.employee_id = $1 AND p.pay_cycle_start = $2
	`

	p, err := scanPayslip(q.QueryRow(ctx, query, employeeID, cycleStart))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payslip.Payslip{}, payslip.ErrPayslipNotFound
		}
		return payslip.Payslip{}, fmt.Errorf("failed to get payslip by cycle: %w", err)
	}

	return p, nil
}

func (r *payslipRepository) List(ctx context.Context, filter payslip.PayslipFilter) ([]payslip.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payslipColumns + `
		FROM payslips p
		JOIN employees e ON e.id = p.employee_id
		WHERE 1=1
	`
	args := []interface{}{}

	if filter.EmployeeID != nil {
		args = append(args, *filter.EmployeeID)
		query += fmt.Sprintf(" AND p.employee_id = $%d", len(args))
	}
	if filter.CycleStart != nil {
		args = append(args, *filter.CycleStart)
		query += fmt.Sprintf(" AND p.pay_cycle_start = $%d", len(args))
	}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		query += fmt.Sprintf(" AND p.status = $%d", len(args))
	}
	query += " ORDER BY p.pay_cycle_start DESC, e.name"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list payslips: %w", err)
	}
	defer rows.Close()

	var payslips []payslip.Payslip
	for rows.Next() {
		p, err := scanPayslip(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payslip: %w", err)
		}
		payslips = append(payslips, p)
	}

	return payslips, rows.Err()
}

func (r *payslipRepository) UpdateStatus(ctx context.Context, id string, status payslip.Status) (payslip.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		WITH updated AS (
			UPDATE payslips SET status = $2
			WHERE id = $1 AND status != 'paid'
			RETURNING *
		)
		SELECT ` + payslipColumns + `
		FROM updated p
		JOIN employees e ON e.id = p.employee_id
	`

	p, err := scanPayslip(q.QueryRow(ctx, query, id, status))
	if err != nil {
		if err == pgx.ErrNoRows {
			// Either missing or already paid; let the caller disambiguate.
			if _, getErr := r.GetByID(ctx, id); getErr != nil {
				return payslip.Payslip{}, getErr
			}
			return payslip.Payslip{}, payslip.ErrPayslipAlreadyPaid
		}
		return payslip.Payslip{}, fmt.Errorf("failed to update payslip status: %w", err)
	}

	return p, nil
}
