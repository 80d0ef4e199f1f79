package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/staffly-hq/hr-backend-go/internal/fixtures"
	"github.com/staffly-hq/hr-backend-go/internal/pkg/database"
)

// SeedDefaultEmployees inserts the fixture roster in a single transaction.
// Codes already present are skipped so reseeding is safe.
func SeedDefaultEmployees(ctx context.Context, db *database.DB) error {
	return WithTransaction(ctx, db, func(tx pgx.Tx) error {
		query := `
			INSERT INTO employees (card_no, employee_code, name, branch, base_salary, is_active)
			VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (employee_code) DO NOTHING
		`
		for _, emp := range fixtures.GetDefaultEmployees() {
			_, err := tx.Exec(ctx, query,
				emp.CardNo, emp.EmployeeCode, emp.Name, emp.Branch, emp.BaseSalary, emp.IsActive,
			)
			if err != nil {
				return fmt.Errorf("failed to seed employee %s: %w", emp.EmployeeCode, err)
			}
		}
		return nil
	})
}
