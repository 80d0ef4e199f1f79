package memory

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/staffly-hq/hr-backend-go/internal/domain/payslip"
	"github.com/staffly-hq/hr-backend-go/internal/pkg/paycalc"
)

type payslipRepository struct {
	store *Store
}

func NewPayslipRepository(store *Store) payslip.PayslipRepository {
	return &payslipRepository{store: store}
}

// joinEmployee fills the denormalized employee fields the SQL driver gets
// from its JOIN. Caller holds at least a read lock.
func (r *payslipRepository) joinEmployee(p payslip.Payslip) payslip.Payslip {
	if emp, ok := r.store.employees[p.EmployeeID]; ok {
		name, code, branch := emp.Name, emp.EmployeeCode, string(emp.Branch)
		p.EmployeeName = &name
		p.EmployeeCode = &code
		p.Branch = &branch
	}
	return p
}

func (r *payslipRepository) Upsert(ctx context.Context, p payslip.Payslip) (payslip.Payslip, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	p.PayCycleStart = paycalc.DateOnly(p.PayCycleStart)
	key := payslipKey(p.EmployeeID, p.PayCycleStart)

	if id, ok := r.store.payslipByKey[key]; ok {
		existing := r.store.payslips[id]
		if existing.Status == payslip.StatusPaid {
			return payslip.Payslip{}, payslip.ErrPayslipAlreadyPaid
		}
		p.ID = existing.ID
		p.Status = existing.Status
		p.CreatedAt = existing.CreatedAt
	} else {
		p.ID = uuid.NewString()
		p.Status = payslip.StatusDraft
		p.CreatedAt = time.Now()
	}
	p.GeneratedAt = time.Now()

	r.store.payslips[p.ID] = p
	r.store.payslipByKey[key] = p.ID

	return r.joinEmployee(p), nil
}

func (r *payslipRepository) GetByID(ctx context.Context, id string) (payslip.Payslip, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	p, ok := r.store.payslips[id]
	if !ok {
		return payslip.Payslip{}, payslip.ErrPayslipNotFound
	}
	return r.joinEmployee(p), nil
}

func (r *payslipRepository) GetByEmployeeAndCycle(ctx context.Context, employeeID string, cycleStart time.Time) (payslip.Payslip, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	id, ok := r.store.payslipByKey[payslipKey(employeeID, paycalc.DateOnly(cycleStart))]
	if !ok {
		return payslip.Payslip{}, payslip.ErrPayslipNotFound
	}
	return r.joinEmployee(r.store.payslips[id]), nil
}

func (r *payslipRepository) List(ctx context.Context, filter payslip.PayslipFilter) ([]payslip.Payslip, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	payslips := make([]payslip.Payslip, 0, len(r.store.payslips))
	for _, p := range r.store.payslips {
		if filter.EmployeeID != nil && p.EmployeeID != *filter.EmployeeID {
			continue
		}
		if filter.CycleStart != nil && p.PayCycleStart.Format(time.DateOnly) != *filter.CycleStart {
			continue
		}
		if filter.Status != nil && string(p.Status) != *filter.Status {
			continue
		}
		payslips = append(payslips, r.joinEmployee(p))
	}

	sort.Slice(payslips, func(i, j int) bool {
		if !payslips[i].PayCycleStart.Equal(payslips[j].PayCycleStart) {
			return payslips[i].PayCycleStart.After(payslips[j].PayCycleStart)
		}
		return payslips[i].EmployeeID < payslips[j].EmployeeID
	})

	return payslips, nil
}

func (r *payslipRepository) UpdateStatus(ctx context.Context, id string, status payslip.Status) (payslip.Payslip, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	p, ok := r.store.payslips[id]
	if !ok {
		return payslip.Payslip{}, payslip.ErrPayslipNotFound
	}
	if p.Status == payslip.StatusPaid {
		return payslip.Payslip{}, payslip.ErrPayslipAlreadyPaid
	}

	p.Status = status
	r.store.payslips[id] = p

	return r.joinEmployee(p), nil
}
