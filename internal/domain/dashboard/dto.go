package dashboard

import "github.com/shopspring/decimal"

// StatsResponse is the admin landing-page roll-up.
type StatsResponse struct {
	TotalEmployees  int     `json:"total_employees"`
	ActiveEmployees int     `json:"active_employees"`
	PresentToday    int     `json:"present_today"`
	AbsentToday     int     `json:"absent_today"`
	AttendanceRate  float64 `json:"attendance_rate"`

	CycleStart    string          `json:"cycle_start"`
	CycleEnd      string          `json:"cycle_end"`
	DraftPayslips int             `json:"draft_payslips"`
	PaidPayslips  int             `json:"paid_payslips"`
	TotalNetPay   decimal.Decimal `json:"total_net_pay"`
}
