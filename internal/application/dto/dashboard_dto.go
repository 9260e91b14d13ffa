package dto

import "github.com/shopspring/decimal"

// DashboardSummary resumen de cabecera del dashboard para una fecha.
type DashboardSummary struct {
	Date             string            `json:"date"`
	TotalEmployees   int               `json:"total_employees"`
	ActiveEmployees  int               `json:"active_employees"`
	Attendance       AttendanceSummary `json:"attendance"`
	EquipmentByState map[string]int    `json:"equipment_by_state"`
	TotalBudget      decimal.Decimal   `json:"total_budget"`
	TotalSpent       decimal.Decimal   `json:"total_spent"`
}
