package dto

import "github.com/shopspring/decimal"

// ProjectResponse vista general de un proyecto, sin detalle financiero.
type ProjectResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
	Manager  string `json:"manager"`
	Status   string `json:"status"`
}

// ProjectListResponse listado general de proyectos.
type ProjectListResponse struct {
	Items []ProjectResponse `json:"items"`
}

// ProjectCostResponse vista financiera de un proyecto.
type ProjectCostResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Location    string          `json:"location"`
	Manager     string          `json:"manager"`
	Status      string          `json:"status"`
	Budget      decimal.Decimal `json:"budget"`
	Spent       decimal.Decimal `json:"spent"`
	Remaining   decimal.Decimal `json:"remaining"`
	Utilization decimal.Decimal `json:"utilization"` // % del presupuesto, 1 decimal
}

// CostSummaryResponse agregados financieros de todos los proyectos.
type CostSummaryResponse struct {
	TotalBudget        decimal.Decimal       `json:"total_budget"`
	TotalSpent         decimal.Decimal       `json:"total_spent"`
	Utilization        decimal.Decimal       `json:"utilization"`
	ActiveProjects     int                   `json:"active_projects"`
	OverbudgetProjects int                   `json:"overbudget_projects"`
	Projects           []ProjectCostResponse `json:"projects"`
}
