package entity

import "github.com/shopspring/decimal"

// Estados de proyecto.
const (
	ProjectActive     = "active"
	ProjectPlanning   = "planning"
	ProjectCompleted  = "completed"
	ProjectOverbudget = "overbudget"
)

// Project registro de proyecto con su vista financiera. Budget y Spent son
// montos en moneda; siempre aritmética decimal, nunca float.
type Project struct {
	ID       string
	Name     string
	Location string
	Manager  string
	Status   string
	Budget   decimal.Decimal
	Spent    decimal.Decimal
}

// Remaining presupuesto restante (negativo cuando está sobregirado).
func (p *Project) Remaining() decimal.Decimal {
	return p.Budget.Sub(p.Spent)
}

// Utilization porcentaje gastado del presupuesto, 1 decimal. Presupuesto cero
// reporta 0 en lugar de dividir.
func (p *Project) Utilization() decimal.Decimal {
	if p.Budget.IsZero() {
		return decimal.Zero
	}
	return p.Spent.Div(p.Budget).Mul(decimal.NewFromInt(100)).Round(1)
}
