// Package finance contains the pure financial computations shared by the
// reporting use cases: payroll cost rules, calendar-month bucketing and
// pro-rating of fixed-term vehicle costs.
package finance

import (
	"github.com/shopspring/decimal"

	"github.com/transport-ledger/backend/internal/domain/entity"
)

// cpfRate is the employer CPF contribution rate applied to local workers'
// salaries. A single flat rate is modeled here, not the tiered statutory
// schedule.
var cpfRate = decimal.NewFromFloat(0.17)

// CPF returns the employer CPF contribution for a local worker's monthly salary.
func CPF(salary decimal.Decimal) decimal.Decimal {
	return salary.Mul(cpfRate)
}

// MonthlyEmployerCost returns the total monthly cost of employing the given
// employee: salary plus CPF for local workers, salary plus levy for foreign
// workers. A foreign worker without a recorded levy costs just the salary.
func MonthlyEmployerCost(employee *entity.Employee) decimal.Decimal {
	switch employee.WorkerType {
	case entity.WorkerTypeLocal:
		return employee.Salary.Add(CPF(employee.Salary))
	case entity.WorkerTypeForeign:
		levy := decimal.Zero
		if employee.ForeignWorkerLevy != nil {
			levy = *employee.ForeignWorkerLevy
		}
		return employee.Salary.Add(levy)
	default:
		return decimal.Zero
	}
}

// TotalMonthlyEmployerCost sums MonthlyEmployerCost over all active employees.
// Inactive employees contribute nothing regardless of period.
func TotalMonthlyEmployerCost(employees []*entity.Employee) decimal.Decimal {
	total := decimal.Zero
	for _, e := range employees {
		if e.Status != entity.EmployeeStatusActive {
			continue
		}
		total = total.Add(MonthlyEmployerCost(e))
	}
	return total
}
