// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/transport-ledger/backend/internal/application/usecase/report"
)

// ProfitAndLossResponse represents the P&L statement API response.
type ProfitAndLossResponse struct {
	Period    PeriodResponse           `json:"period"`
	Income    IncomeStatementResponse  `json:"income"`
	Expenses  ExpenseStatementResponse `json:"expenses"`
	NetProfit float64                  `json:"net_profit"`
}

// PeriodResponse represents the reporting window in the response.
type PeriodResponse struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Months int    `json:"months"`
}

// IncomeStatementResponse represents the income side of the statement.
type IncomeStatementResponse struct {
	RouteIncome float64                  `json:"route_income"`
	AdhocIncome float64                  `json:"adhoc_income"`
	TotalIncome float64                  `json:"total_income"`
	ByCustomer  []CustomerIncomeResponse `json:"by_customer"`
}

// CustomerIncomeResponse represents one customer's income total.
type CustomerIncomeResponse struct {
	CustomerID   string  `json:"customer_id"`
	CustomerName string  `json:"customer_name"`
	Amount       float64 `json:"amount"`
}

// ExpenseStatementResponse represents the expense side of the statement.
type ExpenseStatementResponse struct {
	ByCategory         []CategoryExpenseResponse `json:"by_category"`
	SubcontractorCosts float64                   `json:"subcontractor_costs"`
	EmployeeCosts      float64                   `json:"employee_costs"`
	VehicleCosts       float64                   `json:"vehicle_costs"`
	TotalExpenses      float64                   `json:"total_expenses"`
}

// CategoryExpenseResponse represents one category's expense total. CategoryID
// is empty for the uncategorized bucket.
type CategoryExpenseResponse struct {
	CategoryID   string  `json:"category_id,omitempty"`
	CategoryName string  `json:"category_name"`
	Amount       float64 `json:"amount"`
}

// ToProfitAndLossResponse converts a GetProfitAndLossOutput to a ProfitAndLossResponse DTO.
func ToProfitAndLossResponse(output *report.GetProfitAndLossOutput) ProfitAndLossResponse {
	routeIncome, _ := output.Income.RouteIncome.Float64()
	adhocIncome, _ := output.Income.AdhocIncome.Float64()
	totalIncome, _ := output.Income.TotalIncome.Float64()

	byCustomer := make([]CustomerIncomeResponse, len(output.Income.ByCustomer))
	for i, c := range output.Income.ByCustomer {
		amount, _ := c.Amount.Float64()
		byCustomer[i] = CustomerIncomeResponse{
			CustomerID:   c.CustomerID.String(),
			CustomerName: c.CustomerName,
			Amount:       amount,
		}
	}

	byCategory := make([]CategoryExpenseResponse, len(output.Expenses.ByCategory))
	for i, c := range output.Expenses.ByCategory {
		amount, _ := c.Amount.Float64()
		resp := CategoryExpenseResponse{
			CategoryName: c.CategoryName,
			Amount:       amount,
		}
		if c.CategoryID != nil {
			resp.CategoryID = c.CategoryID.String()
		}
		byCategory[i] = resp
	}

	subcontractorCosts, _ := output.Expenses.SubcontractorCosts.Float64()
	employeeCosts, _ := output.Expenses.EmployeeCosts.Float64()
	vehicleCosts, _ := output.Expenses.VehicleCosts.Float64()
	totalExpenses, _ := output.Expenses.TotalExpenses.Float64()
	netProfit, _ := output.NetProfit.Float64()

	return ProfitAndLossResponse{
		Period: PeriodResponse{
			From:   output.Period.From.Format("2006-01-02"),
			To:     output.Period.To.Format("2006-01-02"),
			Months: output.Period.Months,
		},
		Income: IncomeStatementResponse{
			RouteIncome: routeIncome,
			AdhocIncome: adhocIncome,
			TotalIncome: totalIncome,
			ByCustomer:  byCustomer,
		},
		Expenses: ExpenseStatementResponse{
			ByCategory:         byCategory,
			SubcontractorCosts: subcontractorCosts,
			EmployeeCosts:      employeeCosts,
			VehicleCosts:       vehicleCosts,
			TotalExpenses:      totalExpenses,
		},
		NetProfit: netProfit,
	}
}
