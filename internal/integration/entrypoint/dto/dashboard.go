// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/transport-ledger/backend/internal/application/usecase/dashboard"
)

// DashboardStatsResponse represents the dashboard statistics API response.
type DashboardStatsResponse struct {
	TotalIncomeMonth   float64                `json:"total_income_month"`
	TotalIncomeYTD     float64                `json:"total_income_ytd"`
	TotalExpensesMonth float64                `json:"total_expenses_month"`
	TotalExpensesYTD   float64                `json:"total_expenses_ytd"`
	NetProfitMonth     float64                `json:"net_profit_month"`
	NetProfitYTD       float64                `json:"net_profit_ytd"`
	ActiveRoutes       int                    `json:"active_routes"`
	ActiveVehicles     int                    `json:"active_vehicles"`
	ActiveEmployees    int                    `json:"active_employees"`
	RecentIncome       []IncomeEntryResponse  `json:"recent_income"`
	RecentExpenses     []ExpenseEntryResponse `json:"recent_expenses"`
	MonthlyTrend       []TrendPointResponse   `json:"monthly_trend"`
}

// TrendPointResponse represents one month of the trailing trend in the response.
type TrendPointResponse struct {
	Month    string  `json:"month"`
	Label    string  `json:"label"`
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
}

// ToDashboardStatsResponse converts a GetStatsOutput to a DashboardStatsResponse DTO.
func ToDashboardStatsResponse(output *dashboard.GetStatsOutput) DashboardStatsResponse {
	totalIncomeMonth, _ := output.TotalIncomeMonth.Float64()
	totalIncomeYTD, _ := output.TotalIncomeYTD.Float64()
	totalExpensesMonth, _ := output.TotalExpensesMonth.Float64()
	totalExpensesYTD, _ := output.TotalExpensesYTD.Float64()
	netProfitMonth, _ := output.NetProfitMonth.Float64()
	netProfitYTD, _ := output.NetProfitYTD.Float64()

	trend := make([]TrendPointResponse, len(output.MonthlyTrend))
	for i, p := range output.MonthlyTrend {
		income, _ := p.Income.Float64()
		expenses, _ := p.Expenses.Float64()
		trend[i] = TrendPointResponse{
			Month:    p.Month,
			Label:    p.Label,
			Income:   income,
			Expenses: expenses,
		}
	}

	recentIncome := make([]IncomeEntryResponse, len(output.RecentIncome))
	for i, e := range output.RecentIncome {
		recentIncome[i] = ToIncomeEntryResponse(e)
	}

	recentExpenses := make([]ExpenseEntryResponse, len(output.RecentExpenses))
	for i, e := range output.RecentExpenses {
		recentExpenses[i] = ToExpenseEntryResponse(e)
	}

	return DashboardStatsResponse{
		TotalIncomeMonth:   totalIncomeMonth,
		TotalIncomeYTD:     totalIncomeYTD,
		TotalExpensesMonth: totalExpensesMonth,
		TotalExpensesYTD:   totalExpensesYTD,
		NetProfitMonth:     netProfitMonth,
		NetProfitYTD:       netProfitYTD,
		ActiveRoutes:       output.ActiveRoutes,
		ActiveVehicles:     output.ActiveVehicles,
		ActiveEmployees:    output.ActiveEmployees,
		RecentIncome:       recentIncome,
		RecentExpenses:     recentExpenses,
		MonthlyTrend:       trend,
	}
}
