// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/transport-ledger/backend/internal/application/usecase/forecast"
)

// CashFlowForecastResponse represents the cash-flow forecast API response.
type CashFlowForecastResponse struct {
	PeriodMonths int                     `json:"period_months"`
	Months       []ForecastMonthResponse `json:"months"`
	Summary      ForecastSummaryResponse `json:"summary"`
}

// ForecastMonthResponse represents one projected month.
type ForecastMonthResponse struct {
	Month             string                  `json:"month"`
	Label             string                  `json:"label"`
	Inflows           float64                 `json:"inflows"`
	Outflows          float64                 `json:"outflows"`
	NetFlow           float64                 `json:"net_flow"`
	CumulativeBalance float64                 `json:"cumulative_balance"`
	Details           ForecastDetailsResponse `json:"details"`
}

// ForecastDetailsResponse breaks a month's flows down by component.
type ForecastDetailsResponse struct {
	RouteIncome        float64 `json:"route_income"`
	Installments       float64 `json:"installments"`
	Insurance          float64 `json:"insurance"`
	Parking            float64 `json:"parking"`
	Payroll            float64 `json:"payroll"`
	SubcontractorCosts float64 `json:"subcontractor_costs"`
	RecurringExpenses  float64 `json:"recurring_expenses"`
}

// ForecastSummaryResponse aggregates the whole forecast window.
type ForecastSummaryResponse struct {
	TotalInflows  float64 `json:"total_inflows"`
	TotalOutflows float64 `json:"total_outflows"`
	NetCashFlow   float64 `json:"net_cash_flow"`
	EndingBalance float64 `json:"ending_balance"`
}

// ToCashFlowForecastResponse converts a GetCashFlowForecastOutput to a
// CashFlowForecastResponse DTO.
func ToCashFlowForecastResponse(output *forecast.GetCashFlowForecastOutput) CashFlowForecastResponse {
	months := make([]ForecastMonthResponse, len(output.Months))
	for i, m := range output.Months {
		inflows, _ := m.Inflows.Float64()
		outflows, _ := m.Outflows.Float64()
		netFlow, _ := m.NetFlow.Float64()
		cumulative, _ := m.CumulativeBalance.Float64()
		routeIncome, _ := m.Details.RouteIncome.Float64()
		installments, _ := m.Details.Installments.Float64()
		insurance, _ := m.Details.Insurance.Float64()
		parking, _ := m.Details.Parking.Float64()
		payroll, _ := m.Details.Payroll.Float64()
		subcontractors, _ := m.Details.SubcontractorCosts.Float64()
		recurring, _ := m.Details.RecurringExpenses.Float64()

		months[i] = ForecastMonthResponse{
			Month:             m.Month,
			Label:             m.Label,
			Inflows:           inflows,
			Outflows:          outflows,
			NetFlow:           netFlow,
			CumulativeBalance: cumulative,
			Details: ForecastDetailsResponse{
				RouteIncome:        routeIncome,
				Installments:       installments,
				Insurance:          insurance,
				Parking:            parking,
				Payroll:            payroll,
				SubcontractorCosts: subcontractors,
				RecurringExpenses:  recurring,
			},
		}
	}

	totalInflows, _ := output.Summary.TotalInflows.Float64()
	totalOutflows, _ := output.Summary.TotalOutflows.Float64()
	netCashFlow, _ := output.Summary.NetCashFlow.Float64()
	endingBalance, _ := output.Summary.EndingBalance.Float64()

	return CashFlowForecastResponse{
		PeriodMonths: output.PeriodMonths,
		Months:       months,
		Summary: ForecastSummaryResponse{
			TotalInflows:  totalInflows,
			TotalOutflows: totalOutflows,
			NetCashFlow:   netCashFlow,
			EndingBalance: endingBalance,
		},
	}
}
