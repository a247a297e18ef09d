// Package forecast contains the cash-flow forecast use case.
package forecast

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/transport-ledger/backend/internal/application/adapter"
	"github.com/transport-ledger/backend/internal/domain/entity"
	domainerror "github.com/transport-ledger/backend/internal/domain/error"
	"github.com/transport-ledger/backend/internal/domain/finance"
)

// DefaultPeriodMonths is the forecast horizon used when the caller does not
// supply one.
const DefaultPeriodMonths = 6

// GetCashFlowForecastInput represents the input for projecting cash flow.
type GetCashFlowForecastInput struct {
	PeriodMonths int
}

// MonthDetail breaks a forecast month's flows down by component.
type MonthDetail struct {
	RouteIncome        decimal.Decimal
	Installments       decimal.Decimal
	Insurance          decimal.Decimal
	Parking            decimal.Decimal
	Payroll            decimal.Decimal
	SubcontractorCosts decimal.Decimal
	RecurringExpenses  decimal.Decimal
}

// ForecastMonth represents the projected flows for a single future month.
type ForecastMonth struct {
	Month             string
	Label             string
	Inflows           decimal.Decimal
	Outflows          decimal.Decimal
	NetFlow           decimal.Decimal
	CumulativeBalance decimal.Decimal
	Details           MonthDetail
}

// ForecastSummary aggregates the whole forecast window.
type ForecastSummary struct {
	TotalInflows  decimal.Decimal
	TotalOutflows decimal.Decimal
	NetCashFlow   decimal.Decimal
	EndingBalance decimal.Decimal
}

// GetCashFlowForecastOutput represents the full forecast.
type GetCashFlowForecastOutput struct {
	PeriodMonths int
	Months       []ForecastMonth
	Summary      ForecastSummary
}

// GetCashFlowForecastUseCase projects inflows and outflows for N future months
// starting from the current month. Route income, payroll and subcontractor
// costs are taken from the current active records and held constant across the
// window; vehicle finance, insurance and parking schedules are evaluated per
// month against their own active windows.
type GetCashFlowForecastUseCase struct {
	routeRepo       adapter.RouteRepository
	employeeRepo    adapter.EmployeeRepository
	expenseRepo     adapter.ExpenseEntryRepository
	installmentRepo adapter.VehicleInstallmentRepository
	insuranceRepo   adapter.VehicleInsuranceRepository
	parkingRepo     adapter.VehicleParkingRepository
	now             func() time.Time
}

// NewGetCashFlowForecastUseCase creates a new GetCashFlowForecastUseCase instance.
func NewGetCashFlowForecastUseCase(
	routeRepo adapter.RouteRepository,
	employeeRepo adapter.EmployeeRepository,
	expenseRepo adapter.ExpenseEntryRepository,
	installmentRepo adapter.VehicleInstallmentRepository,
	insuranceRepo adapter.VehicleInsuranceRepository,
	parkingRepo adapter.VehicleParkingRepository,
) *GetCashFlowForecastUseCase {
	return &GetCashFlowForecastUseCase{
		routeRepo:       routeRepo,
		employeeRepo:    employeeRepo,
		expenseRepo:     expenseRepo,
		installmentRepo: installmentRepo,
		insuranceRepo:   insuranceRepo,
		parkingRepo:     parkingRepo,
		now:             time.Now,
	}
}

// Execute projects the cash flow. The engine places no upper bound on the
// forecast horizon; non-positive horizons are rejected before any read.
func (uc *GetCashFlowForecastUseCase) Execute(
	ctx context.Context,
	input GetCashFlowForecastInput,
) (*GetCashFlowForecastOutput, error) {
	if input.PeriodMonths < 1 {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeInvalidForecastPeriod,
			"period months must be a positive integer",
			domainerror.ErrInvalidForecastPeriod,
		)
	}

	routes, err := uc.routeRepo.FindAll(ctx)
	if err != nil {
		return nil, domainerror.NewDataAccessError("failed to load routes", err)
	}

	employees, err := uc.employeeRepo.FindAll(ctx)
	if err != nil {
		return nil, domainerror.NewDataAccessError("failed to load employees", err)
	}

	expenseEntries, err := uc.expenseRepo.FindAll(ctx)
	if err != nil {
		return nil, domainerror.NewDataAccessError("failed to load expense entries", err)
	}

	installments, err := uc.installmentRepo.FindAll(ctx)
	if err != nil {
		return nil, domainerror.NewDataAccessError("failed to load vehicle installments", err)
	}

	insurances, err := uc.insuranceRepo.FindAll(ctx)
	if err != nil {
		return nil, domainerror.NewDataAccessError("failed to load vehicle insurances", err)
	}

	parkings, err := uc.parkingRepo.FindAll(ctx)
	if err != nil {
		return nil, domainerror.NewDataAccessError("failed to load vehicle parking", err)
	}

	// Constant components: current active contracts and roster, applied to
	// every forecast month regardless of contract start/end dates.
	routeIncome := decimal.Zero
	subcontractorCosts := decimal.Zero
	for _, r := range routes {
		if r.Status != entity.RouteStatusActive {
			continue
		}
		routeIncome = routeIncome.Add(r.MonthlyRate)
		if r.IsSubcontracted() {
			subcontractorCosts = subcontractorCosts.Add(*r.SubcontractorCost)
		}
	}

	payroll := finance.TotalMonthlyEmployerCost(employees)

	// Only monthly recurring expenses are projected. Quarterly and yearly
	// cadences are not spread onto the forecast grid.
	recurringExpenses := decimal.Zero
	for _, e := range expenseEntries {
		if e.IsRecurring && e.RecurringFrequency != nil && *e.RecurringFrequency == entity.RecurringMonthly {
			recurringExpenses = recurringExpenses.Add(e.Amount)
		}
	}

	months := make([]ForecastMonth, 0, input.PeriodMonths)
	cumulative := decimal.Zero
	totalInflows := decimal.Zero
	totalOutflows := decimal.Zero

	for _, month := range finance.MonthSeries(uc.now(), input.PeriodMonths) {
		installmentCosts := decimal.Zero
		for _, inst := range installments {
			if finance.InstallmentActiveIn(month, inst) {
				installmentCosts = installmentCosts.Add(inst.MonthlyAmount)
			}
		}

		insuranceCosts := decimal.Zero
		for _, ins := range insurances {
			if finance.InsuranceActiveIn(month, ins) {
				insuranceCosts = insuranceCosts.Add(finance.InsuranceMonthlyShare(ins))
			}
		}

		parkingCosts := decimal.Zero
		for _, p := range parkings {
			if finance.ParkingActiveIn(month, p) {
				parkingCosts = parkingCosts.Add(p.MonthlyCost)
			}
		}

		inflows := routeIncome
		outflows := installmentCosts.
			Add(insuranceCosts).
			Add(parkingCosts).
			Add(payroll).
			Add(subcontractorCosts).
			Add(recurringExpenses)

		netFlow := inflows.Sub(outflows)
		cumulative = cumulative.Add(netFlow)
		totalInflows = totalInflows.Add(inflows)
		totalOutflows = totalOutflows.Add(outflows)

		months = append(months, ForecastMonth{
			Month:             finance.MonthKey(month),
			Label:             finance.MonthLabel(month),
			Inflows:           inflows,
			Outflows:          outflows,
			NetFlow:           netFlow,
			CumulativeBalance: cumulative,
			Details: MonthDetail{
				RouteIncome:        routeIncome,
				Installments:       installmentCosts,
				Insurance:          insuranceCosts,
				Parking:            parkingCosts,
				Payroll:            payroll,
				SubcontractorCosts: subcontractorCosts,
				RecurringExpenses:  recurringExpenses,
			},
		})
	}

	return &GetCashFlowForecastOutput{
		PeriodMonths: input.PeriodMonths,
		Months:       months,
		Summary: ForecastSummary{
			TotalInflows:  totalInflows,
			TotalOutflows: totalOutflows,
			NetCashFlow:   totalInflows.Sub(totalOutflows),
			EndingBalance: cumulative,
		},
	}, nil
}
