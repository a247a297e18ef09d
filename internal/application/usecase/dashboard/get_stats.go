// Package dashboard contains the dashboard statistics use case.
package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/transport-ledger/backend/internal/application/adapter"
	"github.com/transport-ledger/backend/internal/domain/entity"
	domainerror "github.com/transport-ledger/backend/internal/domain/error"
	"github.com/transport-ledger/backend/internal/domain/finance"
)

// recentLimit is the number of entries shown in the recent income/expense lists.
const recentLimit = 5

// trendMonths is the length of the trailing monthly trend series.
const trendMonths = 6

// TrendPoint represents one month of the trailing income/expense trend.
type TrendPoint struct {
	Month    string
	Label    string
	Income   decimal.Decimal
	Expenses decimal.Decimal
}

// GetStatsOutput represents the dashboard statistics.
type GetStatsOutput struct {
	TotalIncomeMonth   decimal.Decimal
	TotalIncomeYTD     decimal.Decimal
	TotalExpensesMonth decimal.Decimal
	TotalExpensesYTD   decimal.Decimal
	NetProfitMonth     decimal.Decimal
	NetProfitYTD       decimal.Decimal
	ActiveRoutes       int
	ActiveVehicles     int
	ActiveEmployees    int
	RecentIncome       []*entity.IncomeEntry
	RecentExpenses     []*entity.ExpenseEntry
	MonthlyTrend       []TrendPoint
}

// GetStatsUseCase computes the dashboard KPIs: current-month and year-to-date
// income/expense/profit totals, entity counts, recent entries and a trailing
// six-month trend series.
type GetStatsUseCase struct {
	incomeRepo   adapter.IncomeEntryRepository
	expenseRepo  adapter.ExpenseEntryRepository
	routeRepo    adapter.RouteRepository
	employeeRepo adapter.EmployeeRepository
	vehicleRepo  adapter.VehicleRepository
	now          func() time.Time
}

// NewGetStatsUseCase creates a new GetStatsUseCase instance.
func NewGetStatsUseCase(
	incomeRepo adapter.IncomeEntryRepository,
	expenseRepo adapter.ExpenseEntryRepository,
	routeRepo adapter.RouteRepository,
	employeeRepo adapter.EmployeeRepository,
	vehicleRepo adapter.VehicleRepository,
) *GetStatsUseCase {
	return &GetStatsUseCase{
		incomeRepo:   incomeRepo,
		expenseRepo:  expenseRepo,
		routeRepo:    routeRepo,
		employeeRepo: employeeRepo,
		vehicleRepo:  vehicleRepo,
		now:          time.Now,
	}
}

// Execute computes the dashboard statistics from the current repository state.
// A failed repository read aborts the whole computation; no partial results.
func (uc *GetStatsUseCase) Execute(ctx context.Context) (*GetStatsOutput, error) {
	incomeEntries, err := uc.incomeRepo.FindAll(ctx)
	if err != nil {
		return nil, domainerror.NewDataAccessError("failed to load income entries", err)
	}

	expenseEntries, err := uc.expenseRepo.FindAll(ctx)
	if err != nil {
		return nil, domainerror.NewDataAccessError("failed to load expense entries", err)
	}

	routes, err := uc.routeRepo.FindAll(ctx)
	if err != nil {
		return nil, domainerror.NewDataAccessError("failed to load routes", err)
	}

	employees, err := uc.employeeRepo.FindAll(ctx)
	if err != nil {
		return nil, domainerror.NewDataAccessError("failed to load employees", err)
	}

	vehicles, err := uc.vehicleRepo.FindAll(ctx)
	if err != nil {
		return nil, domainerror.NewDataAccessError("failed to load vehicles", err)
	}

	recentIncome, err := uc.incomeRepo.FindRecent(ctx, recentLimit)
	if err != nil {
		return nil, domainerror.NewDataAccessError("failed to load recent income entries", err)
	}

	recentExpenses, err := uc.expenseRepo.FindRecent(ctx, recentLimit)
	if err != nil {
		return nil, domainerror.NewDataAccessError("failed to load recent expense entries", err)
	}

	now := uc.now()
	currentKey := finance.MonthKey(now)
	yearStartKey := fmt.Sprintf("%04d-01", now.Year())
	yearStartDate := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())

	// Payroll cost of the current active roster. The same figure is folded
	// into the current month and every trend month.
	payroll := finance.TotalMonthlyEmployerCost(employees)

	monthlyIncome := sumIncomeForPeriod(incomeEntries, currentKey)

	ytdIncome := decimal.Zero
	for _, e := range incomeEntries {
		if e.BillingPeriod >= yearStartKey && e.BillingPeriod <= currentKey {
			ytdIncome = ytdIncome.Add(e.Amount)
		}
	}

	monthlyExpenses := sumExpensesForMonth(expenseEntries, currentKey).Add(payroll)

	// YTD expenses deliberately exclude payroll, mirroring the monthly figure
	// asymmetrically. The YTD filter has no upper bound.
	ytdExpenses := decimal.Zero
	for _, e := range expenseEntries {
		if !e.ExpenseDate.Before(yearStartDate) {
			ytdExpenses = ytdExpenses.Add(e.Amount)
		}
	}

	trend := make([]TrendPoint, 0, trendMonths)
	for _, month := range finance.TrailingMonths(now, trendMonths) {
		key := finance.MonthKey(month)
		trend = append(trend, TrendPoint{
			Month:    key,
			Label:    finance.MonthLabel(month),
			Income:   sumIncomeForPeriod(incomeEntries, key),
			Expenses: sumExpensesForMonth(expenseEntries, key).Add(payroll),
		})
	}

	activeRoutes := 0
	for _, r := range routes {
		if r.Status == entity.RouteStatusActive {
			activeRoutes++
		}
	}

	activeVehicles := 0
	for _, v := range vehicles {
		if v.Status == entity.VehicleStatusActive {
			activeVehicles++
		}
	}

	activeEmployees := 0
	for _, e := range employees {
		if e.Status == entity.EmployeeStatusActive {
			activeEmployees++
		}
	}

	return &GetStatsOutput{
		TotalIncomeMonth:   monthlyIncome,
		TotalIncomeYTD:     ytdIncome,
		TotalExpensesMonth: monthlyExpenses,
		TotalExpensesYTD:   ytdExpenses,
		NetProfitMonth:     monthlyIncome.Sub(monthlyExpenses),
		NetProfitYTD:       ytdIncome.Sub(ytdExpenses),
		ActiveRoutes:       activeRoutes,
		ActiveVehicles:     activeVehicles,
		ActiveEmployees:    activeEmployees,
		RecentIncome:       recentIncome,
		RecentExpenses:     recentExpenses,
		MonthlyTrend:       trend,
	}, nil
}

// sumIncomeForPeriod sums income entries attributed to the given billing period.
func sumIncomeForPeriod(entries []*entity.IncomeEntry, monthKey string) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		if e.BillingPeriod == monthKey {
			total = total.Add(e.Amount)
		}
	}
	return total
}

// sumExpensesForMonth sums expense entries whose expense date falls in the
// calendar month identified by monthKey.
func sumExpensesForMonth(entries []*entity.ExpenseEntry, monthKey string) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		if finance.MonthKey(e.ExpenseDate) == monthKey {
			total = total.Add(e.Amount)
		}
	}
	return total
}
