// Package report contains the profit and loss statement use case.
package report

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/transport-ledger/backend/internal/application/adapter"
	"github.com/transport-ledger/backend/internal/domain/entity"
	domainerror "github.com/transport-ledger/backend/internal/domain/error"
	"github.com/transport-ledger/backend/internal/domain/finance"
)

// UncategorizedLabel is the synthetic category bucket for expense entries
// without a category.
const UncategorizedLabel = "Uncategorized"

// GetProfitAndLossInput represents the input for building a P&L statement.
type GetProfitAndLossInput struct {
	From time.Time
	To   time.Time
}

// Period describes the reporting window of a P&L statement.
type Period struct {
	From   time.Time
	To     time.Time
	Months int
}

// CustomerIncome represents one customer's income total within the period.
type CustomerIncome struct {
	CustomerID   uuid.UUID
	CustomerName string
	Amount       decimal.Decimal
}

// CategoryExpense represents one category's expense total within the period.
// CategoryID is nil for the synthetic uncategorized bucket.
type CategoryExpense struct {
	CategoryID   *uuid.UUID
	CategoryName string
	Amount       decimal.Decimal
}

// IncomeStatement is the income side of the P&L statement.
type IncomeStatement struct {
	RouteIncome decimal.Decimal
	AdhocIncome decimal.Decimal
	TotalIncome decimal.Decimal
	ByCustomer  []CustomerIncome
}

// ExpenseStatement is the expense side of the P&L statement. ByCategory is a
// view over the raw expense entries, which are already counted once in
// TotalExpenses; it must not be added on top. VehicleCosts is a placeholder
// that is always zero in this version.
type ExpenseStatement struct {
	ByCategory         []CategoryExpense
	SubcontractorCosts decimal.Decimal
	EmployeeCosts      decimal.Decimal
	VehicleCosts       decimal.Decimal
	TotalExpenses      decimal.Decimal
}

// GetProfitAndLossOutput represents a complete P&L statement.
type GetProfitAndLossOutput struct {
	Period    Period
	Income    IncomeStatement
	Expenses  ExpenseStatement
	NetProfit decimal.Decimal
}

// GetProfitAndLossUseCase builds a profit and loss statement for an arbitrary
// inclusive date range. Fixed-cadence costs (payroll, subcontractor fees) are
// pro-rated by the number of calendar months the range spans.
type GetProfitAndLossUseCase struct {
	incomeRepo   adapter.IncomeEntryRepository
	expenseRepo  adapter.ExpenseEntryRepository
	categoryRepo adapter.ExpenseCategoryRepository
	customerRepo adapter.CustomerRepository
	routeRepo    adapter.RouteRepository
	employeeRepo adapter.EmployeeRepository
}

// NewGetProfitAndLossUseCase creates a new GetProfitAndLossUseCase instance.
func NewGetProfitAndLossUseCase(
	incomeRepo adapter.IncomeEntryRepository,
	expenseRepo adapter.ExpenseEntryRepository,
	categoryRepo adapter.ExpenseCategoryRepository,
	customerRepo adapter.CustomerRepository,
	routeRepo adapter.RouteRepository,
	employeeRepo adapter.EmployeeRepository,
) *GetProfitAndLossUseCase {
	return &GetProfitAndLossUseCase{
		incomeRepo:   incomeRepo,
		expenseRepo:  expenseRepo,
		categoryRepo: categoryRepo,
		customerRepo: customerRepo,
		routeRepo:    routeRepo,
		employeeRepo: employeeRepo,
	}
}

// Execute builds the P&L statement. It is a pure function of repository state:
// the same range over unchanged data yields an identical statement.
func (uc *GetProfitAndLossUseCase) Execute(
	ctx context.Context,
	input GetProfitAndLossInput,
) (*GetProfitAndLossOutput, error) {
	if input.To.Before(input.From) {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeInvalidDateRange,
			"to must not be before from",
			domainerror.ErrInvalidDateRange,
		)
	}

	monthsInPeriod := finance.MonthsSpanned(input.From, input.To)

	incomeEntries, err := uc.incomeRepo.FindByBillingPeriodRange(
		ctx,
		finance.MonthKey(input.From),
		finance.MonthKey(input.To),
	)
	if err != nil {
		return nil, domainerror.NewDataAccessError("failed to load income entries", err)
	}

	expenseEntries, err := uc.expenseRepo.FindByDateRange(ctx, input.From, input.To)
	if err != nil {
		return nil, domainerror.NewDataAccessError("failed to load expense entries", err)
	}

	categories, err := uc.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, domainerror.NewDataAccessError("failed to load expense categories", err)
	}

	customers, err := uc.customerRepo.FindAll(ctx)
	if err != nil {
		return nil, domainerror.NewDataAccessError("failed to load customers", err)
	}

	routes, err := uc.routeRepo.FindAll(ctx)
	if err != nil {
		return nil, domainerror.NewDataAccessError("failed to load routes", err)
	}

	employees, err := uc.employeeRepo.FindAll(ctx)
	if err != nil {
		return nil, domainerror.NewDataAccessError("failed to load employees", err)
	}

	routeIncome := decimal.Zero
	adhocIncome := decimal.Zero
	for _, e := range incomeEntries {
		switch e.IncomeType {
		case entity.IncomeTypeRoute:
			routeIncome = routeIncome.Add(e.Amount)
		case entity.IncomeTypeAdhoc:
			adhocIncome = adhocIncome.Add(e.Amount)
		}
	}
	totalIncome := routeIncome.Add(adhocIncome)

	byCustomer := make([]CustomerIncome, 0, len(customers))
	for _, c := range customers {
		sum := decimal.Zero
		for _, e := range incomeEntries {
			if e.CustomerID != nil && *e.CustomerID == c.ID {
				sum = sum.Add(e.Amount)
			}
		}
		if sum.IsZero() {
			continue
		}
		byCustomer = append(byCustomer, CustomerIncome{
			CustomerID:   c.ID,
			CustomerName: c.Name,
			Amount:       sum,
		})
	}

	rawExpenseSum := decimal.Zero
	for _, e := range expenseEntries {
		rawExpenseSum = rawExpenseSum.Add(e.Amount)
	}

	byCategory := make([]CategoryExpense, 0, len(categories)+1)
	for _, c := range categories {
		sum := decimal.Zero
		for _, e := range expenseEntries {
			if e.CategoryID != nil && *e.CategoryID == c.ID {
				sum = sum.Add(e.Amount)
			}
		}
		if sum.IsZero() {
			continue
		}
		byCategory = append(byCategory, CategoryExpense{
			CategoryID:   &c.ID,
			CategoryName: c.Name,
			Amount:       sum,
		})
	}

	uncategorized := decimal.Zero
	for _, e := range expenseEntries {
		if e.CategoryID == nil {
			uncategorized = uncategorized.Add(e.Amount)
		}
	}
	if uncategorized.IsPositive() {
		byCategory = append(byCategory, CategoryExpense{
			CategoryName: UncategorizedLabel,
			Amount:       uncategorized,
		})
	}

	months := decimal.NewFromInt(int64(monthsInPeriod))

	subcontractorCosts := decimal.Zero
	for _, r := range routes {
		if r.Status == entity.RouteStatusActive && r.IsSubcontracted() {
			subcontractorCosts = subcontractorCosts.Add(r.SubcontractorCost.Mul(months))
		}
	}

	employeeCosts := finance.TotalMonthlyEmployerCost(employees).Mul(months)

	// Not computed in this version; kept so the statement shape stays stable.
	vehicleCosts := decimal.Zero

	totalExpenses := rawExpenseSum.
		Add(subcontractorCosts).
		Add(employeeCosts).
		Add(vehicleCosts)

	return &GetProfitAndLossOutput{
		Period: Period{
			From:   input.From,
			To:     input.To,
			Months: monthsInPeriod,
		},
		Income: IncomeStatement{
			RouteIncome: routeIncome,
			AdhocIncome: adhocIncome,
			TotalIncome: totalIncome,
			ByCustomer:  byCustomer,
		},
		Expenses: ExpenseStatement{
			ByCategory:         byCategory,
			SubcontractorCosts: subcontractorCosts,
			EmployeeCosts:      employeeCosts,
			VehicleCosts:       vehicleCosts,
			TotalExpenses:      totalExpenses,
		},
		NetProfit: totalIncome.Sub(totalExpenses),
	}, nil
}
