package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/transport-ledger/backend/internal/domain/entity"
	domainerror "github.com/transport-ledger/backend/internal/domain/error"
)

type fakeIncomeRepo struct {
	entries []*entity.IncomeEntry
	err     error
}

func (f *fakeIncomeRepo) Create(ctx context.Context, entry *entity.IncomeEntry) error {
	return f.err
}

func (f *fakeIncomeRepo) FindAll(ctx context.Context) ([]*entity.IncomeEntry, error) {
	return f.entries, f.err
}

func (f *fakeIncomeRepo) FindByBillingPeriodRange(ctx context.Context, fromKey, toKey string) ([]*entity.IncomeEntry, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*entity.IncomeEntry
	for _, e := range f.entries {
		if e.BillingPeriod >= fromKey && e.BillingPeriod <= toKey {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeIncomeRepo) FindRecent(ctx context.Context, limit int) ([]*entity.IncomeEntry, error) {
	return f.entries, f.err
}

type fakeExpenseRepo struct {
	entries []*entity.ExpenseEntry
	err     error
}

func (f *fakeExpenseRepo) Create(ctx context.Context, entry *entity.ExpenseEntry) error {
	return f.err
}

func (f *fakeExpenseRepo) FindAll(ctx context.Context) ([]*entity.ExpenseEntry, error) {
	return f.entries, f.err
}

func (f *fakeExpenseRepo) FindByDateRange(ctx context.Context, from, to time.Time) ([]*entity.ExpenseEntry, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*entity.ExpenseEntry
	for _, e := range f.entries {
		if !e.ExpenseDate.Before(from) && !e.ExpenseDate.After(to) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeExpenseRepo) FindRecent(ctx context.Context, limit int) ([]*entity.ExpenseEntry, error) {
	return f.entries, f.err
}

type fakeCategoryRepo struct {
	categories []*entity.ExpenseCategory
	err        error
}

func (f *fakeCategoryRepo) FindAll(ctx context.Context) ([]*entity.ExpenseCategory, error) {
	return f.categories, f.err
}

type fakeCustomerRepo struct {
	customers []*entity.Customer
	err       error
}

func (f *fakeCustomerRepo) Create(ctx context.Context, customer *entity.Customer) error {
	return f.err
}

func (f *fakeCustomerRepo) FindAll(ctx context.Context) ([]*entity.Customer, error) {
	return f.customers, f.err
}

type fakeRouteRepo struct {
	routes []*entity.Route
	err    error
}

func (f *fakeRouteRepo) Create(ctx context.Context, route *entity.Route) error {
	return f.err
}

func (f *fakeRouteRepo) FindAll(ctx context.Context) ([]*entity.Route, error) {
	return f.routes, f.err
}

type fakeEmployeeRepo struct {
	employees []*entity.Employee
	err       error
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, employee *entity.Employee) error {
	return f.err
}

func (f *fakeEmployeeRepo) FindAll(ctx context.Context) ([]*entity.Employee, error) {
	return f.employees, f.err
}

func fixture() (*GetProfitAndLossUseCase, GetProfitAndLossInput) {
	customerID := uuid.New()
	fuelID := uuid.New()
	subCost := decimal.RequireFromString("3000")

	incomeRepo := &fakeIncomeRepo{entries: []*entity.IncomeEntry{
		{CustomerID: &customerID, Amount: decimal.RequireFromString("10000"), BillingPeriod: "2025-01", IncomeType: entity.IncomeTypeRoute},
		{CustomerID: &customerID, Amount: decimal.RequireFromString("2000"), BillingPeriod: "2025-02", IncomeType: entity.IncomeTypeAdhoc},
		{Amount: decimal.RequireFromString("4000"), BillingPeriod: "2025-03", IncomeType: entity.IncomeTypeRoute},
		// Outside the reporting window.
		{Amount: decimal.RequireFromString("9000"), BillingPeriod: "2025-04", IncomeType: entity.IncomeTypeRoute},
	}}

	expenseRepo := &fakeExpenseRepo{entries: []*entity.ExpenseEntry{
		{CategoryID: &fuelID, Amount: decimal.RequireFromString("1500"), ExpenseDate: time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC)},
		{Amount: decimal.RequireFromString("500"), ExpenseDate: time.Date(2025, time.February, 15, 0, 0, 0, 0, time.UTC)},
	}}

	categoryRepo := &fakeCategoryRepo{categories: []*entity.ExpenseCategory{
		{ID: fuelID, Name: "Fuel"},
		{ID: uuid.New(), Name: "Maintenance"},
	}}

	customerRepo := &fakeCustomerRepo{customers: []*entity.Customer{
		{ID: customerID, Name: "Acme School"},
		{ID: uuid.New(), Name: "Dormant Client"},
	}}

	routeRepo := &fakeRouteRepo{routes: []*entity.Route{
		{Status: entity.RouteStatusActive, RouteType: entity.RouteTypeSubcontracted, SubcontractorCost: &subCost},
		{Status: entity.RouteStatusInactive, RouteType: entity.RouteTypeSubcontracted, SubcontractorCost: &subCost},
		{Status: entity.RouteStatusActive, RouteType: entity.RouteTypeOwned},
	}}

	employeeRepo := &fakeEmployeeRepo{employees: []*entity.Employee{
		{WorkerType: entity.WorkerTypeLocal, Salary: decimal.RequireFromString("3000"), Status: entity.EmployeeStatusActive},
	}}

	uc := NewGetProfitAndLossUseCase(incomeRepo, expenseRepo, categoryRepo, customerRepo, routeRepo, employeeRepo)
	input := GetProfitAndLossInput{
		From: time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC),
	}
	return uc, input
}

func TestGetProfitAndLossStatement(t *testing.T) {
	uc, input := fixture()

	output, err := uc.Execute(context.Background(), input)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if output.Period.Months != 3 {
		t.Errorf("Period.Months = %d, want 3", output.Period.Months)
	}

	if want := decimal.RequireFromString("14000"); !output.Income.RouteIncome.Equal(want) {
		t.Errorf("RouteIncome = %s, want %s", output.Income.RouteIncome, want)
	}
	if want := decimal.RequireFromString("2000"); !output.Income.AdhocIncome.Equal(want) {
		t.Errorf("AdhocIncome = %s, want %s", output.Income.AdhocIncome, want)
	}
	if want := decimal.RequireFromString("16000"); !output.Income.TotalIncome.Equal(want) {
		t.Errorf("TotalIncome = %s, want %s", output.Income.TotalIncome, want)
	}

	// Customers with no income in the window are omitted.
	if len(output.Income.ByCustomer) != 1 {
		t.Fatalf("ByCustomer has %d entries, want 1", len(output.Income.ByCustomer))
	}
	if output.Income.ByCustomer[0].CustomerName != "Acme School" {
		t.Errorf("ByCustomer[0].CustomerName = %s, want Acme School", output.Income.ByCustomer[0].CustomerName)
	}
	if want := decimal.RequireFromString("12000"); !output.Income.ByCustomer[0].Amount.Equal(want) {
		t.Errorf("ByCustomer[0].Amount = %s, want %s", output.Income.ByCustomer[0].Amount, want)
	}

	// Only the active subcontracted route contributes, pro-rated over 3 months.
	if want := decimal.RequireFromString("9000"); !output.Expenses.SubcontractorCosts.Equal(want) {
		t.Errorf("SubcontractorCosts = %s, want %s", output.Expenses.SubcontractorCosts, want)
	}
	if want := decimal.RequireFromString("10530"); !output.Expenses.EmployeeCosts.Equal(want) {
		t.Errorf("EmployeeCosts = %s, want %s", output.Expenses.EmployeeCosts, want)
	}
	if !output.Expenses.VehicleCosts.IsZero() {
		t.Errorf("VehicleCosts = %s, want 0", output.Expenses.VehicleCosts)
	}

	// Total = raw entries + subcontractor + employee costs. The category
	// breakdown is a view over the raw entries and is never added on top.
	if want := decimal.RequireFromString("21530"); !output.Expenses.TotalExpenses.Equal(want) {
		t.Errorf("TotalExpenses = %s, want %s", output.Expenses.TotalExpenses, want)
	}
	if want := decimal.RequireFromString("-5530"); !output.NetProfit.Equal(want) {
		t.Errorf("NetProfit = %s, want %s", output.NetProfit, want)
	}
}

func TestGetProfitAndLossUncategorizedBucket(t *testing.T) {
	uc, input := fixture()

	output, err := uc.Execute(context.Background(), input)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	// Fuel plus the synthetic uncategorized bucket; zero-sum categories are
	// omitted.
	if len(output.Expenses.ByCategory) != 2 {
		t.Fatalf("ByCategory has %d entries, want 2", len(output.Expenses.ByCategory))
	}

	last := output.Expenses.ByCategory[len(output.Expenses.ByCategory)-1]
	if last.CategoryName != UncategorizedLabel {
		t.Errorf("last category = %s, want %s", last.CategoryName, UncategorizedLabel)
	}
	if last.CategoryID != nil {
		t.Error("uncategorized bucket has a category ID, want nil")
	}
	if want := decimal.RequireFromString("500"); !last.Amount.Equal(want) {
		t.Errorf("uncategorized amount = %s, want %s", last.Amount, want)
	}
}

func TestGetProfitAndLossIdempotent(t *testing.T) {
	uc, input := fixture()

	first, err := uc.Execute(context.Background(), input)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	second, err := uc.Execute(context.Background(), input)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if !first.NetProfit.Equal(second.NetProfit) ||
		!first.Income.TotalIncome.Equal(second.Income.TotalIncome) ||
		!first.Expenses.TotalExpenses.Equal(second.Expenses.TotalExpenses) {
		t.Error("repeated Execute() over unchanged data produced different statements")
	}
}

func TestGetProfitAndLossInvalidRange(t *testing.T) {
	// Repositories that fail on read prove validation happens before any
	// repository access.
	uc := NewGetProfitAndLossUseCase(
		&fakeIncomeRepo{err: errors.New("unreachable")},
		&fakeExpenseRepo{err: errors.New("unreachable")},
		&fakeCategoryRepo{err: errors.New("unreachable")},
		&fakeCustomerRepo{err: errors.New("unreachable")},
		&fakeRouteRepo{err: errors.New("unreachable")},
		&fakeEmployeeRepo{err: errors.New("unreachable")},
	)

	input := GetProfitAndLossInput{
		From: time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC),
	}

	_, err := uc.Execute(context.Background(), input)

	var reportErr *domainerror.ReportError
	if !errors.As(err, &reportErr) {
		t.Fatalf("Execute() error = %v, want *ReportError", err)
	}
	if reportErr.Code != domainerror.ErrCodeInvalidDateRange {
		t.Errorf("error code = %s, want %s", reportErr.Code, domainerror.ErrCodeInvalidDateRange)
	}
}

func TestGetProfitAndLossSingleDayRange(t *testing.T) {
	uc, _ := fixture()

	day := time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC)
	output, err := uc.Execute(context.Background(), GetProfitAndLossInput{From: day, To: day})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if output.Period.Months != 1 {
		t.Errorf("Period.Months = %d, want 1", output.Period.Months)
	}
}
