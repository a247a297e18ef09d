package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/transport-ledger/backend/internal/domain/entity"
	domainerror "github.com/transport-ledger/backend/internal/domain/error"
)

type fakeIncomeRepo struct {
	entries []*entity.IncomeEntry
	err     error
}

func (f *fakeIncomeRepo) Create(ctx context.Context, entry *entity.IncomeEntry) error {
	f.entries = append(f.entries, entry)
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
	if f.err != nil {
		return nil, f.err
	}
	if len(f.entries) > limit {
		return f.entries[:limit], nil
	}
	return f.entries, nil
}

type fakeExpenseRepo struct {
	entries []*entity.ExpenseEntry
	err     error
}

func (f *fakeExpenseRepo) Create(ctx context.Context, entry *entity.ExpenseEntry) error {
	f.entries = append(f.entries, entry)
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
	if f.err != nil {
		return nil, f.err
	}
	if len(f.entries) > limit {
		return f.entries[:limit], nil
	}
	return f.entries, nil
}

type fakeRouteRepo struct {
	routes []*entity.Route
	err    error
}

func (f *fakeRouteRepo) Create(ctx context.Context, route *entity.Route) error {
	f.routes = append(f.routes, route)
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
	f.employees = append(f.employees, employee)
	return f.err
}

func (f *fakeEmployeeRepo) FindAll(ctx context.Context) ([]*entity.Employee, error) {
	return f.employees, f.err
}

type fakeVehicleRepo struct {
	vehicles []*entity.Vehicle
	err      error
}

func (f *fakeVehicleRepo) FindAll(ctx context.Context) ([]*entity.Vehicle, error) {
	return f.vehicles, f.err
}

func fixedNow() time.Time {
	return time.Date(2025, time.June, 15, 10, 0, 0, 0, time.UTC)
}

func newStatsUseCase(
	income *fakeIncomeRepo,
	expense *fakeExpenseRepo,
	route *fakeRouteRepo,
	employee *fakeEmployeeRepo,
	vehicle *fakeVehicleRepo,
) *GetStatsUseCase {
	uc := NewGetStatsUseCase(income, expense, route, employee, vehicle)
	uc.now = fixedNow
	return uc
}

func TestGetStatsEmptyLedgerStillCarriesPayroll(t *testing.T) {
	employee := &entity.Employee{
		WorkerType: entity.WorkerTypeLocal,
		Salary:     decimal.RequireFromString("3000"),
		Status:     entity.EmployeeStatusActive,
	}

	uc := newStatsUseCase(
		&fakeIncomeRepo{},
		&fakeExpenseRepo{},
		&fakeRouteRepo{},
		&fakeEmployeeRepo{employees: []*entity.Employee{employee}},
		&fakeVehicleRepo{},
	)

	output, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	payroll := decimal.RequireFromString("3510")

	if !output.TotalExpensesMonth.Equal(payroll) {
		t.Errorf("TotalExpensesMonth = %s, want %s", output.TotalExpensesMonth, payroll)
	}
	if !output.TotalExpensesYTD.IsZero() {
		t.Errorf("TotalExpensesYTD = %s, want 0; payroll is never folded into YTD", output.TotalExpensesYTD)
	}
	if !output.NetProfitMonth.Equal(payroll.Neg()) {
		t.Errorf("NetProfitMonth = %s, want %s", output.NetProfitMonth, payroll.Neg())
	}

	if len(output.MonthlyTrend) != trendMonths {
		t.Fatalf("MonthlyTrend has %d points, want %d", len(output.MonthlyTrend), trendMonths)
	}
	for i, p := range output.MonthlyTrend {
		if !p.Income.IsZero() {
			t.Errorf("trend[%d].Income = %s, want 0", i, p.Income)
		}
		if !p.Expenses.Equal(payroll) {
			t.Errorf("trend[%d].Expenses = %s, want %s", i, p.Expenses, payroll)
		}
	}
	if output.MonthlyTrend[0].Month != "2025-01" {
		t.Errorf("trend starts at %s, want 2025-01", output.MonthlyTrend[0].Month)
	}
	if output.MonthlyTrend[trendMonths-1].Month != "2025-06" {
		t.Errorf("trend ends at %s, want 2025-06", output.MonthlyTrend[trendMonths-1].Month)
	}
}

func TestGetStatsMonthAndYTDTotals(t *testing.T) {
	income := &fakeIncomeRepo{entries: []*entity.IncomeEntry{
		{Amount: decimal.RequireFromString("10000"), BillingPeriod: "2025-06"},
		{Amount: decimal.RequireFromString("8000"), BillingPeriod: "2025-03"},
		// Prior-year entries stay out of both figures.
		{Amount: decimal.RequireFromString("7000"), BillingPeriod: "2024-12"},
		// Future billing periods stay out of YTD, which is capped at the
		// current month.
		{Amount: decimal.RequireFromString("5000"), BillingPeriod: "2025-09"},
	}}

	expense := &fakeExpenseRepo{entries: []*entity.ExpenseEntry{
		{Amount: decimal.RequireFromString("1200"), ExpenseDate: time.Date(2025, time.June, 5, 0, 0, 0, 0, time.UTC)},
		{Amount: decimal.RequireFromString("900"), ExpenseDate: time.Date(2025, time.February, 20, 0, 0, 0, 0, time.UTC)},
		{Amount: decimal.RequireFromString("800"), ExpenseDate: time.Date(2024, time.November, 1, 0, 0, 0, 0, time.UTC)},
		// The YTD expense filter has no upper bound, so dated-ahead entries
		// count toward YTD but not toward any trend month shown.
		{Amount: decimal.RequireFromString("400"), ExpenseDate: time.Date(2025, time.October, 1, 0, 0, 0, 0, time.UTC)},
	}}

	uc := newStatsUseCase(income, expense, &fakeRouteRepo{}, &fakeEmployeeRepo{}, &fakeVehicleRepo{})

	output, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if want := decimal.RequireFromString("10000"); !output.TotalIncomeMonth.Equal(want) {
		t.Errorf("TotalIncomeMonth = %s, want %s", output.TotalIncomeMonth, want)
	}
	if want := decimal.RequireFromString("18000"); !output.TotalIncomeYTD.Equal(want) {
		t.Errorf("TotalIncomeYTD = %s, want %s", output.TotalIncomeYTD, want)
	}
	if want := decimal.RequireFromString("1200"); !output.TotalExpensesMonth.Equal(want) {
		t.Errorf("TotalExpensesMonth = %s, want %s", output.TotalExpensesMonth, want)
	}
	if want := decimal.RequireFromString("2500"); !output.TotalExpensesYTD.Equal(want) {
		t.Errorf("TotalExpensesYTD = %s, want %s", output.TotalExpensesYTD, want)
	}
}

func TestGetStatsActiveCounts(t *testing.T) {
	routeRepo := &fakeRouteRepo{routes: []*entity.Route{
		{Status: entity.RouteStatusActive},
		{Status: entity.RouteStatusActive},
		{Status: entity.RouteStatusInactive},
	}}
	employeeRepo := &fakeEmployeeRepo{employees: []*entity.Employee{
		{WorkerType: entity.WorkerTypeLocal, Salary: decimal.Zero, Status: entity.EmployeeStatusActive},
		{WorkerType: entity.WorkerTypeLocal, Salary: decimal.Zero, Status: entity.EmployeeStatusInactive},
	}}
	vehicleRepo := &fakeVehicleRepo{vehicles: []*entity.Vehicle{
		{Status: entity.VehicleStatusActive},
		{Status: entity.VehicleStatusMaintenance},
	}}

	uc := newStatsUseCase(&fakeIncomeRepo{}, &fakeExpenseRepo{}, routeRepo, employeeRepo, vehicleRepo)

	output, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if output.ActiveRoutes != 2 {
		t.Errorf("ActiveRoutes = %d, want 2", output.ActiveRoutes)
	}
	if output.ActiveVehicles != 1 {
		t.Errorf("ActiveVehicles = %d, want 1", output.ActiveVehicles)
	}
	if output.ActiveEmployees != 1 {
		t.Errorf("ActiveEmployees = %d, want 1", output.ActiveEmployees)
	}
}

func TestGetStatsRecentListsCappedAtLimit(t *testing.T) {
	income := &fakeIncomeRepo{}
	for i := 0; i < recentLimit+3; i++ {
		income.entries = append(income.entries, &entity.IncomeEntry{
			Amount:        decimal.RequireFromString("100"),
			BillingPeriod: "2025-06",
		})
	}

	uc := newStatsUseCase(income, &fakeExpenseRepo{}, &fakeRouteRepo{}, &fakeEmployeeRepo{}, &fakeVehicleRepo{})

	output, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if len(output.RecentIncome) != recentLimit {
		t.Errorf("RecentIncome has %d entries, want %d", len(output.RecentIncome), recentLimit)
	}
}

func TestGetStatsRepositoryFailureAbortsReport(t *testing.T) {
	expense := &fakeExpenseRepo{err: errors.New("connection reset")}

	uc := newStatsUseCase(&fakeIncomeRepo{}, expense, &fakeRouteRepo{}, &fakeEmployeeRepo{}, &fakeVehicleRepo{})

	output, err := uc.Execute(context.Background())
	if output != nil {
		t.Fatal("Execute() returned partial output alongside an error")
	}

	var reportErr *domainerror.ReportError
	if !errors.As(err, &reportErr) {
		t.Fatalf("Execute() error = %v, want *ReportError", err)
	}
	if reportErr.Code != domainerror.ErrCodeDataAccess {
		t.Errorf("error code = %s, want %s", reportErr.Code, domainerror.ErrCodeDataAccess)
	}
}
