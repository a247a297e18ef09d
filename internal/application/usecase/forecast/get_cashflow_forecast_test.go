package forecast

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/transport-ledger/backend/internal/domain/entity"
	domainerror "github.com/transport-ledger/backend/internal/domain/error"
)

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
	return f.entries, f.err
}

func (f *fakeExpenseRepo) FindRecent(ctx context.Context, limit int) ([]*entity.ExpenseEntry, error) {
	return f.entries, f.err
}

type fakeInstallmentRepo struct {
	installments []*entity.VehicleInstallment
	err          error
}

func (f *fakeInstallmentRepo) FindAll(ctx context.Context) ([]*entity.VehicleInstallment, error) {
	return f.installments, f.err
}

type fakeInsuranceRepo struct {
	insurances []*entity.VehicleInsurance
	err        error
}

func (f *fakeInsuranceRepo) FindAll(ctx context.Context) ([]*entity.VehicleInsurance, error) {
	return f.insurances, f.err
}

type fakeParkingRepo struct {
	parkings []*entity.VehicleParking
	err      error
}

func (f *fakeParkingRepo) FindAll(ctx context.Context) ([]*entity.VehicleParking, error) {
	return f.parkings, f.err
}

func newForecastUseCase(
	routes *fakeRouteRepo,
	employees *fakeEmployeeRepo,
	expenses *fakeExpenseRepo,
	installments *fakeInstallmentRepo,
	insurances *fakeInsuranceRepo,
	parkings *fakeParkingRepo,
) *GetCashFlowForecastUseCase {
	uc := NewGetCashFlowForecastUseCase(routes, employees, expenses, installments, insurances, parkings)
	uc.now = func() time.Time {
		return time.Date(2025, time.June, 15, 10, 0, 0, 0, time.UTC)
	}
	return uc
}

func TestGetCashFlowForecastConstantComponents(t *testing.T) {
	routeRepo := &fakeRouteRepo{routes: []*entity.Route{
		{Status: entity.RouteStatusActive, RouteType: entity.RouteTypeOwned, MonthlyRate: decimal.RequireFromString("10000")},
		{Status: entity.RouteStatusInactive, RouteType: entity.RouteTypeOwned, MonthlyRate: decimal.RequireFromString("9999")},
	}}
	employeeRepo := &fakeEmployeeRepo{employees: []*entity.Employee{
		{WorkerType: entity.WorkerTypeLocal, Salary: decimal.RequireFromString("3000"), Status: entity.EmployeeStatusActive},
	}}

	uc := newForecastUseCase(routeRepo, employeeRepo, &fakeExpenseRepo{}, &fakeInstallmentRepo{}, &fakeInsuranceRepo{}, &fakeParkingRepo{})

	output, err := uc.Execute(context.Background(), GetCashFlowForecastInput{PeriodMonths: 3})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if output.PeriodMonths != 3 {
		t.Fatalf("PeriodMonths = %d, want 3", output.PeriodMonths)
	}
	if len(output.Months) != 3 {
		t.Fatalf("forecast has %d months, want 3", len(output.Months))
	}
	if output.Months[0].Month != "2025-06" {
		t.Errorf("first month = %s, want 2025-06", output.Months[0].Month)
	}

	inflows := decimal.RequireFromString("10000")
	outflows := decimal.RequireFromString("3510")
	cumulative := []string{"6490", "12980", "19470"}

	for i, m := range output.Months {
		if !m.Inflows.Equal(inflows) {
			t.Errorf("months[%d].Inflows = %s, want %s", i, m.Inflows, inflows)
		}
		if !m.Outflows.Equal(outflows) {
			t.Errorf("months[%d].Outflows = %s, want %s", i, m.Outflows, outflows)
		}
		if want := decimal.RequireFromString(cumulative[i]); !m.CumulativeBalance.Equal(want) {
			t.Errorf("months[%d].CumulativeBalance = %s, want %s", i, m.CumulativeBalance, want)
		}
	}

	if want := decimal.RequireFromString("30000"); !output.Summary.TotalInflows.Equal(want) {
		t.Errorf("TotalInflows = %s, want %s", output.Summary.TotalInflows, want)
	}
	if want := decimal.RequireFromString("10530"); !output.Summary.TotalOutflows.Equal(want) {
		t.Errorf("TotalOutflows = %s, want %s", output.Summary.TotalOutflows, want)
	}
	if want := decimal.RequireFromString("19470"); !output.Summary.EndingBalance.Equal(want) {
		t.Errorf("EndingBalance = %s, want %s", output.Summary.EndingBalance, want)
	}
	if !output.Summary.NetCashFlow.Equal(output.Summary.EndingBalance) {
		t.Error("NetCashFlow and EndingBalance diverge with a zero opening balance")
	}
}

func TestGetCashFlowForecastScheduledCosts(t *testing.T) {
	// Installment runs out after July; insurance term covers the whole window;
	// parking is open-ended.
	installmentRepo := &fakeInstallmentRepo{installments: []*entity.VehicleInstallment{
		{
			MonthlyAmount: decimal.RequireFromString("1500"),
			StartDate:     time.Date(2024, time.August, 1, 0, 0, 0, 0, time.UTC),
			EndDate:       time.Date(2025, time.July, 31, 0, 0, 0, 0, time.UTC),
		},
	}}
	insuranceRepo := &fakeInsuranceRepo{insurances: []*entity.VehicleInsurance{
		{
			Premium:   decimal.RequireFromString("2400"),
			StartDate: time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC),
		},
	}}
	parkingRepo := &fakeParkingRepo{parkings: []*entity.VehicleParking{
		{
			MonthlyCost: decimal.RequireFromString("300"),
			StartDate:   time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		},
	}}

	uc := newForecastUseCase(&fakeRouteRepo{}, &fakeEmployeeRepo{}, &fakeExpenseRepo{}, installmentRepo, insuranceRepo, parkingRepo)

	output, err := uc.Execute(context.Background(), GetCashFlowForecastInput{PeriodMonths: 3})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	// June and July carry the installment; August does not.
	for i, wantInstallment := range []string{"1500", "1500", "0"} {
		got := output.Months[i].Details.Installments
		if !got.Equal(decimal.RequireFromString(wantInstallment)) {
			t.Errorf("months[%d].Details.Installments = %s, want %s", i, got, wantInstallment)
		}
	}

	for i, m := range output.Months {
		if want := decimal.RequireFromString("200"); !m.Details.Insurance.Equal(want) {
			t.Errorf("months[%d].Details.Insurance = %s, want %s", i, m.Details.Insurance, want)
		}
		if want := decimal.RequireFromString("300"); !m.Details.Parking.Equal(want) {
			t.Errorf("months[%d].Details.Parking = %s, want %s", i, m.Details.Parking, want)
		}
	}
}

func TestGetCashFlowForecastOnlyMonthlyRecurringProjected(t *testing.T) {
	monthly := entity.RecurringMonthly
	quarterly := entity.RecurringQuarterly

	expenseRepo := &fakeExpenseRepo{entries: []*entity.ExpenseEntry{
		{Amount: decimal.RequireFromString("250"), IsRecurring: true, RecurringFrequency: &monthly},
		{Amount: decimal.RequireFromString("900"), IsRecurring: true, RecurringFrequency: &quarterly},
		{Amount: decimal.RequireFromString("100"), IsRecurring: false},
		{Amount: decimal.RequireFromString("80"), IsRecurring: true},
	}}

	uc := newForecastUseCase(&fakeRouteRepo{}, &fakeEmployeeRepo{}, expenseRepo, &fakeInstallmentRepo{}, &fakeInsuranceRepo{}, &fakeParkingRepo{})

	output, err := uc.Execute(context.Background(), GetCashFlowForecastInput{PeriodMonths: 1})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if want := decimal.RequireFromString("250"); !output.Months[0].Details.RecurringExpenses.Equal(want) {
		t.Errorf("RecurringExpenses = %s, want %s", output.Months[0].Details.RecurringExpenses, want)
	}
}

func TestGetCashFlowForecastInvalidPeriod(t *testing.T) {
	uc := newForecastUseCase(
		&fakeRouteRepo{err: errors.New("unreachable")},
		&fakeEmployeeRepo{err: errors.New("unreachable")},
		&fakeExpenseRepo{err: errors.New("unreachable")},
		&fakeInstallmentRepo{err: errors.New("unreachable")},
		&fakeInsuranceRepo{err: errors.New("unreachable")},
		&fakeParkingRepo{err: errors.New("unreachable")},
	)

	for _, months := range []int{0, -3} {
		_, err := uc.Execute(context.Background(), GetCashFlowForecastInput{PeriodMonths: months})

		var reportErr *domainerror.ReportError
		if !errors.As(err, &reportErr) {
			t.Fatalf("Execute(%d) error = %v, want *ReportError", months, err)
		}
		if reportErr.Code != domainerror.ErrCodeInvalidForecastPeriod {
			t.Errorf("error code = %s, want %s", reportErr.Code, domainerror.ErrCodeInvalidForecastPeriod)
		}
	}
}
