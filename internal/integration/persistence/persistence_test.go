package persistence

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/transport-ledger/backend/internal/domain/entity"
	"github.com/transport-ledger/backend/internal/integration/persistence/model"
)

// setupTestDB opens a private in-memory SQLite database and migrates the full
// schema. Each test gets its own database.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dbSQL, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	dbSQL.SetMaxOpenConns(1)

	db, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to connect to sqlite: %v", err)
	}

	if err := db.AutoMigrate(
		&model.CustomerModel{},
		&model.RouteModel{},
		&model.IncomeEntryModel{},
		&model.ExpenseCategoryModel{},
		&model.ExpenseEntryModel{},
		&model.VehicleModel{},
		&model.VehicleInstallmentModel{},
		&model.VehicleInsuranceModel{},
		&model.VehicleParkingModel{},
		&model.EmployeeModel{},
	); err != nil {
		t.Fatalf("failed to migrate schema: %v", err)
	}

	t.Cleanup(func() { _ = dbSQL.Close() })

	return db
}

func incomeEntryAt(billingPeriod string, amount string, createdAt time.Time) *entity.IncomeEntry {
	return &entity.IncomeEntry{
		ID:            uuid.New(),
		Amount:        decimal.RequireFromString(amount),
		BillingPeriod: billingPeriod,
		IncomeType:    entity.IncomeTypeRoute,
		PaymentStatus: entity.PaymentStatusPending,
		CreatedAt:     createdAt,
		UpdatedAt:     createdAt,
	}
}

func TestIncomeEntryRepositoryBillingPeriodRange(t *testing.T) {
	db := setupTestDB(t)
	repo := NewIncomeEntryRepository(db)
	ctx := context.Background()

	base := time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)
	for i, period := range []string{"2024-12", "2025-01", "2025-03", "2025-06"} {
		entry := incomeEntryAt(period, "1000", base.Add(time.Duration(i)*time.Minute))
		if err := repo.Create(ctx, entry); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	entries, err := repo.FindByBillingPeriodRange(ctx, "2025-01", "2025-06")
	if err != nil {
		t.Fatalf("FindByBillingPeriodRange() error = %v", err)
	}

	if len(entries) != 3 {
		t.Fatalf("got %d entries, want 3", len(entries))
	}
	// Ordered by billing period; the 2024-12 entry is out of range.
	for i, want := range []string{"2025-01", "2025-03", "2025-06"} {
		if entries[i].BillingPeriod != want {
			t.Errorf("entries[%d].BillingPeriod = %s, want %s", i, entries[i].BillingPeriod, want)
		}
	}
}

func TestIncomeEntryRepositoryFindRecent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewIncomeEntryRepository(db)
	ctx := context.Background()

	base := time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		entry := incomeEntryAt("2025-06", "100", base.Add(time.Duration(i)*time.Hour))
		if err := repo.Create(ctx, entry); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	entries, err := repo.FindRecent(ctx, 5)
	if err != nil {
		t.Fatalf("FindRecent() error = %v", err)
	}

	if len(entries) != 5 {
		t.Fatalf("got %d entries, want 5", len(entries))
	}
	for i := 1; i < len(entries); i++ {
		if entries[i].CreatedAt.After(entries[i-1].CreatedAt) {
			t.Error("FindRecent() entries are not ordered newest first")
			break
		}
	}
}

func TestIncomeEntryRepositoryRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	repo := NewIncomeEntryRepository(db)
	ctx := context.Background()

	entry := incomeEntryAt("2025-06", "1234.56", time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC))
	if err := repo.Create(ctx, entry); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	entries, err := repo.FindAll(ctx)
	if err != nil {
		t.Fatalf("FindAll() error = %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}

	got := entries[0]
	if got.ID != entry.ID {
		t.Errorf("ID = %s, want %s", got.ID, entry.ID)
	}
	if !got.Amount.Equal(entry.Amount) {
		t.Errorf("Amount = %s, want %s", got.Amount, entry.Amount)
	}
	if got.IncomeType != entity.IncomeTypeRoute {
		t.Errorf("IncomeType = %s, want %s", got.IncomeType, entity.IncomeTypeRoute)
	}
}

func TestExpenseEntryRepositoryDateRange(t *testing.T) {
	db := setupTestDB(t)
	repo := NewExpenseEntryRepository(db)
	ctx := context.Background()

	dates := []time.Time{
		time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.February, 15, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC),
	}
	for i, d := range dates {
		entry := &entity.ExpenseEntry{
			ID:          uuid.New(),
			Amount:      decimal.RequireFromString("100"),
			ExpenseDate: d,
			CreatedAt:   d.Add(time.Duration(i) * time.Minute),
			UpdatedAt:   d,
		}
		if err := repo.Create(ctx, entry); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	from := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC)

	entries, err := repo.FindByDateRange(ctx, from, to)
	if err != nil {
		t.Fatalf("FindByDateRange() error = %v", err)
	}

	// Both boundary dates are inclusive.
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
}

func TestRouteRepositoryRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRouteRepository(db)
	ctx := context.Background()

	cost := decimal.RequireFromString("3000")
	route := entity.NewRoute(
		"City loop",
		nil,
		nil,
		decimal.RequireFromString("8000"),
		entity.RouteTypeSubcontracted,
		&cost,
	)

	if err := repo.Create(ctx, route); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	routes, err := repo.FindAll(ctx)
	if err != nil {
		t.Fatalf("FindAll() error = %v", err)
	}
	if len(routes) != 1 {
		t.Fatalf("got %d routes, want 1", len(routes))
	}

	got := routes[0]
	if !got.IsSubcontracted() {
		t.Error("IsSubcontracted() = false after round trip, want true")
	}
	if got.SubcontractorCost == nil || !got.SubcontractorCost.Equal(cost) {
		t.Error("subcontractor cost lost in round trip")
	}
}

func TestEmployeeRepositoryRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	repo := NewEmployeeRepository(db)
	ctx := context.Background()

	levy := decimal.RequireFromString("450")
	employee := entity.NewEmployee("Tan Wei", entity.WorkerTypeForeign, decimal.RequireFromString("2200"), &levy, nil)

	if err := repo.Create(ctx, employee); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	employees, err := repo.FindAll(ctx)
	if err != nil {
		t.Fatalf("FindAll() error = %v", err)
	}
	if len(employees) != 1 {
		t.Fatalf("got %d employees, want 1", len(employees))
	}

	got := employees[0]
	if got.WorkerType != entity.WorkerTypeForeign {
		t.Errorf("WorkerType = %s, want %s", got.WorkerType, entity.WorkerTypeForeign)
	}
	if got.ForeignWorkerLevy == nil || !got.ForeignWorkerLevy.Equal(levy) {
		t.Error("levy lost in round trip")
	}
}
