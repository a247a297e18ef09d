// Package main is the entry point for the Transport Ledger API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/transport-ledger/backend/config"
	"github.com/transport-ledger/backend/internal/application/usecase/dashboard"
	"github.com/transport-ledger/backend/internal/application/usecase/forecast"
	"github.com/transport-ledger/backend/internal/application/usecase/ledger"
	"github.com/transport-ledger/backend/internal/application/usecase/report"
	"github.com/transport-ledger/backend/internal/infra/db"
	"github.com/transport-ledger/backend/internal/infra/server/router"
	"github.com/transport-ledger/backend/internal/integration/entrypoint/controller"
	"github.com/transport-ledger/backend/internal/integration/entrypoint/middleware"
	"github.com/transport-ledger/backend/internal/integration/persistence"
	"github.com/transport-ledger/backend/internal/integration/persistence/model"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	slog.Info("Starting Transport Ledger API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	// Initialize database connection
	database, err := db.NewPostgresConnection(&cfg.Database)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}

	// Run database migrations
	if err := database.AutoMigrate(
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
		slog.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Database migrations completed successfully")

	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	// Create repositories
	customerRepo := persistence.NewCustomerRepository(database.DB())
	routeRepo := persistence.NewRouteRepository(database.DB())
	incomeRepo := persistence.NewIncomeEntryRepository(database.DB())
	expenseRepo := persistence.NewExpenseEntryRepository(database.DB())
	categoryRepo := persistence.NewExpenseCategoryRepository(database.DB())
	vehicleRepo := persistence.NewVehicleRepository(database.DB())
	installmentRepo := persistence.NewVehicleInstallmentRepository(database.DB())
	insuranceRepo := persistence.NewVehicleInsuranceRepository(database.DB())
	parkingRepo := persistence.NewVehicleParkingRepository(database.DB())
	employeeRepo := persistence.NewEmployeeRepository(database.DB())

	// Create reporting use cases
	getStatsUseCase := dashboard.NewGetStatsUseCase(incomeRepo, expenseRepo, routeRepo, employeeRepo, vehicleRepo)
	getProfitAndLossUseCase := report.NewGetProfitAndLossUseCase(
		incomeRepo, expenseRepo, categoryRepo, customerRepo, routeRepo, employeeRepo,
	)
	getCashFlowForecastUseCase := forecast.NewGetCashFlowForecastUseCase(
		routeRepo, employeeRepo, expenseRepo, installmentRepo, insuranceRepo, parkingRepo,
	)

	// Create ledger use cases
	createIncomeUseCase := ledger.NewCreateIncomeEntryUseCase(incomeRepo)
	listIncomeUseCase := ledger.NewListIncomeEntriesUseCase(incomeRepo)
	createExpenseUseCase := ledger.NewCreateExpenseEntryUseCase(expenseRepo)
	listExpensesUseCase := ledger.NewListExpenseEntriesUseCase(expenseRepo)
	listCategoriesUseCase := ledger.NewListExpenseCategoriesUseCase(categoryRepo)
	createRouteUseCase := ledger.NewCreateRouteUseCase(routeRepo)
	listRoutesUseCase := ledger.NewListRoutesUseCase(routeRepo)
	createEmployeeUseCase := ledger.NewCreateEmployeeUseCase(employeeRepo)
	listEmployeesUseCase := ledger.NewListEmployeesUseCase(employeeRepo)
	listCustomersUseCase := ledger.NewListCustomersUseCase(customerRepo)

	// Create controllers
	healthController := controller.NewHealthController(database.HealthCheck)
	dashboardController := controller.NewDashboardController(getStatsUseCase)
	reportController := controller.NewReportController(getProfitAndLossUseCase)
	forecastController := controller.NewForecastController(getCashFlowForecastUseCase)
	incomeController := controller.NewIncomeController(createIncomeUseCase, listIncomeUseCase)
	expenseController := controller.NewExpenseController(createExpenseUseCase, listExpensesUseCase, listCategoriesUseCase)
	routeController := controller.NewRouteController(createRouteUseCase, listRoutesUseCase)
	employeeController := controller.NewEmployeeController(createEmployeeUseCase, listEmployeesUseCase)
	customerController := controller.NewCustomerController(listCustomersUseCase)

	exportRateLimiter := middleware.NewRateLimiterWithConfig(
		cfg.Export.RateLimitAttempts,
		cfg.Export.RateLimitWindow,
	)

	// Setup router
	r := router.NewRouter(
		healthController,
		dashboardController,
		reportController,
		forecastController,
		incomeController,
		expenseController,
		routeController,
		employeeController,
		customerController,
		exportRateLimiter,
	)
	engine := r.Setup(cfg.Server.Environment)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}
