// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/transport-ledger/backend/internal/integration/entrypoint/controller"
	"github.com/transport-ledger/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine              *gin.Engine
	healthController    *controller.HealthController
	dashboardController *controller.DashboardController
	reportController    *controller.ReportController
	forecastController  *controller.ForecastController
	incomeController    *controller.IncomeController
	expenseController   *controller.ExpenseController
	routeController     *controller.RouteController
	employeeController  *controller.EmployeeController
	customerController  *controller.CustomerController
	exportRateLimiter   *middleware.RateLimiter
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	dashboardController *controller.DashboardController,
	reportController *controller.ReportController,
	forecastController *controller.ForecastController,
	incomeController *controller.IncomeController,
	expenseController *controller.ExpenseController,
	routeController *controller.RouteController,
	employeeController *controller.EmployeeController,
	customerController *controller.CustomerController,
	exportRateLimiter *middleware.RateLimiter,
) *Router {
	return &Router{
		healthController:    healthController,
		dashboardController: dashboardController,
		reportController:    reportController,
		forecastController:  forecastController,
		incomeController:    incomeController,
		expenseController:   expenseController,
		routeController:     routeController,
		employeeController:  employeeController,
		customerController:  customerController,
		exportRateLimiter:   exportRateLimiter,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	// API v1 group
	v1 := r.engine.Group("/api/v1")
	{
		if r.dashboardController != nil {
			v1.GET("/dashboard/stats", r.dashboardController.GetStats)
		}

		if r.reportController != nil {
			reports := v1.Group("/reports")
			{
				reports.GET("/profit-loss", r.reportController.GetProfitAndLoss)
				if r.exportRateLimiter != nil {
					reports.GET("/profit-loss/pdf", r.exportRateLimiter.Middleware(), r.reportController.ExportProfitAndLossPDF)
				} else {
					reports.GET("/profit-loss/pdf", r.reportController.ExportProfitAndLossPDF)
				}
			}
		}

		if r.forecastController != nil {
			v1.GET("/forecast/cashflow", r.forecastController.GetCashFlowForecast)
		}

		if r.incomeController != nil {
			income := v1.Group("/income")
			{
				income.GET("", r.incomeController.List)
				income.POST("", r.incomeController.Create)
			}
		}

		if r.expenseController != nil {
			expenses := v1.Group("/expenses")
			{
				expenses.GET("", r.expenseController.List)
				expenses.POST("", r.expenseController.Create)
			}
			v1.GET("/expense-categories", r.expenseController.ListCategories)
		}

		if r.routeController != nil {
			routes := v1.Group("/routes")
			{
				routes.GET("", r.routeController.List)
				routes.POST("", r.routeController.Create)
			}
		}

		if r.employeeController != nil {
			employees := v1.Group("/employees")
			{
				employees.GET("", r.employeeController.List)
				employees.POST("", r.employeeController.Create)
			}
		}

		if r.customerController != nil {
			v1.GET("/customers", r.customerController.List)
		}
	}
}
