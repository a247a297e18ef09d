// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/transport-ledger/backend/internal/domain/entity"
)

const dateLayout = "2006-01-02"

// CreateIncomeEntryRequest represents the request body for recording income.
type CreateIncomeEntryRequest struct {
	CustomerID    *string `json:"customer_id,omitempty"`
	RouteID       *string `json:"route_id,omitempty"`
	Amount        float64 `json:"amount" binding:"required"`
	BillingPeriod string  `json:"billing_period" binding:"required"`
	IncomeType    string  `json:"income_type" binding:"required,oneof=route adhoc"`
	Description   string  `json:"description,omitempty" binding:"omitempty,max=1000"`
	DueDate       *string `json:"due_date,omitempty"`
}

// CreateExpenseEntryRequest represents the request body for recording an expense.
type CreateExpenseEntryRequest struct {
	CategoryID         *string `json:"category_id,omitempty"`
	VehicleID          *string `json:"vehicle_id,omitempty"`
	Amount             float64 `json:"amount" binding:"required"`
	ExpenseDate        string  `json:"expense_date" binding:"required"`
	Description        string  `json:"description,omitempty" binding:"omitempty,max=1000"`
	IsRecurring        bool    `json:"is_recurring,omitempty"`
	RecurringFrequency *string `json:"recurring_frequency,omitempty" binding:"omitempty,oneof=monthly quarterly yearly"`
}

// CreateRouteRequest represents the request body for registering a route.
type CreateRouteRequest struct {
	Name              string   `json:"name" binding:"required,min=1,max=255"`
	CustomerID        *string  `json:"customer_id,omitempty"`
	VehicleID         *string  `json:"vehicle_id,omitempty"`
	MonthlyRate       float64  `json:"monthly_rate" binding:"required"`
	RouteType         string   `json:"route_type" binding:"required,oneof=owned subcontracted"`
	SubcontractorCost *float64 `json:"subcontractor_cost,omitempty"`
}

// CreateEmployeeRequest represents the request body for registering an employee.
type CreateEmployeeRequest struct {
	Name              string   `json:"name" binding:"required,min=1,max=255"`
	WorkerType        string   `json:"worker_type" binding:"required,oneof=local foreign"`
	Salary            float64  `json:"salary" binding:"required"`
	ForeignWorkerLevy *float64 `json:"foreign_worker_levy,omitempty"`
	JoinDate          *string  `json:"join_date,omitempty"`
}

// IncomeEntryResponse represents a single income entry in API responses.
type IncomeEntryResponse struct {
	ID            string  `json:"id"`
	CustomerID    *string `json:"customer_id,omitempty"`
	RouteID       *string `json:"route_id,omitempty"`
	Amount        string  `json:"amount"`
	BillingPeriod string  `json:"billing_period"`
	IncomeType    string  `json:"income_type"`
	PaymentStatus string  `json:"payment_status"`
	Description   string  `json:"description,omitempty"`
	DueDate       *string `json:"due_date,omitempty"`
	PaidDate      *string `json:"paid_date,omitempty"`
	CreatedAt     string  `json:"created_at"`
}

// ToIncomeEntryResponse converts an IncomeEntry entity to a response DTO.
func ToIncomeEntryResponse(entry *entity.IncomeEntry) IncomeEntryResponse {
	return IncomeEntryResponse{
		ID:            entry.ID.String(),
		CustomerID:    uuidToString(entry.CustomerID),
		RouteID:       uuidToString(entry.RouteID),
		Amount:        entry.Amount.String(),
		BillingPeriod: entry.BillingPeriod,
		IncomeType:    string(entry.IncomeType),
		PaymentStatus: string(entry.PaymentStatus),
		Description:   entry.Description,
		DueDate:       dateToString(entry.DueDate),
		PaidDate:      dateToString(entry.PaidDate),
		CreatedAt:     entry.CreatedAt.Format(time.RFC3339),
	}
}

// ExpenseEntryResponse represents a single expense entry in API responses.
type ExpenseEntryResponse struct {
	ID                 string  `json:"id"`
	CategoryID         *string `json:"category_id,omitempty"`
	VehicleID          *string `json:"vehicle_id,omitempty"`
	Amount             string  `json:"amount"`
	ExpenseDate        string  `json:"expense_date"`
	Description        string  `json:"description,omitempty"`
	IsRecurring        bool    `json:"is_recurring"`
	RecurringFrequency *string `json:"recurring_frequency,omitempty"`
	CreatedAt          string  `json:"created_at"`
}

// ToExpenseEntryResponse converts an ExpenseEntry entity to a response DTO.
func ToExpenseEntryResponse(entry *entity.ExpenseEntry) ExpenseEntryResponse {
	var frequency *string
	if entry.RecurringFrequency != nil {
		f := string(*entry.RecurringFrequency)
		frequency = &f
	}

	return ExpenseEntryResponse{
		ID:                 entry.ID.String(),
		CategoryID:         uuidToString(entry.CategoryID),
		VehicleID:          uuidToString(entry.VehicleID),
		Amount:             entry.Amount.String(),
		ExpenseDate:        entry.ExpenseDate.Format(dateLayout),
		Description:        entry.Description,
		IsRecurring:        entry.IsRecurring,
		RecurringFrequency: frequency,
		CreatedAt:          entry.CreatedAt.Format(time.RFC3339),
	}
}

// RouteResponse represents a single route in API responses.
type RouteResponse struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	CustomerID        *string `json:"customer_id,omitempty"`
	VehicleID         *string `json:"vehicle_id,omitempty"`
	MonthlyRate       string  `json:"monthly_rate"`
	RouteType         string  `json:"route_type"`
	SubcontractorCost *string `json:"subcontractor_cost,omitempty"`
	Status            string  `json:"status"`
	CreatedAt         string  `json:"created_at"`
}

// ToRouteResponse converts a Route entity to a response DTO.
func ToRouteResponse(route *entity.Route) RouteResponse {
	var subcontractorCost *string
	if route.SubcontractorCost != nil {
		s := route.SubcontractorCost.String()
		subcontractorCost = &s
	}

	return RouteResponse{
		ID:                route.ID.String(),
		Name:              route.Name,
		CustomerID:        uuidToString(route.CustomerID),
		VehicleID:         uuidToString(route.VehicleID),
		MonthlyRate:       route.MonthlyRate.String(),
		RouteType:         string(route.RouteType),
		SubcontractorCost: subcontractorCost,
		Status:            string(route.Status),
		CreatedAt:         route.CreatedAt.Format(time.RFC3339),
	}
}

// EmployeeResponse represents a single employee in API responses.
type EmployeeResponse struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	WorkerType        string  `json:"worker_type"`
	Salary            string  `json:"salary"`
	ForeignWorkerLevy *string `json:"foreign_worker_levy,omitempty"`
	Status            string  `json:"status"`
	JoinDate          *string `json:"join_date,omitempty"`
	CreatedAt         string  `json:"created_at"`
}

// ToEmployeeResponse converts an Employee entity to a response DTO.
func ToEmployeeResponse(employee *entity.Employee) EmployeeResponse {
	var levy *string
	if employee.ForeignWorkerLevy != nil {
		l := employee.ForeignWorkerLevy.String()
		levy = &l
	}

	return EmployeeResponse{
		ID:                employee.ID.String(),
		Name:              employee.Name,
		WorkerType:        string(employee.WorkerType),
		Salary:            employee.Salary.String(),
		ForeignWorkerLevy: levy,
		Status:            string(employee.Status),
		JoinDate:          dateToString(employee.JoinDate),
		CreatedAt:         employee.CreatedAt.Format(time.RFC3339),
	}
}

// CustomerResponse represents a single customer in API responses.
type CustomerResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	ContactPerson string `json:"contact_person,omitempty"`
	Phone         string `json:"phone,omitempty"`
	Email         string `json:"email,omitempty"`
	Status        string `json:"status"`
	CreatedAt     string `json:"created_at"`
}

// ToCustomerResponse converts a Customer entity to a response DTO.
func ToCustomerResponse(customer *entity.Customer) CustomerResponse {
	return CustomerResponse{
		ID:            customer.ID.String(),
		Name:          customer.Name,
		ContactPerson: customer.ContactPerson,
		Phone:         customer.Phone,
		Email:         customer.Email,
		Status:        string(customer.Status),
		CreatedAt:     customer.CreatedAt.Format(time.RFC3339),
	}
}

// ExpenseCategoryResponse represents a single expense category in API responses.
type ExpenseCategoryResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	ParentID *string `json:"parent_id,omitempty"`
}

// ToExpenseCategoryResponse converts an ExpenseCategory entity to a response DTO.
func ToExpenseCategoryResponse(category *entity.ExpenseCategory) ExpenseCategoryResponse {
	return ExpenseCategoryResponse{
		ID:       category.ID.String(),
		Name:     category.Name,
		ParentID: uuidToString(category.ParentID),
	}
}

func uuidToString(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}

func dateToString(date *time.Time) *string {
	if date == nil {
		return nil
	}
	s := date.Format(dateLayout)
	return &s
}
