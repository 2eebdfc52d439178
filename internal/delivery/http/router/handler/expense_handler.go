package handler

import (
	"log/slog"
	"net/http"
	"time"

	"cumple/internal/delivery/http/response"
	"cumple/internal/domain/entity"
	"cumple/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ExpenseHandler holds dependencies for expense tracking handlers.
type ExpenseHandler struct {
	uc     usecase.ExpenseUsecase
	logger *slog.Logger
}

// NewExpenseHandler is the constructor for ExpenseHandler, injected by Fx.
func NewExpenseHandler(uc usecase.ExpenseUsecase, logger *slog.Logger) *ExpenseHandler {
	return &ExpenseHandler{uc: uc, logger: logger}
}

type createExpenseRequest struct {
	EventID     string     `json:"eventId"`
	SupplierID  string     `json:"supplierId"`
	Description string     `json:"description" validate:"required"`
	Amount      float64    `json:"amount" validate:"required,gt=0"`
	DueDate     *time.Time `json:"dueDate"`
}

// CreateExpense handles the expense creation request. Event and supplier
// links are optional.
func (h *ExpenseHandler) CreateExpense(c echo.Context) error {
	var req createExpenseRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid expense input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Description and a positive amount are required")
	}

	input := usecase.CreateExpenseInput{
		Description: req.Description,
		Amount:      req.Amount,
		DueDate:     req.DueDate,
	}

	if req.EventID != "" {
		id, err := uuid.Parse(req.EventID)
		if err != nil {
			return response.BadRequest(c, "INVALID_EVENT_ID", "Invalid event ID format")
		}
		input.EventID = &id
	}
	if req.SupplierID != "" {
		id, err := uuid.Parse(req.SupplierID)
		if err != nil {
			return response.BadRequest(c, "INVALID_SUPPLIER_ID", "Invalid supplier ID format")
		}
		input.SupplierID = &id
	}

	expense, err := h.uc.CreateExpense(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toExpenseView(expense), "Expense created successfully")
}

type expenseListResponse struct {
	Expenses    []*expenseView `json:"expenses"`
	TotalAmount float64        `json:"totalAmount"`
	PaidAmount  float64        `json:"paidAmount"`
}

// ListExpenses handles the expense list request, optionally filtered by
// the event query parameter.
func (h *ExpenseHandler) ListExpenses(c echo.Context) error {
	var eventID *uuid.UUID
	if raw := c.QueryParam("event"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_EVENT_ID", "Invalid event ID format")
		}
		eventID = &id
	}

	expenses, err := h.uc.ListExpenses(c.Request().Context(), eventID)
	if err != nil {
		return errors.WithStack(err)
	}

	resp := expenseListResponse{Expenses: toExpenseViews(expenses)}
	for _, expense := range expenses {
		resp.TotalAmount += expense.Amount
		if expense.Status == entity.ExpensePaid {
			resp.PaidAmount += expense.Amount
		}
	}

	return response.Success(c, http.StatusOK, resp, "Expenses retrieved successfully")
}

type setExpenseStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// SetExpenseStatus handles the request to mark an expense paid or pending.
func (h *ExpenseHandler) SetExpenseStatus(c echo.Context) error {
	expenseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_EXPENSE_ID", "Invalid expense ID format")
	}

	var req setExpenseStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Status is required")
	}

	expense, err := h.uc.SetExpenseStatus(c.Request().Context(), usecase.SetExpenseStatusInput{
		ExpenseID: expenseID,
		Status:    entity.ExpenseStatus(req.Status),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toExpenseView(expense), "Expense status updated successfully")
}
