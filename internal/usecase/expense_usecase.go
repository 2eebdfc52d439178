package usecase

import (
	"context"
	"time"

	"cumple/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateExpenseInput defines the data required to record an expense.
type CreateExpenseInput struct {
	EventID     *uuid.UUID
	SupplierID  *uuid.UUID
	Description string
	Amount      float64
	DueDate     *time.Time
}

// SetExpenseStatusInput changes the payment state of an expense.
type SetExpenseStatusInput struct {
	ExpenseID uuid.UUID
	Status    entity.ExpenseStatus
}

// ExpenseUsecase defines the interface for expense tracking operations.
type ExpenseUsecase interface {
	CreateExpense(ctx context.Context, input CreateExpenseInput) (*entity.Expense, error)

	// ListExpenses returns expenses with suppliers, optionally filtered by event.
	ListExpenses(ctx context.Context, eventID *uuid.UUID) ([]*entity.Expense, error)

	// SetExpenseStatus marks an expense paid or pending. Marking paid
	// stamps the paid date; reverting clears it.
	SetExpenseStatus(ctx context.Context, input SetExpenseStatusInput) (*entity.Expense, error)
}
