package repository

import (
	"context"
	"errors"
	"time"

	"cumple/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrExpenseNotFound is a domain-specific error returned when an expense is not found.
var ErrExpenseNotFound = errors.New("expense not found")

// ExpenseRepository defines the standard operations for expense persistence.
type ExpenseRepository interface {
	// Create persists a new expense.
	Create(ctx context.Context, expense *entity.Expense) error

	// FindByID retrieves an expense by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error)

	// List returns expenses with suppliers preloaded, ordered by due date,
	// optionally filtered by event when eventID is non-nil.
	List(ctx context.Context, eventID *uuid.UUID) ([]*entity.Expense, error)

	// UpdateStatus sets the payment status; paidDate is stamped when the
	// status becomes paid and cleared otherwise.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.ExpenseStatus, paidDate *time.Time) error

	// DeleteByEvent removes all expenses for an event and returns the
	// number of rows removed.
	DeleteByEvent(ctx context.Context, eventID uuid.UUID) (int64, error)

	// TotalAmount returns the sum of all expense amounts.
	TotalAmount(ctx context.Context) (float64, error)
}
