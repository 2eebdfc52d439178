package impl

import (
	"context"
	"time"

	"cumple/internal/domain/entity"
	domainerrors "cumple/internal/domain/errors"
	"cumple/internal/domain/repository"
	"cumple/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// expenseService implements the ExpenseUsecase interface.
type expenseService struct {
	expenseRepo  repository.ExpenseRepository
	eventRepo    repository.EventRepository
	supplierRepo repository.SupplierRepository
}

// NewExpenseService is the constructor for expenseService.
func NewExpenseService(
	expenseRepo repository.ExpenseRepository,
	eventRepo repository.EventRepository,
	supplierRepo repository.SupplierRepository,
) usecase.ExpenseUsecase {
	return &expenseService{
		expenseRepo:  expenseRepo,
		eventRepo:    eventRepo,
		supplierRepo: supplierRepo,
	}
}

// CreateExpense records a new expense. Event and supplier links are both
// optional but must point at existing rows when given.
func (srv *expenseService) CreateExpense(ctx context.Context, input usecase.CreateExpenseInput) (*entity.Expense, error) {
	if input.Amount <= 0 {
		return nil, domainerrors.ErrInvalidAmount
	}

	if input.EventID != nil {
		if _, err := srv.eventRepo.FindByID(ctx, *input.EventID); err != nil {
			if errors.Is(err, repository.ErrEventNotFound) {
				return nil, domainerrors.ErrEventNotFound
			}

			return nil, err
		}
	}
	if input.SupplierID != nil {
		if _, err := srv.supplierRepo.FindByID(ctx, *input.SupplierID); err != nil {
			if errors.Is(err, repository.ErrSupplierNotFound) {
				return nil, domainerrors.ErrSupplierNotFound
			}

			return nil, err
		}
	}

	expense := &entity.Expense{
		EventID:     input.EventID,
		SupplierID:  input.SupplierID,
		Description: input.Description,
		Amount:      input.Amount,
		Status:      entity.ExpensePending,
		DueDate:     input.DueDate,
	}

	if err := srv.expenseRepo.Create(ctx, expense); err != nil {
		return nil, err
	}

	return expense, nil
}

// ListExpenses returns expenses with suppliers, optionally filtered by event.
func (srv *expenseService) ListExpenses(ctx context.Context, eventID *uuid.UUID) ([]*entity.Expense, error) {
	return srv.expenseRepo.List(ctx, eventID)
}

// SetExpenseStatus marks an expense paid or pending. Marking paid stamps
// the paid date; reverting clears it.
func (srv *expenseService) SetExpenseStatus(ctx context.Context, input usecase.SetExpenseStatusInput) (*entity.Expense, error) {
	if !input.Status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown expense status")
	}

	var paidDate *time.Time
	if input.Status == entity.ExpensePaid {
		now := time.Now()
		paidDate = &now
	}

	if err := srv.expenseRepo.UpdateStatus(ctx, input.ExpenseID, input.Status, paidDate); err != nil {
		if errors.Is(err, repository.ErrExpenseNotFound) {
			return nil, domainerrors.ErrExpenseNotFound
		}

		return nil, err
	}

	expense, err := srv.expenseRepo.FindByID(ctx, input.ExpenseID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload expense after status update")
	}

	return expense, nil
}
