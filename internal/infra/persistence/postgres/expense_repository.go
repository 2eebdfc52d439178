package postgres

import (
	"context"
	"time"

	"cumple/internal/domain/entity"
	domainerrors "cumple/internal/domain/errors"
	"cumple/internal/domain/repository"

	"cumple/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// expenseRepository implements the repository.ExpenseRepository interface.
type expenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository is the constructor for expenseRepository.
func NewExpenseRepository(db *gorm.DB) repository.ExpenseRepository {
	return &expenseRepository{
		db: db,
	}
}

// Create persists a new expense.
func (repo *expenseRepository) Create(ctx context.Context, expense *entity.Expense) error {
	expenseM := model.FromExpenseEntity(expense)

	if err := repo.db.WithContext(ctx).Create(expenseM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid event or supplier reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create expense")
	}

	// Update the entity with generated values
	expense.ID = expenseM.ID
	expense.CreatedAt = expenseM.CreatedAt
	expense.UpdatedAt = expenseM.UpdatedAt

	return nil
}

// FindByID retrieves an expense by its unique ID.
func (repo *expenseRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error) {
	var expenseM model.Expense

	if err := repo.db.WithContext(ctx).
		Preload("Supplier").
		Where("id = ?", id).
		First(&expenseM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrExpenseNotFound
		}

		return nil, errors.Wrap(err, "failed to find expense by ID")
	}

	return expenseM.ToEntity(), nil
}

// List returns expenses with suppliers preloaded, ordered by due date.
func (repo *expenseRepository) List(ctx context.Context, eventID *uuid.UUID) ([]*entity.Expense, error) {
	var expenseModels []*model.Expense

	query := repo.db.WithContext(ctx).
		Preload("Supplier").
		Order("due_date ASC NULLS LAST")

	if eventID != nil {
		query = query.Where("event_id = ?", *eventID)
	}

	if err := query.Find(&expenseModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list expenses")
	}

	expenses := make([]*entity.Expense, 0, len(expenseModels))
	for _, expenseM := range expenseModels {
		expenses = append(expenses, expenseM.ToEntity())
	}

	return expenses, nil
}

// UpdateStatus sets the payment status and paid date on an expense.
func (repo *expenseRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.ExpenseStatus, paidDate *time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.Expense{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":    string(status),
			"paid_date": paidDate,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update expense status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrExpenseNotFound
	}

	return nil
}

// DeleteByEvent removes all expenses for an event.
func (repo *expenseRepository) DeleteByEvent(ctx context.Context, eventID uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Delete(&model.Expense{})

	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete expenses by event")
	}

	return result.RowsAffected, nil
}

// TotalAmount returns the sum of all expense amounts.
func (repo *expenseRepository) TotalAmount(ctx context.Context) (float64, error) {
	var total float64

	if err := repo.db.WithContext(ctx).
		Model(&model.Expense{}).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error; err != nil {
		return 0, errors.Wrap(err, "failed to sum expense amounts")
	}

	return total, nil
}
