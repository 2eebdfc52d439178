package impl

import (
	"context"
	"testing"
	"time"

	"cumple/internal/domain/entity"
	domainerrors "cumple/internal/domain/errors"
	"cumple/internal/domain/repository"
	mockRepo "cumple/internal/mocks/repository"
	"cumple/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestExpenseService(t *testing.T) (
	usecase.ExpenseUsecase,
	*mockRepo.MockExpenseRepository,
	*mockRepo.MockEventRepository,
	*mockRepo.MockSupplierRepository,
) {
	expenseRepo := mockRepo.NewMockExpenseRepository(t)
	eventRepo := mockRepo.NewMockEventRepository(t)
	supplierRepo := mockRepo.NewMockSupplierRepository(t)

	svc := NewExpenseService(expenseRepo, eventRepo, supplierRepo)

	return svc, expenseRepo, eventRepo, supplierRepo
}

func TestExpenseService_CreateExpense_Unlinked(t *testing.T) {
	svc, expenseRepo, _, _ := createTestExpenseService(t)

	ctx := context.Background()

	expenseRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)

	expense, err := svc.CreateExpense(ctx, usecase.CreateExpenseInput{
		Description: "Tarta",
		Amount:      60,
	})

	require.NoError(t, err)
	assert.Equal(t, entity.ExpensePending, expense.Status)
	assert.Nil(t, expense.EventID)
	assert.Nil(t, expense.SupplierID)
}

func TestExpenseService_CreateExpense_RejectsNonPositiveAmount(t *testing.T) {
	svc, _, _, _ := createTestExpenseService(t)

	_, err := svc.CreateExpense(context.Background(), usecase.CreateExpenseInput{
		Description: "Tarta",
		Amount:      -5,
	})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidAmount)
}

func TestExpenseService_CreateExpense_UnknownSupplier(t *testing.T) {
	svc, _, _, supplierRepo := createTestExpenseService(t)

	ctx := context.Background()
	supplierID := uuid.New()

	supplierRepo.EXPECT().FindByID(ctx, supplierID).Return(nil, repository.ErrSupplierNotFound)

	_, err := svc.CreateExpense(ctx, usecase.CreateExpenseInput{
		SupplierID:  &supplierID,
		Description: "Catering",
		Amount:      500,
	})

	assert.ErrorIs(t, err, domainerrors.ErrSupplierNotFound)
}

func TestExpenseService_SetExpenseStatus_PaidStampsDate(t *testing.T) {
	svc, expenseRepo, _, _ := createTestExpenseService(t)

	ctx := context.Background()
	expenseID := uuid.New()
	paid := &entity.Expense{ID: expenseID, Description: "Tarta", Amount: 60, Status: entity.ExpensePaid}

	expenseRepo.EXPECT().
		UpdateStatus(ctx, expenseID, entity.ExpensePaid, mock.AnythingOfType("*time.Time")).
		Return(nil)
	expenseRepo.EXPECT().FindByID(ctx, expenseID).Return(paid, nil)

	expense, err := svc.SetExpenseStatus(ctx, usecase.SetExpenseStatusInput{
		ExpenseID: expenseID,
		Status:    entity.ExpensePaid,
	})

	require.NoError(t, err)
	assert.Equal(t, entity.ExpensePaid, expense.Status)
}

func TestExpenseService_SetExpenseStatus_RevertClearsDate(t *testing.T) {
	svc, expenseRepo, _, _ := createTestExpenseService(t)

	ctx := context.Background()
	expenseID := uuid.New()
	pending := &entity.Expense{ID: expenseID, Description: "Tarta", Amount: 60, Status: entity.ExpensePending}

	expenseRepo.EXPECT().
		UpdateStatus(ctx, expenseID, entity.ExpensePending, (*time.Time)(nil)).
		Return(nil)
	expenseRepo.EXPECT().FindByID(ctx, expenseID).Return(pending, nil)

	expense, err := svc.SetExpenseStatus(ctx, usecase.SetExpenseStatusInput{
		ExpenseID: expenseID,
		Status:    entity.ExpensePending,
	})

	require.NoError(t, err)
	assert.Nil(t, expense.PaidDate)
}

func TestExpenseService_SetExpenseStatus_RejectsUnknownStatus(t *testing.T) {
	svc, _, _, _ := createTestExpenseService(t)

	_, err := svc.SetExpenseStatus(context.Background(), usecase.SetExpenseStatusInput{
		ExpenseID: uuid.New(),
		Status:    entity.ExpenseStatus("maybe"),
	})

	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
}
