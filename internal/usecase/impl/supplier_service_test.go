package impl

import (
	"context"
	"testing"

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

func TestSupplierService_CreateSupplier_CarriesContactFields(t *testing.T) {
	supplierRepo := mockRepo.NewMockSupplierRepository(t)
	svc := NewSupplierService(supplierRepo)

	ctx := context.Background()

	supplierRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)

	supplier, err := svc.CreateSupplier(ctx, usecase.CreateSupplierInput{
		Name:         "Catering Sol",
		Category:     "catering",
		ContactName:  "Marta",
		ContactPhone: "+34 600 000 000",
		ContactEmail: "marta@cateringsol.es",
		Notes:        "menu infantil",
	})

	require.NoError(t, err)
	assert.Equal(t, "Catering Sol", supplier.Name)
	assert.Equal(t, "Marta", supplier.ContactName)
	assert.Equal(t, "+34 600 000 000", supplier.ContactPhone)
	assert.Equal(t, "marta@cateringsol.es", supplier.ContactEmail)
}

func TestSupplierService_GetSupplier_NotFound(t *testing.T) {
	supplierRepo := mockRepo.NewMockSupplierRepository(t)
	svc := NewSupplierService(supplierRepo)

	ctx := context.Background()
	supplierID := uuid.New()

	supplierRepo.EXPECT().FindByID(ctx, supplierID).Return(nil, repository.ErrSupplierNotFound)

	_, err := svc.GetSupplier(ctx, supplierID)

	assert.ErrorIs(t, err, domainerrors.ErrSupplierNotFound)
}

func TestSupplierService_ListSuppliers(t *testing.T) {
	supplierRepo := mockRepo.NewMockSupplierRepository(t)
	svc := NewSupplierService(supplierRepo)

	ctx := context.Background()
	suppliers := []*entity.Supplier{
		{ID: uuid.New(), Name: "Catering Sol", ContactName: "Marta"},
		{ID: uuid.New(), Name: "Sala Principal"},
	}

	supplierRepo.EXPECT().List(ctx).Return(suppliers, nil)

	got, err := svc.ListSuppliers(ctx)

	require.NoError(t, err)
	assert.Equal(t, suppliers, got)
}
