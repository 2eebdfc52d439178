package usecase

import (
	"context"

	"cumple/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateSupplierInput defines the data required to create a supplier.
type CreateSupplierInput struct {
	Name         string
	Category     string
	ContactName  string
	ContactPhone string
	ContactEmail string
	Notes        string
}

// SupplierUsecase defines the interface for supplier directory operations.
type SupplierUsecase interface {
	CreateSupplier(ctx context.Context, input CreateSupplierInput) (*entity.Supplier, error)
	GetSupplier(ctx context.Context, id uuid.UUID) (*entity.Supplier, error)
	ListSuppliers(ctx context.Context) ([]*entity.Supplier, error)
}
