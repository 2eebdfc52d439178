package impl

import (
	"context"

	"cumple/internal/domain/entity"
	domainerrors "cumple/internal/domain/errors"
	"cumple/internal/domain/repository"
	"cumple/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// supplierService implements the SupplierUsecase interface.
type supplierService struct {
	supplierRepo repository.SupplierRepository
}

// NewSupplierService is the constructor for supplierService.
func NewSupplierService(supplierRepo repository.SupplierRepository) usecase.SupplierUsecase {
	return &supplierService{
		supplierRepo: supplierRepo,
	}
}

// CreateSupplier persists a new supplier.
func (srv *supplierService) CreateSupplier(ctx context.Context, input usecase.CreateSupplierInput) (*entity.Supplier, error) {
	supplier := &entity.Supplier{
		Name:         input.Name,
		Category:     input.Category,
		ContactName:  input.ContactName,
		ContactPhone: input.ContactPhone,
		ContactEmail: input.ContactEmail,
		Notes:        input.Notes,
	}

	if err := srv.supplierRepo.Create(ctx, supplier); err != nil {
		return nil, err
	}

	return supplier, nil
}

// GetSupplier returns a supplier by ID.
func (srv *supplierService) GetSupplier(ctx context.Context, id uuid.UUID) (*entity.Supplier, error) {
	supplier, err := srv.supplierRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSupplierNotFound) {
			return nil, domainerrors.ErrSupplierNotFound
		}

		return nil, err
	}

	return supplier, nil
}

// ListSuppliers returns all suppliers ordered by name.
func (srv *supplierService) ListSuppliers(ctx context.Context) ([]*entity.Supplier, error) {
	return srv.supplierRepo.List(ctx)
}
