package postgres

import (
	"context"

	"cumple/internal/domain/entity"
	domainerrors "cumple/internal/domain/errors"
	"cumple/internal/domain/repository"

	"cumple/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// supplierRepository implements the repository.SupplierRepository interface.
type supplierRepository struct {
	db *gorm.DB
}

// NewSupplierRepository is the constructor for supplierRepository.
func NewSupplierRepository(db *gorm.DB) repository.SupplierRepository {
	return &supplierRepository{
		db: db,
	}
}

// Create persists a new supplier.
func (repo *supplierRepository) Create(ctx context.Context, supplier *entity.Supplier) error {
	supplierM := model.FromSupplierEntity(supplier)

	if err := repo.db.WithContext(ctx).Create(supplierM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create supplier")
	}

	// Update the entity with generated values
	supplier.ID = supplierM.ID
	supplier.CreatedAt = supplierM.CreatedAt
	supplier.UpdatedAt = supplierM.UpdatedAt

	return nil
}

// FindByID retrieves a supplier by its unique ID.
func (repo *supplierRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Supplier, error) {
	var supplierM model.Supplier

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&supplierM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSupplierNotFound
		}

		return nil, errors.Wrap(err, "failed to find supplier by ID")
	}

	return supplierM.ToEntity(), nil
}

// List returns all suppliers ordered by name.
func (repo *supplierRepository) List(ctx context.Context) ([]*entity.Supplier, error) {
	var supplierModels []*model.Supplier

	if err := repo.db.WithContext(ctx).
		Order("name ASC").
		Find(&supplierModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list suppliers")
	}

	suppliers := make([]*entity.Supplier, 0, len(supplierModels))
	for _, supplierM := range supplierModels {
		suppliers = append(suppliers, supplierM.ToEntity())
	}

	return suppliers, nil
}
