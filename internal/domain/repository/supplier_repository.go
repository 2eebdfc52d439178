package repository

import (
	"context"
	"errors"

	"cumple/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrSupplierNotFound is a domain-specific error returned when a supplier is not found.
var ErrSupplierNotFound = errors.New("supplier not found")

// SupplierRepository defines the standard operations for supplier persistence.
type SupplierRepository interface {
	// Create persists a new supplier.
	Create(ctx context.Context, supplier *entity.Supplier) error

	// FindByID retrieves a supplier by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Supplier, error)

	// List returns all suppliers ordered by name.
	List(ctx context.Context) ([]*entity.Supplier, error)
}
