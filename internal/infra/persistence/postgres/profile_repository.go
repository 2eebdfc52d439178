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
	"gorm.io/gorm/clause"
)

// profileRepository implements the repository.ProfileRepository interface.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{
		db: db,
	}
}

// FindByID retrieves a profile by its unique ID.
func (repo *profileRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error) {
	var profileM model.Profile

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile by ID")
	}

	return profileM.ToEntity(), nil
}

// FindByEmail retrieves a profile by email address.
func (repo *profileRepository) FindByEmail(ctx context.Context, email string) (*entity.Profile, error) {
	var profileM model.Profile

	if err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile by email")
	}

	return profileM.ToEntity(), nil
}

// Resolve returns the profile for the given email, creating it when absent.
// The insert carries ON CONFLICT (email) DO UPDATE so two concurrent
// resolutions of the same address converge on one row instead of one of
// them failing on the unique index.
func (repo *profileRepository) Resolve(ctx context.Context, email, name string, role entity.Role) (*entity.Profile, error) {
	profileM := &model.Profile{
		Email: email,
		Name:  name,
		Role:  role.String(),
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "email"}},
			// An existing row keeps its name and role; the no-op update
			// lets RETURNING hand back the surviving row's values.
			DoUpdates: clause.Assignments(map[string]any{"email": email}),
		}).
		Create(profileM).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to resolve profile")
	}

	// The upsert returns the surviving row's ID but not columns the insert
	// did not touch, so reload the full row.
	return repo.FindByEmail(ctx, email)
}
