package postgres

import (
	"context"
	"time"

	"lobby/internal/domain/entity"
	domainerrors "lobby/internal/domain/errors"
	"lobby/internal/domain/repository"
	"lobby/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// profileRepository implements the domain ProfileRepository interface using GORM.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

// FindByOwner retrieves the profile of ownerID with its owner preloaded.
func (repo *profileRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.Profile, error) {
	var profileM model.ProfileModel
	err := repo.db.WithContext(ctx).
		Preload("Owner").
		Where("owner_id = ?", ownerID).
		First(&profileM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile by owner")
	}

	return model.ToProfileDomain(&profileM), nil
}

// UpsertByOwner issues INSERT ... ON CONFLICT (owner_id) DO UPDATE SET with
// only the patched columns, then reads the row back on the same handle.
func (repo *profileRepository) UpsertByOwner(ctx context.Context, ownerID uuid.UUID, patch *entity.ProfilePatch) (*entity.Profile, error) {
	now := time.Now()

	fresh := entity.NewProfile(ownerID)
	fresh.Apply(patch)
	fresh.CreatedAt = now
	fresh.UpdatedAt = now
	profileM := model.FromProfileDomain(fresh)

	assignments := model.PatchColumns(patch)
	assignments["updated_at"] = now

	err := repo.db.WithContext(ctx).
		Omit("Owner").
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "owner_id"}},
			DoUpdates: clause.Assignments(assignments),
		}).
		Create(profileM).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to upsert profile")
	}

	return repo.FindByOwner(ctx, ownerID)
}

// List returns every profile with its owner, oldest first.
func (repo *profileRepository) List(ctx context.Context) ([]*entity.Profile, error) {
	var profileMs []*model.ProfileModel
	err := repo.db.WithContext(ctx).
		Preload("Owner").
		Order("created_at ASC").
		Find(&profileMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list profiles")
	}

	profiles := make([]*entity.Profile, 0, len(profileMs))
	for _, profileM := range profileMs {
		profiles = append(profiles, model.ToProfileDomain(profileM))
	}

	return profiles, nil
}
