package repository

import (
	"context"
	"errors"

	"lobby/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProfileNotFound is returned when an owner has no profile yet.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository defines the persistence operations for profiles.
// Every returned profile has its Owner summary populated.
type ProfileRepository interface {
	// FindByOwner retrieves the profile owned by the given account.
	FindByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.Profile, error)

	// UpsertByOwner atomically inserts a profile built from patch, or applies
	// the present fields of patch to the existing one, in a single conditional
	// statement keyed by owner. It returns the resulting full profile.
	UpsertByOwner(ctx context.Context, ownerID uuid.UUID, patch *entity.ProfilePatch) (*entity.Profile, error)

	// List returns every profile, oldest first.
	List(ctx context.Context) ([]*entity.Profile, error)
}
