package usecase

import (
	"context"

	"lobby/internal/domain/entity"

	"github.com/google/uuid"
)

// ProfileUsecase defines the interface for profile-related business operations.
type ProfileUsecase interface {
	Upsert(ctx context.Context, ownerID uuid.UUID, input *ProfileInput) (*entity.Profile, error)
	GetByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.Profile, error)
	ListAll(ctx context.Context) ([]*entity.Profile, error)
}

// --- Input DTOs ---

// ProfileInput is the sparse profile update sent by a client. Nil and empty
// strings both mean "leave unchanged". FavoriteItems is a comma-separated list.
type ProfileInput struct {
	Genre         *string
	FavoriteItems *string
	Website       *string
	Location      *string
	Bio           *string
	YouTube       *string
	Twitter       *string
	Facebook      *string
	Instagram     *string
}
