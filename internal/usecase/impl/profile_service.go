package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "lobby/internal/delivery/context"
	"lobby/internal/domain/entity"
	domainerrors "lobby/internal/domain/errors"
	"lobby/internal/domain/repository"
	"lobby/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager   repository.TransactionManager
	profileRepo repository.ProfileRepository
	logger      *slog.Logger
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ProfileRepo repository.ProfileRepository
	Logger      *slog.Logger
}

// NewProfileService creates a new profile service instance.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		txManager:   params.TxManager,
		profileRepo: params.ProfileRepo,
		logger:      params.Logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Upsert creates the owner's profile or applies the present fields of input to it.
func (srv *profileService) Upsert(ctx context.Context, ownerID uuid.UUID, input *usecase.ProfileInput) (*entity.Profile, error) {
	patch := toProfilePatch(input)

	var profile *entity.Profile
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		profile, err = repoFactory.ProfileRepo().UpsertByOwner(ctx, ownerID, patch)

		return err
	})
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			srv.log(ctx).Warn("Profile upsert for unknown account", slog.Any("ownerID", ownerID))

			return nil, domainerrors.ErrUnauthenticated
		}
		srv.log(ctx).Error("Failed to upsert profile", slog.Any("ownerID", ownerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to upsert profile")
	}

	srv.log(ctx).Debug("Profile upserted", slog.Any("ownerID", ownerID))

	return profile, nil
}

// GetByOwner returns the profile owned by ownerID.
func (srv *profileService) GetByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.Profile, error) {
	profile, err := srv.profileRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to get profile")
	}

	return profile, nil
}

// ListAll returns every profile.
func (srv *profileService) ListAll(ctx context.Context) ([]*entity.Profile, error) {
	profiles, err := srv.profileRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list profiles")
	}

	return profiles, nil
}

// toProfilePatch keeps only the scalar fields carrying a non-blank value.
func toProfilePatch(input *usecase.ProfileInput) *entity.ProfilePatch {
	patch := &entity.ProfilePatch{}
	if input == nil {
		return patch
	}

	patch.Genre = present(input.Genre)
	patch.Website = present(input.Website)
	patch.Location = present(input.Location)
	patch.Bio = present(input.Bio)

	if raw := present(input.FavoriteItems); raw != nil {
		patch.FavoriteItems = entity.SplitFavoriteItems(*raw)
	}

	// Any social key in the request replaces the stored map; blank values are
	// dropped, so sending every key blank clears it.
	sent := false
	social := entity.Social{}
	for platform, value := range map[entity.SocialPlatform]*string{
		entity.SocialYouTube:   input.YouTube,
		entity.SocialTwitter:   input.Twitter,
		entity.SocialFacebook:  input.Facebook,
		entity.SocialInstagram: input.Instagram,
	} {
		if value == nil {
			continue
		}
		sent = true
		if v := present(value); v != nil {
			social[platform] = *v
		}
	}
	if sent {
		patch.Social = social
	}

	return patch
}

func present(value *string) *string {
	if value == nil {
		return nil
	}

	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}

	return &trimmed
}
