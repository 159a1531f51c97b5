package handler

import (
	"log/slog"
	"net/http"

	"lobby/internal/delivery/api/middleware"
	"lobby/internal/delivery/api/response"
	"lobby/internal/domain/entity"
	domainerrors "lobby/internal/domain/errors"
	"lobby/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ProfileHandlerParams holds dependencies for ProfileHandler, injected by Fx.
type ProfileHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
	Logger    *slog.Logger
}

// ProfileHandler holds dependencies for profile handlers
type ProfileHandler struct {
	profileUC usecase.ProfileUsecase
	logger    *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler
func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	return &ProfileHandler{
		profileUC: params.ProfileUC,
		logger:    params.Logger,
	}
}

// UpsertProfileRequest represents the request body for creating or updating
// a profile. Omitted and blank fields leave the stored value unchanged.
type UpsertProfileRequest struct {
	Genre         *string `json:"genre"`
	FavoriteItems *string `json:"favorite_items"`
	Website       *string `json:"website"`
	Location      *string `json:"location"`
	Bio           *string `json:"bio"`
	YouTube       *string `json:"youtube"`
	Twitter       *string `json:"twitter"`
	Facebook      *string `json:"facebook"`
	Instagram     *string `json:"instagram"`
}

// Upsert creates the caller's profile or updates the fields present in the body.
func (h *ProfileHandler) Upsert(c echo.Context) error {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	var req UpsertProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid profile input")
	}

	profile, err := h.profileUC.Upsert(c.Request().Context(), accountID, &usecase.ProfileInput{
		Genre:         req.Genre,
		FavoriteItems: req.FavoriteItems,
		Website:       req.Website,
		Location:      req.Location,
		Bio:           req.Bio,
		YouTube:       req.YouTube,
		Twitter:       req.Twitter,
		Facebook:      req.Facebook,
		Instagram:     req.Instagram,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile)
}

// Me returns the caller's own profile.
func (h *ProfileHandler) Me(c echo.Context) error {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	return h.respondWithProfile(c, accountID)
}

// GetByUser returns the profile of the account named in the path. An id
// that does not parse is reported as a missing profile.
func (h *ProfileHandler) GetByUser(c echo.Context) error {
	ownerID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		return domainerrors.ErrProfileNotFound
	}

	return h.respondWithProfile(c, ownerID)
}

// List returns every profile.
func (h *ProfileHandler) List(c echo.Context) error {
	profiles, err := h.profileUC.ListAll(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}
	if profiles == nil {
		profiles = []*entity.Profile{}
	}

	return response.Success(c, http.StatusOK, profiles)
}

func (h *ProfileHandler) respondWithProfile(c echo.Context, ownerID uuid.UUID) error {
	profile, err := h.profileUC.GetByOwner(c.Request().Context(), ownerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile)
}
