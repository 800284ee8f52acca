package handler

import (
	"net/http"

	"mapbook/internal/delivery/api/middleware"
	"mapbook/internal/delivery/api/response"
	domainerrors "mapbook/internal/domain/errors"
	"mapbook/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProfileHandlerParams holds dependencies for ProfileHandler, injected by Fx.
type ProfileHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
	AddressUC usecase.AddressUsecase
}

// ProfileHandler serves the caller's profile and photo upload slots
type ProfileHandler struct {
	profileUC usecase.ProfileUsecase
	addressUC usecase.AddressUsecase
}

// NewProfileHandler is the constructor for ProfileHandler
func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	return &ProfileHandler{
		profileUC: params.ProfileUC,
		addressUC: params.AddressUC,
	}
}

// Get handles GET /profile
func (h *ProfileHandler) Get(c echo.Context) error {
	profile, err := h.profileUC.Get(c.Request().Context(), middleware.GetIdentity(c))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, profile)
}

// UpdateAvatar handles PUT /profile/avatar
func (h *ProfileHandler) UpdateAvatar(c echo.Context) error {
	var input usecase.UpdateAvatarInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("invalid avatar body")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	profile, err := h.profileUC.UpdateAvatar(c.Request().Context(), middleware.GetIdentity(c), &input)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, profile)
}

// UploadSlot handles POST /uploads. Image bytes go straight to the bucket.
func (h *ProfileHandler) UploadSlot(c echo.Context) error {
	var input usecase.UploadSlotInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("invalid upload body")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	slot, err := h.addressUC.ImageUploadSlot(c.Request().Context(), middleware.GetIdentity(c), &input)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, slot)
}
