package usecase

import (
	"context"

	"mapbook/internal/domain/entity"
)

// ProfileUsecase defines the interface for profile-related business operations.
type ProfileUsecase interface {
	// Get returns the identity's profile, or an empty one when none was saved yet.
	Get(ctx context.Context, identity entity.Identity) (*entity.Profile, error)

	UpdateAvatar(ctx context.Context, identity entity.Identity, input *UpdateAvatarInput) (*entity.Profile, error)

	// AvatarsFor maps each normalized email to its avatar URL. Lookup failures leave the entry empty.
	AvatarsFor(ctx context.Context, emails []string) map[string]string
}

// UpdateAvatarInput defines the data required to update an avatar.
type UpdateAvatarInput struct {
	AvatarURL string `json:"avatarUrl" validate:"required,url"`
}
