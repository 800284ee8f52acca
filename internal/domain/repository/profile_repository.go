package repository

import (
	"context"

	"mapbook/internal/domain/entity"
	"mapbook/internal/errors"
)

// ErrProfileNotFound is returned when no profile exists for an email.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository stores user profiles keyed by lower-cased email.
type ProfileRepository interface {
	FindByEmail(ctx context.Context, email string) (*entity.Profile, error)

	// Upsert creates the profile or merges the non-empty fields into the existing one.
	Upsert(ctx context.Context, profile *entity.Profile) error
}
