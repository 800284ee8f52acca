package firestore

import (
	"context"

	"mapbook/internal/domain/constants"
	"mapbook/internal/domain/entity"
	"mapbook/internal/domain/repository"
	"mapbook/internal/errors"

	"cloud.google.com/go/firestore"
)

type profileRepository struct {
	client *firestore.Client
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(client *firestore.Client) repository.ProfileRepository {
	return &profileRepository{client: client}
}

// FindByEmail reads users/{email}.
func (repo *profileRepository) FindByEmail(ctx context.Context, email string) (*entity.Profile, error) {
	key := entity.NormalizeEmail(email)
	if key == "" {
		return nil, repository.ErrProfileNotFound
	}

	snap, err := repo.client.Collection(constants.CollectionUsers).Doc(key).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to get profile document")
	}

	return decodeProfile(snap.Ref.ID, snap.Data()), nil
}

// Upsert merges the non-empty fields into users/{email}.
func (repo *profileRepository) Upsert(ctx context.Context, profile *entity.Profile) error {
	key := entity.NormalizeEmail(profile.Email)
	if key == "" {
		return errors.New("profile email is required")
	}

	fields := map[string]any{keyEmail: key}
	if profile.AvatarURL != "" {
		fields[keyAvatarURL] = profile.AvatarURL
	}

	if _, err := repo.client.Collection(constants.CollectionUsers).Doc(key).Set(ctx, fields, firestore.MergeAll); err != nil {
		return errors.Wrap(err, "failed to upsert profile document")
	}

	return nil
}
