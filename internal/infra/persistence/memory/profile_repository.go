package memory

import (
	"context"

	"mapbook/internal/domain/entity"
	"mapbook/internal/domain/repository"
)

type profileRepository struct {
	store *Store
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(store *Store) repository.ProfileRepository {
	return &profileRepository{store: store}
}

func (repo *profileRepository) FindByEmail(_ context.Context, email string) (*entity.Profile, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	profile, ok := repo.store.profiles[entity.NormalizeEmail(email)]
	if !ok {
		return nil, repository.ErrProfileNotFound
	}

	copied := *profile

	return &copied, nil
}

// Upsert merges the non-empty fields of profile into the stored one.
func (repo *profileRepository) Upsert(_ context.Context, profile *entity.Profile) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	key := entity.NormalizeEmail(profile.Email)
	merged, ok := repo.store.profiles[key]
	if !ok {
		merged = &entity.Profile{Email: key}
		repo.store.profiles[key] = merged
	}
	if profile.AvatarURL != "" {
		merged.AvatarURL = profile.AvatarURL
	}

	return nil
}
