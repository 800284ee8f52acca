package postgres

import (
	"context"

	"mapbook/internal/domain/entity"
	"mapbook/internal/domain/repository"
	"mapbook/internal/infra/persistence/model"
	"mapbook/internal/infra/persistence/postgres/query"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// profileRepository implements the domain.ProfileRepository interface.
type profileRepository struct {
	q *query.Query
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{q: query.Use(db)}
}

// FindByEmail retrieves a profile by normalized email.
func (repo *profileRepository) FindByEmail(ctx context.Context, email string) (*entity.Profile, error) {
	profileM, err := repo.q.ProfileModel.WithContext(ctx).
		Where(repo.q.ProfileModel.Email.Eq(entity.NormalizeEmail(email))).
		First()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile by email")
	}

	return &entity.Profile{Email: profileM.Email, AvatarURL: profileM.AvatarURL}, nil
}

// Upsert inserts the profile or updates its avatar. An empty avatar keeps the stored one.
func (repo *profileRepository) Upsert(ctx context.Context, profile *entity.Profile) error {
	email := entity.NormalizeEmail(profile.Email)
	if email == "" {
		return errors.New("profile email is required")
	}

	profileM := &model.ProfileModel{Email: email, AvatarURL: profile.AvatarURL}
	onConflict := clause.OnConflict{Columns: []clause.Column{{Name: "email"}}, DoNothing: true}
	if profile.AvatarURL != "" {
		onConflict = clause.OnConflict{
			Columns:   []clause.Column{{Name: "email"}},
			DoUpdates: clause.AssignmentColumns([]string{"avatar_url", "updated_at"}),
		}
	}

	if err := repo.q.ProfileModel.WithContext(ctx).Clauses(onConflict).Create(profileM); err != nil {
		return errors.Wrap(err, "failed to upsert profile")
	}

	return nil
}
