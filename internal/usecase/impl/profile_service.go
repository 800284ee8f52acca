package impl

import (
	"context"
	"log/slog"
	"sync"

	deliverycontext "mapbook/internal/delivery/context"
	"mapbook/internal/domain/entity"
	domainerrors "mapbook/internal/domain/errors"
	"mapbook/internal/domain/repository"
	"mapbook/internal/errors"
	"mapbook/internal/usecase"

	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

// avatarLookupConcurrency bounds parallel profile reads in AvatarsFor.
const avatarLookupConcurrency = 8

type profileService struct {
	profileRepo repository.ProfileRepository
	logger      *slog.Logger
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	ProfileRepo repository.ProfileRepository
	Logger      *slog.Logger
}

// NewProfileService creates a new profile service instance
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		profileRepo: params.ProfileRepo,
		logger:      params.Logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Get returns the identity's profile.
func (srv *profileService) Get(ctx context.Context, identity entity.Identity) (*entity.Profile, error) {
	if identity.IsAnonymous() {
		return nil, domainerrors.ErrUnauthenticated
	}

	profile, err := srv.profileRepo.FindByEmail(ctx, identity.Email())
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return &entity.Profile{Email: identity.Email()}, nil
		}

		return nil, domainerrors.NewStoreExecuteError(err, "failed to find profile")
	}

	return profile, nil
}

// UpdateAvatar merges a new avatar URL into the identity's profile.
func (srv *profileService) UpdateAvatar(ctx context.Context, identity entity.Identity, input *usecase.UpdateAvatarInput) (*entity.Profile, error) {
	if identity.IsAnonymous() {
		return nil, domainerrors.ErrUnauthenticated
	}

	profile := &entity.Profile{
		Email:     identity.Email(),
		AvatarURL: input.AvatarURL,
	}
	if err := srv.profileRepo.Upsert(ctx, profile); err != nil {
		return nil, domainerrors.NewStoreExecuteError(err, "failed to update profile")
	}

	srv.log(ctx).Info("Avatar updated", slog.String("user", identity.Email()))

	return profile, nil
}

// AvatarsFor looks each distinct owner up once.
func (srv *profileService) AvatarsFor(ctx context.Context, emails []string) map[string]string {
	logger := srv.log(ctx)

	distinct := make(map[string]struct{}, len(emails))
	for _, email := range emails {
		if normalized := entity.NormalizeEmail(email); normalized != "" {
			distinct[normalized] = struct{}{}
		}
	}

	var (
		mu      sync.Mutex
		avatars = make(map[string]string, len(distinct))
		group   errgroup.Group
	)
	group.SetLimit(avatarLookupConcurrency)

	for email := range distinct {
		group.Go(func() error {
			avatarURL := ""
			profile, err := srv.profileRepo.FindByEmail(ctx, email)
			switch {
			case err == nil:
				avatarURL = profile.AvatarURL
			case !errors.Is(err, repository.ErrProfileNotFound):
				logger.Debug("Avatar lookup failed", slog.String("user", email), slog.Any("error", err))
			}

			mu.Lock()
			avatars[email] = avatarURL
			mu.Unlock()

			return nil
		})
	}
	_ = group.Wait()

	return avatars
}
