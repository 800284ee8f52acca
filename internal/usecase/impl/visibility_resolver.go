// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"mapbook/config"
	deliverycontext "mapbook/internal/delivery/context"
	"mapbook/internal/domain/entity"
	"mapbook/internal/domain/repository"
	"mapbook/internal/usecase"

	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

// visibilityResolver implements the VisibilityUsecase interface.
// It holds no mutable state; every call reads the store afresh.
type visibilityResolver struct {
	addressRepo         repository.AddressRepository
	anonymousSeesPublic bool
	logger              *slog.Logger
}

// VisibilityResolverParams holds dependencies for the resolver, injected by Fx.
type VisibilityResolverParams struct {
	fx.In

	AddressRepo repository.AddressRepository
	Config      *config.Config
	Logger      *slog.Logger
}

// NewVisibilityResolver creates the visibility resolver.
func NewVisibilityResolver(params VisibilityResolverParams) usecase.VisibilityUsecase {
	anonymousSeesPublic := false
	if params.Config != nil && params.Config.Visibility != nil {
		anonymousSeesPublic = params.Config.Visibility.AnonymousSeesPublic
	}

	return &visibilityResolver{
		addressRepo:         params.AddressRepo,
		anonymousSeesPublic: anonymousSeesPublic,
		logger:              params.Logger,
	}
}

func (r *visibilityResolver) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, r.logger)
}

// Resolve returns public addresses followed by the identity's private ones.
// A failing public query yields ErrVisibilityQueryFailed, a failing owner
// query yields ErrVisibilityFallbackFailed; the public error wins when both fail.
func (r *visibilityResolver) Resolve(ctx context.Context, identity entity.Identity) ([]*entity.Address, error) {
	logger := r.log(ctx)

	if identity.IsAnonymous() {
		if !r.anonymousSeesPublic {
			return []*entity.Address{}, nil
		}

		public, err := findPublic(ctx, r.addressRepo, logger)
		if err != nil {
			return nil, err
		}

		return unionByID(public), nil
	}

	var (
		public, private       []*entity.Address
		publicErr, privateErr error
		group                 errgroup.Group
	)

	group.Go(func() error {
		public, publicErr = findPublic(ctx, r.addressRepo, logger)

		return publicErr
	})
	group.Go(func() error {
		private, privateErr = findPrivate(ctx, r.addressRepo, identity, logger)

		return privateErr
	})

	if group.Wait() != nil {
		if publicErr != nil {
			return nil, publicErr
		}

		return nil, privateErr
	}

	visible := unionByID(public, private)

	logger.Debug("Resolved visible addresses",
		slog.String("user", identity.Email()),
		slog.Int("public", len(public)),
		slog.Int("private", len(private)),
		slog.Int("visible", len(visible)),
	)

	return visible, nil
}
