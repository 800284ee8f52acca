package auth

import (
	"context"
	"log/slog"

	"mapbook/config"
	"mapbook/internal/domain/constants"
	"mapbook/internal/domain/service"
	"mapbook/internal/errors"
	firebaseinfra "mapbook/internal/infra/firebase"

	"go.uber.org/fx"
)

// VerifierParams holds dependencies for IdentityVerifier, injected by Fx
type VerifierParams struct {
	fx.In

	Ctx      context.Context
	Config   *config.Config
	Logger   *slog.Logger
	Firebase *firebaseinfra.AppProvider
}

// NewIdentityVerifier creates the verifier named by auth.provider.
func NewIdentityVerifier(params VerifierParams) (service.IdentityVerifier, error) {
	provider := params.Config.Auth.Provider
	params.Logger.Info("Using identity provider", slog.String("provider", provider))

	switch provider {
	case constants.AuthProviderFirebase:
		return NewFirebaseVerifier(params.Ctx, params.Firebase)
	case constants.AuthProviderJWT:
		return NewJWTVerifier(params.Config.Auth)
	default:
		return nil, errors.Errorf("unknown auth provider: %s", provider)
	}
}
