package service

import (
	"context"

	"mapbook/internal/domain/entity"
)

// IdentityVerifier turns a bearer token into the caller's identity
type IdentityVerifier interface {
	Verify(ctx context.Context, token string) (entity.Identity, error)
}
