// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"mapbook/internal/domain/entity"
)

// VisibilityUsecase computes the set of addresses an identity is allowed to see:
// every public address plus the identity's own private ones.
type VisibilityUsecase interface {
	// Resolve returns the union of public addresses and the identity's private addresses,
	// deduplicated by ID. An anonymous identity resolves to an empty set.
	Resolve(ctx context.Context, identity entity.Identity) ([]*entity.Address, error)
}
