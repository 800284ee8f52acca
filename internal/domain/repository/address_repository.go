// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"mapbook/internal/domain/entity"
	"mapbook/internal/errors"
)

// Domain-specific errors for address persistence.
var (
	// ErrAddressNotFound is returned when an address is not found.
	ErrAddressNotFound = errors.New("address not found")
)

// AddressRepository defines the document store operations on addresses.
type AddressRepository interface {
	// Create persists a new address and assigns its ID and CreatedAt.
	Create(ctx context.Context, address *entity.Address) error

	// FindByID retrieves an address by its document ID.
	FindByID(ctx context.Context, id string) (*entity.Address, error)

	// FindWhere returns the addresses matching every clause of the filter, in store order.
	// Returns a wrapped ErrUnsupportedQuery when the backend rejects the filter shape.
	FindWhere(ctx context.Context, filter Filter) ([]*entity.Address, error)

	// SetOwner rewrites the owner field of an address.
	SetOwner(ctx context.Context, id, user string) error

	// Delete removes an address by its ID.
	Delete(ctx context.Context, id string) error

	// Capabilities reports the filter shapes the store accepts.
	Capabilities() QueryCapabilities
}
