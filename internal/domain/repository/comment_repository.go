package repository

import (
	"context"

	"mapbook/internal/domain/entity"
)

// CommentRepository stores comments under their parent address.
type CommentRepository interface {
	// Create persists a comment under the address and assigns its ID and CreatedAt.
	Create(ctx context.Context, addressID string, comment *entity.Comment) error

	// FindByAddress lists the comments of an address, oldest first.
	FindByAddress(ctx context.Context, addressID string) ([]*entity.Comment, error)
}
