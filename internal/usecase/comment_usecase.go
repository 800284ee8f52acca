package usecase

import (
	"context"

	"mapbook/internal/domain/entity"
)

// CommentUsecase defines the operations on an address's comments
type CommentUsecase interface {
	// List returns the comments of an address visible to the identity, oldest first.
	List(ctx context.Context, identity entity.Identity, addressID string) ([]*entity.Comment, error)

	// Add posts a comment on an address visible to the identity.
	Add(ctx context.Context, identity entity.Identity, addressID string, input *AddCommentInput) (*entity.Comment, error)
}

// AddCommentInput defines the data required to add a comment.
type AddCommentInput struct {
	Text string `json:"text" validate:"required,max=2000"`
	// Rating is free text as typed by the user; its leading integer is used.
	Rating   string `json:"rating"`
	ImageURL string `json:"imageUrl" validate:"omitempty,url"`
}
