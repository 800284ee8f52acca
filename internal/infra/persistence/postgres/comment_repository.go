package postgres

import (
	"context"
	"time"

	"mapbook/internal/domain/entity"
	domainerrors "mapbook/internal/domain/errors"
	"mapbook/internal/domain/repository"
	"mapbook/internal/infra/persistence/postgres/query"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// commentRepository implements the domain.CommentRepository interface.
type commentRepository struct {
	q *query.Query
}

// NewCommentRepository is the constructor for commentRepository.
func NewCommentRepository(db *gorm.DB) repository.CommentRepository {
	return &commentRepository{q: query.Use(db)}
}

// Create persists a comment under an existing address.
func (repo *commentRepository) Create(ctx context.Context, addressID string, comment *entity.Comment) error {
	comment.ID = uuid.NewString()
	comment.CreatedAt = time.Now().UTC()

	if err := repo.q.CommentModel.WithContext(ctx).Create(fromCommentDomain(addressID, comment)); err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrAddressNotFound
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrInvalidRating.WrapMessage("rating violates the stored range")
		}

		return domainerrors.NewStoreExecuteError(err, "failed to create comment")
	}

	return nil
}

// FindByAddress lists the comments of an address, oldest first.
func (repo *commentRepository) FindByAddress(ctx context.Context, addressID string) ([]*entity.Comment, error) {
	c := repo.q.CommentModel
	commentModels, err := c.WithContext(ctx).
		Where(c.AddressID.Eq(addressID)).
		Order(c.CreatedAt, c.ID).
		Find()
	if err != nil {
		return nil, errors.Wrap(err, "failed to find comments by address")
	}

	comments := make([]*entity.Comment, 0, len(commentModels))
	for _, commentM := range commentModels {
		comments = append(comments, toCommentDomain(commentM))
	}

	return comments, nil
}
