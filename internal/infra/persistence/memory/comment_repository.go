package memory

import (
	"context"

	"mapbook/internal/domain/entity"
	"mapbook/internal/domain/repository"

	"github.com/google/uuid"
)

type commentRepository struct {
	store *Store
}

// NewCommentRepository is the constructor for commentRepository.
func NewCommentRepository(store *Store) repository.CommentRepository {
	return &commentRepository{store: store}
}

func (repo *commentRepository) Create(_ context.Context, addressID string, comment *entity.Comment) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	comment.ID = uuid.New().String()
	comment.CreatedAt = repo.store.now().UTC()

	copied := *comment
	repo.store.comments[addressID] = append(repo.store.comments[addressID], &copied)

	return nil
}

// FindByAddress returns comments in the order they were written.
func (repo *commentRepository) FindByAddress(_ context.Context, addressID string) ([]*entity.Comment, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	stored := repo.store.comments[addressID]
	result := make([]*entity.Comment, 0, len(stored))
	for _, comment := range stored {
		copied := *comment
		result = append(result, &copied)
	}

	return result, nil
}
