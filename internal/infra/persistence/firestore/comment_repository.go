package firestore

import (
	"context"
	"sort"
	"time"

	"mapbook/internal/domain/constants"
	"mapbook/internal/domain/entity"
	"mapbook/internal/domain/repository"
	"mapbook/internal/errors"

	"cloud.google.com/go/firestore"
)

type commentRepository struct {
	client *firestore.Client
}

// NewCommentRepository is the constructor for commentRepository.
func NewCommentRepository(client *firestore.Client) repository.CommentRepository {
	return &commentRepository{client: client}
}

func (repo *commentRepository) collection(addressID string) *firestore.CollectionRef {
	return repo.client.Collection(constants.CollectionAddresses).Doc(addressID).Collection(constants.CollectionComments)
}

func (repo *commentRepository) Create(ctx context.Context, addressID string, comment *entity.Comment) error {
	comment.CreatedAt = time.Now().UTC()

	ref, _, err := repo.collection(addressID).Add(ctx, encodeComment(comment))
	if err != nil {
		return errors.Wrap(err, "failed to add comment document")
	}
	comment.ID = ref.ID

	return nil
}

// FindByAddress sorts client side so comments written without createdAt are still listed, last.
func (repo *commentRepository) FindByAddress(ctx context.Context, addressID string) ([]*entity.Comment, error) {
	snaps, err := repo.collection(addressID).Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list comment documents")
	}

	comments := make([]*entity.Comment, 0, len(snaps))
	for _, snap := range snaps {
		comments = append(comments, decodeComment(snap.Ref.ID, snap.Data()))
	}
	sortComments(comments)

	return comments, nil
}

func sortComments(comments []*entity.Comment) {
	sort.SliceStable(comments, func(i, j int) bool {
		a, b := comments[i].CreatedAt, comments[j].CreatedAt
		if a.IsZero() != b.IsZero() {
			return b.IsZero()
		}

		return a.Before(b)
	})
}
