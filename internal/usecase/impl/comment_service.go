package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "mapbook/internal/delivery/context"
	"mapbook/internal/domain/entity"
	domainerrors "mapbook/internal/domain/errors"
	"mapbook/internal/domain/repository"
	"mapbook/internal/domain/service"
	"mapbook/internal/errors"
	"mapbook/internal/usecase"

	"go.uber.org/fx"
)

type commentService struct {
	commentRepo repository.CommentRepository
	addresses   usecase.AddressUsecase
	events      service.EventPublisher
	now         func() time.Time
	logger      *slog.Logger
}

// CommentServiceParams holds dependencies for CommentService, injected by Fx.
type CommentServiceParams struct {
	fx.In

	CommentRepo repository.CommentRepository
	Addresses   usecase.AddressUsecase
	Events      service.EventPublisher
	Logger      *slog.Logger
}

// NewCommentService creates a new comment service instance
func NewCommentService(params CommentServiceParams) usecase.CommentUsecase {
	return &commentService{
		commentRepo: params.CommentRepo,
		addresses:   params.Addresses,
		events:      params.Events,
		now:         time.Now,
		logger:      params.Logger,
	}
}

func (srv *commentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List returns the comments of an address the identity can see.
func (srv *commentService) List(ctx context.Context, identity entity.Identity, addressID string) ([]*entity.Comment, error) {
	if _, err := srv.addresses.Get(ctx, identity, addressID); err != nil {
		return nil, err
	}

	comments, err := srv.commentRepo.FindByAddress(ctx, addressID)
	if err != nil {
		return nil, domainerrors.NewStoreExecuteError(err, "failed to list comments")
	}

	return comments, nil
}

// Add posts a comment authored by the identity.
func (srv *commentService) Add(ctx context.Context, identity entity.Identity, addressID string, input *usecase.AddCommentInput) (*entity.Comment, error) {
	if identity.IsAnonymous() {
		return nil, domainerrors.ErrUnauthenticated
	}

	text := strings.TrimSpace(input.Text)
	if text == "" {
		return nil, domainerrors.ErrCommentTextRequired
	}

	rating, err := entity.ParseRating(input.Rating)
	if err != nil {
		if errors.Is(err, entity.ErrRatingOutOfRange) {
			return nil, domainerrors.ErrInvalidRating.WithDetails(err.Error())
		}

		return nil, errors.Wrap(err, "failed to parse rating")
	}

	address, err := srv.addresses.Get(ctx, identity, addressID)
	if err != nil {
		return nil, err
	}

	comment := &entity.Comment{
		Text:     text,
		Rating:   rating,
		ImageURL: input.ImageURL,
		User:     identity.Email(),
	}
	if err := srv.commentRepo.Create(ctx, address.ID, comment); err != nil {
		return nil, domainerrors.NewStoreExecuteError(err, "failed to create comment")
	}

	publishAddressEvent(ctx, srv.events, srv.log(ctx), &service.AddressEvent{
		Type:       service.EventCommentCreated,
		AddressID:  address.ID,
		CommentID:  comment.ID,
		User:       identity.Email(),
		IsPublic:   address.IsPublic,
		Latitude:   address.Latitude,
		Longitude:  address.Longitude,
		OccurredAt: srv.now().UTC(),
	})

	return comment, nil
}
