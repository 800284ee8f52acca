package firestore

import (
	"mapbook/internal/domain/repository"
	"mapbook/internal/errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func isNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}

// mapQueryError turns index and filter-shape rejections into ErrUnsupportedQuery.
func mapQueryError(err error, filter repository.Filter) error {
	switch status.Code(err) {
	case codes.FailedPrecondition, codes.InvalidArgument, codes.Unimplemented:
		return errors.Wrapf(repository.ErrUnsupportedQuery, "query %s: %v", filter, err)
	default:
		return errors.Wrapf(err, "query %s", filter)
	}
}
