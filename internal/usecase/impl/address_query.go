package impl

import (
	"context"
	"log/slog"

	"mapbook/internal/domain/entity"
	domainerrors "mapbook/internal/domain/errors"
	"mapbook/internal/domain/repository"
	"mapbook/internal/errors"
)

// Reasons logged when the owner-only private query is used.
const (
	fallbackReasonCapability  = "capability"
	fallbackReasonUnsupported = "unsupported"
	fallbackReasonError       = "error"
)

// findPublic returns every well-formed public address in store order.
func findPublic(ctx context.Context, repo repository.AddressRepository, logger *slog.Logger) ([]*entity.Address, error) {
	filter := repository.Filter{repository.Eq(repository.FieldIsPublic, true)}

	records, err := repo.FindWhere(ctx, filter)
	if err != nil {
		logger.Error("Public address query failed", slog.String("filter", filter.String()), slog.Any("error", err))

		return nil, domainerrors.ErrVisibilityQueryFailed.WrapMessage(err.Error())
	}

	return keepRecords(logger, records, func(a *entity.Address) bool {
		return a.IsPublic
	}), nil
}

// findPrivate returns the identity's well-formed private addresses in store order.
// It asks the store for user == identity && isPublic == false when the store
// advertises compound filters, and otherwise, or when that query fails, queries
// by owner alone and drops public records locally.
func findPrivate(ctx context.Context, repo repository.AddressRepository, identity entity.Identity, logger *slog.Logger) ([]*entity.Address, error) {
	ownedPrivate := func(a *entity.Address) bool {
		return !a.IsPublic && a.OwnedBy(identity)
	}

	if repo.Capabilities().CompoundFilter {
		records, err := repo.FindWhere(ctx, repository.Filter{
			repository.Eq(repository.FieldUser, identity.Email()),
			repository.Eq(repository.FieldIsPublic, false),
		})
		if err == nil {
			return keepRecords(logger, records, ownedPrivate), nil
		}

		reason := fallbackReasonError
		if errors.Is(err, repository.ErrUnsupportedQuery) {
			reason = fallbackReasonUnsupported
		}
		logger.Warn("Private address query falling back to owner-only filter",
			slog.String("reason", reason),
			slog.String("user", identity.Email()),
			slog.Any("error", err),
		)
	} else {
		logger.Warn("Private address query falling back to owner-only filter",
			slog.String("reason", fallbackReasonCapability),
			slog.String("user", identity.Email()),
		)
	}

	records, err := repo.FindWhere(ctx, repository.Filter{repository.Eq(repository.FieldUser, identity.Email())})
	if err != nil {
		logger.Error("Owner address query failed", slog.String("user", identity.Email()), slog.Any("error", err))

		return nil, domainerrors.ErrVisibilityFallbackFailed.WrapMessage(err.Error())
	}

	return keepRecords(logger, records, ownedPrivate), nil
}

// keepRecords drops malformed records, logging each one, and records rejected by keep.
func keepRecords(logger *slog.Logger, records []*entity.Address, keep func(*entity.Address) bool) []*entity.Address {
	kept := make([]*entity.Address, 0, len(records))
	for _, record := range records {
		if record == nil {
			continue
		}
		if err := record.Validate(); err != nil {
			logger.Warn("Skipping malformed address record",
				slog.String("address_id", record.ID),
				slog.String("reason", err.Error()),
			)

			continue
		}
		if keep(record) {
			kept = append(kept, record)
		}
	}

	return kept
}

// unionByID concatenates the lists keeping the first occurrence of every ID.
// The result is never nil.
func unionByID(lists ...[]*entity.Address) []*entity.Address {
	size := 0
	for _, list := range lists {
		size += len(list)
	}

	seen := make(map[string]struct{}, size)
	union := make([]*entity.Address, 0, size)
	for _, list := range lists {
		for _, address := range list {
			if _, ok := seen[address.ID]; ok {
				continue
			}
			seen[address.ID] = struct{}{}
			union = append(union, address)
		}
	}

	return union
}
