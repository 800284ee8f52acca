// Package persistence selects the store driver named in config and provides its repositories.
package persistence

import (
	"context"
	"log/slog"

	"mapbook/config"
	"mapbook/internal/domain/constants"
	"mapbook/internal/domain/repository"
	"mapbook/internal/errors"
	firebaseinfra "mapbook/internal/infra/firebase"
	"mapbook/internal/infra/persistence/firestore"
	"mapbook/internal/infra/persistence/memory"
	"mapbook/internal/infra/persistence/postgres"

	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Ctx      context.Context
	Config   *config.Config
	Logger   *slog.Logger
	Firebase *firebaseinfra.AppProvider
}

// Repositories is the set of repositories served by one driver.
type Repositories struct {
	fx.Out

	Addresses repository.AddressRepository
	Comments  repository.CommentRepository
	Profiles  repository.ProfileRepository
}

// NewRepositories opens the configured store driver.
func NewRepositories(params Params) (Repositories, error) {
	driver := params.Config.Store.Driver
	params.Logger.Info("Opening address store", slog.String("driver", driver))

	switch driver {
	case constants.StoreDriverFirestore:
		client, err := firestore.NewClient(params.Ctx, params.Lifecycle, params.Firebase, params.Logger)
		if err != nil {
			return Repositories{}, err
		}

		return Repositories{
			Addresses: firestore.NewAddressRepository(client, compoundFilters(params.Config.Store)),
			Comments:  firestore.NewCommentRepository(client),
			Profiles:  firestore.NewProfileRepository(client),
		}, nil
	case constants.StoreDriverPostgres:
		db, err := postgres.Open(params.Lifecycle, params.Config, params.Logger)
		if err != nil {
			return Repositories{}, err
		}

		return Repositories{
			Addresses: postgres.NewAddressRepository(db, compoundFilters(params.Config.Store)),
			Comments:  postgres.NewCommentRepository(db),
			Profiles:  postgres.NewProfileRepository(db),
		}, nil
	case constants.StoreDriverMemory:
		store := memory.NewStore(memory.WithCompoundFilters(compoundFilters(params.Config.Store)))

		return Repositories{
			Addresses: memory.NewAddressRepository(store),
			Comments:  memory.NewCommentRepository(store),
			Profiles:  memory.NewProfileRepository(store),
		}, nil
	default:
		return Repositories{}, errors.Errorf("unknown store driver %q", driver)
	}
}

// compoundFilters resolves the advertised compound filter support. Every driver
// serves equality-only conjunctions, so unset means supported.
func compoundFilters(cfg *config.StoreConfig) bool {
	if cfg == nil || cfg.CompoundFilters == nil {
		return true
	}

	return *cfg.CompoundFilters
}

// Module provides the repositories of the configured driver.
var Module = fx.Module("persistence",
	fx.Provide(NewRepositories),
)
