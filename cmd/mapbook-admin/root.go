package main

import (
	"context"
	"log/slog"

	"mapbook/config"
	firebaseinfra "mapbook/internal/infra/firebase"
	logs "mapbook/internal/infra/log"
	"mapbook/internal/infra/persistence"
	"mapbook/internal/usecase/impl"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "mapbook-admin",
		Short:         "Maintenance tasks for the mapbook address store",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          func(cmd *cobra.Command, _ []string) error { return cmd.Help() },
	}

	root.AddCommand(
		newResolveCommand(),
		newNormalizeOwnersCommand(),
		newTokenCommand(),
	)

	return root
}

// withStore starts the store wiring used by the API server, fills targets and runs fn.
// The app is stopped when fn returns.
func withStore(ctx context.Context, fn func() error, targets ...any) error {
	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			func() context.Context { return ctx },
			firebaseinfra.NewAppProvider,
			impl.NewVisibilityResolver,
		),
		persistence.Module,
		fx.Populate(targets...),
	)
	if err := app.Err(); err != nil {
		return errors.Wrap(err, "failed to build store")
	}

	if err := app.Start(ctx); err != nil {
		return errors.Wrap(err, "failed to start store")
	}
	defer func() {
		if err := app.Stop(context.WithoutCancel(ctx)); err != nil {
			slog.Warn("Failed to stop store", slog.Any("error", err))
		}
	}()

	return fn()
}
