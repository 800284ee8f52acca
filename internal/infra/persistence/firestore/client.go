// Package firestore stores addresses, comments and profiles in Cloud Firestore,
// using the collections the mobile client reads and writes.
package firestore

import (
	"context"
	"log/slog"

	"mapbook/internal/errors"
	firebaseinfra "mapbook/internal/infra/firebase"

	"cloud.google.com/go/firestore"
	"go.uber.org/fx"
)

// NewClient opens a Firestore client from the Firebase app and closes it on shutdown
func NewClient(ctx context.Context, lc fx.Lifecycle, provider *firebaseinfra.AppProvider, logger *slog.Logger) (*firestore.Client, error) {
	app, err := provider.App()
	if err != nil {
		return nil, err
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Firestore client")
	}

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			logger.Info("Closing Firestore client")

			return errors.WithStack(client.Close())
		},
	})

	return client, nil
}
