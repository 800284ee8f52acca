// Package firebase builds the Firebase app shared by the Firestore store and ID token verification.
package firebase

import (
	"context"
	"log/slog"
	"sync"

	"mapbook/config"
	"mapbook/internal/errors"

	firebase "firebase.google.com/go/v4"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

// ErrNotConfigured is returned when a component needs Firebase but the firebase section is missing.
var ErrNotConfigured = errors.New("firebase is not configured")

// AppProvider initializes the Firebase app on first use, so deployments on the
// memory or postgres store with JWT auth never need Firebase credentials.
type AppProvider struct {
	ctx    context.Context
	cfg    *config.FirebaseConfig
	logger *slog.Logger

	once sync.Once
	app  *firebase.App
	err  error
}

// Params defines the parameters required for the provider
type Params struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewAppProvider creates a lazy Firebase app provider
func NewAppProvider(params Params) *AppProvider {
	return &AppProvider{
		ctx:    params.Ctx,
		cfg:    params.Config.Firebase,
		logger: params.Logger,
	}
}

// App returns the Firebase app, initializing it on the first call.
func (p *AppProvider) App() (*firebase.App, error) {
	p.once.Do(func() {
		p.app, p.err = newApp(p.ctx, p.cfg)
		if p.err == nil {
			p.logger.Info("Firebase app initialized", slog.String("project_id", p.cfg.ProjectID))
		}
	})

	return p.app, p.err
}

func newApp(ctx context.Context, cfg *config.FirebaseConfig) (*firebase.App, error) {
	if cfg == nil {
		return nil, ErrNotConfigured
	}

	var opts []option.ClientOption
	// Without a credentials file the SDK uses application default credentials,
	// or the emulators when FIRESTORE_EMULATOR_HOST / FIREBASE_AUTH_EMULATOR_HOST are set.
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{
		ProjectID:     cfg.ProjectID,
		StorageBucket: cfg.StorageBucket,
	}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	return app, nil
}
