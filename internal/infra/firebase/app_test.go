package firebase

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"mapbook/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppProvider_NotConfigured(t *testing.T) {
	provider := NewAppProvider(Params{
		Ctx:    context.Background(),
		Config: &config.Config{},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	app, err := provider.App()
	assert.Nil(t, app)
	assert.ErrorIs(t, err, ErrNotConfigured)

	// The outcome is memoized.
	_, again := provider.App()
	assert.Equal(t, err, again)
}

func TestAppProvider_ProjectOnly(t *testing.T) {
	t.Setenv("GOOGLE_APPLICATION_CREDENTIALS", "")

	provider := NewAppProvider(Params{
		Ctx:    context.Background(),
		Config: &config.Config{Firebase: &config.FirebaseConfig{ProjectID: "mapbook-test"}},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	app, err := provider.App()
	require.NoError(t, err)
	assert.NotNil(t, app)
}
