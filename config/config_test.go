package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
env:
  env: test
  serviceName: mapbook
  log:
    level: debug
http:
  port: 8080
  timeouts:
    readTimeout: 5s
store:
  driver: firestore
  compoundFilters: false
storage:
  bucketUrl: mem://
  publicBaseUrl: https://cdn.example.com/photos/
visibility:
  anonymousSeesPublic: false
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o600))

	return dir
}

func TestLoadWithEnv_ReadsYAML(t *testing.T) {
	t.Chdir(writeConfig(t, sampleConfig))

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	assert.Equal(t, "mapbook", cfg.Env.ServiceName)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, 5*time.Second, cfg.HTTP.Timeouts.ReadTimeout)
	require.NotNil(t, cfg.Store)
	assert.Equal(t, "firestore", cfg.Store.Driver)
	require.NotNil(t, cfg.Store.CompoundFilters)
	assert.False(t, *cfg.Store.CompoundFilters)
	assert.Equal(t, "https://cdn.example.com/photos/", cfg.Storage.PublicBaseURL)
}

func TestLoadWithEnv_EnvOverridesYAML(t *testing.T) {
	t.Chdir(writeConfig(t, sampleConfig))
	t.Setenv("STORAGE_BUCKETURL", "file:///tmp/photos")
	t.Setenv("VISIBILITY_ANONYMOUSSEESPUBLIC", "true")

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	assert.Equal(t, "file:///tmp/photos", cfg.Storage.BucketURL)
	assert.True(t, cfg.Visibility.AnonymousSeesPublic)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := LoadWithEnv[Config]("config")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config.yaml not found")
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, defaultStoreDriver, cfg.Store.Driver)
	assert.Nil(t, cfg.Store.CompoundFilters)
	assert.Equal(t, defaultAuthProvider, cfg.Auth.Provider)
	assert.Equal(t, defaultSignedURLExpiry, cfg.Storage.SignedURLExpiry)
	assert.False(t, cfg.Visibility.AnonymousSeesPublic)
	assert.Equal(t, defaultQRCodeSize, cfg.QRCode.Size)
	assert.Equal(t, defaultQRCodeLevel, cfg.QRCode.ErrorCorrectionLevel)
	assert.Equal(t, defaultDeepLinkBase, cfg.QRCode.DeepLinkBase)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Store:  &StoreConfig{Driver: "postgres"},
		QRCode: &QRCodeConfig{Size: 512, ErrorCorrectionLevel: "H", DeepLinkBase: "https://app.example.com/map"},
	}
	cfg.applyDefaults()

	assert.Equal(t, "postgres", cfg.Store.Driver)
	assert.Equal(t, 512, cfg.QRCode.Size)
	assert.Equal(t, "H", cfg.QRCode.ErrorCorrectionLevel)
	assert.Equal(t, "https://app.example.com/map", cfg.QRCode.DeepLinkBase)
}
