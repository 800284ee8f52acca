package auth

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"mapbook/config"
	domainerrors "mapbook/internal/domain/errors"

	firebaseauth "firebase.google.com/go/v4/auth"
	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_secret_key_very_long_for_testing"

func createTestAuthConfig() *config.AuthConfig {
	return &config.AuthConfig{Provider: "jwt", JWTSecret: testSecret, JWTIssuer: "mapbook-dev"}
}

func TestJWTVerifier_IssueAndVerify(t *testing.T) {
	cfg := createTestAuthConfig()
	verifier, err := NewJWTVerifier(cfg)
	require.NoError(t, err)

	token, err := IssueToken(cfg, "uid-1", " Alice@Example.COM ", time.Hour)
	require.NoError(t, err)

	identity, err := verifier.Verify(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "uid-1", identity.UID())
	assert.Equal(t, "alice@example.com", identity.Email())
	assert.False(t, identity.IsAnonymous())
}

func TestJWTVerifier_Rejects(t *testing.T) {
	cfg := createTestAuthConfig()
	verifier, err := NewJWTVerifier(cfg)
	require.NoError(t, err)

	expired, err := IssueToken(cfg, "uid-1", "a@example.com", -time.Minute)
	require.NoError(t, err)

	otherIssuer, err := IssueToken(&config.AuthConfig{JWTSecret: testSecret, JWTIssuer: "elsewhere"}, "uid-1", "a@example.com", time.Hour)
	require.NoError(t, err)

	wrongSecret, err := IssueToken(&config.AuthConfig{JWTSecret: "another_secret", JWTIssuer: "mapbook-dev"}, "uid-1", "a@example.com", time.Hour)
	require.NoError(t, err)

	noEmail, err := IssueToken(cfg, "uid-1", "", time.Hour)
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, IdentityClaims{
		Email:            "a@example.com",
		RegisteredClaims: jwt.RegisteredClaims{Subject: "uid-1", Issuer: "mapbook-dev"},
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"Malformed", "clearly-not-a-jwt-token-format"},
		{"Expired", expired},
		{"Wrong issuer", otherIssuer},
		{"Wrong secret", wrongSecret},
		{"No email", noEmail},
		{"No expiry", noExpiry},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			identity, err := verifier.Verify(context.Background(), tt.token)
			assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
			assert.True(t, identity.IsAnonymous())
		})
	}
}

func TestNewJWTVerifier_RequiresSecret(t *testing.T) {
	_, err := NewJWTVerifier(&config.AuthConfig{Provider: "jwt"})
	assert.Error(t, err)

	_, err = IssueToken(nil, "uid", "a@example.com", time.Hour)
	assert.Error(t, err)
}

type fakeIDTokenVerifier struct {
	token *firebaseauth.Token
	err   error
}

func (f *fakeIDTokenVerifier) VerifyIDToken(context.Context, string) (*firebaseauth.Token, error) {
	return f.token, f.err
}

func TestFirebaseVerifier_Verify(t *testing.T) {
	verifier := &firebaseVerifier{client: &fakeIDTokenVerifier{
		token: &firebaseauth.Token{UID: "fb-uid", Claims: map[string]any{"email": "Bob@Example.com"}},
	}}

	identity, err := verifier.Verify(context.Background(), "id-token")
	require.NoError(t, err)
	assert.Equal(t, "fb-uid", identity.UID())
	assert.Equal(t, "bob@example.com", identity.Email())
}

func TestFirebaseVerifier_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		client *fakeIDTokenVerifier
	}{
		{"Verification failure", &fakeIDTokenVerifier{err: errors.New("ID token has expired")}},
		{"Missing email claim", &fakeIDTokenVerifier{token: &firebaseauth.Token{UID: "anon", Claims: map[string]any{}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := (&firebaseVerifier{client: tt.client}).Verify(context.Background(), "id-token")
			assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
		})
	}
}

func TestNewIdentityVerifier(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	verifier, err := NewIdentityVerifier(VerifierParams{
		Ctx:    context.Background(),
		Config: &config.Config{Auth: createTestAuthConfig()},
		Logger: logger,
	})
	require.NoError(t, err)
	assert.IsType(t, &jwtVerifier{}, verifier)

	_, err = NewIdentityVerifier(VerifierParams{
		Ctx:    context.Background(),
		Config: &config.Config{Auth: &config.AuthConfig{Provider: "saml"}},
		Logger: logger,
	})
	assert.ErrorContains(t, err, "unknown auth provider")
}
