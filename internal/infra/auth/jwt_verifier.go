// Package auth turns bearer tokens into caller identities.
package auth

import (
	"context"
	"time"

	"mapbook/config"
	"mapbook/internal/domain/entity"
	domainerrors "mapbook/internal/domain/errors"
	"mapbook/internal/domain/service"
	"mapbook/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

// IdentityClaims are the claims carried by locally issued tokens.
type IdentityClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// jwtVerifier accepts HS256 tokens signed with a shared secret. Used for local development.
type jwtVerifier struct {
	secret []byte
	issuer string
}

// NewJWTVerifier is the constructor for jwtVerifier.
func NewJWTVerifier(cfg *config.AuthConfig) (service.IdentityVerifier, error) {
	if cfg == nil || cfg.JWTSecret == "" {
		return nil, errors.New("jwt secret must be provided for the jwt auth provider")
	}

	return &jwtVerifier{
		secret: []byte(cfg.JWTSecret),
		issuer: cfg.JWTIssuer,
	}, nil
}

// Verify validates the signature, expiry and issuer, then reads sub and email.
func (v *jwtVerifier) Verify(_ context.Context, tokenString string) (entity.Identity, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}

	claims := &IdentityClaims{}
	if _, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return v.secret, nil
	}, opts...); err != nil {
		return entity.Anonymous(), domainerrors.ErrInvalidToken.WrapMessage(err.Error())
	}

	return identityFromClaims(claims.Subject, claims.Email)
}

// IssueToken signs an HS256 identity token accepted by the jwt provider.
func IssueToken(cfg *config.AuthConfig, uid, email string, ttl time.Duration) (string, error) {
	if cfg == nil || cfg.JWTSecret == "" {
		return "", errors.New("jwt secret must be provided to issue tokens")
	}

	now := time.Now()
	claims := IdentityClaims{
		Email: entity.NormalizeEmail(email),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uid,
			Issuer:    cfg.JWTIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.JWTSecret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign identity token")
	}

	return signed, nil
}

// identityFromClaims rejects tokens that would otherwise produce an anonymous identity.
func identityFromClaims(uid, email string) (entity.Identity, error) {
	identity := entity.NewIdentity(uid, email)
	if identity.IsAnonymous() {
		return entity.Anonymous(), domainerrors.ErrInvalidToken.WrapMessage("token carries no email")
	}

	return identity, nil
}
