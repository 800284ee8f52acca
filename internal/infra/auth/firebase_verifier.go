package auth

import (
	"context"

	"mapbook/internal/domain/entity"
	domainerrors "mapbook/internal/domain/errors"
	"mapbook/internal/domain/service"
	"mapbook/internal/errors"
	firebaseinfra "mapbook/internal/infra/firebase"

	firebaseauth "firebase.google.com/go/v4/auth"
)

// idTokenVerifier is the part of the Firebase auth client used here.
type idTokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*firebaseauth.Token, error)
}

type firebaseVerifier struct {
	client idTokenVerifier
}

// NewFirebaseVerifier verifies Firebase ID tokens issued to the app's users.
func NewFirebaseVerifier(ctx context.Context, provider *firebaseinfra.AppProvider) (service.IdentityVerifier, error) {
	app, err := provider.App()
	if err != nil {
		return nil, err
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Firebase auth client")
	}

	return &firebaseVerifier{client: client}, nil
}

func (v *firebaseVerifier) Verify(ctx context.Context, idToken string) (entity.Identity, error) {
	token, err := v.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return entity.Anonymous(), domainerrors.ErrInvalidToken.WrapMessage(err.Error())
	}

	email, _ := token.Claims["email"].(string)

	return identityFromClaims(token.UID, email)
}
