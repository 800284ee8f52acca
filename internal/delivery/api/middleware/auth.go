package middleware

import (
	"strings"

	deliverycontext "mapbook/internal/delivery/context"
	"mapbook/internal/domain/entity"
	domainerrors "mapbook/internal/domain/errors"
	"mapbook/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AuthMiddleware turns the bearer token into the caller's identity.
type AuthMiddleware struct {
	verifier service.IdentityVerifier
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(verifier service.IdentityVerifier) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier}
}

// Authenticate requires a valid bearer token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return m.handle(next, true)
}

// OptionalAuthenticate leaves the caller anonymous when no Authorization header is sent.
// A header that is present must still carry a valid token.
func (m *AuthMiddleware) OptionalAuthenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return m.handle(next, false)
}

func (m *AuthMiddleware) handle(next echo.HandlerFunc, required bool) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			if required {
				return domainerrors.ErrUnauthenticated.WrapMessage("authorization header is missing")
			}
			setIdentity(c, entity.Anonymous())

			return next(c)
		}

		tokenString, ok := strings.CutPrefix(authHeader, bearerPrefix)
		if !ok || strings.TrimSpace(tokenString) == "" {
			return domainerrors.ErrInvalidToken.WrapMessage("authorization header must be a bearer token")
		}

		identity, err := m.verifier.Verify(c.Request().Context(), strings.TrimSpace(tokenString))
		if err != nil {
			return err
		}
		setIdentity(c, identity)

		return next(c)
	}
}

func setIdentity(c echo.Context, identity entity.Identity) {
	c.Set(string(deliverycontext.KeyIdentity), identity)
	c.SetRequest(c.Request().WithContext(deliverycontext.WithIdentity(c.Request().Context(), identity)))
}

// GetIdentity returns the caller set by the auth middleware, anonymous when none ran.
func GetIdentity(c echo.Context) entity.Identity {
	if identity, ok := c.Get(string(deliverycontext.KeyIdentity)).(entity.Identity); ok {
		return identity
	}

	return entity.Anonymous()
}
