// Package router registers the API routes.
package router

import (
	"mapbook/internal/delivery/api/middleware"
	"mapbook/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AddressHandler *handler.AddressHandler
	CommentHandler *handler.CommentHandler
	ProfileHandler *handler.ProfileHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	addressHandler *handler.AddressHandler
	commentHandler *handler.CommentHandler
	profileHandler *handler.ProfileHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		addressHandler: params.AddressHandler,
		commentHandler: params.CommentHandler,
		profileHandler: params.ProfileHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	apiV1 := e.Group("/api/v1")
	auth := r.authMiddleware.Authenticate
	optionalAuth := r.authMiddleware.OptionalAuthenticate

	addresses := apiV1.Group("/addresses")
	{
		addresses.GET("", r.addressHandler.ListVisible, optionalAuth)
		addresses.GET("/geojson", r.addressHandler.GeoJSON, optionalAuth)
		addresses.GET("/public", r.addressHandler.ListPublic, auth)
		addresses.GET("/private", r.addressHandler.ListPrivate, auth)
		addresses.GET("/mine", r.addressHandler.ListOwned, auth)
		addresses.POST("", r.addressHandler.Create, auth)
		addresses.GET("/:id", r.addressHandler.Get, optionalAuth)
		addresses.DELETE("/:id", r.addressHandler.Delete, auth)
		addresses.GET("/:id/qr", r.addressHandler.ShareQR, optionalAuth)
		addresses.GET("/:id/comments", r.commentHandler.List, optionalAuth)
		addresses.POST("/:id/comments", r.commentHandler.Add, auth)
	}

	apiV1.POST("/uploads", r.profileHandler.UploadSlot, auth)

	profile := apiV1.Group("/profile", auth)
	{
		profile.GET("", r.profileHandler.Get)
		profile.PUT("/avatar", r.profileHandler.UpdateAvatar)
	}
}
