// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"lobby/config"
	"lobby/internal/delivery/api/middleware"
	"lobby/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	ProfileHandler *handler.ProfileHandler
	AuthMiddleware *middleware.AuthMiddleware
	Config         *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	profileHandler *handler.ProfileHandler
	authMiddleware *middleware.AuthMiddleware
	config         *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		profileHandler: params.ProfileHandler,
		authMiddleware: params.AuthMiddleware,
		config:         params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")
	authenticate := r.authMiddleware.Authenticate
	credentialLimiter := middleware.NewCredentialRateLimiter(r.config.HTTP.RateLimit)

	// Credential routes
	api.POST("/users", r.authHandler.Register, credentialLimiter)
	api.POST("/auth", r.authHandler.Login, credentialLimiter)
	api.GET("/auth", r.authHandler.Me, authenticate)

	// Profile routes
	profileGroup := api.Group("/profile")
	{
		profileGroup.GET("", r.profileHandler.List)
		profileGroup.GET("/user/:user_id", r.profileHandler.GetByUser)
		profileGroup.POST("", r.profileHandler.Upsert, authenticate)
		profileGroup.GET("/me", r.profileHandler.Me, authenticate)
	}
}
