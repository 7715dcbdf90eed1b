// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"hub/internal/delivery/http/middleware"
	"hub/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler     *handler.UserHandler
	BookmarkHandler *handler.BookmarkHandler
	ResourceHandler *handler.ResourceHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler     *handler.UserHandler
	bookmarkHandler *handler.BookmarkHandler
	resourceHandler *handler.ResourceHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:     params.UserHandler,
		bookmarkHandler: params.BookmarkHandler,
		resourceHandler: params.ResourceHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/signup", r.userHandler.Signup)
		authGroup.POST("/login", r.userHandler.Login)
		authGroup.POST("/logout", r.userHandler.Logout)
	}

	// User routes that require a valid session
	userGroup := e.Group("/user")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.GET("/me", r.userHandler.GetMe)
		userGroup.GET("/bookmarks", r.bookmarkHandler.List)
		userGroup.POST("/bookmark/:id", r.bookmarkHandler.Toggle)
	}

	// Resource catalog; browsing is open, sharing requires a session
	resourceGroup := e.Group("/resources")
	{
		resourceGroup.GET("", r.resourceHandler.List)
		resourceGroup.GET("/:id", r.resourceHandler.Get)
		resourceGroup.POST("", r.resourceHandler.Create, r.authMiddleware.Authenticate)
	}
}
