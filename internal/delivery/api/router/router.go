// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"eventdesk/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	EventHandler   *handler.EventHandler
	GalleryHandler *handler.GalleryHandler
	ImageHandler   *handler.ImageHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	eventHandler   *handler.EventHandler
	galleryHandler *handler.GalleryHandler
	imageHandler   *handler.ImageHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		eventHandler:   params.EventHandler,
		galleryHandler: params.GalleryHandler,
		imageHandler:   params.ImageHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// OAuth consent round trip and credential exposure
	e.GET("/auth-url", r.authHandler.AuthURL)
	e.GET("/oauth2callback", r.authHandler.OAuthCallback)
	e.GET("/oauth-callback", r.authHandler.OAuthCallback)
	e.GET("/get-latest-tokens", r.authHandler.LatestTokens)
	e.GET("/get-refresh-token", r.authHandler.RefreshToken)
	e.GET("/session", r.authHandler.Session)

	// Events
	e.POST("/create-event", r.eventHandler.CreateEvent)
	e.GET("/get-events/:userId", r.eventHandler.ListEvents)
	e.GET("/get-event/:eventId", r.eventHandler.GetEvent)
	e.GET("/get-event/:eventId/qrcode", r.eventHandler.ShareQRCode)

	// Stored objects are streamed through this server
	e.GET("/image/:fileId", r.imageHandler.Image)

	// Gallery
	galleryGroup := e.Group("/gallery")
	{
		galleryGroup.POST("/upload", r.galleryHandler.UploadImage)
		galleryGroup.GET("/:eventId", r.galleryHandler.ListImages)
	}
}
