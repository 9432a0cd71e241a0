// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"homiio/internal/delivery/http/middleware"
	"homiio/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SavedPropertyHandler *handler.SavedPropertyHandler
	FolderHandler        *handler.FolderHandler
	PropertyHandler      *handler.PropertyHandler
	AddressHandler       *handler.AddressHandler
	AuthMiddleware       *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	savedPropertyHandler *handler.SavedPropertyHandler
	folderHandler        *handler.FolderHandler
	propertyHandler      *handler.PropertyHandler
	addressHandler       *handler.AddressHandler
	authMiddleware       *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		savedPropertyHandler: params.SavedPropertyHandler,
		folderHandler:        params.FolderHandler,
		propertyHandler:      params.PropertyHandler,
		addressHandler:       params.AddressHandler,
		authMiddleware:       params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public listing routes
	e.GET("/properties/:propertyId", r.propertyHandler.Get)
	e.GET("/properties/:propertyId/share-qr", r.propertyHandler.ShareQR)

	// Listing routes that require authentication
	propertyGroup := e.Group("/properties")
	propertyGroup.Use(r.authMiddleware.Authenticate)
	{
		propertyGroup.POST("", r.propertyHandler.Create)
	}

	// Address routes that require authentication
	addressGroup := e.Group("/addresses")
	addressGroup.Use(r.authMiddleware.Authenticate)
	{
		addressGroup.POST("/resolve", r.addressHandler.Resolve)
		addressGroup.GET("/:addressId", r.addressHandler.Get)
	}

	// Saved-property routes, always scoped to the authenticated profile
	savedGroup := e.Group("/saved-properties")
	savedGroup.Use(r.authMiddleware.Authenticate)
	{
		savedGroup.POST("", r.savedPropertyHandler.Save)
		savedGroup.GET("", r.savedPropertyHandler.List)
		savedGroup.DELETE("/:propertyId", r.savedPropertyHandler.Unsave)
		savedGroup.POST("/move", r.savedPropertyHandler.Move)
	}

	// Folder routes
	folderGroup := e.Group("/folders")
	folderGroup.Use(r.authMiddleware.Authenticate)
	{
		folderGroup.POST("", r.folderHandler.Create)
		folderGroup.PUT("/:folderId", r.folderHandler.Update)
		folderGroup.DELETE("/:folderId", r.folderHandler.Delete)
	}
}
