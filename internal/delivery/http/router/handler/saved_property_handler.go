// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"homiio/internal/delivery/http/middleware"
	"homiio/internal/delivery/http/response"
	"homiio/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SavedPropertyHandler holds dependencies for saved-property handlers.
type SavedPropertyHandler struct {
	uc     usecase.SavedPropertyUsecase
	logger *slog.Logger
}

// NewSavedPropertyHandler is the constructor for SavedPropertyHandler, injected by Fx.
func NewSavedPropertyHandler(uc usecase.SavedPropertyUsecase, logger *slog.Logger) *SavedPropertyHandler {
	return &SavedPropertyHandler{
		uc:     uc,
		logger: logger,
	}
}

// Save handles the request to bookmark a property.
func (h *SavedPropertyHandler) Save(c echo.Context) error {
	profileID, ok := middleware.GetProfileID(c)
	if !ok {
		return response.Unauthorized(c, "AUTHENTICATION_REQUIRED", "Profile ID missing from context")
	}

	var input *usecase.SaveInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid save input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	saved, err := h.uc.SaveProperty(c.Request().Context(), profileID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, saved, "Property saved successfully")
}

// Unsave handles the request to remove a bookmark.
func (h *SavedPropertyHandler) Unsave(c echo.Context) error {
	profileID, ok := middleware.GetProfileID(c)
	if !ok {
		return response.Unauthorized(c, "AUTHENTICATION_REQUIRED", "Profile ID missing from context")
	}

	propertyID, err := uuid.Parse(c.Param("propertyId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid property ID")
	}

	if err := h.uc.UnsaveProperty(c.Request().Context(), profileID, propertyID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Property unsaved successfully")
}

// List handles the request for the profile's bookmarks and folders.
func (h *SavedPropertyHandler) List(c echo.Context) error {
	profileID, ok := middleware.GetProfileID(c)
	if !ok {
		return response.Unauthorized(c, "AUTHENTICATION_REQUIRED", "Profile ID missing from context")
	}

	output, err := h.uc.ListSavedProperties(c.Request().Context(), profileID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Saved properties retrieved successfully")
}

// Move handles the bulk folder-move request. Per-item failures are reported
// in the response body, not as an error status.
func (h *SavedPropertyHandler) Move(c echo.Context) error {
	profileID, ok := middleware.GetProfileID(c)
	if !ok {
		return response.Unauthorized(c, "AUTHENTICATION_REQUIRED", "Profile ID missing from context")
	}

	var input *usecase.MoveInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid move input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.MoveToFolder(c.Request().Context(), profileID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Move completed")
}
