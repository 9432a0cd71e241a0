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

// FolderHandler holds dependencies for folder handlers.
type FolderHandler struct {
	uc     usecase.SavedPropertyUsecase
	logger *slog.Logger
}

// NewFolderHandler is the constructor for FolderHandler, injected by Fx.
func NewFolderHandler(uc usecase.SavedPropertyUsecase, logger *slog.Logger) *FolderHandler {
	return &FolderHandler{
		uc:     uc,
		logger: logger,
	}
}

// Create handles the folder creation request.
func (h *FolderHandler) Create(c echo.Context) error {
	profileID, ok := middleware.GetProfileID(c)
	if !ok {
		return response.Unauthorized(c, "AUTHENTICATION_REQUIRED", "Profile ID missing from context")
	}

	var input *usecase.CreateFolderInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid folder input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	folder, err := h.uc.CreateFolder(c.Request().Context(), profileID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, folder, "Folder created successfully")
}

// Update handles the folder rename/restyle request.
func (h *FolderHandler) Update(c echo.Context) error {
	profileID, ok := middleware.GetProfileID(c)
	if !ok {
		return response.Unauthorized(c, "AUTHENTICATION_REQUIRED", "Profile ID missing from context")
	}

	folderID, err := uuid.Parse(c.Param("folderId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid folder ID")
	}

	var input *usecase.UpdateFolderInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid folder input")
	}

	folder, err := h.uc.UpdateFolder(c.Request().Context(), profileID, folderID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, folder, "Folder updated successfully")
}

// Delete handles the folder deletion request.
func (h *FolderHandler) Delete(c echo.Context) error {
	profileID, ok := middleware.GetProfileID(c)
	if !ok {
		return response.Unauthorized(c, "AUTHENTICATION_REQUIRED", "Profile ID missing from context")
	}

	folderID, err := uuid.Parse(c.Param("folderId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid folder ID")
	}

	if err := h.uc.DeleteFolder(c.Request().Context(), profileID, folderID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Folder deleted successfully")
}
