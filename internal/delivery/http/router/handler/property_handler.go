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

// PropertyHandler holds dependencies for property-listing handlers.
type PropertyHandler struct {
	uc     usecase.PropertyUsecase
	logger *slog.Logger
}

// NewPropertyHandler is the constructor for PropertyHandler, injected by Fx.
func NewPropertyHandler(uc usecase.PropertyUsecase, logger *slog.Logger) *PropertyHandler {
	return &PropertyHandler{
		uc:     uc,
		logger: logger,
	}
}

// Create handles the listing publication request. The submitted address is
// resolved to a canonical record inside the same transaction.
func (h *PropertyHandler) Create(c echo.Context) error {
	ownerID, ok := middleware.GetProfileID(c)
	if !ok {
		return response.Unauthorized(c, "AUTHENTICATION_REQUIRED", "Profile ID missing from context")
	}

	var input *usecase.CreatePropertyInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid property input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	property, err := h.uc.CreateProperty(c.Request().Context(), ownerID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, property, "Property created successfully")
}

// Get handles the request for a single listing.
func (h *PropertyHandler) Get(c echo.Context) error {
	propertyID, err := uuid.Parse(c.Param("propertyId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid property ID")
	}

	property, err := h.uc.GetProperty(c.Request().Context(), propertyID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, property, "Property retrieved successfully")
}

// ShareQR renders the listing's share link as a PNG QR code.
func (h *PropertyHandler) ShareQR(c echo.Context) error {
	propertyID, err := uuid.Parse(c.Param("propertyId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid property ID")
	}

	png, err := h.uc.GenerateShareQR(c.Request().Context(), propertyID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
