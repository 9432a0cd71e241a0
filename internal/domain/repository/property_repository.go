package repository

import (
	"context"

	"homiio/internal/domain/entity"
	"homiio/internal/errors"

	"github.com/google/uuid"
)

// ErrPropertyNotFound is returned when a property is not found.
var ErrPropertyNotFound = errors.New("property not found")

// PropertyRepository defines the interface for property-listing database operations.
type PropertyRepository interface {
	// CreateProperty persists a new listing.
	CreateProperty(ctx context.Context, property *entity.Property) error

	// FindPropertyByID retrieves a listing by its unique ID.
	FindPropertyByID(ctx context.Context, id uuid.UUID) (*entity.Property, error)
}
