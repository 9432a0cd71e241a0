package repository

import (
	"context"

	"homiio/internal/domain/entity"
	"homiio/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for saved-property persistence.
var (
	// ErrSavedPropertyNotFound is returned when a saved-property record is not found.
	ErrSavedPropertyNotFound = errors.New("saved property not found")
	// ErrDuplicateSavedProperty is returned when a (profile, property) pair
	// already has a record. Save is an upsert, so callers re-find and update.
	ErrDuplicateSavedProperty = errors.New("property already saved for this profile")
)

// SavedPropertyRepository defines the interface for saved-property database operations.
type SavedPropertyRepository interface {
	// CreateSavedProperty persists a new bookmark. Returns
	// ErrDuplicateSavedProperty when the (profile, property) pair exists.
	CreateSavedProperty(ctx context.Context, saved *entity.SavedProperty) error

	// FindByProfileAndProperty retrieves the bookmark for a (profile, property) pair.
	FindByProfileAndProperty(ctx context.Context, profileID, propertyID uuid.UUID) (*entity.SavedProperty, error)

	// FindByProfile retrieves all bookmarks for a profile, newest first.
	FindByProfile(ctx context.Context, profileID uuid.UUID) ([]*entity.SavedProperty, error)

	// UpdateSavedProperty updates folder assignment and notes of an existing bookmark.
	UpdateSavedProperty(ctx context.Context, saved *entity.SavedProperty) error

	// DeleteSavedProperty removes a bookmark by its ID.
	DeleteSavedProperty(ctx context.Context, id uuid.UUID) error

	// ClearFolderAssignment moves every bookmark in the folder to
	// uncategorized (folderID = NULL). Used when a folder is deleted.
	ClearFolderAssignment(ctx context.Context, folderID uuid.UUID) (int64, error)
}
