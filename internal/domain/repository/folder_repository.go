package repository

import (
	"context"

	"homiio/internal/domain/entity"
	"homiio/internal/errors"

	"github.com/google/uuid"
)

// ErrFolderNotFound is returned when a folder is not found.
var ErrFolderNotFound = errors.New("folder not found")

// FolderRepository defines the interface for saved-property-folder database operations.
type FolderRepository interface {
	// CreateFolder persists a new folder.
	CreateFolder(ctx context.Context, folder *entity.SavedPropertyFolder) error

	// FindFolderByID retrieves a folder by its unique ID.
	FindFolderByID(ctx context.Context, id uuid.UUID) (*entity.SavedPropertyFolder, error)

	// FindFoldersByProfile retrieves all folders for a profile, default first.
	FindFoldersByProfile(ctx context.Context, profileID uuid.UUID) ([]*entity.SavedPropertyFolder, error)

	// FindDefaultFolder retrieves the profile's default folder.
	// Returns ErrFolderNotFound if none exists yet.
	FindDefaultFolder(ctx context.Context, profileID uuid.UUID) (*entity.SavedPropertyFolder, error)

	// UpdateFolder updates name, color and icon of an existing folder.
	UpdateFolder(ctx context.Context, folder *entity.SavedPropertyFolder) error

	// DeleteFolder removes a folder by its ID.
	DeleteFolder(ctx context.Context, id uuid.UUID) error

	// AdjustPropertyCount applies a ±delta to the folder's denormalized
	// count. Deltas compose additively so concurrent adjustments do not
	// lose updates.
	AdjustPropertyCount(ctx context.Context, id uuid.UUID, delta int64) error
}
