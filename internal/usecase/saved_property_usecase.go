package usecase

import (
	"context"

	"homiio/internal/domain/entity"

	"github.com/google/uuid"
)

// SaveInput defines the data required to save a property into a profile's
// collection. A nil FolderID files the bookmark as uncategorized.
type SaveInput struct {
	PropertyID uuid.UUID  `json:"property_id" validate:"required"`
	FolderID   *uuid.UUID `json:"folder_id,omitempty"`
	Notes      string     `json:"notes,omitempty"`
}

// CreateFolderInput defines the data required to create a folder.
type CreateFolderInput struct {
	Name  string `json:"name" validate:"required,max=100"`
	Color string `json:"color,omitempty"`
	Icon  string `json:"icon,omitempty"`
}

// UpdateFolderInput defines the data required to update a folder.
// Nil fields are left unchanged.
type UpdateFolderInput struct {
	Name  *string `json:"name,omitempty"`
	Color *string `json:"color,omitempty"`
	Icon  *string `json:"icon,omitempty"`
}

// MoveInput defines a bulk folder move. A nil TargetFolderID moves the
// bookmarks to uncategorized.
type MoveInput struct {
	PropertyIDs    []uuid.UUID `json:"property_ids" validate:"required,min=1"`
	TargetFolderID *uuid.UUID  `json:"target_folder_id,omitempty"`
}

// MoveOutput reports the outcome of a bulk move. Failures are per-item;
// one bad property does not abort the rest.
type MoveOutput struct {
	Moved  []uuid.UUID   `json:"moved"`
	Failed []MoveFailure `json:"failed,omitempty"`
}

// MoveFailure pairs a property that could not be moved with the reason.
type MoveFailure struct {
	PropertyID uuid.UUID `json:"property_id"`
	Reason     string    `json:"reason"`
}

// SavedPropertyListOutput is the authoritative snapshot of a profile's
// collection, with folder counts recomputed from the records.
type SavedPropertyListOutput struct {
	Properties []*entity.SavedProperty       `json:"properties"`
	Folders    []*entity.SavedPropertyFolder `json:"folders"`
}

// SavedPropertyUsecase defines the interface for saved-property use cases.
// Folder counts are maintained incrementally on every mutation and kept
// consistent with the records inside the same transaction.
type SavedPropertyUsecase interface {
	// SaveProperty bookmarks a property for the profile. Saving an already
	// saved property updates the folder assignment and notes instead of
	// failing (upsert keyed by profile and property).
	SaveProperty(ctx context.Context, profileID uuid.UUID, input *SaveInput) (*entity.SavedProperty, error)

	// UnsaveProperty removes the bookmark for the property.
	UnsaveProperty(ctx context.Context, profileID, propertyID uuid.UUID) error

	// ListSavedProperties returns the profile's bookmarks and folders.
	ListSavedProperties(ctx context.Context, profileID uuid.UUID) (*SavedPropertyListOutput, error)

	// MoveToFolder reassigns multiple bookmarks to the target folder,
	// continuing past per-item failures.
	MoveToFolder(ctx context.Context, profileID uuid.UUID, input *MoveInput) (*MoveOutput, error)

	// CreateFolder creates a folder for the profile.
	CreateFolder(ctx context.Context, profileID uuid.UUID, input *CreateFolderInput) (*entity.SavedPropertyFolder, error)

	// UpdateFolder renames or restyles a folder. The default folder cannot
	// be renamed.
	UpdateFolder(ctx context.Context, profileID, folderID uuid.UUID, input *UpdateFolderInput) (*entity.SavedPropertyFolder, error)

	// DeleteFolder removes a folder; its bookmarks become uncategorized.
	// The default folder cannot be deleted.
	DeleteFolder(ctx context.Context, profileID, folderID uuid.UUID) error
}
