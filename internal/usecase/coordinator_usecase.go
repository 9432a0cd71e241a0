package usecase

import (
	"context"

	"homiio/internal/domain/entity"
	"homiio/internal/domain/service"

	"github.com/google/uuid"
)

// BulkMoveResult reports the outcome of a client-side bulk folder move.
// Items are attempted independently; a failure on one property does not
// abort the remaining moves.
type BulkMoveResult struct {
	Moved  []uuid.UUID
	Failed []BulkMoveFailure
}

// BulkMoveFailure pairs a property that could not be moved with the error
// returned for it.
type BulkMoveFailure struct {
	PropertyID uuid.UUID
	Err        error
}

// SavedPropertyCoordinator is the client-side state machine over the remote
// saved-property backend. Mutations are optimistic: local state flips first,
// the remote call follows, and a failure rolls the local state back to what
// it was before the call.
//
// Per-property mutations are serialized by an in-flight guard: while a save
// or unsave for a property is outstanding, further mutations on the same
// property are rejected with ErrMutationInFlight, in either direction.
type SavedPropertyCoordinator interface {
	// SaveProperty optimistically marks the property saved, files it into
	// the folder (nil means uncategorized) and calls the backend. On
	// failure the mark and folder counts are rolled back.
	SaveProperty(ctx context.Context, propertyID uuid.UUID, folderID *uuid.UUID, notes string) error

	// UnsaveProperty optimistically removes the bookmark and calls the
	// backend, rolling back on failure.
	UnsaveProperty(ctx context.Context, propertyID uuid.UUID) error

	// ToggleSave saves the property if it is not saved, unsaves it
	// otherwise. The decision is made against current local state.
	ToggleSave(ctx context.Context, propertyID uuid.UUID) error

	// IsSaved reports whether the property is saved in current local state.
	IsSaved(propertyID uuid.UUID) bool

	// IsSaving reports whether a mutation for the property is in flight.
	// UIs use it to render a pending state on the save control.
	IsSaving(propertyID uuid.UUID) bool

	// Refresh replaces local state with the authoritative server snapshot.
	Refresh(ctx context.Context) error

	// SavedProperties returns the current local bookmarks, a copy safe to
	// retain.
	SavedProperties() []*entity.SavedProperty

	// Folders returns the current local folders with their counts, a copy
	// safe to retain.
	Folders() []*entity.SavedPropertyFolder

	// GetPropertySummary fetches the display summary for a listing.
	GetPropertySummary(ctx context.Context, propertyID uuid.UUID) (*service.PropertySummary, error)

	// MoveToFolder reassigns the given saved properties to the target
	// folder (nil means uncategorized), one at a time, collecting per-item
	// failures instead of aborting.
	MoveToFolder(ctx context.Context, propertyIDs []uuid.UUID, targetFolderID *uuid.UUID) (*BulkMoveResult, error)

	// CreateFolder optimistically adds the folder locally and creates it on
	// the backend, replacing the provisional record with the stored one.
	CreateFolder(ctx context.Context, input service.FolderInput) (*entity.SavedPropertyFolder, error)

	// UpdateFolder renames or restyles a folder, optimistically.
	UpdateFolder(ctx context.Context, folderID uuid.UUID, input service.FolderInput) (*entity.SavedPropertyFolder, error)

	// DeleteFolder removes a folder; its bookmarks become uncategorized
	// locally and on the backend.
	DeleteFolder(ctx context.Context, folderID uuid.UUID) error
}
