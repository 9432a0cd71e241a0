// Package service defines interfaces for external collaborators consumed by
// the use case layer; concrete implementations live under internal/infra.
package service

import (
	"context"

	"homiio/internal/domain/entity"

	"github.com/google/uuid"
)

// SavedPropertyList is the authoritative snapshot returned by the remote
// list endpoint. The coordinator treats it as server truth and overwrites
// any locally derived (optimistic) state with it.
type SavedPropertyList struct {
	Properties []*entity.SavedProperty       `json:"properties"`
	Folders    []*entity.SavedPropertyFolder `json:"folders"`
}

// FolderInput carries the mutable fields of a folder for create/update calls.
type FolderInput struct {
	Name  string `json:"name"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

// PropertySummary is the display projection of a listing used by the client.
type PropertySummary struct {
	ID         uuid.UUID `json:"id"`
	Title      string    `json:"title"`
	RentAmount float64   `json:"rent_amount"`
	Currency   string    `json:"currency"`
	City       string    `json:"city"`
}

// SavedPropertyAPI is the remote source of truth for a profile's saved
// properties. Implementations classify transport and HTTP failures into the
// domain error taxonomy so the coordinator can decide between rollback-and-
// retry and re-authentication.
type SavedPropertyAPI interface {
	// Save creates or updates the bookmark for the property (upsert keyed
	// by the authenticated profile and the property).
	Save(ctx context.Context, propertyID uuid.UUID, folderID *uuid.UUID, notes string) (*entity.SavedProperty, error)

	// Unsave removes the bookmark for the property.
	Unsave(ctx context.Context, propertyID uuid.UUID) error

	// List returns the authoritative snapshot of bookmarks and folders,
	// with server-computed folder counts.
	List(ctx context.Context) (*SavedPropertyList, error)

	// GetProperty fetches the display summary for a listing.
	GetProperty(ctx context.Context, propertyID uuid.UUID) (*PropertySummary, error)

	// CreateFolder creates a folder and returns the stored record.
	CreateFolder(ctx context.Context, input FolderInput) (*entity.SavedPropertyFolder, error)

	// UpdateFolder renames or restyles a folder and returns the stored record.
	UpdateFolder(ctx context.Context, id uuid.UUID, input FolderInput) (*entity.SavedPropertyFolder, error)

	// DeleteFolder removes a folder; its members become uncategorized.
	DeleteFolder(ctx context.Context, id uuid.UUID) error
}
