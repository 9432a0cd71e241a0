package impl

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"homiio/internal/domain/entity"
	domainerrors "homiio/internal/domain/errors"
	"homiio/internal/domain/service"
	"homiio/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// savedPropertyCoordinator implements the client-side SavedPropertyCoordinator.
//
// All local state lives behind one mutex. Remote calls are made outside the
// lock so a slow network never blocks reads; the saving set keeps the
// per-property mutation exclusive across the unlocked window.
type savedPropertyCoordinator struct {
	api    service.SavedPropertyAPI
	logger *slog.Logger

	mu      sync.Mutex
	saved   map[uuid.UUID]*entity.SavedProperty       // keyed by property ID
	saving  map[uuid.UUID]struct{}                    // properties with an outstanding mutation
	folders map[uuid.UUID]*entity.SavedPropertyFolder // keyed by folder ID
}

// CoordinatorParams holds dependencies for savedPropertyCoordinator, injected by Fx.
type CoordinatorParams struct {
	fx.In

	API    service.SavedPropertyAPI
	Logger *slog.Logger
}

// NewSavedPropertyCoordinator is the constructor for savedPropertyCoordinator.
// State starts empty; callers Refresh to hydrate from the backend.
func NewSavedPropertyCoordinator(params CoordinatorParams) usecase.SavedPropertyCoordinator {
	return &savedPropertyCoordinator{
		api:     params.API,
		logger:  params.Logger,
		saved:   make(map[uuid.UUID]*entity.SavedProperty),
		saving:  make(map[uuid.UUID]struct{}),
		folders: make(map[uuid.UUID]*entity.SavedPropertyFolder),
	}
}

// SaveProperty optimistically marks the property saved and calls the backend.
func (c *savedPropertyCoordinator) SaveProperty(ctx context.Context, propertyID uuid.UUID, folderID *uuid.UUID, notes string) error {
	c.mu.Lock()
	if _, inFlight := c.saving[propertyID]; inFlight {
		c.mu.Unlock()

		return errors.Wrap(domainerrors.ErrMutationInFlight, "save already in flight")
	}

	prior := c.saved[propertyID]

	now := time.Now()
	provisional := &entity.SavedProperty{
		ID:         uuid.New(),
		PropertyID: propertyID,
		FolderID:   copyFolderID(folderID),
		Notes:      notes,
		AddedAt:    now,
		UpdatedAt:  now,
	}
	if prior != nil {
		// Re-save keeps the original identity and save time.
		provisional.ID = prior.ID
		provisional.ProfileID = prior.ProfileID
		provisional.AddedAt = prior.AddedAt
	}

	c.saved[propertyID] = provisional
	if prior != nil {
		c.adjustLocalCount(prior.FolderID, -1)
	}
	c.adjustLocalCount(folderID, 1)
	c.saving[propertyID] = struct{}{}
	c.mu.Unlock()

	stored, err := c.api.Save(ctx, propertyID, folderID, notes)

	c.mu.Lock()
	delete(c.saving, propertyID)
	if err != nil {
		// Roll back to the exact state before the optimistic flip.
		c.adjustLocalCount(folderID, -1)
		if prior != nil {
			c.adjustLocalCount(prior.FolderID, 1)
			c.saved[propertyID] = prior
		} else {
			delete(c.saved, propertyID)
		}
		c.mu.Unlock()

		c.logger.Warn("Save rolled back",
			slog.String("propertyID", propertyID.String()),
			slog.Any("error", err),
		)

		return err
	}
	c.saved[propertyID] = stored
	c.mu.Unlock()

	return nil
}

// UnsaveProperty optimistically removes the bookmark and calls the backend.
// The folder decremented is the one the property is known to be in at the
// moment of the call.
func (c *savedPropertyCoordinator) UnsaveProperty(ctx context.Context, propertyID uuid.UUID) error {
	c.mu.Lock()
	if _, inFlight := c.saving[propertyID]; inFlight {
		c.mu.Unlock()

		return errors.Wrap(domainerrors.ErrMutationInFlight, "mutation already in flight")
	}

	prior, ok := c.saved[propertyID]
	if !ok {
		c.mu.Unlock()

		return errors.Wrap(domainerrors.ErrSavedPropertyNotFound, "property is not saved")
	}

	delete(c.saved, propertyID)
	c.adjustLocalCount(prior.FolderID, -1)
	c.saving[propertyID] = struct{}{}
	c.mu.Unlock()

	err := c.api.Unsave(ctx, propertyID)

	c.mu.Lock()
	delete(c.saving, propertyID)
	if err != nil {
		c.saved[propertyID] = prior
		c.adjustLocalCount(prior.FolderID, 1)
		c.mu.Unlock()

		c.logger.Warn("Unsave rolled back",
			slog.String("propertyID", propertyID.String()),
			slog.Any("error", err),
		)

		return err
	}
	c.mu.Unlock()

	return nil
}

// ToggleSave saves the property if it is not saved, unsaves it otherwise.
func (c *savedPropertyCoordinator) ToggleSave(ctx context.Context, propertyID uuid.UUID) error {
	if c.IsSaved(propertyID) {
		return c.UnsaveProperty(ctx, propertyID)
	}

	return c.SaveProperty(ctx, propertyID, nil, "")
}

// IsSaved reports whether the property is saved in current local state.
func (c *savedPropertyCoordinator) IsSaved(propertyID uuid.UUID) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, ok := c.saved[propertyID]

	return ok
}

// IsSaving reports whether a mutation for the property is in flight.
func (c *savedPropertyCoordinator) IsSaving(propertyID uuid.UUID) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, ok := c.saving[propertyID]

	return ok
}

// Refresh replaces local state with the authoritative server snapshot.
// Optimistic counts and records are overwritten, not merged.
func (c *savedPropertyCoordinator) Refresh(ctx context.Context) error {
	list, err := c.api.List(ctx)
	if err != nil {
		return err
	}

	saved := make(map[uuid.UUID]*entity.SavedProperty, len(list.Properties))
	for _, p := range list.Properties {
		saved[p.PropertyID] = p
	}
	folders := make(map[uuid.UUID]*entity.SavedPropertyFolder, len(list.Folders))
	for _, f := range list.Folders {
		folders[f.ID] = f
	}

	c.mu.Lock()
	c.saved = saved
	c.folders = folders
	c.mu.Unlock()

	return nil
}

// SavedProperties returns the current local bookmarks, newest first.
func (c *savedPropertyCoordinator) SavedProperties() []*entity.SavedProperty {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]*entity.SavedProperty, 0, len(c.saved))
	for _, p := range c.saved {
		clone := *p
		out = append(out, &clone)
	}
	sortSavedNewestFirst(out)

	return out
}

// Folders returns the current local folders, default first.
func (c *savedPropertyCoordinator) Folders() []*entity.SavedPropertyFolder {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]*entity.SavedPropertyFolder, 0, len(c.folders))
	for _, f := range c.folders {
		clone := *f
		if clone.PropertyCount < 0 {
			// Drifted counts are clamped for display only; the raw value
			// keeps apply/rollback pairs exact until the next refresh.
			clone.PropertyCount = 0
		}
		out = append(out, &clone)
	}
	sortFoldersDefaultFirst(out)

	return out
}

// GetPropertySummary fetches the display summary for a listing.
func (c *savedPropertyCoordinator) GetPropertySummary(ctx context.Context, propertyID uuid.UUID) (*service.PropertySummary, error) {
	return c.api.GetProperty(ctx, propertyID)
}

// MoveToFolder reassigns the given saved properties to the target folder one
// at a time. A per-item failure is recorded and the remaining items still run.
func (c *savedPropertyCoordinator) MoveToFolder(ctx context.Context, propertyIDs []uuid.UUID, targetFolderID *uuid.UUID) (*usecase.BulkMoveResult, error) {
	if len(propertyIDs) == 0 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "at least one property is required")
	}

	if targetFolderID != nil {
		c.mu.Lock()
		_, known := c.folders[*targetFolderID]
		c.mu.Unlock()
		if !known {
			return nil, errors.Wrap(domainerrors.ErrFolderNotFound, "target folder is not known")
		}
	}

	result := &usecase.BulkMoveResult{}
	for _, propertyID := range propertyIDs {
		if err := c.moveOne(ctx, propertyID, targetFolderID); err != nil {
			result.Failed = append(result.Failed, usecase.BulkMoveFailure{
				PropertyID: propertyID,
				Err:        err,
			})

			continue
		}
		result.Moved = append(result.Moved, propertyID)
	}

	return result, nil
}

// moveOne applies a single optimistic folder move with rollback on failure.
func (c *savedPropertyCoordinator) moveOne(ctx context.Context, propertyID uuid.UUID, targetFolderID *uuid.UUID) error {
	c.mu.Lock()
	if _, inFlight := c.saving[propertyID]; inFlight {
		c.mu.Unlock()

		return errors.Wrap(domainerrors.ErrMutationInFlight, "mutation already in flight")
	}

	prior, ok := c.saved[propertyID]
	if !ok {
		c.mu.Unlock()

		return errors.Wrap(domainerrors.ErrSavedPropertyNotFound, "property is not saved")
	}

	moved := *prior
	moved.FolderID = copyFolderID(targetFolderID)
	moved.UpdatedAt = time.Now()

	c.saved[propertyID] = &moved
	c.adjustLocalCount(prior.FolderID, -1)
	c.adjustLocalCount(targetFolderID, 1)
	c.saving[propertyID] = struct{}{}
	c.mu.Unlock()

	stored, err := c.api.Save(ctx, propertyID, targetFolderID, prior.Notes)

	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.saving, propertyID)
	if err != nil {
		c.saved[propertyID] = prior
		c.adjustLocalCount(targetFolderID, -1)
		c.adjustLocalCount(prior.FolderID, 1)

		return err
	}
	c.saved[propertyID] = stored

	return nil
}

// CreateFolder optimistically adds the folder locally, then creates it on
// the backend and replaces the provisional record with the stored one.
func (c *savedPropertyCoordinator) CreateFolder(ctx context.Context, input service.FolderInput) (*entity.SavedPropertyFolder, error) {
	if input.Name == "" {
		return nil, domainerrors.ErrFolderNameRequired
	}

	now := time.Now()
	provisional := &entity.SavedPropertyFolder{
		ID:        uuid.New(),
		Name:      input.Name,
		Color:     input.Color,
		Icon:      input.Icon,
		CreatedAt: now,
		UpdatedAt: now,
	}

	c.mu.Lock()
	c.folders[provisional.ID] = provisional
	c.mu.Unlock()

	stored, err := c.api.CreateFolder(ctx, input)

	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.folders, provisional.ID)
	if err != nil {
		return nil, err
	}
	c.folders[stored.ID] = stored

	return stored, nil
}

// UpdateFolder renames or restyles a folder, optimistically. Any change to
// the default folder is rejected before any network call.
func (c *savedPropertyCoordinator) UpdateFolder(ctx context.Context, folderID uuid.UUID, input service.FolderInput) (*entity.SavedPropertyFolder, error) {
	c.mu.Lock()
	prior, ok := c.folders[folderID]
	if !ok {
		c.mu.Unlock()

		return nil, errors.Wrap(domainerrors.ErrFolderNotFound, "folder is not known")
	}
	if prior.IsDefault {
		c.mu.Unlock()

		return nil, errors.Wrap(domainerrors.ErrDefaultFolderImmutable, "default folder cannot be modified")
	}

	updated := *prior
	if input.Name != "" {
		updated.Name = input.Name
	}
	updated.Color = input.Color
	updated.Icon = input.Icon
	updated.UpdatedAt = time.Now()
	c.folders[folderID] = &updated
	c.mu.Unlock()

	stored, err := c.api.UpdateFolder(ctx, folderID, input)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.folders[folderID] = prior

		return nil, err
	}
	c.folders[folderID] = stored

	return stored, nil
}

// DeleteFolder removes a folder. Deletion is pessimistic: the backend call
// happens first and local state changes only after it succeeds, so a failed
// delete never hides a folder that still exists remotely.
func (c *savedPropertyCoordinator) DeleteFolder(ctx context.Context, folderID uuid.UUID) error {
	c.mu.Lock()
	folder, ok := c.folders[folderID]
	if !ok {
		c.mu.Unlock()

		return errors.Wrap(domainerrors.ErrFolderNotFound, "folder is not known")
	}
	if folder.IsDefault {
		c.mu.Unlock()

		return errors.Wrap(domainerrors.ErrDefaultFolderImmutable, "default folder cannot be deleted")
	}
	c.mu.Unlock()

	if err := c.api.DeleteFolder(ctx, folderID); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.folders, folderID)
	for _, p := range c.saved {
		if p.FolderID != nil && *p.FolderID == folderID {
			p.FolderID = nil
		}
	}

	return nil
}

// adjustLocalCount applies a ±delta to the folder's local count. A nil
// folder ID (uncategorized) has no count to maintain. The raw count may go
// negative when it had already drifted; it is clamped for display in
// Folders, never here, so an apply/rollback pair always cancels exactly.
//
// Callers must hold c.mu.
func (c *savedPropertyCoordinator) adjustLocalCount(folderID *uuid.UUID, delta int64) {
	if folderID == nil {
		return
	}
	if folder, ok := c.folders[*folderID]; ok {
		folder.PropertyCount += delta
	}
}

func copyFolderID(id *uuid.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	clone := *id

	return &clone
}

func sortSavedNewestFirst(properties []*entity.SavedProperty) {
	sort.Slice(properties, func(i, j int) bool {
		return properties[i].AddedAt.After(properties[j].AddedAt)
	})
}

func sortFoldersDefaultFirst(folders []*entity.SavedPropertyFolder) {
	sort.Slice(folders, func(i, j int) bool {
		if folders[i].IsDefault != folders[j].IsDefault {
			return folders[i].IsDefault
		}

		return folders[i].CreatedAt.Before(folders[j].CreatedAt)
	})
}
