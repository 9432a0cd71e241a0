package impl

import (
	"context"
	"log/slog"
	"time"

	"homiio/config"
	"homiio/internal/domain/constants"
	"homiio/internal/domain/entity"
	domainerrors "homiio/internal/domain/errors"
	"homiio/internal/domain/repository"
	"homiio/internal/domain/service"
	"homiio/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// savedPropertyService implements the server-side SavedPropertyUsecase.
// Folder counts are adjusted in the same transaction as the record mutation,
// so a rollback reverts both together.
type savedPropertyService struct {
	txManager      repository.TransactionManager
	eventPublisher service.EventPublisher
	config         *config.Config
	logger         *slog.Logger
}

// SavedPropertyServiceParams holds dependencies for savedPropertyService, injected by Fx.
type SavedPropertyServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	EventPublisher service.EventPublisher
	Config         *config.Config
	Logger         *slog.Logger
}

// NewSavedPropertyService is the constructor for savedPropertyService.
func NewSavedPropertyService(params SavedPropertyServiceParams) usecase.SavedPropertyUsecase {
	return &savedPropertyService{
		txManager:      params.TxManager,
		eventPublisher: params.EventPublisher,
		config:         params.Config,
		logger:         params.Logger,
	}
}

// SaveProperty bookmarks a property for the profile. Saving an already saved
// property updates the folder assignment and notes instead of failing.
func (srv *savedPropertyService) SaveProperty(ctx context.Context, profileID uuid.UUID, input *usecase.SaveInput) (*entity.SavedProperty, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("save input is required")
	}

	var saved *entity.SavedProperty

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.PropertyRepo().FindPropertyByID(ctx, input.PropertyID); err != nil {
			if errors.Is(err, repository.ErrPropertyNotFound) {
				return errors.Wrap(domainerrors.ErrPropertyNotFound, "property not found")
			}

			return errors.Wrap(err, "failed to find property")
		}

		if input.FolderID != nil {
			if err := srv.verifyFolderOwnership(ctx, repoFactory, profileID, *input.FolderID); err != nil {
				return err
			}
		}

		if err := srv.ensureDefaultFolder(ctx, repoFactory, profileID); err != nil {
			return err
		}

		existing, err := repoFactory.SavedPropertyRepo().FindByProfileAndProperty(ctx, profileID, input.PropertyID)
		if err != nil && !errors.Is(err, repository.ErrSavedPropertyNotFound) {
			return errors.Wrap(err, "failed to find saved property")
		}

		if existing != nil {
			saved, err = srv.updateExisting(ctx, repoFactory, existing, input)

			return err
		}

		saved, err = srv.createNew(ctx, repoFactory, profileID, input)

		return err
	})
	if err != nil {
		return nil, err
	}

	srv.publishEvent(ctx, profileID, input.PropertyID, input.FolderID, constants.SavedPropertyActionSaved)

	return saved, nil
}

// updateExisting applies the folder move and note change to an existing
// bookmark, adjusting the counts of both folders involved.
func (srv *savedPropertyService) updateExisting(ctx context.Context, repoFactory repository.RepositoryFactory, existing *entity.SavedProperty, input *usecase.SaveInput) (*entity.SavedProperty, error) {
	oldFolderID := existing.FolderID

	existing.FolderID = input.FolderID
	existing.Notes = input.Notes
	existing.UpdatedAt = time.Now()

	if err := repoFactory.SavedPropertyRepo().UpdateSavedProperty(ctx, existing); err != nil {
		return nil, errors.Wrap(err, "failed to update saved property")
	}

	if err := srv.adjustFolderCounts(ctx, repoFactory, oldFolderID, input.FolderID); err != nil {
		return nil, err
	}

	return existing, nil
}

// createNew persists a fresh bookmark. A duplicate-key error means a
// concurrent save won the insert; the winner's record is updated instead.
func (srv *savedPropertyService) createNew(ctx context.Context, repoFactory repository.RepositoryFactory, profileID uuid.UUID, input *usecase.SaveInput) (*entity.SavedProperty, error) {
	now := time.Now()
	saved := &entity.SavedProperty{
		ID:         uuid.New(),
		ProfileID:  profileID,
		PropertyID: input.PropertyID,
		FolderID:   input.FolderID,
		Notes:      input.Notes,
		AddedAt:    now,
		UpdatedAt:  now,
	}

	err := repoFactory.SavedPropertyRepo().CreateSavedProperty(ctx, saved)
	if err == nil {
		if input.FolderID != nil {
			if err := repoFactory.FolderRepo().AdjustPropertyCount(ctx, *input.FolderID, 1); err != nil {
				return nil, errors.Wrap(err, "failed to adjust folder count")
			}
		}

		return saved, nil
	}
	if !errors.Is(err, repository.ErrDuplicateSavedProperty) {
		return nil, errors.Wrap(err, "failed to create saved property")
	}

	winner, err := repoFactory.SavedPropertyRepo().FindByProfileAndProperty(ctx, profileID, input.PropertyID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find saved property after duplicate key")
	}

	return srv.updateExisting(ctx, repoFactory, winner, input)
}

// UnsaveProperty removes the bookmark for the property and decrements its
// folder's count.
func (srv *savedPropertyService) UnsaveProperty(ctx context.Context, profileID, propertyID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		existing, err := repoFactory.SavedPropertyRepo().FindByProfileAndProperty(ctx, profileID, propertyID)
		if err != nil {
			if errors.Is(err, repository.ErrSavedPropertyNotFound) {
				return errors.Wrap(domainerrors.ErrSavedPropertyNotFound, "saved property not found")
			}

			return errors.Wrap(err, "failed to find saved property")
		}

		if err := repoFactory.SavedPropertyRepo().DeleteSavedProperty(ctx, existing.ID); err != nil {
			return errors.Wrap(err, "failed to delete saved property")
		}

		if existing.FolderID != nil {
			if err := repoFactory.FolderRepo().AdjustPropertyCount(ctx, *existing.FolderID, -1); err != nil {
				return errors.Wrap(err, "failed to adjust folder count")
			}
		}

		return nil
	})
	if err != nil {
		return err
	}

	srv.publishEvent(ctx, profileID, propertyID, nil, constants.SavedPropertyActionUnsaved)

	return nil
}

// ListSavedProperties returns the profile's bookmarks and folders. The
// returned counts are recomputed from the records, so any drift in the
// denormalized values is corrected in the response.
func (srv *savedPropertyService) ListSavedProperties(ctx context.Context, profileID uuid.UUID) (*usecase.SavedPropertyListOutput, error) {
	var output *usecase.SavedPropertyListOutput

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := srv.ensureDefaultFolder(ctx, repoFactory, profileID); err != nil {
			return err
		}

		properties, err := repoFactory.SavedPropertyRepo().FindByProfile(ctx, profileID)
		if err != nil {
			return errors.Wrap(err, "failed to find saved properties")
		}

		folders, err := repoFactory.FolderRepo().FindFoldersByProfile(ctx, profileID)
		if err != nil {
			return errors.Wrap(err, "failed to find folders")
		}

		counts := make(map[uuid.UUID]int64, len(folders))
		for _, p := range properties {
			if p.FolderID != nil {
				counts[*p.FolderID]++
			}
		}
		for _, f := range folders {
			f.PropertyCount = counts[f.ID]
		}

		output = &usecase.SavedPropertyListOutput{
			Properties: properties,
			Folders:    folders,
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return output, nil
}

// MoveToFolder reassigns multiple bookmarks to the target folder. Each item
// runs in its own transaction so one bad property does not abort the rest.
func (srv *savedPropertyService) MoveToFolder(ctx context.Context, profileID uuid.UUID, input *usecase.MoveInput) (*usecase.MoveOutput, error) {
	if input == nil || len(input.PropertyIDs) == 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("at least one property is required")
	}

	if input.TargetFolderID != nil {
		err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
			return srv.verifyFolderOwnership(ctx, repoFactory, profileID, *input.TargetFolderID)
		})
		if err != nil {
			return nil, err
		}
	}

	output := &usecase.MoveOutput{}
	for _, propertyID := range input.PropertyIDs {
		if err := srv.moveOne(ctx, profileID, propertyID, input.TargetFolderID); err != nil {
			srv.logger.Warn("Failed to move saved property",
				slog.String("profileID", profileID.String()),
				slog.String("propertyID", propertyID.String()),
				slog.Any("error", err),
			)
			output.Failed = append(output.Failed, usecase.MoveFailure{
				PropertyID: propertyID,
				Reason:     err.Error(),
			})

			continue
		}
		output.Moved = append(output.Moved, propertyID)
	}

	return output, nil
}

// moveOne reassigns a single bookmark and adjusts both folder counts.
func (srv *savedPropertyService) moveOne(ctx context.Context, profileID, propertyID uuid.UUID, targetFolderID *uuid.UUID) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		existing, err := repoFactory.SavedPropertyRepo().FindByProfileAndProperty(ctx, profileID, propertyID)
		if err != nil {
			if errors.Is(err, repository.ErrSavedPropertyNotFound) {
				return errors.Wrap(domainerrors.ErrSavedPropertyNotFound, "saved property not found")
			}

			return errors.Wrap(err, "failed to find saved property")
		}

		oldFolderID := existing.FolderID
		existing.FolderID = targetFolderID
		existing.UpdatedAt = time.Now()

		if err := repoFactory.SavedPropertyRepo().UpdateSavedProperty(ctx, existing); err != nil {
			return errors.Wrap(err, "failed to update saved property")
		}

		return srv.adjustFolderCounts(ctx, repoFactory, oldFolderID, targetFolderID)
	})
}

// CreateFolder creates a folder for the profile, enforcing the per-profile cap.
func (srv *savedPropertyService) CreateFolder(ctx context.Context, profileID uuid.UUID, input *usecase.CreateFolderInput) (*entity.SavedPropertyFolder, error) {
	if input == nil || input.Name == "" {
		return nil, domainerrors.ErrFolderNameRequired
	}

	var created *entity.SavedPropertyFolder

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := srv.ensureDefaultFolder(ctx, repoFactory, profileID); err != nil {
			return err
		}

		if maxFolders := srv.maxFoldersPerProfile(); maxFolders > 0 {
			folders, err := repoFactory.FolderRepo().FindFoldersByProfile(ctx, profileID)
			if err != nil {
				return errors.Wrap(err, "failed to find folders")
			}
			if len(folders) >= maxFolders {
				return domainerrors.ErrValidationFailed.WithDetails("folder limit reached")
			}
		}

		now := time.Now()
		folder := &entity.SavedPropertyFolder{
			ID:        uuid.New(),
			ProfileID: profileID,
			Name:      input.Name,
			Color:     input.Color,
			Icon:      input.Icon,
			CreatedAt: now,
			UpdatedAt: now,
		}

		if err := repoFactory.FolderRepo().CreateFolder(ctx, folder); err != nil {
			return errors.Wrap(err, "failed to create folder")
		}

		created = folder

		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

// UpdateFolder renames or restyles a folder. The default folder is immutable
// in every field.
func (srv *savedPropertyService) UpdateFolder(ctx context.Context, profileID, folderID uuid.UUID, input *usecase.UpdateFolderInput) (*entity.SavedPropertyFolder, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("folder input is required")
	}

	var updated *entity.SavedPropertyFolder

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		folder, err := repoFactory.FolderRepo().FindFolderByID(ctx, folderID)
		if err != nil {
			if errors.Is(err, repository.ErrFolderNotFound) {
				return errors.Wrap(domainerrors.ErrFolderNotFound, "folder not found")
			}

			return errors.Wrap(err, "failed to find folder")
		}
		if folder.ProfileID != profileID {
			return errors.Wrap(domainerrors.ErrForbidden, "folder belongs to another profile")
		}
		if folder.IsDefault {
			return errors.Wrap(domainerrors.ErrDefaultFolderImmutable, "default folder cannot be modified")
		}

		if input.Name != nil {
			if *input.Name == "" {
				return domainerrors.ErrFolderNameRequired
			}
			folder.Name = *input.Name
		}
		if input.Color != nil {
			folder.Color = *input.Color
		}
		if input.Icon != nil {
			folder.Icon = *input.Icon
		}
		folder.UpdatedAt = time.Now()

		if err := repoFactory.FolderRepo().UpdateFolder(ctx, folder); err != nil {
			return errors.Wrap(err, "failed to update folder")
		}

		updated = folder

		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// DeleteFolder removes a folder. Its bookmarks are reassigned to
// uncategorized in the same transaction, so no record ever points at a
// missing folder.
func (srv *savedPropertyService) DeleteFolder(ctx context.Context, profileID, folderID uuid.UUID) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		folder, err := repoFactory.FolderRepo().FindFolderByID(ctx, folderID)
		if err != nil {
			if errors.Is(err, repository.ErrFolderNotFound) {
				return errors.Wrap(domainerrors.ErrFolderNotFound, "folder not found")
			}

			return errors.Wrap(err, "failed to find folder")
		}
		if folder.ProfileID != profileID {
			return errors.Wrap(domainerrors.ErrForbidden, "folder belongs to another profile")
		}
		if folder.IsDefault {
			return errors.Wrap(domainerrors.ErrDefaultFolderImmutable, "default folder cannot be deleted")
		}

		orphaned, err := repoFactory.SavedPropertyRepo().ClearFolderAssignment(ctx, folderID)
		if err != nil {
			return errors.Wrap(err, "failed to clear folder assignment")
		}

		if err := repoFactory.FolderRepo().DeleteFolder(ctx, folderID); err != nil {
			return errors.Wrap(err, "failed to delete folder")
		}

		srv.logger.Info("Deleted folder",
			slog.String("folderID", folderID.String()),
			slog.Int64("orphanedProperties", orphaned),
		)

		return nil
	})
}

// verifyFolderOwnership checks the folder exists and belongs to the profile.
func (srv *savedPropertyService) verifyFolderOwnership(ctx context.Context, repoFactory repository.RepositoryFactory, profileID, folderID uuid.UUID) error {
	folder, err := repoFactory.FolderRepo().FindFolderByID(ctx, folderID)
	if err != nil {
		if errors.Is(err, repository.ErrFolderNotFound) {
			return errors.Wrap(domainerrors.ErrFolderNotFound, "folder not found")
		}

		return errors.Wrap(err, "failed to find folder")
	}
	if folder.ProfileID != profileID {
		return errors.Wrap(domainerrors.ErrForbidden, "folder belongs to another profile")
	}

	return nil
}

// ensureDefaultFolder lazily creates the profile's default folder. The
// partial unique index on (profile_id) where is_default makes concurrent
// creation safe; a duplicate insert fails and the existing folder stands.
func (srv *savedPropertyService) ensureDefaultFolder(ctx context.Context, repoFactory repository.RepositoryFactory, profileID uuid.UUID) error {
	_, err := repoFactory.FolderRepo().FindDefaultFolder(ctx, profileID)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repository.ErrFolderNotFound) {
		return errors.Wrap(err, "failed to find default folder")
	}

	now := time.Now()
	folder := &entity.SavedPropertyFolder{
		ID:        uuid.New(),
		ProfileID: profileID,
		Name:      srv.defaultFolderName(),
		IsDefault: true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := repoFactory.FolderRepo().CreateFolder(ctx, folder); err != nil {
		return errors.Wrap(err, "failed to create default folder")
	}

	return nil
}

// adjustFolderCounts applies the ±1 pair for a move from one folder to
// another. Equal folders cancel out and skip the writes.
func (srv *savedPropertyService) adjustFolderCounts(ctx context.Context, repoFactory repository.RepositoryFactory, from, to *uuid.UUID) error {
	if equalFolderIDs(from, to) {
		return nil
	}

	if from != nil {
		if err := repoFactory.FolderRepo().AdjustPropertyCount(ctx, *from, -1); err != nil {
			return errors.Wrap(err, "failed to adjust source folder count")
		}
	}
	if to != nil {
		if err := repoFactory.FolderRepo().AdjustPropertyCount(ctx, *to, 1); err != nil {
			return errors.Wrap(err, "failed to adjust target folder count")
		}
	}

	return nil
}

func (srv *savedPropertyService) defaultFolderName() string {
	if srv.config.Folders != nil && srv.config.Folders.DefaultName != "" {
		return srv.config.Folders.DefaultName
	}

	return entity.DefaultFolderName
}

func (srv *savedPropertyService) maxFoldersPerProfile() int {
	if srv.config.Folders != nil {
		return srv.config.Folders.MaxPerProfile
	}

	return 0
}

// publishEvent emits a save/unsave event. Publishing is best effort; a
// broker outage must not fail the committed mutation.
func (srv *savedPropertyService) publishEvent(ctx context.Context, profileID, propertyID uuid.UUID, folderID *uuid.UUID, action string) {
	event := &service.SavedPropertyEvent{
		RequestID:  uuid.NewString(),
		ProfileID:  profileID.String(),
		PropertyID: propertyID.String(),
		Action:     action,
		OccurredAt: time.Now().UTC(),
	}
	if folderID != nil {
		event.FolderID = folderID.String()
	}

	if err := srv.eventPublisher.PublishSavedPropertyEvent(ctx, event); err != nil {
		srv.logger.Warn("Failed to publish saved-property event",
			slog.String("propertyID", event.PropertyID),
			slog.String("action", action),
			slog.Any("error", err),
		)
	}
}

func equalFolderIDs(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == b
	}

	return *a == *b
}
