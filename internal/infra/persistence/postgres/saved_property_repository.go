package postgres

import (
	"context"

	"homiio/internal/domain/entity"
	domainerrors "homiio/internal/domain/errors"
	"homiio/internal/domain/repository"
	"homiio/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// savedPropertyRepository implements the repository.SavedPropertyRepository interface.
type savedPropertyRepository struct {
	db *gorm.DB
}

// NewSavedPropertyRepository is the constructor for savedPropertyRepository.
func NewSavedPropertyRepository(db *gorm.DB) repository.SavedPropertyRepository {
	return &savedPropertyRepository{
		db: db,
	}
}

// CreateSavedProperty persists a new bookmark.
func (repo *savedPropertyRepository) CreateSavedProperty(ctx context.Context, saved *entity.SavedProperty) error {
	savedM := fromSavedPropertyDomain(saved)

	if err := repo.db.WithContext(ctx).Create(savedM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateSavedProperty
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid property or folder reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create saved property")
	}

	// Update the entity with generated values
	saved.ID = savedM.ID
	saved.AddedAt = savedM.AddedAt
	saved.UpdatedAt = savedM.UpdatedAt

	return nil
}

// FindByProfileAndProperty retrieves the bookmark for a (profile, property) pair.
func (repo *savedPropertyRepository) FindByProfileAndProperty(ctx context.Context, profileID, propertyID uuid.UUID) (*entity.SavedProperty, error) {
	var savedM model.SavedPropertyModel

	if err := repo.db.WithContext(ctx).
		Where("profile_id = ? AND property_id = ?", profileID, propertyID).
		First(&savedM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSavedPropertyNotFound
		}

		return nil, errors.Wrap(err, "failed to find saved property by profile and property")
	}

	return toSavedPropertyDomain(&savedM), nil
}

// FindByProfile retrieves all bookmarks for a profile, newest first.
func (repo *savedPropertyRepository) FindByProfile(ctx context.Context, profileID uuid.UUID) ([]*entity.SavedProperty, error) {
	var savedModels []*model.SavedPropertyModel

	if err := repo.db.WithContext(ctx).
		Where("profile_id = ?", profileID).
		Order("added_at DESC").
		Find(&savedModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find saved properties by profile")
	}

	saved := make([]*entity.SavedProperty, 0, len(savedModels))
	for _, savedM := range savedModels {
		saved = append(saved, toSavedPropertyDomain(savedM))
	}

	return saved, nil
}

// UpdateSavedProperty updates folder assignment and notes of an existing bookmark.
func (repo *savedPropertyRepository) UpdateSavedProperty(ctx context.Context, saved *entity.SavedProperty) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SavedPropertyModel{}).
		Where("id = ?", saved.ID).
		Updates(map[string]any{
			"folder_id": saved.FolderID,
			"notes":     saved.Notes,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update saved property")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSavedPropertyNotFound
	}

	return nil
}

// DeleteSavedProperty removes a bookmark by its ID.
func (repo *savedPropertyRepository) DeleteSavedProperty(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.SavedPropertyModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete saved property")
	}

	// If no rows were affected, it means the bookmark was not found.
	if result.RowsAffected == 0 {
		return repository.ErrSavedPropertyNotFound
	}

	return nil
}

// ClearFolderAssignment moves every bookmark in the folder to uncategorized.
func (repo *savedPropertyRepository) ClearFolderAssignment(ctx context.Context, folderID uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.SavedPropertyModel{}).
		Where("folder_id = ?", folderID).
		Update("folder_id", nil)

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to clear folder assignment")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

// toSavedPropertyDomain converts a GORM SavedPropertyModel to a domain SavedProperty entity.
func toSavedPropertyDomain(data *model.SavedPropertyModel) *entity.SavedProperty {
	if data == nil {
		return nil
	}

	return &entity.SavedProperty{
		ID:         data.ID,
		ProfileID:  data.ProfileID,
		PropertyID: data.PropertyID,
		FolderID:   data.FolderID,
		Notes:      data.Notes,
		AddedAt:    data.AddedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

// fromSavedPropertyDomain converts a domain SavedProperty entity to a GORM SavedPropertyModel.
func fromSavedPropertyDomain(data *entity.SavedProperty) *model.SavedPropertyModel {
	if data == nil {
		return nil
	}

	return &model.SavedPropertyModel{
		ID:         data.ID,
		ProfileID:  data.ProfileID,
		PropertyID: data.PropertyID,
		FolderID:   data.FolderID,
		Notes:      data.Notes,
		AddedAt:    data.AddedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
