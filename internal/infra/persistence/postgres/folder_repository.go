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

// folderRepository implements the repository.FolderRepository interface.
type folderRepository struct {
	db *gorm.DB
}

// NewFolderRepository is the constructor for folderRepository.
func NewFolderRepository(db *gorm.DB) repository.FolderRepository {
	return &folderRepository{
		db: db,
	}
}

// CreateFolder persists a new folder.
func (repo *folderRepository) CreateFolder(ctx context.Context, folder *entity.SavedPropertyFolder) error {
	folderM := fromFolderDomain(folder)

	if err := repo.db.WithContext(ctx).Create(folderM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			// Partial unique index: a default folder already exists for this profile.
			return domainerrors.ErrConflict.WrapMessage("profile already has a default folder")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrFolderNameRequired
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create folder")
	}

	// Update the entity with generated values
	folder.ID = folderM.ID
	folder.CreatedAt = folderM.CreatedAt
	folder.UpdatedAt = folderM.UpdatedAt

	return nil
}

// FindFolderByID retrieves a folder by its unique ID.
func (repo *folderRepository) FindFolderByID(ctx context.Context, id uuid.UUID) (*entity.SavedPropertyFolder, error) {
	var folderM model.SavedPropertyFolderModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&folderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFolderNotFound
		}

		return nil, errors.Wrap(err, "failed to find folder by ID")
	}

	return toFolderDomain(&folderM), nil
}

// FindFoldersByProfile retrieves all folders for a profile, default first.
func (repo *folderRepository) FindFoldersByProfile(ctx context.Context, profileID uuid.UUID) ([]*entity.SavedPropertyFolder, error) {
	var folderModels []*model.SavedPropertyFolderModel

	if err := repo.db.WithContext(ctx).
		Where("profile_id = ?", profileID).
		Order("is_default DESC, created_at ASC").
		Find(&folderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find folders by profile")
	}

	folders := make([]*entity.SavedPropertyFolder, 0, len(folderModels))
	for _, folderM := range folderModels {
		folders = append(folders, toFolderDomain(folderM))
	}

	return folders, nil
}

// FindDefaultFolder retrieves the profile's default folder.
func (repo *folderRepository) FindDefaultFolder(ctx context.Context, profileID uuid.UUID) (*entity.SavedPropertyFolder, error) {
	var folderM model.SavedPropertyFolderModel

	if err := repo.db.WithContext(ctx).
		Where("profile_id = ? AND is_default = true", profileID).
		First(&folderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFolderNotFound
		}

		return nil, errors.Wrap(err, "failed to find default folder")
	}

	return toFolderDomain(&folderM), nil
}

// UpdateFolder updates name, color and icon of an existing folder.
func (repo *folderRepository) UpdateFolder(ctx context.Context, folder *entity.SavedPropertyFolder) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SavedPropertyFolderModel{}).
		Where("id = ?", folder.ID).
		Updates(map[string]any{
			"name":  folder.Name,
			"color": folder.Color,
			"icon":  folder.Icon,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update folder")
	}

	if result.RowsAffected == 0 {
		return repository.ErrFolderNotFound
	}

	return nil
}

// DeleteFolder removes a folder by its ID.
func (repo *folderRepository) DeleteFolder(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.SavedPropertyFolderModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete folder")
	}

	if result.RowsAffected == 0 {
		return repository.ErrFolderNotFound
	}

	return nil
}

// AdjustPropertyCount applies a ±delta to the folder's denormalized count.
// The delta is applied in SQL so concurrent adjustments compose additively
// instead of overwriting each other from stale snapshots.
func (repo *folderRepository) AdjustPropertyCount(ctx context.Context, id uuid.UUID, delta int64) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SavedPropertyFolderModel{}).
		Where("id = ?", id).
		Update("property_count", gorm.Expr("GREATEST(property_count + ?, 0)", delta))

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to adjust folder property count")
	}

	if result.RowsAffected == 0 {
		return repository.ErrFolderNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toFolderDomain converts a GORM SavedPropertyFolderModel to a domain entity.
func toFolderDomain(data *model.SavedPropertyFolderModel) *entity.SavedPropertyFolder {
	if data == nil {
		return nil
	}

	return &entity.SavedPropertyFolder{
		ID:            data.ID,
		ProfileID:     data.ProfileID,
		Name:          data.Name,
		Color:         data.Color,
		Icon:          data.Icon,
		IsDefault:     data.IsDefault,
		PropertyCount: data.PropertyCount,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

// fromFolderDomain converts a domain entity to a GORM SavedPropertyFolderModel.
func fromFolderDomain(data *entity.SavedPropertyFolder) *model.SavedPropertyFolderModel {
	if data == nil {
		return nil
	}

	return &model.SavedPropertyFolderModel{
		ID:            data.ID,
		ProfileID:     data.ProfileID,
		Name:          data.Name,
		Color:         data.Color,
		Icon:          data.Icon,
		IsDefault:     data.IsDefault,
		PropertyCount: data.PropertyCount,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}
