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

// propertyRepository implements the repository.PropertyRepository interface.
type propertyRepository struct {
	db *gorm.DB
}

// NewPropertyRepository is the constructor for propertyRepository.
func NewPropertyRepository(db *gorm.DB) repository.PropertyRepository {
	return &propertyRepository{
		db: db,
	}
}

// CreateProperty persists a new listing.
func (repo *propertyRepository) CreateProperty(ctx context.Context, property *entity.Property) error {
	propertyM := fromPropertyDomain(property)

	if err := repo.db.WithContext(ctx).Create(propertyM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid address reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required property information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create property")
	}

	// Update the entity with generated values
	property.ID = propertyM.ID
	property.CreatedAt = propertyM.CreatedAt
	property.UpdatedAt = propertyM.UpdatedAt

	return nil
}

// FindPropertyByID retrieves a listing by its unique ID.
func (repo *propertyRepository) FindPropertyByID(ctx context.Context, id uuid.UUID) (*entity.Property, error) {
	var propertyM model.PropertyModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&propertyM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPropertyNotFound
		}

		return nil, errors.Wrap(err, "failed to find property by ID")
	}

	return toPropertyDomain(&propertyM), nil
}

// --- Mapper Functions ---

// toPropertyDomain converts a GORM PropertyModel to a domain Property entity.
func toPropertyDomain(data *model.PropertyModel) *entity.Property {
	if data == nil {
		return nil
	}

	return &entity.Property{
		ID:          data.ID,
		OwnerID:     data.OwnerID,
		AddressID:   data.AddressID,
		Title:       data.Title,
		Description: data.Description,
		RentAmount:  data.RentAmount,
		Currency:    data.Currency,
		Status:      entity.PropertyStatus(data.Status),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromPropertyDomain converts a domain Property entity to a GORM PropertyModel.
func fromPropertyDomain(data *entity.Property) *model.PropertyModel {
	if data == nil {
		return nil
	}

	return &model.PropertyModel{
		ID:          data.ID,
		OwnerID:     data.OwnerID,
		AddressID:   data.AddressID,
		Title:       data.Title,
		Description: data.Description,
		RentAmount:  data.RentAmount,
		Currency:    data.Currency,
		Status:      string(data.Status),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
