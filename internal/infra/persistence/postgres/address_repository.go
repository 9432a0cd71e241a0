package postgres

import (
	"context"

	"homiio/internal/domain/entity"
	domainerrors "homiio/internal/domain/errors"
	"homiio/internal/domain/repository"
	"homiio/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// addressRepository implements the repository.AddressRepository interface.
type addressRepository struct {
	db *gorm.DB
}

// NewAddressRepository is the constructor for addressRepository.
func NewAddressRepository(db *gorm.DB) repository.AddressRepository {
	return &addressRepository{
		db: db,
	}
}

// CreateAddress persists a new canonical address.
func (repo *addressRepository) CreateAddress(ctx context.Context, address *entity.Address) error {
	addressM := fromAddressDomain(address)

	if err := repo.db.WithContext(ctx).Create(addressM).Error; err != nil {
		// The unique index on normalized_key is the actual deduplication
		// guarantee; a violation here means a concurrent caller won the race.
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateAddressKey
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required address information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create address")
	}

	// Update the entity with generated values
	address.ID = addressM.ID
	address.CreatedAt = addressM.CreatedAt
	address.UpdatedAt = addressM.UpdatedAt

	return nil
}

// FindAddressByID retrieves an address by its unique ID.
func (repo *addressRepository) FindAddressByID(ctx context.Context, id uuid.UUID) (*entity.Address, error) {
	var addressM model.AddressModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&addressM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAddressNotFound
		}

		return nil, errors.Wrap(err, "failed to find address by ID")
	}

	return toAddressDomain(&addressM), nil
}

// FindAddressByNormalizedKey retrieves the canonical address for a deduplication key.
func (repo *addressRepository) FindAddressByNormalizedKey(ctx context.Context, key string) (*entity.Address, error) {
	var addressM model.AddressModel

	if err := repo.db.WithContext(ctx).
		Where("normalized_key = ?", key).
		First(&addressM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAddressNotFound
		}

		return nil, errors.Wrap(err, "failed to find address by normalized key")
	}

	return toAddressDomain(&addressM), nil
}

// --- Mapper Functions ---

// toAddressDomain converts a GORM AddressModel to a domain Address entity.
func toAddressDomain(data *model.AddressModel) *entity.Address {
	if data == nil {
		return nil
	}

	return &entity.Address{
		ID:            data.ID,
		Street:        data.Street,
		Number:        data.Number,
		Unit:          data.Unit,
		Floor:         data.Floor,
		Block:         data.Block,
		BuildingName:  data.BuildingName,
		LandPlot:      data.LandPlot,
		City:          data.City,
		State:         data.State,
		PostalCode:    data.PostalCode,
		Country:       data.Country,
		CountryCode:   data.CountryCode,
		Lines:         data.Lines,
		Location:      orb.Point{data.Longitude, data.Latitude},
		NormalizedKey: data.NormalizedKey,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

// fromAddressDomain converts a domain Address entity to a GORM AddressModel.
func fromAddressDomain(data *entity.Address) *model.AddressModel {
	if data == nil {
		return nil
	}

	return &model.AddressModel{
		ID:            data.ID,
		Street:        data.Street,
		Number:        data.Number,
		Unit:          data.Unit,
		Floor:         data.Floor,
		Block:         data.Block,
		BuildingName:  data.BuildingName,
		LandPlot:      data.LandPlot,
		City:          data.City,
		State:         data.State,
		PostalCode:    data.PostalCode,
		Country:       data.Country,
		CountryCode:   data.CountryCode,
		Lines:         data.Lines,
		Latitude:      data.Location.Lat(),
		Longitude:     data.Location.Lon(),
		NormalizedKey: data.NormalizedKey,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}
