package impl

import (
	"context"
	"testing"

	"homiio/internal/domain/entity"
	domainerrors "homiio/internal/domain/errors"
	"homiio/internal/domain/repository"
	mockRepo "homiio/internal/mocks/repository"
	mockSvc "homiio/internal/mocks/service"
	"homiio/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestPropertyService(t *testing.T) (*mockRepo.MockTransactionManager, *mockSvc.MockQRCodeService, usecase.PropertyUsecase) {
	t.Helper()

	txManager := mockRepo.NewMockTransactionManager(t)
	qrService := mockSvc.NewMockQRCodeService(t)
	service := NewPropertyService(PropertyServiceParams{
		TxManager:     txManager,
		QRCodeService: qrService,
		Logger:        newDiscardLogger(),
	})

	return txManager, qrService, service
}

func TestPropertyService_CreateProperty_ResolvesAddressInSameTransaction(t *testing.T) {
	txManager, _, service := newTestPropertyService(t)
	ctx := context.Background()
	ownerID := uuid.New()

	input := &usecase.CreatePropertyInput{
		Title:      "Bright loft in the old town",
		RentAmount: 1450,
		Currency:   "EUR",
		Address:    *madridInput(),
	}
	key := input.Address.Normalize().ComputeNormalizedKey()

	canonical := &entity.Address{ID: uuid.New(), NormalizedKey: key}

	expectExecute(t, txManager, func(factory *mockRepo.MockRepositoryFactory) {
		addressRepo := mockRepo.NewMockAddressRepository(t)
		propertyRepo := mockRepo.NewMockPropertyRepository(t)
		factory.EXPECT().AddressRepo().Return(addressRepo)
		factory.EXPECT().PropertyRepo().Return(propertyRepo)

		addressRepo.EXPECT().
			FindAddressByNormalizedKey(mock.Anything, key).
			Return(canonical, nil)
		propertyRepo.EXPECT().
			CreateProperty(mock.Anything, mock.AnythingOfType("*entity.Property")).
			Run(func(_ context.Context, property *entity.Property) {
				assert.Equal(t, canonical.ID, property.AddressID)
				assert.Equal(t, ownerID, property.OwnerID)
				assert.Equal(t, entity.PropertyStatusActive, property.Status)
			}).
			Return(nil)
	})

	created, err := service.CreateProperty(ctx, ownerID, input)
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, canonical.ID, created.AddressID)
	assert.Equal(t, "Bright loft in the old town", created.Title)
}

func TestPropertyService_CreateProperty_MissingCoordinatesAbortsTransaction(t *testing.T) {
	txManager, _, service := newTestPropertyService(t)
	ctx := context.Background()

	input := &usecase.CreatePropertyInput{
		Title:      "No coordinates",
		RentAmount: 900,
		Currency:   "EUR",
		Address:    entity.AddressInput{Street: "Somewhere", City: "Madrid"},
	}

	expectExecute(t, txManager, func(factory *mockRepo.MockRepositoryFactory) {
		// Coordinates are checked before any repository is touched, so no
		// expectations are set on the factory.
	})

	created, err := service.CreateProperty(ctx, uuid.New(), input)
	assert.Nil(t, created)
	assert.True(t, errors.Is(err, domainerrors.ErrCoordinatesRequired))
}

func TestPropertyService_GetProperty_NotFound(t *testing.T) {
	txManager, _, service := newTestPropertyService(t)
	ctx := context.Background()
	id := uuid.New()

	expectExecute(t, txManager, func(factory *mockRepo.MockRepositoryFactory) {
		propertyRepo := mockRepo.NewMockPropertyRepository(t)
		factory.EXPECT().PropertyRepo().Return(propertyRepo)
		propertyRepo.EXPECT().
			FindPropertyByID(mock.Anything, id).
			Return(nil, repository.ErrPropertyNotFound)
	})

	found, err := service.GetProperty(ctx, id)
	assert.Nil(t, found)
	assert.True(t, errors.Is(err, domainerrors.ErrPropertyNotFound))
}

func TestPropertyService_GenerateShareQR(t *testing.T) {
	txManager, qrService, service := newTestPropertyService(t)
	ctx := context.Background()
	id := uuid.New()

	expectExecute(t, txManager, func(factory *mockRepo.MockRepositoryFactory) {
		propertyRepo := mockRepo.NewMockPropertyRepository(t)
		factory.EXPECT().PropertyRepo().Return(propertyRepo)
		propertyRepo.EXPECT().
			FindPropertyByID(mock.Anything, id).
			Return(&entity.Property{ID: id}, nil)
	})

	qrService.EXPECT().
		GenerateShareQR(id).
		Return([]byte{0x89, 0x50, 0x4E, 0x47}, nil)

	qrBytes, err := service.GenerateShareQR(ctx, id)
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)
}

func TestPropertyService_GenerateShareQR_PropertyMissing(t *testing.T) {
	txManager, _, service := newTestPropertyService(t)
	ctx := context.Background()
	id := uuid.New()

	expectExecute(t, txManager, func(factory *mockRepo.MockRepositoryFactory) {
		propertyRepo := mockRepo.NewMockPropertyRepository(t)
		factory.EXPECT().PropertyRepo().Return(propertyRepo)
		propertyRepo.EXPECT().
			FindPropertyByID(mock.Anything, id).
			Return(nil, repository.ErrPropertyNotFound)
	})

	qrBytes, err := service.GenerateShareQR(ctx, id)
	assert.Nil(t, qrBytes)
	assert.True(t, errors.Is(err, domainerrors.ErrPropertyNotFound))
}
