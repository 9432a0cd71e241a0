package impl

import (
	"context"
	"testing"

	"homiio/internal/domain/entity"
	domainerrors "homiio/internal/domain/errors"
	"homiio/internal/domain/repository"
	mockRepo "homiio/internal/mocks/repository"
	"homiio/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestAddressService(t *testing.T) (*mockRepo.MockTransactionManager, usecase.AddressUsecase) {
	t.Helper()

	txManager := mockRepo.NewMockTransactionManager(t)
	service := NewAddressService(AddressServiceParams{
		TxManager: txManager,
		Logger:    newDiscardLogger(),
	})

	return txManager, service
}

func floatPtr(v float64) *float64 {
	return &v
}

func madridInput() *entity.AddressInput {
	return &entity.AddressInput{
		Street:     "Calle de Alcalá",
		Number:     "42",
		Apartment:  "3B",
		City:       "Madrid",
		PostalCode: "28014",
		Country:    "España",
		Longitude:  floatPtr(-3.6923),
		Latitude:   floatPtr(40.4180),
	}
}

func TestAddressService_ResolveAddress_CreatesOnFirstSight(t *testing.T) {
	txManager, service := newTestAddressService(t)
	ctx := context.Background()
	input := madridInput()
	key := input.Normalize().ComputeNormalizedKey()

	expectExecute(t, txManager, func(factory *mockRepo.MockRepositoryFactory) {
		addressRepo := mockRepo.NewMockAddressRepository(t)
		factory.EXPECT().AddressRepo().Return(addressRepo)

		addressRepo.EXPECT().
			FindAddressByNormalizedKey(mock.Anything, key).
			Return(nil, repository.ErrAddressNotFound)
		addressRepo.EXPECT().
			CreateAddress(mock.Anything, mock.AnythingOfType("*entity.Address")).
			Return(nil)
	})

	resolved, err := service.ResolveAddress(ctx, input)
	require.NoError(t, err)
	require.NotNil(t, resolved)
	assert.Equal(t, key, resolved.NormalizedKey)
	assert.Equal(t, "3B", resolved.Unit)
	assert.Equal(t, "ES", resolved.CountryCode)
	assert.NotEqual(t, uuid.Nil, resolved.ID)
}

func TestAddressService_ResolveAddress_ReturnsExisting(t *testing.T) {
	txManager, service := newTestAddressService(t)
	ctx := context.Background()
	input := madridInput()
	key := input.Normalize().ComputeNormalizedKey()

	existing := &entity.Address{
		ID:            uuid.New(),
		Street:        "Calle de Alcalá",
		City:          "Madrid",
		NormalizedKey: key,
	}

	expectExecute(t, txManager, func(factory *mockRepo.MockRepositoryFactory) {
		addressRepo := mockRepo.NewMockAddressRepository(t)
		factory.EXPECT().AddressRepo().Return(addressRepo)

		addressRepo.EXPECT().
			FindAddressByNormalizedKey(mock.Anything, key).
			Return(existing, nil)
	})

	resolved, err := service.ResolveAddress(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, existing.ID, resolved.ID)
}

func TestAddressService_ResolveAddress_DuplicateKeyRaceRetriesLookup(t *testing.T) {
	txManager, service := newTestAddressService(t)
	ctx := context.Background()
	input := madridInput()
	key := input.Normalize().ComputeNormalizedKey()

	winner := &entity.Address{
		ID:            uuid.New(),
		NormalizedKey: key,
	}

	expectExecute(t, txManager, func(factory *mockRepo.MockRepositoryFactory) {
		addressRepo := mockRepo.NewMockAddressRepository(t)
		factory.EXPECT().AddressRepo().Return(addressRepo)

		// First lookup misses, the insert loses the race, the second
		// lookup returns the concurrent winner.
		addressRepo.EXPECT().
			FindAddressByNormalizedKey(mock.Anything, key).
			Return(nil, repository.ErrAddressNotFound).
			Once()
		addressRepo.EXPECT().
			CreateAddress(mock.Anything, mock.AnythingOfType("*entity.Address")).
			Return(repository.ErrDuplicateAddressKey)
		addressRepo.EXPECT().
			FindAddressByNormalizedKey(mock.Anything, key).
			Return(winner, nil).
			Once()
	})

	resolved, err := service.ResolveAddress(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, winner.ID, resolved.ID)
}

func TestAddressService_ResolveAddress_MissingCoordinates(t *testing.T) {
	_, service := newTestAddressService(t)
	ctx := context.Background()

	input := madridInput()
	input.Latitude = nil

	resolved, err := service.ResolveAddress(ctx, input)
	assert.Nil(t, resolved)
	assert.True(t, errors.Is(err, domainerrors.ErrCoordinatesRequired))
}

func TestAddressService_ResolveAddress_NilInput(t *testing.T) {
	_, service := newTestAddressService(t)

	resolved, err := service.ResolveAddress(context.Background(), nil)
	assert.Nil(t, resolved)
	assert.Error(t, err)
}

func TestAddressService_ResolveAddress_SynonymsConverge(t *testing.T) {
	// The same place submitted with "zip" and with "postcode" resolves to
	// one canonical record.
	zipInput := &entity.AddressInput{
		Street:    "Main St",
		Number:    "7",
		City:      "Springfield",
		Zip:       "62704",
		Country:   "USA",
		Longitude: floatPtr(-89.65),
		Latitude:  floatPtr(39.78),
	}
	postcodeInput := &entity.AddressInput{
		Street:    "Main St",
		Number:    "7",
		City:      "Springfield",
		Postcode:  "62704",
		Country:   "United States",
		Longitude: floatPtr(-89.65),
		Latitude:  floatPtr(39.78),
	}

	zipKey := zipInput.Normalize().ComputeNormalizedKey()
	postcodeKey := postcodeInput.Normalize().ComputeNormalizedKey()
	assert.Equal(t, zipKey, postcodeKey)

	txManager, service := newTestAddressService(t)
	ctx := context.Background()

	canonical := &entity.Address{ID: uuid.New(), NormalizedKey: zipKey}

	expectExecute(t, txManager, func(factory *mockRepo.MockRepositoryFactory) {
		addressRepo := mockRepo.NewMockAddressRepository(t)
		factory.EXPECT().AddressRepo().Return(addressRepo)
		addressRepo.EXPECT().
			FindAddressByNormalizedKey(mock.Anything, zipKey).
			Return(canonical, nil)
	})

	resolved, err := service.ResolveAddress(ctx, postcodeInput)
	require.NoError(t, err)
	assert.Equal(t, canonical.ID, resolved.ID)
}

func TestAddressService_GetAddress_NotFound(t *testing.T) {
	txManager, service := newTestAddressService(t)
	ctx := context.Background()
	id := uuid.New()

	expectExecute(t, txManager, func(factory *mockRepo.MockRepositoryFactory) {
		addressRepo := mockRepo.NewMockAddressRepository(t)
		factory.EXPECT().AddressRepo().Return(addressRepo)
		addressRepo.EXPECT().
			FindAddressByID(mock.Anything, id).
			Return(nil, repository.ErrAddressNotFound)
	})

	found, err := service.GetAddress(ctx, id)
	assert.Nil(t, found)
	assert.True(t, errors.Is(err, domainerrors.ErrAddressNotFound))
}
