package impl

import (
	"context"
	"testing"

	"homiio/internal/domain/entity"
	"homiio/internal/domain/repository"
	mockRepo "homiio/internal/mocks/repository"
	mockSvc "homiio/internal/mocks/service"
	"homiio/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestSavedPropertyService(t *testing.T) (*mockRepo.MockTransactionManager, *mockSvc.MockEventPublisher, usecase.SavedPropertyUsecase) {
	t.Helper()

	txManager := mockRepo.NewMockTransactionManager(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	service := NewSavedPropertyService(SavedPropertyServiceParams{
		TxManager:      txManager,
		EventPublisher: publisher,
		Config:         newTestConfig(),
		Logger:         newDiscardLogger(),
	})

	return txManager, publisher, service
}

func defaultFolder(profileID uuid.UUID) *entity.SavedPropertyFolder {
	return &entity.SavedPropertyFolder{
		ID:        uuid.New(),
		ProfileID: profileID,
		Name:      "My Saves",
		IsDefault: true,
	}
}

func TestSavedPropertyService_SaveProperty_NewUncategorized(t *testing.T) {
	txManager, publisher, service := newTestSavedPropertyService(t)
	ctx := context.Background()
	profileID := uuid.New()
	propertyID := uuid.New()

	expectExecute(t, txManager, func(factory *mockRepo.MockRepositoryFactory) {
		propertyRepo := mockRepo.NewMockPropertyRepository(t)
		savedRepo := mockRepo.NewMockSavedPropertyRepository(t)
		folderRepo := mockRepo.NewMockFolderRepository(t)
		factory.EXPECT().PropertyRepo().Return(propertyRepo)
		factory.EXPECT().SavedPropertyRepo().Return(savedRepo)
		factory.EXPECT().FolderRepo().Return(folderRepo)

		propertyRepo.EXPECT().
			FindPropertyByID(mock.Anything, propertyID).
			Return(&entity.Property{ID: propertyID}, nil)
		folderRepo.EXPECT().
			FindDefaultFolder(mock.Anything, profileID).
			Return(defaultFolder(profileID), nil)
		savedRepo.EXPECT().
			FindByProfileAndProperty(mock.Anything, profileID, propertyID).
			Return(nil, repository.ErrSavedPropertyNotFound)
		savedRepo.EXPECT().
			CreateSavedProperty(mock.Anything, mock.AnythingOfType("*entity.SavedProperty")).
			Return(nil)
	})

	publisher.EXPECT().
		PublishSavedPropertyEvent(mock.Anything, mock.AnythingOfType("*service.SavedPropertyEvent")).
		Return(nil)

	saved, err := service.SaveProperty(ctx, profileID, &usecase.SaveInput{PropertyID: propertyID})
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, profileID, saved.ProfileID)
	assert.Nil(t, saved.FolderID)
}

func TestSavedPropertyService_SaveProperty_IntoFolderIncrementsCount(t *testing.T) {
	txManager, publisher, service := newTestSavedPropertyService(t)
	ctx := context.Background()
	profileID := uuid.New()
	propertyID := uuid.New()
	folderID := uuid.New()

	expectExecute(t, txManager, func(factory *mockRepo.MockRepositoryFactory) {
		propertyRepo := mockRepo.NewMockPropertyRepository(t)
		savedRepo := mockRepo.NewMockSavedPropertyRepository(t)
		folderRepo := mockRepo.NewMockFolderRepository(t)
		factory.EXPECT().PropertyRepo().Return(propertyRepo)
		factory.EXPECT().SavedPropertyRepo().Return(savedRepo)
		factory.EXPECT().FolderRepo().Return(folderRepo)

		propertyRepo.EXPECT().
			FindPropertyByID(mock.Anything, propertyID).
			Return(&entity.Property{ID: propertyID}, nil)
		folderRepo.EXPECT().
			FindFolderByID(mock.Anything, folderID).
			Return(&entity.SavedPropertyFolder{ID: folderID, ProfileID: profileID, Name: "Beach"}, nil)
		folderRepo.EXPECT().
			FindDefaultFolder(mock.Anything, profileID).
			Return(defaultFolder(profileID), nil)
		savedRepo.EXPECT().
			FindByProfileAndProperty(mock.Anything, profileID, propertyID).
			Return(nil, repository.ErrSavedPropertyNotFound)
		savedRepo.EXPECT().
			CreateSavedProperty(mock.Anything, mock.AnythingOfType("*entity.SavedProperty")).
			Return(nil)
		folderRepo.EXPECT().
			AdjustPropertyCount(mock.Anything, folderID, int64(1)).
			Return(nil)
	})

	publisher.EXPECT().
		PublishSavedPropertyEvent(mock.Anything, mock.AnythingOfType("*service.SavedPropertyEvent")).
		Return(nil)

	saved, err := service.SaveProperty(ctx, profileID, &usecase.SaveInput{
		PropertyID: propertyID,
		FolderID:   &folderID,
	})
	require.NoError(t, err)
	require.NotNil(t, saved.FolderID)
	assert.Equal(t, folderID, *saved.FolderID)
}

func TestSavedPropertyService_SaveProperty_ExistingMovesBetweenFolders(t *testing.T) {
	txManager, publisher, service := newTestSavedPropertyService(t)
	ctx := context.Background()
	profileID := uuid.New()
	propertyID := uuid.New()
	oldFolderID := uuid.New()
	newFolderID := uuid.New()

	existing := &entity.SavedProperty{
		ID:         uuid.New(),
		ProfileID:  profileID,
		PropertyID: propertyID,
		FolderID:   &oldFolderID,
	}

	expectExecute(t, txManager, func(factory *mockRepo.MockRepositoryFactory) {
		propertyRepo := mockRepo.NewMockPropertyRepository(t)
		savedRepo := mockRepo.NewMockSavedPropertyRepository(t)
		folderRepo := mockRepo.NewMockFolderRepository(t)
		factory.EXPECT().PropertyRepo().Return(propertyRepo)
		factory.EXPECT().SavedPropertyRepo().Return(savedRepo)
		factory.EXPECT().FolderRepo().Return(folderRepo)

		propertyRepo.EXPECT().
			FindPropertyByID(mock.Anything, propertyID).
			Return(&entity.Property{ID: propertyID}, nil)
		folderRepo.EXPECT().
			FindFolderByID(mock.Anything, newFolderID).
			Return(&entity.SavedPropertyFolder{ID: newFolderID, ProfileID: profileID}, nil)
		folderRepo.EXPECT().
			FindDefaultFolder(mock.Anything, profileID).
			Return(defaultFolder(profileID), nil)
		savedRepo.EXPECT().
			FindByProfileAndProperty(mock.Anything, profileID, propertyID).
			Return(existing, nil)
		savedRepo.EXPECT().
			UpdateSavedProperty(mock.Anything, mock.AnythingOfType("*entity.SavedProperty")).
			Return(nil)
		folderRepo.EXPECT().
			AdjustPropertyCount(mock.Anything, oldFolderID, int64(-1)).
			Return(nil)
		folderRepo.EXPECT().
			AdjustPropertyCount(mock.Anything, newFolderID, int64(1)).
			Return(nil)
	})

	publisher.EXPECT().
		PublishSavedPropertyEvent(mock.Anything, mock.AnythingOfType("*service.SavedPropertyEvent")).
		Return(nil)

	saved, err := service.SaveProperty(ctx, profileID, &usecase.SaveInput{
		PropertyID: propertyID,
		FolderID:   &newFolderID,
	})
	require.NoError(t, err)
	require.NotNil(t, saved.FolderID)
	assert.Equal(t, newFolderID, *saved.FolderID)
}

func TestSavedPropertyService_SaveProperty_ReSaveSameFolderLeavesCountAlone(t *testing.T) {
	txManager, publisher, service := newTestSavedPropertyService(t)
	ctx := context.Background()
	profileID := uuid.New()
	propertyID := uuid.New()
	folderID := uuid.New()

	existing := &entity.SavedProperty{
		ID:         uuid.New(),
		ProfileID:  profileID,
		PropertyID: propertyID,
		FolderID:   &folderID,
	}

	expectExecute(t, txManager, func(factory *mockRepo.MockRepositoryFactory) {
		propertyRepo := mockRepo.NewMockPropertyRepository(t)
		savedRepo := mockRepo.NewMockSavedPropertyRepository(t)
		folderRepo := mockRepo.NewMockFolderRepository(t)
		factory.EXPECT().PropertyRepo().Return(propertyRepo)
		factory.EXPECT().SavedPropertyRepo().Return(savedRepo)
		factory.EXPECT().FolderRepo().Return(folderRepo)

		propertyRepo.EXPECT().
			FindPropertyByID(mock.Anything, propertyID).
			Return(&entity.Property{ID: propertyID}, nil)
		folderRepo.EXPECT().
			FindFolderByID(mock.Anything, folderID).
			Return(&entity.SavedPropertyFolder{ID: folderID, ProfileID: profileID, Name: "Beach"}, nil)
		folderRepo.EXPECT().
			FindDefaultFolder(mock.Anything, profileID).
			Return(defaultFolder(profileID), nil)
		savedRepo.EXPECT().
			FindByProfileAndProperty(mock.Anything, profileID, propertyID).
			Return(existing, nil)
		// No AdjustPropertyCount expectation: re-saving into the same folder
		// must not move the count.
		savedRepo.EXPECT().
			UpdateSavedProperty(mock.Anything, mock.AnythingOfType("*entity.SavedProperty")).
			Return(nil)
	})

	publisher.EXPECT().
		PublishSavedPropertyEvent(mock.Anything, mock.AnythingOfType("*service.SavedPropertyEvent")).
		Return(nil)

	saved, err := service.SaveProperty(ctx, profileID, &usecase.SaveInput{
		PropertyID: propertyID,
		FolderID:   &folderID,
		Notes:      "still great",
	})
	require.NoError(t, err)
	require.NotNil(t, saved.FolderID)
	assert.Equal(t, folderID, *saved.FolderID)
	assert.Equal(t, "still great", saved.Notes)
}

func TestSavedPropertyService_UnsaveProperty_DecrementsFolderCount(t *testing.T) {
	txManager, publisher, service := newTestSavedPropertyService(t)
	ctx := context.Background()
	profileID := uuid.New()
	propertyID := uuid.New()
	folderID := uuid.New()

	existing := &entity.SavedProperty{
		ID:         uuid.New(),
		ProfileID:  profileID,
		PropertyID: propertyID,
		FolderID:   &folderID,
	}

	expectExecute(t, txManager, func(factory *mockRepo.MockRepositoryFactory) {
		savedRepo := mockRepo.NewMockSavedPropertyRepository(t)
		folderRepo := mockRepo.NewMockFolderRepository(t)
		factory.EXPECT().SavedPropertyRepo().Return(savedRepo)
		factory.EXPECT().FolderRepo().Return(folderRepo)

		savedRepo.EXPECT().
			FindByProfileAndProperty(mock.Anything, profileID, propertyID).
			Return(existing, nil)
		savedRepo.EXPECT().
			DeleteSavedProperty(mock.Anything, existing.ID).
			Return(nil)
		folderRepo.EXPECT().
			AdjustPropertyCount(mock.Anything, folderID, int64(-1)).
			Return(nil)
	})

	publisher.EXPECT().
		PublishSavedPropertyEvent(mock.Anything, mock.AnythingOfType("*service.SavedPropertyEvent")).
		Return(nil)

	err := service.UnsaveProperty(ctx, profileID, propertyID)
	require.NoError(t, err)
}

func TestSavedPropertyService_ListSavedProperties_RecomputesCounts(t *testing.T) {
	txManager, _, service := newTestSavedPropertyService(t)
	ctx := context.Background()
	profileID := uuid.New()
	folderID := uuid.New()

	folder := &entity.SavedPropertyFolder{
		ID:            folderID,
		ProfileID:     profileID,
		Name:          "Beach",
		PropertyCount: 99, // drifted value, corrected by the list
	}

	expectExecute(t, txManager, func(factory *mockRepo.MockRepositoryFactory) {
		savedRepo := mockRepo.NewMockSavedPropertyRepository(t)
		folderRepo := mockRepo.NewMockFolderRepository(t)
		factory.EXPECT().SavedPropertyRepo().Return(savedRepo)
		factory.EXPECT().FolderRepo().Return(folderRepo)

		folderRepo.EXPECT().
			FindDefaultFolder(mock.Anything, profileID).
			Return(defaultFolder(profileID), nil)
		savedRepo.EXPECT().
			FindByProfile(mock.Anything, profileID).
			Return([]*entity.SavedProperty{
				{ID: uuid.New(), ProfileID: profileID, PropertyID: uuid.New(), FolderID: &folderID},
				{ID: uuid.New(), ProfileID: profileID, PropertyID: uuid.New(), FolderID: &folderID},
				{ID: uuid.New(), ProfileID: profileID, PropertyID: uuid.New()},
			}, nil)
		folderRepo.EXPECT().
			FindFoldersByProfile(mock.Anything, profileID).
			Return([]*entity.SavedPropertyFolder{folder}, nil)
	})

	output, err := service.ListSavedProperties(ctx, profileID)
	require.NoError(t, err)
	require.Len(t, output.Properties, 3)
	require.Len(t, output.Folders, 1)
	assert.Equal(t, int64(2), output.Folders[0].PropertyCount)
}

func TestSavedPropertyService_MoveToFolder_PartialFailure(t *testing.T) {
	txManager, _, service := newTestSavedPropertyService(t)
	ctx := context.Background()
	profileID := uuid.New()
	targetFolderID := uuid.New()
	okID1 := uuid.New()
	missingID := uuid.New()
	okID2 := uuid.New()

	// Target folder ownership check.
	expectExecute(t, txManager, func(factory *mockRepo.MockRepositoryFactory) {
		folderRepo := mockRepo.NewMockFolderRepository(t)
		factory.EXPECT().FolderRepo().Return(folderRepo)
		folderRepo.EXPECT().
			FindFolderByID(mock.Anything, targetFolderID).
			Return(&entity.SavedPropertyFolder{ID: targetFolderID, ProfileID: profileID}, nil)
	})

	moveExpectation := func(propertyID uuid.UUID, found bool) {
		expectExecute(t, txManager, func(factory *mockRepo.MockRepositoryFactory) {
			savedRepo := mockRepo.NewMockSavedPropertyRepository(t)
			factory.EXPECT().SavedPropertyRepo().Return(savedRepo)

			if !found {
				savedRepo.EXPECT().
					FindByProfileAndProperty(mock.Anything, profileID, propertyID).
					Return(nil, repository.ErrSavedPropertyNotFound)

				return
			}

			folderRepo := mockRepo.NewMockFolderRepository(t)
			factory.EXPECT().FolderRepo().Return(folderRepo)
			savedRepo.EXPECT().
				FindByProfileAndProperty(mock.Anything, profileID, propertyID).
				Return(&entity.SavedProperty{ID: uuid.New(), ProfileID: profileID, PropertyID: propertyID}, nil)
			savedRepo.EXPECT().
				UpdateSavedProperty(mock.Anything, mock.AnythingOfType("*entity.SavedProperty")).
				Return(nil)
			folderRepo.EXPECT().
				AdjustPropertyCount(mock.Anything, targetFolderID, int64(1)).
				Return(nil)
		})
	}
	moveExpectation(okID1, true)
	moveExpectation(missingID, false)
	moveExpectation(okID2, true)

	output, err := service.MoveToFolder(ctx, profileID, &usecase.MoveInput{
		PropertyIDs:    []uuid.UUID{okID1, missingID, okID2},
		TargetFolderID: &targetFolderID,
	})
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{okID1, okID2}, output.Moved)
	require.Len(t, output.Failed, 1)
	assert.Equal(t, missingID, output.Failed[0].PropertyID)
}

func TestSavedPropertyService_CreateFolder_LazilyCreatesDefault(t *testing.T) {
	txManager, _, service := newTestSavedPropertyService(t)
	ctx := context.Background()
	profileID := uuid.New()

	expectExecute(t, txManager, func(factory *mockRepo.MockRepositoryFactory) {
		folderRepo := mockRepo.NewMockFolderRepository(t)
		factory.EXPECT().FolderRepo().Return(folderRepo)

		folderRepo.EXPECT().
			FindDefaultFolder(mock.Anything, profileID).
			Return(nil, repository.ErrFolderNotFound)
		folderRepo.EXPECT().
			CreateFolder(mock.Anything, mock.AnythingOfType("*entity.SavedPropertyFolder")).
			Run(func(_ context.Context, folder *entity.SavedPropertyFolder) {
				assert.True(t, folder.IsDefault)
				assert.Equal(t, "My Saves", folder.Name)
			}).
			Return(nil).
			Once()
		folderRepo.EXPECT().
			FindFoldersByProfile(mock.Anything, profileID).
			Return([]*entity.SavedPropertyFolder{defaultFolder(profileID)}, nil)
		folderRepo.EXPECT().
			CreateFolder(mock.Anything, mock.AnythingOfType("*entity.SavedPropertyFolder")).
			Run(func(_ context.Context, folder *entity.SavedPropertyFolder) {
				assert.False(t, folder.IsDefault)
				assert.Equal(t, "Downtown", folder.Name)
			}).
			Return(nil).
			Once()
	})

	created, err := service.CreateFolder(ctx, profileID, &usecase.CreateFolderInput{Name: "Downtown"})
	require.NoError(t, err)
	assert.Equal(t, "Downtown", created.Name)
}

func TestSavedPropertyService_UpdateFolder_DefaultRenameRejected(t *testing.T) {
	txManager, _, service := newTestSavedPropertyService(t)
	ctx := context.Background()
	profileID := uuid.New()
	folder := defaultFolder(profileID)

	expectExecute(t, txManager, func(factory *mockRepo.MockRepositoryFactory) {
		folderRepo := mockRepo.NewMockFolderRepository(t)
		factory.EXPECT().FolderRepo().Return(folderRepo)
		folderRepo.EXPECT().
			FindFolderByID(mock.Anything, folder.ID).
			Return(folder, nil)
	})

	newName := "Renamed"
	updated, err := service.UpdateFolder(ctx, profileID, folder.ID, &usecase.UpdateFolderInput{Name: &newName})
	assert.Nil(t, updated)
	assert.ErrorContains(t, err, "default folder cannot be modified")
}

func TestSavedPropertyService_DeleteFolder_OrphansMembers(t *testing.T) {
	txManager, _, service := newTestSavedPropertyService(t)
	ctx := context.Background()
	profileID := uuid.New()
	folderID := uuid.New()

	expectExecute(t, txManager, func(factory *mockRepo.MockRepositoryFactory) {
		savedRepo := mockRepo.NewMockSavedPropertyRepository(t)
		folderRepo := mockRepo.NewMockFolderRepository(t)
		factory.EXPECT().SavedPropertyRepo().Return(savedRepo)
		factory.EXPECT().FolderRepo().Return(folderRepo)

		folderRepo.EXPECT().
			FindFolderByID(mock.Anything, folderID).
			Return(&entity.SavedPropertyFolder{ID: folderID, ProfileID: profileID, Name: "Beach"}, nil)
		savedRepo.EXPECT().
			ClearFolderAssignment(mock.Anything, folderID).
			Return(int64(3), nil)
		folderRepo.EXPECT().
			DeleteFolder(mock.Anything, folderID).
			Return(nil)
	})

	err := service.DeleteFolder(ctx, profileID, folderID)
	require.NoError(t, err)
}

func TestSavedPropertyService_DeleteFolder_DefaultRejected(t *testing.T) {
	txManager, _, service := newTestSavedPropertyService(t)
	ctx := context.Background()
	profileID := uuid.New()
	folder := defaultFolder(profileID)

	expectExecute(t, txManager, func(factory *mockRepo.MockRepositoryFactory) {
		folderRepo := mockRepo.NewMockFolderRepository(t)
		factory.EXPECT().FolderRepo().Return(folderRepo)
		folderRepo.EXPECT().
			FindFolderByID(mock.Anything, folder.ID).
			Return(folder, nil)
	})

	err := service.DeleteFolder(ctx, profileID, folder.ID)
	assert.ErrorContains(t, err, "default folder cannot be deleted")
}
