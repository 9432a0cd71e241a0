package impl

import (
	"context"
	"testing"
	"time"

	"homiio/internal/domain/entity"
	domainerrors "homiio/internal/domain/errors"
	"homiio/internal/domain/service"
	mockSvc "homiio/internal/mocks/service"
	"homiio/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestCoordinator(t *testing.T) (*mockSvc.MockSavedPropertyAPI, usecase.SavedPropertyCoordinator) {
	t.Helper()

	api := mockSvc.NewMockSavedPropertyAPI(t)
	coordinator := NewSavedPropertyCoordinator(CoordinatorParams{
		API:    api,
		Logger: newDiscardLogger(),
	})

	return api, coordinator
}

// hydrateCoordinator seeds local state through Refresh with a server snapshot.
func hydrateCoordinator(t *testing.T, api *mockSvc.MockSavedPropertyAPI, coordinator usecase.SavedPropertyCoordinator, snapshot *service.SavedPropertyList) {
	t.Helper()

	api.EXPECT().List(mock.Anything).Return(snapshot, nil).Once()
	require.NoError(t, coordinator.Refresh(context.Background()))
}

func snapshotWithFolder(folder *entity.SavedPropertyFolder, properties ...*entity.SavedProperty) *service.SavedPropertyList {
	return &service.SavedPropertyList{
		Properties: properties,
		Folders:    []*entity.SavedPropertyFolder{folder},
	}
}

func TestCoordinator_SaveProperty_AdoptsServerRecord(t *testing.T) {
	api, coordinator := newTestCoordinator(t)
	ctx := context.Background()
	propertyID := uuid.New()
	folderID := uuid.New()

	hydrateCoordinator(t, api, coordinator, snapshotWithFolder(
		&entity.SavedPropertyFolder{ID: folderID, Name: "Beach", PropertyCount: 0},
	))

	stored := &entity.SavedProperty{
		ID:         uuid.New(),
		ProfileID:  uuid.New(),
		PropertyID: propertyID,
		FolderID:   &folderID,
		Notes:      "sea view",
		AddedAt:    time.Now(),
	}
	api.EXPECT().
		Save(mock.Anything, propertyID, &folderID, "sea view").
		Return(stored, nil).
		Once()

	require.NoError(t, coordinator.SaveProperty(ctx, propertyID, &folderID, "sea view"))

	assert.True(t, coordinator.IsSaved(propertyID))
	assert.False(t, coordinator.IsSaving(propertyID))

	saved := coordinator.SavedProperties()
	require.Len(t, saved, 1)
	assert.Equal(t, stored.ID, saved[0].ID)
	assert.Equal(t, stored.ProfileID, saved[0].ProfileID)

	folders := coordinator.Folders()
	require.Len(t, folders, 1)
	assert.Equal(t, int64(1), folders[0].PropertyCount)
}

func TestCoordinator_SaveProperty_RollsBackOnFailure(t *testing.T) {
	api, coordinator := newTestCoordinator(t)
	ctx := context.Background()
	propertyID := uuid.New()
	folderID := uuid.New()

	hydrateCoordinator(t, api, coordinator, snapshotWithFolder(
		&entity.SavedPropertyFolder{ID: folderID, Name: "Beach", PropertyCount: 0},
	))

	api.EXPECT().
		Save(mock.Anything, propertyID, &folderID, "").
		Return(nil, domainerrors.ErrNetworkUnavailable).
		Once()

	err := coordinator.SaveProperty(ctx, propertyID, &folderID, "")
	require.ErrorIs(t, err, domainerrors.ErrNetworkUnavailable)

	assert.False(t, coordinator.IsSaved(propertyID))
	assert.False(t, coordinator.IsSaving(propertyID))
	assert.Empty(t, coordinator.SavedProperties())

	folders := coordinator.Folders()
	require.Len(t, folders, 1)
	assert.Equal(t, int64(0), folders[0].PropertyCount)
}

func TestCoordinator_SaveProperty_ReSaveRollbackRestoresPriorFolder(t *testing.T) {
	api, coordinator := newTestCoordinator(t)
	ctx := context.Background()
	propertyID := uuid.New()
	oldFolderID := uuid.New()
	newFolderID := uuid.New()

	prior := &entity.SavedProperty{
		ID:         uuid.New(),
		PropertyID: propertyID,
		FolderID:   &oldFolderID,
		AddedAt:    time.Now().Add(-time.Hour),
	}
	api.EXPECT().List(mock.Anything).Return(&service.SavedPropertyList{
		Properties: []*entity.SavedProperty{prior},
		Folders: []*entity.SavedPropertyFolder{
			{ID: oldFolderID, Name: "Old", PropertyCount: 1},
			{ID: newFolderID, Name: "New", PropertyCount: 0},
		},
	}, nil).Once()
	require.NoError(t, coordinator.Refresh(ctx))

	api.EXPECT().
		Save(mock.Anything, propertyID, &newFolderID, "moving").
		Return(nil, domainerrors.ErrRemoteServer).
		Once()

	err := coordinator.SaveProperty(ctx, propertyID, &newFolderID, "moving")
	require.Error(t, err)

	// Prior record and both folder counts are restored exactly.
	saved := coordinator.SavedProperties()
	require.Len(t, saved, 1)
	assert.Equal(t, prior.ID, saved[0].ID)
	require.NotNil(t, saved[0].FolderID)
	assert.Equal(t, oldFolderID, *saved[0].FolderID)

	for _, folder := range coordinator.Folders() {
		switch folder.ID {
		case oldFolderID:
			assert.Equal(t, int64(1), folder.PropertyCount)
		case newFolderID:
			assert.Equal(t, int64(0), folder.PropertyCount)
		}
	}
}

func TestCoordinator_SaveProperty_ReSaveSameFolderKeepsCount(t *testing.T) {
	api, coordinator := newTestCoordinator(t)
	ctx := context.Background()
	propertyID := uuid.New()
	folderID := uuid.New()

	prior := &entity.SavedProperty{
		ID:         uuid.New(),
		PropertyID: propertyID,
		FolderID:   &folderID,
		AddedAt:    time.Now().Add(-time.Hour),
	}
	hydrateCoordinator(t, api, coordinator, snapshotWithFolder(
		&entity.SavedPropertyFolder{ID: folderID, Name: "Beach", PropertyCount: 1},
		prior,
	))

	stored := &entity.SavedProperty{
		ID:         prior.ID,
		PropertyID: propertyID,
		FolderID:   &folderID,
		Notes:      "updated notes",
		AddedAt:    prior.AddedAt,
	}
	api.EXPECT().
		Save(mock.Anything, propertyID, &folderID, "updated notes").
		Return(stored, nil).
		Once()

	require.NoError(t, coordinator.SaveProperty(ctx, propertyID, &folderID, "updated notes"))

	// Re-saving into the folder the property is already in must not inflate
	// the count.
	saved := coordinator.SavedProperties()
	require.Len(t, saved, 1)
	assert.Equal(t, "updated notes", saved[0].Notes)

	folders := coordinator.Folders()
	require.Len(t, folders, 1)
	assert.Equal(t, int64(1), folders[0].PropertyCount)
}

func TestCoordinator_SaveProperty_InFlightGuardBlocksSecondMutation(t *testing.T) {
	api, coordinator := newTestCoordinator(t)
	ctx := context.Background()
	propertyID := uuid.New()

	stored := &entity.SavedProperty{ID: uuid.New(), PropertyID: propertyID, AddedAt: time.Now()}
	api.EXPECT().
		Save(mock.Anything, propertyID, mock.Anything, "").
		RunAndReturn(func(context.Context, uuid.UUID, *uuid.UUID, string) (*entity.SavedProperty, error) {
			// Re-entrant mutations while the first call is on the wire must
			// be rejected without reaching the backend.
			assert.True(t, coordinator.IsSaving(propertyID))
			assert.ErrorIs(t, coordinator.SaveProperty(ctx, propertyID, nil, ""), domainerrors.ErrMutationInFlight)
			assert.ErrorIs(t, coordinator.UnsaveProperty(ctx, propertyID), domainerrors.ErrMutationInFlight)

			return stored, nil
		}).
		Once()

	require.NoError(t, coordinator.SaveProperty(ctx, propertyID, nil, ""))
	assert.False(t, coordinator.IsSaving(propertyID))
}

func TestCoordinator_UnsaveProperty_RemovesAndDecrements(t *testing.T) {
	api, coordinator := newTestCoordinator(t)
	ctx := context.Background()
	propertyID := uuid.New()
	folderID := uuid.New()

	hydrateCoordinator(t, api, coordinator, snapshotWithFolder(
		&entity.SavedPropertyFolder{ID: folderID, Name: "Beach", PropertyCount: 1},
		&entity.SavedProperty{ID: uuid.New(), PropertyID: propertyID, FolderID: &folderID, AddedAt: time.Now()},
	))

	api.EXPECT().Unsave(mock.Anything, propertyID).Return(nil).Once()

	require.NoError(t, coordinator.UnsaveProperty(ctx, propertyID))
	assert.False(t, coordinator.IsSaved(propertyID))
	assert.Equal(t, int64(0), coordinator.Folders()[0].PropertyCount)
}

func TestCoordinator_UnsaveProperty_RollbackExactOnDriftedCount(t *testing.T) {
	api, coordinator := newTestCoordinator(t)
	ctx := context.Background()
	propertyID := uuid.New()
	folderID := uuid.New()

	// Server snapshot with a count that drifted below the real membership.
	hydrateCoordinator(t, api, coordinator, snapshotWithFolder(
		&entity.SavedPropertyFolder{ID: folderID, Name: "Beach", PropertyCount: 0},
		&entity.SavedProperty{ID: uuid.New(), PropertyID: propertyID, FolderID: &folderID, AddedAt: time.Now()},
	))

	api.EXPECT().Unsave(mock.Anything, propertyID).Return(domainerrors.ErrNetworkUnavailable).Once()

	err := coordinator.UnsaveProperty(ctx, propertyID)
	require.ErrorIs(t, err, domainerrors.ErrNetworkUnavailable)

	// The decrement and its rollback cancel exactly: the drifted zero is
	// restored, not inflated to one.
	assert.True(t, coordinator.IsSaved(propertyID))
	assert.Equal(t, int64(0), coordinator.Folders()[0].PropertyCount)
}

func TestCoordinator_Folders_ClampsDriftedCountForDisplay(t *testing.T) {
	api, coordinator := newTestCoordinator(t)
	ctx := context.Background()
	propertyID := uuid.New()
	folderID := uuid.New()

	hydrateCoordinator(t, api, coordinator, snapshotWithFolder(
		&entity.SavedPropertyFolder{ID: folderID, Name: "Beach", PropertyCount: 0},
		&entity.SavedProperty{ID: uuid.New(), PropertyID: propertyID, FolderID: &folderID, AddedAt: time.Now()},
	))

	api.EXPECT().Unsave(mock.Anything, propertyID).Return(nil).Once()
	require.NoError(t, coordinator.UnsaveProperty(ctx, propertyID))

	// The raw count went below zero; readers never see the negative value.
	assert.Equal(t, int64(0), coordinator.Folders()[0].PropertyCount)
}

func TestCoordinator_UnsaveProperty_NotSaved(t *testing.T) {
	_, coordinator := newTestCoordinator(t)

	err := coordinator.UnsaveProperty(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrSavedPropertyNotFound)
}

func TestCoordinator_UnsaveProperty_RollsBackOnFailure(t *testing.T) {
	api, coordinator := newTestCoordinator(t)
	ctx := context.Background()
	propertyID := uuid.New()
	folderID := uuid.New()

	hydrateCoordinator(t, api, coordinator, snapshotWithFolder(
		&entity.SavedPropertyFolder{ID: folderID, Name: "Beach", PropertyCount: 1},
		&entity.SavedProperty{ID: uuid.New(), PropertyID: propertyID, FolderID: &folderID, AddedAt: time.Now()},
	))

	api.EXPECT().Unsave(mock.Anything, propertyID).Return(domainerrors.ErrRemoteServer).Once()

	err := coordinator.UnsaveProperty(ctx, propertyID)
	require.Error(t, err)
	assert.True(t, coordinator.IsSaved(propertyID))
	assert.Equal(t, int64(1), coordinator.Folders()[0].PropertyCount)
}

func TestCoordinator_ToggleSave(t *testing.T) {
	api, coordinator := newTestCoordinator(t)
	ctx := context.Background()
	propertyID := uuid.New()

	stored := &entity.SavedProperty{ID: uuid.New(), PropertyID: propertyID, AddedAt: time.Now()}
	api.EXPECT().
		Save(mock.Anything, propertyID, (*uuid.UUID)(nil), "").
		Return(stored, nil).
		Once()
	require.NoError(t, coordinator.ToggleSave(ctx, propertyID))
	assert.True(t, coordinator.IsSaved(propertyID))

	api.EXPECT().Unsave(mock.Anything, propertyID).Return(nil).Once()
	require.NoError(t, coordinator.ToggleSave(ctx, propertyID))
	assert.False(t, coordinator.IsSaved(propertyID))
}

func TestCoordinator_Refresh_OverwritesOptimisticState(t *testing.T) {
	api, coordinator := newTestCoordinator(t)
	ctx := context.Background()
	folderID := uuid.New()

	hydrateCoordinator(t, api, coordinator, snapshotWithFolder(
		&entity.SavedPropertyFolder{ID: folderID, Name: "Beach", PropertyCount: 7},
		&entity.SavedProperty{ID: uuid.New(), PropertyID: uuid.New(), AddedAt: time.Now()},
	))
	require.Len(t, coordinator.SavedProperties(), 1)

	// The second snapshot is server truth and replaces everything local.
	api.EXPECT().List(mock.Anything).Return(&service.SavedPropertyList{}, nil).Once()
	require.NoError(t, coordinator.Refresh(ctx))
	assert.Empty(t, coordinator.SavedProperties())
	assert.Empty(t, coordinator.Folders())
}

func TestCoordinator_SavedProperties_SortedNewestFirst(t *testing.T) {
	api, coordinator := newTestCoordinator(t)

	older := &entity.SavedProperty{ID: uuid.New(), PropertyID: uuid.New(), AddedAt: time.Now().Add(-time.Hour)}
	newer := &entity.SavedProperty{ID: uuid.New(), PropertyID: uuid.New(), AddedAt: time.Now()}
	api.EXPECT().List(mock.Anything).Return(&service.SavedPropertyList{
		Properties: []*entity.SavedProperty{older, newer},
	}, nil).Once()
	require.NoError(t, coordinator.Refresh(context.Background()))

	saved := coordinator.SavedProperties()
	require.Len(t, saved, 2)
	assert.Equal(t, newer.ID, saved[0].ID)
	assert.Equal(t, older.ID, saved[1].ID)
}

func TestCoordinator_Folders_DefaultFirst(t *testing.T) {
	api, coordinator := newTestCoordinator(t)

	custom := &entity.SavedPropertyFolder{ID: uuid.New(), Name: "Beach", CreatedAt: time.Now().Add(-time.Hour)}
	def := &entity.SavedPropertyFolder{ID: uuid.New(), Name: "My Saves", IsDefault: true, CreatedAt: time.Now()}
	api.EXPECT().List(mock.Anything).Return(&service.SavedPropertyList{
		Folders: []*entity.SavedPropertyFolder{custom, def},
	}, nil).Once()
	require.NoError(t, coordinator.Refresh(context.Background()))

	folders := coordinator.Folders()
	require.Len(t, folders, 2)
	assert.True(t, folders[0].IsDefault)
}

func TestCoordinator_MoveToFolder_PartialFailure(t *testing.T) {
	api, coordinator := newTestCoordinator(t)
	ctx := context.Background()
	targetFolderID := uuid.New()
	okID := uuid.New()
	notSavedID := uuid.New()

	okRecord := &entity.SavedProperty{ID: uuid.New(), PropertyID: okID, Notes: "keep these notes", AddedAt: time.Now()}
	api.EXPECT().List(mock.Anything).Return(&service.SavedPropertyList{
		Properties: []*entity.SavedProperty{okRecord},
		Folders:    []*entity.SavedPropertyFolder{{ID: targetFolderID, Name: "Target"}},
	}, nil).Once()
	require.NoError(t, coordinator.Refresh(ctx))

	moved := *okRecord
	moved.FolderID = &targetFolderID
	api.EXPECT().
		Save(mock.Anything, okID, &targetFolderID, "keep these notes").
		Return(&moved, nil).
		Once()

	result, err := coordinator.MoveToFolder(ctx, []uuid.UUID{okID, notSavedID}, &targetFolderID)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{okID}, result.Moved)
	require.Len(t, result.Failed, 1)
	assert.Equal(t, notSavedID, result.Failed[0].PropertyID)
	assert.ErrorIs(t, result.Failed[0].Err, domainerrors.ErrSavedPropertyNotFound)
}

func TestCoordinator_MoveToFolder_UnknownTarget(t *testing.T) {
	_, coordinator := newTestCoordinator(t)
	unknown := uuid.New()

	result, err := coordinator.MoveToFolder(context.Background(), []uuid.UUID{uuid.New()}, &unknown)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrFolderNotFound)
}

func TestCoordinator_CreateFolder_ReplacesProvisionalWithStored(t *testing.T) {
	api, coordinator := newTestCoordinator(t)
	ctx := context.Background()

	input := service.FolderInput{Name: "Downtown", Color: "#FF0000"}
	stored := &entity.SavedPropertyFolder{ID: uuid.New(), Name: "Downtown", Color: "#FF0000"}
	api.EXPECT().CreateFolder(mock.Anything, input).Return(stored, nil).Once()

	created, err := coordinator.CreateFolder(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, stored.ID, created.ID)

	folders := coordinator.Folders()
	require.Len(t, folders, 1)
	assert.Equal(t, stored.ID, folders[0].ID)
}

func TestCoordinator_CreateFolder_FailureRemovesProvisional(t *testing.T) {
	api, coordinator := newTestCoordinator(t)

	input := service.FolderInput{Name: "Downtown"}
	api.EXPECT().CreateFolder(mock.Anything, input).Return(nil, domainerrors.ErrRemoteServer).Once()

	created, err := coordinator.CreateFolder(context.Background(), input)
	require.Error(t, err)
	assert.Nil(t, created)
	assert.Empty(t, coordinator.Folders())
}

func TestCoordinator_UpdateFolder_DefaultRenameRejectedBeforeNetwork(t *testing.T) {
	api, coordinator := newTestCoordinator(t)
	def := &entity.SavedPropertyFolder{ID: uuid.New(), Name: "My Saves", IsDefault: true}

	hydrateCoordinator(t, api, coordinator, snapshotWithFolder(def))

	// No UpdateFolder expectation is set; the mock fails the test if the
	// rejection ever reaches the backend.
	updated, err := coordinator.UpdateFolder(context.Background(), def.ID, service.FolderInput{Name: "Renamed"})
	assert.Nil(t, updated)
	assert.ErrorIs(t, err, domainerrors.ErrDefaultFolderImmutable)
}

func TestCoordinator_UpdateFolder_RollsBackOnFailure(t *testing.T) {
	api, coordinator := newTestCoordinator(t)
	folder := &entity.SavedPropertyFolder{ID: uuid.New(), Name: "Beach", Color: "#0000FF"}

	hydrateCoordinator(t, api, coordinator, snapshotWithFolder(folder))

	input := service.FolderInput{Name: "Coast"}
	api.EXPECT().UpdateFolder(mock.Anything, folder.ID, input).Return(nil, domainerrors.ErrRemoteServer).Once()

	updated, err := coordinator.UpdateFolder(context.Background(), folder.ID, input)
	require.Error(t, err)
	assert.Nil(t, updated)
	assert.Equal(t, "Beach", coordinator.Folders()[0].Name)
}

func TestCoordinator_DeleteFolder_PessimisticAndOrphansLocally(t *testing.T) {
	api, coordinator := newTestCoordinator(t)
	ctx := context.Background()
	folderID := uuid.New()
	propertyID := uuid.New()

	hydrateCoordinator(t, api, coordinator, snapshotWithFolder(
		&entity.SavedPropertyFolder{ID: folderID, Name: "Beach", PropertyCount: 1},
		&entity.SavedProperty{ID: uuid.New(), PropertyID: propertyID, FolderID: &folderID, AddedAt: time.Now()},
	))

	api.EXPECT().DeleteFolder(mock.Anything, folderID).Return(nil).Once()

	require.NoError(t, coordinator.DeleteFolder(ctx, folderID))
	assert.Empty(t, coordinator.Folders())

	saved := coordinator.SavedProperties()
	require.Len(t, saved, 1)
	assert.Nil(t, saved[0].FolderID)
}

func TestCoordinator_DeleteFolder_RemoteFailureKeepsLocalState(t *testing.T) {
	api, coordinator := newTestCoordinator(t)
	folder := &entity.SavedPropertyFolder{ID: uuid.New(), Name: "Beach"}

	hydrateCoordinator(t, api, coordinator, snapshotWithFolder(folder))

	api.EXPECT().DeleteFolder(mock.Anything, folder.ID).Return(domainerrors.ErrRemoteServer).Once()

	err := coordinator.DeleteFolder(context.Background(), folder.ID)
	require.Error(t, err)
	require.Len(t, coordinator.Folders(), 1)
}

func TestCoordinator_DeleteFolder_DefaultRejected(t *testing.T) {
	api, coordinator := newTestCoordinator(t)
	def := &entity.SavedPropertyFolder{ID: uuid.New(), Name: "My Saves", IsDefault: true}

	hydrateCoordinator(t, api, coordinator, snapshotWithFolder(def))

	err := coordinator.DeleteFolder(context.Background(), def.ID)
	assert.ErrorIs(t, err, domainerrors.ErrDefaultFolderImmutable)
}
