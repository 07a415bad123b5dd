package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shenikar/civic_reporting_system/internal/models"
	"github.com/shenikar/civic_reporting_system/internal/service/mocks"
	"github.com/shenikar/civic_reporting_system/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestDuplicateDetector(t *testing.T) (DuplicateDetector, *mocks.MockComplaintRepository) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockComplaintRepository(ctrl)
	return NewDuplicateDetector(repoMock, logger.Discard()), repoMock
}

// expectNearby настраивает оба запроса поиска: для того же автора и для чужих обращений
func expectNearby(repoMock *mocks.MockComplaintRepository, sameUser, crossUser *models.Complaint) {
	repoMock.EXPECT().
		FindNearbyRecent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, q models.DuplicateQuery) (*models.Complaint, error) {
			if q.SameReporter {
				return sameUser, nil
			}
			return crossUser, nil
		}).Times(2)
}

func TestDetect_None(t *testing.T) {
	// Подготовка
	detector, repoMock := newTestDuplicateDetector(t)

	// Ожидания
	expectNearby(repoMock, nil, nil)

	// Действие
	result, err := detector.Detect(context.Background(), "user-a", models.CategoryPothole, models.Point{})

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.DetectionNone, result.Type)
}

func TestDetect_QueriesUseWindowsAndRadius(t *testing.T) {
	detector, repoMock := newTestDuplicateDetector(t)
	location := models.Point{Longitude: 30.3, Latitude: 59.9}

	repoMock.EXPECT().
		FindNearbyRecent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, q models.DuplicateQuery) (*models.Complaint, error) {
			assert.Equal(t, "user-a", q.ReporterID)
			assert.Equal(t, models.CategoryGarbage, q.Category)
			assert.Equal(t, location, q.Location)
			assert.Equal(t, 100.0, q.RadiusMeters)
			if q.SameReporter {
				assert.Equal(t, 24, q.MaxAgeHours)
			} else {
				assert.Equal(t, 48, q.MaxAgeHours)
			}
			return nil, nil
		}).Times(2)

	_, err := detector.Detect(context.Background(), "user-a", models.CategoryGarbage, location)
	require.NoError(t, err)
}

func TestDetect_SameUserRecentWinsOverCrossUser(t *testing.T) {
	detector, repoMock := newTestDuplicateDetector(t)
	own := &models.Complaint{ID: uuid.New(), ReportedBy: "user-a"}
	other := &models.Complaint{ID: uuid.New(), ReportedBy: "user-b"}

	expectNearby(repoMock, own, other)

	result, err := detector.Detect(context.Background(), "user-a", models.CategoryPothole, models.Point{})

	require.NoError(t, err)
	assert.Equal(t, models.DetectionSameUserRecent, result.Type)
	assert.Equal(t, own.ID, result.ExistingComplaintID)
	assert.Nil(t, result.Master)
}

func TestDetect_CrossUserReturnsFoundComplaintAsMaster(t *testing.T) {
	detector, repoMock := newTestDuplicateDetector(t)
	root := &models.Complaint{ID: uuid.New(), ReportedBy: "user-b"}

	expectNearby(repoMock, nil, root)

	result, err := detector.Detect(context.Background(), "user-a", models.CategoryPothole, models.Point{})

	require.NoError(t, err)
	assert.Equal(t, models.DetectionCrossUserDuplicate, result.Type)
	assert.Equal(t, root, result.Master)
}

func TestDetect_CrossUserFollowsMasterOneHop(t *testing.T) {
	// Подготовка
	detector, repoMock := newTestDuplicateDetector(t)
	root := &models.Complaint{ID: uuid.New(), ReportedBy: "user-b"}
	duplicate := &models.Complaint{
		ID:         uuid.New(),
		ReportedBy: "user-c",
		DuplicateInfo: models.DuplicateInfo{
			IsDuplicate:       true,
			MasterComplaintID: ptrUUID(root.ID),
		},
	}

	// Ожидания
	expectNearby(repoMock, nil, duplicate)
	repoMock.EXPECT().GetByID(gomock.Any(), root.ID).Return(root, nil).Times(1)

	// Действие
	result, err := detector.Detect(context.Background(), "user-a", models.CategoryPothole, models.Point{})

	// Проверки: мастер никогда не является дубликатом
	require.NoError(t, err)
	assert.Equal(t, models.DetectionCrossUserDuplicate, result.Type)
	assert.Equal(t, root.ID, result.Master.ID)
	assert.False(t, result.Master.DuplicateInfo.IsDuplicate)
}

func TestDetect_RepositoryError(t *testing.T) {
	detector, repoMock := newTestDuplicateDetector(t)

	repoMock.EXPECT().
		FindNearbyRecent(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("db down")).
		MinTimes(1).MaxTimes(2)

	result, err := detector.Detect(context.Background(), "user-a", models.CategoryPothole, models.Point{})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorContains(t, err, "could not detect duplicates")
}
