package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shenikar/civic_reporting_system/internal/service/mocks"
	"github.com/shenikar/civic_reporting_system/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestWorkloadTracker(t *testing.T) (WorkloadTracker, *mocks.MockOfficeRepository) {
	ctrl := gomock.NewController(t)
	officeRepo := mocks.NewMockOfficeRepository(ctrl)
	return NewWorkloadTracker(officeRepo, logger.Discard()), officeRepo
}

func TestWorkloadTracker_Increment(t *testing.T) {
	tracker, officeRepo := newTestWorkloadTracker(t)
	ctx := context.Background()
	officeID := uuid.New()

	officeRepo.EXPECT().IncrementWorkload(ctx, officeID).Return(nil).Times(1)

	require.NoError(t, tracker.Increment(ctx, officeID))
}

func TestWorkloadTracker_DecrementDelegatesToClampedUpdate(t *testing.T) {
	tracker, officeRepo := newTestWorkloadTracker(t)
	ctx := context.Background()
	officeID := uuid.New()

	// Ограничение снизу нулем выполняется в самом UPDATE, поэтому повторные вызовы безопасны
	officeRepo.EXPECT().DecrementWorkload(ctx, officeID).Return(nil).Times(2)

	require.NoError(t, tracker.Decrement(ctx, officeID))
	require.NoError(t, tracker.Decrement(ctx, officeID))
}

func TestWorkloadTracker_PropagatesRepositoryError(t *testing.T) {
	tracker, officeRepo := newTestWorkloadTracker(t)
	ctx := context.Background()
	officeID := uuid.New()

	officeRepo.EXPECT().IncrementWorkload(ctx, officeID).Return(errors.New("connection reset")).Times(1)

	err := tracker.Increment(ctx, officeID)
	require.Error(t, err)
	assert.ErrorContains(t, err, "could not increment workload")
}
