package watcher

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/civic_reporting_system/internal/models"
	"github.com/shenikar/civic_reporting_system/internal/service/mocks"
	"github.com/shenikar/civic_reporting_system/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeClock struct {
	current time.Time
}

func (c *fakeClock) now() time.Time {
	return c.current
}

func (c *fakeClock) advance(d time.Duration) {
	c.current = c.current.Add(d)
}

func TestPoller_HighPriorityNotifiedOnceAcrossTicks(t *testing.T) {
	// Подготовка
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockComplaintRepository(ctrl)
	notifications := mocks.NewMockNotificationService(ctrl)
	clock := &fakeClock{current: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	poller := NewPoller(repo, 30*time.Second, logger.Discard())
	poller.now = clock.now
	poller.watermark = clock.now()
	handle := NewNotifier(notifications, logger.Discard())
	ctx := context.Background()

	t0 := clock.now()
	t1 := t0.Add(30 * time.Second)
	t2 := t1.Add(30 * time.Second)
	upgraded := &models.Complaint{
		ID:         uuid.New(),
		Title:      "Pothole",
		ReportedBy: "user-a",
		Priority:   models.Priority{Level: models.PriorityHigh, AIProcessed: true},
		UpdatedAt:  t0.Add(10 * time.Second),
	}

	// Ожидания
	gomock.InOrder(
		repo.EXPECT().ListUpdatedBetween(ctx, t0, t1).Return([]*models.Complaint{upgraded}, nil),
		repo.EXPECT().ListUpdatedBetween(ctx, t1, t2).Return([]*models.Complaint{}, nil),
	)
	notifications.EXPECT().
		Send(ctx, "user-a", titlePriorityUpgraded, gomock.Any(), &upgraded.ID).
		Return(&models.SendResult{Stored: true}, nil).
		Times(1)

	// Действие
	clock.advance(30 * time.Second)
	poller.poll(ctx, handle)
	clock.advance(30 * time.Second)
	poller.poll(ctx, handle)

	// Проверки
	assert.Equal(t, t2, poller.watermark)
}

func TestPoller_WatermarkAdvancesEvenWhenQueryFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockComplaintRepository(ctrl)
	clock := &fakeClock{current: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	poller := NewPoller(repo, time.Second, logger.Discard())
	poller.now = clock.now
	poller.watermark = clock.now()
	ctx := context.Background()

	t0 := clock.now()
	t1 := t0.Add(time.Second)
	t2 := t1.Add(time.Second)

	gomock.InOrder(
		repo.EXPECT().ListUpdatedBetween(ctx, t0, t1).Return(nil, errors.New("connection reset")),
		repo.EXPECT().ListUpdatedBetween(ctx, t1, t2).Return(nil, nil),
	)

	clock.advance(time.Second)
	poller.poll(ctx, func(context.Context, *models.Complaint) { t.Fatal("unexpected complaint") })
	clock.advance(time.Second)
	poller.poll(ctx, func(context.Context, *models.Complaint) { t.Fatal("unexpected complaint") })

	assert.Equal(t, t2, poller.watermark)
}

func TestPoller_SkipsTicksWhilePollInFlight(t *testing.T) {
	// Подготовка
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockComplaintRepository(ctrl)
	poller := NewPoller(repo, 5*time.Millisecond, logger.Discard())

	var calls int32
	release := make(chan struct{})
	repo.EXPECT().
		ListUpdatedBetween(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, time.Time, time.Time) ([]*models.Complaint, error) {
			atomic.AddInt32(&calls, 1)
			<-release
			return nil, nil
		}).
		AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)

	// Действие: первый опрос висит, пока не закроем release
	go func() { done <- poller.Run(ctx, func(context.Context, *models.Complaint) {}) }()
	require.Eventually(t, func() bool { return atomic.LoadInt32(&calls) == 1 }, time.Second, time.Millisecond)
	time.Sleep(50 * time.Millisecond)

	// Проверки
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))

	cancel()
	close(release)
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("poller did not stop")
	}
}

func TestPoller_DefaultInterval(t *testing.T) {
	poller := NewPoller(nil, 0, logger.Discard())
	assert.Equal(t, DefaultPollInterval, poller.interval)
	assert.Equal(t, "polling", poller.Mode())
}

func TestPoller_StartFromCoversGapBeforeFallback(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockComplaintRepository(ctrl)
	clock := &fakeClock{current: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	poller := NewPoller(repo, 30*time.Second, logger.Discard())
	poller.now = clock.now

	assert.Equal(t, clock.now(), poller.initialWatermark())

	lastEvent := clock.now().Add(-2 * time.Minute)
	poller.StartFrom(lastEvent)
	poller.watermark = poller.initialWatermark()
	assert.Equal(t, lastEvent, poller.watermark)

	ctx := context.Background()
	clock.advance(30 * time.Second)
	repo.EXPECT().ListUpdatedBetween(ctx, lastEvent, clock.now()).Return([]*models.Complaint{}, nil).Times(1)

	poller.poll(ctx, noopHandle)
}

func TestPoller_StartFromInFutureIgnored(t *testing.T) {
	clock := &fakeClock{current: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	poller := NewPoller(nil, 30*time.Second, logger.Discard())
	poller.now = clock.now

	poller.StartFrom(clock.now().Add(time.Hour))

	assert.Equal(t, clock.now(), poller.initialWatermark())
}
