package watcher

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shenikar/civic_reporting_system/internal/config"
	"github.com/shenikar/civic_reporting_system/internal/models"
	"github.com/shenikar/civic_reporting_system/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSource либо сразу падает с err, либо работает до отмены контекста
type fakeSource struct {
	mode string
	err  error
	runs int32
}

func (s *fakeSource) Mode() string {
	return s.mode
}

func (s *fakeSource) Run(ctx context.Context, handle HandleFunc) error {
	atomic.AddInt32(&s.runs, 1)
	if s.err != nil {
		return s.err
	}
	<-ctx.Done()
	return nil
}

// checkpointSource - упавшая лента, которая успела обработать события до checkpoint
type checkpointSource struct {
	fakeSource
	checkpoint time.Time
}

func (s *checkpointSource) Checkpoint() time.Time {
	return s.checkpoint
}

// resumableSource запоминает момент, с которого его попросили начать
type resumableSource struct {
	fakeSource
	from atomic.Value
}

func (s *resumableSource) StartFrom(t time.Time) {
	s.from.Store(t)
}

func noopHandle(context.Context, *models.Complaint) {}

func TestWatcher_FallsBackToPollingPermanently(t *testing.T) {
	// Подготовка
	feed := &fakeSource{mode: config.WatcherModeChangeFeed, err: errors.New("connection lost")}
	poller := &fakeSource{mode: config.WatcherModePolling}
	w := New(feed, poller, noopHandle, logger.Discard())
	assert.Equal(t, config.WatcherModeChangeFeed, w.Mode())

	// Действие
	w.Start(context.Background())

	// Проверки
	require.Eventually(t, func() bool { return w.Mode() == config.WatcherModePolling }, time.Second, time.Millisecond)
	require.Eventually(t, func() bool { return atomic.LoadInt32(&poller.runs) == 1 }, time.Second, time.Millisecond)
	require.NoError(t, w.Stop(context.Background()))
	assert.Equal(t, int32(1), atomic.LoadInt32(&feed.runs))
	assert.Equal(t, int32(1), atomic.LoadInt32(&poller.runs))
}

func TestWatcher_StopEndsPrimaryWithoutFallback(t *testing.T) {
	feed := &fakeSource{mode: config.WatcherModeChangeFeed}
	poller := &fakeSource{mode: config.WatcherModePolling}
	w := New(feed, poller, noopHandle, logger.Discard())

	w.Start(context.Background())
	w.Start(context.Background())
	require.Eventually(t, func() bool { return atomic.LoadInt32(&feed.runs) == 1 }, time.Second, time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, w.Stop(ctx))

	assert.Equal(t, int32(1), atomic.LoadInt32(&feed.runs))
	assert.Equal(t, int32(0), atomic.LoadInt32(&poller.runs))
	assert.Equal(t, config.WatcherModeChangeFeed, w.Mode())
}

func TestWatcher_StopWithoutStart(t *testing.T) {
	w := New(&fakeSource{mode: config.WatcherModePolling}, nil, noopHandle, logger.Discard())
	assert.NoError(t, w.Stop(context.Background()))
}

func TestWatcher_PrimaryFailureWithoutFallback(t *testing.T) {
	primary := &fakeSource{mode: config.WatcherModePolling, err: errors.New("boom")}
	w := New(primary, nil, noopHandle, logger.Discard())

	w.Start(context.Background())
	require.Eventually(t, func() bool { return atomic.LoadInt32(&primary.runs) == 1 }, time.Second, time.Millisecond)

	assert.NoError(t, w.Stop(context.Background()))
	assert.Equal(t, config.WatcherModePolling, w.Mode())
}

func TestWatcher_FallbackResumesFromPrimaryCheckpoint(t *testing.T) {
	lastEvent := time.Date(2026, 3, 1, 11, 59, 0, 0, time.UTC)
	feed := &checkpointSource{
		fakeSource: fakeSource{mode: config.WatcherModeChangeFeed, err: errors.New("connection lost")},
		checkpoint: lastEvent,
	}
	poller := &resumableSource{fakeSource: fakeSource{mode: config.WatcherModePolling}}
	w := New(feed, poller, noopHandle, logger.Discard())

	w.Start(context.Background())
	require.Eventually(t, func() bool { return atomic.LoadInt32(&poller.runs) == 1 }, time.Second, time.Millisecond)
	require.NoError(t, w.Stop(context.Background()))

	from, ok := poller.from.Load().(time.Time)
	require.True(t, ok)
	assert.Equal(t, lastEvent, from)
}

func TestWatcher_FallbackWithoutCheckpointStartsFresh(t *testing.T) {
	feed := &checkpointSource{fakeSource: fakeSource{mode: config.WatcherModeChangeFeed, err: errors.New("listen failed")}}
	poller := &resumableSource{fakeSource: fakeSource{mode: config.WatcherModePolling}}
	w := New(feed, poller, noopHandle, logger.Discard())

	w.Start(context.Background())
	require.Eventually(t, func() bool { return atomic.LoadInt32(&poller.runs) == 1 }, time.Second, time.Millisecond)
	require.NoError(t, w.Stop(context.Background()))

	assert.Nil(t, poller.from.Load())
}
