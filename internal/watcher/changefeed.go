package watcher

import (
	"context"
	"encoding/json"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/civic_reporting_system/internal/config"
	"github.com/shenikar/civic_reporting_system/internal/models"
	"github.com/shenikar/civic_reporting_system/pkg/apperr"
	"github.com/sirupsen/logrus"
)

// ChangeChannel - канал pg_notify, в который пишет триггер complaints_notify_change
const ChangeChannel = "complaint_changes"

// ComplaintLookup - чтение полного документа по id события
type ComplaintLookup interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Complaint, error)
}

type notificationWaiter interface {
	WaitForNotification(ctx context.Context) (*pgconn.Notification, error)
}

type changeEvent struct {
	ID uuid.UUID `json:"id"`
	Op string    `json:"op"`
}

// ChangeFeed слушает LISTEN complaint_changes на выделенном соединении пула.
// События обрабатываются последовательно, порядок изменений одного обращения сохраняется.
type ChangeFeed struct {
	pool       *pgxpool.Pool
	complaints ComplaintLookup
	logger     *logrus.Logger
	now        func() time.Time

	// unix nano: момент начала LISTEN, затем updated_at последнего обработанного обращения
	checkpoint atomic.Int64
}

func NewChangeFeed(pool *pgxpool.Pool, complaints ComplaintLookup, logger *logrus.Logger) *ChangeFeed {
	return &ChangeFeed{
		pool:       pool,
		complaints: complaints,
		logger:     logger,
		now:        time.Now,
	}
}

// Checkpoint - момент, до которого изменения уже обработаны; нулевой, если LISTEN не начался
func (f *ChangeFeed) Checkpoint() time.Time {
	ns := f.checkpoint.Load()
	if ns == 0 {
		return time.Time{}
	}
	return time.Unix(0, ns).UTC()
}

// advance сдвигает checkpoint только вперед
func (f *ChangeFeed) advance(t time.Time) {
	if t.IsZero() {
		return
	}
	ns := t.UnixNano()
	for {
		current := f.checkpoint.Load()
		if ns <= current || f.checkpoint.CompareAndSwap(current, ns) {
			return
		}
	}
}

func (f *ChangeFeed) Mode() string {
	return config.WatcherModeChangeFeed
}

func (f *ChangeFeed) Run(ctx context.Context, handle HandleFunc) error {
	conn, err := f.pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("failed to acquire connection for change feed: %w", err)
	}
	defer func() {
		cleanupCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		// соединение с активным LISTEN не должно вернуться в пул
		if _, err := conn.Exec(cleanupCtx, "UNLISTEN *"); err != nil {
			_ = conn.Conn().Close(cleanupCtx)
		}
		conn.Release()
	}()

	if _, err := conn.Exec(ctx, "LISTEN "+ChangeChannel); err != nil {
		return fmt.Errorf("failed to listen on %s: %w", ChangeChannel, err)
	}
	f.advance(f.now())
	f.logger.WithField("channel", ChangeChannel).Info("Listening for complaint changes")

	return f.consume(ctx, conn.Conn(), handle)
}

func (f *ChangeFeed) consume(ctx context.Context, waiter notificationWaiter, handle HandleFunc) error {
	for {
		notification, err := waiter.WaitForNotification(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("change feed interrupted: %w", err)
		}

		var event changeEvent
		if err := json.Unmarshal([]byte(notification.Payload), &event); err != nil {
			f.logger.WithError(err).WithField("payload", notification.Payload).Warn("Skipping malformed change event")
			continue
		}

		complaint, err := f.complaints.GetByID(ctx, event.ID)
		if err != nil {
			if apperr.Is(err, apperr.KindNotFound) {
				continue
			}
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("failed to look up changed complaint %s: %w", event.ID, err)
		}
		handle(ctx, complaint)
		f.advance(complaint.UpdatedAt)
	}
}
