// Package watcher отслеживает изменения обращений, которые вносит AI-сервис,
// и создает уведомления для авторов. Источник изменений выбирается один раз
// при старте: лента LISTEN/NOTIFY либо периодический опрос.
package watcher

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/shenikar/civic_reporting_system/internal/models"
	"github.com/sirupsen/logrus"
)

// HandleFunc обрабатывает актуальное состояние измененного обращения
type HandleFunc func(ctx context.Context, complaint *models.Complaint)

// ChangeSource - подписка на изменения обращений.
// Run блокируется до отмены ctx (возвращает nil) или до ошибки источника.
type ChangeSource interface {
	Mode() string
	Run(ctx context.Context, handle HandleFunc) error
}

// checkpointer - источник, который знает момент, до которого изменения уже обработаны
type checkpointer interface {
	Checkpoint() time.Time
}

// resumer - источник, который может начать с заданного момента
type resumer interface {
	StartFrom(t time.Time)
}

// Watcher владеет источником изменений и его жизненным циклом.
// Если основной источник падает, Watcher навсегда переключается на fallback.
type Watcher struct {
	primary  ChangeSource
	fallback ChangeSource
	handle   HandleFunc
	logger   *logrus.Logger

	mu     sync.RWMutex
	mode   string
	cancel context.CancelFunc
	done   chan struct{}
}

// New - fallback может быть nil, если основной источник уже опрос
func New(primary, fallback ChangeSource, handle HandleFunc, logger *logrus.Logger) *Watcher {
	return &Watcher{
		primary:  primary,
		fallback: fallback,
		handle:   handle,
		logger:   logger,
		mode:     primary.Mode(),
	}
}

// Start запускает наблюдение в отдельной горутине. Повторный вызов ничего не делает.
func (w *Watcher) Start(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.cancel != nil {
		return
	}

	runCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.done = make(chan struct{})

	w.logger.WithField("mode", w.mode).Info("Starting complaint watcher...")
	go w.run(runCtx, w.done)
}

func (w *Watcher) run(ctx context.Context, done chan struct{}) {
	defer close(done)

	err := w.primary.Run(ctx, w.handle)
	if ctx.Err() != nil {
		return
	}
	if err == nil {
		err = errors.New("change source stopped unexpectedly")
	}

	log := w.logger.WithError(err).WithField("mode", w.primary.Mode())
	if w.fallback == nil {
		log.Error("Complaint watcher stopped")
		return
	}

	log = log.WithField("fallback_mode", w.fallback.Mode())
	if from, ok := w.resumePoint(); ok {
		w.fallback.(resumer).StartFrom(from)
		log = log.WithField("resume_from", from)
	}
	log.Error("Change source failed, switching to fallback permanently")
	w.setMode(w.fallback.Mode())

	if err := w.fallback.Run(ctx, w.handle); err != nil && ctx.Err() == nil {
		w.logger.WithError(err).WithField("mode", w.fallback.Mode()).Error("Complaint watcher stopped")
	}
}

// resumePoint - последний обработанный основным источником момент, если fallback умеет с него начать
func (w *Watcher) resumePoint() (time.Time, bool) {
	cp, ok := w.primary.(checkpointer)
	if !ok {
		return time.Time{}, false
	}
	if _, ok := w.fallback.(resumer); !ok {
		return time.Time{}, false
	}
	from := cp.Checkpoint()
	return from, !from.IsZero()
}

// Stop отменяет источник и ждет завершения горутины наблюдателя
func (w *Watcher) Stop(ctx context.Context) error {
	w.mu.Lock()
	cancel, done := w.cancel, w.done
	w.cancel = nil
	w.mu.Unlock()

	if cancel == nil {
		return nil
	}
	cancel()

	select {
	case <-done:
		w.logger.Info("Complaint watcher stopped.")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Mode - текущий режим: changefeed или polling
func (w *Watcher) Mode() string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.mode
}

func (w *Watcher) setMode(mode string) {
	w.mu.Lock()
	w.mode = mode
	w.mu.Unlock()
}
