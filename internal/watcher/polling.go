package watcher

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/shenikar/civic_reporting_system/internal/config"
	"github.com/shenikar/civic_reporting_system/internal/models"
	"github.com/sirupsen/logrus"
)

// DefaultPollInterval - период опроса, если он не задан
const DefaultPollInterval = 30 * time.Second

// UpdatedLister - выборка обращений по окну updated_at
type UpdatedLister interface {
	ListUpdatedBetween(ctx context.Context, from, to time.Time) ([]*models.Complaint, error)
}

// Poller раз в interval выбирает обращения, измененные с прошлого опроса.
// Одновременно выполняется не больше одного опроса, лишние тики пропускаются.
type Poller struct {
	complaints UpdatedLister
	interval   time.Duration
	now        func() time.Time
	logger     *logrus.Logger

	startFrom time.Time
	watermark time.Time
	inFlight  atomic.Bool
}

func NewPoller(complaints UpdatedLister, interval time.Duration, logger *logrus.Logger) *Poller {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &Poller{
		complaints: complaints,
		interval:   interval,
		now:        time.Now,
		logger:     logger,
	}
}

func (p *Poller) Mode() string {
	return config.WatcherModePolling
}

// StartFrom задает начало первого окна опроса. Вызывается до Run, когда опрос
// подхватывает работу упавшей ленты и должен покрыть изменения после ее последнего события.
func (p *Poller) StartFrom(t time.Time) {
	p.startFrom = t
}

func (p *Poller) initialWatermark() time.Time {
	now := p.now()
	if !p.startFrom.IsZero() && p.startFrom.Before(now) {
		return p.startFrom
	}
	return now
}

// Run не возвращает ошибок: сбои опроса логируются, следующий тик пробует снова
func (p *Poller) Run(ctx context.Context, handle HandleFunc) error {
	p.watermark = p.initialWatermark()

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	var wg sync.WaitGroup
	defer wg.Wait()

	p.logger.WithField("interval", p.interval).Info("Polling for complaint updates")
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if !p.inFlight.CompareAndSwap(false, true) {
				p.logger.Debug("Previous poll is still running, skipping tick")
				continue
			}
			wg.Add(1)
			go func() {
				defer wg.Done()
				defer p.inFlight.Store(false)
				p.poll(ctx, handle)
			}()
		}
	}
}

// poll вызывается только под флагом inFlight. Водяной знак сдвигается до запроса,
// поэтому окно, на котором запрос упал, повторно не обрабатывается.
func (p *Poller) poll(ctx context.Context, handle HandleFunc) {
	from := p.watermark
	to := p.now()
	p.watermark = to

	log := p.logger.WithFields(logrus.Fields{
		"component": "watcher",
		"from":      from,
		"to":        to,
	})

	complaints, err := p.complaints.ListUpdatedBetween(ctx, from, to)
	if err != nil {
		log.WithError(err).Error("Failed to poll complaint updates")
		return
	}

	for _, complaint := range complaints {
		if ctx.Err() != nil {
			return
		}
		handle(ctx, complaint)
	}
	if len(complaints) > 0 {
		log.WithField("count", len(complaints)).Debug("Processed polled complaint updates")
	}
}
