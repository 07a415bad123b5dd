package service

//go:generate mockgen -source=workload.go -destination=mocks/workload_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// WorkloadTracker ведет счетчик активных обращений офиса.
// Каждое обращение дает не больше одного Increment и одного Decrement за жизнь,
// это обеспечивают вызывающие.
type WorkloadTracker interface {
	Increment(ctx context.Context, officeID uuid.UUID) error
	Decrement(ctx context.Context, officeID uuid.UUID) error
}

type workloadTracker struct {
	offices OfficeRepository
	logger  *logrus.Logger
}

func NewWorkloadTracker(offices OfficeRepository, logger *logrus.Logger) WorkloadTracker {
	return &workloadTracker{
		offices: offices,
		logger:  logger,
	}
}

func (t *workloadTracker) Increment(ctx context.Context, officeID uuid.UUID) error {
	log := t.logger.WithFields(logrus.Fields{
		"service":   "workload",
		"method":    "Increment",
		"office_id": officeID,
	})

	if err := t.offices.IncrementWorkload(ctx, officeID); err != nil {
		log.WithError(err).Error("Failed to increment office workload")
		return fmt.Errorf("service: could not increment workload: %w", err)
	}
	log.Debug("Office workload incremented")
	return nil
}

func (t *workloadTracker) Decrement(ctx context.Context, officeID uuid.UUID) error {
	log := t.logger.WithFields(logrus.Fields{
		"service":   "workload",
		"method":    "Decrement",
		"office_id": officeID,
	})

	if err := t.offices.DecrementWorkload(ctx, officeID); err != nil {
		log.WithError(err).Error("Failed to decrement office workload")
		return fmt.Errorf("service: could not decrement workload: %w", err)
	}
	log.Debug("Office workload decremented")
	return nil
}
