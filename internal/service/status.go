package service

//go:generate mockgen -source=status.go -destination=mocks/status_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shenikar/civic_reporting_system/internal/models"
	"github.com/shenikar/civic_reporting_system/pkg/apperr"
	"github.com/sirupsen/logrus"
)

const (
	opSetStatus = "complaint.status.set"

	titleComplaintAssigned = "Complaint assigned"
	titleComplaintResolved = "Complaint resolved"
)

// ComplaintStateMachine проверяет и применяет смену статуса обращения
type ComplaintStateMachine interface {
	SetStatus(ctx context.Context, complaintID uuid.UUID, newStatus string) (*models.Complaint, error)
}

type complaintStateMachine struct {
	complaints    ComplaintRepository
	cache         ComplaintCache
	notifications NotificationService
	logger        *logrus.Logger
}

func NewComplaintStateMachine(
	complaints ComplaintRepository,
	cache ComplaintCache,
	notifications NotificationService,
	logger *logrus.Logger,
) ComplaintStateMachine {
	return &complaintStateMachine{
		complaints:    complaints,
		cache:         cache,
		notifications: notifications,
		logger:        logger,
	}
}

// SetStatus применяет новый статус. Переход проверяется на заблокированной строке,
// а нагрузка офиса освобождается в той же транзакции, что и запись статуса, поэтому
// терминальный статус остается конечным и декремент выполняется один раз.
func (m *complaintStateMachine) SetStatus(ctx context.Context, complaintID uuid.UUID, newStatus string) (*models.Complaint, error) {
	log := m.logger.WithFields(logrus.Fields{
		"service":      "complaint_status",
		"method":       "SetStatus",
		"complaint_id": complaintID,
		"new_status":   newStatus,
	})

	status, err := models.ParseStatus(newStatus)
	if err != nil {
		log.WithError(err).Warn("Rejected unknown status")
		return nil, apperr.Wrap(apperr.KindValidation, "invalid status", err).WithOp(opSetStatus)
	}

	change, err := m.complaints.TransitionStatus(ctx, complaintID, status, transitionGuard(status))
	if err != nil {
		if kind := apperr.GetKind(err); kind == apperr.KindValidation || kind == apperr.KindNotFound {
			log.WithError(err).Warn("Rejected status update")
			return nil, err
		}
		log.WithError(err).Error("Failed to update complaint status in repository")
		return nil, fmt.Errorf("service: could not update complaint status: %w", err)
	}
	complaint := change.Complaint

	if m.cache != nil {
		if err := m.cache.InvalidateComplaintCache(ctx, complaintID); err != nil {
			log.WithError(err).Warn("Failed to invalidate complaint cache")
		}
	}

	if change.ReleasedOfficeID != nil {
		log.WithField("office_id", *change.ReleasedOfficeID).Info("Office workload released")
	}

	if change.Previous != status {
		m.notifyOwner(ctx, log, complaint)
	}

	log.WithField("previous_status", change.Previous).Info("Complaint status updated")
	return complaint, nil
}

// transitionGuard проверяет переход относительно заблокированного состояния строки
func transitionGuard(next models.Status) models.StatusGuard {
	return func(current *models.Complaint) (*uuid.UUID, error) {
		if err := models.ValidateTransition(current.Status, next); err != nil {
			return nil, apperr.Wrap(apperr.KindValidation, "invalid status transition", err).WithOp(opSetStatus)
		}
		if models.ReleasesWorkload(current.Status, next, current) {
			return current.AssignedOfficeID, nil
		}
		return nil, nil
	}
}

func (m *complaintStateMachine) notifyOwner(ctx context.Context, log *logrus.Entry, complaint *models.Complaint) {
	var title, message string
	switch complaint.Status {
	case models.StatusAssigned:
		title = titleComplaintAssigned
		message = fmt.Sprintf("Your complaint %q has been assigned to a municipal office.", complaint.Title)
	case models.StatusResolved:
		title = titleComplaintResolved
		message = fmt.Sprintf("Your complaint %q has been resolved. Thank you for reporting it.", complaint.Title)
	default:
		return
	}

	complaintID := complaint.ID
	if _, err := m.notifications.Send(ctx, complaint.ReportedBy, title, message, &complaintID); err != nil {
		log.WithError(err).Warn("Failed to notify complaint owner about status change")
	}
}
