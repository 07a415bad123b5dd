package watcher

import (
	"context"
	"fmt"
	"strings"

	"github.com/shenikar/civic_reporting_system/internal/models"
	"github.com/shenikar/civic_reporting_system/internal/service"
	"github.com/sirupsen/logrus"
)

const (
	titlePriorityUpgraded = "Priority upgraded"
	titleFlaggedForReview = "Flagged for review"
)

// reviewPhrases - фразы в priority.reason, по которым AI-сервис помечает обращение для ручной проверки
var reviewPhrases = []string{
	"image does not match",
	"image mismatch",
	"does not match the report",
	"duplicate image",
	"image reused",
	"under review",
	"user under review",
}

// Alert - уведомление, которое нужно отправить автору обращения
type Alert struct {
	Title   string
	Message string
}

// Evaluate проверяет оба условия независимо, поэтому может вернуть два уведомления
func Evaluate(c *models.Complaint) []Alert {
	var alerts []Alert

	if c.Priority.Level == models.PriorityHigh {
		alerts = append(alerts, Alert{
			Title:   titlePriorityUpgraded,
			Message: fmt.Sprintf("Your complaint %q has been marked as high priority.", c.Title),
		})
	}

	if needsReview(c) {
		alerts = append(alerts, Alert{
			Title:   titleFlaggedForReview,
			Message: fmt.Sprintf("Your complaint %q has been flagged for manual review.", c.Title),
		})
	}
	return alerts
}

func needsReview(c *models.Complaint) bool {
	if c.AIMetadata.ReviewRequired || c.AIMetadata.AIDuplicate {
		return true
	}
	reason := strings.ToLower(c.Priority.Reason)
	for _, phrase := range reviewPhrases {
		if strings.Contains(reason, phrase) {
			return true
		}
	}
	return false
}

// NewNotifier возвращает обработчик, который отправляет автору уведомления по Evaluate.
// Ошибки отправки только логируются.
func NewNotifier(notifications service.NotificationService, logger *logrus.Logger) HandleFunc {
	return func(ctx context.Context, complaint *models.Complaint) {
		alerts := Evaluate(complaint)
		if len(alerts) == 0 {
			return
		}

		log := logger.WithFields(logrus.Fields{
			"component":    "watcher",
			"complaint_id": complaint.ID,
		})
		complaintID := complaint.ID
		for _, alert := range alerts {
			result, err := notifications.Send(ctx, complaint.ReportedBy, alert.Title, alert.Message, &complaintID)
			if err != nil {
				log.WithError(err).WithField("title", alert.Title).Warn("Failed to send watcher notification")
				continue
			}
			log.WithFields(logrus.Fields{
				"title":  alert.Title,
				"stored": result.Stored,
			}).Debug("Watcher notification processed")
		}
	}
}
