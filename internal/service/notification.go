package service

//go:generate mockgen -source=notification.go -destination=mocks/notification_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/civic_reporting_system/internal/models"
	"github.com/shenikar/civic_reporting_system/pkg/apperr"
	"github.com/sirupsen/logrus"
)

// NotificationDedupWindow - одинаковые уведомления в пределах окна не сохраняются повторно
const NotificationDedupWindow = time.Hour

// NotificationService - сохранение уведомлений с дедупликацией и push-доставкой
type NotificationService interface {
	Send(ctx context.Context, userID, title, message string, complaintID *uuid.UUID) (*models.SendResult, error)
	List(ctx context.Context, userID string, page, pageSize int) ([]*models.Notification, int, error)
	CountUnread(ctx context.Context, userID string) (int, error)
	MarkRead(ctx context.Context, userID string, id uuid.UUID) error
	MarkAllRead(ctx context.Context, userID string) (int64, error)
	RegisterPushToken(ctx context.Context, userID, token string) error
}

type notificationService struct {
	repo   NotificationRepository
	tokens PushTokenStore
	push   PushSender
	logger *logrus.Logger
}

// NewNotificationService - push может быть nil, если провайдер не настроен
func NewNotificationService(repo NotificationRepository, tokens PushTokenStore, push PushSender, logger *logrus.Logger) NotificationService {
	return &notificationService{
		repo:   repo,
		tokens: tokens,
		push:   push,
		logger: logger,
	}
}

// Send сохраняет уведомление и пытается отправить push.
// Ошибки push не возвращаются вызывающему, только код причины.
func (s *notificationService) Send(ctx context.Context, userID, title, message string, complaintID *uuid.UUID) (*models.SendResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "notification",
		"method":  "Send",
		"user_id": userID,
		"title":   title,
	})

	if strings.TrimSpace(userID) == "" || strings.TrimSpace(title) == "" || strings.TrimSpace(message) == "" {
		return nil, apperr.Validation("userId, title and message are required").WithOp("notification.send")
	}

	notification := &models.Notification{
		UserID:      userID,
		ComplaintID: complaintID,
		Title:       title,
		Message:     message,
	}

	stored, err := s.repo.CreateIfNotRecent(ctx, notification, NotificationDedupWindow)
	if err != nil {
		log.WithError(err).Error("Failed to store notification")
		return nil, fmt.Errorf("service: could not store notification: %w", err)
	}
	if !stored {
		log.Debug("Identical notification sent within the last hour, skipping")
		return &models.SendResult{Stored: false, PushReason: models.PushReasonDuplicate}, nil
	}

	result := &models.SendResult{
		Stored:       true,
		Notification: notification,
		PushReason:   s.deliverPush(ctx, log, notification),
	}
	log.WithFields(logrus.Fields{
		"notification_id": notification.ID,
		"push_reason":     result.PushReason,
	}).Info("Notification stored")
	return result, nil
}

func (s *notificationService) deliverPush(ctx context.Context, log *logrus.Entry, n *models.Notification) string {
	if s.push == nil {
		return models.PushReasonNotConfigured
	}

	token, err := s.tokens.GetToken(ctx, n.UserID)
	if err != nil {
		log.WithError(err).Warn("Failed to look up push token")
		return models.PushReasonFailed
	}
	if token == "" {
		return models.PushReasonNoToken
	}

	data := map[string]string{"notificationId": n.ID.String()}
	if n.ComplaintID != nil {
		data["complaintId"] = n.ComplaintID.String()
	}
	if err := s.push.Send(ctx, models.PushMessage{
		To:    token,
		Title: n.Title,
		Body:  n.Message,
		Data:  data,
		Sound: "default",
	}); err != nil {
		log.WithError(err).Warn("Push delivery failed")
		if errors.Is(err, models.ErrPushTokenInvalid) {
			if err := s.tokens.DeleteToken(ctx, n.UserID); err != nil {
				log.WithError(err).Warn("Failed to drop stale push token")
			}
		}
		return models.PushReasonFailed
	}
	return models.PushReasonSent
}

func (s *notificationService) List(ctx context.Context, userID string, page, pageSize int) ([]*models.Notification, int, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	items, total, err := s.repo.ListByUser(ctx, userID, pageSize, (page-1)*pageSize)
	if err != nil {
		s.logger.WithError(err).WithField("user_id", userID).Error("Failed to list notifications")
		return nil, 0, fmt.Errorf("service: could not list notifications: %w", err)
	}
	return items, total, nil
}

func (s *notificationService) CountUnread(ctx context.Context, userID string) (int, error) {
	count, err := s.repo.CountUnread(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("service: could not count unread notifications: %w", err)
	}
	return count, nil
}

func (s *notificationService) MarkRead(ctx context.Context, userID string, id uuid.UUID) error {
	if err := s.repo.MarkRead(ctx, userID, id); err != nil {
		return fmt.Errorf("service: could not mark notification read: %w", err)
	}
	return nil
}

func (s *notificationService) MarkAllRead(ctx context.Context, userID string) (int64, error) {
	updated, err := s.repo.MarkAllRead(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("service: could not mark notifications read: %w", err)
	}
	return updated, nil
}

func (s *notificationService) RegisterPushToken(ctx context.Context, userID, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return apperr.Validation("push token is required").WithOp("notification.register_token")
	}
	if err := s.tokens.SetToken(ctx, userID, token); err != nil {
		s.logger.WithError(err).WithField("user_id", userID).Error("Failed to store push token")
		return fmt.Errorf("service: could not store push token: %w", err)
	}
	return nil
}
