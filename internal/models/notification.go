package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

type Notification struct {
	ID          uuid.UUID  `json:"id"`
	UserID      string     `json:"user_id"`
	ComplaintID *uuid.UUID `json:"complaint_id,omitempty"`
	Title       string     `json:"title"`
	Message     string     `json:"message"`
	Read        bool       `json:"read"`
	CreatedAt   time.Time  `json:"created_at"`
}

// Коды результата push-доставки
const (
	PushReasonSent          = "push_sent"
	PushReasonFailed        = "push_failed"
	PushReasonNoToken       = "no_push_token"
	PushReasonNotConfigured = "push_not_configured"
	PushReasonDuplicate     = "duplicate_notification"
)

// SendResult - итог NotificationService.Send
type SendResult struct {
	Stored       bool          `json:"stored"`
	Notification *Notification `json:"notification,omitempty"`
	PushReason   string        `json:"push_reason"`
}

// PushMessage - сообщение для внешнего push-провайдера
type PushMessage struct {
	To    string            `json:"to"`
	Title string            `json:"title"`
	Body  string            `json:"body"`
	Data  map[string]string `json:"data,omitempty"`
	Sound string            `json:"sound,omitempty"`
}

// ErrPushTokenInvalid - провайдер сообщил, что токен больше не принадлежит устройству
var ErrPushTokenInvalid = errors.New("push token is no longer registered")
