package service

//go:generate mockgen -source=ports.go -destination=mocks/ports_mock.go -package=mocks

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/civic_reporting_system/internal/models"
)

// ComplaintRepository определяет контракт для работы с бд обращений
type ComplaintRepository interface {
	Create(ctx context.Context, complaint *models.Complaint) error
	// CreateDuplicate в одной транзакции создает дубликат и увеличивает duplicate_count мастера
	CreateDuplicate(ctx context.Context, complaint *models.Complaint, masterID uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Complaint, error)
	ListByReporter(ctx context.Context, reporterID string, page, pageSize int) ([]*models.Complaint, error)
	// TransitionStatus под блокировкой строки проверяет переход через guard, записывает статус
	// и освобождает нагрузку офиса в той же транзакции
	TransitionStatus(ctx context.Context, id uuid.UUID, next models.Status, guard models.StatusGuard) (*models.StatusChange, error)
	// FindNearbyRecent возвращает ближайшее подходящее обращение или nil
	FindNearbyRecent(ctx context.Context, query models.DuplicateQuery) (*models.Complaint, error)
	ListUpdatedBetween(ctx context.Context, from, to time.Time) ([]*models.Complaint, error)
}

// ComplaintCache - кеш обращений для чтения
type ComplaintCache interface {
	GetComplaintFromCache(ctx context.Context, id uuid.UUID) (*models.Complaint, error)
	SetComplaintCache(ctx context.Context, complaint *models.Complaint) error
	InvalidateComplaintCache(ctx context.Context, id uuid.UUID) error
}

// OfficeRepository определяет контракт для работы с муниципальными офисами
type OfficeRepository interface {
	// FindNearestActive возвращает ближайший активный офис в пределах maxDistanceMeters или nil
	FindNearestActive(ctx context.Context, point models.Point, maxDistanceMeters float64) (*models.OfficeCandidate, error)
	// FindNearestActiveMainInZone ищет ближайший активный главный офис зоны или nil
	FindNearestActiveMainInZone(ctx context.Context, point models.Point, zone string, maxDistanceMeters float64) (*models.OfficeCandidate, error)
	IncrementWorkload(ctx context.Context, officeID uuid.UUID) error
	// DecrementWorkload уменьшает нагрузку, не опускаясь ниже нуля
	DecrementWorkload(ctx context.Context, officeID uuid.UUID) error
}

// NotificationRepository определяет контракт хранения уведомлений
type NotificationRepository interface {
	// CreateIfNotRecent сохраняет уведомление, если такого же (user, complaint, title, message)
	// не было за последние window. Возвращает false, если найден дубликат.
	CreateIfNotRecent(ctx context.Context, notification *models.Notification, window time.Duration) (bool, error)
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]*models.Notification, int, error)
	CountUnread(ctx context.Context, userID string) (int, error)
	MarkRead(ctx context.Context, userID string, id uuid.UUID) error
	MarkAllRead(ctx context.Context, userID string) (int64, error)
}

// PushTokenStore хранит зарегистрированные push-токены пользователей
type PushTokenStore interface {
	GetToken(ctx context.Context, userID string) (string, error)
	SetToken(ctx context.Context, userID, token string) error
	DeleteToken(ctx context.Context, userID string) error
}

// PushSender доставляет push-уведомления внешнему провайдеру
type PushSender interface {
	Send(ctx context.Context, message models.PushMessage) error
}

// BlobStorage сохраняет файл и возвращает постоянный публичный URL
type BlobStorage interface {
	Upload(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error)
}
