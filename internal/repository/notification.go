package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/civic_reporting_system/internal/models"
	"github.com/shenikar/civic_reporting_system/internal/service"
	"github.com/shenikar/civic_reporting_system/pkg/apperr"
)

type NotificationRepository struct {
	db *pgxpool.Pool
}

func NewNotificationRepository(db *pgxpool.Pool) service.NotificationRepository {
	return &NotificationRepository{db: db}
}

// CreateIfNotRecent сериализует конкурентные вставки одинакового уведомления
// через advisory lock на ключ (user, complaint, title, message).
func (r *NotificationRepository) CreateIfNotRecent(ctx context.Context, n *models.Notification, window time.Duration) (bool, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to begin notification transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	complaintKey := ""
	if n.ComplaintID != nil {
		complaintKey = n.ComplaintID.String()
	}
	lockKey := n.UserID + "\x00" + complaintKey + "\x00" + n.Title + "\x00" + n.Message
	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtextextended($1, 0));`, lockKey); err != nil {
		return false, fmt.Errorf("failed to acquire notification lock: %w", err)
	}

	var exists bool
	err = tx.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM notifications
			WHERE user_id = $1
				AND complaint_id IS NOT DISTINCT FROM $2
				AND title = $3
				AND message = $4
				AND created_at >= NOW() - make_interval(secs => $5)
		);
	`, n.UserID, n.ComplaintID, n.Title, n.Message, window.Seconds()).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check recent notifications: %w", err)
	}
	if exists {
		return false, nil
	}

	err = tx.QueryRow(ctx, `
		INSERT INTO notifications (user_id, complaint_id, title, message)
		VALUES ($1, $2, $3, $4)
		RETURNING id, read, created_at;
	`, n.UserID, n.ComplaintID, n.Title, n.Message).Scan(&n.ID, &n.Read, &n.CreatedAt)
	if err != nil {
		return false, fmt.Errorf("failed to create notification: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return false, fmt.Errorf("failed to commit notification transaction: %w", err)
	}
	return true, nil
}

// ListByUser возвращает страницу уведомлений и общее их количество
func (r *NotificationRepository) ListByUser(ctx context.Context, userID string, limit, offset int) ([]*models.Notification, int, error) {
	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM notifications WHERE user_id = $1;`, userID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count notifications: %w", err)
	}

	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, complaint_id, title, message, read, created_at
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC, id
		LIMIT $2 OFFSET $3;
	`, userID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list notifications: %w", err)
	}
	defer rows.Close()

	notifications := make([]*models.Notification, 0)
	for rows.Next() {
		n := &models.Notification{}
		if err := rows.Scan(&n.ID, &n.UserID, &n.ComplaintID, &n.Title, &n.Message, &n.Read, &n.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("failed to scan notification row: %w", err)
		}
		notifications = append(notifications, n)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error list iteration: %w", err)
	}
	return notifications, total, nil
}

func (r *NotificationRepository) CountUnread(ctx context.Context, userID string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM notifications WHERE user_id = $1 AND read = FALSE;`, userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}
	return count, nil
}

// MarkRead помечает уведомление прочитанным только для его владельца
func (r *NotificationRepository) MarkRead(ctx context.Context, userID string, id uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, `UPDATE notifications SET read = TRUE WHERE id = $1 AND user_id = $2;`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperr.NotFound(fmt.Sprintf("notification with id %s not found", id)).WithOp("notification.mark_read")
	}
	return nil
}

func (r *NotificationRepository) MarkAllRead(ctx context.Context, userID string) (int64, error) {
	cmdTag, err := r.db.Exec(ctx, `UPDATE notifications SET read = TRUE WHERE user_id = $1 AND read = FALSE;`, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to mark notifications read: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}
