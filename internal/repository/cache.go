package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/civic_reporting_system/internal/models"
	"github.com/shenikar/civic_reporting_system/internal/service"
)

// ComplaintCache хранит карточки обращений в Redis под ключом complaint:<id>
type ComplaintCache struct {
	redisClient *redis.Client
	ttl         time.Duration
}

func NewComplaintCache(redisClient *redis.Client, ttl time.Duration) service.ComplaintCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &ComplaintCache{
		redisClient: redisClient,
		ttl:         ttl,
	}
}

func complaintKey(id uuid.UUID) string {
	return fmt.Sprintf("complaint:%s", id.String())
}

// GetComplaintFromCache возвращает nil, nil при промахе
func (c *ComplaintCache) GetComplaintFromCache(ctx context.Context, id uuid.UUID) (*models.Complaint, error) {
	val, err := c.redisClient.Get(ctx, complaintKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get complaint from cache: %w", err)
	}

	complaint := &models.Complaint{}
	if err := json.Unmarshal(val, complaint); err != nil {
		return nil, fmt.Errorf("failed to unmarshal complaint from cache: %w", err)
	}
	return complaint, nil
}

func (c *ComplaintCache) SetComplaintCache(ctx context.Context, complaint *models.Complaint) error {
	val, err := json.Marshal(complaint)
	if err != nil {
		return fmt.Errorf("failed to marshal complaint for cache: %w", err)
	}
	if err := c.redisClient.Set(ctx, complaintKey(complaint.ID), val, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set complaint in cache: %w", err)
	}
	return nil
}

func (c *ComplaintCache) InvalidateComplaintCache(ctx context.Context, id uuid.UUID) error {
	if err := c.redisClient.Del(ctx, complaintKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate complaint cache: %w", err)
	}
	return nil
}
