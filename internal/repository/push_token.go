package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/civic_reporting_system/internal/service"
)

// PushTokenStore хранит один push-токен на пользователя без срока жизни
type PushTokenStore struct {
	redisClient *redis.Client
}

func NewPushTokenStore(redisClient *redis.Client) service.PushTokenStore {
	return &PushTokenStore{redisClient: redisClient}
}

func pushTokenKey(userID string) string {
	return "push_token:" + userID
}

// GetToken возвращает пустую строку, если токен не зарегистрирован
func (s *PushTokenStore) GetToken(ctx context.Context, userID string) (string, error) {
	token, err := s.redisClient.Get(ctx, pushTokenKey(userID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", fmt.Errorf("failed to get push token: %w", err)
	}
	return token, nil
}

func (s *PushTokenStore) SetToken(ctx context.Context, userID, token string) error {
	if err := s.redisClient.Set(ctx, pushTokenKey(userID), token, 0).Err(); err != nil {
		return fmt.Errorf("failed to set push token: %w", err)
	}
	return nil
}

func (s *PushTokenStore) DeleteToken(ctx context.Context, userID string) error {
	if err := s.redisClient.Del(ctx, pushTokenKey(userID)).Err(); err != nil {
		return fmt.Errorf("failed to delete push token: %w", err)
	}
	return nil
}
