package watcher

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shenikar/civic_reporting_system/internal/config"
	"github.com/sirupsen/logrus"
)

type rowQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// SupportsChangeFeed: LISTEN недоступен на реплике в режиме восстановления,
// а без триггера события просто не будут публиковаться.
func SupportsChangeFeed(ctx context.Context, db rowQuerier) (bool, error) {
	query := `
		SELECT
			NOT pg_is_in_recovery()
			AND EXISTS (
				SELECT 1 FROM pg_trigger
				WHERE tgname = 'complaints_notify_change' AND NOT tgisinternal
			);
	`
	var supported bool
	if err := db.QueryRow(ctx, query).Scan(&supported); err != nil {
		return false, fmt.Errorf("failed to probe change feed support: %w", err)
	}
	return supported, nil
}

// SelectMode выбирает режим наблюдателя один раз при старте
func SelectMode(ctx context.Context, configured string, db rowQuerier, logger *logrus.Logger) string {
	switch configured {
	case config.WatcherModeChangeFeed, config.WatcherModePolling:
		return configured
	}

	supported, err := SupportsChangeFeed(ctx, db)
	if err != nil {
		logger.WithError(err).Warn("Change feed probe failed, falling back to polling")
		return config.WatcherModePolling
	}
	if !supported {
		return config.WatcherModePolling
	}
	return config.WatcherModeChangeFeed
}
