package push

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shenikar/civic_reporting_system/internal/config"
	"github.com/shenikar/civic_reporting_system/internal/models"
	"github.com/shenikar/civic_reporting_system/internal/service"
	"github.com/sirupsen/logrus"
)

// ExpoSender отправляет push-уведомления через HTTP API Expo
type ExpoSender struct {
	url         string
	accessToken string
	maxRetries  int
	baseDelay   time.Duration
	httpClient  *http.Client
	logger      *logrus.Logger
}

// NewExpoSender создает новый ExpoSender
func NewExpoSender(cfg *config.Config, logger *logrus.Logger) service.PushSender {
	maxRetries := cfg.PushMaxRetries
	if maxRetries < 1 {
		maxRetries = 1
	}
	return &ExpoSender{
		url:         cfg.PushURL,
		accessToken: cfg.PushAccessToken,
		maxRetries:  maxRetries,
		baseDelay:   cfg.PushBaseDelay,
		httpClient: &http.Client{
			Timeout: cfg.PushTimeout,
		},
		logger: logger,
	}
}

type expoTicket struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Details struct {
		Error string `json:"error"`
	} `json:"details"`
}

type expoResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"errors"`
}

// errPermanent - ответ, повтор которого ничего не изменит
type errPermanent struct {
	err error
}

func (e *errPermanent) Error() string { return e.err.Error() }
func (e *errPermanent) Unwrap() error { return e.err }

// Send доставляет одно сообщение. Сетевые ошибки, 429 и 5xx повторяются
// с экспоненциальной задержкой, остальные ошибки возвращаются сразу.
func (s *ExpoSender) Send(ctx context.Context, message models.PushMessage) error {
	payload, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal push message: %w", err)
	}

	log := s.logger.WithField("component", "push")
	delay := s.baseDelay
	var lastErr error

	for i := 0; i < s.maxRetries; i++ {
		lastErr = s.deliver(ctx, payload)
		if lastErr == nil {
			log.Debug("Push notification delivered successfully.")
			return nil
		}

		var permanent *errPermanent
		if errors.As(lastErr, &permanent) {
			return lastErr
		}

		retriesLeft := s.maxRetries - 1 - i
		if retriesLeft == 0 {
			break
		}
		log.WithError(lastErr).Warnf("Failed to send push notification. Retrying in %v. Retries left: %d", delay, retriesLeft)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
		delay *= 2
	}

	return fmt.Errorf("failed to deliver push notification after %d attempts: %w", s.maxRetries, lastErr)
}

func (s *ExpoSender) deliver(ctx context.Context, payload []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(payload))
	if err != nil {
		return &errPermanent{err: fmt.Errorf("failed to create push request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if s.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+s.accessToken)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("push request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("failed to read push response: %w", err)
	}

	if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
		return fmt.Errorf("push provider responded with status %d", resp.StatusCode)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &errPermanent{err: fmt.Errorf("push provider rejected request with status %d: %s", resp.StatusCode, string(body))}
	}

	return parseTicket(body)
}

// parseTicket разбирает ответ на одиночное сообщение: data может прийти как объектом, так и массивом
func parseTicket(body []byte) error {
	var response expoResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return &errPermanent{err: fmt.Errorf("failed to decode push response: %w", err)}
	}
	if len(response.Errors) > 0 {
		return &errPermanent{err: fmt.Errorf("push provider error %s: %s", response.Errors[0].Code, response.Errors[0].Message)}
	}
	if len(response.Data) == 0 {
		return nil
	}

	var ticket expoTicket
	if bytes.HasPrefix(bytes.TrimSpace(response.Data), []byte("[")) {
		var tickets []expoTicket
		if err := json.Unmarshal(response.Data, &tickets); err != nil {
			return &errPermanent{err: fmt.Errorf("failed to decode push tickets: %w", err)}
		}
		if len(tickets) == 0 {
			return nil
		}
		ticket = tickets[0]
	} else if err := json.Unmarshal(response.Data, &ticket); err != nil {
		return &errPermanent{err: fmt.Errorf("failed to decode push ticket: %w", err)}
	}

	if ticket.Status != "error" {
		return nil
	}
	if ticket.Details.Error == "DeviceNotRegistered" {
		return &errPermanent{err: fmt.Errorf("%w: %s", models.ErrPushTokenInvalid, ticket.Message)}
	}
	return &errPermanent{err: fmt.Errorf("push ticket error %s: %s", ticket.Details.Error, ticket.Message)}
}
