package push

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shenikar/civic_reporting_system/internal/config"
	"github.com/shenikar/civic_reporting_system/internal/models"
	"github.com/shenikar/civic_reporting_system/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSender(url string, retries int) *ExpoSender {
	cfg := &config.Config{
		PushURL:         url,
		PushAccessToken: "secret-token",
		PushTimeout:     time.Second,
		PushMaxRetries:  retries,
		PushBaseDelay:   time.Millisecond,
	}
	return NewExpoSender(cfg, logger.Discard()).(*ExpoSender)
}

func TestExpoSender_Send(t *testing.T) {
	// Подготовка
	var received models.PushMessage
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer secret-token", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		body, _ := io.ReadAll(r.Body)
		assert.NoError(t, json.Unmarshal(body, &received))
		_, _ = io.WriteString(w, `{"data":{"status":"ok","id":"ticket-1"}}`)
	}))
	defer server.Close()
	sender := newTestSender(server.URL, 3)

	// Действие
	err := sender.Send(context.Background(), models.PushMessage{
		To:    "ExponentPushToken[abc]",
		Title: "Complaint resolved",
		Body:  "Done",
		Data:  map[string]string{"complaintId": "42"},
		Sound: "default",
	})

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, "ExponentPushToken[abc]", received.To)
	assert.Equal(t, "42", received.Data["complaintId"])
}

func TestExpoSender_RetriesServerErrors(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = io.WriteString(w, `{"data":[{"status":"ok"}]}`)
	}))
	defer server.Close()

	err := newTestSender(server.URL, 3).Send(context.Background(), models.PushMessage{To: "tok"})

	require.NoError(t, err)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestExpoSender_GivesUpAfterMaxRetries(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	err := newTestSender(server.URL, 2).Send(context.Background(), models.PushMessage{To: "tok"})

	require.Error(t, err)
	assert.ErrorContains(t, err, "after 2 attempts")
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestExpoSender_ClientErrorIsNotRetried(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	err := newTestSender(server.URL, 5).Send(context.Background(), models.PushMessage{To: "tok"})

	require.Error(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestExpoSender_DeviceNotRegistered(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"data":{"status":"error","message":"not a registered push token","details":{"error":"DeviceNotRegistered"}}}`)
	}))
	defer server.Close()

	err := newTestSender(server.URL, 3).Send(context.Background(), models.PushMessage{To: "tok"})

	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrPushTokenInvalid)
}

func TestExpoSender_ContextCancelledDuringBackoff(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()
	sender := newTestSender(server.URL, 3)
	sender.baseDelay = time.Hour

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := sender.Send(ctx, models.PushMessage{To: "tok"})

	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
