package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shenikar/civic_reporting_system/internal/config"
	"github.com/shenikar/civic_reporting_system/internal/models"
	"github.com/shenikar/civic_reporting_system/internal/service/mocks"
	"github.com/shenikar/civic_reporting_system/pkg/apperr"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testUserID = "user-1"

type fakeWatcherStatus struct{ mode string }

func (f fakeWatcherStatus) Mode() string { return f.mode }

// newTestHandler создает новый экземпляр Handler с мокированными сервисами
func newTestHandler(t *testing.T) (*mocks.MockComplaintService, *mocks.MockNotificationService, *gin.Engine) {
	ctrl := gomock.NewController(t)
	complaintService := mocks.NewMockComplaintService(ctrl)
	notificationService := mocks.NewMockNotificationService(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		APIKeys:           []string{"test-api-key"},
		MaxImageSizeBytes: 64,
	}

	handler := NewHandler(complaintService, notificationService, fakeWatcherStatus{mode: "polling"}, logger, cfg)

	// Настройка Gin роутера для тестов
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return complaintService, notificationService, router
}

func authHeaders() map[string]string {
	return map[string]string{"X-API-Key": "test-api-key", "X-User-ID": testUserID}
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// makeMultipartRequest отправляет форму обращения; image == nil означает запрос без фото
func makeMultipartRequest(t *testing.T, router *gin.Engine, fields map[string]string, image []byte) *httptest.ResponseRecorder {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	if image != nil {
		part, err := writer.CreateFormFile("image", "pothole.png")
		require.NoError(t, err)
		_, err = part.Write(image)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/complaints", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	for key, value := range authHeaders() {
		req.Header.Set(key, value)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func validComplaintForm() map[string]string {
	return map[string]string{
		"title":       "Deep pothole",
		"description": "Large pothole near the bus stop",
		"category":    "pothole",
		"longitude":   "37.6173",
		"latitude":    "55.7558",
	}
}

func sampleComplaint(id uuid.UUID) *models.Complaint {
	officeID := uuid.New()
	return &models.Complaint{
		ID:               id,
		Title:            "Deep pothole",
		Description:      "Large pothole near the bus stop",
		Category:         models.CategoryPothole,
		Location:         models.Point{Longitude: 37.6173, Latitude: 55.7558},
		Status:           models.StatusAssigned,
		Priority:         models.DefaultPriority(),
		AssignedOfficeID: &officeID,
		ReportedBy:       testUserID,
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}
}

func TestCreateComplaint_Success(t *testing.T) {
	complaintService, _, router := newTestHandler(t)
	complaintID := uuid.New()

	complaintService.EXPECT().
		CreateComplaint(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input models.NewComplaintInput) (*models.Complaint, error) {
			assert.Equal(t, testUserID, input.ReporterID)
			assert.Equal(t, models.CategoryPothole, input.Category)
			assert.InDelta(t, 37.6173, input.Location.Longitude, 1e-9)
			assert.InDelta(t, 55.7558, input.Location.Latitude, 1e-9)
			assert.Nil(t, input.Image)
			return sampleComplaint(complaintID), nil
		}).Times(1)

	w := makeMultipartRequest(t, router, validComplaintForm(), nil)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp ComplaintResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, complaintID, resp.ID)
	assert.Equal(t, "assigned", resp.Status)
	assert.Equal(t, testUserID, resp.ReportedBy)
}

func TestCreateComplaint_WithImage(t *testing.T) {
	complaintService, _, router := newTestHandler(t)
	png := append([]byte("\x89PNG\r\n\x1a\n"), []byte("0000000000")...)

	complaintService.EXPECT().
		CreateComplaint(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input models.NewComplaintInput) (*models.Complaint, error) {
			require.NotNil(t, input.Image)
			assert.Equal(t, "image/png", input.Image.ContentType)
			assert.Equal(t, "pothole.png", input.Image.FileName)
			assert.Equal(t, png, input.Image.Data)
			return sampleComplaint(uuid.New()), nil
		}).Times(1)

	w := makeMultipartRequest(t, router, validComplaintForm(), png)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestCreateComplaint_ImageTooLarge(t *testing.T) {
	complaintService, _, router := newTestHandler(t)

	complaintService.EXPECT().CreateComplaint(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeMultipartRequest(t, router, validComplaintForm(), bytes.Repeat([]byte{0xff}, 128))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "image is too large")
}

func TestCreateComplaint_ValidationError(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(form map[string]string)
		message string
	}{
		{
			name:    "missing title",
			mutate:  func(form map[string]string) { delete(form, "title") },
			message: "Error:Field validation for 'Title' failed on the 'required' tag",
		},
		{
			name:    "unknown category",
			mutate:  func(form map[string]string) { form["category"] = "graffiti" },
			message: "Error:Field validation for 'Category' failed on the 'oneof' tag",
		},
		{
			name:    "missing latitude",
			mutate:  func(form map[string]string) { delete(form, "latitude") },
			message: "Error:Field validation for 'Latitude' failed on the 'required' tag",
		},
		{
			name:    "longitude out of range",
			mutate:  func(form map[string]string) { form["longitude"] = "200" },
			message: "Error:Field validation for 'Longitude' failed on the 'longitude' tag",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			complaintService, _, router := newTestHandler(t)
			complaintService.EXPECT().CreateComplaint(gomock.Any(), gomock.Any()).Times(0)

			form := validComplaintForm()
			tt.mutate(form)
			w := makeMultipartRequest(t, router, form, nil)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), tt.message)
		})
	}
}

func TestCreateComplaint_SameUserConflict(t *testing.T) {
	complaintService, _, router := newTestHandler(t)
	existingID := uuid.New()

	complaintService.EXPECT().
		CreateComplaint(gomock.Any(), gomock.Any()).
		Return(nil, apperr.Conflict("you already reported this issue nearby within the last 24 hours").
			WithDetail("existingComplaintId", existingID.String())).
		Times(1)

	w := makeMultipartRequest(t, router, validComplaintForm(), nil)

	assert.Equal(t, http.StatusConflict, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, existingID.String(), resp["existingComplaintId"])
	assert.Contains(t, resp["error"], "already reported")
}

func TestCreateComplaint_ServiceErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{"storage failure", apperr.Gateway("image upload failed", errors.New("s3 down")), http.StatusBadGateway, "image upload failed"},
		{"domain validation", apperr.Validation(`unsupported image type "image/gif"`), http.StatusBadRequest, "unsupported image type"},
		{"unexpected", errors.New("connection reset"), http.StatusInternalServerError, "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			complaintService, _, router := newTestHandler(t)
			complaintService.EXPECT().CreateComplaint(gomock.Any(), gomock.Any()).Return(nil, tt.err).Times(1)

			w := makeMultipartRequest(t, router, validComplaintForm(), nil)

			assert.Equal(t, tt.wantCode, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
			assert.NotContains(t, w.Body.String(), "connection reset")
		})
	}
}

func TestCreateComplaint_Unauthorized(t *testing.T) {
	complaintService, _, router := newTestHandler(t)
	complaintService.EXPECT().CreateComplaint(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "POST", "/api/v1/complaints", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "API key required")

	w = makeRequest(router, "POST", "/api/v1/complaints", nil, map[string]string{"X-API-Key": "wrong-key", "X-User-ID": testUserID})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid API key")

	w = makeRequest(router, "POST", "/api/v1/complaints", nil, map[string]string{"Authorization": "Bearer test-api-key"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "user id required")
}

func TestGetComplaint_Success(t *testing.T) {
	complaintService, _, router := newTestHandler(t)
	complaintID := uuid.New()

	complaintService.EXPECT().GetComplaint(gomock.Any(), complaintID).Return(sampleComplaint(complaintID), nil).Times(1)

	w := makeRequest(router, "GET", fmt.Sprintf("/api/v1/complaints/%s", complaintID.String()), nil, authHeaders())

	assert.Equal(t, http.StatusOK, w.Code)
	var resp ComplaintResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, complaintID, resp.ID)
	assert.Equal(t, "pothole", resp.Category)
}

func TestGetComplaint_InvalidID(t *testing.T) {
	complaintService, _, router := newTestHandler(t)
	complaintService.EXPECT().GetComplaint(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/complaints/invalid-uuid", nil, authHeaders())

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid complaint ID")
}

func TestGetComplaint_NotFound(t *testing.T) {
	complaintService, _, router := newTestHandler(t)
	complaintID := uuid.New()

	complaintService.EXPECT().
		GetComplaint(gomock.Any(), complaintID).
		Return(nil, fmt.Errorf("service: could not get complaint: %w", apperr.NotFound("complaint not found"))).
		Times(1)

	w := makeRequest(router, "GET", fmt.Sprintf("/api/v1/complaints/%s", complaintID.String()), nil, authHeaders())

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "complaint not found")
}

func TestListComplaints_Success(t *testing.T) {
	complaintService, _, router := newTestHandler(t)
	expected := []*models.Complaint{sampleComplaint(uuid.New()), sampleComplaint(uuid.New())}

	complaintService.EXPECT().ListMyComplaints(gomock.Any(), testUserID, 2, 10).Return(expected, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/complaints?mine=true&page=2&pageSize=10", nil, authHeaders())

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []ComplaintResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
	assert.Equal(t, expected[0].ID, resp[0].ID)
}

func TestListComplaints_RequiresMine(t *testing.T) {
	complaintService, _, router := newTestHandler(t)
	complaintService.EXPECT().ListMyComplaints(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/complaints", nil, authHeaders())

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "mine=true")
}

func TestUpdateComplaintStatus_Success(t *testing.T) {
	complaintService, _, router := newTestHandler(t)
	complaintID := uuid.New()
	updated := sampleComplaint(complaintID)
	updated.Status = models.StatusResolved

	complaintService.EXPECT().UpdateStatus(gomock.Any(), complaintID, "resolved").Return(updated, nil).Times(1)

	bodyBytes, _ := json.Marshal(UpdateStatusRequest{Status: "resolved"})
	w := makeRequest(router, "PATCH", fmt.Sprintf("/api/v1/complaints/%s/status", complaintID), bytes.NewBuffer(bodyBytes), authHeaders())

	assert.Equal(t, http.StatusOK, w.Code)
	var resp ComplaintResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "resolved", resp.Status)
}

func TestUpdateComplaintStatus_Errors(t *testing.T) {
	complaintID := uuid.New()
	tests := []struct {
		name     string
		body     string
		err      error
		calls    int
		wantCode int
		wantBody string
	}{
		{"invalid json", `{"status":`, nil, 0, http.StatusBadRequest, "invalid request body"},
		{"empty status", `{"status":""}`, nil, 0, http.StatusBadRequest, "'required' tag"},
		{"forbidden transition", `{"status":"assigned"}`, apperr.Validation("cannot change status from resolved to assigned"), 1, http.StatusBadRequest, "cannot change status"},
		{"not found", `{"status":"resolved"}`, apperr.NotFound("complaint not found"), 1, http.StatusNotFound, "complaint not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			complaintService, _, router := newTestHandler(t)
			complaintService.EXPECT().UpdateStatus(gomock.Any(), complaintID, gomock.Any()).Return(nil, tt.err).Times(tt.calls)

			w := makeRequest(router, "PATCH", fmt.Sprintf("/api/v1/complaints/%s/status", complaintID), bytes.NewBufferString(tt.body), authHeaders())

			assert.Equal(t, tt.wantCode, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
		})
	}
}

func TestHealthCheck(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "polling", resp.WatcherMode)
}
