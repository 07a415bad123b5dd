package v1

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shenikar/civic_reporting_system/internal/config"
	"github.com/shenikar/civic_reporting_system/internal/models"
	"github.com/shenikar/civic_reporting_system/internal/service"
	"github.com/shenikar/civic_reporting_system/pkg/apperr"
	"github.com/sirupsen/logrus"
)

// WatcherStatus - текущий режим наблюдателя для health-check
type WatcherStatus interface {
	Mode() string
}

type Handler struct {
	complaintService    service.ComplaintService
	notificationService service.NotificationService
	watcher             WatcherStatus
	logger              *logrus.Logger
	validate            *validator.Validate
	cfg                 *config.Config
}

func NewHandler(
	complaintService service.ComplaintService,
	notificationService service.NotificationService,
	watcher WatcherStatus,
	logger *logrus.Logger,
	cfg *config.Config,
) *Handler {
	return &Handler{
		complaintService:    complaintService,
		notificationService: notificationService,
		watcher:             watcher,
		logger:              logger,
		validate:            validator.New(),
		cfg:                 cfg,
	}
}

// respondError переводит доменную ошибку в HTTP-ответ. Details ошибки попадают в тело ответа.
func (h *Handler) respondError(c *gin.Context, log *logrus.Entry, err error) {
	appErr, ok := apperr.As(err)
	if !ok || appErr.HTTPStatus() == http.StatusInternalServerError {
		log.WithError(err).Error("Request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	body := gin.H{"error": appErr.Message}
	for key, value := range appErr.Details {
		body[key] = value
	}

	status := appErr.HTTPStatus()
	if status >= http.StatusInternalServerError {
		log.WithError(err).Error("Request failed")
	} else {
		log.WithError(err).Warn("Request rejected")
	}
	c.JSON(status, body)
}

// @Summary Submit a new complaint
// @Description Submit a complaint with location and an optional photo. Requires API key and X-User-ID.
// @Tags Complaints
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param X-User-ID header string true "Authenticated user id"
// @Param title formData string true "Title"
// @Param description formData string true "Description"
// @Param category formData string true "Category" Enums(pothole, garbage, streetlight, water, sewage, road, other)
// @Param longitude formData number true "Longitude"
// @Param latitude formData number true "Latitude"
// @Param image formData file false "Photo (jpeg, png, webp, heic)"
// @Success 201 {object} ComplaintResponse
// @Failure 400 {object} map[string]string "Invalid form or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Same issue already reported by this user; body carries existingComplaintId"
// @Failure 502 {object} map[string]string "Image storage failure"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /complaints [post]
func (h *Handler) createComplaint(c *gin.Context) {
	userID := currentUserID(c)
	log := h.logger.WithField("method", "createComplaint").WithField("user_id", userID)

	var input CreateComplaintRequest
	if err := c.ShouldBind(&input); err != nil {
		log.WithError(err).Warn("Failed to bind form")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	image, err := h.readImage(c)
	if err != nil {
		log.WithError(err).Warn("Failed to read uploaded image")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	complaint, err := h.complaintService.CreateComplaint(c.Request.Context(), DTOToComplaintInput(userID, input, image))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToComplaintResponse(complaint))
}

// readImage возвращает nil, если фото не приложено
func (h *Handler) readImage(c *gin.Context) (*models.ImageUpload, error) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, fmt.Errorf("invalid image upload: %w", err)
	}

	if h.cfg.MaxImageSizeBytes > 0 && fileHeader.Size > h.cfg.MaxImageSizeBytes {
		return nil, fmt.Errorf("image is too large: %d bytes, limit %d", fileHeader.Size, h.cfg.MaxImageSizeBytes)
	}

	data, err := readFormFile(fileHeader)
	if err != nil {
		return nil, err
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = http.DetectContentType(data)
	}

	return &models.ImageUpload{
		FileName:    fileHeader.Filename,
		ContentType: contentType,
		Size:        int64(len(data)),
		Data:        data,
	}, nil
}

func readFormFile(fileHeader *multipart.FileHeader) ([]byte, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded image: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read uploaded image: %w", err)
	}
	return data, nil
}

// @Summary Get complaint by ID
// @Description Get a single complaint by its ID. Requires API key and X-User-ID.
// @Tags Complaints
// @Produce json
// @Security ApiKeyAuth
// @Param X-User-ID header string true "Authenticated user id"
// @Param id path string true "Complaint ID"
// @Success 200 {object} ComplaintResponse
// @Failure 400 {object} map[string]string "Invalid complaint ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Complaint not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /complaints/{id} [get]
func (h *Handler) getComplaint(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid complaint ID"})
		return
	}
	log := h.logger.WithField("method", "getComplaint").WithField("id", id)

	complaint, err := h.complaintService.GetComplaint(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToComplaintResponse(complaint))
}

// @Summary List my complaints
// @Description Get a paginated list of complaints submitted by the current user. Requires API key and X-User-ID.
// @Tags Complaints
// @Produce json
// @Security ApiKeyAuth
// @Param X-User-ID header string true "Authenticated user id"
// @Param mine query bool true "Must be true"
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(20)
// @Success 200 {array} ComplaintResponse
// @Failure 400 {object} map[string]string "Unsupported filter"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /complaints [get]
func (h *Handler) listComplaints(c *gin.Context) {
	userID := currentUserID(c)
	log := h.logger.WithField("method", "listComplaints").WithField("user_id", userID)

	if mine, _ := strconv.ParseBool(c.Query("mine")); !mine {
		c.JSON(http.StatusBadRequest, gin.H{"error": "only mine=true listing is supported"})
		return
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))

	complaints, err := h.complaintService.ListMyComplaints(c.Request.Context(), userID, page, pageSize)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToComplaintResponses(complaints))
}

// @Summary Update complaint status
// @Description Move a complaint through its lifecycle. Requires API key and X-User-ID.
// @Tags Complaints
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param X-User-ID header string true "Authenticated user id"
// @Param id path string true "Complaint ID"
// @Param status body UpdateStatusRequest true "New status"
// @Success 200 {object} ComplaintResponse
// @Failure 400 {object} map[string]string "Invalid ID, unknown status or forbidden transition"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Complaint not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /complaints/{id}/status [patch]
func (h *Handler) updateComplaintStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid complaint ID"})
		return
	}
	log := h.logger.WithField("method", "updateComplaintStatus").WithField("id", id)

	var input UpdateStatusRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	complaint, err := h.complaintService.UpdateStatus(c.Request.Context(), id, input.Status)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToComplaintResponse(complaint))
}

// @Summary Get application health status
// @Description Get health status of the application and the active watcher mode
// @Tags System
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	mode := ""
	if h.watcher != nil {
		mode = h.watcher.Mode()
	}
	c.JSON(http.StatusOK, HealthResponse{Status: "ok", WatcherMode: mode})
}
