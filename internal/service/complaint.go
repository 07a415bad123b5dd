package service

//go:generate mockgen -source=complaint.go -destination=mocks/complaint_mock.go -package=mocks

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/civic_reporting_system/internal/models"
	"github.com/shenikar/civic_reporting_system/pkg/apperr"
	"github.com/sirupsen/logrus"
)

const (
	opCreateComplaint = "complaint.create"

	titleComplaintReceived = "Complaint received"
	titleComplaintLinked   = "Complaint linked to an existing report"
)

var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/heic": ".heic",
}

// ComplaintService определяет контракт бизнес-логики обращений
type ComplaintService interface {
	CreateComplaint(ctx context.Context, input models.NewComplaintInput) (*models.Complaint, error)
	GetComplaint(ctx context.Context, id uuid.UUID) (*models.Complaint, error)
	ListMyComplaints(ctx context.Context, reporterID string, page, pageSize int) ([]*models.Complaint, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*models.Complaint, error)
}

type complaintService struct {
	repo          ComplaintRepository
	cache         ComplaintCache
	storage       BlobStorage
	detector      DuplicateDetector
	router        RoutingEngine
	workload      WorkloadTracker
	statuses      ComplaintStateMachine
	notifications NotificationService
	logger        *logrus.Logger
	maxImageSize  int64
	now           func() time.Time
}

// ComplaintDeps - зависимости ComplaintService. Storage может быть nil, если хранилище не настроено.
type ComplaintDeps struct {
	Repo          ComplaintRepository
	Cache         ComplaintCache
	Storage       BlobStorage
	Detector      DuplicateDetector
	Router        RoutingEngine
	Workload      WorkloadTracker
	Statuses      ComplaintStateMachine
	Notifications NotificationService
	Logger        *logrus.Logger
	MaxImageSize  int64
}

func NewComplaintService(deps ComplaintDeps) ComplaintService {
	return &complaintService{
		repo:          deps.Repo,
		cache:         deps.Cache,
		storage:       deps.Storage,
		detector:      deps.Detector,
		router:        deps.Router,
		workload:      deps.Workload,
		statuses:      deps.Statuses,
		notifications: deps.Notifications,
		logger:        deps.Logger,
		maxImageSize:  deps.MaxImageSize,
		now:           time.Now,
	}
}

// CreateComplaint: валидация -> поиск дубликата -> загрузка фото -> привязка к мастеру
// либо маршрутизация, запись и учет нагрузки -> уведомление автора.
// Между записью обращения и Increment есть окно: при падении процесса нагрузка
// офиса будет занижена на единицу до ручной сверки.
func (s *complaintService) CreateComplaint(ctx context.Context, input models.NewComplaintInput) (*models.Complaint, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "complaint",
		"method":      "CreateComplaint",
		"reporter_id": input.ReporterID,
		"category":    input.Category,
	})
	log.Info("Attempting to create a new complaint")

	if err := s.validate(input); err != nil {
		log.WithError(err).Warn("Complaint validation failed")
		return nil, err
	}

	detection, err := s.detector.Detect(ctx, input.ReporterID, input.Category, input.Location)
	if err != nil {
		return nil, err
	}
	if detection.Type == models.DetectionSameUserRecent {
		log.WithField("existing_complaint_id", detection.ExistingComplaintID).Info("Rejected repeat submission")
		return nil, apperr.Conflict("you already reported this issue nearby within the last 24 hours").
			WithOp(opCreateComplaint).
			WithDetail("existingComplaintId", detection.ExistingComplaintID.String())
	}

	complaint := &models.Complaint{
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		Category:    input.Category,
		Location:    input.Location,
		Images:      []models.Image{},
		Status:      models.StatusUnassigned,
		Priority:    models.DefaultPriority(),
		ReportedBy:  input.ReporterID,
	}

	if input.Image != nil {
		image, err := s.uploadImage(ctx, input.ReporterID, input.Image)
		if err != nil {
			log.WithError(err).Error("Image upload failed, aborting complaint creation")
			return nil, err
		}
		complaint.Images = append(complaint.Images, *image)
	}

	if detection.Type == models.DetectionCrossUserDuplicate {
		return s.createDuplicate(ctx, log, complaint, detection.Master)
	}
	return s.createRouted(ctx, log, complaint)
}

func (s *complaintService) createDuplicate(ctx context.Context, log *logrus.Entry, complaint, master *models.Complaint) (*models.Complaint, error) {
	masterID := master.ID
	complaint.DuplicateInfo = models.DuplicateInfo{
		IsDuplicate:       true,
		MasterComplaintID: &masterID,
	}
	complaint.RoutingReason = "linked to existing complaint"

	if err := s.repo.CreateDuplicate(ctx, complaint, masterID); err != nil {
		log.WithError(err).Error("Failed to create duplicate complaint in repository")
		return nil, fmt.Errorf("service: could not create duplicate complaint: %w", err)
	}
	s.invalidate(ctx, log, masterID)

	log.WithFields(logrus.Fields{
		"complaint_id":        complaint.ID,
		"master_complaint_id": masterID,
	}).Info("Complaint linked to master as duplicate")

	s.notify(ctx, log, complaint, titleComplaintLinked,
		fmt.Sprintf("Your report %q matches an existing complaint nearby and has been linked to it.", complaint.Title))
	return complaint, nil
}

func (s *complaintService) createRouted(ctx context.Context, log *logrus.Entry, complaint *models.Complaint) (*models.Complaint, error) {
	decision, err := s.router.Route(ctx, complaint.Location)
	if err != nil {
		return nil, err
	}

	complaint.RoutingReason = decision.Reason
	if decision.IsAssigned {
		complaint.Status = models.StatusAssigned
		complaint.AssignedOfficeID = decision.OfficeID
		complaint.AssignedOfficeType = decision.OfficeType
		complaint.RoutingDistanceMeters = decision.DistanceMeters
	}

	if err := s.repo.Create(ctx, complaint); err != nil {
		log.WithError(err).Error("Failed to create complaint in repository")
		return nil, fmt.Errorf("service: could not create complaint: %w", err)
	}

	if decision.IsAssigned {
		if err := s.workload.Increment(ctx, *decision.OfficeID); err != nil {
			// обращение уже записано, нагрузка офиса занижена до сверки
			log.WithError(err).Error("Complaint stored but office workload was not incremented")
		}
	}

	log.WithFields(logrus.Fields{
		"complaint_id": complaint.ID,
		"status":       complaint.Status,
		"office_id":    complaint.AssignedOfficeID,
	}).Info("Complaint created successfully")

	message := fmt.Sprintf("Your complaint %q has been received.", complaint.Title)
	if decision.IsAssigned {
		message = fmt.Sprintf("Your complaint %q has been received and assigned to a municipal office.", complaint.Title)
	}
	s.notify(ctx, log, complaint, titleComplaintReceived, message)
	return complaint, nil
}

func (s *complaintService) validate(input models.NewComplaintInput) error {
	switch {
	case strings.TrimSpace(input.ReporterID) == "":
		return apperr.Validation("reporter id is required").WithOp(opCreateComplaint)
	case strings.TrimSpace(input.Title) == "":
		return apperr.Validation("title is required").WithOp(opCreateComplaint)
	case strings.TrimSpace(input.Description) == "":
		return apperr.Validation("description is required").WithOp(opCreateComplaint)
	case !input.Category.IsValid():
		return apperr.Validation(fmt.Sprintf("unknown category %q", input.Category)).WithOp(opCreateComplaint)
	case !input.Location.IsValid():
		return apperr.Validation("location must be a finite [longitude, latitude] pair").WithOp(opCreateComplaint)
	}

	if img := input.Image; img != nil {
		if _, ok := allowedImageTypes[img.ContentType]; !ok {
			return apperr.Validation(fmt.Sprintf("unsupported image type %q", img.ContentType)).WithOp(opCreateComplaint)
		}
		if s.maxImageSize > 0 && int64(len(img.Data)) > s.maxImageSize {
			return apperr.Validation("image is too large").WithOp(opCreateComplaint)
		}
	}
	return nil
}

func (s *complaintService) uploadImage(ctx context.Context, reporterID string, img *models.ImageUpload) (*models.Image, error) {
	if s.storage == nil {
		return nil, apperr.Gateway("image storage is not configured", nil).WithOp(opCreateComplaint)
	}

	ext := path.Ext(img.FileName)
	if ext == "" {
		ext = allowedImageTypes[img.ContentType]
	}
	objectName := fmt.Sprintf("complaints/%s/%s%s", reporterID, uuid.New().String(), ext)

	url, err := s.storage.Upload(ctx, objectName, bytes.NewReader(img.Data), int64(len(img.Data)), img.ContentType)
	if err != nil {
		return nil, apperr.Gateway("image upload failed", err).WithOp(opCreateComplaint)
	}
	return &models.Image{URL: url, UploadedAt: s.now().UTC()}, nil
}

func (s *complaintService) notify(ctx context.Context, log *logrus.Entry, complaint *models.Complaint, title, message string) {
	complaintID := complaint.ID
	if _, err := s.notifications.Send(ctx, complaint.ReportedBy, title, message, &complaintID); err != nil {
		log.WithError(err).Warn("Failed to send submission notification")
	}
}

func (s *complaintService) invalidate(ctx context.Context, log *logrus.Entry, id uuid.UUID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateComplaintCache(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to invalidate complaint cache")
	}
}

// GetComplaint читает обращение сначала из кеша
func (s *complaintService) GetComplaint(ctx context.Context, id uuid.UUID) (*models.Complaint, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":      "complaint",
		"method":       "GetComplaint",
		"complaint_id": id,
	})

	if s.cache != nil {
		cached, err := s.cache.GetComplaintFromCache(ctx, id)
		if err != nil {
			log.WithError(err).Warn("Failed to read complaint from cache")
		} else if cached != nil {
			return cached, nil
		}
	}

	complaint, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to get complaint from repository")
		return nil, fmt.Errorf("service: could not get complaint: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.SetComplaintCache(ctx, complaint); err != nil {
			log.WithError(err).Warn("Failed to cache complaint")
		}
	}
	return complaint, nil
}

// ListMyComplaints возвращает обращения автора с пагинацией
func (s *complaintService) ListMyComplaints(ctx context.Context, reporterID string, page, pageSize int) ([]*models.Complaint, error) {
	if page < 1 {
		page = 1
	}

	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	log := s.logger.WithFields(logrus.Fields{
		"service":     "complaint",
		"method":      "ListMyComplaints",
		"reporter_id": reporterID,
		"page":        page,
		"page_size":   pageSize,
	})

	complaints, err := s.repo.ListByReporter(ctx, reporterID, page, pageSize)
	if err != nil {
		log.WithError(err).Error("Failed to list complaints from repository")
		return nil, fmt.Errorf("service: could not list complaints: %w", err)
	}

	log.WithField("count", len(complaints)).Debug("Complaints listed successfully")
	return complaints, nil
}

func (s *complaintService) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*models.Complaint, error) {
	return s.statuses.SetStatus(ctx, id, status)
}
