package service

//go:generate mockgen -source=duplicate.go -destination=mocks/duplicate_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/shenikar/civic_reporting_system/internal/models"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const (
	DuplicateRadiusMeters = 100.0
	SameUserWindowHours   = 24
	CrossUserWindowHours  = 48
)

// DuplicateDetector определяет, является ли новое обращение повтором
type DuplicateDetector interface {
	Detect(ctx context.Context, reporterID string, category models.Category, location models.Point) (*models.DetectionResult, error)
}

type duplicateDetector struct {
	complaints ComplaintRepository
	logger     *logrus.Logger
}

func NewDuplicateDetector(complaints ComplaintRepository, logger *logrus.Logger) DuplicateDetector {
	return &duplicateDetector{
		complaints: complaints,
		logger:     logger,
	}
}

// Detect только читает данные. Оба запроса выполняются параллельно,
// но повтор от того же автора имеет приоритет над чужим дубликатом.
func (d *duplicateDetector) Detect(ctx context.Context, reporterID string, category models.Category, location models.Point) (*models.DetectionResult, error) {
	log := d.logger.WithFields(logrus.Fields{
		"service":     "duplicate",
		"method":      "Detect",
		"reporter_id": reporterID,
		"category":    category,
	})

	var sameUser, crossUser *models.Complaint
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		found, err := d.complaints.FindNearbyRecent(gctx, models.DuplicateQuery{
			ReporterID:   reporterID,
			SameReporter: true,
			Category:     category,
			Location:     location,
			RadiusMeters: DuplicateRadiusMeters,
			MaxAgeHours:  SameUserWindowHours,
		})
		sameUser = found
		return err
	})
	g.Go(func() error {
		found, err := d.complaints.FindNearbyRecent(gctx, models.DuplicateQuery{
			ReporterID:   reporterID,
			SameReporter: false,
			Category:     category,
			Location:     location,
			RadiusMeters: DuplicateRadiusMeters,
			MaxAgeHours:  CrossUserWindowHours,
		})
		crossUser = found
		return err
	})
	if err := g.Wait(); err != nil {
		log.WithError(err).Error("Failed to search for nearby complaints")
		return nil, fmt.Errorf("service: could not detect duplicates: %w", err)
	}

	if sameUser != nil {
		log.WithField("existing_complaint_id", sameUser.ID).Info("Same reporter submitted a recent complaint nearby")
		return &models.DetectionResult{
			Type:                models.DetectionSameUserRecent,
			ExistingComplaintID: sameUser.ID,
		}, nil
	}

	if crossUser != nil {
		master, err := d.resolveMaster(ctx, crossUser)
		if err != nil {
			log.WithError(err).Error("Failed to resolve master complaint")
			return nil, fmt.Errorf("service: could not resolve master complaint: %w", err)
		}
		log.WithField("master_complaint_id", master.ID).Info("Cross-user duplicate detected")
		return &models.DetectionResult{
			Type:   models.DetectionCrossUserDuplicate,
			Master: master,
		}, nil
	}

	return &models.DetectionResult{Type: models.DetectionNone}, nil
}

// resolveMaster делает один переход по master_complaint_id:
// дубликаты дубликатов не создаются, цепочки не длиннее одного звена.
func (d *duplicateDetector) resolveMaster(ctx context.Context, found *models.Complaint) (*models.Complaint, error) {
	if !found.DuplicateInfo.IsDuplicate || found.DuplicateInfo.MasterComplaintID == nil {
		return found, nil
	}
	return d.complaints.GetByID(ctx, *found.DuplicateInfo.MasterComplaintID)
}
