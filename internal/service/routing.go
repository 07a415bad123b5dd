package service

//go:generate mockgen -source=routing.go -destination=mocks/routing_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/shenikar/civic_reporting_system/internal/models"
	"github.com/sirupsen/logrus"
)

// RoutingRadiusMeters - максимальное расстояние до офиса
const RoutingRadiusMeters = 10_000.0

const reasonNoOfficeInRange = "no office within range"

// RoutingEngine выбирает офис для обращения. Решение не меняет нагрузку:
// при IsAssigned вызывающий сам вызывает WorkloadTracker.Increment.
type RoutingEngine interface {
	Route(ctx context.Context, location models.Point) (*models.RoutingDecision, error)
}

type routingEngine struct {
	offices OfficeRepository
	logger  *logrus.Logger
}

func NewRoutingEngine(offices OfficeRepository, logger *logrus.Logger) RoutingEngine {
	return &routingEngine{
		offices: offices,
		logger:  logger,
	}
}

func (r *routingEngine) Route(ctx context.Context, location models.Point) (*models.RoutingDecision, error) {
	log := r.logger.WithFields(logrus.Fields{
		"service":   "routing",
		"method":    "Route",
		"longitude": location.Longitude,
		"latitude":  location.Latitude,
	})

	nearest, err := r.offices.FindNearestActive(ctx, location, RoutingRadiusMeters)
	if err != nil {
		log.WithError(err).Error("Failed to find nearest office")
		return nil, fmt.Errorf("service: could not find nearest office: %w", err)
	}
	if nearest == nil {
		log.Info("No active office within routing radius")
		return &models.RoutingDecision{Reason: reasonNoOfficeInRange}, nil
	}

	office := nearest.Office
	if office.Type == models.OfficeTypeMain {
		return assignTo(nearest, fmt.Sprintf("nearest main office %q", office.Name)), nil
	}

	if office.HasCapacity() {
		return assignTo(nearest, fmt.Sprintf("nearest sub office %q has capacity (%d/%d)",
			office.Name, office.Workload, office.MaxCapacity)), nil
	}

	log = log.WithFields(logrus.Fields{"sub_office_id": office.ID, "zone": office.Zone})
	log.Info("Nearest sub office is at capacity, looking for main office in zone")

	fallback, err := r.offices.FindNearestActiveMainInZone(ctx, location, office.Zone, RoutingRadiusMeters)
	if err != nil {
		log.WithError(err).Error("Failed to find zone main office")
		return nil, fmt.Errorf("service: could not find zone main office: %w", err)
	}
	if fallback == nil {
		return &models.RoutingDecision{
			Reason: fmt.Sprintf("sub office %q is at capacity (%d/%d) and zone %q has no active main office within range",
				office.Name, office.Workload, office.MaxCapacity, office.Zone),
		}, nil
	}

	return assignTo(fallback, fmt.Sprintf("failover: sub office %q is at capacity (%d/%d), routed to main office %q in zone %q",
		office.Name, office.Workload, office.MaxCapacity, fallback.Office.Name, office.Zone)), nil
}

func assignTo(candidate *models.OfficeCandidate, reason string) *models.RoutingDecision {
	id := candidate.Office.ID
	distance := candidate.DistanceMeters
	return &models.RoutingDecision{
		IsAssigned:     true,
		OfficeID:       &id,
		OfficeType:     candidate.Office.Type,
		DistanceMeters: &distance,
		Reason:         reason,
	}
}
