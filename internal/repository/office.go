package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/civic_reporting_system/internal/models"
	"github.com/shenikar/civic_reporting_system/internal/service"
	"github.com/shenikar/civic_reporting_system/pkg/apperr"
)

type OfficeRepository struct {
	db *pgxpool.Pool
}

func NewOfficeRepository(db *pgxpool.Pool) service.OfficeRepository {
	return &OfficeRepository{db: db}
}

const officeCandidateSelect = `
	SELECT
		o.id,
		o.name,
		o.type,
		o.zone,
		ST_X(o.location::geometry) AS longitude,
		ST_Y(o.location::geometry) AS latitude,
		o.workload,
		o.max_capacity,
		o.is_active,
		o.created_at,
		o.updated_at,
		ST_Distance(o.location, ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography) AS distance
	FROM municipal_offices o
`

// FindNearestActive возвращает ближайший активный офис любого типа.
// При равном расстоянии выбирается офис с меньшим id.
func (r *OfficeRepository) FindNearestActive(ctx context.Context, point models.Point, maxDistanceMeters float64) (*models.OfficeCandidate, error) {
	query := officeCandidateSelect + `
		WHERE o.is_active = TRUE
			AND ST_DWithin(o.location, ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography, $3)
		ORDER BY distance, o.id
		LIMIT 1;
	`
	candidate, err := scanOfficeCandidate(r.db.QueryRow(ctx, query, point.Longitude, point.Latitude, maxDistanceMeters))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find nearest office: %w", err)
	}
	return candidate, nil
}

// FindNearestActiveMainInZone ищет главный офис той же зоны для переадресации
func (r *OfficeRepository) FindNearestActiveMainInZone(ctx context.Context, point models.Point, zone string, maxDistanceMeters float64) (*models.OfficeCandidate, error) {
	query := officeCandidateSelect + `
		WHERE o.is_active = TRUE
			AND o.type = 'main'
			AND o.zone = $4
			AND ST_DWithin(o.location, ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography, $3)
		ORDER BY distance, o.id
		LIMIT 1;
	`
	candidate, err := scanOfficeCandidate(r.db.QueryRow(ctx, query, point.Longitude, point.Latitude, maxDistanceMeters, zone))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find main office in zone: %w", err)
	}
	return candidate, nil
}

// IncrementWorkload - атомарный UPDATE без чтения на стороне приложения
func (r *OfficeRepository) IncrementWorkload(ctx context.Context, officeID uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, `UPDATE municipal_offices SET workload = workload + 1 WHERE id = $1;`, officeID)
	if err != nil {
		return fmt.Errorf("failed to increment office workload: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperr.NotFound(fmt.Sprintf("office with id %s not found", officeID)).WithOp("office.increment_workload")
	}
	return nil
}

// decrementWorkloadQuery используется и отдельно, и в транзакции смены статуса
const decrementWorkloadQuery = `UPDATE municipal_offices SET workload = GREATEST(workload - 1, 0) WHERE id = $1;`

// DecrementWorkload не опускает нагрузку ниже нуля
func (r *OfficeRepository) DecrementWorkload(ctx context.Context, officeID uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, decrementWorkloadQuery, officeID)
	if err != nil {
		return fmt.Errorf("failed to decrement office workload: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperr.NotFound(fmt.Sprintf("office with id %s not found", officeID)).WithOp("office.decrement_workload")
	}
	return nil
}

func scanOfficeCandidate(row rowScanner) (*models.OfficeCandidate, error) {
	var candidate models.OfficeCandidate
	o := &candidate.Office
	err := row.Scan(
		&o.ID,
		&o.Name,
		&o.Type,
		&o.Zone,
		&o.Location.Longitude,
		&o.Location.Latitude,
		&o.Workload,
		&o.MaxCapacity,
		&o.IsActive,
		&o.CreatedAt,
		&o.UpdatedAt,
		&candidate.DistanceMeters,
	)
	if err != nil {
		return nil, err
	}
	return &candidate, nil
}
