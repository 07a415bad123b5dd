package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/civic_reporting_system/internal/models"
	"github.com/shenikar/civic_reporting_system/internal/service"
	"github.com/shenikar/civic_reporting_system/pkg/apperr"
)

// complaintColumns - общий список колонок для всех SELECT по обращениям, порядок совпадает со scanComplaint
const complaintColumns = `
	c.id,
	c.title,
	c.description,
	c.category,
	ST_X(c.location::geometry) AS longitude,
	ST_Y(c.location::geometry) AS latitude,
	c.images,
	c.status,
	c.severity_score,
	c.priority_score,
	c.priority_level,
	c.priority_reason,
	c.priority_ai_processed,
	c.priority_ai_processing_status,
	c.ai_metadata,
	c.is_duplicate,
	c.master_complaint_id,
	c.duplicate_count,
	c.assigned_office_id,
	c.assigned_office_type,
	c.routing_distance_meters,
	c.routing_reason,
	c.reported_by,
	c.created_at,
	c.updated_at`

const insertComplaintQuery = `
	INSERT INTO complaints (
		title, description, category, location, images, status,
		priority_level, priority_ai_processing_status,
		is_duplicate, master_complaint_id,
		assigned_office_id, assigned_office_type, routing_distance_meters, routing_reason,
		reported_by
	)
	VALUES ($1, $2, $3, ST_SetSRID(ST_MakePoint($4, $5), 4326)::geography, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	RETURNING id, created_at, updated_at;
`

type rowScanner interface {
	Scan(dest ...any) error
}

type ComplaintRepository struct {
	db *pgxpool.Pool
}

func NewComplaintRepository(db *pgxpool.Pool) service.ComplaintRepository {
	return &ComplaintRepository{db: db}
}

// Create создает новое обращение в бд
func (r *ComplaintRepository) Create(ctx context.Context, complaint *models.Complaint) error {
	if err := insertComplaint(ctx, r.db, complaint); err != nil {
		return fmt.Errorf("failed to create complaint: %w", err)
	}
	return nil
}

// CreateDuplicate создает дубликат и увеличивает duplicate_count мастера в одной транзакции
func (r *ComplaintRepository) CreateDuplicate(ctx context.Context, complaint *models.Complaint, masterID uuid.UUID) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin duplicate transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	cmdTag, err := tx.Exec(ctx, `
		UPDATE complaints SET duplicate_count = duplicate_count + 1
		WHERE id = $1 AND is_duplicate = FALSE;
	`, masterID)
	if err != nil {
		return fmt.Errorf("failed to increment duplicate count: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		// мастер удален или сам стал дубликатом после поиска
		return apperr.Conflict("the matching complaint is no longer available for linking, please submit again").
			WithOp("complaint.create_duplicate").
			WithDetail("masterComplaintId", masterID.String())
	}

	if err := insertComplaint(ctx, tx, complaint); err != nil {
		return fmt.Errorf("failed to create duplicate complaint: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit duplicate transaction: %w", err)
	}
	return nil
}

type queryRower interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func insertComplaint(ctx context.Context, db queryRower, complaint *models.Complaint) error {
	images := complaint.Images
	if images == nil {
		images = []models.Image{}
	}
	imagesJSON, err := json.Marshal(images)
	if err != nil {
		return fmt.Errorf("failed to marshal images: %w", err)
	}

	var officeType *string
	if complaint.AssignedOfficeType != "" {
		t := string(complaint.AssignedOfficeType)
		officeType = &t
	}

	return db.QueryRow(ctx, insertComplaintQuery,
		complaint.Title,
		complaint.Description,
		complaint.Category,
		complaint.Location.Longitude,
		complaint.Location.Latitude,
		imagesJSON,
		complaint.Status,
		complaint.Priority.Level,
		complaint.Priority.AIProcessingStatus,
		complaint.DuplicateInfo.IsDuplicate,
		complaint.DuplicateInfo.MasterComplaintID,
		complaint.AssignedOfficeID,
		officeType,
		complaint.RoutingDistanceMeters,
		complaint.RoutingReason,
		complaint.ReportedBy,
	).Scan(&complaint.ID, &complaint.CreatedAt, &complaint.UpdatedAt)
}

// GetByID возвращает обращение по его UUID
func (r *ComplaintRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Complaint, error) {
	query := `SELECT ` + complaintColumns + ` FROM complaints c WHERE c.id = $1;`

	complaint, err := scanComplaint(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound(fmt.Sprintf("complaint with id %s not found", id)).WithOp("complaint.get")
		}
		return nil, fmt.Errorf("failed to get complaint by id: %w", err)
	}
	return complaint, nil
}

// ListByReporter возвращает обращения автора с пагинацией, новые первыми
func (r *ComplaintRepository) ListByReporter(ctx context.Context, reporterID string, page, pageSize int) ([]*models.Complaint, error) {
	offset := (page - 1) * pageSize

	query := `
		SELECT ` + complaintColumns + `
		FROM complaints c
		WHERE c.reported_by = $1
		ORDER BY c.created_at DESC, c.id
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.db.Query(ctx, query, reporterID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list complaints: %w", err)
	}
	return collectComplaints(rows)
}

// TransitionStatus меняет статус в одной транзакции: строка блокируется FOR UPDATE,
// guard проверяет переход на заблокированном состоянии, затем статус записывается
// и, если guard вернул офис, его нагрузка уменьшается. Конкурентный переход ждет
// блокировку и видит уже записанный статус.
func (r *ComplaintRepository) TransitionStatus(ctx context.Context, id uuid.UUID, next models.Status, guard models.StatusGuard) (*models.StatusChange, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin status transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	query := `SELECT ` + complaintColumns + ` FROM complaints c WHERE c.id = $1 FOR UPDATE;`
	current, err := scanComplaint(tx.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound(fmt.Sprintf("complaint with id %s not found for status update", id)).WithOp("complaint.update_status")
		}
		return nil, fmt.Errorf("failed to lock complaint for status update: %w", err)
	}

	releaseOfficeID, err := guard(current)
	if err != nil {
		return nil, err
	}

	previous := current.Status
	err = tx.QueryRow(ctx, `UPDATE complaints SET status = $2 WHERE id = $1 RETURNING updated_at;`, id, next).
		Scan(&current.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to update complaint status: %w", err)
	}
	current.Status = next

	if releaseOfficeID != nil {
		cmdTag, err := tx.Exec(ctx, decrementWorkloadQuery, *releaseOfficeID)
		if err != nil {
			return nil, fmt.Errorf("failed to release office workload: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return nil, apperr.NotFound(fmt.Sprintf("office with id %s not found", *releaseOfficeID)).WithOp("complaint.update_status")
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit status transaction: %w", err)
	}
	return &models.StatusChange{
		Complaint:        current,
		Previous:         previous,
		ReleasedOfficeID: releaseOfficeID,
	}, nil
}

// FindNearbyRecent ищет ближайшее обращение той же категории в радиусе и окне времени
func (r *ComplaintRepository) FindNearbyRecent(ctx context.Context, q models.DuplicateQuery) (*models.Complaint, error) {
	reporterCond := "c.reported_by <> $6"
	if q.SameReporter {
		reporterCond = "c.reported_by = $6"
	}

	query := `
		SELECT ` + complaintColumns + `
		FROM complaints c
		WHERE
			c.category = $3
			AND c.created_at >= NOW() - make_interval(hours => $4)
			AND ST_DWithin(c.location, ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography, $5)
			AND ` + reporterCond + `
		ORDER BY ST_Distance(c.location, ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography), c.id
		LIMIT 1;
	`
	complaint, err := scanComplaint(r.db.QueryRow(ctx, query,
		q.Location.Longitude,
		q.Location.Latitude,
		q.Category,
		q.MaxAgeHours,
		q.RadiusMeters,
		q.ReporterID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find nearby complaints: %w", err)
	}
	return complaint, nil
}

// ListUpdatedBetween возвращает обращения с updated_at в полуинтервале (from, to]
func (r *ComplaintRepository) ListUpdatedBetween(ctx context.Context, from, to time.Time) ([]*models.Complaint, error) {
	query := `
		SELECT ` + complaintColumns + `
		FROM complaints c
		WHERE c.updated_at > $1 AND c.updated_at <= $2
		ORDER BY c.updated_at, c.id;
	`
	rows, err := r.db.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list updated complaints: %w", err)
	}
	return collectComplaints(rows)
}

func collectComplaints(rows pgx.Rows) ([]*models.Complaint, error) {
	defer rows.Close()

	complaints := make([]*models.Complaint, 0)
	for rows.Next() {
		complaint, err := scanComplaint(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan complaint row: %w", err)
		}
		complaints = append(complaints, complaint)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return complaints, nil
}

func scanComplaint(row rowScanner) (*models.Complaint, error) {
	var (
		c            models.Complaint
		imagesJSON   []byte
		metadataJSON []byte
		officeType   *string
	)
	err := row.Scan(
		&c.ID,
		&c.Title,
		&c.Description,
		&c.Category,
		&c.Location.Longitude,
		&c.Location.Latitude,
		&imagesJSON,
		&c.Status,
		&c.SeverityScore,
		&c.Priority.Score,
		&c.Priority.Level,
		&c.Priority.Reason,
		&c.Priority.AIProcessed,
		&c.Priority.AIProcessingStatus,
		&metadataJSON,
		&c.DuplicateInfo.IsDuplicate,
		&c.DuplicateInfo.MasterComplaintID,
		&c.DuplicateInfo.DuplicateCount,
		&c.AssignedOfficeID,
		&officeType,
		&c.RoutingDistanceMeters,
		&c.RoutingReason,
		&c.ReportedBy,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	c.Images = []models.Image{}
	if len(imagesJSON) > 0 {
		if err := json.Unmarshal(imagesJSON, &c.Images); err != nil {
			return nil, fmt.Errorf("failed to unmarshal complaint images: %w", err)
		}
	}
	if len(metadataJSON) > 0 {
		if err := json.Unmarshal(metadataJSON, &c.AIMetadata); err != nil {
			return nil, fmt.Errorf("failed to unmarshal complaint ai metadata: %w", err)
		}
	}
	if officeType != nil {
		c.AssignedOfficeType = models.OfficeType(*officeType)
	}
	return &c, nil
}
