package models

import "github.com/google/uuid"

type DetectionType string

const (
	DetectionNone               DetectionType = "none"
	DetectionSameUserRecent     DetectionType = "same_user_recent"
	DetectionCrossUserDuplicate DetectionType = "cross_user_duplicate"
)

// DetectionResult - результат проверки на дубликат.
// ExistingComplaintID заполняется для same_user_recent, Master - для cross_user_duplicate.
type DetectionResult struct {
	Type                DetectionType
	ExistingComplaintID uuid.UUID
	Master              *Complaint
}

// DuplicateQuery - параметры поиска соседнего обращения
type DuplicateQuery struct {
	ReporterID   string
	SameReporter bool
	Category     Category
	Location     Point
	RadiusMeters float64
	MaxAgeHours  int
}
