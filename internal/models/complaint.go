package models

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// Category - категория обращения
type Category string

const (
	CategoryPothole     Category = "pothole"
	CategoryGarbage     Category = "garbage"
	CategoryStreetlight Category = "streetlight"
	CategoryWater       Category = "water"
	CategorySewage      Category = "sewage"
	CategoryRoad        Category = "road"
	CategoryOther       Category = "other"
)

// Categories перечисляет допустимые категории
var Categories = []Category{
	CategoryPothole,
	CategoryGarbage,
	CategoryStreetlight,
	CategoryWater,
	CategorySewage,
	CategoryRoad,
	CategoryOther,
}

// IsValid проверяет, что категория входит в перечисление
func (c Category) IsValid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Point - точка в формате [lng, lat]
type Point struct {
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
}

// IsValid требует конечную пару координат в допустимых пределах
func (p Point) IsValid() bool {
	if math.IsNaN(p.Longitude) || math.IsNaN(p.Latitude) ||
		math.IsInf(p.Longitude, 0) || math.IsInf(p.Latitude, 0) {
		return false
	}
	return p.Longitude >= -180 && p.Longitude <= 180 && p.Latitude >= -90 && p.Latitude <= 90
}

type Image struct {
	URL        string    `json:"url"`
	UploadedAt time.Time `json:"uploaded_at"`
}

type PriorityLevel string

const (
	PriorityLow    PriorityLevel = "low"
	PriorityMedium PriorityLevel = "medium"
	PriorityHigh   PriorityLevel = "high"
)

type AIProcessingStatus string

const (
	AIProcessingPending AIProcessingStatus = "pending"
	AIProcessingDone    AIProcessingStatus = "done"
	AIProcessingFailed  AIProcessingStatus = "failed"
)

// Priority заполняется внешним AI-сервисом, кроме значений по умолчанию
type Priority struct {
	Score              float64            `json:"score"`
	Level              PriorityLevel      `json:"level"`
	Reason             string             `json:"reason"`
	AIProcessed        bool               `json:"ai_processed"`
	AIProcessingStatus AIProcessingStatus `json:"ai_processing_status"`
}

// AIMetadata - флаги, которые AI-сервис выставляет для ручной проверки
type AIMetadata struct {
	ReviewRequired bool `json:"reviewRequired,omitempty"`
	AIDuplicate    bool `json:"aiDuplicate,omitempty"`
}

type DuplicateInfo struct {
	IsDuplicate       bool       `json:"is_duplicate"`
	MasterComplaintID *uuid.UUID `json:"master_complaint_id,omitempty"`
	DuplicateCount    int        `json:"duplicate_count"`
}

type Complaint struct {
	ID                    uuid.UUID     `json:"id"`
	Title                 string        `json:"title"`
	Description           string        `json:"description"`
	Category              Category      `json:"category"`
	Location              Point         `json:"location"`
	Images                []Image       `json:"images"`
	Status                Status        `json:"status"`
	SeverityScore         float64       `json:"severity_score"`
	Priority              Priority      `json:"priority"`
	AIMetadata            AIMetadata    `json:"ai_metadata"`
	DuplicateInfo         DuplicateInfo `json:"duplicate_info"`
	AssignedOfficeID      *uuid.UUID    `json:"assigned_office_id,omitempty"`
	AssignedOfficeType    OfficeType    `json:"assigned_office_type,omitempty"`
	RoutingDistanceMeters *float64      `json:"routing_distance_meters,omitempty"`
	RoutingReason         string        `json:"routing_reason,omitempty"`
	ReportedBy            string        `json:"reported_by"`
	CreatedAt             time.Time     `json:"created_at"`
	UpdatedAt             time.Time     `json:"updated_at"`
}

// NewComplaintInput - проверенные входные данные для создания обращения
type NewComplaintInput struct {
	ReporterID  string
	Title       string
	Description string
	Category    Category
	Location    Point
	Image       *ImageUpload
}

// ImageUpload - бинарные данные фотографии с заявленным MIME-типом
type ImageUpload struct {
	FileName    string
	ContentType string
	Size        int64
	Data        []byte
}

// DefaultPriority - начальные значения до обработки AI-сервисом
func DefaultPriority() Priority {
	return Priority{
		Level:              PriorityLow,
		AIProcessingStatus: AIProcessingPending,
	}
}
