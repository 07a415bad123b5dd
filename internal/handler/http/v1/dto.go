package v1

import (
	"time"

	"github.com/google/uuid"
)

// CreateComplaintRequest DTO для создания обращения (multipart/form-data, фото в поле image)
// @Description DTO для создания обращения
type CreateComplaintRequest struct {
	Title       string   `form:"title" validate:"required,min=3,max=255"`
	Description string   `form:"description" validate:"required,max=5000"`
	Category    string   `form:"category" validate:"required,oneof=pothole garbage streetlight water sewage road other"`
	Longitude   *float64 `form:"longitude" validate:"required,longitude"`
	Latitude    *float64 `form:"latitude" validate:"required,latitude"`
}

// UpdateStatusRequest DTO для смены статуса обращения
// @Description DTO для смены статуса обращения
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// RegisterPushTokenRequest DTO для регистрации push-токена устройства
// @Description DTO для регистрации push-токена устройства
type RegisterPushTokenRequest struct {
	Token string `json:"token" validate:"required,max=512"`
}

// LocationResponse - точка в формате [lng, lat]
type LocationResponse struct {
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
}

type ImageResponse struct {
	URL        string    `json:"url"`
	UploadedAt time.Time `json:"uploaded_at"`
}

type PriorityResponse struct {
	Score              float64 `json:"score"`
	Level              string  `json:"level"`
	Reason             string  `json:"reason"`
	AIProcessed        bool    `json:"ai_processed"`
	AIProcessingStatus string  `json:"ai_processing_status"`
}

type DuplicateInfoResponse struct {
	IsDuplicate       bool       `json:"is_duplicate"`
	MasterComplaintID *uuid.UUID `json:"master_complaint_id,omitempty"`
	DuplicateCount    int        `json:"duplicate_count"`
}

// ComplaintResponse DTO для ответа с информацией об обращении
// @Description DTO для ответа с информацией об обращении
type ComplaintResponse struct {
	ID                    uuid.UUID             `json:"id"`
	Title                 string                `json:"title"`
	Description           string                `json:"description"`
	Category              string                `json:"category"`
	Location              LocationResponse      `json:"location"`
	Images                []ImageResponse       `json:"images"`
	Status                string                `json:"status"`
	SeverityScore         float64               `json:"severity_score"`
	Priority              PriorityResponse      `json:"priority"`
	DuplicateInfo         DuplicateInfoResponse `json:"duplicate_info"`
	AssignedOfficeID      *uuid.UUID            `json:"assigned_office_id,omitempty"`
	AssignedOfficeType    string                `json:"assigned_office_type,omitempty"`
	RoutingDistanceMeters *float64              `json:"routing_distance_meters,omitempty"`
	RoutingReason         string                `json:"routing_reason,omitempty"`
	ReportedBy            string                `json:"reported_by"`
	CreatedAt             time.Time             `json:"created_at"`
	UpdatedAt             time.Time             `json:"updated_at"`
}

// NotificationResponse DTO для ответа с уведомлением
// @Description DTO для ответа с уведомлением
type NotificationResponse struct {
	ID          uuid.UUID  `json:"id"`
	ComplaintID *uuid.UUID `json:"complaint_id,omitempty"`
	Title       string     `json:"title"`
	Message     string     `json:"message"`
	Read        bool       `json:"read"`
	CreatedAt   time.Time  `json:"created_at"`
}

// NotificationListResponse DTO для страницы уведомлений
// @Description DTO для страницы уведомлений
type NotificationListResponse struct {
	Items    []*NotificationResponse `json:"items"`
	Total    int                     `json:"total"`
	Page     int                     `json:"page"`
	PageSize int                     `json:"page_size"`
}

type UnreadCountResponse struct {
	Count int `json:"count"`
}

type MarkAllReadResponse struct {
	Updated int64 `json:"updated"`
}

// HealthResponse DTO для ответа health-check
// @Description DTO для ответа health-check
type HealthResponse struct {
	Status      string `json:"status"`
	WatcherMode string `json:"watcher_mode"`
}
