package models

import (
	"time"

	"github.com/google/uuid"
)

type OfficeType string

const (
	OfficeTypeMain OfficeType = "main"
	OfficeTypeSub  OfficeType = "sub"
)

// MunicipalOffice создается административным сервисом, нагрузку меняет только WorkloadTracker
type MunicipalOffice struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Type        OfficeType `json:"type"`
	Zone        string     `json:"zone"`
	Location    Point      `json:"location"`
	Workload    int        `json:"workload"`
	MaxCapacity int        `json:"max_capacity"`
	IsActive    bool       `json:"is_active"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// HasCapacity - есть ли место для еще одного обращения
func (o *MunicipalOffice) HasCapacity() bool {
	return o.Workload < o.MaxCapacity
}

// OfficeCandidate - офис вместе с расстоянием до точки обращения
type OfficeCandidate struct {
	Office         MunicipalOffice
	DistanceMeters float64
}

// RoutingDecision - результат работы RoutingEngine
type RoutingDecision struct {
	IsAssigned     bool       `json:"is_assigned"`
	OfficeID       *uuid.UUID `json:"office_id,omitempty"`
	OfficeType     OfficeType `json:"office_type,omitempty"`
	DistanceMeters *float64   `json:"distance_meters,omitempty"`
	Reason         string     `json:"reason"`
}
