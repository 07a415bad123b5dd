package service

import (
	"github.com/google/uuid"
	"github.com/shenikar/civic_reporting_system/internal/models"
)

func ptrUUID(id uuid.UUID) *uuid.UUID {
	return &id
}

func ptrFloat(v float64) *float64 {
	return &v
}

func office(officeType models.OfficeType, zone string, workload, capacity int) models.MunicipalOffice {
	return models.MunicipalOffice{
		ID:          uuid.New(),
		Name:        string(officeType) + " office " + zone,
		Type:        officeType,
		Zone:        zone,
		Workload:    workload,
		MaxCapacity: capacity,
		IsActive:    true,
	}
}
