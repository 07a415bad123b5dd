package v1

import "github.com/shenikar/civic_reporting_system/internal/models"

// DTOToComplaintInput собирает входные данные сервиса из формы; image может быть nil
func DTOToComplaintInput(reporterID string, dto CreateComplaintRequest, image *models.ImageUpload) models.NewComplaintInput {
	return models.NewComplaintInput{
		ReporterID:  reporterID,
		Title:       dto.Title,
		Description: dto.Description,
		Category:    models.Category(dto.Category),
		Location: models.Point{
			Longitude: *dto.Longitude,
			Latitude:  *dto.Latitude,
		},
		Image: image,
	}
}

// ModelToComplaintResponse преобразует доменную модель в DTO для ответа
func ModelToComplaintResponse(model *models.Complaint) *ComplaintResponse {
	images := make([]ImageResponse, len(model.Images))
	for i, img := range model.Images {
		images[i] = ImageResponse{URL: img.URL, UploadedAt: img.UploadedAt}
	}

	return &ComplaintResponse{
		ID:          model.ID,
		Title:       model.Title,
		Description: model.Description,
		Category:    string(model.Category),
		Location: LocationResponse{
			Longitude: model.Location.Longitude,
			Latitude:  model.Location.Latitude,
		},
		Images:        images,
		Status:        string(model.Status),
		SeverityScore: model.SeverityScore,
		Priority: PriorityResponse{
			Score:              model.Priority.Score,
			Level:              string(model.Priority.Level),
			Reason:             model.Priority.Reason,
			AIProcessed:        model.Priority.AIProcessed,
			AIProcessingStatus: string(model.Priority.AIProcessingStatus),
		},
		DuplicateInfo: DuplicateInfoResponse{
			IsDuplicate:       model.DuplicateInfo.IsDuplicate,
			MasterComplaintID: model.DuplicateInfo.MasterComplaintID,
			DuplicateCount:    model.DuplicateInfo.DuplicateCount,
		},
		AssignedOfficeID:      model.AssignedOfficeID,
		AssignedOfficeType:    string(model.AssignedOfficeType),
		RoutingDistanceMeters: model.RoutingDistanceMeters,
		RoutingReason:         model.RoutingReason,
		ReportedBy:            model.ReportedBy,
		CreatedAt:             model.CreatedAt,
		UpdatedAt:             model.UpdatedAt,
	}
}

// ModelsToComplaintResponses преобразует слайс моделей в слайс DTO
func ModelsToComplaintResponses(models []*models.Complaint) []*ComplaintResponse {
	responses := make([]*ComplaintResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToComplaintResponse(model)
	}
	return responses
}

func ModelToNotificationResponse(model *models.Notification) *NotificationResponse {
	return &NotificationResponse{
		ID:          model.ID,
		ComplaintID: model.ComplaintID,
		Title:       model.Title,
		Message:     model.Message,
		Read:        model.Read,
		CreatedAt:   model.CreatedAt,
	}
}

func ModelsToNotificationResponses(models []*models.Notification) []*NotificationResponse {
	responses := make([]*NotificationResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToNotificationResponse(model)
	}
	return responses
}
