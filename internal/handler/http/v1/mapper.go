package v1

import "github.com/shenikar/travel_safety_system/internal/models"

// DTOToIncidentDraft преобразует DTO сообщения об инциденте в доменную модель
func DTOToIncidentDraft(dto ReportIncidentRequest) models.IncidentDraft {
	return models.IncidentDraft{
		Latitude:     *dto.Latitude,
		Longitude:    *dto.Longitude,
		IncidentType: models.IncidentType(dto.IncidentType),
		Description:  dto.Description,
	}
}

// DTOToGeoQuery преобразует DTO выборки в доменный геозапрос.
// Нулевой радиус означает радиус по умолчанию, его подставит сервис.
func DTOToGeoQuery(dto IncidentsNearbyRequest) models.GeoQuery {
	return models.GeoQuery{
		Latitude:  *dto.Latitude,
		Longitude: *dto.Longitude,
		RadiusKm:  dto.RadiusKm,
	}
}

// ModelToIncidentResponse преобразует доменную модель в DTO для ответа
func ModelToIncidentResponse(model models.Incident) *IncidentResponse {
	return &IncidentResponse{
		ID:           model.ID,
		Latitude:     model.Latitude,
		Longitude:    model.Longitude,
		IncidentType: string(model.IncidentType),
		Description:  model.Description,
		ReportedAt:   model.ReportedAt,
	}
}

// ModelsToIncidentResponses преобразует слайс моделей в слайс DTO
func ModelsToIncidentResponses(incidents []models.Incident) []*IncidentResponse {
	responses := make([]*IncidentResponse, len(incidents))
	for i, incident := range incidents {
		responses[i] = ModelToIncidentResponse(incident)
	}
	return responses
}

// SnapshotToResponse преобразует итоговую оценку безопасности в DTO для ответа
func SnapshotToResponse(snapshot *models.SafetySnapshot) SafetyAnalysisResponse {
	return SafetyAnalysisResponse{
		Success:     true,
		SafetyScore: snapshot.SafetyScore,
		SafetyLevel: string(snapshot.SafetyLevel),
		Alert:       snapshot.Alert,
		Breakdown:   snapshot.Breakdown,
		Factors:     snapshot.Factors,
	}
}
