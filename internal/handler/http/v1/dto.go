package v1

import (
	"time"

	"github.com/shenikar/travel_safety_system/internal/models"
)

// SafetyAnalysisRequest DTO для запроса анализа безопасности локации
// @Description DTO для запроса анализа безопасности локации
type SafetyAnalysisRequest struct {
	Latitude  *float64 `form:"latitude" validate:"required,latitude"`
	Longitude *float64 `form:"longitude" validate:"required,longitude"`
}

// ReportIncidentRequest DTO для отправки сообщения об инциденте
// @Description DTO для отправки сообщения об инциденте
type ReportIncidentRequest struct {
	Latitude     *float64 `form:"latitude" validate:"required,latitude"`
	Longitude    *float64 `form:"longitude" validate:"required,longitude"`
	IncidentType string   `form:"incident_type" validate:"required,oneof=theft assault vandalism suspicious_activity other"`
	Description  string   `form:"description" validate:"max=1000"`
}

// IncidentsNearbyRequest DTO для выборки инцидентов вокруг точки
// @Description DTO для выборки инцидентов вокруг точки
type IncidentsNearbyRequest struct {
	Latitude  *float64 `form:"latitude" validate:"required,latitude"`
	Longitude *float64 `form:"longitude" validate:"required,longitude"`
	RadiusKm  float64  `form:"radius_km" validate:"omitempty,gt=0,lte=50"`
}

// SafetyAnalysisResponse DTO для ответа с итоговой оценкой безопасности
// @Description DTO для ответа с итоговой оценкой безопасности
type SafetyAnalysisResponse struct {
	Success     bool                 `json:"success"`
	SafetyScore int                  `json:"safety_score"`
	SafetyLevel string               `json:"safety_level"`
	Alert       bool                 `json:"alert"`
	Breakdown   map[string]float64   `json:"breakdown"`
	Factors     models.SafetyFactors `json:"factors"`
}

// IncidentResponse DTO для ответа с информацией об инциденте
// @Description DTO для ответа с информацией об инциденте
type IncidentResponse struct {
	ID           int64     `json:"id"`
	Latitude     float64   `json:"latitude"`
	Longitude    float64   `json:"longitude"`
	IncidentType string    `json:"incident_type"`
	Description  string    `json:"description,omitempty"`
	ReportedAt   time.Time `json:"reported_at"`
}

// ReportIncidentResponse DTO для ответа на сообщение об инциденте
// @Description DTO для ответа на сообщение об инциденте
type ReportIncidentResponse struct {
	Success  bool              `json:"success"`
	Message  string            `json:"message"`
	Incident *IncidentResponse `json:"incident"`
}

// IncidentsNearbyResponse DTO для ответа со списком инцидентов вокруг точки
// @Description DTO для ответа со списком инцидентов вокруг точки
type IncidentsNearbyResponse struct {
	Success   bool                `json:"success"`
	Count     int                 `json:"count"`
	Incidents []*IncidentResponse `json:"incidents"`
}

// ErrorResponse DTO для ответа с ошибкой
// @Description DTO для ответа с ошибкой
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}
