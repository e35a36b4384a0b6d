package models

import (
	"time"
)

// IncidentType - закрытый перечень типов инцидентов, сообщаемых пользователями
type IncidentType string

const (
	IncidentTheft      IncidentType = "theft"
	IncidentAssault    IncidentType = "assault"
	IncidentVandalism  IncidentType = "vandalism"
	IncidentSuspicious IncidentType = "suspicious_activity"
	IncidentOther      IncidentType = "other"
)

// Valid проверяет, входит ли тип в закрытый перечень
func (t IncidentType) Valid() bool {
	switch t {
	case IncidentTheft, IncidentAssault, IncidentVandalism, IncidentSuspicious, IncidentOther:
		return true
	}
	return false
}

// Incident - сохранённая запись об инциденте. Запись неизменяема:
// id и reported_at присваивает леджер при вставке, клиентское время не используется.
type Incident struct {
	ID           int64        `json:"id"`
	Latitude     float64      `json:"latitude"`
	Longitude    float64      `json:"longitude"`
	IncidentType IncidentType `json:"incident_type"`
	Description  string       `json:"description,omitempty"`
	ReportedAt   time.Time    `json:"reported_at"`
}

// IncidentDraft - данные нового инцидента от клиента, до присвоения id и reported_at
type IncidentDraft struct {
	Latitude     float64
	Longitude    float64
	IncidentType IncidentType
	Description  string
}

// GeoQuery - выборка инцидентов по радиусу вокруг точки
type GeoQuery struct {
	Latitude  float64
	Longitude float64
	RadiusKm  float64
}

// ValidateCoordinates проверяет географические координаты
func ValidateCoordinates(lat, lon float64) error {
	if lat < -90 || lat > 90 {
		return &ValidationError{Field: "latitude", Message: "latitude must be between -90 and 90"}
	}
	if lon < -180 || lon > 180 {
		return &ValidationError{Field: "longitude", Message: "longitude must be between -180 and 180"}
	}
	return nil
}

// Validate проверяет параметры гео-запроса
func (q GeoQuery) Validate() error {
	if err := ValidateCoordinates(q.Latitude, q.Longitude); err != nil {
		return err
	}
	if q.RadiusKm <= 0 {
		return &ValidationError{Field: "radius_km", Message: "radius_km must be positive"}
	}
	return nil
}
