package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Источники данных сигналов
const (
	DataSourceLive        = "live"
	DataSourceFallback    = "fallback"
	DataSourceUserReports = "user_reports"
)

// CrimeSignal - криминальный сигнал, вычисляемый из выборки леджера. Не хранится.
type CrimeSignal struct {
	Score           float64        `json:"score"`
	TotalIncidents  int            `json:"total_incidents"`
	RecentIncidents int            `json:"recent_incidents"`
	IncidentTypes   []IncidentType `json:"incident_types"`
	Message         string         `json:"message,omitempty"`
	DataSource      string         `json:"data_source"`
}

// WeatherReading - сырое показание внешнего погодного коллаборатора
type WeatherReading struct {
	Condition    string
	Description  string
	Temperature  float64
	WindSpeed    float64
	VisibilityKm float64
	Humidity     int
	City         string
}

// WeatherSignal - погодный сигнал. data_source = "fallback" означает,
// что провайдер был недоступен и подставлен нейтральный балл.
type WeatherSignal struct {
	Score        float64 `json:"score"`
	Condition    string  `json:"condition"`
	Description  string  `json:"description,omitempty"`
	Temperature  float64 `json:"temperature"`
	WindSpeed    float64 `json:"wind_speed"`
	VisibilityKm float64 `json:"visibility_km"`
	Humidity     int     `json:"humidity"`
	DataSource   string  `json:"data_source"`
}

// HazardSeverity - уровень опасности, определённый vision-коллаборатором
type HazardSeverity string

const (
	SeverityNone     HazardSeverity = "none"
	SeverityLow      HazardSeverity = "low"
	SeverityMedium   HazardSeverity = "medium"
	SeverityHigh     HazardSeverity = "high"
	SeverityCritical HazardSeverity = "critical"
)

// ParseHazardSeverity нормализует строку коллаборатора к известному уровню.
// Регистр не важен; исторически провайдер присылал и "moderate" вместо "medium".
func ParseHazardSeverity(s string) HazardSeverity {
	normalized := strings.ToLower(s)
	switch HazardSeverity(normalized) {
	case SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical:
		return HazardSeverity(normalized)
	}
	if normalized == "moderate" {
		return SeverityMedium
	}
	return SeverityNone
}

// ForcesAlert - опасность high/critical поднимает alert независимо от численного балла
func (s HazardSeverity) ForcesAlert() bool {
	return s == SeverityHigh || s == SeverityCritical
}

// HazardCategories - набор категорий дорожных опасностей из vision-ответа.
// Имена json-полей повторяют контракт провайдера.
type HazardCategories struct {
	Construction    bool `json:"construction_roadwork"`
	Flooding        bool `json:"water_flooding"`
	Obstacles       bool `json:"obstacles_debris"`
	PoorRoadSurface bool `json:"poor_road_condition"`
	TrafficHazard   bool `json:"traffic_hazards"`
}

// Detected возвращает имена обнаруженных категорий в стабильном порядке
func (c HazardCategories) Detected() []string {
	names := make([]string, 0, 5)
	if c.Construction {
		names = append(names, "construction")
	}
	if c.Flooding {
		names = append(names, "flooding")
	}
	if c.Obstacles {
		names = append(names, "obstacles")
	}
	if c.PoorRoadSurface {
		names = append(names, "poor_road_surface")
	}
	if c.TrafficHazard {
		names = append(names, "traffic_hazard")
	}
	return names
}

// Count - количество обнаруженных категорий
func (c HazardCategories) Count() int {
	return len(c.Detected())
}

// DecodeHazardCategories разбирает поле road_hazards как tagged union:
// провайдер присылает либо структурированный объект, либо (известная
// несовместимость) JSON-объект, закодированный строкой. Непригодный payload
// даёт пустой набор и ErrMalformedPayload - вызывающий логирует и продолжает.
func DecodeHazardCategories(raw json.RawMessage) (HazardCategories, error) {
	var cats HazardCategories
	if len(raw) == 0 {
		return cats, nil
	}

	if err := json.Unmarshal(raw, &cats); err == nil {
		return cats, nil
	}

	// Ветка закодированной строки: `"{\"water_flooding\": true}"`.
	var encoded string
	if err := json.Unmarshal(raw, &encoded); err == nil {
		if err := json.Unmarshal([]byte(encoded), &cats); err == nil {
			return cats, nil
		}
	}

	return HazardCategories{}, fmt.Errorf("road_hazards has unexpected shape: %w", ErrMalformedPayload)
}

// RawHazardReport - сырой ответ vision-коллаборатора до нормализации
type RawHazardReport struct {
	RoadHazards       json.RawMessage `json:"road_hazards"`
	HazardSeverity    string          `json:"hazard_severity"`
	HazardDescription string          `json:"hazard_description"`
	Lighting          string          `json:"lighting"`
	TravelSafe        *bool           `json:"travel_safe"`
	SafetyNotes       string          `json:"safety_notes"`
}

// HazardSignal - нормализованный сигнал по фото. Присутствует только когда
// изображение было передано и коллаборатор вернул пригодный ответ.
type HazardSignal struct {
	Score       float64        `json:"score"`
	Severity    HazardSeverity `json:"severity"`
	Categories  []string       `json:"categories"`
	Description string         `json:"description,omitempty"`
	TravelSafe  bool           `json:"travel_safe"`
}

// SafetyLevel - качественная оценка безопасности
type SafetyLevel string

const (
	LevelVerySafe SafetyLevel = "very_safe"
	LevelSafe     SafetyLevel = "safe"
	LevelModerate SafetyLevel = "moderate"
	LevelCaution  SafetyLevel = "caution"
	LevelUnsafe   SafetyLevel = "unsafe"
)

// SafetyFactors - сырые сигналы, вошедшие в снапшот
type SafetyFactors struct {
	Weather WeatherSignal `json:"weather"`
	Crime   CrimeSignal   `json:"crime_data"`
	Image   *HazardSignal `json:"image_analysis,omitempty"`
}

// SafetySnapshot - итог агрегации. Вычисляется заново на каждый запрос,
// движком не персистится. В breakdown попадают только вычисленные сигналы.
type SafetySnapshot struct {
	SafetyScore int                `json:"safety_score"`
	SafetyLevel SafetyLevel        `json:"safety_level"`
	Alert       bool               `json:"alert"`
	Breakdown   map[string]float64 `json:"breakdown"`
	Factors     SafetyFactors      `json:"factors"`
}
