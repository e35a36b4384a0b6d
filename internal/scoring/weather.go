package scoring

import (
	"strings"

	"github.com/shenikar/travel_safety_system/internal/config"
	"github.com/shenikar/travel_safety_system/internal/models"
)

// Модификаторы поверх таблицы condition -> балл
const (
	windThresholdMS   = 15.0
	windPenalty       = 10.0
	visibilityMinKm   = 1.0
	visibilityPenalty = 15.0
	tempLowC          = -10.0
	tempHighC         = 40.0
	tempPenalty       = 10.0
)

// WeatherScoreCalculator переводит показание погодного коллаборатора в балл
// 0-100 по явной таблице из конфигурации. Недоступность провайдера никогда
// не становится ошибкой запроса - подставляется нейтральный fallback-балл
// с data_source = "fallback".
type WeatherScoreCalculator struct {
	cfg config.ScoringConfig
}

// NewWeatherScoreCalculator создает калькулятор с явной конфигурацией
func NewWeatherScoreCalculator(cfg config.ScoringConfig) *WeatherScoreCalculator {
	return &WeatherScoreCalculator{cfg: cfg}
}

// FromReading вычисляет погодный сигнал из живого показания
func (c *WeatherScoreCalculator) FromReading(r models.WeatherReading) models.WeatherSignal {
	condition := strings.ToLower(r.Condition)
	score, ok := c.cfg.WeatherScores[condition]
	if !ok {
		score = c.cfg.WeatherUnknownScore
	}

	if r.WindSpeed > windThresholdMS {
		score -= windPenalty
	}
	if r.VisibilityKm > 0 && r.VisibilityKm < visibilityMinKm {
		score -= visibilityPenalty
	}
	if r.Temperature < tempLowC || r.Temperature > tempHighC {
		score -= tempPenalty
	}

	return models.WeatherSignal{
		Score:        clampScore(score),
		Condition:    condition,
		Description:  r.Description,
		Temperature:  r.Temperature,
		WindSpeed:    r.WindSpeed,
		VisibilityKm: r.VisibilityKm,
		Humidity:     r.Humidity,
		DataSource:   models.DataSourceLive,
	}
}

// Fallback возвращает документированный нейтральный сигнал при недоступном провайдере
func (c *WeatherScoreCalculator) Fallback() models.WeatherSignal {
	return models.WeatherSignal{
		Score:       clampScore(c.cfg.WeatherFallbackScore),
		Condition:   "unknown",
		Description: "weather data unavailable",
		DataSource:  models.DataSourceFallback,
	}
}
