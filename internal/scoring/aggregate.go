package scoring

import (
	"math"

	"github.com/shenikar/travel_safety_system/internal/config"
	"github.com/shenikar/travel_safety_system/internal/models"
)

// Имена сигналов в breakdown снапшота
const (
	BreakdownWeather = "weather"
	BreakdownCrime   = "crime_data"
	BreakdownImage   = "image_analysis"
)

// SafetyAggregator сводит доступные сигналы в снапшот по каноническим весам.
// Когда сигнал по фото отсутствует, его вес перераспределяется
// пропорционально между оставшимися - агрегат никогда не считается по
// весам с суммой меньше 1.0.
type SafetyAggregator struct {
	cfg config.ScoringConfig
}

// NewSafetyAggregator создает агрегатор с явной конфигурацией
func NewSafetyAggregator(cfg config.ScoringConfig) *SafetyAggregator {
	return &SafetyAggregator{cfg: cfg}
}

// Aggregate строит снапшот из криминального и погодного сигналов и
// опционального сигнала по фото
func (a *SafetyAggregator) Aggregate(crime models.CrimeSignal, weather models.WeatherSignal, hazard *models.HazardSignal) models.SafetySnapshot {
	breakdown := map[string]float64{
		BreakdownWeather: weather.Score,
		BreakdownCrime:   crime.Score,
	}

	var weighted float64
	if hazard != nil {
		weighted = a.cfg.WeightWeather*weather.Score +
			a.cfg.WeightCrime*crime.Score +
			a.cfg.WeightImage*hazard.Score
		breakdown[BreakdownImage] = hazard.Score
	} else {
		remaining := a.cfg.WeightWeather + a.cfg.WeightCrime
		weighted = (a.cfg.WeightWeather*weather.Score + a.cfg.WeightCrime*crime.Score) / remaining
	}

	// Итог зажимается к [1, 100]: ноль зарезервирован за "нет данных"
	score := int(math.Round(weighted))
	if score < 1 {
		score = 1
	}
	if score > 100 {
		score = 100
	}

	alert := score < a.cfg.AlertThreshold
	if hazard != nil && hazard.Severity.ForcesAlert() {
		// Визуально подтверждённая серьёзная опасность поднимает alert
		// даже при благоприятных остальных сигналах
		alert = true
	}

	return models.SafetySnapshot{
		SafetyScore: score,
		SafetyLevel: levelForScore(score),
		Alert:       alert,
		Breakdown:   breakdown,
		Factors: models.SafetyFactors{
			Weather: weather,
			Crime:   crime,
			Image:   hazard,
		},
	}
}

// levelForScore - детерминированная разбивка балла на качественные уровни
func levelForScore(score int) models.SafetyLevel {
	switch {
	case score >= 80:
		return models.LevelVerySafe
	case score >= 60:
		return models.LevelSafe
	case score >= 40:
		return models.LevelModerate
	case score >= 20:
		return models.LevelCaution
	default:
		return models.LevelUnsafe
	}
}
