package scoring

import (
	"math"

	"github.com/jonboulle/clockwork"
	"github.com/shenikar/travel_safety_system/internal/config"
	"github.com/shenikar/travel_safety_system/internal/models"
)

// CrimeScoreCalculator переводит выборку леджера в балл 0-100.
// Балл стартует со 100; i-й инцидент снимает base_penalty * decay^i -
// штраф затухает, чтобы скопление репортов не пробивало пол 0.
// Инциденты внутри окна давности весят в recent_weight раз больше.
type CrimeScoreCalculator struct {
	cfg   config.ScoringConfig
	clock clockwork.Clock
}

// NewCrimeScoreCalculator создает калькулятор с явной конфигурацией и часами
func NewCrimeScoreCalculator(cfg config.ScoringConfig, clock clockwork.Clock) *CrimeScoreCalculator {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &CrimeScoreCalculator{cfg: cfg, clock: clock}
}

// Calculate вычисляет криминальный сигнал по инцидентам из радиуса запроса
func (c *CrimeScoreCalculator) Calculate(incidents []models.Incident) models.CrimeSignal {
	if len(incidents) == 0 {
		return models.CrimeSignal{
			Score:         100,
			IncidentTypes: []models.IncidentType{},
			Message:       "no incidents reported in this area",
			DataSource:    models.DataSourceUserReports,
		}
	}

	cutoff := c.clock.Now().Add(-c.cfg.RecentWindow)

	var penalty float64
	recent := 0
	seen := make(map[models.IncidentType]bool)
	types := make([]models.IncidentType, 0)

	for i, incident := range incidents {
		p := c.cfg.CrimeBasePenalty * math.Pow(c.cfg.CrimeDecay, float64(i))
		if !incident.ReportedAt.Before(cutoff) {
			p *= c.cfg.CrimeRecentWeight
			recent++
		}
		penalty += p

		if !seen[incident.IncidentType] {
			seen[incident.IncidentType] = true
			types = append(types, incident.IncidentType)
		}
	}

	return models.CrimeSignal{
		Score:           clampScore(100 - penalty),
		TotalIncidents:  len(incidents),
		RecentIncidents: recent,
		IncidentTypes:   types,
		DataSource:      models.DataSourceUserReports,
	}
}

// clampScore ограничивает балл сигнала диапазоном [0, 100]
func clampScore(score float64) float64 {
	return math.Min(100, math.Max(0, score))
}
