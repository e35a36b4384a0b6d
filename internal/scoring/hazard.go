package scoring

import (
	"github.com/shenikar/travel_safety_system/internal/config"
	"github.com/shenikar/travel_safety_system/internal/models"
	"github.com/sirupsen/logrus"
)

// ImageHazardAdapter нормализует сырой ответ vision-коллаборатора в сигнал
// опасности: score = 100 - sum(штраф за категорию * множитель серьёзности).
// Полный отказ коллаборатора обрабатывает вызывающий (сигнала просто нет) -
// адаптер никогда не выдумывает балл без свидетельств.
type ImageHazardAdapter struct {
	cfg    config.ScoringConfig
	logger *logrus.Logger
}

// NewImageHazardAdapter создает адаптер с явной конфигурацией
func NewImageHazardAdapter(cfg config.ScoringConfig, logger *logrus.Logger) *ImageHazardAdapter {
	return &ImageHazardAdapter{cfg: cfg, logger: logger}
}

// FromReport переводит сырой отчёт в HazardSignal. Непригодное поле
// категорий разбирается best-effort и при неудаче трактуется как пустой
// набор - заявленный, а не молчаливый fallback.
func (a *ImageHazardAdapter) FromReport(report *models.RawHazardReport) *models.HazardSignal {
	if report == nil {
		return nil
	}

	categories, err := models.DecodeHazardCategories(report.RoadHazards)
	if err != nil {
		a.logger.WithError(err).Warn("Malformed road_hazards payload, treating category set as empty")
	}

	severity := models.ParseHazardSeverity(report.HazardSeverity)
	multiplier, ok := a.cfg.HazardSeverityWeights[severity]
	if !ok {
		multiplier = 1.0
	}

	penalty := float64(categories.Count()) * a.cfg.HazardCategoryPenalty * multiplier

	travelSafe := !severity.ForcesAlert()
	if report.TravelSafe != nil {
		travelSafe = *report.TravelSafe
	}

	return &models.HazardSignal{
		Score:       clampScore(100 - penalty),
		Severity:    severity,
		Categories:  categories.Detected(),
		Description: report.HazardDescription,
		TravelSafe:  travelSafe,
	}
}
