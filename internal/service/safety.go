package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/shenikar/travel_safety_system/internal/config"
	"github.com/shenikar/travel_safety_system/internal/models"
	"github.com/shenikar/travel_safety_system/internal/observability"
	"github.com/shenikar/travel_safety_system/internal/scoring"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=safety.go -destination=mocks/mock_safety.go -package=mocks

// IncidentLedger определяет контракт append-only леджера инцидентов
type IncidentLedger interface {
	Append(ctx context.Context, draft models.IncidentDraft) (models.Incident, error)
	QueryRadius(ctx context.Context, q models.GeoQuery) ([]models.Incident, error)
}

// WeatherProvider - внешний погодный коллаборатор
type WeatherProvider interface {
	CurrentConditions(ctx context.Context, lat, lon float64) (models.WeatherReading, error)
}

// VisionProvider - внешний vision-коллаборатор
type VisionProvider interface {
	AnalyzeImage(ctx context.Context, image []byte) (*models.RawHazardReport, error)
}

// CrimeScoreCache - кеш вычисленных криминальных сигналов
type CrimeScoreCache interface {
	Get(ctx context.Context, q models.GeoQuery) (*models.CrimeSignal, error)
	Set(ctx context.Context, q models.GeoQuery, signal models.CrimeSignal) error
	BumpVersion(ctx context.Context) error
}

// SafetyService определяет контракт бизнес-логики движка безопасности
type SafetyService interface {
	AnalyzeSafety(ctx context.Context, lat, lon float64, image []byte) (*models.SafetySnapshot, error)
	ReportIncident(ctx context.Context, draft models.IncidentDraft) (models.Incident, string, error)
	IncidentsNearby(ctx context.Context, q models.GeoQuery) ([]models.Incident, error)
}

type safetyService struct {
	ledger  IncidentLedger
	weather WeatherProvider
	vision  VisionProvider
	cache   CrimeScoreCache // nil, если Redis не сконфигурирован

	crimeCalc   *scoring.CrimeScoreCalculator
	weatherCalc *scoring.WeatherScoreCalculator
	hazards     *scoring.ImageHazardAdapter
	aggregator  *scoring.SafetyAggregator

	logger  *logrus.Logger
	cfg     *config.Config
	metrics *observability.Metrics
}

// NewSafetyService собирает сервис из леджера, коллабораторов и калькуляторов
func NewSafetyService(
	ledger IncidentLedger,
	weather WeatherProvider,
	vision VisionProvider,
	cache CrimeScoreCache,
	crimeCalc *scoring.CrimeScoreCalculator,
	weatherCalc *scoring.WeatherScoreCalculator,
	hazards *scoring.ImageHazardAdapter,
	aggregator *scoring.SafetyAggregator,
	logger *logrus.Logger,
	cfg *config.Config,
	metrics *observability.Metrics,
) SafetyService {
	return &safetyService{
		ledger:      ledger,
		weather:     weather,
		vision:      vision,
		cache:       cache,
		crimeCalc:   crimeCalc,
		weatherCalc: weatherCalc,
		hazards:     hazards,
		aggregator:  aggregator,
		logger:      logger,
		cfg:         cfg,
		metrics:     metrics,
	}
}

// AnalyzeSafety вычисляет свежий снапшот безопасности для координаты.
// Погода и vision опрашиваются параллельно, каждый под своим таймаутом;
// их отказы деградируют до fallback-поведения. Запрос падает только
// на невалидных координатах.
func (s *safetyService) AnalyzeSafety(ctx context.Context, lat, lon float64, image []byte) (*models.SafetySnapshot, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "safety",
		"method":  "AnalyzeSafety",
		"lat":     lat,
		"lon":     lon,
	})

	if err := models.ValidateCoordinates(lat, lon); err != nil {
		log.WithError(err).Warn("Rejected analysis request with invalid coordinates")
		return nil, err
	}
	log.Info("Starting safety analysis")

	var (
		wg            sync.WaitGroup
		weatherSignal models.WeatherSignal
		hazardSignal  *models.HazardSignal
	)

	wg.Add(1)
	go func() {
		defer wg.Done()
		wctx, cancel := context.WithTimeout(ctx, s.cfg.WeatherTimeout)
		defer cancel()

		reading, err := s.weather.CurrentConditions(wctx, lat, lon)
		if err != nil {
			log.WithError(err).Warn("Weather provider unavailable, using fallback score")
			s.metrics.WeatherFallbacks.Inc()
			weatherSignal = s.weatherCalc.Fallback()
			return
		}
		weatherSignal = s.weatherCalc.FromReading(reading)
	}()

	if len(image) > 0 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			vctx, cancel := context.WithTimeout(ctx, s.cfg.VisionTimeout)
			defer cancel()

			report, err := s.vision.AnalyzeImage(vctx, image)
			if err != nil {
				// Без свидетельств балл не выдумывается: сигнала по фото не будет
				log.WithError(err).Warn("Vision provider unavailable, skipping image signal")
				s.metrics.VisionFailures.Inc()
				return
			}
			hazardSignal = s.hazards.FromReport(report)
		}()
	}

	crimeSignal, err := s.crimeSignal(ctx, models.GeoQuery{
		Latitude:  lat,
		Longitude: lon,
		RadiusKm:  s.cfg.Scoring.DefaultRadiusKm,
	})
	if err != nil {
		return nil, fmt.Errorf("service: could not compute crime signal: %w", err)
	}

	wg.Wait()

	snapshot := s.aggregator.Aggregate(crimeSignal, weatherSignal, hazardSignal)
	s.metrics.AnalysesTotal.Inc()

	log.WithFields(logrus.Fields{
		"safety_score": snapshot.SafetyScore,
		"safety_level": snapshot.SafetyLevel,
		"alert":        snapshot.Alert,
	}).Info("Safety analysis completed")
	return &snapshot, nil
}

// crimeSignal вычисляет криминальный сигнал, по возможности через кеш.
// Ошибки кеша не роняют запрос - сигнал пересчитывается из леджера.
func (s *safetyService) crimeSignal(ctx context.Context, q models.GeoQuery) (models.CrimeSignal, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, q)
		if err != nil {
			s.metrics.CrimeCache.WithLabelValues("error").Inc()
			s.logger.WithError(err).Warn("Crime cache lookup failed, recomputing from ledger")
		} else if cached != nil {
			s.metrics.CrimeCache.WithLabelValues("hit").Inc()
			return *cached, nil
		} else {
			s.metrics.CrimeCache.WithLabelValues("miss").Inc()
		}
	}

	incidents, err := s.ledger.QueryRadius(ctx, q)
	if err != nil {
		return models.CrimeSignal{}, err
	}
	signal := s.crimeCalc.Calculate(incidents)

	if s.cache != nil {
		if err := s.cache.Set(ctx, q, signal); err != nil {
			s.logger.WithError(err).Warn("Failed to store crime signal in cache")
		}
	}
	return signal, nil
}

// ReportIncident валидирует и записывает репорт в леджер. Дедупликация не
// выполняется - повторный репорт того же события допустим. После успешной
// записи версия кеша сдвигается, чтобы следующий криминальный расчёт по
// пересекающемуся радиусу увидел новый инцидент.
func (s *safetyService) ReportIncident(ctx context.Context, draft models.IncidentDraft) (models.Incident, string, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":       "safety",
		"method":        "ReportIncident",
		"incident_type": draft.IncidentType,
	})

	if !draft.IncidentType.Valid() {
		err := &models.ValidationError{
			Field:   "incident_type",
			Message: fmt.Sprintf("unknown incident type %q", draft.IncidentType),
		}
		log.WithError(err).Warn("Rejected incident report with unknown type")
		return models.Incident{}, "", err
	}
	if err := models.ValidateCoordinates(draft.Latitude, draft.Longitude); err != nil {
		log.WithError(err).Warn("Rejected incident report with invalid coordinates")
		return models.Incident{}, "", err
	}

	incident, err := s.ledger.Append(ctx, draft)
	if err != nil {
		log.WithError(err).Error("Failed to append incident to ledger")
		return models.Incident{}, "", fmt.Errorf("service: could not report incident: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.BumpVersion(ctx); err != nil {
			log.WithError(err).Warn("Failed to invalidate cached crime signals")
		}
	}

	s.metrics.IncidentsReported.Inc()
	log.WithField("incident_id", incident.ID).Info("Incident reported successfully")
	return incident, "Incident reported successfully", nil
}

// IncidentsNearby возвращает инциденты в радиусе от точки.
// Нулевой радиус заменяется радиусом по умолчанию из конфигурации.
func (s *safetyService) IncidentsNearby(ctx context.Context, q models.GeoQuery) ([]models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "safety",
		"method":    "IncidentsNearby",
		"radius_km": q.RadiusKm,
	})

	if q.RadiusKm == 0 {
		q.RadiusKm = s.cfg.Scoring.DefaultRadiusKm
	}

	incidents, err := s.ledger.QueryRadius(ctx, q)
	if err != nil {
		log.WithError(err).Error("Failed to query incidents by radius")
		return nil, err
	}

	log.WithField("count", len(incidents)).Info("Nearby incidents listed")
	return incidents, nil
}
