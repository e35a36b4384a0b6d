package repository

import (
	"context"
	"sync"

	"github.com/jonboulle/clockwork"
	"github.com/shenikar/travel_safety_system/internal/models"
)

// MemoryLedger - append-only леджер инцидентов в памяти процесса.
// Единственный разделяемый мутабельный ресурс движка: append сериализуется
// мьютексом (каждой записи - уникальный монотонный id), чтения идут
// конкурентно под RLock. Запись, подтверждённая вызывающему, видна
// всем последующим запросам без задержки распространения.
type MemoryLedger struct {
	mu        sync.RWMutex
	incidents []models.Incident
	lastID    int64
	clock     clockwork.Clock
}

// NewMemoryLedger создает пустой леджер. Часы инжектируются,
// чтобы тесты могли зафиксировать reported_at.
func NewMemoryLedger(clock clockwork.Clock) *MemoryLedger {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &MemoryLedger{clock: clock}
}

// Append присваивает id и reported_at и сохраняет запись.
// Время клиента игнорируется: иначе взвешивание по давности
// можно было бы обмануть задним числом.
func (l *MemoryLedger) Append(ctx context.Context, draft models.IncidentDraft) (models.Incident, error) {
	if err := models.ValidateCoordinates(draft.Latitude, draft.Longitude); err != nil {
		return models.Incident{}, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.lastID++
	incident := models.Incident{
		ID:           l.lastID,
		Latitude:     draft.Latitude,
		Longitude:    draft.Longitude,
		IncidentType: draft.IncidentType,
		Description:  draft.Description,
		ReportedAt:   l.clock.Now().UTC(),
	}
	l.incidents = append(l.incidents, incident)
	return incident, nil
}

// QueryRadius возвращает инциденты в пределах radius_km от центра по дуге
// большого круга. Результат упорядочен по id - порядок стабилен для
// фиксированного состояния леджера.
func (l *MemoryLedger) QueryRadius(ctx context.Context, q models.GeoQuery) ([]models.Incident, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	result := make([]models.Incident, 0)
	for _, incident := range l.incidents {
		if distanceKm(q.Latitude, q.Longitude, incident.Latitude, incident.Longitude) <= q.RadiusKm {
			result = append(result, incident)
		}
	}
	return result, nil
}
