package repository

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/shenikar/travel_safety_system/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryLedger_AppendAssignsMonotonicIDs(t *testing.T) {
	ledger := NewMemoryLedger(nil)
	ctx := context.Background()

	first, err := ledger.Append(ctx, models.IncidentDraft{
		Latitude:     36.8065,
		Longitude:    10.1815,
		IncidentType: models.IncidentTheft,
	})
	require.NoError(t, err)

	second, err := ledger.Append(ctx, models.IncidentDraft{
		Latitude:     36.8065,
		Longitude:    10.1815,
		IncidentType: models.IncidentOther,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)
}

func TestMemoryLedger_AppendStampsLedgerTime(t *testing.T) {
	now := time.Date(2026, 5, 14, 12, 0, 0, 0, time.UTC)
	clock := clockwork.NewFakeClockAt(now)
	ledger := NewMemoryLedger(clock)

	incident, err := ledger.Append(context.Background(), models.IncidentDraft{
		Latitude:     36.8065,
		Longitude:    10.1815,
		IncidentType: models.IncidentTheft,
	})

	require.NoError(t, err)
	assert.True(t, now.Equal(incident.ReportedAt))
}

func TestMemoryLedger_AppendRejectsInvalidCoordinates(t *testing.T) {
	ledger := NewMemoryLedger(nil)

	_, err := ledger.Append(context.Background(), models.IncidentDraft{
		Latitude:     95,
		Longitude:    10.1815,
		IncidentType: models.IncidentTheft,
	})

	require.Error(t, err)
	var validationErr *models.ValidationError
	assert.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "latitude", validationErr.Field)

	incidents, err := ledger.QueryRadius(context.Background(), models.GeoQuery{
		Latitude: 36.8065, Longitude: 10.1815, RadiusKm: 100,
	})
	require.NoError(t, err)
	assert.Empty(t, incidents) // отклонённая запись не сохраняется
}

func TestMemoryLedger_QueryRadiusFiltersByDistance(t *testing.T) {
	ledger := NewMemoryLedger(nil)
	ctx := context.Background()

	// Центр Туниса; второй инцидент примерно в 400 м, третий - другой город
	center := models.IncidentDraft{Latitude: 36.8065, Longitude: 10.1815, IncidentType: models.IncidentTheft}
	nearby := models.IncidentDraft{Latitude: 36.8100, Longitude: 10.1800, IncidentType: models.IncidentVandalism}
	far := models.IncidentDraft{Latitude: 35.8256, Longitude: 10.6369, IncidentType: models.IncidentOther}

	for _, draft := range []models.IncidentDraft{center, nearby, far} {
		_, err := ledger.Append(ctx, draft)
		require.NoError(t, err)
	}

	incidents, err := ledger.QueryRadius(ctx, models.GeoQuery{
		Latitude: 36.8065, Longitude: 10.1815, RadiusKm: 2,
	})

	require.NoError(t, err)
	require.Len(t, incidents, 2)
	assert.Equal(t, models.IncidentTheft, incidents[0].IncidentType)
	assert.Equal(t, models.IncidentVandalism, incidents[1].IncidentType)
}

func TestMemoryLedger_QueryRadiusValidatesQuery(t *testing.T) {
	ledger := NewMemoryLedger(nil)

	_, err := ledger.QueryRadius(context.Background(), models.GeoQuery{
		Latitude: 36.8065, Longitude: 10.1815, RadiusKm: 0,
	})

	require.Error(t, err)
	var validationErr *models.ValidationError
	assert.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "radius_km", validationErr.Field)
}

func TestMemoryLedger_QueryRadiusIsOrderedByID(t *testing.T) {
	ledger := NewMemoryLedger(nil)
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		_, err := ledger.Append(ctx, models.IncidentDraft{
			Latitude:     36.8065,
			Longitude:    10.1815,
			IncidentType: models.IncidentTheft,
		})
		require.NoError(t, err)
	}

	incidents, err := ledger.QueryRadius(ctx, models.GeoQuery{
		Latitude: 36.8065, Longitude: 10.1815, RadiusKm: 1,
	})

	require.NoError(t, err)
	require.Len(t, incidents, 10)
	for i := 1; i < len(incidents); i++ {
		assert.Less(t, incidents[i-1].ID, incidents[i].ID)
	}
}

func TestMemoryLedger_ReadYourWrites(t *testing.T) {
	ledger := NewMemoryLedger(nil)
	ctx := context.Background()

	incident, err := ledger.Append(ctx, models.IncidentDraft{
		Latitude:     48.8566,
		Longitude:    2.3522,
		IncidentType: models.IncidentAssault,
	})
	require.NoError(t, err)

	incidents, err := ledger.QueryRadius(ctx, models.GeoQuery{
		Latitude: 48.8566, Longitude: 2.3522, RadiusKm: 1,
	})

	require.NoError(t, err)
	require.Len(t, incidents, 1)
	assert.Equal(t, incident.ID, incidents[0].ID)
}

func TestMemoryLedger_ConcurrentAppends(t *testing.T) {
	ledger := NewMemoryLedger(nil)
	ctx := context.Background()

	const writers = 20
	var wg sync.WaitGroup
	wg.Add(writers)
	for i := 0; i < writers; i++ {
		go func() {
			defer wg.Done()
			_, err := ledger.Append(ctx, models.IncidentDraft{
				Latitude:     36.8065,
				Longitude:    10.1815,
				IncidentType: models.IncidentOther,
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	incidents, err := ledger.QueryRadius(ctx, models.GeoQuery{
		Latitude: 36.8065, Longitude: 10.1815, RadiusKm: 1,
	})
	require.NoError(t, err)
	require.Len(t, incidents, writers)

	seen := make(map[int64]bool, writers)
	for _, incident := range incidents {
		assert.False(t, seen[incident.ID], "duplicate id %d", incident.ID)
		seen[incident.ID] = true
	}
}

func TestDistanceKm(t *testing.T) {
	// Тунис -> Сус, примерно 120 км
	d := distanceKm(36.8065, 10.1815, 35.8256, 10.6369)
	assert.InDelta(t, 116, d, 5)

	// Нулевая дистанция до самой себя
	assert.InDelta(t, 0, distanceKm(48.8566, 2.3522, 48.8566, 2.3522), 0.0001)
}
