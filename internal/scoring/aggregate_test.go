package scoring

import (
	"testing"

	"github.com/shenikar/travel_safety_system/internal/config"
	"github.com/shenikar/travel_safety_system/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregate_WithoutImageRedistributesWeight(t *testing.T) {
	agg := NewSafetyAggregator(config.DefaultScoring())

	snapshot := agg.Aggregate(
		models.CrimeSignal{Score: 100},
		models.WeatherSignal{Score: 70},
		nil,
	)

	// (0.45*100 + 0.25*70) / 0.70 = 89.29 -> 89
	assert.Equal(t, 89, snapshot.SafetyScore)
	assert.Equal(t, models.LevelVerySafe, snapshot.SafetyLevel)
	assert.False(t, snapshot.Alert)
	assert.NotContains(t, snapshot.Breakdown, BreakdownImage)
	assert.Equal(t, 70.0, snapshot.Breakdown[BreakdownWeather])
	assert.Equal(t, 100.0, snapshot.Breakdown[BreakdownCrime])
	assert.Nil(t, snapshot.Factors.Image)
}

func TestAggregate_WithImageUsesCanonicalWeights(t *testing.T) {
	agg := NewSafetyAggregator(config.DefaultScoring())
	hazard := &models.HazardSignal{Score: 40, Severity: models.SeverityMedium}

	snapshot := agg.Aggregate(
		models.CrimeSignal{Score: 80},
		models.WeatherSignal{Score: 60},
		hazard,
	)

	// 0.25*60 + 0.45*80 + 0.30*40 = 63
	assert.Equal(t, 63, snapshot.SafetyScore)
	assert.Equal(t, models.LevelSafe, snapshot.SafetyLevel)
	assert.Equal(t, 40.0, snapshot.Breakdown[BreakdownImage])
	require.NotNil(t, snapshot.Factors.Image)
	assert.Equal(t, hazard, snapshot.Factors.Image)
}

func TestAggregate_ScoreClampedToOne(t *testing.T) {
	agg := NewSafetyAggregator(config.DefaultScoring())

	snapshot := agg.Aggregate(
		models.CrimeSignal{Score: 0},
		models.WeatherSignal{Score: 0},
		&models.HazardSignal{Score: 0},
	)

	// Ноль зарезервирован за "нет данных", итог не опускается ниже 1
	assert.Equal(t, 1, snapshot.SafetyScore)
	assert.Equal(t, models.LevelUnsafe, snapshot.SafetyLevel)
	assert.True(t, snapshot.Alert)
}

func TestAggregate_AlertBelowThreshold(t *testing.T) {
	agg := NewSafetyAggregator(config.DefaultScoring())

	low := agg.Aggregate(models.CrimeSignal{Score: 30}, models.WeatherSignal{Score: 30}, nil)
	high := agg.Aggregate(models.CrimeSignal{Score: 50}, models.WeatherSignal{Score: 50}, nil)

	assert.True(t, low.Alert)
	assert.False(t, high.Alert)
}

func TestAggregate_SevereHazardForcesAlert(t *testing.T) {
	agg := NewSafetyAggregator(config.DefaultScoring())

	snapshot := agg.Aggregate(
		models.CrimeSignal{Score: 100},
		models.WeatherSignal{Score: 95},
		&models.HazardSignal{Score: 10, Severity: models.SeverityCritical},
	)

	// Балл высокий, но визуально подтверждённая опасность поднимает alert
	assert.Greater(t, snapshot.SafetyScore, 40)
	assert.True(t, snapshot.Alert)
}

func TestLevelForScore_Buckets(t *testing.T) {
	tests := []struct {
		score    int
		expected models.SafetyLevel
	}{
		{100, models.LevelVerySafe},
		{80, models.LevelVerySafe},
		{79, models.LevelSafe},
		{60, models.LevelSafe},
		{59, models.LevelModerate},
		{40, models.LevelModerate},
		{39, models.LevelCaution},
		{20, models.LevelCaution},
		{19, models.LevelUnsafe},
		{1, models.LevelUnsafe},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, levelForScore(tt.score), "score %d", tt.score)
	}
}
