package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/shenikar/travel_safety_system/internal/models"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	HTTPPort string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// PostgreSQL. Пустое значение означает работу на in-memory леджере.
	DatabaseURL string `env:"DATABASE_URL"`

	// Redis. Пустой адрес отключает кеш криминальных сигналов.
	RedisAddr string `env:"REDIS_ADDR"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Погодный коллаборатор (OpenWeatherMap-совместимый)
	WeatherAPIKey  string        `env:"WEATHER_API_KEY"`
	WeatherAPIURL  string        `env:"WEATHER_API_URL"`
	WeatherTimeout time.Duration `env:"WEATHER_TIMEOUT" envDefault:"5s"`

	// Vision-коллаборатор (OpenAI-совместимый chat completions API)
	VisionAPIKey  string        `env:"VISION_API_KEY"`
	VisionAPIURL  string        `env:"VISION_API_URL"`
	VisionModel   string        `env:"VISION_MODEL"`
	VisionTimeout time.Duration `env:"VISION_TIMEOUT" envDefault:"15s"`

	Scoring ScoringConfig
}

// ScoringConfig - все численные константы скоринга. Передаётся явно в
// калькуляторы и агрегатор при конструировании, чтобы тесты могли
// подставлять детерминированные значения.
type ScoringConfig struct {
	// Канонические веса сигналов, в сумме 1.0
	WeightWeather float64 `env:"WEIGHT_WEATHER" envDefault:"0.25"`
	WeightCrime   float64 `env:"WEIGHT_CRIME" envDefault:"0.45"`
	WeightImage   float64 `env:"WEIGHT_IMAGE" envDefault:"0.30"`

	// Балл ниже порога поднимает alert
	AlertThreshold int `env:"ALERT_THRESHOLD" envDefault:"40"`

	// Радиус выборки инцидентов по умолчанию
	DefaultRadiusKm float64 `env:"DEFAULT_RADIUS_KM" envDefault:"1.0"`

	// Окно "недавних" инцидентов
	RecentWindow time.Duration `env:"RECENT_WINDOW" envDefault:"720h"`

	// Криминальный скоринг: штраф за i-й инцидент = base * decay^i,
	// недавние инциденты умножаются на recent_weight
	CrimeBasePenalty  float64 `env:"CRIME_BASE_PENALTY" envDefault:"15"`
	CrimeDecay        float64 `env:"CRIME_DECAY" envDefault:"0.9"`
	CrimeRecentWeight float64 `env:"CRIME_RECENT_WEIGHT" envDefault:"1.5"`

	// TTL записей кеша криминальных сигналов
	CrimeCacheTTL time.Duration `env:"CRIME_CACHE_TTL" envDefault:"5m"`

	// Таблица condition -> балл. Неизвестное состояние получает
	// WeatherUnknownScore, недоступный провайдер - WeatherFallbackScore.
	WeatherScores        map[string]float64
	WeatherUnknownScore  float64 `env:"WEATHER_UNKNOWN_SCORE" envDefault:"60"`
	WeatherFallbackScore float64 `env:"WEATHER_FALLBACK_SCORE" envDefault:"60"`

	// Штраф за каждую обнаруженную категорию опасности на фото
	HazardCategoryPenalty float64 `env:"HAZARD_CATEGORY_PENALTY" envDefault:"15"`

	// Множители штрафа по уровню опасности
	HazardSeverityWeights map[models.HazardSeverity]float64
}

// DefaultWeatherScores - документированная таблица condition -> балл
func DefaultWeatherScores() map[string]float64 {
	return map[string]float64{
		"clear":        95,
		"clouds":       80,
		"drizzle":      65,
		"rain":         50,
		"snow":         45,
		"mist":         35,
		"fog":          35,
		"haze":         35,
		"thunderstorm": 20,
		"tornado":      10,
		"extreme":      10,
	}
}

// DefaultHazardSeverityWeights - множители штрафа по уровню опасности
func DefaultHazardSeverityWeights() map[models.HazardSeverity]float64 {
	return map[models.HazardSeverity]float64{
		models.SeverityNone:     1.0,
		models.SeverityLow:      1.0,
		models.SeverityMedium:   1.3,
		models.SeverityHigh:     1.6,
		models.SeverityCritical: 2.0,
	}
}

// DefaultScoring возвращает конфигурацию скоринга по умолчанию (для тестов)
func DefaultScoring() ScoringConfig {
	return ScoringConfig{
		WeightWeather:         0.25,
		WeightCrime:           0.45,
		WeightImage:           0.30,
		AlertThreshold:        40,
		DefaultRadiusKm:       1.0,
		RecentWindow:          30 * 24 * time.Hour,
		CrimeBasePenalty:      15,
		CrimeDecay:            0.9,
		CrimeRecentWeight:     1.5,
		CrimeCacheTTL:         5 * time.Minute,
		WeatherScores:         DefaultWeatherScores(),
		WeatherUnknownScore:   60,
		WeatherFallbackScore:  60,
		HazardCategoryPenalty: 15,
		HazardSeverityWeights: DefaultHazardSeverityWeights(),
	}
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	scoring := DefaultScoring()
	scoring.WeightWeather = getEnvAsFloat("WEIGHT_WEATHER", scoring.WeightWeather)
	scoring.WeightCrime = getEnvAsFloat("WEIGHT_CRIME", scoring.WeightCrime)
	scoring.WeightImage = getEnvAsFloat("WEIGHT_IMAGE", scoring.WeightImage)
	scoring.AlertThreshold = getEnvAsInt("ALERT_THRESHOLD", scoring.AlertThreshold)
	scoring.DefaultRadiusKm = getEnvAsFloat("DEFAULT_RADIUS_KM", scoring.DefaultRadiusKm)
	scoring.RecentWindow = getEnvAsDuration("RECENT_WINDOW", scoring.RecentWindow)
	scoring.CrimeBasePenalty = getEnvAsFloat("CRIME_BASE_PENALTY", scoring.CrimeBasePenalty)
	scoring.CrimeDecay = getEnvAsFloat("CRIME_DECAY", scoring.CrimeDecay)
	scoring.CrimeRecentWeight = getEnvAsFloat("CRIME_RECENT_WEIGHT", scoring.CrimeRecentWeight)
	scoring.CrimeCacheTTL = getEnvAsDuration("CRIME_CACHE_TTL", scoring.CrimeCacheTTL)
	scoring.WeatherUnknownScore = getEnvAsFloat("WEATHER_UNKNOWN_SCORE", scoring.WeatherUnknownScore)
	scoring.WeatherFallbackScore = getEnvAsFloat("WEATHER_FALLBACK_SCORE", scoring.WeatherFallbackScore)
	scoring.HazardCategoryPenalty = getEnvAsFloat("HAZARD_CATEGORY_PENALTY", scoring.HazardCategoryPenalty)

	if err := scoring.validateWeights(); err != nil {
		return nil, err
	}

	cfg := &Config{
		HTTPPort:       getEnv("HTTP_PORT", "8080"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		RedisAddr:      os.Getenv("REDIS_ADDR"),
		RedisPass:      os.Getenv("REDIS_PASSWORD"),
		RedisDB:        getEnvAsInt("REDIS_DB", 0),
		WeatherAPIKey:  os.Getenv("WEATHER_API_KEY"),
		WeatherAPIURL:  getEnv("WEATHER_API_URL", "https://api.openweathermap.org/data/2.5/weather"),
		WeatherTimeout: getEnvAsDuration("WEATHER_TIMEOUT", 5*time.Second),
		VisionAPIKey:   os.Getenv("VISION_API_KEY"),
		VisionAPIURL:   getEnv("VISION_API_URL", "https://api.groq.com/openai/v1"),
		VisionModel:    getEnv("VISION_MODEL", "llama-3.2-90b-vision-preview"),
		VisionTimeout:  getEnvAsDuration("VISION_TIMEOUT", 15*time.Second),
		Scoring:        scoring,
	}

	return cfg, nil
}

// validateWeights гарантирует, что канонические веса дают в сумме ровно 1.0
func (s ScoringConfig) validateWeights() error {
	sum := s.WeightWeather + s.WeightCrime + s.WeightImage
	if sum < 0.999 || sum > 1.001 {
		return fmt.Errorf("signal weights must sum to 1.0, got %.3f", sum)
	}
	return nil
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsFloat возвращает значение переменной окружения как float64 или значение по умолчанию
func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}
