package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/shenikar/travel_safety_system/internal/models"
	"github.com/sirupsen/logrus"
)

// Client - клиент OpenWeatherMap-совместимого API текущей погоды.
// Таймаут запроса принадлежит клиенту: истёкший таймаут возвращается как
// ErrUpstreamUnavailable, а fallback-политику применяет скоринговый слой.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	logger     *logrus.Logger
}

// NewClient создает погодный клиент с собственным таймаутом
func NewClient(apiKey, baseURL string, timeout time.Duration, logger *logrus.Logger) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// owmResponse - формат ответа /data/2.5/weather
type owmResponse struct {
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
	} `json:"weather"`
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity int     `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Visibility int    `json:"visibility"`
	Name       string `json:"name"`
}

// CurrentConditions возвращает текущее показание погоды для координаты
func (c *Client) CurrentConditions(ctx context.Context, lat, lon float64) (models.WeatherReading, error) {
	if c.apiKey == "" {
		return models.WeatherReading{}, fmt.Errorf("weather API key is not configured: %w", models.ErrUpstreamUnavailable)
	}

	params := url.Values{
		"lat":   {strconv.FormatFloat(lat, 'f', 6, 64)},
		"lon":   {strconv.FormatFloat(lon, 'f', 6, 64)},
		"appid": {c.apiKey},
		"units": {"metric"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return models.WeatherReading{}, fmt.Errorf("failed to create weather request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return models.WeatherReading{}, fmt.Errorf("weather request failed: %v: %w", err, models.ErrUpstreamUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.WithField("status", resp.StatusCode).Warn("Weather provider returned non-OK status")
		return models.WeatherReading{}, fmt.Errorf("weather provider status %d: %w", resp.StatusCode, models.ErrUpstreamUnavailable)
	}

	var payload owmResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return models.WeatherReading{}, fmt.Errorf("failed to decode weather response: %v: %w", err, models.ErrMalformedPayload)
	}

	reading := models.WeatherReading{
		Temperature:  payload.Main.Temp,
		Humidity:     payload.Main.Humidity,
		WindSpeed:    payload.Wind.Speed,
		VisibilityKm: float64(payload.Visibility) / 1000,
		City:         payload.Name,
	}
	if len(payload.Weather) > 0 {
		reading.Condition = payload.Weather[0].Main
		reading.Description = payload.Weather[0].Description
	}
	return reading, nil
}
