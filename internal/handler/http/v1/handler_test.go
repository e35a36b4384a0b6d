package v1

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/travel_safety_system/internal/config"
	"github.com/shenikar/travel_safety_system/internal/models"
	"github.com/shenikar/travel_safety_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestHandler создает новый экземпляр Handler с мокированным сервисом
func newTestHandler(t *testing.T) (*Handler, *mocks.MockSafetyService, *gin.Engine) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockSafetyService(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		Scoring: config.DefaultScoring(),
	}

	handler := NewHandler(mockService, logger, cfg)

	// Настройка Gin роутера для тестов
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api")
	handler.RegisterRoutes(api)

	return handler, mockService, router
}

// multipartBody собирает multipart-форму из полей и опционального файла
func multipartBody(t *testing.T, fields map[string]string, file []byte) (*bytes.Buffer, string) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	if file != nil {
		part, err := writer.CreateFormFile("file", "photo.jpg")
		require.NoError(t, err)
		_, err = part.Write(file)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAnalyzeSafety_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	expectedSnapshot := &models.SafetySnapshot{
		SafetyScore: 89,
		SafetyLevel: models.LevelVerySafe,
		Alert:       false,
		Breakdown:   map[string]float64{"weather": 70, "crime_data": 100},
		Factors: models.SafetyFactors{
			Weather: models.WeatherSignal{Score: 70, Condition: "rain", DataSource: models.DataSourceLive},
			Crime:   models.CrimeSignal{Score: 100, DataSource: models.DataSourceUserReports},
		},
	}

	mockService.EXPECT().
		AnalyzeSafety(gomock.Any(), 36.8065, 10.1815, gomock.Nil()).
		Return(expectedSnapshot, nil).Times(1)

	body, contentType := multipartBody(t, map[string]string{
		"latitude":  "36.8065",
		"longitude": "10.1815",
	}, nil)
	w := makeRequest(router, "POST", "/api/safety-analysis", body, contentType)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp SafetyAnalysisResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, 89, resp.SafetyScore)
	assert.Equal(t, "very_safe", resp.SafetyLevel)
	assert.False(t, resp.Alert)
	assert.Equal(t, 100.0, resp.Breakdown["crime_data"])
}

func TestAnalyzeSafety_WithImage(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	image := []byte("jpeg bytes")
	expectedSnapshot := &models.SafetySnapshot{
		SafetyScore: 35,
		SafetyLevel: models.LevelUnsafe,
		Alert:       true,
		Breakdown:   map[string]float64{"weather": 50, "crime_data": 40, "image_analysis": 10},
		Factors: models.SafetyFactors{
			Image: &models.HazardSignal{Score: 10, Severity: models.SeverityCritical},
		},
	}

	mockService.EXPECT().
		AnalyzeSafety(gomock.Any(), 48.8566, 2.3522, image).
		Return(expectedSnapshot, nil).Times(1)

	body, contentType := multipartBody(t, map[string]string{
		"latitude":  "48.8566",
		"longitude": "2.3522",
	}, image)
	w := makeRequest(router, "POST", "/api/safety-analysis", body, contentType)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp SafetyAnalysisResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.True(t, resp.Alert)
	assert.Equal(t, "unsafe", resp.SafetyLevel)
	require.NotNil(t, resp.Factors.Image)
	assert.Equal(t, models.SeverityCritical, resp.Factors.Image.Severity)
}

func TestAnalyzeSafety_MissingLatitude(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().AnalyzeSafety(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	body, contentType := multipartBody(t, map[string]string{
		"longitude": "10.1815",
	}, nil)
	w := makeRequest(router, "POST", "/api/safety-analysis", body, contentType)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'Latitude' failed on the 'required' tag")
}

func TestAnalyzeSafety_CoordinatesOutOfRange(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().AnalyzeSafety(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	body, contentType := multipartBody(t, map[string]string{
		"latitude":  "95.0",
		"longitude": "10.1815",
	}, nil)
	w := makeRequest(router, "POST", "/api/safety-analysis", body, contentType)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "failed on the 'latitude' tag")
}

func TestAnalyzeSafety_ServiceError(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	serviceError := errors.New("ledger unavailable")

	mockService.EXPECT().
		AnalyzeSafety(gomock.Any(), 36.8065, 10.1815, gomock.Nil()).
		Return(nil, serviceError).Times(1)

	body, contentType := multipartBody(t, map[string]string{
		"latitude":  "36.8065",
		"longitude": "10.1815",
	}, nil)
	w := makeRequest(router, "POST", "/api/safety-analysis", body, contentType)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
	assert.Contains(t, w.Body.String(), `"success":false`)
}

func TestReportIncident_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reportedAt := time.Date(2026, 5, 14, 12, 0, 0, 0, time.UTC)
	expectedIncident := models.Incident{
		ID:           7,
		Latitude:     36.8065,
		Longitude:    10.1815,
		IncidentType: models.IncidentTheft,
		Description:  "pickpocketing near the station",
		ReportedAt:   reportedAt,
	}

	mockService.EXPECT().
		ReportIncident(gomock.Any(), models.IncidentDraft{
			Latitude:     36.8065,
			Longitude:    10.1815,
			IncidentType: models.IncidentTheft,
			Description:  "pickpocketing near the station",
		}).
		Return(expectedIncident, "Incident reported successfully", nil).Times(1)

	body, contentType := multipartBody(t, map[string]string{
		"latitude":      "36.8065",
		"longitude":     "10.1815",
		"incident_type": "theft",
		"description":   "pickpocketing near the station",
	}, nil)
	w := makeRequest(router, "POST", "/api/report-incident", body, contentType)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp ReportIncidentResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "Incident reported successfully", resp.Message)
	require.NotNil(t, resp.Incident)
	assert.Equal(t, int64(7), resp.Incident.ID)
	assert.Equal(t, "theft", resp.Incident.IncidentType)
	assert.True(t, reportedAt.Equal(resp.Incident.ReportedAt))
}

func TestReportIncident_UnknownType(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().ReportIncident(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	body, contentType := multipartBody(t, map[string]string{
		"latitude":      "36.8065",
		"longitude":     "10.1815",
		"incident_type": "alien_invasion",
	}, nil)
	w := makeRequest(router, "POST", "/api/report-incident", body, contentType)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'IncidentType' failed on the 'oneof' tag")
}

func TestReportIncident_DomainValidationError(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	validationErr := &models.ValidationError{Field: "incident_type", Message: "unknown incident type"}

	mockService.EXPECT().
		ReportIncident(gomock.Any(), gomock.Any()).
		Return(models.Incident{}, "", validationErr).Times(1)

	body, contentType := multipartBody(t, map[string]string{
		"latitude":      "36.8065",
		"longitude":     "10.1815",
		"incident_type": "theft",
	}, nil)
	w := makeRequest(router, "POST", "/api/report-incident", body, contentType)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "validation failed for incident_type")
}

func TestReportIncident_ServiceError(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	serviceError := errors.New("could not report incident")

	mockService.EXPECT().
		ReportIncident(gomock.Any(), gomock.Any()).
		Return(models.Incident{}, "", serviceError).Times(1)

	body, contentType := multipartBody(t, map[string]string{
		"latitude":      "36.8065",
		"longitude":     "10.1815",
		"incident_type": "theft",
	}, nil)
	w := makeRequest(router, "POST", "/api/report-incident", body, contentType)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestIncidentsNearby_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	expectedIncidents := []models.Incident{
		{ID: 1, Latitude: 36.8065, Longitude: 10.1815, IncidentType: models.IncidentTheft},
		{ID: 2, Latitude: 36.8100, Longitude: 10.1800, IncidentType: models.IncidentVandalism},
	}

	mockService.EXPECT().
		IncidentsNearby(gomock.Any(), models.GeoQuery{Latitude: 36.8065, Longitude: 10.1815, RadiusKm: 2}).
		Return(expectedIncidents, nil).Times(1)

	w := makeRequest(router, "GET", "/api/incidents-nearby?latitude=36.8065&longitude=10.1815&radius_km=2", nil, "")

	assert.Equal(t, http.StatusOK, w.Code)

	var resp IncidentsNearbyResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, 2, resp.Count)
	require.Len(t, resp.Incidents, 2)
	assert.Equal(t, "theft", resp.Incidents[0].IncidentType)
}

func TestIncidentsNearby_DefaultRadius(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	// Радиус не передан, сервис получает нулевое значение и подставляет дефолт сам
	mockService.EXPECT().
		IncidentsNearby(gomock.Any(), models.GeoQuery{Latitude: 36.8065, Longitude: 10.1815, RadiusKm: 0}).
		Return([]models.Incident{}, nil).Times(1)

	w := makeRequest(router, "GET", "/api/incidents-nearby?latitude=36.8065&longitude=10.1815", nil, "")

	assert.Equal(t, http.StatusOK, w.Code)

	var resp IncidentsNearbyResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, 0, resp.Count)
	assert.Empty(t, resp.Incidents)
}

func TestIncidentsNearby_MissingCoordinates(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().IncidentsNearby(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/incidents-nearby?radius_km=2", nil, "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "failed on the 'required' tag")
}

func TestIncidentsNearby_ServiceError(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	serviceError := errors.New("ledger query failed")

	mockService.EXPECT().
		IncidentsNearby(gomock.Any(), gomock.Any()).
		Return(nil, serviceError).Times(1)

	w := makeRequest(router, "GET", "/api/incidents-nearby?latitude=36.8065&longitude=10.1815", nil, "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestHealthCheck_Success(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/system/health", nil, "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestRequestIDMiddleware_GeneratesID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	router.Use(RequestIDMiddleware(logger))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := makeRequest(router, "GET", "/test", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestRequestIDMiddleware_KeepsClientID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	router.Use(RequestIDMiddleware(logger))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest("GET", "/test", nil)
	req.Header.Set("X-Request-ID", "client-supplied-id")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "client-supplied-id", w.Header().Get("X-Request-ID"))
}
