package v1

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/travel_safety_system/internal/config"
	"github.com/shenikar/travel_safety_system/internal/models"
	"github.com/shenikar/travel_safety_system/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	safetyService service.SafetyService
	logger        *logrus.Logger
	validate      *validator.Validate
	cfg           *config.Config
}

func NewHandler(safetyService service.SafetyService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		safetyService: safetyService,
		logger:        logger,
		validate:      validator.New(),
		cfg:           cfg,
	}
}

// @Summary Analyze location safety
// @Description Compute a combined safety score for a location from weather, community incident reports and an optional photo of the surroundings.
// @Tags Safety
// @Accept mpfd
// @Produce json
// @Param latitude formData number true "Latitude in decimal degrees"
// @Param longitude formData number true "Longitude in decimal degrees"
// @Param file formData file false "Optional photo of the location"
// @Success 200 {object} SafetyAnalysisResponse
// @Failure 400 {object} ErrorResponse "Invalid request or validation error"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /safety-analysis [post]
func (h *Handler) analyzeSafety(c *gin.Context) {
	var input SafetyAnalysisRequest
	log := h.logger.WithField("method", "analyzeSafety")

	if err := c.ShouldBind(&input); err != nil {
		log.WithError(err).Warn("Failed to bind form")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	// Фото опционально, его отсутствие не является ошибкой
	image, err := h.readImage(c)
	if err != nil {
		log.WithError(err).Warn("Failed to read uploaded file")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "could not read uploaded file"})
		return
	}

	snapshot, err := h.safetyService.AnalyzeSafety(c.Request.Context(), *input.Latitude, *input.Longitude, image)
	if err != nil {
		h.writeServiceError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, SnapshotToResponse(snapshot))
}

// @Summary Report an incident
// @Description Submit a community incident report for a location.
// @Tags Incidents
// @Accept mpfd
// @Produce json
// @Param latitude formData number true "Latitude in decimal degrees"
// @Param longitude formData number true "Longitude in decimal degrees"
// @Param incident_type formData string true "Incident type" Enums(theft, assault, vandalism, suspicious_activity, other)
// @Param description formData string false "Free-form description"
// @Success 200 {object} ReportIncidentResponse
// @Failure 400 {object} ErrorResponse "Invalid request or validation error"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /report-incident [post]
func (h *Handler) reportIncident(c *gin.Context) {
	var input ReportIncidentRequest
	log := h.logger.WithField("method", "reportIncident")

	if err := c.ShouldBind(&input); err != nil {
		log.WithError(err).Warn("Failed to bind form")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	incident, message, err := h.safetyService.ReportIncident(c.Request.Context(), DTOToIncidentDraft(input))
	if err != nil {
		h.writeServiceError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, ReportIncidentResponse{
		Success:  true,
		Message:  message,
		Incident: ModelToIncidentResponse(incident),
	})
}

// @Summary Get incidents near a location
// @Description List community incident reports within a radius of the given point.
// @Tags Incidents
// @Accept json
// @Produce json
// @Param latitude query number true "Latitude in decimal degrees"
// @Param longitude query number true "Longitude in decimal degrees"
// @Param radius_km query number false "Search radius in kilometers" default(1)
// @Success 200 {object} IncidentsNearbyResponse
// @Failure 400 {object} ErrorResponse "Invalid request or validation error"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /incidents-nearby [get]
func (h *Handler) incidentsNearby(c *gin.Context) {
	var input IncidentsNearbyRequest
	log := h.logger.WithField("method", "incidentsNearby")

	if err := c.ShouldBindQuery(&input); err != nil {
		log.WithError(err).Warn("Failed to bind query")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid query parameters"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	incidents, err := h.safetyService.IncidentsNearby(c.Request.Context(), DTOToGeoQuery(input))
	if err != nil {
		h.writeServiceError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, IncidentsNearbyResponse{
		Success:   true,
		Count:     len(incidents),
		Incidents: ModelsToIncidentResponses(incidents),
	})
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// readImage извлекает опциональный файл из multipart-формы.
// Отсутствие файла возвращает (nil, nil).
func (h *Handler) readImage(c *gin.Context) ([]byte, error) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, err
	}
	return readFileHeader(fileHeader)
}

func readFileHeader(fileHeader *multipart.FileHeader) ([]byte, error) {
	f, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

// writeServiceError отображает ошибку сервисного слоя в HTTP-ответ.
// Ошибки валидации доменной модели возвращаются клиенту как 400,
// всё остальное скрывается за 500.
func (h *Handler) writeServiceError(c *gin.Context, log *logrus.Entry, err error) {
	var validationErr *models.ValidationError
	if errors.As(err, &validationErr) {
		log.WithError(err).Warn("Domain validation failed")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: validationErr.Error()})
		return
	}

	log.WithError(err).Error("Service call failed")
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
}
