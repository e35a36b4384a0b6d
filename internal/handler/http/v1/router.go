package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Анализ безопасности локации
	api.POST("/safety-analysis", h.analyzeSafety)

	// Маршруты для пользовательских сообщений об инцидентах
	api.POST("/report-incident", h.reportIncident)
	api.GET("/incidents-nearby", h.incidentsNearby)

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
