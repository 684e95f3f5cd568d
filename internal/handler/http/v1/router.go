package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Построение и оценка маршрутов
	api.POST("/routes/plan", h.planRoutes)

	// Карта и точечные проверки
	api.GET("/heatmap", h.getHeatmap)
	api.POST("/safehavens", h.findSafeHavens)
	api.POST("/radar/scan", h.radarScan)
	api.POST("/sos", h.sendSOS)

	// Статистика (требует API-ключ)
	api.GET("/stats", APIKeyAuthMiddleware(h.cfg, h.logger), h.getStats)

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
