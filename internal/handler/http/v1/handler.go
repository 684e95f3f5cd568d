package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/saferoute/safe_route_navigator/internal/config"
	"github.com/saferoute/safe_route_navigator/internal/geocoding"
	"github.com/saferoute/safe_route_navigator/internal/routing"
	"github.com/saferoute/safe_route_navigator/internal/service"
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

// @Summary Plan alternative routes ranked by safety
// @Description Geocode origin/destination, fetch alternative routes and score each against the current incident snapshot.
// @Tags Routes
// @Accept json
// @Produce json
// @Param request body PlanRoutesRequest true "Route planning request"
// @Success 200 {object} RoutesResponse
// @Failure 400 {object} map[string]string "Invalid request body, unknown place or no route"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /routes/plan [post]
func (h *Handler) planRoutes(c *gin.Context) {
	var input PlanRoutesRequest
	log := h.logger.WithField("method", "planRoutes")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	routes, timeContext, err := h.safetyService.PlanRoutes(c.Request.Context(), input.ClientID, input.Origin, input.Destination)
	if err != nil {
		switch {
		case errors.Is(err, geocoding.ErrPlaceNotFound):
			c.JSON(http.StatusBadRequest, gin.H{"error": "could not find one or both locations, try being more specific"})
		case errors.Is(err, routing.ErrNoRoute):
			c.JSON(http.StatusBadRequest, gin.H{"error": "no routes found between these locations"})
		default:
			log.WithError(err).Error("Failed to plan routes in service")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, RoutesResponse{Routes: routes, TimeContext: timeContext})
}

// @Summary Get crime heatmap data
// @Description Return heatmap points with severity-based intensity from the current snapshot.
// @Tags Map
// @Accept json
// @Produce json
// @Success 200 {object} HeatmapResponse
// @Router /heatmap [get]
func (h *Handler) getHeatmap(c *gin.Context) {
	points := h.safetyService.GetHeatmap(c.Request.Context())
	c.JSON(http.StatusOK, HeatmapResponse{HeatmapPoints: points})
}

// @Summary Find nearest safe havens
// @Description Return the globally nearest safety assets (police stations, CCTV zones) for a point.
// @Tags Safety
// @Accept json
// @Produce json
// @Param request body SafeHavensRequest true "Safe haven lookup request"
// @Success 200 {object} SafeHavensResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /safehavens [post]
func (h *Handler) findSafeHavens(c *gin.Context) {
	var input SafeHavensRequest
	log := h.logger.WithField("method", "findSafeHavens")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	limit := input.Limit
	if limit == 0 {
		limit = 5
	}

	havens, err := h.safetyService.FindSafeHavens(c.Request.Context(), input.Lat, input.Lng, limit)
	if err != nil {
		log.WithError(err).Error("Failed to find safe havens in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, SafeHavensResponse{SafeHavens: havens})
}

// @Summary Run a contextual safety radar scan
// @Description Score a single point against the current snapshot and return nearby incidents and safe havens.
// @Tags Safety
// @Accept json
// @Produce json
// @Param request body PointRequest true "Radar scan request"
// @Success 200 {object} models.RadarScan
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /radar/scan [post]
func (h *Handler) radarScan(c *gin.Context) {
	var input PointRequest
	log := h.logger.WithField("method", "radarScan")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	scan, err := h.safetyService.ScoreRadar(c.Request.Context(), input.ClientID, input.Lat, input.Lng)
	if err != nil {
		log.WithError(err).Error("Failed to run radar scan in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, scan)
}

// @Summary Send an SOS alert
// @Description Build the SOS alert context for a point and publish an alert event for downstream notifiers.
// @Tags Safety
// @Accept json
// @Produce json
// @Param request body PointRequest true "SOS request"
// @Success 200 {object} AlertResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /sos [post]
func (h *Handler) sendSOS(c *gin.Context) {
	var input PointRequest
	log := h.logger.WithField("method", "sendSOS")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	alertCtx, err := h.safetyService.SendAlert(c.Request.Context(), input.ClientID, input.Lat, input.Lng)
	if err != nil {
		log.WithError(err).Error("Failed to send SOS in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, AlertResponse{SOSContext: alertCtx})
}

// @Summary Get dataset statistics
// @Description Get snapshot statistics and the count of unique clients within the stats window. Requires API key.
// @Tags Admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} StatsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /stats [get]
func (h *Handler) getStats(c *gin.Context) {
	log := h.logger.WithField("method", "getStats")

	stats, clients, err := h.safetyService.GetStats(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to get stats from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, StatsResponse{
		TotalIncidents: stats.TotalIncidents,
		HighSeverity:   stats.HighSeverity,
		SafeZones:      stats.SafeZones,
		ActiveClients:  clients,
		TimeContext:    stats.TimeContext,
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
