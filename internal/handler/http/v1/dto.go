package v1

import (
	"github.com/saferoute/safe_route_navigator/internal/models"
)

// PlanRoutesRequest DTO для построения маршрутов
// @Description DTO для построения маршрутов
type PlanRoutesRequest struct {
	ClientID    string `json:"client_id" validate:"required"`
	Origin      string `json:"origin" validate:"required,min=2,max=255"`
	Destination string `json:"destination" validate:"required,min=2,max=255"`
}

// PointRequest DTO для точечных проверок (радар, SOS)
// @Description DTO для точечных проверок
type PointRequest struct {
	ClientID string  `json:"client_id" validate:"required"`
	Lat      float64 `json:"lat" validate:"required,latitude"`
	Lng      float64 `json:"lng" validate:"required,longitude"`
}

// SafeHavensRequest DTO для поиска ближайших объектов безопасности
// @Description DTO для поиска ближайших объектов безопасности
type SafeHavensRequest struct {
	Lat   float64 `json:"lat" validate:"required,latitude"`
	Lng   float64 `json:"lng" validate:"required,longitude"`
	Limit int     `json:"limit" validate:"omitempty,gt=0,lte=20"`
}

// RoutesResponse DTO для ответа с оцененными маршрутами
// @Description DTO для ответа с оцененными маршрутами
type RoutesResponse struct {
	Routes      []models.ScoredRoute `json:"routes"`
	TimeContext string               `json:"time_context"`
}

// HeatmapResponse DTO для ответа с точками тепловой карты
// @Description DTO для ответа с точками тепловой карты
type HeatmapResponse struct {
	HeatmapPoints []models.HeatmapPoint `json:"heatmap_points"`
}

// SafeHavensResponse DTO для ответа с объектами безопасности
// @Description DTO для ответа с объектами безопасности
type SafeHavensResponse struct {
	SafeHavens []models.SafeHaven `json:"safe_havens"`
}

// AlertResponse DTO для ответа с контекстом SOS
// @Description DTO для ответа с контекстом SOS
type AlertResponse struct {
	SOSContext models.AlertContext `json:"sos_context"`
}

// StatsResponse DTO для ответа со статистикой
// @Description DTO для ответа со статистикой
type StatsResponse struct {
	TotalIncidents int    `json:"total_incidents"`
	HighSeverity   int    `json:"high_severity"`
	SafeZones      int    `json:"safe_zones"`
	ActiveClients  int    `json:"active_clients"`
	TimeContext    string `json:"time_context"`
}
