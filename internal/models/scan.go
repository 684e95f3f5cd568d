package models

import "time"

// NearbyIncident - инцидент, найденный в радиусе точечного сканирования
type NearbyIncident struct {
	Lat            float64  `json:"lat"`
	Lng            float64  `json:"lng"`
	Category       Category `json:"type"`
	DistanceMeters float64  `json:"distance"`
	Severity       int      `json:"severity"`
	Description    string   `json:"description,omitempty"`
}

// SafeHaven - ближайший объект безопасности с расстоянием до точки
type SafeHaven struct {
	Category    Category `json:"type"`
	Lat         float64  `json:"lat"`
	Lng         float64  `json:"lng"`
	DistanceKm  float64  `json:"distance"`
	Description string   `json:"description"`
}

// RadarScan - результат локального сканирования безопасности вокруг точки
type RadarScan struct {
	SafetyScore  float64          `json:"safety_score"`
	NearbyCrimes int              `json:"nearby_crimes"`
	Incidents    []NearbyIncident `json:"recent_incidents"`
	SafeHavens   []SafeHaven      `json:"safe_havens"`
}

// AlertContext - контекст SOS-оповещения: опасности и убежища рядом с точкой
type AlertContext struct {
	Lat        float64          `json:"lat"`
	Lng        float64          `json:"lng"`
	Timestamp  string           `json:"timestamp"`
	Dangers    []NearbyIncident `json:"nearby_dangers"`
	SafeHavens []SafeHaven      `json:"safe_havens"`
}

// HeatmapPoint - точка тепловой карты с нормированной интенсивностью
type HeatmapPoint struct {
	Lat       float64 `json:"lat"`
	Lng       float64 `json:"lng"`
	Intensity float64 `json:"intensity"`
}

// DatasetStats - сводная статистика текущего снимка данных
type DatasetStats struct {
	TotalIncidents int    `json:"total_incidents"`
	HighSeverity   int    `json:"high_severity"`
	SafeZones      int    `json:"safe_zones"`
	TimeContext    string `json:"time_context"`
}

// ScanCheck - запись о выполненной проверке безопасности (радар, SOS, маршрут)
type ScanCheck struct {
	ID        int64     `json:"id"`
	ClientID  string    `json:"client_id"`
	Kind      string    `json:"kind"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Score     float64   `json:"score"`
	CheckedAt time.Time `json:"checked_at"`
}
