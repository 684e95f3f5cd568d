package scoring

import (
	"math"
	"sort"
	"time"

	"github.com/saferoute/safe_route_navigator/internal/geo"
	"github.com/saferoute/safe_route_navigator/internal/models"
)

const (
	radarRadiusKm      = 1.0
	alertRadiusKm      = 0.5
	alertSeverityFloor = 7
	radarTopN          = 5
	alertTopN          = 5
	alertHavens        = 2

	alertTimeLayout = "2006-01-02 15:04:05"
)

// RadarScan оценивает безопасность вокруг точки: суммирует положительные
// тяжести в радиусе 1 км (без множителя времени) и возвращает до 5
// ближайших инцидентов плюс 2 ближайших объекта безопасности.
func RadarScan(lat, lng float64, incidents []*models.Incident) models.RadarScan {
	totalRisk := 0.0
	nearby := make([]models.NearbyIncident, 0)

	for _, inc := range incidents {
		dist := geo.DistanceKm(lat, lng, inc.Latitude, inc.Longitude)
		if dist >= radarRadiusKm || inc.BaseSeverity <= 0 {
			continue
		}
		totalRisk += float64(inc.BaseSeverity)
		nearby = append(nearby, models.NearbyIncident{
			Lat:            inc.Latitude,
			Lng:            inc.Longitude,
			Category:       inc.Category,
			DistanceMeters: math.Round(dist * 1000),
			Severity:       inc.BaseSeverity,
		})
	}

	sort.SliceStable(nearby, func(i, j int) bool {
		return nearby[i].DistanceMeters < nearby[j].DistanceMeters
	})
	if len(nearby) > radarTopN {
		nearby = nearby[:radarTopN]
	}

	return models.RadarScan{
		SafetyScore:  round1(clamp(100-totalRisk*1.5, 0, 100)),
		NearbyCrimes: len(nearby),
		Incidents:    nearby,
		SafeHavens:   NearestSafeHavens(lat, lng, incidents, alertHavens),
	}
}

// AlertContext собирает контекст SOS-оповещения: тяжелые инциденты
// (тяжесть >= 7) в радиусе 500 м, отсортированные по убыванию тяжести
// и возрастанию расстояния, плюс два ближайших объекта безопасности.
func AlertContext(lat, lng float64, incidents []*models.Incident, now time.Time) models.AlertContext {
	dangers := make([]models.NearbyIncident, 0)

	for _, inc := range incidents {
		if inc.BaseSeverity < alertSeverityFloor {
			continue
		}
		dist := geo.DistanceKm(lat, lng, inc.Latitude, inc.Longitude)
		if dist >= alertRadiusKm {
			continue
		}
		dangers = append(dangers, models.NearbyIncident{
			Lat:            inc.Latitude,
			Lng:            inc.Longitude,
			Category:       inc.Category,
			DistanceMeters: math.Round(dist * 1000),
			Severity:       inc.BaseSeverity,
			Description:    inc.Description,
		})
	}

	sort.SliceStable(dangers, func(i, j int) bool {
		if dangers[i].Severity != dangers[j].Severity {
			return dangers[i].Severity > dangers[j].Severity
		}
		return dangers[i].DistanceMeters < dangers[j].DistanceMeters
	})
	if len(dangers) > alertTopN {
		dangers = dangers[:alertTopN]
	}

	return models.AlertContext{
		Lat:        lat,
		Lng:        lng,
		Timestamp:  now.Format(alertTimeLayout),
		Dangers:    dangers,
		SafeHavens: NearestSafeHavens(lat, lng, incidents, alertHavens),
	}
}

// NearestSafeHavens возвращает limit глобально ближайших объектов
// безопасности без ограничения радиуса
func NearestSafeHavens(lat, lng float64, incidents []*models.Incident, limit int) []models.SafeHaven {
	havens := make([]models.SafeHaven, 0)
	for _, inc := range incidents {
		if !inc.IsSafetyAsset() {
			continue
		}
		dist := geo.DistanceKm(lat, lng, inc.Latitude, inc.Longitude)
		havens = append(havens, models.SafeHaven{
			Category:    inc.Category,
			Lat:         inc.Latitude,
			Lng:         inc.Longitude,
			DistanceKm:  round2(dist),
			Description: inc.Description,
		})
	}

	sort.SliceStable(havens, func(i, j int) bool {
		return havens[i].DistanceKm < havens[j].DistanceKm
	})
	if len(havens) > limit {
		havens = havens[:limit]
	}
	return havens
}

// Heatmap строит точки тепловой карты для опасных инцидентов;
// интенсивность нормируется к 1.0 при тяжести 10
func Heatmap(incidents []*models.Incident) []models.HeatmapPoint {
	points := make([]models.HeatmapPoint, 0, len(incidents))
	for _, inc := range incidents {
		if inc.BaseSeverity <= 0 {
			continue
		}
		points = append(points, models.HeatmapPoint{
			Lat:       inc.Latitude,
			Lng:       inc.Longitude,
			Intensity: math.Min(float64(inc.BaseSeverity)/10, 1.0),
		})
	}
	return points
}

// Stats считает сводку текущего снимка для панели статистики
func Stats(incidents []*models.Incident, timeLabel string) models.DatasetStats {
	stats := models.DatasetStats{TimeContext: timeLabel}
	for _, inc := range incidents {
		switch {
		case inc.BaseSeverity >= alertSeverityFloor:
			stats.TotalIncidents++
			stats.HighSeverity++
		case inc.BaseSeverity > 0:
			stats.TotalIncidents++
		case inc.BaseSeverity < 0:
			stats.SafeZones++
		}
	}
	return stats
}
