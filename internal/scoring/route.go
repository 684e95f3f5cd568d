package scoring

import (
	"fmt"
	"math"

	"github.com/saferoute/safe_route_navigator/internal/geo"
	"github.com/saferoute/safe_route_navigator/internal/models"
)

const (
	// Каждая 5-я вершина полилинии: осознанная потеря точности ради
	// ограничения числа проверок близости на плотных маршрутах
	vertexSampleStep = 5

	routeRadiusKm = 0.3
)

// ScoreRoute оценивает безопасность маршрута по близости инцидентов.
// Множитель времени суток масштабирует только опасные (положительные)
// тяжести; объекты безопасности дают кредит без множителя.
// Отмеченные инциденты дедуплицируются по ID.
func ScoreRoute(geometry []models.Coordinate, incidents []*models.Incident, timeMultiplier float64) (float64, []models.IncidentPin) {
	totalRisk := 0.0
	pins := make([]models.IncidentPin, 0)
	seen := make(map[string]bool)

	for i := 0; i < len(geometry); i += vertexSampleStep {
		point := geometry[i]

		for _, inc := range incidents {
			dist := geo.DistanceKm(point.Lat(), point.Lng(), inc.Latitude, inc.Longitude)
			if dist >= routeRadiusKm {
				continue
			}

			severity := float64(inc.BaseSeverity)
			if severity < 0 {
				totalRisk += severity // кредит безопасности, без множителя
			} else {
				totalRisk += severity * timeMultiplier
			}

			if !seen[inc.ID] {
				seen[inc.ID] = true
				pins = append(pins, models.IncidentPin{
					ID:          inc.ID,
					Lat:         inc.Latitude,
					Lng:         inc.Longitude,
					Category:    inc.Category,
					Description: inc.Description,
					Severity:    inc.BaseSeverity,
				})
			}
		}
	}

	score := clamp(100-totalRisk*2, 0, 100)
	return round2(score), pins
}

// ClassifySafety относит оценку к категории и возвращает цвет и подпись темы
func ClassifySafety(score float64) (category, color, label string) {
	switch {
	case score >= 70:
		return "safe", "#10B981", "Safest Route"
	case score >= 40:
		return "moderate", "#F59E0B", "Moderate Route"
	default:
		return "risk", "#EF4444", "Risky Route"
	}
}

// Narrative строит человекочитаемую сводку безопасности маршрута
func Narrative(score float64, pins []models.IncidentPin, category, timeLabel string) string {
	if len(pins) == 0 {
		if score >= 85 {
			return fmt.Sprintf("Clear path detected. No crime incidents within 300m. %s.", timeLabel)
		}
		return fmt.Sprintf("Route appears safe with minimal crime data nearby. %s.", timeLabel)
	}

	topCategory := mostFrequentCategory(pins)
	count := len(pins)

	switch category {
	case "risk":
		return fmt.Sprintf("HIGH RISK: %d incidents near route, primarily %s. Avoid if possible. %s.", count, topCategory, timeLabel)
	case "moderate":
		return fmt.Sprintf("%d flagged zones detected, mainly %s. Stay alert and use well-lit paths. %s.", count, topCategory, timeLabel)
	default:
		return fmt.Sprintf("Generally safe with %d minor zone caution(s), mainly %s. %s.", count, topCategory, timeLabel)
	}
}

// mostFrequentCategory возвращает самую частую категорию среди отметок;
// при равенстве побеждает встреченная первой
func mostFrequentCategory(pins []models.IncidentPin) models.Category {
	counts := make(map[models.Category]int)
	var top models.Category
	best := 0
	for _, pin := range pins {
		counts[pin.Category]++
		if counts[pin.Category] > best {
			best = counts[pin.Category]
			top = pin.Category
		}
	}
	return top
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
