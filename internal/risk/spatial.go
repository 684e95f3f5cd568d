package risk

import (
	"time"

	"github.com/saferoute/safe_route_navigator/internal/geo"
	"github.com/saferoute/safe_route_navigator/internal/models"
)

const (
	hotspotRadiusKm   = 0.5
	hotspotWindow     = 24 * time.Hour
	hotspotStep       = 0.15
	hotspotCap        = 2.0
	influenceRadiusKm = 1.0
)

// HotspotDensity - множитель кластеризации (Hotspot Policing): чем больше
// недавних опасных инцидентов в радиусе 500 м, тем выше риск цели.
// Для объектов безопасности всегда 1.0.
func HotspotDensity(target *models.Incident, all []*models.Incident, now time.Time) float64 {
	if target.IsSafetyAsset() {
		return 1.0
	}

	close := 0
	for _, inc := range all {
		if inc.ID == target.ID || inc.BaseSeverity <= 0 {
			continue
		}
		dist := geo.DistanceKm(target.Latitude, target.Longitude, inc.Latitude, inc.Longitude)
		if dist <= hotspotRadiusKm && now.Sub(inc.OccurredAt) < hotspotWindow {
			close++
		}
	}

	density := 1.0 + float64(close)*hotspotStep
	if density > hotspotCap {
		density = hotspotCap
	}
	return density
}

// SafetyInfluence - гасящий вклад объектов безопасности (Capable Guardian):
// сумма |тяжесть| * (1 - d/R) по всем объектам в радиусе 1 км.
// Для самих объектов безопасности всегда 0.0.
func SafetyInfluence(target *models.Incident, all []*models.Incident) float64 {
	if target.IsSafetyAsset() {
		return 0.0
	}

	influence := 0.0
	for _, inc := range all {
		if !inc.IsSafetyAsset() {
			continue
		}
		dist := geo.DistanceKm(target.Latitude, target.Longitude, inc.Latitude, inc.Longitude)
		if dist <= influenceRadiusKm {
			proximity := 1.0 - dist/influenceRadiusKm
			influence += float64(-inc.BaseSeverity) * proximity
		}
	}
	return influence
}
