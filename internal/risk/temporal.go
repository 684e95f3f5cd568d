package risk

import (
	"math"
	"time"

	"github.com/saferoute/safe_route_navigator/internal/models"
)

// DynamicScore пересчитывает динамический риск инцидента на момент now.
// Плотность кластера и влияние безопасности должны быть уже обновлены
// для текущего тика (см. HotspotDensity, SafetyInfluence).
// Объекты безопасности статичны: их оценка равна базовой тяжести.
// Побочный эффект: обновляет LastUpdated.
func DynamicScore(inc *models.Incident, now time.Time) float64 {
	if inc.IsSafetyAsset() {
		inc.DynamicRisk = float64(inc.BaseSeverity)
		inc.LastUpdated = now
		return inc.DynamicRisk
	}

	hoursElapsed := now.Sub(inc.OccurredAt).Hours()
	if hoursElapsed < 0 {
		hoursElapsed = 0
	}

	recencyFactor := math.Exp(-inc.DecayRate * hoursElapsed)
	timeWeight := incidentTimeWeight(inc.Category, now.Hour())

	raw := float64(inc.BaseSeverity)*timeWeight*recencyFactor*inc.HotspotDensity - inc.SafetyInfl

	inc.DynamicRisk = round2(clamp(raw, 0.0, 10.0))
	inc.LastUpdated = now
	return inc.DynamicRisk
}

// incidentTimeWeight - вес категории по времени суток (Routine Activity Theory).
// Ночь (20:00-04:00 включительно) усиливает уличные категории,
// дневное окно 10:00-18:00 усиливает домогательства.
func incidentTimeWeight(category models.Category, hour int) float64 {
	if hour >= 20 || hour <= 4 {
		switch category {
		case models.CategoryAssault, models.CategoryRobbery,
			models.CategoryPoorLighting, models.CategoryIsolatedArea:
			return 1.3
		}
	} else if hour >= 10 && hour <= 18 {
		if category == models.CategoryHarassment {
			return 1.1
		}
	}
	return 1.0
}

// TimeRiskMultiplier возвращает множитель риска запроса по часу суток
// и человекочитаемую метку. Применяется при оценке маршрутов и точек,
// независимо от веса, уже учтённого в динамической оценке инцидента.
func TimeRiskMultiplier(hour int) (float64, string) {
	switch {
	case hour >= 22 || hour < 4:
		return 1.8, "Night Travel Risk: HIGH"
	case hour >= 18 && hour < 22:
		return 1.3, "Evening Travel Risk: MODERATE"
	case hour >= 4 && hour < 7:
		return 1.2, "Early Morning Risk: SLIGHTLY ELEVATED"
	default:
		return 1.0, "Daytime Risk: NORMAL"
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
