package geo

import (
	"github.com/golang/geo/s2"
)

// Радиусы Земли (средние), используются всеми проверками близости в системе
const (
	EarthRadiusKm     = 6371.0
	EarthRadiusMeters = 6371000.0
)

// DistanceKm вычисляет расстояние по дуге большого круга между двумя
// точками в километрах
func DistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	p1 := s2.LatLngFromDegrees(lat1, lon1)
	p2 := s2.LatLngFromDegrees(lat2, lon2)
	return p1.Distance(p2).Radians() * EarthRadiusKm
}

// DistanceMeters вычисляет расстояние по дуге большого круга в метрах
func DistanceMeters(lat1, lon1, lat2, lon2 float64) float64 {
	return DistanceKm(lat1, lon1, lat2, lon2) * 1000
}
