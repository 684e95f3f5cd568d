package models

import (
	"time"
)

// Category - категория инцидента из фиксированного набора
type Category string

const (
	CategoryAssault       Category = "Assault"
	CategoryRobbery       Category = "Robbery"
	CategoryHarassment    Category = "Harassment"
	CategoryPoorLighting  Category = "Poor Lighting"
	CategoryIsolatedArea  Category = "Isolated Area"
	CategoryDrugActivity  Category = "Drug Activity"
	CategoryPoliceStation Category = "Police Station"
	CategoryCCTVZone      Category = "CCTV Zone"
)

// CategoryProfile - поведенческие параметры категории: базовая тяжесть
// и скорость экспоненциального затухания (в час)
type CategoryProfile struct {
	BaseSeverity int
	DecayRate    float64
}

// CategoryProfiles - единая таблица параметров по категориям.
// Отрицательная тяжесть означает объект безопасности (не затухает).
var CategoryProfiles = map[Category]CategoryProfile{
	CategoryAssault:       {BaseSeverity: 8, DecayRate: 0.1},
	CategoryRobbery:       {BaseSeverity: 7, DecayRate: 0.15},
	CategoryHarassment:    {BaseSeverity: 6, DecayRate: 0.2},
	CategoryPoorLighting:  {BaseSeverity: 4, DecayRate: 0.05},
	CategoryIsolatedArea:  {BaseSeverity: 5, DecayRate: 0.05},
	CategoryDrugActivity:  {BaseSeverity: 7, DecayRate: 0.1},
	CategoryPoliceStation: {BaseSeverity: -10, DecayRate: 0.0},
	CategoryCCTVZone:      {BaseSeverity: -5, DecayRate: 0.0},
}

// DangerCategories возвращает категории с положительной тяжестью в стабильном порядке
func DangerCategories() []Category {
	return []Category{
		CategoryAssault,
		CategoryRobbery,
		CategoryHarassment,
		CategoryPoorLighting,
		CategoryIsolatedArea,
		CategoryDrugActivity,
	}
}

// Incident - запись об инциденте или объекте безопасности
type Incident struct {
	ID             string    `json:"id"`
	Category       Category  `json:"type"`
	Latitude       float64   `json:"latitude"`
	Longitude      float64   `json:"longitude"`
	BaseSeverity   int       `json:"base_severity"`
	DynamicRisk    float64   `json:"dynamic_risk_score"`
	OccurredAt     time.Time `json:"timestamp"`
	LastUpdated    time.Time `json:"last_updated"`
	DecayRate      float64   `json:"time_decay_factor"`
	HotspotDensity float64   `json:"hotspot_density"`
	SafetyInfl     float64   `json:"safety_influence"`
	Description    string    `json:"description"`
}

// IsSafetyAsset сообщает, является ли запись объектом безопасности
// (полицейский пост, зона видеонаблюдения)
func (i *Incident) IsSafetyAsset() bool {
	return i.BaseSeverity < 0
}
