package models

// Coordinate - пара [долгота, широта] в градусах (порядок GeoJSON)
type Coordinate [2]float64

// Lng возвращает долготу точки
func (c Coordinate) Lng() float64 { return c[0] }

// Lat возвращает широту точки
func (c Coordinate) Lat() float64 { return c[1] }

// RouteCandidate - геометрия маршрута от внешнего провайдера.
// Принадлежит вызывающей стороне, только для чтения.
type RouteCandidate struct {
	Geometry       []Coordinate
	DistanceMeters float64
	DurationSecs   float64
}

// IncidentPin - инцидент, отмеченный рядом с маршрутом
type IncidentPin struct {
	ID          string   `json:"id"`
	Lat         float64  `json:"lat"`
	Lng         float64  `json:"lng"`
	Category    Category `json:"type"`
	Description string   `json:"desc"`
	Severity    int      `json:"severity"`
}

// ScoredRoute - маршрут с оценкой безопасности
type ScoredRoute struct {
	Geometry    []Coordinate  `json:"geometry"`
	SafetyScore float64       `json:"safety_score"`
	Category    string        `json:"category"`
	Color       string        `json:"color"`
	Label       string        `json:"label"`
	Pins        []IncidentPin `json:"pins"`
	Distance    string        `json:"distance"`
	Duration    string        `json:"duration"`
	Narrative   string        `json:"narrative"`
	TimeLabel   string        `json:"time_label"`
}
