package repository

import (
	"context"
	"encoding/csv"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/saferoute/safe_route_navigator/internal/models"
	"github.com/sirupsen/logrus"
)

const (
	historyTimeLayout  = "2006-01-02 15:04"
	realtimeTimeLayout = "2006-01-02 15:04:05"
)

// realtimeColumns - фиксированный порядок колонок выгрузки
var realtimeColumns = []string{
	"id", "type", "latitude", "longitude", "base_severity",
	"dynamic_risk_score", "timestamp", "last_updated",
	"time_decay_factor", "hotspot_density", "safety_influence", "description",
}

// CSVIncidentRepository - граница данных инцидентов: читает исторический
// CSV и выгружает активный набор в realtime CSV
type CSVIncidentRepository struct {
	historyPath  string
	realtimePath string
	logger       *logrus.Logger
	rng          *rand.Rand
}

// NewCSVIncidentRepository создает репозиторий над парой CSV файлов.
// rng используется для подстановки случайной давности при битых датах.
func NewCSVIncidentRepository(historyPath, realtimePath string, logger *logrus.Logger, rng *rand.Rand) *CSVIncidentRepository {
	return &CSVIncidentRepository{
		historyPath:  historyPath,
		realtimePath: realtimePath,
		logger:       logger,
		rng:          rng,
	}
}

// Load читает исторический набор инцидентов. Нечитаемый файл не считается
// фатальной ошибкой: возвращается пустой набор, а все последующие оценки
// деградируют к максимально безопасным.
func (r *CSVIncidentRepository) Load(ctx context.Context) ([]*models.Incident, error) {
	f, err := os.Open(r.historyPath)
	if err != nil {
		r.logger.WithError(err).WithField("path", r.historyPath).
			Warn("Could not open incident history, starting with an empty set")
		return []*models.Incident{}, nil
	}
	defer f.Close()

	reader := csv.NewReader(f)
	rows, err := reader.ReadAll()
	if err != nil {
		r.logger.WithError(err).WithField("path", r.historyPath).
			Warn("Could not parse incident history, starting with an empty set")
		return []*models.Incident{}, nil
	}
	if len(rows) == 0 {
		return []*models.Incident{}, nil
	}

	col := columnIndex(rows[0])
	now := time.Now()
	incidents := make([]*models.Incident, 0, len(rows)-1)
	for _, row := range rows[1:] {
		inc, err := r.parseRow(row, col, now)
		if err != nil {
			r.logger.WithError(err).Warn("Skipping malformed incident row")
			continue
		}
		incidents = append(incidents, inc)
	}

	r.logger.WithField("count", len(incidents)).Info("Loaded incident history")
	return incidents, nil
}

func (r *CSVIncidentRepository) parseRow(row []string, col map[string]int, now time.Time) (*models.Incident, error) {
	get := func(name string) string {
		idx, ok := col[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return row[idx]
	}

	lat, err := strconv.ParseFloat(get("latitude"), 64)
	if err != nil {
		return nil, fmt.Errorf("bad latitude %q: %w", get("latitude"), err)
	}
	lon, err := strconv.ParseFloat(get("longitude"), 64)
	if err != nil {
		return nil, fmt.Errorf("bad longitude %q: %w", get("longitude"), err)
	}

	category := models.Category(get("type"))
	profile := models.CategoryProfiles[category]

	severity := profile.BaseSeverity
	if severity == 0 {
		severity = 5
	}
	if raw := get("severity"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			severity = parsed
		}
	}

	decayRate := profile.DecayRate
	if _, known := models.CategoryProfiles[category]; !known {
		decayRate = 0.1
	}

	// Битая или отсутствующая дата заменяется случайной давностью 1-30 дней.
	// Это вносит недетерминизм в расчет затухания (см. DESIGN.md).
	occurredAt, err := time.Parse(historyTimeLayout, get("timestamp"))
	if err != nil {
		occurredAt = now.AddDate(0, 0, -(1 + r.rng.Intn(30)))
	}

	id := get("id")
	if id == "" {
		id = fmt.Sprintf("H-%04d", 1000+r.rng.Intn(9000))
	}

	description := get("description")
	if description == "" {
		description = "Historical incident"
	}

	return &models.Incident{
		ID:             id,
		Category:       category,
		Latitude:       lat,
		Longitude:      lon,
		BaseSeverity:   severity,
		DynamicRisk:    float64(severity),
		OccurredAt:     occurredAt,
		LastUpdated:    now,
		DecayRate:      decayRate,
		HotspotDensity: 1.0,
		SafetyInfl:     0.0,
		Description:    description,
	}, nil
}

// Save выгружает активный набор в realtime CSV, отсортированный по
// динамической оценке по убыванию. Набор приходит уже отсортированным
// после пересчета тика.
func (r *CSVIncidentRepository) Save(ctx context.Context, incidents []*models.Incident) error {
	f, err := os.Create(r.realtimePath)
	if err != nil {
		return fmt.Errorf("failed to create realtime csv: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.Write(realtimeColumns); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, inc := range incidents {
		row := []string{
			inc.ID,
			string(inc.Category),
			strconv.FormatFloat(inc.Latitude, 'f', -1, 64),
			strconv.FormatFloat(inc.Longitude, 'f', -1, 64),
			strconv.Itoa(inc.BaseSeverity),
			strconv.FormatFloat(inc.DynamicRisk, 'f', 2, 64),
			inc.OccurredAt.Format(realtimeTimeLayout),
			inc.LastUpdated.Format(realtimeTimeLayout),
			strconv.FormatFloat(inc.DecayRate, 'f', -1, 64),
			fmt.Sprintf("%.2f", inc.HotspotDensity),
			fmt.Sprintf("%.2f", inc.SafetyInfl),
			inc.Description,
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush realtime csv: %w", err)
	}
	return nil
}

func columnIndex(header []string) map[string]int {
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[name] = i
	}
	return col
}
