package repository

import (
	"bytes"
	"context"
	"math/rand"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/saferoute/safe_route_navigator/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCSVRepo(t *testing.T) (*CSVIncidentRepository, string) {
	dir := t.TempDir()
	historyPath := filepath.Join(dir, "crime_history.csv")
	realtimePath := filepath.Join(dir, "crime_realtime.csv")

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	rng := rand.New(rand.NewSource(42))
	return NewCSVIncidentRepository(historyPath, realtimePath, logger, rng), historyPath
}

func TestLoad_MissingFileFailsOpen(t *testing.T) {
	// Подготовка: исторического файла нет
	repo, _ := newTestCSVRepo(t)

	// Действие
	incidents, err := repo.Load(context.Background())

	// Проверки: пустой набор без ошибки
	require.NoError(t, err)
	assert.Empty(t, incidents)
}

func TestLoad_ParsesKnownCategories(t *testing.T) {
	// Подготовка
	repo, historyPath := newTestCSVRepo(t)
	content := "id,type,latitude,longitude,severity,timestamp,description\n" +
		"H-0001,Assault,13.0475,80.2090,,2026-03-10 21:30,Street assault near metro\n" +
		"H-0002,Police Station,13.0418,80.2341,,2026-01-01 00:00,T2 Police Station\n"
	require.NoError(t, os.WriteFile(historyPath, []byte(content), 0o644))

	// Действие
	incidents, err := repo.Load(context.Background())

	// Проверки
	require.NoError(t, err)
	require.Len(t, incidents, 2)

	assault := incidents[0]
	assert.Equal(t, "H-0001", assault.ID)
	assert.Equal(t, models.CategoryAssault, assault.Category)
	assert.Equal(t, 8, assault.BaseSeverity)
	assert.Equal(t, 0.1, assault.DecayRate)
	assert.Equal(t, 13.0475, assault.Latitude)
	assert.Equal(t, time.Date(2026, 3, 10, 21, 30, 0, 0, time.UTC), assault.OccurredAt)
	assert.Equal(t, "Street assault near metro", assault.Description)

	station := incidents[1]
	assert.Equal(t, -10, station.BaseSeverity)
	assert.True(t, station.IsSafetyAsset())
}

func TestLoad_UnknownCategoryDefaults(t *testing.T) {
	// Подготовка: категория вне справочника
	repo, historyPath := newTestCSVRepo(t)
	content := "id,type,latitude,longitude,severity,timestamp,description\n" +
		"H-0003,Vandalism,13.05,80.21,,2026-03-10 10:00,Broken shopfront\n"
	require.NoError(t, os.WriteFile(historyPath, []byte(content), 0o644))

	// Действие
	incidents, err := repo.Load(context.Background())

	// Проверки: тяжесть 5, затухание 0.1 по умолчанию
	require.NoError(t, err)
	require.Len(t, incidents, 1)
	assert.Equal(t, 5, incidents[0].BaseSeverity)
	assert.Equal(t, 0.1, incidents[0].DecayRate)
}

func TestLoad_SeverityColumnOverridesProfile(t *testing.T) {
	// Подготовка
	repo, historyPath := newTestCSVRepo(t)
	content := "id,type,latitude,longitude,severity,timestamp,description\n" +
		"H-0004,Assault,13.05,80.21,9,2026-03-10 10:00,Aggravated\n"
	require.NoError(t, os.WriteFile(historyPath, []byte(content), 0o644))

	// Действие
	incidents, err := repo.Load(context.Background())

	// Проверки
	require.NoError(t, err)
	require.Len(t, incidents, 1)
	assert.Equal(t, 9, incidents[0].BaseSeverity)
}

func TestLoad_BadTimestampGetsRandomRecency(t *testing.T) {
	// Подготовка: битая дата заменяется давностью 1-30 дней
	repo, historyPath := newTestCSVRepo(t)
	content := "id,type,latitude,longitude,severity,timestamp,description\n" +
		"H-0005,Robbery,13.05,80.21,,not-a-date,Chain snatching\n"
	require.NoError(t, os.WriteFile(historyPath, []byte(content), 0o644))

	// Действие
	incidents, err := repo.Load(context.Background())

	// Проверки
	require.NoError(t, err)
	require.Len(t, incidents, 1)
	age := time.Since(incidents[0].OccurredAt)
	assert.GreaterOrEqual(t, age, 23*time.Hour)
	assert.LessOrEqual(t, age, 31*24*time.Hour)
}

func TestLoad_SkipsRowsWithBadCoordinates(t *testing.T) {
	// Подготовка
	repo, historyPath := newTestCSVRepo(t)
	content := "id,type,latitude,longitude,severity,timestamp,description\n" +
		"H-0006,Assault,not-a-lat,80.21,,2026-03-10 10:00,Broken row\n" +
		"H-0007,Assault,13.05,80.21,,2026-03-10 10:00,Good row\n"
	require.NoError(t, os.WriteFile(historyPath, []byte(content), 0o644))

	// Действие
	incidents, err := repo.Load(context.Background())

	// Проверки: битая строка пропущена, остальные загружены
	require.NoError(t, err)
	require.Len(t, incidents, 1)
	assert.Equal(t, "H-0007", incidents[0].ID)
}

func TestSave_WritesFixedColumnOrder(t *testing.T) {
	// Подготовка
	repo, _ := newTestCSVRepo(t)
	occurredAt := time.Date(2026, 3, 15, 21, 30, 0, 0, time.UTC)
	incidents := []*models.Incident{
		{
			ID:             "SIM-1",
			Category:       models.CategoryAssault,
			Latitude:       13.0475,
			Longitude:      80.209,
			BaseSeverity:   8,
			DynamicRisk:    7.25,
			OccurredAt:     occurredAt,
			LastUpdated:    occurredAt,
			DecayRate:      0.1,
			HotspotDensity: 1.3,
			SafetyInfl:     0.5,
			Description:    "Simulated Assault reported via dispatch feed.",
		},
	}

	// Действие
	err := repo.Save(context.Background(), incidents)

	// Проверки
	require.NoError(t, err)
	raw, err := os.ReadFile(repo.realtimePath)
	require.NoError(t, err)

	expected := "id,type,latitude,longitude,base_severity,dynamic_risk_score,timestamp,last_updated,time_decay_factor,hotspot_density,safety_influence,description\n" +
		"SIM-1,Assault,13.0475,80.209,8,7.25,2026-03-15 21:30:00,2026-03-15 21:30:00,0.1,1.30,0.50,Simulated Assault reported via dispatch feed.\n"
	assert.Equal(t, expected, string(raw))
}

func TestSaveThenLoad_RoundTrip(t *testing.T) {
	// Подготовка: realtime выгрузка одного тика читается как история
	dir := t.TempDir()
	path := filepath.Join(dir, "shared.csv")

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	rng := rand.New(rand.NewSource(42))
	repo := NewCSVIncidentRepository(path, path, logger, rng)

	occurredAt := time.Now().Add(-2 * time.Hour).Truncate(time.Minute)
	original := []*models.Incident{
		{
			ID:           "SIM-RT",
			Category:     models.CategoryRobbery,
			Latitude:     13.06,
			Longitude:    80.25,
			BaseSeverity: 7,
			DynamicRisk:  6.1,
			OccurredAt:   occurredAt,
			LastUpdated:  occurredAt,
			DecayRate:    0.15,
			Description:  "Round trip",
		},
	}
	require.NoError(t, repo.Save(context.Background(), original))

	// Действие
	loaded, err := repo.Load(context.Background())

	// Проверки: идентичность и координаты сохраняются
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "SIM-RT", loaded[0].ID)
	assert.Equal(t, models.CategoryRobbery, loaded[0].Category)
	assert.Equal(t, 13.06, loaded[0].Latitude)
	assert.Equal(t, 80.25, loaded[0].Longitude)
	assert.Equal(t, 7, loaded[0].BaseSeverity)
}
