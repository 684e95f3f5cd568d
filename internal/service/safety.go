package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/saferoute/safe_route_navigator/internal/config"
	"github.com/saferoute/safe_route_navigator/internal/events"
	"github.com/saferoute/safe_route_navigator/internal/models"
	"github.com/saferoute/safe_route_navigator/internal/risk"
	"github.com/saferoute/safe_route_navigator/internal/scoring"
	"github.com/saferoute/safe_route_navigator/internal/store"
	"github.com/sirupsen/logrus"
)

// Geocoder определяет контракт внешнего геокодера
type Geocoder interface {
	Geocode(ctx context.Context, place string) (float64, float64, error)
}

// RouteProvider определяет контракт внешнего провайдера маршрутов
type RouteProvider interface {
	FetchRoutes(ctx context.Context, originLat, originLng, destLat, destLng float64, alternatives int) ([]models.RouteCandidate, error)
}

// HistoryRepository определяет контракт для работы с историей проверок
type HistoryRepository interface {
	SaveScanCheck(ctx context.Context, check *models.ScanCheck) error
	GetScanStats(ctx context.Context, minutes int) (int, error)
}

// SafetyService определяет контракт бизнес-логики оценки безопасности
type SafetyService interface {
	PlanRoutes(ctx context.Context, clientID, origin, destination string) ([]models.ScoredRoute, string, error)
	ScoreRadar(ctx context.Context, clientID string, lat, lng float64) (models.RadarScan, error)
	SendAlert(ctx context.Context, clientID string, lat, lng float64) (models.AlertContext, error)
	FindSafeHavens(ctx context.Context, lat, lng float64, limit int) ([]models.SafeHaven, error)
	GetHeatmap(ctx context.Context) []models.HeatmapPoint
	GetStats(ctx context.Context) (models.DatasetStats, int, error)
}

type safetyService struct {
	snapshots *store.Store
	geocoder  Geocoder
	router    RouteProvider
	history   HistoryRepository
	publisher events.Publisher
	logger    *logrus.Logger
	cfg       *config.Config

	// Переопределяется в тестах для детерминизма множителя времени
	now func() time.Time
}

// NewSafetyService создает сервис оценки безопасности
func NewSafetyService(snapshots *store.Store, geocoder Geocoder, router RouteProvider, history HistoryRepository, publisher events.Publisher, logger *logrus.Logger, cfg *config.Config) SafetyService {
	return &safetyService{
		snapshots: snapshots,
		geocoder:  geocoder,
		router:    router,
		history:   history,
		publisher: publisher,
		logger:    logger,
		cfg:       cfg,
		now:       time.Now,
	}
}

// PlanRoutes строит альтернативные маршруты между двумя местами и оценивает
// каждый по текущему снимку инцидентов. Возвращает маршруты по убыванию
// оценки (при равенстве сохраняется порядок провайдера) и метку времени суток.
func (s *safetyService) PlanRoutes(ctx context.Context, clientID, origin, destination string) ([]models.ScoredRoute, string, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "safety",
		"method":  "PlanRoutes",
		"origin":  origin,
		"dest":    destination,
	})
	log.Info("Planning routes")

	originLat, originLng, err := s.geocoder.Geocode(ctx, origin)
	if err != nil {
		log.WithError(err).Warn("Failed to geocode origin")
		return nil, "", fmt.Errorf("service: could not geocode origin: %w", err)
	}
	destLat, destLng, err := s.geocoder.Geocode(ctx, destination)
	if err != nil {
		log.WithError(err).Warn("Failed to geocode destination")
		return nil, "", fmt.Errorf("service: could not geocode destination: %w", err)
	}

	candidates, err := s.router.FetchRoutes(ctx, originLat, originLng, destLat, destLng, s.cfg.RouteAlternatives)
	if err != nil {
		log.WithError(err).Warn("Failed to fetch routes")
		return nil, "", fmt.Errorf("service: could not fetch routes: %w", err)
	}

	snapshot := s.snapshots.Current()
	multiplier, timeLabel := risk.TimeRiskMultiplier(s.now().Hour())

	scored := make([]models.ScoredRoute, 0, len(candidates))
	for _, candidate := range candidates {
		score, pins := scoring.ScoreRoute(candidate.Geometry, snapshot.Incidents, multiplier)
		category, color, label := scoring.ClassifySafety(score)

		scored = append(scored, models.ScoredRoute{
			Geometry:    candidate.Geometry,
			SafetyScore: score,
			Category:    category,
			Color:       color,
			Label:       label,
			Pins:        pins,
			Distance:    fmt.Sprintf("%.2f km", candidate.DistanceMeters/1000),
			Duration:    fmt.Sprintf("%.0f min", candidate.DurationSecs/60),
			Narrative:   scoring.Narrative(score, pins, category, timeLabel),
			TimeLabel:   timeLabel,
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].SafetyScore > scored[j].SafetyScore
	})

	s.recordCheck(ctx, log, clientID, "route", originLat, originLng, scored[0].SafetyScore)

	log.WithFields(logrus.Fields{
		"routes":     len(scored),
		"best_score": scored[0].SafetyScore,
	}).Info("Routes planned successfully")
	return scored, timeLabel, nil
}

// ScoreRadar выполняет локальное сканирование безопасности вокруг точки
func (s *safetyService) ScoreRadar(ctx context.Context, clientID string, lat, lng float64) (models.RadarScan, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "safety",
		"method":    "ScoreRadar",
		"client_id": clientID,
	})
	log.Info("Running radar scan")

	snapshot := s.snapshots.Current()
	scan := scoring.RadarScan(lat, lng, snapshot.Incidents)

	s.recordCheck(ctx, log, clientID, "radar", lat, lng, scan.SafetyScore)

	log.WithField("safety_score", scan.SafetyScore).Info("Radar scan completed")
	return scan, nil
}

// SendAlert собирает контекст SOS-оповещения и публикует событие тревоги
func (s *safetyService) SendAlert(ctx context.Context, clientID string, lat, lng float64) (models.AlertContext, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "safety",
		"method":    "SendAlert",
		"client_id": clientID,
	})
	log.Info("Building SOS alert context")

	snapshot := s.snapshots.Current()
	now := s.now()
	alertCtx := scoring.AlertContext(lat, lng, snapshot.Incidents, now)

	if s.publisher != nil {
		event := events.AlertEvent{
			ClientID:  clientID,
			Timestamp: now,
			Context:   &alertCtx,
		}
		if err := s.publisher.PublishAlert(ctx, event); err != nil {
			log.WithError(err).Error("Failed to publish alert event")
			return models.AlertContext{}, fmt.Errorf("service: could not publish alert: %w", err)
		}
	}

	s.recordCheck(ctx, log, clientID, "sos", lat, lng, 0)

	log.WithField("nearby_dangers", len(alertCtx.Dangers)).Info("SOS alert context ready")
	return alertCtx, nil
}

// FindSafeHavens возвращает ближайшие объекты безопасности для точки
func (s *safetyService) FindSafeHavens(ctx context.Context, lat, lng float64, limit int) ([]models.SafeHaven, error) {
	if limit < 1 {
		limit = 5
	}

	snapshot := s.snapshots.Current()
	return scoring.NearestSafeHavens(lat, lng, snapshot.Incidents, limit), nil
}

// GetHeatmap возвращает точки тепловой карты текущего снимка
func (s *safetyService) GetHeatmap(ctx context.Context) []models.HeatmapPoint {
	snapshot := s.snapshots.Current()
	return scoring.Heatmap(snapshot.Incidents)
}

// GetStats возвращает сводку снимка и число уникальных клиентов за окно статистики
func (s *safetyService) GetStats(ctx context.Context) (models.DatasetStats, int, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "safety",
		"method":  "GetStats",
	})

	snapshot := s.snapshots.Current()
	_, timeLabel := risk.TimeRiskMultiplier(s.now().Hour())
	stats := scoring.Stats(snapshot.Incidents, timeLabel)

	clients, err := s.history.GetScanStats(ctx, s.cfg.StatsTimeWindowMinutes)
	if err != nil {
		log.WithError(err).Error("Failed to get scan stats from repository")
		return models.DatasetStats{}, 0, fmt.Errorf("service: could not get scan stats: %w", err)
	}
	return stats, clients, nil
}

// recordCheck сохраняет факт проверки в историю; сбой не прерывает запрос
func (s *safetyService) recordCheck(ctx context.Context, log *logrus.Entry, clientID, kind string, lat, lng, score float64) {
	check := &models.ScanCheck{
		ClientID:  clientID,
		Kind:      kind,
		Latitude:  lat,
		Longitude: lng,
		Score:     score,
	}
	if err := s.history.SaveScanCheck(ctx, check); err != nil {
		log.WithError(err).Error("Failed to save scan check")
	}
}
