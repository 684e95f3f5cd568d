package simulation

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/saferoute/safe_route_navigator/internal/config"
	"github.com/saferoute/safe_route_navigator/internal/events"
	"github.com/saferoute/safe_route_navigator/internal/models"
	"github.com/saferoute/safe_route_navigator/internal/risk"
	"github.com/saferoute/safe_route_navigator/internal/store"
	"github.com/sirupsen/logrus"
)

const (
	pruneScoreFloor = 0.5
	pruneFreshness  = time.Hour
	nearRepeatProb  = 0.7
	nearRepeatSpan  = 0.015
	minInjected     = 1
	maxInjected     = 3
)

// IncidentSink определяет контракт для выгрузки активного набора инцидентов
type IncidentSink interface {
	Save(ctx context.Context, incidents []*models.Incident) error
}

// Engine - менеджер жизненного цикла инцидентов. Каждый тик: чистка
// устаревших записей, инъекция синтетических инцидентов, пересчет оценок
// и атомарная публикация нового снимка.
type Engine struct {
	store     *store.Store
	sink      IncidentSink
	publisher events.Publisher
	logger    *logrus.Logger
	cfg       *config.Config
	rng       *rand.Rand

	// Рабочий набор принадлежит только движку; читатели видят снимки
	active []*models.Incident
}

// NewEngine создает движок с начальным набором инцидентов и источником
// случайности. rng передается явно, чтобы тесты воспроизводили инъекцию.
func NewEngine(st *store.Store, sink IncidentSink, publisher events.Publisher, logger *logrus.Logger, cfg *config.Config, rng *rand.Rand, initial []*models.Incident) *Engine {
	return &Engine{
		store:     st,
		sink:      sink,
		publisher: publisher,
		logger:    logger,
		cfg:       cfg,
		rng:       rng,
		active:    initial,
	}
}

// Start запускает горутину цикла симуляции: тик сразу, затем по интервалу.
// Останавливается при отмене контекста без ожидания следующего тика.
func (e *Engine) Start(ctx context.Context) {
	e.logger.WithField("interval", e.cfg.SimInterval.String()).Info("Starting incident lifecycle engine...")
	go func() {
		e.RunTick(ctx, time.Now())

		ticker := time.NewTicker(e.cfg.SimInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				e.logger.Info("Stopping incident lifecycle engine.")
				return
			case now := <-ticker.C:
				e.RunTick(ctx, now)
			}
		}
	}()
}

// RunTick выполняет один полный цикл: Prune -> Inject -> Recompute -> Persist.
// Возвращает опубликованный снимок. Сбои выгрузки и публикации событий
// не откатывают тик и только логируются.
func (e *Engine) RunTick(ctx context.Context, now time.Time) *store.Snapshot {
	log := e.logger.WithFields(logrus.Fields{
		"component": "simulation",
		"tick_at":   now.Format(time.RFC3339),
	})

	pruned := e.prune(now)
	injected := e.inject(now)
	e.recompute(now)

	snapshot := e.store.Publish(e.active, now)

	if err := e.sink.Save(ctx, e.active); err != nil {
		// Снимок уже опубликован; сбой выгрузки не откатывает тик
		log.WithError(err).Error("Failed to persist incident set")
	}

	if e.publisher != nil {
		event := events.TickEvent{
			Version:     snapshot.Version,
			TakenAt:     now,
			ActiveCount: len(e.active),
			Pruned:      pruned,
			Injected:    injected,
		}
		if err := e.publisher.PublishTick(ctx, event); err != nil {
			log.WithError(err).Warn("Failed to publish tick event")
		}
	}

	log.WithFields(logrus.Fields{
		"version":  snapshot.Version,
		"active":   len(e.active),
		"pruned":   pruned,
		"injected": injected,
	}).Info("Lifecycle tick completed")

	return snapshot
}

// prune удаляет опасные инциденты с угасшей оценкой. Запись сохраняется,
// если её оценка еще значима, она свежее часа, либо это объект безопасности.
func (e *Engine) prune(now time.Time) int {
	kept := e.active[:0]
	for _, inc := range e.active {
		if inc.DynamicRisk >= pruneScoreFloor || inc.IsSafetyAsset() || now.Sub(inc.OccurredAt) < pruneFreshness {
			kept = append(kept, inc)
		}
	}
	removed := len(e.active) - len(kept)
	e.active = kept
	return removed
}

// inject добавляет 1-3 синтетических инцидента, пока активный набор меньше
// настроенного лимита. 70% новых записей кластеризуются рядом с существующим
// опасным инцидентом (Near-Repeat theory), остальные размещаются равномерно
// внутри настроенного региона.
func (e *Engine) inject(now time.Time) int {
	if len(e.active) >= e.cfg.MaxActiveIncidents {
		return 0
	}

	num := minInjected + e.rng.Intn(maxInjected-minInjected+1)
	for i := 0; i < num; i++ {
		e.active = append(e.active, e.generateIncident(now))
	}
	return num
}

func (e *Engine) generateIncident(now time.Time) *models.Incident {
	dangerCats := models.DangerCategories()
	category := dangerCats[e.rng.Intn(len(dangerCats))]
	profile := models.CategoryProfiles[category]

	var lat, lon float64
	anchor := e.pickDangerAnchor()
	if e.rng.Float64() < nearRepeatProb && anchor != nil {
		lat = anchor.Latitude + e.uniform(-nearRepeatSpan, nearRepeatSpan)
		lon = anchor.Longitude + e.uniform(-nearRepeatSpan, nearRepeatSpan)
	} else {
		lat = e.uniform(e.cfg.RegionLatMin, e.cfg.RegionLatMax)
		lon = e.uniform(e.cfg.RegionLonMin, e.cfg.RegionLonMax)
	}

	return &models.Incident{
		ID:             fmt.Sprintf("SIM-%d-%s", now.Unix(), uuid.NewString()[:8]),
		Category:       category,
		Latitude:       round4(lat),
		Longitude:      round4(lon),
		BaseSeverity:   profile.BaseSeverity,
		DynamicRisk:    float64(profile.BaseSeverity), // уточнится пересчетом тика
		OccurredAt:     now,
		LastUpdated:    now,
		DecayRate:      profile.DecayRate,
		HotspotDensity: 1.0,
		SafetyInfl:     0.0,
		Description:    fmt.Sprintf("Simulated %s reported via dispatch feed.", category),
	}
}

func (e *Engine) pickDangerAnchor() *models.Incident {
	dangers := make([]*models.Incident, 0, len(e.active))
	for _, inc := range e.active {
		if inc.BaseSeverity > 0 {
			dangers = append(dangers, inc)
		}
	}
	if len(dangers) == 0 {
		return nil
	}
	return dangers[e.rng.Intn(len(dangers))]
}

// recompute обновляет производные поля каждого инцидента: сначала плотность
// кластера и влияние безопасности по текущему набору (включая только что
// добавленные записи), затем итоговую динамическую оценку.
func (e *Engine) recompute(now time.Time) {
	for _, inc := range e.active {
		inc.HotspotDensity = risk.HotspotDensity(inc, e.active, now)
		inc.SafetyInfl = risk.SafetyInfluence(inc, e.active)
		risk.DynamicScore(inc, now)
	}

	sort.SliceStable(e.active, func(i, j int) bool {
		return e.active[i].DynamicRisk > e.active[j].DynamicRisk
	})
}

func (e *Engine) uniform(lo, hi float64) float64 {
	return lo + e.rng.Float64()*(hi-lo)
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
