package store

import (
	"sync/atomic"
	"time"

	"github.com/saferoute/safe_route_navigator/internal/models"
)

// Snapshot - целостный снимок набора инцидентов на один тик симуляции.
// После публикации снимок не изменяется.
type Snapshot struct {
	Version   uint64
	TakenAt   time.Time
	Incidents []*models.Incident
}

// Store хранит текущий опубликованный снимок. Писатель (менеджер жизненного
// цикла) собирает следующий снимок приватно и публикует его атомарно;
// читатели всегда видят последний целиком сформированный снимок без блокировок.
type Store struct {
	current atomic.Pointer[Snapshot]
	version atomic.Uint64
}

// New создает хранилище с пустым начальным снимком
func New() *Store {
	s := &Store{}
	s.current.Store(&Snapshot{TakenAt: time.Now(), Incidents: []*models.Incident{}})
	return s
}

// Current возвращает последний опубликованный снимок
func (s *Store) Current() *Snapshot {
	return s.current.Load()
}

// Publish присваивает снимку следующий номер версии и публикует его.
// Снимок владеет собственными копиями инцидентов: последующие мутации
// рабочего набора писателя (чистка, сортировка, пересчет полей) не
// затрагивают уже опубликованные снимки.
func (s *Store) Publish(incidents []*models.Incident, takenAt time.Time) *Snapshot {
	copies := make([]*models.Incident, len(incidents))
	for i, inc := range incidents {
		clone := *inc
		copies[i] = &clone
	}

	snap := &Snapshot{
		Version:   s.version.Add(1),
		TakenAt:   takenAt,
		Incidents: copies,
	}
	s.current.Store(snap)
	return snap
}
