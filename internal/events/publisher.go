package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/saferoute/safe_route_navigator/internal/models"
)

const (
	tickQueueKey  = "simulation_ticks"
	alertQueueKey = "sos_alerts"
)

// TickEvent - сводка опубликованного тика симуляции
type TickEvent struct {
	Version     uint64    `json:"version"`
	TakenAt     time.Time `json:"taken_at"`
	ActiveCount int       `json:"active_count"`
	Pruned      int       `json:"pruned"`
	Injected    int       `json:"injected"`
}

// AlertEvent - событие SOS для внешних систем оповещения
type AlertEvent struct {
	ClientID  string               `json:"client_id"`
	Timestamp time.Time            `json:"timestamp"`
	Context   *models.AlertContext `json:"context"`
}

// Publisher - интерфейс для публикации событий движка
type Publisher interface {
	PublishTick(ctx context.Context, event TickEvent) error
	PublishAlert(ctx context.Context, event AlertEvent) error
}

// RedisPublisher - реализация Publisher, использующая очереди Redis
type RedisPublisher struct {
	redisClient *redis.Client
}

// NewRedisPublisher создает новый RedisPublisher
func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{
		redisClient: client,
	}
}

// PublishTick публикует сводку тика в очередь Redis
func (p *RedisPublisher) PublishTick(ctx context.Context, event TickEvent) error {
	return p.push(ctx, tickQueueKey, event)
}

// PublishAlert публикует SOS-событие в очередь Redis
func (p *RedisPublisher) PublishAlert(ctx context.Context, event AlertEvent) error {
	return p.push(ctx, alertQueueKey, event)
}

func (p *RedisPublisher) push(ctx context.Context, key string, event any) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	// LPUSH добавляет событие в левую часть списка (очереди)
	if err := p.redisClient.LPush(ctx, key, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish event to Redis: %w", err)
	}
	return nil
}
