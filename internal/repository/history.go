package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/saferoute/safe_route_navigator/internal/models"
)

// HistoryRepository хранит историю выполненных проверок безопасности
type HistoryRepository struct {
	db *pgxpool.Pool
}

// NewHistoryRepository создает репозиторий истории проверок
func NewHistoryRepository(db *pgxpool.Pool) *HistoryRepository {
	return &HistoryRepository{db: db}
}

// SaveScanCheck сохраняет запись о проверке (радар, SOS или маршрут) в бд
func (r *HistoryRepository) SaveScanCheck(ctx context.Context, check *models.ScanCheck) error {
	query := `
		INSERT INTO scan_checks (client_id, kind, location, score)
		VALUES ($1, $2, ST_SetSRID(ST_MakePoint($3, $4), 4326), $5) RETURNING id, checked_at;
	`
	err := r.db.QueryRow(ctx, query,
		check.ClientID,
		check.Kind,
		check.Longitude,
		check.Latitude,
		check.Score,
	).Scan(&check.ID, &check.CheckedAt)
	if err != nil {
		return fmt.Errorf("failed to save scan check: %w", err)
	}
	return nil
}

// GetScanStats возвращает количество уникальных клиентов, выполнивших
// проверку за последние minutes минут
func (r *HistoryRepository) GetScanStats(ctx context.Context, minutes int) (int, error) {
	query := `
		SELECT COUNT(DISTINCT client_id)
		FROM scan_checks
		WHERE checked_at >= NOW() - ($1 * INTERVAL '1 minute');
	`
	var count int
	err := r.db.QueryRow(ctx, query, minutes).Scan(&count)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get scan check stats: %w", err)
	}
	return count, nil
}
