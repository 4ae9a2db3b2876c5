// Package gems — repository.go выполняет операции с таблицей ritual_gems.
package gems

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository предоставляет методы для работы с таблицей ritual_gems.
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository создаёт новый репозиторий кристаллов.
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// FetchByUser возвращает неархивные кристаллы пользователя
// по возрастанию даты.
func (r *Repository) FetchByUser(ctx context.Context, userID string) ([]*Gem, error) {
	query := `
		SELECT id, user_id, date, created_at, is_archived, archived_at
		FROM ritual_gems
		WHERE user_id = $1 AND is_archived = FALSE
		ORDER BY date ASC
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения кристаллов: %w", err)
	}
	defer rows.Close()

	var gems []*Gem
	for rows.Next() {
		var g Gem
		err := rows.Scan(&g.ID, &g.UserID, &g.Date, &g.CreatedAt, &g.IsArchived, &g.ArchivedAt)
		if err != nil {
			return nil, fmt.Errorf("ошибка сканирования: %w", err)
		}
		gems = append(gems, &g)
	}
	return gems, nil
}

// Insert выдаёт кристалл за день. Повторная выдача за тот же день
// молча игнорируется — уникальность по (user_id, date).
func (r *Repository) Insert(ctx context.Context, userID, date string) error {
	query := `
		INSERT INTO ritual_gems (user_id, date)
		VALUES ($1, $2)
		ON CONFLICT (user_id, date) DO NOTHING
	`
	_, err := r.db.Exec(ctx, query, userID, date)
	if err != nil {
		return fmt.Errorf("ошибка выдачи кристалла: %w", err)
	}
	return nil
}

// ArchiveAll помечает все неархивные кристаллы пользователя архивными.
func (r *Repository) ArchiveAll(ctx context.Context, userID string) error {
	query := `
		UPDATE ritual_gems
		SET is_archived = TRUE, archived_at = NOW()
		WHERE user_id = $1 AND is_archived = FALSE
	`
	_, err := r.db.Exec(ctx, query, userID)
	if err != nil {
		return fmt.Errorf("ошибка архивации кристаллов: %w", err)
	}
	return nil
}

// CountActive возвращает число неархивных кристаллов пользователя.
func (r *Repository) CountActive(ctx context.Context, userID string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM ritual_gems WHERE user_id = $1 AND is_archived = FALSE`,
		userID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("ошибка подсчёта кристаллов: %w", err)
	}
	return count, nil
}
