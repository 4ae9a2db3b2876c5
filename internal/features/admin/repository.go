package admin

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository — сводные запросы по всем таблицам для статистики.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository создаёт репозиторий статистики.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// CountActiveRituals — число активных ритуалов по всем пользователям.
func (r *Repository) CountActiveRituals(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM rituals WHERE is_active`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("подсчёт активных ритуалов: %w", err)
	}
	return n, nil
}

// CountGems — число выданных неархивированных камней.
func (r *Repository) CountGems(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM ritual_gems WHERE NOT is_archived`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("подсчёт камней: %w", err)
	}
	return n, nil
}

// CountCompletionDays — число дней с хотя бы одним выполнением ритуалов.
func (r *Repository) CountCompletionDays(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM ritual_completions WHERE NOT is_archived`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("подсчёт дней выполнения: %w", err)
	}
	return n, nil
}
