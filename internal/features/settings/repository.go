package settings

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository — доступ к таблице user_settings.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository создаёт репозиторий настроек.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// GetOrCreate возвращает настройки пользователя, создавая строку
// со значениями по умолчанию при первом обращении.
func (r *Repository) GetOrCreate(ctx context.Context, userID string) (*Settings, error) {
	s := &Settings{}
	err := r.pool.QueryRow(ctx, `
		INSERT INTO user_settings (user_id)
		VALUES ($1)
		ON CONFLICT (user_id) DO UPDATE SET user_id = EXCLUDED.user_id
		RETURNING user_id, selected_color, inbox_selected_color, coins,
		          telegram_chat_id, created_at, updated_at
	`, userID).Scan(&s.UserID, &s.SelectedColor, &s.InboxSelectedColor, &s.Coins,
		&s.TelegramChatID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("чтение настроек: %w", err)
	}
	return s, nil
}

// Update применяет частичное обновление настроек.
func (r *Repository) Update(ctx context.Context, userID string, upd SettingsUpdate) (*Settings, error) {
	s := &Settings{}
	err := r.pool.QueryRow(ctx, `
		UPDATE user_settings SET
			selected_color = COALESCE($2, selected_color),
			inbox_selected_color = COALESCE($3, inbox_selected_color),
			telegram_chat_id = COALESCE($4, telegram_chat_id),
			updated_at = NOW()
		WHERE user_id = $1
		RETURNING user_id, selected_color, inbox_selected_color, coins,
		          telegram_chat_id, created_at, updated_at
	`, userID, upd.SelectedColor, upd.InboxSelectedColor, upd.TelegramChatID).Scan(
		&s.UserID, &s.SelectedColor, &s.InboxSelectedColor, &s.Coins,
		&s.TelegramChatID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("обновление настроек: %w", err)
	}
	return s, nil
}

// AddCoins прибавляет монеты и возвращает новый баланс.
func (r *Repository) AddCoins(ctx context.Context, userID string, amount int) (int, error) {
	var coins int
	err := r.pool.QueryRow(ctx, `
		UPDATE user_settings
		SET coins = coins + $2, updated_at = NOW()
		WHERE user_id = $1
		RETURNING coins
	`, userID, amount).Scan(&coins)
	if err != nil {
		return 0, fmt.Errorf("начисление монет: %w", err)
	}
	return coins, nil
}

// ListWithTelegram возвращает пользователей, привязавших Telegram-чат.
// Нужен вечерним напоминаниям.
func (r *Repository) ListWithTelegram(ctx context.Context) ([]*Settings, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT user_id, selected_color, inbox_selected_color, coins,
		       telegram_chat_id, created_at, updated_at
		FROM user_settings
		WHERE telegram_chat_id IS NOT NULL
	`)
	if err != nil {
		return nil, fmt.Errorf("выборка пользователей с Telegram: %w", err)
	}
	defer rows.Close()

	var list []*Settings
	for rows.Next() {
		s := &Settings{}
		if err := rows.Scan(&s.UserID, &s.SelectedColor, &s.InboxSelectedColor, &s.Coins,
			&s.TelegramChatID, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("скан настроек: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// CountUsers — число пользователей с настройками, для админской статистики.
func (r *Repository) CountUsers(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM user_settings`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("подсчёт пользователей: %w", err)
	}
	return n, nil
}

// TotalCoins — сумма монет всех пользователей.
func (r *Repository) TotalCoins(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx,
		`SELECT COALESCE(SUM(coins), 0) FROM user_settings`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("сумма монет: %w", err)
	}
	return n, nil
}
