// Package rituals — repository.go выполняет операции с таблицами
// rituals и ritual_complete_logs.
package rituals

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository предоставляет методы для работы с ритуалами.
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository создаёт новый репозиторий ритуалов.
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// FetchActive возвращает активные ритуалы пользователя в порядке отображения.
func (r *Repository) FetchActive(ctx context.Context, userID string) ([]*Ritual, error) {
	query := `
		SELECT id, user_id, name, order_index, is_active, created_at, updated_at
		FROM rituals
		WHERE user_id = $1 AND is_active = TRUE
		ORDER BY order_index ASC
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения ритуалов: %w", err)
	}
	defer rows.Close()

	var rituals []*Ritual
	for rows.Next() {
		var rt Ritual
		err := rows.Scan(&rt.ID, &rt.UserID, &rt.Name, &rt.OrderIndex,
			&rt.IsActive, &rt.CreatedAt, &rt.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("ошибка сканирования: %w", err)
		}
		rituals = append(rituals, &rt)
	}
	return rituals, nil
}

// ActiveIDs возвращает идентификаторы активных ритуалов.
// Реализует streak.ActiveRitualSource.
func (r *Repository) ActiveIDs(ctx context.Context, userID string) ([]int64, error) {
	query := `SELECT id FROM rituals WHERE user_id = $1 AND is_active = TRUE ORDER BY order_index ASC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения активных ритуалов: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("ошибка сканирования: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// GetActive возвращает активный ритуал по идентификатору
// или nil, если такого нет.
func (r *Repository) GetActive(ctx context.Context, userID string, ritualID int64) (*Ritual, error) {
	query := `
		SELECT id, user_id, name, order_index, is_active, created_at, updated_at
		FROM rituals
		WHERE id = $1 AND user_id = $2 AND is_active = TRUE
	`
	var rt Ritual
	err := r.db.QueryRow(ctx, query, ritualID, userID).Scan(
		&rt.ID, &rt.UserID, &rt.Name, &rt.OrderIndex,
		&rt.IsActive, &rt.CreatedAt, &rt.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("ошибка получения ритуала: %w", err)
	}
	return &rt, nil
}

// Insert создаёт новый ритуал в конце списка.
func (r *Repository) Insert(ctx context.Context, userID, name string) (*Ritual, error) {
	query := `
		INSERT INTO rituals (user_id, name, order_index)
		VALUES ($1, $2, COALESCE(
			(SELECT MAX(order_index) + 1 FROM rituals WHERE user_id = $1), 0))
		RETURNING id, user_id, name, order_index, is_active, created_at, updated_at
	`
	var rt Ritual
	err := r.db.QueryRow(ctx, query, userID, name).Scan(
		&rt.ID, &rt.UserID, &rt.Name, &rt.OrderIndex,
		&rt.IsActive, &rt.CreatedAt, &rt.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания ритуала: %w", err)
	}
	return &rt, nil
}

// Update частично обновляет ритуал. Возвращает nil, если ритуал не найден.
func (r *Repository) Update(ctx context.Context, userID string, ritualID int64, upd *RitualUpdate) (*Ritual, error) {
	query := `
		UPDATE rituals
		SET name = COALESCE($3, name),
		    order_index = COALESCE($4, order_index),
		    is_active = COALESCE($5, is_active),
		    updated_at = NOW()
		WHERE id = $1 AND user_id = $2
		RETURNING id, user_id, name, order_index, is_active, created_at, updated_at
	`
	var rt Ritual
	err := r.db.QueryRow(ctx, query, ritualID, userID, upd.Name, upd.OrderIndex, upd.IsActive).Scan(
		&rt.ID, &rt.UserID, &rt.Name, &rt.OrderIndex,
		&rt.IsActive, &rt.CreatedAt, &rt.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("ошибка обновления ритуала: %w", err)
	}
	return &rt, nil
}

// Deactivate мягко удаляет ритуал (is_active = FALSE).
func (r *Repository) Deactivate(ctx context.Context, userID string, ritualID int64) (bool, error) {
	query := `
		UPDATE rituals
		SET is_active = FALSE, updated_at = NOW()
		WHERE id = $1 AND user_id = $2 AND is_active = TRUE
	`
	tag, err := r.db.Exec(ctx, query, ritualID, userID)
	if err != nil {
		return false, fmt.Errorf("ошибка деактивации ритуала: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// --- Журнал отметок ---

// LogCompletion записывает отметку ритуала за день.
// Повторная отметка того же дня молча игнорируется.
func (r *Repository) LogCompletion(ctx context.Context, userID string, ritualID int64, date string) error {
	query := `
		INSERT INTO ritual_complete_logs (user_id, ritual_id, date)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, ritual_id, date) DO NOTHING
	`
	_, err := r.db.Exec(ctx, query, userID, ritualID, date)
	if err != nil {
		return fmt.Errorf("ошибка записи отметки: %w", err)
	}
	return nil
}

// RemoveCompletion удаляет отметку ритуала за день (снятие галочки).
func (r *Repository) RemoveCompletion(ctx context.Context, userID string, ritualID int64, date string) error {
	query := `DELETE FROM ritual_complete_logs WHERE user_id = $1 AND ritual_id = $2 AND date = $3`
	_, err := r.db.Exec(ctx, query, userID, ritualID, date)
	if err != nil {
		return fmt.Errorf("ошибка снятия отметки: %w", err)
	}
	return nil
}

// CompletedIDsForDate возвращает ритуалы, отмеченные за день.
// Именно это состояние видит доска: галочки отражают текущие отметки,
// а не накопленную запись дня.
func (r *Repository) CompletedIDsForDate(ctx context.Context, userID, date string) ([]int64, error) {
	query := `SELECT ritual_id FROM ritual_complete_logs WHERE user_id = $1 AND date = $2`
	rows, err := r.db.Query(ctx, query, userID, date)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения отметок за день: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("ошибка сканирования: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
