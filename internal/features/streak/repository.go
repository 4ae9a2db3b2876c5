// Package streak — repository.go выполняет операции с таблицей ritual_completions.
package streak

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository предоставляет методы для работы с таблицей ritual_completions.
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository создаёт новый репозиторий записей о выполнении.
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// FetchByUser возвращает неархивные записи пользователя,
// отсортированные по дате по убыванию.
func (r *Repository) FetchByUser(ctx context.Context, userID string) ([]*Completion, error) {
	query := `
		SELECT id, user_id, date, completed_ritual_ids,
		       created_at, updated_at, is_archived, archived_at
		FROM ritual_completions
		WHERE user_id = $1 AND is_archived = FALSE
		ORDER BY date DESC
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения записей выполнения: %w", err)
	}
	defer rows.Close()

	var completions []*Completion
	for rows.Next() {
		var c Completion
		err := rows.Scan(
			&c.ID, &c.UserID, &c.Date, &c.CompletedRitualIDs,
			&c.CreatedAt, &c.UpdatedAt, &c.IsArchived, &c.ArchivedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("ошибка сканирования: %w", err)
		}
		completions = append(completions, &c)
	}
	return completions, nil
}

// FetchByDate возвращает неархивную запись за конкретный день
// или nil, если за этот день ещё ничего не отмечали.
func (r *Repository) FetchByDate(ctx context.Context, userID, date string) (*Completion, error) {
	query := `
		SELECT id, user_id, date, completed_ritual_ids,
		       created_at, updated_at, is_archived, archived_at
		FROM ritual_completions
		WHERE user_id = $1 AND date = $2 AND is_archived = FALSE
	`
	var c Completion
	err := r.db.QueryRow(ctx, query, userID, date).Scan(
		&c.ID, &c.UserID, &c.Date, &c.CompletedRitualIDs,
		&c.CreatedAt, &c.UpdatedAt, &c.IsArchived, &c.ArchivedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("ошибка получения записи за %s: %w", date, err)
	}
	return &c, nil
}

// AppendRitual дописывает ритуал в запись дня.
// Если записи за день нет — создаёт её. Повторное добавление того же
// ритуала ничего не меняет (массив без дубликатов).
func (r *Repository) AppendRitual(ctx context.Context, userID, date string, ritualID int64) error {
	query := `
		INSERT INTO ritual_completions (user_id, date, completed_ritual_ids)
		VALUES ($1, $2, ARRAY[$3]::BIGINT[])
		ON CONFLICT (user_id, date) DO UPDATE
		SET completed_ritual_ids = CASE
			WHEN $3 = ANY(ritual_completions.completed_ritual_ids)
				THEN ritual_completions.completed_ritual_ids
			ELSE array_append(ritual_completions.completed_ritual_ids, $3)
		END,
		    updated_at = NOW()
	`
	_, err := r.db.Exec(ctx, query, userID, date, ritualID)
	if err != nil {
		return fmt.Errorf("ошибка записи выполнения ритуала: %w", err)
	}
	return nil
}

// SetCompleted записывает в день полный набор ритуалов.
// Вызывается, когда день впервые собран целиком.
func (r *Repository) SetCompleted(ctx context.Context, userID, date string, ritualIDs []int64) error {
	query := `
		INSERT INTO ritual_completions (user_id, date, completed_ritual_ids)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, date) DO UPDATE
		SET completed_ritual_ids = EXCLUDED.completed_ritual_ids,
		    updated_at = NOW()
	`
	_, err := r.db.Exec(ctx, query, userID, date, ritualIDs)
	if err != nil {
		return fmt.Errorf("ошибка сохранения полного дня: %w", err)
	}
	return nil
}

// ArchiveAll помечает все неархивные записи пользователя архивными.
// Вызывается при «опустошении банки»: архивные дни выпадают из серий
// и из решения о награде.
func (r *Repository) ArchiveAll(ctx context.Context, userID string) error {
	query := `
		UPDATE ritual_completions
		SET is_archived = TRUE, archived_at = NOW(), updated_at = NOW()
		WHERE user_id = $1 AND is_archived = FALSE
	`
	_, err := r.db.Exec(ctx, query, userID)
	if err != nil {
		return fmt.Errorf("ошибка архивации записей выполнения: %w", err)
	}
	return nil
}
