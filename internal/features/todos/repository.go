package todos

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"stickyboard.ru/board-api/internal/common"
)

// Repository — доступ к таблице todos.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository создаёт репозиторий стикеров.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// FetchByUser возвращает стикеры пользователя. При пустом status
// отдаются все, кроме архива; иначе — только заданный статус.
// Закреплённые идут первыми (свежие закрепления выше), дальше по дате создания.
func (r *Repository) FetchByUser(ctx context.Context, userID, status string) ([]*Todo, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, text, color, type, status, is_pinned, pinned_at,
		       created_at, updated_at, completed_at, archived_at
		FROM todos
		WHERE user_id = $1
		  AND (($2 = '' AND status <> 'archived') OR status = $2)
		ORDER BY is_pinned DESC, pinned_at DESC NULLS LAST, created_at DESC
	`, userID, status)
	if err != nil {
		return nil, fmt.Errorf("запрос стикеров: %w", err)
	}
	defer rows.Close()

	var list []*Todo
	for rows.Next() {
		t := &Todo{}
		if err := rows.Scan(&t.ID, &t.UserID, &t.Text, &t.Color, &t.Type, &t.Status,
			&t.IsPinned, &t.PinnedAt, &t.CreatedAt, &t.UpdatedAt, &t.CompletedAt, &t.ArchivedAt); err != nil {
			return nil, fmt.Errorf("скан стикера: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

// Get возвращает стикер по id, nil если не найден.
func (r *Repository) Get(ctx context.Context, userID string, id int64) (*Todo, error) {
	t := &Todo{}
	err := r.pool.QueryRow(ctx, `
		SELECT id, user_id, text, color, type, status, is_pinned, pinned_at,
		       created_at, updated_at, completed_at, archived_at
		FROM todos
		WHERE user_id = $1 AND id = $2
	`, userID, id).Scan(&t.ID, &t.UserID, &t.Text, &t.Color, &t.Type, &t.Status,
		&t.IsPinned, &t.PinnedAt, &t.CreatedAt, &t.UpdatedAt, &t.CompletedAt, &t.ArchivedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("чтение стикера: %w", err)
	}
	return t, nil
}

// Insert создаёт стикер и возвращает его с заполненными полями.
func (r *Repository) Insert(ctx context.Context, userID, text, color, todoType, status string) (*Todo, error) {
	t := &Todo{}
	err := r.pool.QueryRow(ctx, `
		INSERT INTO todos (user_id, text, color, type, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, user_id, text, color, type, status, is_pinned, pinned_at,
		          created_at, updated_at, completed_at, archived_at
	`, userID, text, color, todoType, status).Scan(&t.ID, &t.UserID, &t.Text, &t.Color,
		&t.Type, &t.Status, &t.IsPinned, &t.PinnedAt, &t.CreatedAt, &t.UpdatedAt,
		&t.CompletedAt, &t.ArchivedAt)
	if err != nil {
		return nil, fmt.Errorf("создание стикера: %w", err)
	}
	return t, nil
}

// Update применяет частичное обновление. nil-поля не меняются.
// Метки completed_at/archived_at/pinned_at выставляет SQL при смене статуса.
func (r *Repository) Update(ctx context.Context, userID string, id int64, upd TodoUpdate) (*Todo, error) {
	t := &Todo{}
	err := r.pool.QueryRow(ctx, `
		UPDATE todos SET
			text = COALESCE($3, text),
			color = COALESCE($4, color),
			status = COALESCE($5, status),
			is_pinned = COALESCE($6, is_pinned),
			pinned_at = CASE
				WHEN $6::boolean IS TRUE AND NOT is_pinned THEN NOW()
				WHEN $6::boolean IS FALSE THEN NULL
				ELSE pinned_at
			END,
			completed_at = CASE
				WHEN $5::text = 'completed' AND status <> 'completed' THEN NOW()
				WHEN $5::text IS NOT NULL AND $5::text <> 'completed' THEN NULL
				ELSE completed_at
			END,
			archived_at = CASE
				WHEN $5::text = 'archived' AND status <> 'archived' THEN NOW()
				ELSE archived_at
			END,
			updated_at = NOW()
		WHERE user_id = $1 AND id = $2
		RETURNING id, user_id, text, color, type, status, is_pinned, pinned_at,
		          created_at, updated_at, completed_at, archived_at
	`, userID, id, upd.Text, upd.Color, upd.Status, upd.IsPinned).Scan(&t.ID, &t.UserID,
		&t.Text, &t.Color, &t.Type, &t.Status, &t.IsPinned, &t.PinnedAt,
		&t.CreatedAt, &t.UpdatedAt, &t.CompletedAt, &t.ArchivedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, common.ErrTodoNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("обновление стикера: %w", err)
	}
	return t, nil
}

// Delete удаляет стикер навсегда.
func (r *Repository) Delete(ctx context.Context, userID string, id int64) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM todos WHERE user_id = $1 AND id = $2`, userID, id)
	if err != nil {
		return fmt.Errorf("удаление стикера: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return common.ErrTodoNotFound
	}
	return nil
}

// ArchiveCompleted переводит все завершённые стикеры в архив.
// Возвращает число архивированных.
func (r *Repository) ArchiveCompleted(ctx context.Context, userID string) (int64, error) {
	tag, err := r.pool.Exec(ctx, `
		UPDATE todos
		SET status = 'archived', archived_at = NOW(), updated_at = NOW()
		WHERE user_id = $1 AND status = 'completed'
	`, userID)
	if err != nil {
		return 0, fmt.Errorf("архивация завершённых стикеров: %w", err)
	}
	return tag.RowsAffected(), nil
}

// CountCompleted считает завершённые стикеры пользователя,
// включая уже архивированные.
func (r *Repository) CountCompleted(ctx context.Context, userID string) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `
		SELECT COUNT(*) FROM todos
		WHERE user_id = $1 AND completed_at IS NOT NULL
	`, userID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("подсчёт завершённых стикеров: %w", err)
	}
	return n, nil
}

// CountByStatus — сводка по статусам для админской статистики.
func (r *Repository) CountByStatus(ctx context.Context) (map[string]int, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT status, COUNT(*) FROM todos GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("сводка по статусам: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("скан сводки: %w", err)
		}
		counts[status] = n
	}
	return counts, rows.Err()
}
