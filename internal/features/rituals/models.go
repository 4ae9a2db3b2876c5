// Package rituals управляет ежедневными ритуалами пользователя.
// models.go описывает ритуал и журнал его отметок.
package rituals

import (
	"time"

	"stickyboard.ru/board-api/internal/features/streak"
)

// Ritual представляет один ежедневный ритуал (подзадачу дня).
// Удаление мягкое: is_active = FALSE. Деактивированный ритуал
// перестаёт учитываться и в прошлых днях — засчитывание всегда
// судится по нынешнему активному набору.
type Ritual struct {
	ID         int64     `db:"id" json:"id"`
	UserID     string    `db:"user_id" json:"-"`
	Name       string    `db:"name" json:"name"`
	OrderIndex int       `db:"order_index" json:"orderIndex"`
	IsActive   bool      `db:"is_active" json:"isActive"`
	CreatedAt  time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt  time.Time `db:"updated_at" json:"updatedAt"`
}

// CompleteLog — одна отметка ритуала за конкретный день.
// На пару (ритуал, день) существует не больше одной записи;
// снятие галочки запись удаляет.
type CompleteLog struct {
	ID        int64     `db:"id" json:"id"`
	UserID    string    `db:"user_id" json:"-"`
	RitualID  int64     `db:"ritual_id" json:"ritualId"`
	Date      string    `db:"date" json:"date"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// ToggleResult — итог переключения галочки ритуала.
type ToggleResult struct {
	// Completed — состояние галочки после переключения
	Completed bool `json:"completed"`
	// Gate — решение о полном дне и одноразовой награде
	Gate streak.GateResult `json:"gate"`
}

// RitualUpdate — частичное обновление ритуала.
// nil-поле означает «не трогать».
type RitualUpdate struct {
	Name       *string `json:"name"`
	OrderIndex *int    `json:"orderIndex"`
	IsActive   *bool   `json:"isActive"`
}
