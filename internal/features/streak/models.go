// Package streak управляет подсчётом серий (стриков) выполнения ритуалов.
// models.go описывает запись о выполнении за день и результат подсчёта.
package streak

import "time"

// Completion представляет запись о выполнении ритуалов за один календарный день.
// Создаётся при первой отметке любого ритуала за день; по мере отметки
// остальных ритуалов в неё дописываются их идентификаторы.
// Записи не удаляются — при «опустошении банки» они массово архивируются
// и перестают участвовать в подсчётах.
type Completion struct {
	ID                 int64      `db:"id"`
	UserID             string     `db:"user_id"`
	Date               string     `db:"date"`                 // Календарная дата "YYYY-MM-DD"
	CompletedRitualIDs []int64    `db:"completed_ritual_ids"` // Ритуалы, отмеченные в этот день
	CreatedAt          time.Time  `db:"created_at"`
	UpdatedAt          time.Time  `db:"updated_at"`
	IsArchived         bool       `db:"is_archived"`
	ArchivedAt         *time.Time `db:"archived_at"`
}

// Result — результат подсчёта серий.
// Инвариант: BestStreak >= CurrentStreak (текущая серия — одна из всех серий).
type Result struct {
	CurrentStreak int `json:"currentStreak"` // Серия, заканчивающаяся сегодня
	BestStreak    int `json:"bestStreak"`    // Лучшая серия за всю историю
}
