// Package todos управляет стикерами доски.
// models.go описывает стикер и допустимые значения его полей.
package todos

import "time"

// Допустимые цвета стикера.
const (
	ColorYellow = "yellow"
	ColorPink   = "pink"
	ColorBlue   = "blue"
	ColorGreen  = "green"
)

// Типы стикера. «Лягушка» — самое неприятное дело дня,
// которое доска выделяет особо.
const (
	TypeNormal = "normal"
	TypeFrog   = "frog"
)

// Статусы стикера. Жизненный цикл:
// inbox → active → completed → archived.
const (
	StatusInbox     = "inbox"
	StatusActive    = "active"
	StatusCompleted = "completed"
	StatusArchived  = "archived"
)

// Todo представляет один стикер на доске.
type Todo struct {
	ID          int64      `db:"id" json:"id"`
	UserID      string     `db:"user_id" json:"-"`
	Text        string     `db:"text" json:"text"`
	Color       string     `db:"color" json:"color"`
	Type        string     `db:"type" json:"type"`
	Status      string     `db:"status" json:"status"`
	IsPinned    bool       `db:"is_pinned" json:"isPinned"`
	PinnedAt    *time.Time `db:"pinned_at" json:"pinnedAt,omitempty"`
	CreatedAt   time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time  `db:"updated_at" json:"updatedAt"`
	CompletedAt *time.Time `db:"completed_at" json:"completedAt,omitempty"`
	ArchivedAt  *time.Time `db:"archived_at" json:"archivedAt,omitempty"`
}

// TodoUpdate — частичное обновление стикера. nil-поле означает «не трогать».
type TodoUpdate struct {
	Text     *string `json:"text"`
	Color    *string `json:"color"`
	Status   *string `json:"status"`
	IsPinned *bool   `json:"isPinned"`
}

// ValidColor проверяет цвет стикера.
func ValidColor(color string) bool {
	switch color {
	case ColorYellow, ColorPink, ColorBlue, ColorGreen:
		return true
	}
	return false
}

// ValidType проверяет тип стикера.
func ValidType(t string) bool {
	return t == TypeNormal || t == TypeFrog
}

// ValidStatus проверяет статус стикера.
func ValidStatus(status string) bool {
	switch status {
	case StatusInbox, StatusActive, StatusCompleted, StatusArchived:
		return true
	}
	return false
}
