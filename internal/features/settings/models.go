// Package settings хранит пользовательские настройки доски и баланс монет.
package settings

import "time"

// Settings — настройки одного пользователя.
// SelectedColor и InboxSelectedColor — цвета по умолчанию для новых стикеров
// на доске и во входящих соответственно.
type Settings struct {
	UserID             string    `db:"user_id" json:"-"`
	SelectedColor      string    `db:"selected_color" json:"selectedColor"`
	InboxSelectedColor string    `db:"inbox_selected_color" json:"inboxSelectedColor"`
	Coins              int       `db:"coins" json:"coins"`
	TelegramChatID     *int64    `db:"telegram_chat_id" json:"telegramChatId,omitempty"`
	CreatedAt          time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt          time.Time `db:"updated_at" json:"updatedAt"`
}

// SettingsUpdate — частичное обновление настроек. nil-поле не меняется.
type SettingsUpdate struct {
	SelectedColor      *string `json:"selectedColor"`
	InboxSelectedColor *string `json:"inboxSelectedColor"`
	TelegramChatID     *int64  `json:"telegramChatId"`
}
