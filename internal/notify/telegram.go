// Package notify отправляет пользователям Telegram-уведомления.
// При пустом токене уведомления тихо отключаются, сервер работает без них.
package notify

import (
	"context"
	"fmt"

	"github.com/mymmrac/telego"
	tu "github.com/mymmrac/telego/telegoutil"
	log "github.com/sirupsen/logrus"
)

// Notifier шлёт сообщения в Telegram-чаты пользователей.
type Notifier struct {
	bot *telego.Bot
}

// New создаёт нотификатор. Пустой токен — валидный режим «без уведомлений».
func New(token string) (*Notifier, error) {
	if token == "" {
		log.Info("Telegram-токен не задан, уведомления отключены")
		return &Notifier{}, nil
	}

	bot, err := telego.NewBot(token, telego.WithDiscardLogger())
	if err != nil {
		return nil, fmt.Errorf("инициализация Telegram-бота: %w", err)
	}
	return &Notifier{bot: bot}, nil
}

// Enabled сообщает, настроена ли отправка.
func (n *Notifier) Enabled() bool {
	return n.bot != nil
}

// Send отправляет текст в чат. В отключённом режиме — no-op.
func (n *Notifier) Send(ctx context.Context, chatID int64, text string) error {
	if n.bot == nil {
		return nil
	}
	_, err := n.bot.SendMessage(ctx, tu.Message(tu.ID(chatID), text))
	if err != nil {
		return fmt.Errorf("отправка сообщения в чат %d: %w", chatID, err)
	}
	return nil
}
