// Package respond содержит общие утилиты HTTP-ответов.
// Все обработчики отвечают JSON; тело ошибки всегда вида {"error": "..."},
// причём для 500 текст всегда обезличенный — внутренности ошибок
// клиенту не утекают.
package respond

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"stickyboard.ru/board-api/internal/common"
)

// InternalErrorMessage — обезличенный текст для любых 500.
const InternalErrorMessage = "внутренняя ошибка сервера"

type errorBody struct {
	Error string `json:"error"`
}

// JSON пишет ответ со статусом status и телом v.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.WithError(err).Error("Ошибка сериализации ответа")
	}
}

// Error пишет ошибку со статусом status и сообщением msg.
func Error(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, errorBody{Error: msg})
}

// Internal пишет обезличенную 500 и логирует настоящую причину.
func Internal(w http.ResponseWriter, err error) {
	log.WithError(err).Error("Внутренняя ошибка при обработке запроса")
	Error(w, http.StatusInternalServerError, InternalErrorMessage)
}

// UserID достаёт и проверяет идентификатор пользователя из query-параметра
// userId. Идентификаторы выдаёт внешний провайдер аутентификации,
// формат — UUID.
func UserID(r *http.Request) (string, error) {
	raw := r.URL.Query().Get("userId")
	if raw == "" {
		return "", common.ErrUserIDRequired
	}
	if _, err := uuid.Parse(raw); err != nil {
		return "", common.ErrInvalidUserID
	}
	return raw, nil
}
