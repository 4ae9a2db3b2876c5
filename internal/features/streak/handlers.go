// Package streak — handlers.go обрабатывает запрос серий.
// GET /api/streak?userId=... → {"currentStreak": N, "bestStreak": M}
package streak

import (
	"net/http"

	"stickyboard.ru/board-api/internal/server/respond"
)

// Handler обрабатывает запросы стрик-системы.
type Handler struct {
	service *Service
}

// NewHandler создаёт новый обработчик серий.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// HandleGetStreak отдаёт текущую и лучшую серии пользователя.
// Без userId — 400; ошибка выборки или подсчёта — обезличенная 500.
func (h *Handler) HandleGetStreak(w http.ResponseWriter, r *http.Request) {
	userID, err := respond.UserID(r)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.service.GetStreak(r.Context(), userID)
	if err != nil {
		respond.Internal(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, result)
}
