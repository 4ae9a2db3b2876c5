// Package gems — handlers.go обрабатывает HTTP-запросы банки кристаллов.
package gems

import (
	"net/http"

	"stickyboard.ru/board-api/internal/server/respond"
)

// Handler обрабатывает запросы кристаллов.
type Handler struct {
	service *Service
}

// NewHandler создаёт новый обработчик кристаллов.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type listResponse struct {
	Gems []*Gem `json:"gems"`
}

// HandleList — GET /api/gems: содержимое банки.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	userID, err := respond.UserID(r)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	gems, err := h.service.List(r.Context(), userID)
	if err != nil {
		respond.Internal(w, err)
		return
	}
	if gems == nil {
		gems = []*Gem{}
	}
	respond.JSON(w, http.StatusOK, listResponse{Gems: gems})
}

// HandleArchive — POST /api/gems/archive: опустошить банку.
// Вместе с кристаллами архивируются и записи выполнения —
// серия после этого начинается с чистого листа.
func (h *Handler) HandleArchive(w http.ResponseWriter, r *http.Request) {
	userID, err := respond.UserID(r)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.service.EmptyJar(r.Context(), userID); err != nil {
		respond.Internal(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
