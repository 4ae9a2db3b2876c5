// Package rituals — handlers.go обрабатывает HTTP-запросы ритуалов.
package rituals

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"stickyboard.ru/board-api/internal/common"
	"stickyboard.ru/board-api/internal/server/respond"
)

// Handler обрабатывает запросы ритуалов.
type Handler struct {
	service *Service
}

// NewHandler создаёт новый обработчик ритуалов.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type listResponse struct {
	Rituals           []*Ritual `json:"rituals"`
	TodayCompletedIDs []int64   `json:"todayCompletedIds"`
}

// HandleList — GET /api/rituals: активные ритуалы и сегодняшние галочки.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	userID, err := respond.UserID(r)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	rituals, completed, err := h.service.List(r.Context(), userID)
	if err != nil {
		respond.Internal(w, err)
		return
	}
	if rituals == nil {
		rituals = []*Ritual{}
	}
	if completed == nil {
		completed = []int64{}
	}
	respond.JSON(w, http.StatusOK, listResponse{Rituals: rituals, TodayCompletedIDs: completed})
}

type createRequest struct {
	Name string `json:"name"`
}

// HandleCreate — POST /api/rituals.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	userID, err := respond.UserID(r)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "некорректное тело запроса")
		return
	}

	rt, err := h.service.Create(r.Context(), userID, req.Name)
	if err != nil {
		if errors.Is(err, common.ErrEmptyRitualName) {
			respond.Error(w, http.StatusBadRequest, err.Error())
			return
		}
		respond.Internal(w, err)
		return
	}
	respond.JSON(w, http.StatusCreated, rt)
}

// HandleUpdate — PATCH /api/rituals/{id}: имя, порядок, активность.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	userID, err := respond.UserID(r)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	ritualID, err := pathID(r)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "некорректный идентификатор ритуала")
		return
	}

	var upd RitualUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		respond.Error(w, http.StatusBadRequest, "некорректное тело запроса")
		return
	}

	rt, err := h.service.Update(r.Context(), userID, ritualID, &upd)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrEmptyRitualName):
			respond.Error(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, common.ErrRitualNotFound):
			respond.Error(w, http.StatusNotFound, err.Error())
		default:
			respond.Internal(w, err)
		}
		return
	}
	respond.JSON(w, http.StatusOK, rt)
}

// HandleDelete — DELETE /api/rituals/{id}: мягкая деактивация.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	userID, err := respond.UserID(r)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	ritualID, err := pathID(r)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "некорректный идентификатор ритуала")
		return
	}

	if err := h.service.Deactivate(r.Context(), userID, ritualID); err != nil {
		if errors.Is(err, common.ErrRitualNotFound) {
			respond.Error(w, http.StatusNotFound, err.Error())
			return
		}
		respond.Internal(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleToggle — POST /api/rituals/{id}/toggle: переключение галочки.
// В ответе решение гейта: ровно один ответ за день приходит с
// isFirstTimeToday = true — по нему интерфейс показывает награду.
func (h *Handler) HandleToggle(w http.ResponseWriter, r *http.Request) {
	userID, err := respond.UserID(r)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	ritualID, err := pathID(r)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "некорректный идентификатор ритуала")
		return
	}

	result, err := h.service.Toggle(r.Context(), userID, ritualID)
	if err != nil {
		if errors.Is(err, common.ErrRitualNotFound) {
			respond.Error(w, http.StatusNotFound, err.Error())
			return
		}
		respond.Internal(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, result)
}

// pathID достаёт числовой идентификатор из пути запроса.
func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.PathValue("id"), 10, 64)
}
