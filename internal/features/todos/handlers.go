package todos

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"stickyboard.ru/board-api/internal/common"
	"stickyboard.ru/board-api/internal/server/respond"
)

// Handler — HTTP-обработчики доски стикеров.
type Handler struct {
	service *Service
}

// NewHandler создаёт обработчик стикеров.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type listResponse struct {
	Todos []*Todo `json:"todos"`
}

type createRequest struct {
	Text   string `json:"text"`
	Color  string `json:"color"`
	Type   string `json:"type"`
	Status string `json:"status"`
}

type archiveResponse struct {
	Archived int64 `json:"archived"`
}

// HandleList — GET /api/todos.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	userID, err := respond.UserID(r)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	todos, err := h.service.List(r.Context(), userID, r.URL.Query().Get("status"))
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	if todos == nil {
		todos = []*Todo{}
	}
	respond.JSON(w, http.StatusOK, listResponse{Todos: todos})
}

// HandleCreate — POST /api/todos.
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
	todo, err := h.service.Create(r.Context(), userID, req.Text, req.Color, req.Type, req.Status)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	respond.JSON(w, http.StatusCreated, todo)
}

// HandleUpdate — PATCH /api/todos/{id}.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	userID, err := respond.UserID(r)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	id, err := pathID(r)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "некорректный id стикера")
		return
	}
	var upd TodoUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		respond.Error(w, http.StatusBadRequest, "некорректное тело запроса")
		return
	}
	todo, err := h.service.Update(r.Context(), userID, id, upd)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, todo)
}

// HandleDelete — DELETE /api/todos/{id}.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	userID, err := respond.UserID(r)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	id, err := pathID(r)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "некорректный id стикера")
		return
	}
	if err := h.service.Delete(r.Context(), userID, id); err != nil {
		h.writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleArchiveCompleted — POST /api/todos/archive-completed.
func (h *Handler) HandleArchiveCompleted(w http.ResponseWriter, r *http.Request) {
	userID, err := respond.UserID(r)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	n, err := h.service.ArchiveCompleted(r.Context(), userID)
	if err != nil {
		respond.Internal(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, archiveResponse{Archived: n})
}

func (h *Handler) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, common.ErrTodoNotFound):
		respond.Error(w, http.StatusNotFound, err.Error())
	case errors.Is(err, common.ErrEmptyText),
		errors.Is(err, common.ErrTextTooLong),
		errors.Is(err, common.ErrInvalidColor),
		errors.Is(err, common.ErrInvalidType),
		errors.Is(err, common.ErrInvalidStatus):
		respond.Error(w, http.StatusBadRequest, err.Error())
	default:
		respond.Internal(w, err)
	}
}

func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.PathValue("id"), 10, 64)
}
