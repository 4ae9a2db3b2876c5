package settings

import (
	"encoding/json"
	"errors"
	"net/http"

	"stickyboard.ru/board-api/internal/common"
	"stickyboard.ru/board-api/internal/server/respond"
)

// Handler — HTTP-обработчики настроек.
type Handler struct {
	service *Service
}

// NewHandler создаёт обработчик настроек.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// HandleGet — GET /api/settings.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	userID, err := respond.UserID(r)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	s, err := h.service.Get(r.Context(), userID)
	if err != nil {
		respond.Internal(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, s)
}

// HandleUpdate — PUT /api/settings.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	userID, err := respond.UserID(r)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	var upd SettingsUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		respond.Error(w, http.StatusBadRequest, "некорректное тело запроса")
		return
	}
	s, err := h.service.Update(r.Context(), userID, upd)
	if err != nil {
		respond.Internal(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, s)
}

type coinsRequest struct {
	Amount int `json:"amount"`
}

// HandleAddCoins — POST /api/settings/coins.
func (h *Handler) HandleAddCoins(w http.ResponseWriter, r *http.Request) {
	userID, err := respond.UserID(r)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	var req coinsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "некорректное тело запроса")
		return
	}
	s, err := h.service.AddCoins(r.Context(), userID, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrInvalidAmount), errors.Is(err, common.ErrRewardNotReached):
			respond.Error(w, http.StatusBadRequest, err.Error())
		default:
			respond.Internal(w, err)
		}
		return
	}
	respond.JSON(w, http.StatusOK, s)
}
