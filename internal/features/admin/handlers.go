package admin

import (
	"net/http"

	"stickyboard.ru/board-api/internal/server/respond"
)

// Handler — HTTP-обработчики админки. Проверку пароля выполняет
// middleware, сюда запрос попадает уже аутентифицированным.
type Handler struct {
	service *Service
}

// NewHandler создаёт обработчик админки.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// HandleStats — GET /api/admin/stats.
func (h *Handler) HandleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.CollectStats(r.Context())
	if err != nil {
		respond.Internal(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, stats)
}
