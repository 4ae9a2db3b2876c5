// Package server собирает HTTP-сервер: маршруты, middleware, таймауты.
package server

import (
	"fmt"
	"net/http"
	"time"

	"stickyboard.ru/board-api/internal/config"
	"stickyboard.ru/board-api/internal/features/admin"
	"stickyboard.ru/board-api/internal/features/gems"
	"stickyboard.ru/board-api/internal/features/rituals"
	"stickyboard.ru/board-api/internal/features/settings"
	"stickyboard.ru/board-api/internal/features/streak"
	"stickyboard.ru/board-api/internal/features/todos"
	"stickyboard.ru/board-api/internal/server/middleware"
	"stickyboard.ru/board-api/internal/server/respond"
)

// Handlers — все обработчики, которые сервер выставляет наружу.
type Handlers struct {
	Streak   *streak.Handler
	Rituals  *rituals.Handler
	Gems     *gems.Handler
	Todos    *todos.Handler
	Settings *settings.Handler
	Admin    *admin.Handler
	AdminSvc *admin.Service
}

// New создаёт http.Server со всеми маршрутами и middleware.
// Возвращает также rate-limiter, чтобы его закрыли на shutdown.
func New(cfg *config.Config, h Handlers) (*http.Server, *middleware.RateLimiter) {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/streak", h.Streak.HandleGetStreak)

	mux.HandleFunc("GET /api/rituals", h.Rituals.HandleList)
	mux.HandleFunc("POST /api/rituals", h.Rituals.HandleCreate)
	mux.HandleFunc("PATCH /api/rituals/{id}", h.Rituals.HandleUpdate)
	mux.HandleFunc("DELETE /api/rituals/{id}", h.Rituals.HandleDelete)
	mux.HandleFunc("POST /api/rituals/{id}/toggle", h.Rituals.HandleToggle)

	mux.HandleFunc("GET /api/gems", h.Gems.HandleList)
	mux.HandleFunc("POST /api/gems/archive", h.Gems.HandleArchive)

	mux.HandleFunc("GET /api/todos", h.Todos.HandleList)
	mux.HandleFunc("POST /api/todos", h.Todos.HandleCreate)
	mux.HandleFunc("PATCH /api/todos/{id}", h.Todos.HandleUpdate)
	mux.HandleFunc("DELETE /api/todos/{id}", h.Todos.HandleDelete)
	mux.HandleFunc("POST /api/todos/archive-completed", h.Todos.HandleArchiveCompleted)

	mux.HandleFunc("GET /api/settings", h.Settings.HandleGet)
	mux.HandleFunc("PUT /api/settings", h.Settings.HandleUpdate)
	mux.HandleFunc("POST /api/settings/coins", h.Settings.HandleAddCoins)

	mux.Handle("GET /api/admin/stats",
		middleware.AdminAuth(h.AdminSvc, http.HandlerFunc(h.Admin.HandleStats)))

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		respond.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	limiter := middleware.NewRateLimiter(cfg.RateLimitRequests, cfg.RateLimitWindow)

	var handler http.Handler = mux
	handler = limiter.Middleware(handler)
	handler = middleware.Logger(handler)
	handler = middleware.Recovery(handler)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:      handler,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  60 * time.Second,
	}
	return srv, limiter
}
