// Package app инициализирует все компоненты приложения.
// app.go — точка сборки: создаёт БД-пул, репозитории, сервисы, обработчики,
// HTTP-сервер и планировщик фоновых задач.
package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"

	"stickyboard.ru/board-api/internal/config"
	"stickyboard.ru/board-api/internal/db/postgres"
	"stickyboard.ru/board-api/internal/features/admin"
	"stickyboard.ru/board-api/internal/features/gems"
	"stickyboard.ru/board-api/internal/features/rituals"
	"stickyboard.ru/board-api/internal/features/settings"
	"stickyboard.ru/board-api/internal/features/streak"
	"stickyboard.ru/board-api/internal/features/todos"
	"stickyboard.ru/board-api/internal/jobs"
	"stickyboard.ru/board-api/internal/notify"
	"stickyboard.ru/board-api/internal/server"
	"stickyboard.ru/board-api/internal/server/middleware"
)

// App содержит все компоненты приложения.
type App struct {
	Server    *http.Server
	Scheduler *jobs.Scheduler
	DB        *pgxpool.Pool
	Limiter   *middleware.RateLimiter
}

// New создаёт и инициализирует приложение.
// Порядок инициализации важен — компоненты зависят друг от друга.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	// === 1. База данных ===
	pool, err := postgres.NewPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("ошибка подключения к БД: %w", err)
	}

	// Запускаем миграции
	if err := runMigrations(ctx, pool); err != nil {
		return nil, fmt.Errorf("ошибка миграций: %w", err)
	}

	// === 2. Telegram (опционально, для напоминаний) ===
	notifier, err := notify.New(cfg.TelegramBotToken)
	if err != nil {
		return nil, fmt.Errorf("ошибка инициализации уведомлений: %w", err)
	}

	// === 3. Репозитории ===
	todoRepo := todos.NewRepository(pool)
	ritualRepo := rituals.NewRepository(pool)
	streakRepo := streak.NewRepository(pool)
	gemRepo := gems.NewRepository(pool)
	settingsRepo := settings.NewRepository(pool)
	adminRepo := admin.NewRepository(pool)

	// === 4. Сервисы ===
	todoService := todos.NewService(todoRepo, cfg)
	gemService := gems.NewService(gemRepo, streakRepo)
	streakService := streak.NewService(streakRepo, ritualRepo, cfg)
	ritualService := rituals.NewService(ritualRepo, streakRepo, gemService, cfg)
	settingsService := settings.NewService(settingsRepo, todoService, cfg)
	adminService := admin.NewService(adminRepo, todoRepo, settingsRepo, cfg)

	// === 5. Обработчики ===
	handlers := server.Handlers{
		Streak:   streak.NewHandler(streakService),
		Rituals:  rituals.NewHandler(ritualService),
		Gems:     gems.NewHandler(gemService),
		Todos:    todos.NewHandler(todoService),
		Settings: settings.NewHandler(settingsService),
		Admin:    admin.NewHandler(adminService),
		AdminSvc: adminService,
	}

	// === 6. HTTP-сервер ===
	srv, limiter := server.New(cfg, handlers)

	// === 7. Планировщик задач ===
	scheduler := jobs.NewScheduler(cfg, streakService, settingsRepo, adminService, notifier)

	return &App{
		Server:    srv,
		Scheduler: scheduler,
		DB:        pool,
		Limiter:   limiter,
	}, nil
}

// runMigrations выполняет все SQL-миграции.
func runMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	// Инициализируем систему миграций
	if err := postgres.EnsureMigrationsTable(ctx, pool); err != nil {
		return err
	}

	// Выполняем миграции по порядку
	migrations := []struct {
		version int
		sql     string
	}{
		{1, migration001Todos},
		{2, migration002Rituals},
		{3, migration003Completions},
		{4, migration004Gems},
		{5, migration005Settings},
	}

	for _, m := range migrations {
		if err := postgres.ExecMigrationSQL(ctx, pool, m.version, m.sql); err != nil {
			return fmt.Errorf("миграция %d: %w", m.version, err)
		}
		log.Infof("Миграция %d применена", m.version)
	}

	return nil
}

// SQL-миграции встроены в код для упрощения деплоя.

var migration001Todos = `
CREATE TABLE IF NOT EXISTS todos (
    id BIGSERIAL PRIMARY KEY,
    user_id UUID NOT NULL,
    text VARCHAR(500) NOT NULL,
    color VARCHAR(16) NOT NULL DEFAULT 'yellow',
    type VARCHAR(16) NOT NULL DEFAULT 'normal',
    status VARCHAR(16) NOT NULL DEFAULT 'inbox',
    is_pinned BOOLEAN NOT NULL DEFAULT FALSE,
    pinned_at TIMESTAMP,
    created_at TIMESTAMP NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMP NOT NULL DEFAULT NOW(),
    completed_at TIMESTAMP,
    archived_at TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_todos_user_status ON todos(user_id, status);
CREATE INDEX IF NOT EXISTS idx_todos_user_created ON todos(user_id, created_at DESC);
`

var migration002Rituals = `
CREATE TABLE IF NOT EXISTS rituals (
    id BIGSERIAL PRIMARY KEY,
    user_id UUID NOT NULL,
    name VARCHAR(255) NOT NULL,
    order_index INTEGER NOT NULL DEFAULT 0,
    is_active BOOLEAN NOT NULL DEFAULT TRUE,
    created_at TIMESTAMP NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMP NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_rituals_user_active ON rituals(user_id, is_active);

CREATE TABLE IF NOT EXISTS ritual_complete_logs (
    id BIGSERIAL PRIMARY KEY,
    user_id UUID NOT NULL,
    ritual_id BIGINT NOT NULL REFERENCES rituals(id),
    date DATE NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT NOW(),
    UNIQUE (user_id, ritual_id, date)
);
CREATE INDEX IF NOT EXISTS idx_ritual_logs_user_date ON ritual_complete_logs(user_id, date);
`

var migration003Completions = `
CREATE TABLE IF NOT EXISTS ritual_completions (
    id BIGSERIAL PRIMARY KEY,
    user_id UUID NOT NULL,
    date VARCHAR(10) NOT NULL,
    completed_ritual_ids BIGINT[] NOT NULL DEFAULT '{}',
    created_at TIMESTAMP NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMP NOT NULL DEFAULT NOW(),
    is_archived BOOLEAN NOT NULL DEFAULT FALSE,
    archived_at TIMESTAMP,
    UNIQUE (user_id, date)
);
CREATE INDEX IF NOT EXISTS idx_completions_user_date ON ritual_completions(user_id, date DESC);
`

var migration004Gems = `
CREATE TABLE IF NOT EXISTS ritual_gems (
    id BIGSERIAL PRIMARY KEY,
    user_id UUID NOT NULL,
    date VARCHAR(10) NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT NOW(),
    is_archived BOOLEAN NOT NULL DEFAULT FALSE,
    archived_at TIMESTAMP,
    UNIQUE (user_id, date)
);
CREATE INDEX IF NOT EXISTS idx_gems_user ON ritual_gems(user_id, is_archived);
`

var migration005Settings = `
CREATE TABLE IF NOT EXISTS user_settings (
    user_id UUID PRIMARY KEY,
    selected_color VARCHAR(16) NOT NULL DEFAULT 'yellow',
    inbox_selected_color VARCHAR(16) NOT NULL DEFAULT 'yellow',
    coins INTEGER NOT NULL DEFAULT 0,
    telegram_chat_id BIGINT,
    created_at TIMESTAMP NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMP NOT NULL DEFAULT NOW()
);
`
