package settings

import (
	"context"

	log "github.com/sirupsen/logrus"

	"stickyboard.ru/board-api/internal/common"
	"stickyboard.ru/board-api/internal/config"
)

// CompletedCounter сообщает, сколько дел пользователь завершил за всё время.
// Реализуется сервисом стикеров.
type CompletedCounter interface {
	CompletedCount(ctx context.Context, userID string) (int, error)
}

// Service — бизнес-логика настроек и монет.
type Service struct {
	repo  *Repository
	todos CompletedCounter
	cfg   *config.Config
}

// NewService создаёт сервис настроек.
func NewService(repo *Repository, todos CompletedCounter, cfg *config.Config) *Service {
	return &Service{repo: repo, todos: todos, cfg: cfg}
}

// Get возвращает настройки пользователя, создавая их при первом обращении.
func (s *Service) Get(ctx context.Context, userID string) (*Settings, error) {
	return s.repo.GetOrCreate(ctx, userID)
}

// Update применяет частичное обновление настроек.
func (s *Service) Update(ctx context.Context, userID string, upd SettingsUpdate) (*Settings, error) {
	if _, err := s.repo.GetOrCreate(ctx, userID); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, userID, upd)
}

// AddCoins начисляет награду. Количество должно быть положительным,
// а пользователь — успеть завершить хотя бы CoinRewardCount дел:
// раньше порога монеты не выдаются.
func (s *Service) AddCoins(ctx context.Context, userID string, amount int) (*Settings, error) {
	if amount <= 0 {
		return nil, common.ErrInvalidAmount
	}
	current, err := s.repo.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}
	completed, err := s.todos.CompletedCount(ctx, userID)
	if err != nil {
		return nil, err
	}
	if completed < s.cfg.CoinRewardCount {
		return nil, common.ErrRewardNotReached
	}
	coins, err := s.repo.AddCoins(ctx, userID, amount)
	if err != nil {
		return nil, err
	}
	current.Coins = coins
	log.WithFields(log.Fields{
		"user_id":   userID,
		"completed": completed,
		"granted":   amount,
		"coins":     coins,
	}).Info("монеты начислены за завершённые дела")
	return current, nil
}
