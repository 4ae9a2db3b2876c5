// Package streak — service.go связывает калькулятор с хранилищем.
// Сервис достаёт записи и активные ритуалы, подставляет «сегодня»
// из часового пояса приложения и вызывает чистые функции подсчёта.
package streak

import (
	"context"

	"stickyboard.ru/board-api/internal/common"
	"stickyboard.ru/board-api/internal/config"
)

// ActiveRitualSource отдаёт идентификаторы активных ритуалов пользователя.
// Подходит репозиторий ритуалов; интерфейс разрывает цикл пакетов.
type ActiveRitualSource interface {
	ActiveIDs(ctx context.Context, userID string) ([]int64, error)
}

// Service управляет подсчётом серий.
type Service struct {
	repo    *Repository        // Репозиторий записей выполнения
	rituals ActiveRitualSource // Источник активных ритуалов
	cfg     *config.Config     // Конфигурация
}

// NewService создаёт новый сервис серий.
func NewService(repo *Repository, rituals ActiveRitualSource, cfg *config.Config) *Service {
	return &Service{repo: repo, rituals: rituals, cfg: cfg}
}

// GetStreak считает текущую и лучшую серии пользователя.
// Серии не хранятся в БД — они каждый раз пересчитываются из записей,
// поэтому деактивация ритуала сразу меняет и прошлые дни
// (засчитывание судится по НЫНЕШНЕМУ активному набору).
func (s *Service) GetStreak(ctx context.Context, userID string) (*Result, error) {
	completions, err := s.repo.FetchByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	activeIDs, err := s.rituals.ActiveIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	if activeIDs == nil {
		// Нет активных ритуалов — засчитать нечего
		activeIDs = []int64{}
	}

	today := common.Today(s.cfg.Location())
	return &Result{
		CurrentStreak: CurrentStreak(completions, activeIDs, today, s.cfg.StreakMaxLookbackDays),
		BestStreak:    BestStreak(completions, activeIDs),
	}, nil
}

// StreakThroughYesterday считает серию, заканчивающуюся вчера.
// Нужна напоминаниям: у того, кто сегодня ещё не собрал набор,
// CurrentStreak уже 0, но серия по вчерашний день жива — и именно
// её длина говорит, что человеку есть что терять.
func (s *Service) StreakThroughYesterday(ctx context.Context, userID string) (int, error) {
	completions, err := s.repo.FetchByUser(ctx, userID)
	if err != nil {
		return 0, err
	}

	activeIDs, err := s.rituals.ActiveIDs(ctx, userID)
	if err != nil {
		return 0, err
	}
	if activeIDs == nil {
		activeIDs = []int64{}
	}

	yesterday := common.PrevDay(common.Today(s.cfg.Location()))
	return CurrentStreak(completions, activeIDs, yesterday, s.cfg.StreakMaxLookbackDays), nil
}

// CompletedAllToday сообщает, собран ли сегодня полный набор ритуалов.
// Используется напоминаниями: тем, у кого день уже собран, не пишем.
func (s *Service) CompletedAllToday(ctx context.Context, userID string) (bool, error) {
	activeIDs, err := s.rituals.ActiveIDs(ctx, userID)
	if err != nil {
		return false, err
	}
	if len(activeIDs) == 0 {
		return false, nil
	}

	today := common.Today(s.cfg.Location())
	c, err := s.repo.FetchByDate(ctx, userID, today)
	if err != nil {
		return false, err
	}
	if c == nil {
		return false, nil
	}
	return containsAll(c.CompletedRitualIDs, activeIDs), nil
}
