// Package rituals — service.go содержит бизнес-логику ритуалов,
// главное — переключение галочки с одноразовой наградой за полный день.
package rituals

import (
	"context"
	"strings"

	log "github.com/sirupsen/logrus"

	"stickyboard.ru/board-api/internal/common"
	"stickyboard.ru/board-api/internal/config"
	"stickyboard.ru/board-api/internal/features/streak"
)

// GemGranter выдаёт кристалл за собранный день.
// Интерфейс разрывает цикл пакетов с gems.
type GemGranter interface {
	GrantForDate(ctx context.Context, userID, date string) error
}

// Service управляет ритуалами.
type Service struct {
	repo       *Repository        // Репозиторий ритуалов и отметок
	streakRepo *streak.Repository // Накопленные записи дней
	gems       GemGranter         // Выдача кристаллов
	cfg        *config.Config     // Конфигурация
}

// NewService создаёт новый сервис ритуалов.
func NewService(repo *Repository, streakRepo *streak.Repository, gems GemGranter, cfg *config.Config) *Service {
	return &Service{repo: repo, streakRepo: streakRepo, gems: gems, cfg: cfg}
}

// List возвращает активные ритуалы вместе с сегодняшними отметками.
func (s *Service) List(ctx context.Context, userID string) ([]*Ritual, []int64, error) {
	rituals, err := s.repo.FetchActive(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	today := common.Today(s.cfg.Location())
	completed, err := s.repo.CompletedIDsForDate(ctx, userID, today)
	if err != nil {
		return nil, nil, err
	}
	return rituals, completed, nil
}

// Create создаёт новый ритуал.
func (s *Service) Create(ctx context.Context, userID, name string) (*Ritual, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, common.ErrEmptyRitualName
	}
	return s.repo.Insert(ctx, userID, name)
}

// Update частично обновляет ритуал.
func (s *Service) Update(ctx context.Context, userID string, ritualID int64, upd *RitualUpdate) (*Ritual, error) {
	if upd.Name != nil {
		trimmed := strings.TrimSpace(*upd.Name)
		if trimmed == "" {
			return nil, common.ErrEmptyRitualName
		}
		upd.Name = &trimmed
	}
	rt, err := s.repo.Update(ctx, userID, ritualID, upd)
	if err != nil {
		return nil, err
	}
	if rt == nil {
		return nil, common.ErrRitualNotFound
	}
	return rt, nil
}

// Deactivate мягко удаляет ритуал.
func (s *Service) Deactivate(ctx context.Context, userID string, ritualID int64) error {
	ok, err := s.repo.Deactivate(ctx, userID, ritualID)
	if err != nil {
		return err
	}
	if !ok {
		return common.ErrRitualNotFound
	}
	return nil
}

// Toggle переключает сегодняшнюю галочку ритуала.
//
// Алгоритм отметки:
//  1. Проверяем, что ритуал существует и активен
//  2. Если галочка стоит — снимаем её (запись дня при этом НЕ урезается:
//     она помнит, что набор уже собирали, и защищает награду от дублей)
//  3. Если не стоит — пишем отметку в журнал
//  4. Прогоняем гейт по записи дня ДО дописывания
//  5. Дописываем ритуал в запись дня
//  6. Если набор собран впервые за день — кристалл в банку и полный
//     набор в запись дня
func (s *Service) Toggle(ctx context.Context, userID string, ritualID int64) (*ToggleResult, error) {
	// Шаг 1: ритуал должен быть активен
	rt, err := s.repo.GetActive(ctx, userID, ritualID)
	if err != nil {
		return nil, err
	}
	if rt == nil {
		return nil, common.ErrRitualNotFound
	}

	today := common.Today(s.cfg.Location())

	completedToday, err := s.repo.CompletedIDsForDate(ctx, userID, today)
	if err != nil {
		return nil, err
	}

	// Шаг 2: снятие галочки
	if containsID(completedToday, ritualID) {
		if err := s.repo.RemoveCompletion(ctx, userID, ritualID, today); err != nil {
			return nil, err
		}
		return &ToggleResult{Completed: false}, nil
	}

	// Шаг 3: отметка
	if err := s.repo.LogCompletion(ctx, userID, ritualID, today); err != nil {
		return nil, err
	}

	activeIDs, err := s.repo.ActiveIDs(ctx, userID)
	if err != nil {
		return nil, err
	}

	// Шаг 4: решение о награде по состоянию дня ДО этой отметки
	prior, err := s.streakRepo.FetchByDate(ctx, userID, today)
	if err != nil {
		return nil, err
	}
	gate := streak.CheckAllCompleted(prior, ritualID, activeIDs)

	// Шаг 5: пополняем запись дня
	if err := s.streakRepo.AppendRitual(ctx, userID, today, ritualID); err != nil {
		return nil, err
	}

	// Шаг 6: одноразовая награда за впервые собранный день
	if gate.AllCompletedNow && gate.IsFirstTimeToday {
		if err := s.gems.GrantForDate(ctx, userID, today); err != nil {
			log.WithError(err).WithField("user_id", userID).Error("Ошибка выдачи кристалла")
			return nil, err
		}
		if err := s.streakRepo.SetCompleted(ctx, userID, today, activeIDs); err != nil {
			return nil, err
		}

		log.WithFields(log.Fields{
			"user_id": userID,
			"date":    today,
			"rituals": len(activeIDs),
		}).Info("День собран целиком — кристалл в банку")
	}

	return &ToggleResult{Completed: true, Gate: gate}, nil
}

func containsID(ids []int64, id int64) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
