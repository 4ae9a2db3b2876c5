// Package gems — service.go содержит логику банки кристаллов.
package gems

import (
	"context"

	log "github.com/sirupsen/logrus"
)

// CompletionArchiver архивирует записи выполнения пользователя.
// Подходит репозиторий стриков; интерфейс разрывает цикл пакетов.
type CompletionArchiver interface {
	ArchiveAll(ctx context.Context, userID string) error
}

// Service управляет банкой кристаллов.
type Service struct {
	repo        *Repository        // Репозиторий кристаллов
	completions CompletionArchiver // Архивация записей выполнения
}

// NewService создаёт новый сервис кристаллов.
func NewService(repo *Repository, completions CompletionArchiver) *Service {
	return &Service{repo: repo, completions: completions}
}

// List возвращает содержимое банки.
func (s *Service) List(ctx context.Context, userID string) ([]*Gem, error) {
	return s.repo.FetchByUser(ctx, userID)
}

// GrantForDate выдаёт кристалл за день. Идемпотентна:
// повторный вызов за тот же день второй кристалл не создаёт.
// Реализует rituals.GemGranter.
func (s *Service) GrantForDate(ctx context.Context, userID, date string) error {
	return s.repo.Insert(ctx, userID, date)
}

// EmptyJar опустошает банку: архивирует кристаллы И записи выполнения.
// После этого прошлые дни выпадают из серий, а сегодняшний день
// можно собрать заново.
func (s *Service) EmptyJar(ctx context.Context, userID string) error {
	count, err := s.repo.CountActive(ctx, userID)
	if err != nil {
		return err
	}

	if err := s.repo.ArchiveAll(ctx, userID); err != nil {
		return err
	}
	if err := s.completions.ArchiveAll(ctx, userID); err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"user_id": userID,
		"gems":    count,
	}).Info("Банка опустошена")

	return nil
}
