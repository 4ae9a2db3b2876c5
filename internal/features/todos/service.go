package todos

import (
	"context"
	"strings"
	"unicode/utf8"

	log "github.com/sirupsen/logrus"

	"stickyboard.ru/board-api/internal/common"
	"stickyboard.ru/board-api/internal/config"
)

// Service — бизнес-логика доски стикеров.
type Service struct {
	repo *Repository
	cfg  *config.Config
}

// NewService создаёт сервис стикеров.
func NewService(repo *Repository, cfg *config.Config) *Service {
	return &Service{repo: repo, cfg: cfg}
}

// List возвращает стикеры пользователя. Пустой status — вся доска без
// архива, иначе фильтр по статусу.
func (s *Service) List(ctx context.Context, userID, status string) ([]*Todo, error) {
	if status != "" && !ValidStatus(status) {
		return nil, common.ErrInvalidStatus
	}
	return s.repo.FetchByUser(ctx, userID, status)
}

// Create валидирует и создаёт стикер. Пустой цвет заменяется жёлтым,
// пустой тип — обычным, пустой статус — входящими.
func (s *Service) Create(ctx context.Context, userID, text, color, todoType, status string) (*Todo, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, common.ErrEmptyText
	}
	if utf8.RuneCountInString(text) > s.cfg.TodoMaxLength {
		return nil, common.ErrTextTooLong
	}
	if color == "" {
		color = ColorYellow
	}
	if !ValidColor(color) {
		return nil, common.ErrInvalidColor
	}
	if todoType == "" {
		todoType = TypeNormal
	}
	if !ValidType(todoType) {
		return nil, common.ErrInvalidType
	}
	if status == "" {
		status = StatusInbox
	}
	if !ValidStatus(status) {
		return nil, common.ErrInvalidStatus
	}

	todo, err := s.repo.Insert(ctx, userID, text, color, todoType, status)
	if err != nil {
		return nil, err
	}
	log.WithFields(log.Fields{
		"user_id": userID,
		"todo_id": todo.ID,
		"type":    todo.Type,
	}).Debug("стикер создан")
	return todo, nil
}

// Update валидирует и применяет частичное обновление стикера.
func (s *Service) Update(ctx context.Context, userID string, id int64, upd TodoUpdate) (*Todo, error) {
	if upd.Text != nil {
		trimmed := strings.TrimSpace(*upd.Text)
		if trimmed == "" {
			return nil, common.ErrEmptyText
		}
		if utf8.RuneCountInString(trimmed) > s.cfg.TodoMaxLength {
			return nil, common.ErrTextTooLong
		}
		upd.Text = &trimmed
	}
	if upd.Color != nil && !ValidColor(*upd.Color) {
		return nil, common.ErrInvalidColor
	}
	if upd.Status != nil && !ValidStatus(*upd.Status) {
		return nil, common.ErrInvalidStatus
	}
	return s.repo.Update(ctx, userID, id, upd)
}

// Delete удаляет стикер.
func (s *Service) Delete(ctx context.Context, userID string, id int64) error {
	return s.repo.Delete(ctx, userID, id)
}

// ArchiveCompleted убирает завершённые стикеры с доски в архив.
func (s *Service) ArchiveCompleted(ctx context.Context, userID string) (int64, error) {
	n, err := s.repo.ArchiveCompleted(ctx, userID)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		log.WithFields(log.Fields{
			"user_id":  userID,
			"archived": n,
		}).Info("завершённые стикеры перенесены в архив")
	}
	return n, nil
}

// CompletedCount — сколько всего дел пользователь завершил.
// Используется при начислении монет.
func (s *Service) CompletedCount(ctx context.Context, userID string) (int, error) {
	return s.repo.CountCompleted(ctx, userID)
}
