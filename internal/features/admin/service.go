// Package admin — service.go содержит сбор статистики и проверку
// пароля администратора по хешу Argon2id.
package admin

import (
	"context"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/argon2"

	"stickyboard.ru/board-api/internal/config"
)

// TodoStatsSource отдаёт сводку стикеров по статусам.
type TodoStatsSource interface {
	CountByStatus(ctx context.Context) (map[string]int, error)
}

// UserStatsSource отдаёт счётчики по пользователям и монетам.
type UserStatsSource interface {
	CountUsers(ctx context.Context) (int, error)
	TotalCoins(ctx context.Context) (int, error)
}

// Service собирает статистику сервиса.
type Service struct {
	repo  *Repository
	todos TodoStatsSource
	users UserStatsSource
	cfg   *config.Config
}

// NewService создаёт сервис админ-статистики.
func NewService(repo *Repository, todos TodoStatsSource, users UserStatsSource, cfg *config.Config) *Service {
	return &Service{repo: repo, todos: todos, users: users, cfg: cfg}
}

// CollectStats собирает сводную статистику по всем таблицам.
func (s *Service) CollectStats(ctx context.Context) (*Stats, error) {
	stats := &Stats{}

	var err error
	if stats.Users, err = s.users.CountUsers(ctx); err != nil {
		return nil, err
	}
	if stats.TodosByStatus, err = s.todos.CountByStatus(ctx); err != nil {
		return nil, err
	}
	if stats.ActiveRituals, err = s.repo.CountActiveRituals(ctx); err != nil {
		return nil, err
	}
	if stats.GemsGranted, err = s.repo.CountGems(ctx); err != nil {
		return nil, err
	}
	if stats.TotalCoins, err = s.users.TotalCoins(ctx); err != nil {
		return nil, err
	}
	if stats.CompletionDays, err = s.repo.CountCompletionDays(ctx); err != nil {
		return nil, err
	}
	return stats, nil
}

// VerifyPassword сверяет пароль администратора с хешем из конфигурации.
func (s *Service) VerifyPassword(password string) bool {
	return verifyArgon2id(password, s.cfg.AdminPasswordHash)
}

// verifyArgon2id проверяет пароль по хешу Argon2id.
// Формат хеша: $argon2id$v=19$m=65536,t=3,p=2$<salt_base64>$<hash_base64>
func verifyArgon2id(password, encodedHash string) bool {
	parts := strings.Split(encodedHash, "$")
	if len(parts) != 6 {
		log.Error("Некорректный формат хеша Argon2id")
		return false
	}

	var memory uint32
	var iterations uint32
	var parallelism uint8
	_, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &iterations, &parallelism)
	if err != nil {
		log.WithError(err).Error("Ошибка парсинга параметров Argon2id")
		return false
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		log.WithError(err).Error("Ошибка декодирования соли")
		return false
	}

	expectedHash, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		log.WithError(err).Error("Ошибка декодирования хеша")
		return false
	}

	computedHash := argon2.IDKey([]byte(password), salt, iterations, memory, parallelism, uint32(len(expectedHash)))

	// Сравнение в постоянном времени (защита от timing attack)
	return subtle.ConstantTimeCompare(computedHash, expectedHash) == 1
}
