// Package jobs управляет фоновыми задачами (cron).
// scheduler.go настраивает расписание: ночной дайджест статистики
// и вечерние напоминания о ритуалах.
package jobs

import (
	"context"

	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"

	"stickyboard.ru/board-api/internal/common"
	"stickyboard.ru/board-api/internal/config"
	"stickyboard.ru/board-api/internal/features/admin"
	"stickyboard.ru/board-api/internal/features/settings"
	"stickyboard.ru/board-api/internal/features/streak"
	"stickyboard.ru/board-api/internal/notify"
)

// Scheduler управляет фоновыми задачами.
type Scheduler struct {
	cron     *cron.Cron
	cfg      *config.Config
	streaks  *streak.Service
	users    *settings.Repository
	stats    *admin.Service
	notifier *notify.Notifier
}

// NewScheduler создаёт планировщик задач в часовом поясе приложения.
func NewScheduler(cfg *config.Config, streaks *streak.Service, users *settings.Repository,
	stats *admin.Service, notifier *notify.Notifier) *Scheduler {
	return &Scheduler{
		cron:     cron.New(cron.WithLocation(cfg.Location())),
		cfg:      cfg,
		streaks:  streaks,
		users:    users,
		stats:    stats,
		notifier: notifier,
	}
}

// Start запускает все фоновые задачи.
func (s *Scheduler) Start(ctx context.Context) {
	// Ночной дайджест сразу после полуночи
	s.cron.AddFunc("5 0 * * *", func() {
		s.runDigest(ctx)
	})

	// Вечерние напоминания. Одно срабатывание в день — повторных
	// напоминаний тот же вечер не будет.
	if s.cfg.FeatureRemindersEnabled && s.notifier.Enabled() {
		s.cron.AddFunc("0 20 * * *", func() {
			s.runReminders(ctx)
		})
	}

	s.cron.Start()
	log.WithField("timezone", s.cfg.AppTimezone).Info("Планировщик задач запущен")
}

// Stop останавливает планировщик, дождавшись текущих задач.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	log.Info("Планировщик задач остановлен")
}

// runDigest пишет в лог сводную статистику сервиса.
func (s *Scheduler) runDigest(ctx context.Context) {
	log.Info("[CRON] Ночной дайджест")
	stats, err := s.stats.CollectStats(ctx)
	if err != nil {
		log.WithError(err).Error("[CRON] Ошибка сбора статистики")
		return
	}
	log.WithFields(log.Fields{
		"users":           stats.Users,
		"todos_by_status": stats.TodosByStatus,
		"active_rituals":  stats.ActiveRituals,
		"gems":            stats.GemsGranted,
		"coins":           stats.TotalCoins,
	}).Info("[CRON] Статистика за сутки")

	log.Infof("[CRON] В банках %d %s, активно %d %s",
		stats.GemsGranted, common.PluralizeGems(stats.GemsGranted),
		stats.ActiveRituals, common.PluralizeRituals(stats.ActiveRituals))
}

// runReminders напоминает о ритуалах пользователям с привязанным Telegram,
// у которых стрик не короче порога и сегодня ещё не всё выполнено.
func (s *Scheduler) runReminders(ctx context.Context) {
	log.Debug("[CRON] Проверка напоминаний")

	users, err := s.users.ListWithTelegram(ctx)
	if err != nil {
		log.WithError(err).Error("[CRON] Ошибка выборки пользователей")
		return
	}

	for _, u := range users {
		// Порог меряем по серии ПО ВЧЕРАШНИЙ день: у несобравшего
		// сегодня текущая серия уже 0, а рискует он как раз вчерашней.
		streak, err := s.streaks.StreakThroughYesterday(ctx, u.UserID)
		if err != nil {
			log.WithError(err).WithField("user_id", u.UserID).Error("[CRON] Ошибка расчёта стрика")
			continue
		}
		if streak < s.cfg.StreakReminderThreshold {
			continue
		}

		done, err := s.streaks.CompletedAllToday(ctx, u.UserID)
		if err != nil {
			log.WithError(err).WithField("user_id", u.UserID).Error("[CRON] Ошибка проверки дня")
			continue
		}
		if done {
			continue
		}

		text := "🔥 Не забудь про ритуалы! Твой стрик — " +
			common.FormatStreak(streak) + ", не дай ему прерваться."
		if err := s.notifier.Send(ctx, *u.TelegramChatID, text); err != nil {
			log.WithError(err).WithField("user_id", u.UserID).Error("[CRON] Ошибка отправки напоминания")
		}
	}
}
