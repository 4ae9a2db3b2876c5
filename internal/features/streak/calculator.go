// Package streak — calculator.go содержит чистые функции подсчёта серий.
// Никакого состояния и ввода-вывода: все входы (записи, активные ритуалы,
// «сегодня») передаются явно, поэтому функции детерминированы и легко
// тестируются без подмены часов.
//
// Один калькулятор обслуживает оба режима:
//   - простой: activeRitualIDs == nil, день засчитывается по самому
//     факту записи (вариант серверного эндпоинта);
//   - с ритуалами: activeRitualIDs != nil, день засчитывается только
//     если отмечены ВСЕ активные ритуалы. Пустой активный набор
//     означает, что засчитать нечего — каждый день даёт 0.
package streak

import (
	"sort"

	"stickyboard.ru/board-api/internal/common"
)

// defaultMaxLookback — жёсткий предел обратного обхода в днях.
// Гарантирует завершение даже на битых данных.
const defaultMaxLookback = 365

// CurrentStreak возвращает длину серии, заканчивающейся ровно в today.
// Идём от today назад по одному календарному дню, пока дни засчитываются.
// Если сегодня незасчитанный день — серия равна 0, сколько бы дней подряд
// ни было выполнено до этого.
//
// maxLookback ограничивает обход; значения <= 0 заменяются на 365.
func CurrentStreak(completions []*Completion, activeRitualIDs []int64, today string, maxLookback int) int {
	if maxLookback <= 0 {
		maxLookback = defaultMaxLookback
	}

	dates := qualifyingDates(completions, activeRitualIDs)

	streak := 0
	cursor := today
	for streak < maxLookback {
		if _, ok := dates[cursor]; !ok {
			break
		}
		streak++
		cursor = common.PrevDay(cursor)
		if cursor == "" {
			// today оказался не датой — дальше идти некуда
			break
		}
	}
	return streak
}

// BestStreak возвращает длину самой длинной серии за всю историю.
// Засчитанные даты сортируются по возрастанию, затем один проход:
// если соседние даты отличаются ровно на день — серия продолжается,
// иначе начинается новая.
func BestStreak(completions []*Completion, activeRitualIDs []int64) int {
	dates := qualifyingDates(completions, activeRitualIDs)
	if len(dates) == 0 {
		return 0
	}

	// Лексикографический порядок "YYYY-MM-DD" совпадает с хронологическим
	sorted := make([]string, 0, len(dates))
	for d := range dates {
		sorted = append(sorted, d)
	}
	sort.Strings(sorted)

	best, run := 0, 0
	for i, d := range sorted {
		if i == 0 {
			run = 1
		} else {
			diff, err := common.DaysBetween(sorted[i-1], d)
			if err == nil && diff == 1 {
				run++
			} else {
				run = 1
			}
		}
		if run > best {
			best = run
		}
	}
	return best
}

// qualifyingDates собирает множество засчитанных дат.
// Архивные записи и записи с кривой датой молча пропускаются:
// исторические данные могут содержать недомигрированные строки,
// и калькулятор обязан оставаться тотальным.
func qualifyingDates(completions []*Completion, activeRitualIDs []int64) map[string]struct{} {
	dates := make(map[string]struct{}, len(completions))
	for _, c := range completions {
		if qualifies(c, activeRitualIDs) {
			dates[c.Date] = struct{}{}
		}
	}
	return dates
}

// qualifies проверяет, засчитывается ли запись.
// Правило одно для CurrentStreak и BestStreak — иначе сломается
// инвариант BestStreak >= CurrentStreak.
func qualifies(c *Completion, activeRitualIDs []int64) bool {
	if c == nil || c.IsArchived {
		return false
	}
	if _, err := common.ParseDate(c.Date); err != nil {
		return false
	}
	if activeRitualIDs == nil {
		// Простой режим: достаточно самого факта записи
		return true
	}
	if len(activeRitualIDs) == 0 {
		// Нет активных ритуалов — «выполнить все» невозможно
		return false
	}
	return containsAll(c.CompletedRitualIDs, activeRitualIDs)
}

// containsAll проверяет, что have включает каждый элемент want.
func containsAll(have, want []int64) bool {
	if len(want) == 0 {
		return true
	}
	set := make(map[int64]struct{}, len(have))
	for _, id := range have {
		set[id] = struct{}{}
	}
	for _, id := range want {
		if _, ok := set[id]; !ok {
			return false
		}
	}
	return true
}
