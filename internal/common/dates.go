// Package common — dates.go отвечает за канонические календарные даты.
// Вся стрик-логика оперирует строками "YYYY-MM-DD" в часовом поясе
// пользователя. Дата берётся из локальных полей год/месяц/день,
// а НЕ из обрезания ISO/UTC-времени — иначе около полуночи дата
// может уехать на сутки в зависимости от смещения пояса.
package common

import (
	"fmt"
	"time"
)

// DateLayout — канонический формат календарной даты.
const DateLayout = "2006-01-02"

// Today возвращает сегодняшнюю дату в поясе loc в формате "YYYY-MM-DD".
func Today(loc *time.Location) string {
	return CanonicalDate(time.Now(), loc)
}

// CanonicalDate переводит произвольный момент времени в календарную дату
// пояса loc. Канонизация стабильна: один и тот же момент всегда даёт
// одну и ту же строку.
//
// Примеры (loc = Europe/Moscow, UTC+3):
//
//	CanonicalDate(2024-01-01T22:30:00Z) → "2024-01-02"
//	CanonicalDate(2024-01-01T12:00:00Z) → "2024-01-01"
func CanonicalDate(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(DateLayout)
}

// ParseDate строго разбирает каноническую дату "YYYY-MM-DD".
// Возвращает полночь этой даты в UTC. Кривые строки ("2024-1-5",
// "не дата", пустая строка) дают ошибку — вызывающий код просто
// пропускает такую запись.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("некорректная дата %q: %w", s, err)
	}
	return t, nil
}

// DaysBetween возвращает абсолютное число календарных дней между двумя
// датами. Считаем по календарным меткам: обе даты разбираются как
// полночь UTC, поэтому разница всегда кратна ровно 24 часам и переходы
// на летнее/зимнее время на результат не влияют.
//
//	DaysBetween("2024-01-01", "2024-01-02") → 1
//	DaysBetween("2024-01-05", "2024-01-01") → 4
func DaysBetween(a, b string) (int, error) {
	ta, err := ParseDate(a)
	if err != nil {
		return 0, err
	}
	tb, err := ParseDate(b)
	if err != nil {
		return 0, err
	}
	days := int(tb.Sub(ta).Hours() / 24)
	if days < 0 {
		days = -days
	}
	return days, nil
}

// PrevDay возвращает дату на один календарный день раньше.
// Вход должен быть канонической датой; иначе возвращается пустая строка.
func PrevDay(s string) string {
	t, err := ParseDate(s)
	if err != nil {
		return ""
	}
	return t.AddDate(0, 0, -1).Format(DateLayout)
}
