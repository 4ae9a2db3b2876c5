// Package common — pluralize.go содержит вспомогательные функции
// для правильного склонения русских числительных.
// Используется в текстах напоминаний и дайджестов.
package common

import (
	"fmt"
	"math"
)

// PluralizeDays возвращает правильную форму слова «день» для числа n.
//
// Правила:
//   - 1, 21, 31 → "день"
//   - 2-4, 22-24 → "дня"
//   - 5-20, 25-30 → "дней"
func PluralizeDays(n int) string {
	absN := int(math.Abs(float64(n)))
	lastDigit := absN % 10
	lastTwoDigits := absN % 100

	if lastDigit == 1 && lastTwoDigits != 11 {
		return "день"
	}
	if lastDigit >= 2 && lastDigit <= 4 && (lastTwoDigits < 12 || lastTwoDigits > 14) {
		return "дня"
	}
	return "дней"
}

// PluralizeGems возвращает правильную форму слова «кристалл».
func PluralizeGems(n int) string {
	absN := int(math.Abs(float64(n)))
	lastDigit := absN % 10
	lastTwoDigits := absN % 100

	if lastDigit == 1 && lastTwoDigits != 11 {
		return "кристалл"
	}
	if lastDigit >= 2 && lastDigit <= 4 && (lastTwoDigits < 12 || lastTwoDigits > 14) {
		return "кристалла"
	}
	return "кристаллов"
}

// PluralizeRituals возвращает правильную форму слова «ритуал».
func PluralizeRituals(n int) string {
	absN := int(math.Abs(float64(n)))
	lastDigit := absN % 10
	lastTwoDigits := absN % 100

	if lastDigit == 1 && lastTwoDigits != 11 {
		return "ритуал"
	}
	if lastDigit >= 2 && lastDigit <= 4 && (lastTwoDigits < 12 || lastTwoDigits > 14) {
		return "ритуала"
	}
	return "ритуалов"
}

// FormatStreak форматирует серию в читабельную строку.
// Пример: FormatStreak(8) → "8 дней"
func FormatStreak(days int) string {
	return fmt.Sprintf("%d %s", days, PluralizeDays(days))
}
