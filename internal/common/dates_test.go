package common

import (
	"testing"
	"time"
)

func TestCanonicalDateUsesLocalFields(t *testing.T) {
	msk := time.FixedZone("MSK", 3*60*60)

	tests := []struct {
		name string
		t    time.Time
		want string
	}{
		{
			name: "поздний вечер UTC — уже следующий день в Москве",
			t:    time.Date(2024, 1, 1, 22, 30, 0, 0, time.UTC),
			want: "2024-01-02",
		},
		{
			name: "полдень UTC — тот же день",
			t:    time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
			want: "2024-01-01",
		},
		{
			name: "месяц и день дополняются нулями",
			t:    time.Date(2024, 3, 5, 10, 0, 0, 0, msk),
			want: "2024-03-05",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanonicalDate(tt.t, msk); got != tt.want {
				t.Errorf("CanonicalDate() = %q, ожидали %q", got, tt.want)
			}
		})
	}
}

func TestCanonicalDateStable(t *testing.T) {
	msk := time.FixedZone("MSK", 3*60*60)
	instant := time.Date(2024, 6, 15, 23, 59, 59, 0, time.UTC)

	first := CanonicalDate(instant, msk)
	second := CanonicalDate(instant, msk)
	if first != second {
		t.Errorf("канонизация нестабильна: %q != %q", first, second)
	}
}

func TestParseDateStrict(t *testing.T) {
	if _, err := ParseDate("2024-02-29"); err != nil {
		t.Errorf("валидная високосная дата отвергнута: %v", err)
	}

	bad := []string{"", "не дата", "2024-1-5", "2024-13-01", "2023-02-29", "2024-01-02Т00:00:00"}
	for _, s := range bad {
		if _, err := ParseDate(s); err == nil {
			t.Errorf("ParseDate(%q): ожидали ошибку", s)
		}
	}
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"2024-01-01", "2024-01-02", 1},
		{"2024-01-02", "2024-01-01", 1}, // абсолютное значение
		{"2024-01-01", "2024-01-01", 0},
		{"2024-01-01", "2024-01-05", 4},
		{"2024-02-28", "2024-03-01", 2}, // високосный февраль
		{"2023-12-31", "2024-01-01", 1},
		// Переход на летнее время не делает день «не суткам равным»:
		// считаем по календарным меткам, а не по реальным миллисекундам
		{"2024-03-30", "2024-03-31", 1},
		{"2024-10-26", "2024-10-27", 1},
	}

	for _, tt := range tests {
		got, err := DaysBetween(tt.a, tt.b)
		if err != nil {
			t.Errorf("DaysBetween(%q, %q): %v", tt.a, tt.b, err)
			continue
		}
		if got != tt.want {
			t.Errorf("DaysBetween(%q, %q) = %d, ожидали %d", tt.a, tt.b, got, tt.want)
		}
	}

	if _, err := DaysBetween("кривая", "2024-01-01"); err == nil {
		t.Error("DaysBetween с кривой датой: ожидали ошибку")
	}
}

func TestPrevDay(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"2024-01-02", "2024-01-01"},
		{"2024-01-01", "2023-12-31"},
		{"2024-03-01", "2024-02-29"}, // високосный год
		{"2023-03-01", "2023-02-28"},
	}
	for _, tt := range tests {
		if got := PrevDay(tt.in); got != tt.want {
			t.Errorf("PrevDay(%q) = %q, ожидали %q", tt.in, got, tt.want)
		}
	}

	if got := PrevDay("мусор"); got != "" {
		t.Errorf("PrevDay от мусора = %q, ожидали пустую строку", got)
	}
}

func TestPluralizeDays(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{1, "день"}, {2, "дня"}, {5, "дней"}, {11, "дней"},
		{21, "день"}, {22, "дня"}, {25, "дней"}, {111, "дней"},
	}
	for _, tt := range tests {
		if got := PluralizeDays(tt.n); got != tt.want {
			t.Errorf("PluralizeDays(%d) = %q, ожидали %q", tt.n, got, tt.want)
		}
	}
}

func TestPluralizeGemsAndRituals(t *testing.T) {
	// Формы идут в тексты дайджеста, склонение должно быть верным
	gems := []struct {
		n    int
		want string
	}{
		{1, "кристалл"}, {3, "кристалла"}, {7, "кристаллов"},
		{11, "кристаллов"}, {21, "кристалл"},
	}
	for _, tt := range gems {
		if got := PluralizeGems(tt.n); got != tt.want {
			t.Errorf("PluralizeGems(%d) = %q, ожидали %q", tt.n, got, tt.want)
		}
	}

	rituals := []struct {
		n    int
		want string
	}{
		{1, "ритуал"}, {2, "ритуала"}, {5, "ритуалов"},
		{12, "ритуалов"}, {101, "ритуал"},
	}
	for _, tt := range rituals {
		if got := PluralizeRituals(tt.n); got != tt.want {
			t.Errorf("PluralizeRituals(%d) = %q, ожидали %q", tt.n, got, tt.want)
		}
	}
}
