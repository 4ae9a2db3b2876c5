package streak

import (
	"math/rand"
	"testing"

	"stickyboard.ru/board-api/internal/common"
)

// simple строит записи без привязки к ритуалам (по одной на дату).
func simple(dates ...string) []*Completion {
	completions := make([]*Completion, 0, len(dates))
	for _, d := range dates {
		completions = append(completions, &Completion{Date: d})
	}
	return completions
}

func TestCurrentStreakSimple(t *testing.T) {
	tests := []struct {
		name  string
		dates []string
		today string
		want  int
	}{
		{
			name:  "три дня подряд до сегодня",
			dates: []string{"2024-01-03", "2024-01-02", "2024-01-01"},
			today: "2024-01-03",
			want:  3,
		},
		{
			name:  "пустая история",
			dates: nil,
			today: "2024-01-03",
			want:  0,
		},
		{
			name:  "разрыв перед сегодняшним днём",
			dates: []string{"2024-01-04", "2024-01-01"},
			today: "2024-01-04",
			want:  1,
		},
		{
			name:  "сегодня не отмечено — серия нулевая, несмотря на вчерашние",
			dates: []string{"2024-01-02", "2024-01-01"},
			today: "2024-01-03",
			want:  0,
		},
		{
			name:  "одна запись за сегодня",
			dates: []string{"2024-02-29"},
			today: "2024-02-29",
			want:  1,
		},
		{
			name:  "серия через границу месяца",
			dates: []string{"2024-03-01", "2024-02-29", "2024-02-28"},
			today: "2024-03-01",
			want:  3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CurrentStreak(simple(tt.dates...), nil, tt.today, 365)
			if got != tt.want {
				t.Errorf("CurrentStreak() = %d, ожидали %d", got, tt.want)
			}
		})
	}
}

func TestBestStreakSimple(t *testing.T) {
	tests := []struct {
		name  string
		dates []string
		want  int
	}{
		{
			name:  "единственная серия",
			dates: []string{"2024-01-03", "2024-01-02", "2024-01-01"},
			want:  3,
		},
		{
			name:  "пустая история",
			dates: nil,
			want:  0,
		},
		{
			name:  "две изолированные даты",
			dates: []string{"2024-01-04", "2024-01-01"},
			want:  1,
		},
		{
			name:  "длинная серия побеждает короткую",
			dates: []string{"2024-01-01", "2024-01-02", "2024-01-03", "2024-01-05", "2024-01-06"},
			want:  3,
		},
		{
			name:  "одна дата",
			dates: []string{"2024-01-01"},
			want:  1,
		},
		{
			name:  "дубликаты даты не удлиняют серию",
			dates: []string{"2024-01-01", "2024-01-01", "2024-01-02"},
			want:  2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BestStreak(simple(tt.dates...), nil)
			if got != tt.want {
				t.Errorf("BestStreak() = %d, ожидали %d", got, tt.want)
			}
		})
	}
}

func TestStreakOrderIndependence(t *testing.T) {
	// Порядок записей на входе не гарантирован — результат
	// не должен от него зависеть.
	dates := []string{"2024-01-05", "2024-01-01", "2024-01-03", "2024-01-04", "2024-01-02"}
	today := "2024-01-05"

	wantCurrent := CurrentStreak(simple(dates...), nil, today, 365)
	wantBest := BestStreak(simple(dates...), nil)
	if wantCurrent != 5 || wantBest != 5 {
		t.Fatalf("базовый результат: current=%d best=%d, ожидали 5/5", wantCurrent, wantBest)
	}

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 20; i++ {
		shuffled := append([]string(nil), dates...)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})

		if got := CurrentStreak(simple(shuffled...), nil, today, 365); got != wantCurrent {
			t.Errorf("перестановка %d: CurrentStreak = %d, ожидали %d", i, got, wantCurrent)
		}
		if got := BestStreak(simple(shuffled...), nil); got != wantBest {
			t.Errorf("перестановка %d: BestStreak = %d, ожидали %d", i, got, wantBest)
		}
	}
}

func TestBestStreakNotLessThanCurrent(t *testing.T) {
	// Текущая серия — одна из всех серий, поэтому лучшая не бывает меньше.
	histories := [][]string{
		nil,
		{"2024-01-03", "2024-01-02", "2024-01-01"},
		{"2024-01-03"},
		{"2024-01-01", "2024-01-02", "2024-01-05", "2024-01-06", "2024-01-07"},
		{"2023-12-30", "2023-12-31", "2024-01-01", "2024-01-03"},
	}
	todays := []string{"2024-01-03", "2024-01-07", "2024-01-10"}

	for _, h := range histories {
		for _, today := range todays {
			current := CurrentStreak(simple(h...), nil, today, 365)
			best := BestStreak(simple(h...), nil)
			if best < current {
				t.Errorf("история %v, сегодня %s: best=%d < current=%d", h, today, best, current)
			}
		}
	}
}

func TestStreakIdempotence(t *testing.T) {
	completions := simple("2024-01-01", "2024-01-02", "2024-01-03")
	today := "2024-01-03"

	first := CurrentStreak(completions, nil, today, 365)
	second := CurrentStreak(completions, nil, today, 365)
	if first != second {
		t.Errorf("CurrentStreak не идемпотентен: %d != %d", first, second)
	}

	firstBest := BestStreak(completions, nil)
	secondBest := BestStreak(completions, nil)
	if firstBest != secondBest {
		t.Errorf("BestStreak не идемпотентен: %d != %d", firstBest, secondBest)
	}
}

func TestStreakGatedMode(t *testing.T) {
	active := []int64{1, 2}

	completions := []*Completion{
		// День собран целиком
		{Date: "2024-01-01", CompletedRitualIDs: []int64{1, 2}},
		// Отмечен только один ритуал — день не засчитывается
		{Date: "2024-01-02", CompletedRitualIDs: []int64{1}},
		// Снова целиком, с лишним неактивным ритуалом
		{Date: "2024-01-03", CompletedRitualIDs: []int64{1, 2, 9}},
	}

	if got := CurrentStreak(completions, active, "2024-01-03", 365); got != 1 {
		t.Errorf("CurrentStreak (гейтед) = %d, ожидали 1", got)
	}
	if got := BestStreak(completions, active); got != 1 {
		t.Errorf("BestStreak (гейтед) = %d, ожидали 1", got)
	}

	// Пустой активный набор: «все ритуалы» собрать невозможно
	if got := CurrentStreak(completions, []int64{}, "2024-01-03", 365); got != 0 {
		t.Errorf("CurrentStreak (нет активных) = %d, ожидали 0", got)
	}
	if got := BestStreak(completions, []int64{}); got != 0 {
		t.Errorf("BestStreak (нет активных) = %d, ожидали 0", got)
	}

	// nil — простой режим: достаточно самой записи
	if got := CurrentStreak(completions, nil, "2024-01-03", 365); got != 3 {
		t.Errorf("CurrentStreak (простой режим) = %d, ожидали 3", got)
	}
}

func TestStreakSkipsMalformedAndArchived(t *testing.T) {
	completions := []*Completion{
		{Date: "2024-01-03"},
		{Date: "не дата"},
		{Date: "2024-1-2"}, // без ведущего нуля — не канонический формат
		{Date: ""},
		{Date: "2024-01-02", IsArchived: true},
	}

	// Битые и архивные записи молча пропускаются, а не роняют подсчёт
	if got := CurrentStreak(completions, nil, "2024-01-03", 365); got != 1 {
		t.Errorf("CurrentStreak = %d, ожидали 1", got)
	}
	if got := BestStreak(completions, nil); got != 1 {
		t.Errorf("BestStreak = %d, ожидали 1", got)
	}
}

func TestCurrentStreakLookbackBound(t *testing.T) {
	// 400 дней подряд: обход обязан остановиться на пределе
	completions := make([]*Completion, 0, 400)
	date := "2025-02-04"
	cur := date
	for i := 0; i < 400; i++ {
		completions = append(completions, &Completion{Date: cur})
		cur = prevDayForTest(t, cur)
	}

	if got := CurrentStreak(completions, nil, date, 365); got != 365 {
		t.Errorf("CurrentStreak = %d, ожидали предел 365", got)
	}
	if got := CurrentStreak(completions, nil, date, 0); got != 365 {
		t.Errorf("CurrentStreak (maxLookback=0) = %d, ожидали дефолтный предел 365", got)
	}
}

func TestStreakThroughYesterdayForReminders(t *testing.T) {
	// Вечернее напоминание адресовано тому, кто сегодня ещё не собрал
	// набор. Текущая серия у него в этот момент равна 0 — мерить порог
	// по ней бессмысленно, условие «серия >= порога И день не собран»
	// не выполнилось бы никогда. Риску подвержена серия по вчерашний
	// день, её и проверяем.
	active := []int64{1, 2}
	today := "2024-01-11"

	// 10 полностью собранных дней по вчерашний включительно
	completions := make([]*Completion, 0, 11)
	cur := prevDayForTest(t, today)
	for i := 0; i < 10; i++ {
		completions = append(completions, &Completion{Date: cur, CompletedRitualIDs: []int64{1, 2}})
		cur = prevDayForTest(t, cur)
	}
	// Сегодня отмечен только один ритуал из двух
	completions = append(completions, &Completion{Date: today, CompletedRitualIDs: []int64{1}})

	if got := CurrentStreak(completions, active, today, 365); got != 0 {
		t.Fatalf("CurrentStreak(сегодня) = %d, ожидали 0", got)
	}

	yesterday := prevDayForTest(t, today)
	got := CurrentStreak(completions, active, yesterday, 365)
	if got != 10 {
		t.Errorf("CurrentStreak(вчера) = %d, ожидали 10", got)
	}

	// Само условие напоминания должно быть выполнимо
	threshold := 3
	notDoneToday := !containsAll([]int64{1}, active)
	if !(got >= threshold && notDoneToday) {
		t.Error("пользователь с живой 10-дневной серией должен получать напоминание")
	}
}

func prevDayForTest(t *testing.T, date string) string {
	t.Helper()
	prev := common.PrevDay(date)
	if prev == "" {
		t.Fatalf("не удалось получить предыдущий день для %q", date)
	}
	return prev
}
