package streak

import "testing"

func TestCheckAllCompletedFirstTime(t *testing.T) {
	active := []int64{1, 2}

	// Утром отмечен первый ритуал — день уже накопил {1}
	prior := &Completion{Date: "2024-01-10", CompletedRitualIDs: []int64{1}}

	// Отметка последнего ритуала собирает полный набор впервые
	got := CheckAllCompleted(prior, 2, active)
	if !got.AllCompletedNow || !got.IsFirstTimeToday {
		t.Errorf("последний ритуал: got %+v, ожидали {true true}", got)
	}
}

func TestCheckAllCompletedRetoggleDoesNotRefire(t *testing.T) {
	active := []int64{1, 2}

	// День уже собирали: запись помнит полный набор, даже если галочку
	// с ритуала 2 потом сняли
	prior := &Completion{Date: "2024-01-10", CompletedRitualIDs: []int64{1, 2}}

	got := CheckAllCompleted(prior, 2, active)
	if !got.AllCompletedNow {
		t.Errorf("повторная отметка: AllCompletedNow = false, ожидали true")
	}
	if got.IsFirstTimeToday {
		t.Errorf("повторная отметка не должна считаться первой за день")
	}
}

func TestCheckAllCompletedPartial(t *testing.T) {
	active := []int64{1, 2, 3}

	// Первый ритуал дня: записи ещё нет
	got := CheckAllCompleted(nil, 1, active)
	if got.AllCompletedNow || got.IsFirstTimeToday {
		t.Errorf("частичное выполнение: got %+v, ожидали {false false}", got)
	}

	// Второй из трёх — всё ещё не полный набор
	prior := &Completion{Date: "2024-01-10", CompletedRitualIDs: []int64{1}}
	got = CheckAllCompleted(prior, 2, active)
	if got.AllCompletedNow || got.IsFirstTimeToday {
		t.Errorf("два из трёх: got %+v, ожидали {false false}", got)
	}
}

func TestCheckAllCompletedNoActiveRituals(t *testing.T) {
	// Пустой активный набор: награждать не за что
	got := CheckAllCompleted(nil, 1, nil)
	if got.AllCompletedNow || got.IsFirstTimeToday {
		t.Errorf("без активных ритуалов: got %+v, ожидали {false false}", got)
	}

	got = CheckAllCompleted(nil, 1, []int64{})
	if got.AllCompletedNow || got.IsFirstTimeToday {
		t.Errorf("пустой срез активных: got %+v, ожидали {false false}", got)
	}
}

func TestCheckAllCompletedSingleRitual(t *testing.T) {
	active := []int64{7}

	got := CheckAllCompleted(nil, 7, active)
	if !got.AllCompletedNow || !got.IsFirstTimeToday {
		t.Errorf("единственный ритуал: got %+v, ожидали {true true}", got)
	}
}

func TestCheckAllCompletedArchivedPriorIgnored(t *testing.T) {
	active := []int64{1, 2}

	// Архивная запись не участвует: банку опустошили, день начинается заново
	prior := &Completion{
		Date:               "2024-01-10",
		CompletedRitualIDs: []int64{1, 2},
		IsArchived:         true,
	}

	got := CheckAllCompleted(prior, 2, active)
	if got.AllCompletedNow {
		t.Errorf("после архивации набор {2} не полон, got %+v", got)
	}
}

func TestCheckAllCompletedExtraCompletedIDs(t *testing.T) {
	// В записи может остаться ритуал, который уже деактивирован —
	// на решение влияет только нынешний активный набор
	active := []int64{1, 2}
	prior := &Completion{Date: "2024-01-10", CompletedRitualIDs: []int64{1, 9}}

	got := CheckAllCompleted(prior, 2, active)
	if !got.AllCompletedNow || !got.IsFirstTimeToday {
		t.Errorf("лишний неактивный ритуал: got %+v, ожидали {true true}", got)
	}
}
