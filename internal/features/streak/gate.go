// Package streak — gate.go решает, когда день ВПЕРВЫЕ стал полностью
// выполненным. Именно это решение запускает одноразовую награду
// (кристалл в банку): повторная отметка последнего ритуала после снятия
// галочки награду не дублирует.
package streak

// GateResult — решение по одной отметке ритуала.
type GateResult struct {
	// AllCompletedNow — после этой отметки выполнены все активные ритуалы
	AllCompletedNow bool `json:"allCompletedNow"`
	// IsFirstTimeToday — полный набор собран именно этой отметкой,
	// а не был собран раньше в течение дня
	IsFirstTimeToday bool `json:"isFirstTimeToday"`
}

// CheckAllCompleted сравнивает состояние дня ДО отметки и ПОСЛЕ неё.
//
// prior — накопленная запись за сегодня (nil, если сегодня ещё ничего
// не отмечали). Запись дня только пополняется и при снятии галочки не
// урезается, поэтому если полный набор уже собирали — prior это помнит,
// и повторное «собирание» не считается первым.
//
// Пустой набор активных ритуалов означает, что собирать нечего:
// оба поля результата false.
func CheckAllCompleted(prior *Completion, ritualID int64, activeRitualIDs []int64) GateResult {
	if len(activeRitualIDs) == 0 {
		return GateResult{}
	}

	var pre []int64
	if prior != nil && !prior.IsArchived {
		pre = prior.CompletedRitualIDs
	}

	wasComplete := containsAll(pre, activeRitualIDs)

	post := pre
	if !containsID(pre, ritualID) {
		post = make([]int64, 0, len(pre)+1)
		post = append(post, pre...)
		post = append(post, ritualID)
	}
	nowComplete := containsAll(post, activeRitualIDs)

	return GateResult{
		AllCompletedNow:  nowComplete,
		IsFirstTimeToday: nowComplete && !wasComplete,
	}
}

func containsID(ids []int64, id int64) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
