// Package admin — статистика сервиса и проверка пароля администратора.
package admin

// Stats — сводная статистика для админского дашборда.
type Stats struct {
	Users          int            `json:"users"`
	TodosByStatus  map[string]int `json:"todosByStatus"`
	ActiveRituals  int            `json:"activeRituals"`
	GemsGranted    int            `json:"gemsGranted"`
	TotalCoins     int            `json:"totalCoins"`
	CompletionDays int            `json:"completionDays"`
}
