package settings

import (
	"context"
	"errors"
	"testing"

	"stickyboard.ru/board-api/internal/common"
	"stickyboard.ru/board-api/internal/config"
)

func TestAddCoinsRejectsNonPositiveAmount(t *testing.T) {
	s := NewService(nil, nil, &config.Config{CoinRewardCount: 10})

	for _, amount := range []int{0, -1, -100} {
		_, err := s.AddCoins(context.Background(), "u", amount)
		if !errors.Is(err, common.ErrInvalidAmount) {
			t.Errorf("AddCoins(%d) err = %v, ожидалась %v", amount, err, common.ErrInvalidAmount)
		}
	}
}
