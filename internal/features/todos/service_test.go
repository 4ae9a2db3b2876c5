package todos

import (
	"context"
	"errors"
	"strings"
	"testing"

	"stickyboard.ru/board-api/internal/common"
	"stickyboard.ru/board-api/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{TodoMaxLength: 100}
}

// Валидация отрабатывает до обращения к БД, поэтому репозиторий не нужен.
func TestCreateRejectsInvalidInput(t *testing.T) {
	s := NewService(nil, testConfig())
	ctx := context.Background()

	cases := []struct {
		name    string
		text    string
		color   string
		status  string
		wantErr error
	}{
		{"пустой текст", "", "", "", common.ErrEmptyText},
		{"только пробелы", "   ", "", "", common.ErrEmptyText},
		{"длинный текст", strings.Repeat("а", 101), "", "", common.ErrTextTooLong},
		{"неизвестный цвет", "дело", "magenta", "", common.ErrInvalidColor},
		{"неизвестный статус", "дело", "yellow", "done", common.ErrInvalidStatus},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.Create(ctx, "u", tc.text, tc.color, TypeNormal, tc.status)
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("Create() err = %v, ожидалась %v", err, tc.wantErr)
			}
		})
	}

	t.Run("неизвестный тип", func(t *testing.T) {
		_, err := s.Create(ctx, "u", "дело", "yellow", "giant-frog", "")
		if !errors.Is(err, common.ErrInvalidType) {
			t.Errorf("Create() err = %v, ожидалась %v", err, common.ErrInvalidType)
		}
	})
}

func TestCreateAcceptsTextAtLimit(t *testing.T) {
	s := NewService(nil, testConfig())

	// Ровно 100 рун кириллицы (в байтах больше 100) — должен пройти валидацию.
	// Дальше вызов падает на nil-репозитории паникой, и это как раз
	// сигнал, что до обращения к БД дошли.
	defer func() {
		if recover() == nil {
			t.Error("валидация должна была пропустить текст в 100 рун")
		}
	}()
	_, err := s.Create(context.Background(), "u", strings.Repeat("ю", 100), "", "", "")
	if errors.Is(err, common.ErrTextTooLong) {
		t.Error("текст в 100 рун не должен считаться слишком длинным")
	}
}

func TestListRejectsUnknownStatus(t *testing.T) {
	s := NewService(nil, testConfig())
	_, err := s.List(context.Background(), "u", "done")
	if !errors.Is(err, common.ErrInvalidStatus) {
		t.Errorf("List() err = %v, ожидалась %v", err, common.ErrInvalidStatus)
	}
}

func TestValidators(t *testing.T) {
	for _, c := range []string{ColorYellow, ColorPink, ColorBlue, ColorGreen} {
		if !ValidColor(c) {
			t.Errorf("ValidColor(%q) = false", c)
		}
	}
	if ValidColor("red") {
		t.Error("ValidColor(red) = true")
	}
	if !ValidType(TypeFrog) || ValidType("giant-frog") {
		t.Error("ValidType отрабатывает неверно")
	}
	for _, st := range []string{StatusInbox, StatusActive, StatusCompleted, StatusArchived} {
		if !ValidStatus(st) {
			t.Errorf("ValidStatus(%q) = false", st)
		}
	}
}
