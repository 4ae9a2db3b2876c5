// Package common — errors.go определяет пользовательские ошибки,
// которые используются во всех модулях сервера.
// Эти ошибки позволяют обработчикам различать типы проблем
// и отдавать клиенту правильный HTTP-статус.
package common

import "errors"

// Ошибки валидации запросов (HTTP 400)
var (
	// ErrUserIDRequired — в запросе нет параметра userId
	ErrUserIDRequired = errors.New("не указан идентификатор пользователя")
	// ErrInvalidUserID — userId не является корректным UUID
	ErrInvalidUserID = errors.New("некорректный идентификатор пользователя")
	// ErrTextTooLong — текст стикера длиннее допустимого
	ErrTextTooLong = errors.New("текст стикера слишком длинный")
	// ErrEmptyText — текст стикера пустой
	ErrEmptyText = errors.New("текст стикера не может быть пустым")
	// ErrInvalidColor — неизвестный цвет стикера
	ErrInvalidColor = errors.New("неизвестный цвет стикера")
	// ErrInvalidStatus — неизвестный статус стикера
	ErrInvalidStatus = errors.New("неизвестный статус стикера")
	// ErrInvalidType — неизвестный тип стикера
	ErrInvalidType = errors.New("неизвестный тип стикера")
	// ErrInvalidAmount — некорректное количество монет (ноль или отрицательное)
	ErrInvalidAmount = errors.New("количество должно быть положительным")
	// ErrEmptyRitualName — имя ритуала пустое
	ErrEmptyRitualName = errors.New("имя ритуала не может быть пустым")
	// ErrRewardNotReached — завершённых дел меньше порога награды
	ErrRewardNotReached = errors.New("награда ещё не заработана")
)

// Ошибки поиска (HTTP 404)
var (
	// ErrTodoNotFound — стикер не найден или принадлежит другому пользователю
	ErrTodoNotFound = errors.New("стикер не найден")
	// ErrRitualNotFound — ритуал не найден или неактивен
	ErrRitualNotFound = errors.New("ритуал не найден")
)

// Ошибки доступа (HTTP 401)
var (
	// ErrNotAdmin — неверный админ-пароль
	ErrNotAdmin = errors.New("нет прав администратора")
)
