package errors

import (
	"errors"
	"fmt"
)

// Общие ошибки приложения
var (
	// ErrNotFound используется, когда запись или ресурс не найдены.
	ErrNotFound = errors.New("record not found")

	// ErrMalformedID используется, когда сегмент пути не соответствует формату
	// внешнего идентификатора. Наружу отдается как 404, но внутри отличим
	// от промаха поиска.
	ErrMalformedID = errors.New("malformed identifier")

	// ErrUnauthorized используется для ошибок аутентификации (нет токена, неверные креды).
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden используется, когда у субъекта недостаточно прав для действия.
	ErrForbidden = errors.New("forbidden")

	// ErrValidation используется для ошибок валидации входных данных.
	ErrValidation = errors.New("validation failed")

	// ErrConflict используется для дубликатов (имя категории уже занято).
	ErrConflict = errors.New("already exists")

	// ErrInUse используется, когда удаление заблокировано существующими ссылками.
	ErrInUse = errors.New("resource is in use")
)

// apiError несет точное сообщение для клиента поверх сентинела,
// чтобы обработчики могли маппить статус через errors.Is,
// а err.Error() оставался чистым текстом ответа.
type apiError struct {
	kind error
	msg  string
}

func (e *apiError) Error() string { return e.msg }

func (e *apiError) Unwrap() error { return e.kind }

// WithMessage оборачивает сентинел в ошибку с заданным сообщением
func WithMessage(kind error, msg string) error {
	return &apiError{kind: kind, msg: msg}
}

// WithMessagef — вариант WithMessage с форматированием
func WithMessagef(kind error, format string, args ...interface{}) error {
	return &apiError{kind: kind, msg: fmt.Sprintf(format, args...)}
}
